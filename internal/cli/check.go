package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphnet/pkg/errors"
)

// checkCommand creates the check command, which loads and lints a library.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Load libraries and report format and consistency problems",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				lib, err := c.loadLibrary(cmd.Context(), path)
				if err != nil {
					printError(out, "%s: %v", path, err)
					failed++
					continue
				}

				problems := flatten(lib.Validate())
				if len(problems) == 0 {
					nodes, edges := 0, 0
					for _, g := range lib.Graphs() {
						nodes += g.NodeCount()
						edges += g.EdgeCount()
					}
					printSuccess(out, "%s: %d graphs, %d nodes, %d edges", path, lib.Len(), nodes, edges)
					continue
				}
				printWarning(out, "%s: %d problems", path, len(problems))
				for _, p := range problems {
					printDetail(out, "%s", p)
				}
				failed++
			}
			if failed > 0 {
				return errors.New(errors.ErrCodeInvalidInput, "%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}
}

// flatten expands joined errors into their leaves.
func flatten(err error) []error {
	if err == nil {
		return nil
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}
	var out []error
	for _, e := range joined.Unwrap() {
		out = append(out, flatten(e)...)
	}
	return out
}
