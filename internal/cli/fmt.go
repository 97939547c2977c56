package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphnet/pkg/errors"
	"github.com/matzehuels/graphnet/pkg/io"
)

type fmtOpts struct {
	output string // write to this path instead of stdout
	write  bool   // rewrite the input in place
	check  bool   // only report whether the input is canonical
}

// fmtCommand creates the fmt command, which rewrites a library canonically.
func (c *CLI) fmtCommand() *cobra.Command {
	var opts fmtOpts

	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Rewrite a library in canonical form",
		Long: `Load a library and save it again: attributes indented with tabs, multi-line
values quoted, and each graph's nodes listed before its edges. Comments are
not preserved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.write && opts.output != "" {
				return errors.New(errors.ErrCodeInvalidInput, "--write and --output are mutually exclusive")
			}
			path := args[0]
			lib, err := c.loadLibrary(cmd.Context(), path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if opts.check {
				canonical, err := isCanonical(path, io.Save(lib))
				if err != nil {
					return err
				}
				if !canonical {
					printWarning(out, "%s is not formatted", path)
					return errors.New(errors.ErrCodeInvalidFormat, "%s is not formatted", path)
				}
				printSuccess(out, "%s is formatted", path)
				return nil
			}

			switch {
			case opts.write:
				return c.saveLibrary(cmd.Context(), lib, path)
			case opts.output != "":
				if err := c.saveLibrary(cmd.Context(), lib, opts.output); err != nil {
					return err
				}
				printFile(out, opts.output)
				return nil
			default:
				return io.Write(lib, out)
			}
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.sz suffix compresses)")
	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "rewrite the input file in place")
	cmd.Flags().BoolVar(&opts.check, "check", false, "fail if the file is not already formatted")

	return cmd
}

// isCanonical reports whether the file at path already holds canonical.
func isCanonical(path, canonical string) (bool, error) {
	raw, err := io.ReadFile(path)
	if err != nil {
		return false, err
	}
	return string(raw) == canonical, nil
}
