package cli

import (
	"bufio"
	"fmt"
	stdio "io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphnet/pkg/errors"
	"github.com/matzehuels/graphnet/pkg/graph"
	"github.com/matzehuels/graphnet/pkg/io"
)

// exportFormats maps export format names to writers.
var exportFormats = map[string]func(*graph.AnyLibrary, stdio.Writer) error{
	"json": io.WriteJSON[any, any, any, any],
	"yaml": io.WriteYAML[any, any, any, any],
}

type exportOpts struct {
	format string
	output string
}

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	opts := exportOpts{format: "json"}

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Write a library as JSON or YAML",
		Long: `Export a library as a structured document. Attributes become maps, and
edges reference their endpoints by node id.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			write, ok := exportFormats[opts.format]
			if !ok {
				return errors.New(errors.ErrCodeUnsupported, "export format %q (want json or yaml)", opts.format)
			}
			lib, err := c.loadLibrary(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if opts.output == "" {
				return write(lib, cmd.OutOrStdout())
			}
			if err := exportTo(opts.output, lib, write); err != nil {
				return err
			}
			printFile(cmd.ErrOrStderr(), opts.output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: json or yaml")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func exportTo(path string, lib *graph.AnyLibrary, write func(*graph.AnyLibrary, stdio.Writer) error) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if err := write(lib, w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
