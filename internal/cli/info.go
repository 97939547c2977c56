package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphnet/pkg/graph"
)

// maxListedRoots caps the roots printed per graph in the info table.
const maxListedRoots = 3

// infoCommand creates the info command, which summarizes a library.
func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Summarize the graphs in a library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			lib, err := c.loadLibrary(cmd.Context(), path)
			if err != nil {
				return err
			}
			fi, err := os.Stat(path)
			if err != nil {
				return err
			}
			writeInfo(cmd.OutOrStdout(), path, uint64(fi.Size()), lib)
			return nil
		},
	}
}

func writeInfo(w io.Writer, path string, size uint64, lib *graph.AnyLibrary) {
	nodes, edges := 0, 0
	rows := make([][]string, 0, lib.Len())
	for id, g := range lib.Graphs() {
		nodes += g.NodeCount()
		edges += g.EdgeCount()
		rows = append(rows, []string{
			id,
			humanize.Comma(int64(g.NodeCount())),
			humanize.Comma(int64(g.EdgeCount())),
			strconv.Itoa(len(g.Components())),
			summarizeRoots(g),
		})
	}

	fmt.Fprintln(w, StyleTitle.Render(path))
	printKeyValue(w, "Size", humanize.Bytes(size))
	printKeyValue(w, "Graphs", humanize.Comma(int64(lib.Len())))
	printKeyValue(w, "Nodes", humanize.Comma(int64(nodes)))
	printKeyValue(w, "Edges", humanize.Comma(int64(edges)))
	for k, v := range lib.Attrs.All() {
		printKeyValue(w, k, v)
	}
	if len(rows) == 0 {
		return
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Graph", "Nodes", "Edges", "Parts", "Roots").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			return lipgloss.NewStyle()
		})
	fmt.Fprintln(w, t.Render())
}

// summarizeRoots lists the first few root ids of g.
func summarizeRoots[G, N, E any](g *graph.Graph[G, N, E]) string {
	roots := g.Roots()
	if len(roots) == 0 {
		return "—"
	}
	ids := nodeIDs(g, roots[:min(len(roots), maxListedRoots)])
	s := strings.Join(ids, ", ")
	if extra := len(roots) - maxListedRoots; extra > 0 {
		s += fmt.Sprintf(" +%d", extra)
	}
	return s
}
