package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphnet/pkg/graph"
)

// rootsCommand creates the roots command.
func (c *CLI) rootsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "roots FILE GRAPH NODE...",
		Short: "List the roots reachable upstream from the given nodes",
		Long: `List every node without incoming edges that can reach one of the given
seed nodes by following edges backwards. Seeds that are roots themselves
are included.`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.query(cmd, args, (*graph.AnyGraph).FindRoots)
		},
	}
}

// connectedCommand creates the connected command.
func (c *CLI) connectedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "connected FILE GRAPH NODE...",
		Short: "List the nodes connected to the given nodes",
		Long: `List every node reachable from the given seed nodes when edges are
followed in either direction.`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.query(cmd, args, (*graph.AnyGraph).FindConnected)
		},
	}
}

func (c *CLI) query(cmd *cobra.Command, args []string, find func(*graph.AnyGraph, []int) ([]int, error)) error {
	lib, err := c.loadLibrary(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	g, err := lib.Get(args[1])
	if err != nil {
		return err
	}
	seeds, err := resolveNodes(g, args[2:])
	if err != nil {
		return err
	}
	found, err := find(g, seeds)
	if err != nil {
		return err
	}
	c.Logger.Debug("query complete", "graph", g.ID(), "seeds", len(seeds), "found", len(found))
	for _, id := range nodeIDs(g, found) {
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
	return nil
}
