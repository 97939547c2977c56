package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphnet/pkg/errors"
	"github.com/matzehuels/graphnet/pkg/graph"
	"github.com/matzehuels/graphnet/pkg/io"
	"github.com/matzehuels/graphnet/pkg/observability"
)

// loadLibrary reads the library file at path.
func (c *CLI) loadLibrary(ctx context.Context, path string) (*graph.AnyLibrary, error) {
	return loadFile[any, any, any, any](ctx, c.Logger, path)
}

// loadFile reads a library with typed slots, reporting to the library hooks.
func loadFile[L, G, N, E any](ctx context.Context, logger *log.Logger, path string) (*graph.Library[L, G, N, E], error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "library %s", path)
		}
		return nil, err
	}

	prog := newProgress(logger)
	lib, err := io.ImportFile[L, G, N, E](path)
	graphs := 0
	if err == nil {
		graphs = lib.Len()
	}
	observability.Library().OnLoad(ctx, path, graphs, prog.elapsed(), err)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Loaded %d graphs from %s", graphs, path))
	return lib, nil
}

// saveLibrary writes lib to path, reporting to the library hooks.
func (c *CLI) saveLibrary(ctx context.Context, lib *graph.AnyLibrary, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	prog := newProgress(c.Logger)
	err := io.ExportFile(lib, path)
	size := 0
	if err == nil {
		if fi, statErr := os.Stat(path); statErr == nil {
			size = int(fi.Size())
		}
	}
	observability.Library().OnSave(ctx, path, size, prog.elapsed(), err)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Saved %d graphs to %s", lib.Len(), path))
	return nil
}

// resolveNodes maps node ids of g to indices.
func resolveNodes[G, N, E any](g *graph.Graph[G, N, E], ids []string) ([]int, error) {
	seeds := make([]int, 0, len(ids))
	for _, id := range ids {
		idx, ok := g.FindNode(id)
		if !ok {
			return nil, errors.NotFound("node %q in graph %q", id, g.ID())
		}
		seeds = append(seeds, idx)
	}
	return seeds, nil
}

// nodeIDs maps node indices of g to ids.
func nodeIDs[G, N, E any](g *graph.Graph[G, N, E], indices []int) []string {
	ids := make([]string, len(indices))
	for i, idx := range indices {
		ids[i] = g.Node(idx).ID()
	}
	return ids
}
