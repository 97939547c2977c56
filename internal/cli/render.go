package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/graphnet/pkg/buildinfo"
	"github.com/matzehuels/graphnet/pkg/cache"
	"github.com/matzehuels/graphnet/pkg/errors"
	"github.com/matzehuels/graphnet/pkg/observability"
	"github.com/matzehuels/graphnet/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	graphs   []string // graph ids to render; empty renders all
	format   string   // svg, png or dot
	output   string   // output directory
	noCache  bool     // bypass the render cache
	detailed bool     // label nodes and edges with their attributes
	layout   string   // graphviz layout engine
}

// renderCommand creates the render command. Flag defaults come from the
// [render] config section and are applied when the flag is not set.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Draw graphs as SVG, PNG or DOT",
		Long: `Render each graph of a library to <dir>/<graph><ext>. Nodes take their
label, color, shape and pos attributes into account. Images are cached by
the DOT source they were produced from.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("format") {
				opts.format = c.Config.Render.Format
			}
			if !flags.Changed("detailed") {
				opts.detailed = c.Config.Render.Detailed
			}
			if !flags.Changed("layout") {
				opts.layout = c.Config.Render.Layout
			}
			return c.runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.graphs, "graph", "g", nil, "graph to render (repeatable, default all)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "svg", "output format: svg, png or dot")
	cmd.Flags().StringVarP(&opts.output, "output", "o", ".", "output directory")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label nodes and edges with their attributes")
	cmd.Flags().StringVar(&opts.layout, "layout", "dot", "layout engine: dot or neato")

	return cmd
}

// renderJob is one graph queued for rendering.
type renderJob struct {
	graph *render.Graph
	path  string
}

func (c *CLI) runRender(cmd *cobra.Command, path string, opts renderOpts) error {
	ctx := cmd.Context()
	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if err := errors.ValidatePath(opts.output); err != nil {
		return err
	}

	lib, err := loadFile[any, any, render.Style, any](ctx, c.Logger, path)
	if err != nil {
		return err
	}
	render.ApplyStyles(lib)

	jobs, err := renderJobs(lib, opts.graphs, opts.output, format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(opts.output, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	store, err := c.newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	r := renderer{
		cache: store,
		keyer: cache.NewKeyer(buildinfo.Scope()),
		ttl:   c.Config.Cache.TTL(),
		opts:  render.Options{Detailed: opts.detailed, Layout: opts.layout},
	}

	spinner := newSpinnerWithContext(ctx, cmd.ErrOrStderr(), fmt.Sprintf("Rendering %d graphs...", len(jobs)))
	spinner.Start()

	cached := make([]bool, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, job := range jobs {
		g.Go(func() error {
			hit, err := r.renderTo(gctx, job, format)
			cached[i] = hit
			return err
		})
	}
	if err := g.Wait(); err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	out := cmd.OutOrStdout()
	for i, job := range jobs {
		printFile(out, job.path)
		printStats(out, job.graph.NodeCount(), job.graph.EdgeCount(), cached[i])
	}
	return nil
}

// renderJobs selects the graphs named by ids, or all graphs when ids is empty.
func renderJobs(lib *render.Library, ids []string, dir string, format render.Format) ([]renderJob, error) {
	if len(ids) == 0 {
		ids = lib.IDs()
	}
	jobs := make([]renderJob, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		g, err := lib.Get(id)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(dir, outputName(id)+format.Ext())
		if err := errors.ValidatePath(path); err != nil {
			return nil, err
		}
		jobs = append(jobs, renderJob{graph: g, path: path})
	}
	return jobs, nil
}

// outputName maps a graph id to a file name inside the output directory.
func outputName(id string) string {
	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' {
			return '_'
		}
		return r
	}, id)
}

// renderer turns graphs into image files through a cache.
type renderer struct {
	cache cache.Cache
	keyer cache.Keyer
	ttl   time.Duration
	opts  render.Options
}

// renderTo writes job's image and reports whether it came from the cache.
func (r renderer) renderTo(ctx context.Context, job renderJob, format render.Format) (bool, error) {
	id := job.graph.ID()
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, id, string(format))
	start := time.Now()

	data, hit, err := r.image(ctx, job.graph, format)
	if err == nil {
		err = os.WriteFile(job.path, data, 0o644)
	}
	hooks.OnRenderComplete(ctx, id, string(format), time.Since(start), err)
	if err != nil {
		return false, fmt.Errorf("render %s: %w", id, err)
	}
	return hit, nil
}

func (r renderer) image(ctx context.Context, g *render.Graph, format render.Format) ([]byte, bool, error) {
	dot := render.ToDOT(g, r.opts)
	if format == render.FormatDOT {
		return []byte(dot), false, nil
	}

	key := r.keyer.RenderKey(dot, string(format))
	if data, ok, err := r.cache.Get(ctx, key); err == nil && ok {
		return data, true, nil
	}
	data, err := render.Render(ctx, dot, format)
	if err != nil {
		return nil, false, err
	}
	_ = r.cache.Set(ctx, key, data, r.ttl)
	return data, false, nil
}
