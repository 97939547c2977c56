// Package cli implements the graphnet command-line interface.
//
// This package provides commands for checking, formatting, querying,
// exporting, rendering and browsing graph library files. The CLI is built
// using cobra and logs via the charmbracelet/log library.
//
// # Commands
//
//   - check: load a library and lint its ids and adjacency
//   - fmt: rewrite a library in canonical form
//   - info: summarize graphs, node and edge counts, and roots
//   - roots, connected: run traversal queries from seed nodes
//   - export: write a library as JSON or YAML
//   - render: draw graphs as SVG, PNG or DOT
//   - browse: explore a library interactively
//   - cache: manage the render cache
//
// # Configuration
//
// Defaults come from a TOML file (see the config package). Command-line
// flags override configured values. All commands support --verbose (-v)
// for debug-level logging.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphnet/internal/config"
	"github.com/matzehuels/graphnet/pkg/buildinfo"
	"github.com/matzehuels/graphnet/pkg/cache"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "graphnet"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
	verbose    bool
	logFile    io.Closer
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Close releases the log file, if one was opened.
func (c *CLI) Close() error {
	if c.logFile == nil {
		return nil
	}
	return c.logFile.Close()
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "graphnet works with libraries of attributed graphs",
		Long: `graphnet reads, checks, queries and renders .fgn graph libraries: named
collections of directed multigraphs whose graphs, nodes and edges carry
key/value attributes.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return c.setup() },
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/graphnet/config.toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	// Register all subcommands
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.fmtCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.rootsCommand())
	root.AddCommand(c.connectedCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration and applies its logging settings.
func (c *CLI) setup() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	if c.verbose {
		level = log.DebugLevel
	}
	c.SetLogLevel(level)

	if cfg.Log.File != "" && c.logFile == nil {
		c.logFile = c.useLogFile(cfg.Log)
	}
	registerHooks(c.Logger)
	return nil
}

// =============================================================================
// Cache
// =============================================================================

// newCache returns the render cache selected by configuration and flags.
func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache || c.Config.Cache.Disabled {
		return cache.NewNullCache(), nil
	}
	dir, err := c.cacheDir()
	if err != nil {
		c.Logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the configured cache directory, or the XDG default.
func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	return cacheDir()
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/graphnet/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
