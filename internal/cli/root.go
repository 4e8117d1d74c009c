// Package cli implements the wgraph command tree.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/internal/config"
	"github.com/katalvlaran/wgraph/loader"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	v      *viper.Viper
	cfg    config.Config
	graph  *core.Graph
	logger *log.Logger
}

// flagKeys binds persistent flags to their configuration keys.
var flagKeys = map[string]string{
	"input":    "input",
	"format":   "format",
	"verbose":  "verbose",
	"comma":    "loader.comma",
	"comment":  "loader.comment",
	"header":   "loader.header",
	"isolated": "loader.isolated",
}

// NewRootCommand builds a fresh command tree. Each call has its own viper
// instance, so trees never share state.
func NewRootCommand() *cobra.Command {
	a := &app{v: config.New(), logger: log.New(io.Discard, "", 0)}

	root := &cobra.Command{
		Use:   "wgraph",
		Short: "Query an undirected weighted graph loaded from an edge list",
		Long: "wgraph loads a three-column edge list (A,B,weight) once and answers " +
			"adjacency, shortest-path, threshold-component, bottleneck and MST queries.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .wgraph.yaml)")
	pf.StringP("input", "i", "", "edge list file, - for stdin")
	pf.String("format", config.FormatText, "output format: text, json or yaml")
	pf.BoolP("verbose", "v", false, "log progress to stderr")
	pf.String("comma", ",", "field delimiter")
	pf.String("comment", "#", "comment prefix, empty to disable")
	pf.Bool("header", false, "skip the first record")
	pf.Bool("isolated", false, "accept single-field records as isolated nodes")

	root.AddCommand(
		a.statsCmd(),
		a.nodesCmd(),
		a.neighborsCmd(),
		a.weightCmd(),
		a.pathCmd(),
		a.reachCmd(),
		a.distancesCmd(),
		a.componentsCmd(),
		a.thresholdCmd(),
		a.mstCmd(),
		a.generateCmd(),
	)

	return root
}

// Execute runs the command tree and exits with status 1 on error.
func Execute() {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wgraph:", err)
		os.Exit(1)
	}
}

// setup resolves configuration and loads the graph once for the invocation.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := a.configure(cmd, args); err != nil {
		return err
	}

	return a.load(cmd)
}

// configure merges defaults, config file, environment and flags into a.cfg.
func (a *app) configure(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if err := config.ReadFile(a.v, cfgFile); err != nil {
		return err
	}
	for flag, key := range flagKeys {
		if err := a.v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("bind --%s: %w", flag, err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if cfg.Verbose {
		a.logger = log.New(cmd.ErrOrStderr(), "wgraph: ", log.LstdFlags)
	}
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Printf("config file %s", used)
	}

	return nil
}

// load reads cfg.Input into a.graph.
func (a *app) load(cmd *cobra.Command) error {
	if a.cfg.Input == "" {
		return fmt.Errorf("no input: pass --input or set %s_INPUT", config.EnvPrefix)
	}

	start := time.Now()
	opts := a.cfg.Loader.Options()
	var (
		g   *core.Graph
		err error
	)
	if a.cfg.Input == "-" {
		g, err = loader.Load(cmd.InOrStdin(), opts...)
	} else {
		g, err = loader.LoadFile(a.cfg.Input, opts...)
	}
	if err != nil {
		return err
	}

	a.graph = g
	a.logger.Printf("loaded %s: %d nodes, %d edges in %s",
		a.cfg.Input, g.NodeCount(), g.EdgeCount(), time.Since(start).Round(time.Microsecond))

	return nil
}
