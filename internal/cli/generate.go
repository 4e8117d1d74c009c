package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/loader"
)

// generateCmd writes a synthetic edge list. It needs no input graph, so it
// replaces the root pre-run with configure only.
func (a *app) generateCmd() *cobra.Command {
	var (
		topo       builder.Topology
		seed       int64
		minW, maxW float64
		intWeights bool
	)
	cmd := &cobra.Command{
		Use:   "generate <path|cycle|star|wheel|complete|grid|random>",
		Short: "Write a generated graph as an edge list",
		Long: "generate writes a synthetic graph in the configured delimiter. " +
			"Nodes without edges are written as single-field records; read them back with --isolated.",
		Args:              cobra.ExactArgs(1),
		PersistentPreRunE: a.configure,
		RunE: func(cmd *cobra.Command, args []string) error {
			topo.Kind = args[0]
			cons, err := topo.Constructor()
			if err != nil {
				return err
			}

			opts := []builder.BuilderOption{builder.WithSeed(seed)}
			switch {
			case !(minW <= maxW):
				return fmt.Errorf("generate: --min-weight %g > --max-weight %g", minW, maxW)
			case intWeights:
				opts = append(opts, builder.WithWeightFn(builder.IntWeightFn(int(minW), int(maxW))))
			case minW == maxW:
				opts = append(opts, builder.WithWeightFn(builder.ConstantWeightFn(minW)))
			default:
				opts = append(opts, builder.WithWeightFn(builder.UniformWeightFn(minW, maxW)))
			}

			g, err := builder.BuildGraph(opts, cons)
			if err != nil {
				return err
			}
			a.logger.Printf("generated %s: %d nodes, %d edges", topo.Kind, g.NodeCount(), g.EdgeCount())

			wopts := append(a.cfg.Loader.Options(), loader.WithIsolated(true))

			return loader.Write(cmd.OutOrStdout(), g, wopts...)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&topo.N, "nodes", "n", 10, "node count")
	f.IntVar(&topo.Rows, "rows", 3, "grid rows")
	f.IntVar(&topo.Cols, "cols", 3, "grid columns")
	f.Float64Var(&topo.P, "p", 0.3, "edge probability for random")
	f.Int64Var(&seed, "seed", 1, "random seed")
	f.Float64Var(&minW, "min-weight", 1, "smallest edge weight")
	f.Float64Var(&maxW, "max-weight", 1, "largest edge weight")
	f.BoolVar(&intWeights, "int-weights", false, "draw integer weights")

	return cmd
}
