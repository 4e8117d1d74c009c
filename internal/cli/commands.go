package cli

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/components"
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
	"github.com/katalvlaran/wgraph/prim_kruskal"
	"github.com/katalvlaran/wgraph/threshold"
)

type statsView struct {
	Nodes         int     `json:"nodes" yaml:"nodes"`
	Insertions    int     `json:"insertions" yaml:"insertions"`
	DistinctEdges int     `json:"distinct_edges" yaml:"distinct_edges"`
	SelfLoops     int     `json:"self_loops" yaml:"self_loops"`
	Isolated      int     `json:"isolated" yaml:"isolated"`
	MinWeight     float64 `json:"min_weight" yaml:"min_weight"`
	MaxWeight     float64 `json:"max_weight" yaml:"max_weight"`
}

type edgeView struct {
	From   string  `json:"from" yaml:"from"`
	To     string  `json:"to" yaml:"to"`
	Weight float64 `json:"weight" yaml:"weight"`
}

type weightView struct {
	From   string   `json:"from" yaml:"from"`
	To     string   `json:"to" yaml:"to"`
	Found  bool     `json:"found" yaml:"found"`
	Weight *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
}

type pathView struct {
	From     string     `json:"from" yaml:"from"`
	To       string     `json:"to" yaml:"to"`
	Weighted bool       `json:"weighted" yaml:"weighted"`
	Found    bool       `json:"found" yaml:"found"`
	Nodes    []string   `json:"nodes" yaml:"nodes"`
	Steps    []edgeView `json:"steps,omitempty" yaml:"steps,omitempty"`
	Total    float64    `json:"total" yaml:"total"`
}

type reachView struct {
	Start string         `json:"start" yaml:"start"`
	Order []string       `json:"order" yaml:"order"`
	Depth map[string]int `json:"depth" yaml:"depth"`
}

type thresholdView struct {
	From      string   `json:"from" yaml:"from"`
	To        string   `json:"to" yaml:"to"`
	Reachable bool     `json:"reachable" yaml:"reachable"`
	Threshold *float64 `json:"threshold,omitempty" yaml:"threshold,omitempty"`
}

type mstView struct {
	Method string     `json:"method" yaml:"method"`
	Root   string     `json:"root,omitempty" yaml:"root,omitempty"`
	Total  float64    `json:"total" yaml:"total"`
	Edges  []edgeView `json:"edges" yaml:"edges"`
}

func edgeViews(edges []core.Edge) []edgeView {
	out := make([]edgeView, len(edges))
	for i, e := range edges {
		out[i] = edgeView{From: e.From, To: e.To, Weight: e.Weight}
	}

	return out
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print node and edge counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := a.graph.Stats()
			view := statsView(s)

			return a.render(cmd.OutOrStdout(), view, func(w io.Writer) {
				fmt.Fprintf(w, "nodes:          %d\n", s.Nodes)
				fmt.Fprintf(w, "insertions:     %d\n", s.Insertions)
				fmt.Fprintf(w, "distinct edges: %d\n", s.DistinctEdges)
				fmt.Fprintf(w, "self loops:     %d\n", s.SelfLoops)
				fmt.Fprintf(w, "isolated:       %d\n", s.Isolated)
				fmt.Fprintf(w, "weight range:   [%g, %g]\n", s.MinWeight, s.MaxWeight)
			})
		},
	}
}

func (a *app) nodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nodes",
		Short: "List nodes in creation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nodes := a.graph.Nodes()

			return a.render(cmd.OutOrStdout(), nodes, func(w io.Writer) {
				for _, n := range nodes {
					fmt.Fprintln(w, n)
				}
			})
		},
	}
}

func (a *app) neighborsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors <node>",
		Short: "List the neighbors of a node with edge weights",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edges := edgeViews(a.graph.NeighborEdges(args[0]))

			return a.render(cmd.OutOrStdout(), edges, func(w io.Writer) {
				for _, e := range edges {
					fmt.Fprintf(w, "%s\t%g\n", e.To, e.Weight)
				}
			})
		},
	}
}

func (a *app) weightCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weight <u> <v>",
		Short: "Print the weight of the edge u–v",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := weightView{From: args[0], To: args[1]}
			if w, ok := a.graph.EdgeWeight(args[0], args[1]); ok {
				view.Found, view.Weight = true, &w
			}

			return a.render(cmd.OutOrStdout(), view, func(w io.Writer) {
				if !view.Found {
					fmt.Fprintln(w, "no edge")
					return
				}
				fmt.Fprintf(w, "%g\n", *view.Weight)
			})
		},
	}
}

func (a *app) pathCmd() *cobra.Command {
	var weighted bool
	cmd := &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Print a shortest path (fewest hops, or cheapest with --weighted)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := pathView{From: args[0], To: args[1], Weighted: weighted}
			if weighted {
				if err := dijkstra.CheckWeights(a.graph); err != nil {
					return err
				}
				p := dijkstra.ShortestPath(a.graph, args[0], args[1])
				view.Found = p != nil
				view.Nodes = p.Nodes()
				view.Total = p.Total()
				if !p.Trivial() {
					for _, s := range p {
						view.Steps = append(view.Steps, edgeView{From: s.From, To: s.To, Weight: s.Weight})
					}
				}
			} else {
				view.Nodes = bfs.ShortestPath(a.graph, args[0], args[1])
				view.Found = view.Nodes != nil
				if view.Found {
					view.Total = float64(len(view.Nodes) - 1)
				}
			}
			a.logger.Printf("path %s -> %s weighted=%t found=%t", args[0], args[1], weighted, view.Found)

			return a.render(cmd.OutOrStdout(), view, func(w io.Writer) {
				if !view.Found {
					fmt.Fprintln(w, "no path")
					return
				}
				fmt.Fprintln(w, strings.Join(view.Nodes, " -> "))
				if weighted {
					fmt.Fprintf(w, "total: %g\n", view.Total)
				} else {
					fmt.Fprintf(w, "hops: %g\n", view.Total)
				}
			})
		},
	}
	cmd.Flags().BoolVar(&weighted, "weighted", false, "minimize total weight instead of hop count")

	return cmd
}

func (a *app) reachCmd() *cobra.Command {
	var maxDepth int
	cmd := &cobra.Command{
		Use:   "reach <node>",
		Short: "List nodes reachable from a node in breadth-first order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := bfs.BFS(a.graph, args[0], bfs.WithMaxDepth(maxDepth))
			if err != nil {
				return err
			}
			view := reachView{Start: args[0], Order: res.Order, Depth: res.Depth}

			return a.render(cmd.OutOrStdout(), view, func(w io.Writer) {
				for _, n := range res.Order {
					fmt.Fprintf(w, "%d\t%s\n", res.Depth[n], n)
				}
			})
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop expanding past this depth (0 = unlimited)")

	return cmd
}

func (a *app) distancesCmd() *cobra.Command {
	var maxDistance float64
	cmd := &cobra.Command{
		Use:   "distances <node>",
		Short: "Print weighted distances from a node to every reachable node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []dijkstra.Option{dijkstra.Source(args[0])}
			if cmd.Flags().Changed("max-distance") {
				if maxDistance < 0 || math.IsNaN(maxDistance) {
					return fmt.Errorf("%w: %g", dijkstra.ErrBadMaxDistance, maxDistance)
				}
				opts = append(opts, dijkstra.WithMaxDistance(maxDistance))
			}
			dist, _, err := dijkstra.Dijkstra(a.graph, opts...)
			if err != nil {
				return err
			}

			// Unreachable nodes are omitted: +Inf has no JSON encoding.
			var view []edgeView
			for _, n := range a.graph.Nodes() {
				if d := dist[n]; !math.IsInf(d, 1) {
					view = append(view, edgeView{From: args[0], To: n, Weight: d})
				}
			}

			return a.render(cmd.OutOrStdout(), view, func(w io.Writer) {
				for _, e := range view {
					fmt.Fprintf(w, "%s\t%g\n", e.To, e.Weight)
				}
			})
		},
	}
	cmd.Flags().Float64Var(&maxDistance, "max-distance", 0, "ignore nodes farther than this")

	return cmd
}

func (a *app) componentsCmd() *cobra.Command {
	var (
		T    float64
		node string
	)
	cmd := &cobra.Command{
		Use:   "components",
		Short: "Partition nodes into components joined by edges of weight <= threshold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var comps [][]string
			if node != "" {
				if c := components.ComponentOf(a.graph, node, T); c != nil {
					comps = [][]string{c}
				}
			} else {
				comps = components.ConnectedComponents(a.graph, T)
			}
			a.logger.Printf("threshold %g: %d components", T, len(comps))

			return a.render(cmd.OutOrStdout(), comps, func(w io.Writer) {
				for _, c := range comps {
					fmt.Fprintln(w, strings.Join(c, " "))
				}
			})
		},
	}
	cmd.Flags().Float64VarP(&T, "threshold", "t", 0, "maximum edge weight to follow")
	cmd.Flags().StringVar(&node, "node", "", "only print the component containing this node")
	_ = cmd.MarkFlagRequired("threshold")

	return cmd
}

func (a *app) thresholdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "threshold <from> <to>",
		Short: "Print the smallest edge-weight threshold that connects two nodes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := thresholdView{From: args[0], To: args[1]}
			if t, ok := threshold.SmallestConnectingThreshold(a.graph, args[0], args[1]); ok {
				view.Reachable, view.Threshold = true, &t
			}

			return a.render(cmd.OutOrStdout(), view, func(w io.Writer) {
				if !view.Reachable {
					fmt.Fprintln(w, "unreachable")
					return
				}
				fmt.Fprintf(w, "%g\n", *view.Threshold)
			})
		},
	}
}

func (a *app) mstCmd() *cobra.Command {
	var method, root string
	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Print a minimum spanning tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := prim_kruskal.DefaultOptions(
				prim_kruskal.WithMethod(a.cfg.MST.Method),
				prim_kruskal.WithRoot(a.cfg.MST.Root),
			)
			if cmd.Flags().Changed("method") {
				opts.Method = method
			}
			if cmd.Flags().Changed("root") {
				opts.Root = root
			}
			if opts.Method == prim_kruskal.MethodPrim && opts.Root == "" && a.graph.NodeCount() > 0 {
				opts.Root = a.graph.Nodes()[0]
			}

			edges, total, err := prim_kruskal.Compute(a.graph, opts)
			if err != nil {
				return err
			}
			view := mstView{Method: opts.Method, Total: total, Edges: edgeViews(edges)}
			if opts.Method == prim_kruskal.MethodPrim {
				view.Root = opts.Root
			}

			return a.render(cmd.OutOrStdout(), view, func(w io.Writer) {
				for _, e := range view.Edges {
					fmt.Fprintf(w, "%s\t%s\t%g\n", e.From, e.To, e.Weight)
				}
				fmt.Fprintf(w, "total: %g\n", total)
			})
		},
	}
	cmd.Flags().StringVar(&method, "method", prim_kruskal.MethodKruskal, "kruskal or prim")
	cmd.Flags().StringVar(&root, "root", "", "start node for prim (default: first node)")

	return cmd
}
