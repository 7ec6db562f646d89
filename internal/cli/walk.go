package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/againey/MakeIt.Tile-sub003/walk"
)

func newWalkCmd() *cobra.Command {
	var (
		src       sourceFlags
		order     string
		roots     []int
		maxDepth  int
		seedEdges bool
	)

	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Print the visit log of a walk",
		Long: `Walk visits every entity reachable from the roots once, in the order the
chosen queue pops them, and prints entity, depth, distance and the edge it
was reached through (-1 for roots).`,
		Example: `  # Breadth-first over a 3x3 vertex grid
  meshwalk walk --builder grid:3x3 --order bfs

  # Nearest-first over an icosahedron by great-circle distance
  meshwalk walk --builder platonic:icosahedron --order nearest --distance spherical

  # Face walk of a fixture file
  meshwalk walk --fixture mesh.yaml --faces --roots 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			fx, err := src.load()
			if err != nil {
				return err
			}
			g := src.graph(fx)
			d, err := src.edgeDistance(fx, g)
			if err != nil {
				return err
			}
			q, err := newQueue(order, src.seed, d)
			if err != nil {
				return err
			}

			opts := []walk.Option{
				walk.WithContext(ctx),
				walk.WithLogger(logger),
				walk.WithMaxDepth(maxDepth),
			}
			if seedEdges {
				opts = append(opts, walk.WithSeedEdges())
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ENTITY\tDEPTH\tDISTANCE\tEDGE")
			prog := newProgress(logger)
			res, err := walk.Walk(g, roots, q, func(v *walk.Visitor[float64]) error {
				fmt.Fprintf(tw, "%d\t%d\t%g\t%d\n", v.Entity(), v.Depth(), v.Distance(), v.Edge())
				v.VisitAllNeighbors()
				return nil
			}, opts...)
			if ferr := tw.Flush(); err == nil {
				err = ferr
			}
			if err != nil {
				return err
			}
			prog.done("walk complete", "visits", res.Visits, "marked", res.Visited.Count(), "entities", g.Len())
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().StringVar(&order, "order", "bfs", "visit order (stack bfs dfs random nearest farthest)")
	cmd.Flags().IntSliceVar(&roots, "roots", []int{0}, "root entities")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "drop neighbors deeper than this (0 = no limit)")
	cmd.Flags().BoolVar(&seedEdges, "seed-edges", false, "mark roots and start from their neighbors")

	return cmd
}

func newReachCmd() *cobra.Command {
	var (
		src   sourceFlags
		roots []int
	)

	cmd := &cobra.Command{
		Use:   "reach",
		Short: "List the entities reachable from the roots",
		Example: `  meshwalk reach --builder path:3 --builder cycle:3 --roots 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			fx, err := src.load()
			if err != nil {
				return err
			}
			g := src.graph(fx)

			reached, err := walk.Reachable(g, roots, walk.WithContext(ctx), walk.WithLogger(logger))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d/%d %v\n", reached.GetCardinality(), g.Len(), reached.ToArray())
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().IntSliceVar(&roots, "roots", []int{0}, "root entities")
	return cmd
}
