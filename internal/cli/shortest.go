package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/againey/MakeIt.Tile-sub003/dfs"
	"github.com/againey/MakeIt.Tile-sub003/dijkstra"
)

func newShortestCmd() *cobra.Command {
	var (
		src      sourceFlags
		from, to int
		maxDist  float64
	)

	cmd := &cobra.Command{
		Use:   "shortest",
		Short: "Print the shortest path between two entities",
		Example: `  meshwalk shortest --builder grid:4x4 --weights uniform:1:5 --distance weight --from 0 --to 15`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			fx, err := src.load()
			if err != nil {
				return err
			}
			g := src.graph(fx)
			if err := checkRoots(g, from, to); err != nil {
				return err
			}
			d, err := src.edgeDistance(fx, g)
			if err != nil {
				return err
			}

			opts := []dijkstra.Option{
				dijkstra.Source(from),
				dijkstra.WithContext(ctx),
				dijkstra.WithLogger(logger),
				dijkstra.WithReturnPath(),
			}
			if maxDist > 0 {
				opts = append(opts, dijkstra.WithMaxDistance(maxDist))
			}

			prog := newProgress(logger)
			res, err := dijkstra.Dijkstra(g, d, opts...)
			if err != nil {
				return err
			}
			if !res.Reached(to) {
				return fmt.Errorf("%w: %d from %d", ErrUnreachable, to, from)
			}
			path, err := res.PathTo(to)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v %g\n", path, res.Dist[to])
			prog.done("shortest path", "hops", len(path)-1)
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().IntVar(&from, "from", 0, "source entity")
	cmd.Flags().IntVar(&to, "to", 0, "target entity")
	cmd.Flags().Float64Var(&maxDist, "max-distance", 0, "stop beyond this distance (0 = no limit)")
	return cmd
}

func newComponentsCmd() *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "components",
		Short: "Label connected components and report cycles",
		Example: `  meshwalk components --builder path:3 --builder cycle:4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fx, err := src.load()
			if err != nil {
				return err
			}
			res, err := dfs.Components(cmd.Context(), src.graph(fx))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "components: %d\n", res.Count())
			for c := 0; c < res.Count(); c++ {
				fmt.Fprintf(out, "%d: size=%d cyclic=%t\n", c, res.Sizes[c], res.Cyclic(c))
			}
			return nil
		},
	}

	src.register(cmd)
	return cmd
}
