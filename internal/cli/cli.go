// Package cli implements the meshwalk command-line interface.
//
// A command loads a topology, either from a YAML fixture file or from one or
// more builder specs, then runs a traversal over its vertices or faces and
// prints the result.
//
// # Commands
//
//   - walk:       visit log of a walk in a chosen order
//   - reach:      entities reachable from a set of roots
//   - shortest:   shortest path between two entities
//   - components: connected components and whether each has a cycle
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, including the
// traversal engine's own traces. The logger travels in the command context.
package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// NewRootCommand returns the meshwalk command tree.
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "meshwalk",
		Short:        "meshwalk traverses vertex and face adjacency of half-edge topologies",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("meshwalk %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newWalkCmd())
	root.AddCommand(newReachCmd())
	root.AddCommand(newShortestCmd())
	root.AddCommand(newComponentsCmd())

	return root
}

// Execute runs the meshwalk CLI with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
