// Package cli provides the cobra commands of the crucible binary.
package cli

import (
	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X ...cli.Version=v1.2.3".
var Version = "dev"

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "crucible",
		Short:   "Minimum heat loss through a city grid",
		Version: Version,
		Long: `crucible finds the cheapest route for a crucible across a grid of digits,
where each digit is the heat lost on entering that block.

Regular crucibles move at most 3 blocks in a straight line; ultra crucibles
need at least 4 straight blocks before turning and at most 10.`,
		SilenceUsage: true,
	}
	root.AddCommand(newSolveCmd(), newVersionCmd())
	return root
}

// Execute runs the root command and returns an exit code.
// The caller (main) should call os.Exit with this code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		// error already printed by cobra
		return 1
	}
	return 0
}
