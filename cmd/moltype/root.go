package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/molmatch/mol"
)

var (
	flagVerbose bool
	flagQuiet   bool

	// logger is configured by the root command before any subcommand runs.
	logger = zap.NewNop()
)

// newRootCmd assembles the moltype command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "moltype",
		Short: "Substructure matching and atom typing for molecules",
		Long: `moltype reads molecules from V2000 SDF files, matches substructure
patterns against them, assigns per-atom force-field types from YAML rule
files, and renders the results as PNG depictions.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger()
		},
	}

	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging to stderr")
	root.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress logging entirely")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")

	root.AddCommand(newMatchCmd(), newTypeCmd(), newRenderCmd())

	return root
}

// setupLogger builds the process logger: silent below warnings by default,
// everything with --verbose, nothing with --quiet.
func setupLogger() error {
	if flagQuiet {
		logger = zap.NewNop()

		return nil
	}
	cfg := zap.NewDevelopmentConfig()
	if !flagVerbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	logger = l

	return nil
}

// readTopology loads one molecule from path, or from stdin for "-".
func readTopology(path string) (*mol.Topology, error) {
	if path == "-" {
		return mol.ReadSDF(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	top, err := mol.ReadSDF(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return top, nil
}
