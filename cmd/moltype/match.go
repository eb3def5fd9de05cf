package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/molmatch/match"
)

var (
	matchSmarts string
	matchInput  string
)

// newMatchCmd creates the match command: print matching atom indices.
func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Print the atom indices a pattern matches",
		Example: `  moltype match -s '[#6;D2]' -i mol.sdf
  cat mol.sdf | moltype match -s '[C;R3]' -i -`,
		RunE: runMatch,
	}

	cmd.Flags().StringVarP(&matchSmarts, "smarts", "s", "", "substructure pattern (required)")
	cmd.Flags().StringVarP(&matchInput, "input", "i", "", "SDF file, or - for stdin (required)")
	_ = cmd.MarkFlagRequired("smarts")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runMatch(cmd *cobra.Command, args []string) error {
	p, err := match.NewPattern(matchSmarts)
	if err != nil {
		return err
	}
	top, err := readTopology(matchInput)
	if err != nil {
		return err
	}
	logger.Debug("matching",
		zap.String("smarts", matchSmarts),
		zap.Int("atoms", top.Len()))

	count := 0
	for idx, err := range p.FindMatches(top) {
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), idx)
		count++
	}
	logger.Debug("matched", zap.Int("atoms", count))

	return nil
}
