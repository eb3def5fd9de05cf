package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/molmatch/typer"
)

var (
	typeRules   string
	typeInput   string
	typeWorkers int
)

// newTypeCmd creates the type command: assign and print per-atom types.
func newTypeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "type",
		Short:   "Assign atom types from a YAML rule file",
		Example: `  moltype type -r oplsaa.yaml -i mol.sdf --workers 4`,
		RunE:    runType,
	}

	cmd.Flags().StringVarP(&typeRules, "rules", "r", "", "YAML rule file (required)")
	cmd.Flags().StringVarP(&typeInput, "input", "i", "", "SDF file, or - for stdin (required)")
	cmd.Flags().IntVar(&typeWorkers, "workers", 1, "worker pool size for label-free rules")
	_ = cmd.MarkFlagRequired("rules")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runType(cmd *cobra.Command, args []string) error {
	rs, err := typer.LoadRulesFile(typeRules)
	if err != nil {
		return err
	}
	top, err := readTopology(typeInput)
	if err != nil {
		return err
	}

	types, err := typer.AssignTypes(top, rs,
		typer.WithContext(cmd.Context()),
		typer.WithLogger(logger),
		typer.WithWorkers(typeWorkers))
	if err != nil {
		return err
	}

	for _, a := range top.Atoms() {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", a.Index, a.Symbol, types[a.Index])
	}

	return nil
}
