package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"corresponding-generator/internal/plan"
)

const explainLongDescription = `Explain, for every ordered pair of struct declarations in each package,
which target fields are moved, with which policy, and why the others are
skipped. Nothing is written.`

func newExplainCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "explain [packages...]",
		Short: "Report field correspondences without generating code",
		Long:  explainLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := root.setup(cmd)
			if err != nil {
				return err
			}

			if err := validate(cfg, log); err != nil {
				return err
			}

			scopes, err := loadScopes(cfg, resolvePatterns(cfg, args), log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, scope := range scopes {
				report := plan.Explain(scope, cfg.PlanConfig())

				fmt.Fprintf(out, "scope %s\n", report.ScopeName)

				if _, err := report.Diagnostics.WriteTo(out); err != nil {
					return fmt.Errorf("writing report: %w", err)
				}
			}

			return nil
		},
	}
}
