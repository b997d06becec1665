package cli

import (
	"github.com/spf13/cobra"
)

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the dataset and render every page without writing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			exporter, err := a.exporter(a.cfg.Build.Workers)
			if err != nil {
				return err
			}
			report, err := exporter.Check(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("ok: %d pages rendered\n", report.Pages)
			return nil
		},
	}
}
