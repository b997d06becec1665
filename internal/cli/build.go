package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/uk-dental-implants/internal/container"
	"github.com/FACorreiaa/uk-dental-implants/internal/site"
)

func (a *app) buildCommand() *cobra.Command {
	var (
		out     string
		workers int
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export every page as static files",
		Long: `Renders every location, treatment and aggregate page plus sitemap.xml
and 404.html into the output directory. Flags override build.outputDir and
build.workers from the config.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("out") {
				out = a.cfg.Build.OutputDir
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Build.Workers
			}

			exporter, err := a.exporter(workers)
			if err != nil {
				return err
			}
			report, err := exporter.Export(cmd.Context(), out)
			if err != nil {
				return err
			}
			cmd.Printf("Exported %d pages (%d bytes) to %s in %s\n", report.Pages, report.Bytes, out, report.Duration.Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "dist", "output directory")
	cmd.Flags().IntVarP(&workers, "workers", "w", 8, "number of pages rendered in parallel")
	return cmd
}

func (a *app) exporter(workers int) (*site.Exporter, error) {
	c, err := container.NewContainer(a.cfg, a.logger)
	if err != nil {
		return nil, err
	}
	return site.NewExporter(c.Resolver, c.Renderer, workers, a.logger), nil
}
