package cli

import (
	"github.com/spf13/cobra"

	"github.com/FACorreiaa/uk-dental-implants/internal/dataset"
	"github.com/FACorreiaa/uk-dental-implants/internal/resolver"
)

func (a *app) routesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List every page path the site serves",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := dataset.Load()
			if err != nil {
				return err
			}
			for _, route := range resolver.New(data).Routes() {
				cmd.Println(route.Path())
			}
			cmd.Println(resolver.Route{Kind: resolver.KindSitemap}.Path())
			return nil
		},
	}
}
