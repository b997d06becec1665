// Package cli wires the implantsite commands.
package cli

import (
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	appLogger "github.com/FACorreiaa/uk-dental-implants/app/logger"
	"github.com/FACorreiaa/uk-dental-implants/config"
)

const serviceName = "uk-dental-implants"

// app is the state shared by every command once config has loaded.
type app struct {
	cfg    config.Config
	logger *slog.Logger

	loadConfig func() (config.Config, error)
}

// NewRootCommand builds the implantsite command tree.
func NewRootCommand() *cobra.Command {
	a := &app{loadConfig: config.InitConfig}
	return a.rootCommand()
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "implantsite",
		Short:         "UK dental implant lead-generation site",
		Long:          "Serves, exports and checks the UK dental implant location and treatment pages.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := godotenv.Load(); err != nil {
				log.Println("Warning: .env file not found or error loading:", err)
			}
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = appLogger.New(cmd.ErrOrStderr(), cfg.IsDevelopment())
			slog.SetDefault(a.logger)
			return nil
		},
	}

	root.AddCommand(
		a.serveCommand(),
		a.buildCommand(),
		a.checkCommand(),
		a.routesCommand(),
	)
	return root
}
