package commands

import (
	"github.com/spf13/cobra"

	"farm-market/config"
	"farm-market/devserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the in-memory dev backend on the configured port",
	Long: `Serve runs a development stand-in for the marketplace backend. It keeps all
state in memory, issues real bearer tokens and implements every endpoint the
client uses, so the CLI can be exercised end to end without a deployment.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return devserver.New(config.AppConfig).Run(config.AppConfig.Port)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
