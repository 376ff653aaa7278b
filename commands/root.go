package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"farm-market/client"
	"farm-market/config"
	"farm-market/models"
	"farm-market/session"
)

var (
	// Global flags
	roleFlag   string
	backendURL string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "farmmarket",
	Short: "Farm Market - terminal client for the farm produce marketplace",
	Long: `Farm Market is a terminal client for the farm produce marketplace.

Farmers manage their product listings and answer buyer chats; buyers browse,
filter and sort produce, fill a basket and message farmers. Most commands need
a session: log in once per role with "farmmarket login" and the token is kept
under your home directory until you log out.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadConfig()
		if backendURL != "" {
			config.AppConfig.BackendURL = backendURL
		}
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&roleFlag, "role", "buyer", "Marketplace role: farmer or buyer")
	rootCmd.PersistentFlags().StringVar(&backendURL, "backend", "", "Backend base URL (overrides BACKEND_URL)")
}

func parseRole() (models.Role, error) {
	switch roleFlag {
	case string(models.RoleFarmer):
		return models.RoleFarmer, nil
	case string(models.RoleBuyer):
		return models.RoleBuyer, nil
	}
	return "", fmt.Errorf("invalid role %q: must be farmer or buyer", roleFlag)
}

// newClient wires the API client to the session store for the selected role.
func newClient() (*client.Client, error) {
	role, err := parseRole()
	if err != nil {
		return nil, err
	}
	store := session.NewStore(config.AppConfig.SessionDir)
	c := client.New(config.AppConfig.BackendURL, role, store)
	c.WithTimeout(config.AppConfig.HTTPTimeout)
	return c, nil
}
