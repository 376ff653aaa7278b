package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"farm-market/basket"
	"farm-market/config"
	"farm-market/models"
	"farm-market/tui"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Browse the market interactively and fill a basket (buyer)",
	Long: `Shop opens the interactive buyer view: search, filter and sort the product
list, add items to a basket and place a mock order against your balance. The
basket lives for the session only.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		roleFlag = string(models.RoleBuyer)
		c, err := newClient()
		if err != nil {
			return err
		}

		b := basket.New(config.AppConfig.StartingBalance)
		model := tui.NewShopModel(c, b)
		program := tea.NewProgram(model, tea.WithAltScreen())
		_, err = program.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(shopCmd)
}
