package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"farm-market/client"
	"farm-market/models"
)

var (
	loginEmail    string
	loginPassword string

	registerName          string
	registerPhone         string
	registerFarmAddress   string
	registerFarmSize      float64
	registerAddress       string
	registerPaymentMethod string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session token for the selected role",
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginEmail == "" || loginPassword == "" {
			return errors.New("both --email and --password are required")
		}

		c, err := newClient()
		if err != nil {
			return err
		}

		resp, err := c.Login(context.Background(), loginEmail, loginPassword)
		if err != nil {
			if client.IsAuthError(err) {
				return errors.New("invalid email or password")
			}
			return err
		}

		fmt.Printf("Logged in as %s (%s)\n", resp.User.Name, c.Role())
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the stored session token for the selected role",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		if err := c.Logout(); err != nil {
			return err
		}
		fmt.Printf("Logged out (%s)\n", c.Role())
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account for the selected role",
	RunE: func(cmd *cobra.Command, args []string) error {
		if registerName == "" || loginEmail == "" || loginPassword == "" {
			return errors.New("--name, --email and --password are required")
		}

		c, err := newClient()
		if err != nil {
			return err
		}

		var resp *models.LoginResponse
		switch c.Role() {
		case models.RoleFarmer:
			resp, err = c.RegisterFarmer(context.Background(), models.RegisterFarmerRequest{
				Name:        registerName,
				Email:       loginEmail,
				Password:    loginPassword,
				PhoneNumber: registerPhone,
				FarmAddress: registerFarmAddress,
				FarmSize:    registerFarmSize,
			})
		default:
			resp, err = c.RegisterBuyer(context.Background(), models.RegisterBuyerRequest{
				Name:          registerName,
				Email:         loginEmail,
				Password:      loginPassword,
				PhoneNumber:   registerPhone,
				Address:       registerAddress,
				PaymentMethod: registerPaymentMethod,
			})
		}
		if err != nil {
			return err
		}

		fmt.Printf("Registered %s (%s). Run \"farmmarket login --role %s\" to start a session.\n",
			resp.User.Name, c.Role(), c.Role())
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{loginCmd, registerCmd} {
		cmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
		cmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
	}

	registerCmd.Flags().StringVar(&registerName, "name", "", "Full name")
	registerCmd.Flags().StringVar(&registerPhone, "phone", "", "Phone number")
	registerCmd.Flags().StringVar(&registerFarmAddress, "farm-address", "", "Farm address (farmer)")
	registerCmd.Flags().Float64Var(&registerFarmSize, "farm-size", 0, "Farm size in hectares (farmer)")
	registerCmd.Flags().StringVar(&registerAddress, "address", "", "Delivery address (buyer)")
	registerCmd.Flags().StringVar(&registerPaymentMethod, "payment-method", "", "Preferred payment method (buyer)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(registerCmd)
}
