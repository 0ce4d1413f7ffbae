package main

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/apdreports/incident-reports/models"
)

var loginUsername string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginUsername == "" {
			return fmt.Errorf("--username is required")
		}
		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return err
		}

		api, _ := newClient()
		auth, err := api.Login(cmd.Context(), models.Credentials{
			Username: loginUsername,
			Password: string(password),
		})
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		fmt.Printf("logged in as officer #%d\n", auth.Officer.OfficerNumber)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Revoke the token and clear the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, _ := newClient()
		api.Logout(cmd.Context())
		fmt.Println("logged out")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginUsername, "username", "", "account username")
}
