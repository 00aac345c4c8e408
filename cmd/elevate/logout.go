package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCommand = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and discard the stored session token",
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCommand)
}

func runLogout(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	a.store.Logout()
	fmt.Println("Signed out.")
	return nil
}
