package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/elevateai/elevate-client/internal/auth"
)

var loginCommand = &cobra.Command{
	Use:   "login",
	Short: "Sign in to ElevateAI with Google or LinkedIn",
	Long: `Starts a browser sign-in. A local listener waits for the redirect
from the ElevateAI backend and stores the issued session token. Open the
printed URL in your browser if it does not open automatically.`,
	RunE: runLogin,
}

var (
	loginProvider string
	loginPort     int
	loginTimeout  time.Duration
)

func init() {
	loginCommand.Flags().StringVarP(&loginProvider, "provider", "p", auth.ProviderGoogle, "OAuth provider: google or linkedin")
	loginCommand.Flags().IntVar(&loginPort, "port", 0, "Local callback port (0 picks a free port)")
	loginCommand.Flags().DurationVar(&loginTimeout, "timeout", 5*time.Minute, "How long to wait for the sign-in to complete")

	rootCmd.AddCommand(loginCommand)
}

func runLogin(cmd *cobra.Command, args []string) error {
	if loginProvider != auth.ProviderGoogle && loginProvider != auth.ProviderLinkedIn {
		return fmt.Errorf("unknown provider %q: use google or linkedin", loginProvider)
	}

	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	listener, err := auth.NewListener(loginPort)
	if err != nil {
		return err
	}

	a.events.LoginStarted()

	url := auth.AuthorizationURL(a.cfg.APIBaseURL, loginProvider, listener.RedirectURI())
	fmt.Println("Open this URL in your browser to sign in:")
	fmt.Println()
	fmt.Println("  " + url)
	fmt.Println()
	fmt.Println("Waiting for sign-in to complete...")

	waitCtx, cancel := context.WithTimeout(ctx, loginTimeout)
	defer cancel()
	token, err := listener.Wait(waitCtx)
	if err != nil {
		return err
	}

	if err := a.store.Login(ctx, token); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	a.events.LoginCompleted(loginProvider)

	if user := a.store.User(); user != nil {
		fmt.Printf("Signed in as %s (%s)\n", user.Name, user.Email)
	} else {
		fmt.Println("Signed in.")
	}
	return nil
}
