package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/elevateai/elevate-client/internal/entitlement"
)

var upgradeCommand = &cobra.Command{
	Use:   "upgrade",
	Short: "Start a Pro subscription checkout",
	Long: `Creates a Stripe checkout session for the Pro plan and prints the
checkout URL. Complete the payment in your browser; your plan updates as
soon as the payment settles.`,
	RunE: runUpgrade,
}

var (
	upgradeSource string
	upgradeWait   time.Duration
)

func init() {
	upgradeCommand.Flags().StringVar(&upgradeSource, "source", entitlement.SurfaceQuota, "Which limit prompted the upgrade: keywords, checklist, template_guard, or quota")
	upgradeCommand.Flags().DurationVar(&upgradeWait, "wait", 0, "Poll until the payment settles, e.g. --wait 5m (0 returns immediately)")

	rootCmd.AddCommand(upgradeCommand)
}

func runUpgrade(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	if user := a.store.User(); user != nil && user.IsPro {
		fmt.Println("You are already on the Pro plan.")
		return nil
	}

	a.events.UpgradeClicked(upgradeSource)
	a.events.CheckoutStarted()

	url, err := a.api.CreateCheckoutSession(ctx)
	if err != nil {
		return a.explain(err)
	}

	fmt.Println("Open this URL in your browser to complete checkout:")
	fmt.Println()
	fmt.Println("  " + url)

	if upgradeWait == 0 {
		return nil
	}
	fmt.Println()
	fmt.Println("Waiting for the payment to settle...")

	waitCtx, cancel := context.WithTimeout(ctx, upgradeWait)
	defer cancel()
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-waitCtx.Done():
			fmt.Println("Payment not confirmed yet; run `elevate profile` to check later.")
			return nil
		case <-ticker.C:
			profile, err := a.api.Me(waitCtx)
			if err != nil {
				continue
			}
			if profile.IsPro {
				a.events.PurchaseCompleted()
				fmt.Println("Welcome to Pro! All templates and unlimited scans are unlocked.")
				return nil
			}
		}
	}
}
