package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/baharkarakas/mindbank/internal/models"
)

var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Show the USD to EUR exchange rate and cache state",
	RunE:  runRate,
}

var rateRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch a fresh rate from the exchange API",
	RunE:  runRateRefresh,
}

func init() {
	rateCmd.AddCommand(rateRefreshCmd)
	rootCmd.AddCommand(rateCmd)
}

func runRate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, _, cleanup, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	r := a.Rates.Current(ctx)
	printRate(cmd.OutOrStdout(), r, a.Rates.Info(ctx))
	return nil
}

func runRateRefresh(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, _, cleanup, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	r := a.Rates.Refresh(ctx)
	printRate(cmd.OutOrStdout(), r, a.Rates.Info(ctx))
	if r.Source != models.RateLive {
		return fmt.Errorf("live rate unavailable, serving %s rate", r.Source)
	}
	return nil
}

func printRate(w io.Writer, r models.ExchangeRate, info models.RateInfo) {
	fmt.Fprintf(w, "USD->EUR %s (%s)\n", r.Rate.StringFixed(4), r.Source)
	if info.LastUpdated != nil {
		fmt.Fprintf(w, "cache: updated %d min ago, valid=%t\n", info.CacheAgeMinutes, info.CacheValid)
	} else {
		fmt.Fprintln(w, "cache: empty")
	}
}
