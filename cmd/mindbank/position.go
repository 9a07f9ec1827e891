package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/baharkarakas/mindbank/internal/finance"
	"github.com/baharkarakas/mindbank/internal/models"
)

var positionCmd = &cobra.Command{
	Use:   "position",
	Short: "Print the current global financial position",
	RunE:  runPosition,
}

func init() {
	rootCmd.AddCommand(positionCmd)
}

func runPosition(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, _, cleanup, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	d, err := a.Dashboard.Dashboard(ctx)
	if err != nil {
		return err
	}
	printPosition(cmd.OutOrStdout(), d)
	return nil
}

func printPosition(w io.Writer, d models.Dashboard) {
	p := finance.Progress(d.ComputedAt)
	fmt.Fprintf(w, "\n  MindBank  %s %d, day %d/%d\n\n", p.MonthName, p.Year, p.CurrentDay, p.DaysInMonth)
	fmt.Fprintf(w, "  %-22s %14s\n", "Global position", finance.FormatEUR(d.GlobalPosition))
	fmt.Fprintf(w, "  %-22s %14s\n", "Total assets", finance.FormatEUR(d.TotalAssets))
	fmt.Fprintf(w, "  %-22s %14s\n", "Realized income", finance.FormatEUR(d.RealizedIncome))
	fmt.Fprintf(w, "  %-22s %14s\n", "Potential income", finance.FormatEUR(d.PotentialIncome))
	fmt.Fprintf(w, "\n  USD->EUR %s (%s, %s)\n\n",
		d.ExchangeRate.Rate.StringFixed(4), d.ExchangeRate.Source, d.ExchangeRate.FetchedAt.Format(time.RFC3339))
}
