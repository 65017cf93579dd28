package cli

import (
	"context"
	"fmt"
)

// NetWorth fetches and prints the net-worth summary.
func (a *App) NetWorth(ctx context.Context) error {
	a.netWorth.Refresh(ctx)
	res, err := awaitTerminal(ctx, a.netWorth.Holder)
	if err != nil {
		return err
	}

	if res.IsError() {
		fmt.Fprintln(a.out, res.Message())
		return nil
	}

	s, _ := res.Data()
	fmt.Fprintf(a.out, "Net worth:          %.2f\n", s.NetWorth)
	fmt.Fprintf(a.out, "Total assets:       %.2f\n", s.TotalAssets)
	fmt.Fprintf(a.out, "Total liabilities:  %.2f\n", s.TotalLiabilities)
	fmt.Fprintf(a.out, "After tax:          %.2f\n", s.NetWorthAfterTax)
	for name, v := range s.AssetBreakdown {
		fmt.Fprintf(a.out, "  asset %s: %.2f\n", name, v)
	}
	for name, v := range s.LiabilityBreakdown {
		fmt.Fprintf(a.out, "  liability %s: %.2f\n", name, v)
	}
	return nil
}

// Portfolio fetches and prints the portfolio summary.
func (a *App) Portfolio(ctx context.Context) error {
	a.portfolio.Refresh(ctx)
	res, err := awaitTerminal(ctx, a.portfolio.Holder)
	if err != nil {
		return err
	}

	if res.IsError() {
		fmt.Fprintln(a.out, res.Message())
		return nil
	}

	s, _ := res.Data()
	fmt.Fprintf(a.out, "Score:       %d (%s)\n", s.Score, s.Assessment)
	fmt.Fprintf(a.out, "Invested:    %.2f\n", s.TotalInvestment)
	fmt.Fprintf(a.out, "Current:     %.2f\n", s.CurrentValue)
	fmt.Fprintf(a.out, "P/L:         %.2f (%.2f%%)\n", s.TotalProfitLoss, s.TotalProfitLossPercentage)
	for _, r := range s.Recommendations {
		fmt.Fprintf(a.out, "  - %s\n", r)
	}
	if s.NextBestAction.Title != "" {
		fmt.Fprintf(a.out, "Next: %s (%s)\n", s.NextBestAction.Title, s.NextBestAction.Urgency)
	}
	return nil
}
