package models

// NetWorthSummary is the response body of GET /api/v1/net-worth/{userId}:
// a flat aggregate of the user's assets and liabilities, with breakdowns
// keyed by category name.
type NetWorthSummary struct {
	TotalAssets             float64            `json:"totalAssets"`
	TotalLiabilities        float64            `json:"totalLiabilities"`
	NetWorth                float64            `json:"netWorth"`
	PortfolioValue          float64            `json:"portfolioValue"`
	SavingsValue            float64            `json:"savingsValue"`
	OutstandingLoans        float64            `json:"outstandingLoans"`
	OutstandingTaxLiability float64            `json:"outstandingTaxLiability"`
	OutstandingLendings     float64            `json:"outstandingLendings"`
	NetWorthAfterTax        float64            `json:"netWorthAfterTax"`
	AssetBreakdown          map[string]float64 `json:"assetBreakdown"`
	LiabilityBreakdown      map[string]float64 `json:"liabilityBreakdown"`
}
