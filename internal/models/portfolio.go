package models

// PortfolioSummary is the response body of GET /api/v1/portfolio/summary/{userId}.
type PortfolioSummary struct {
	Score                     int                 `json:"score"`
	Assessment                string              `json:"assessment"`
	Recommendations           []string            `json:"recommendations"`
	TotalInvestment           float64             `json:"totalInvestment"`
	CurrentValue              float64             `json:"currentValue"`
	TotalProfitLoss           float64             `json:"totalProfitLoss"`
	TotalProfitLossPercentage float64             `json:"totalProfitLossPercentage"`
	SectorAllocation          map[string]float64  `json:"sectorAllocation"`
	Insights                  Insights            `json:"insights"`
	RiskSummary               RiskSummary         `json:"riskSummary"`
	NextBestAction            NextBestAction      `json:"nextBestAction"`
	ScoreExplanation          ScoreExplanation    `json:"scoreExplanation"`
	MarketCapAllocation       MarketCapAllocation `json:"marketCapAllocation"`
	DataFreshness             DataFreshness       `json:"dataFreshness"`
	SavingsTotal              float64             `json:"savingsTotal"`
	LoansOutstanding          float64             `json:"loansOutstanding"`
	InsuranceCoverTotal       float64             `json:"insuranceCoverTotal"`
}

// Insights groups portfolio findings by severity.
type Insights struct {
	Critical []InsightItem `json:"critical"`
	Warning  []InsightItem `json:"warning"`
	Info     []InsightItem `json:"info"`
}

type InsightItem struct {
	Type              string `json:"type"`
	Category          string `json:"category"`
	Priority          int    `json:"priority"`
	Message           string `json:"message"`
	RecommendedAction string `json:"recommendedAction"`
}

type RiskSummary struct {
	CriticalCount int `json:"criticalCount"`
	WarningCount  int `json:"warningCount"`
	InfoCount     int `json:"infoCount"`
}

type NextBestAction struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Urgency     string `json:"urgency"`
}

type ScoreExplanation struct {
	BaseScore  int      `json:"baseScore"`
	Penalties  []string `json:"penalties"`
	FinalScore int      `json:"finalScore"`
}

type MarketCapAllocation struct {
	LargeCapPercentage float64 `json:"largeCapPercentage"`
	MidCapPercentage   float64 `json:"midCapPercentage"`
	SmallCapPercentage float64 `json:"smallCapPercentage"`
}

// DataFreshness reports how current the underlying market prices are.
type DataFreshness struct {
	PriceLastUpdatedAt string `json:"priceLastUpdatedAt"`
	Stale              bool   `json:"stale"`
}
