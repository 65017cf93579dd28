package usecases

import (
	"context"

	"github.com/pisystem/client/internal/models"
	"github.com/pisystem/client/internal/repositories/networth"
	"github.com/pisystem/client/internal/repositories/portfolio"
	"github.com/pisystem/client/internal/resource"
)

// GetNetWorthUseCase is a pass-through to the net-worth repository; the
// user id is supplied by the caller, who has already resolved it from the
// session.
type GetNetWorthUseCase struct {
	repo networth.Repository
}

func NewGetNetWorthUseCase(repo networth.Repository) *GetNetWorthUseCase {
	return &GetNetWorthUseCase{repo: repo}
}

func (u *GetNetWorthUseCase) Execute(ctx context.Context, userID int64) resource.Resource[models.NetWorthSummary] {
	return u.repo.Fetch(ctx, userID)
}

// GetPortfolioSummaryUseCase is a pass-through to the portfolio repository.
type GetPortfolioSummaryUseCase struct {
	repo portfolio.Repository
}

func NewGetPortfolioSummaryUseCase(repo portfolio.Repository) *GetPortfolioSummaryUseCase {
	return &GetPortfolioSummaryUseCase{repo: repo}
}

func (u *GetPortfolioSummaryUseCase) Execute(ctx context.Context, userID int64) resource.Resource[models.PortfolioSummary] {
	return u.repo.Fetch(ctx, userID)
}
