// Package portfolio translates the portfolio-summary round trip into a
// Resource.
package portfolio

import (
	"context"

	"github.com/pisystem/client/internal/api"
	"github.com/pisystem/client/internal/logging"
	"github.com/pisystem/client/internal/models"
	"github.com/pisystem/client/internal/repositories"
	"github.com/pisystem/client/internal/resource"
)

const fetchFallback = "Failed to fetch portfolio summary"

// Repository fetches the portfolio summary for one user.
type Repository interface {
	Fetch(ctx context.Context, userID int64) resource.Resource[models.PortfolioSummary]
}

type apiRepository struct {
	api api.API
	log logging.Logger
}

// NewAPIRepository constructs a Repository backed by the given API client.
func NewAPIRepository(a api.API, log logging.Logger) Repository {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &apiRepository{api: a, log: log}
}

func (r *apiRepository) Fetch(ctx context.Context, userID int64) resource.Resource[models.PortfolioSummary] {
	r.log.Debug(ctx, "portfolio summary request", "user_id", userID)

	resp, err := r.api.PortfolioSummary(ctx, userID)
	res := repositories.MapOutcome[models.PortfolioSummary](resp, err, fetchFallback, fetchFallback)

	if res.IsError() {
		r.log.Error(ctx, "portfolio summary fetch failed", "message", res.Message())
	}
	return res
}
