// Package networth translates the net-worth round trip into a Resource.
package networth

import (
	"context"

	"github.com/pisystem/client/internal/api"
	"github.com/pisystem/client/internal/logging"
	"github.com/pisystem/client/internal/models"
	"github.com/pisystem/client/internal/repositories"
	"github.com/pisystem/client/internal/resource"
)

const fetchFallback = "Failed to fetch net worth"

// Repository fetches the net-worth summary for one user.
type Repository interface {
	Fetch(ctx context.Context, userID int64) resource.Resource[models.NetWorthSummary]
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

func (r *apiRepository) Fetch(ctx context.Context, userID int64) resource.Resource[models.NetWorthSummary] {
	r.log.Debug(ctx, "net worth request", "user_id", userID)

	resp, err := r.api.NetWorth(ctx, userID)
	res := repositories.MapOutcome[models.NetWorthSummary](resp, err, fetchFallback, fetchFallback)

	if res.IsError() {
		r.log.Error(ctx, "net worth fetch failed", "message", res.Message())
	}
	return res
}
