// Package auth translates the login and registration round trips into
// Resources. Each call is exactly one round trip; the repository never
// retries and never lets a transport fault escape as anything other than
// an error message.
package auth

import (
	"context"

	"github.com/pisystem/client/internal/api"
	"github.com/pisystem/client/internal/logging"
	"github.com/pisystem/client/internal/models"
	"github.com/pisystem/client/internal/repositories"
	"github.com/pisystem/client/internal/resource"
)

// Fallback messages. The login undecodable case is a fixed literal because
// the backend's HTML error pages carry nothing worth showing.
const (
	loginFallback       = "Login failed"
	loginUndecodable    = "Invalid email or password"
	registerFallback    = "Registration failed"
	registerUndecodable = "Registration failed"
)

// Repository performs the auth round trips.
type Repository interface {
	Login(ctx context.Context, req models.LoginRequest) resource.Resource[models.AuthResult]
	Register(ctx context.Context, req models.RegisterRequest) resource.Resource[models.AuthResult]
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

func (r *apiRepository) Login(ctx context.Context, req models.LoginRequest) resource.Resource[models.AuthResult] {
	r.log.Debug(ctx, "login request", "email", req.Email)

	resp, err := r.api.Login(ctx, req)
	res := repositories.MapOutcome[models.AuthResult](resp, err, loginFallback, loginUndecodable)

	if res.IsError() {
		r.log.Error(ctx, "login failed", "message", res.Message())
	}
	return res
}

func (r *apiRepository) Register(ctx context.Context, req models.RegisterRequest) resource.Resource[models.AuthResult] {
	r.log.Debug(ctx, "register request", "email", req.Email, "name", req.Name)

	resp, err := r.api.Register(ctx, req)
	res := repositories.MapOutcome[models.AuthResult](resp, err, registerFallback, registerUndecodable)

	if res.IsError() {
		r.log.Error(ctx, "registration failed", "message", res.Message())
	}
	return res
}
