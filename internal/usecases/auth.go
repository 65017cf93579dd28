// Package usecases puts a validation gate in front of each repository call.
// Required string fields are rejected locally when blank (empty or
// whitespace-only) with a deterministic message; the repository is only
// reached on valid input, and its Resource is returned unmodified.
package usecases

import (
	"context"
	"strings"

	"github.com/pisystem/client/internal/models"
	"github.com/pisystem/client/internal/repositories/auth"
	"github.com/pisystem/client/internal/resource"
)

// Validation messages. The first failing check wins; messages are never
// accumulated.
const (
	msgNameEmpty     = "Name cannot be empty"
	msgEmailEmpty    = "Email cannot be empty"
	msgPasswordEmpty = "Password cannot be empty"
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// LoginUseCase validates credentials and delegates to the auth repository.
type LoginUseCase struct {
	repo auth.Repository
}

func NewLoginUseCase(repo auth.Repository) *LoginUseCase {
	return &LoginUseCase{repo: repo}
}

// Execute checks email before password; a blank field never reaches the
// network.
func (u *LoginUseCase) Execute(ctx context.Context, email, password string) resource.Resource[models.AuthResult] {
	if isBlank(email) {
		return resource.Error[models.AuthResult](msgEmailEmpty)
	}
	if isBlank(password) {
		return resource.Error[models.AuthResult](msgPasswordEmpty)
	}

	return u.repo.Login(ctx, models.LoginRequest{Email: email, Password: password})
}

// RegisterUseCase validates registration fields and delegates to the auth
// repository.
type RegisterUseCase struct {
	repo auth.Repository
}

func NewRegisterUseCase(repo auth.Repository) *RegisterUseCase {
	return &RegisterUseCase{repo: repo}
}

// Execute checks name, then email, then password. The mobile number is not
// validated.
func (u *RegisterUseCase) Execute(ctx context.Context, name, email, mobileNumber, password string) resource.Resource[models.AuthResult] {
	if isBlank(name) {
		return resource.Error[models.AuthResult](msgNameEmpty)
	}
	if isBlank(email) {
		return resource.Error[models.AuthResult](msgEmailEmpty)
	}
	if isBlank(password) {
		return resource.Error[models.AuthResult](msgPasswordEmpty)
	}

	return u.repo.Register(ctx, models.RegisterRequest{
		Name:         name,
		Email:        email,
		MobileNumber: mobileNumber,
		Password:     password,
	})
}
