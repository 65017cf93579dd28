package viewstate

import (
	"context"

	"github.com/pisystem/client/internal/logging"
	"github.com/pisystem/client/internal/models"
	"github.com/pisystem/client/internal/resource"
	"github.com/pisystem/client/internal/session"
	"github.com/pisystem/client/internal/usecases"
)

const msgGenericError = "An error occurred"

// LoginHolder drives the login flow. On a successful response the session
// fields are persisted before Success is published, so any observer reacting
// to Success can already read the session.
type LoginHolder struct {
	*Holder[models.AuthResult]
	uc      *usecases.LoginUseCase
	session *session.Store
	log     logging.Logger
}

func NewLoginHolder(uc *usecases.LoginUseCase, sess *session.Store, log logging.Logger) *LoginHolder {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &LoginHolder{Holder: newHolder[models.AuthResult](), uc: uc, session: sess, log: log}
}

// Login starts a login attempt. Loading is published before Login returns.
func (h *LoginHolder) Login(ctx context.Context, email, password string) {
	h.run(ctx, func(ctx context.Context) resource.Resource[models.AuthResult] {
		res := h.uc.Execute(ctx, email, password)
		return h.persistOnSuccess(ctx, res)
	})
}

func (h *LoginHolder) persistOnSuccess(ctx context.Context, res resource.Resource[models.AuthResult]) resource.Resource[models.AuthResult] {
	data, ok := res.Data()
	if !ok {
		return res
	}
	if err := h.session.SaveAuthResult(ctx, data); err != nil {
		h.log.Error(ctx, "failed to persist session after login", "error", err)
		return resource.Error[models.AuthResult](msgGenericError)
	}
	return res
}

// RegisterHolder drives the registration flow. Like LoginHolder, it persists
// the returned identity before publishing Success.
type RegisterHolder struct {
	*Holder[models.AuthResult]
	uc      *usecases.RegisterUseCase
	session *session.Store
	log     logging.Logger
}

func NewRegisterHolder(uc *usecases.RegisterUseCase, sess *session.Store, log logging.Logger) *RegisterHolder {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &RegisterHolder{Holder: newHolder[models.AuthResult](), uc: uc, session: sess, log: log}
}

// Register starts a registration attempt.
func (h *RegisterHolder) Register(ctx context.Context, name, email, mobileNumber, password string) {
	h.run(ctx, func(ctx context.Context) resource.Resource[models.AuthResult] {
		res := h.uc.Execute(ctx, name, email, mobileNumber, password)
		data, ok := res.Data()
		if !ok {
			return res
		}
		if err := h.session.SaveAuthResult(ctx, data); err != nil {
			h.log.Error(ctx, "failed to persist session after registration", "error", err)
			return resource.Error[models.AuthResult](msgGenericError)
		}
		return res
	})
}
