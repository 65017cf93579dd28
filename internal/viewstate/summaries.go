package viewstate

import (
	"context"

	"github.com/pisystem/client/internal/logging"
	"github.com/pisystem/client/internal/models"
	"github.com/pisystem/client/internal/resource"
	"github.com/pisystem/client/internal/session"
	"github.com/pisystem/client/internal/usecases"
)

const msgNotLoggedIn = "User not logged in"

// NetWorthHolder fetches the net-worth summary for the logged-in user. When
// no user id is stored, Error is published without touching the network.
type NetWorthHolder struct {
	*Holder[models.NetWorthSummary]
	uc      *usecases.GetNetWorthUseCase
	session *session.Store
	log     logging.Logger
}

func NewNetWorthHolder(uc *usecases.GetNetWorthUseCase, sess *session.Store, log logging.Logger) *NetWorthHolder {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &NetWorthHolder{Holder: newHolder[models.NetWorthSummary](), uc: uc, session: sess, log: log}
}

// Refresh resolves the user id from the session and starts a fetch.
func (h *NetWorthHolder) Refresh(ctx context.Context) {
	userID, ok := loggedInUser(ctx, h.session, h.log)
	if !ok {
		h.publish(resource.Error[models.NetWorthSummary](msgNotLoggedIn))
		return
	}
	h.run(ctx, func(ctx context.Context) resource.Resource[models.NetWorthSummary] {
		return h.uc.Execute(ctx, userID)
	})
}

// PortfolioHolder fetches the portfolio summary for the logged-in user.
type PortfolioHolder struct {
	*Holder[models.PortfolioSummary]
	uc      *usecases.GetPortfolioSummaryUseCase
	session *session.Store
	log     logging.Logger
}

func NewPortfolioHolder(uc *usecases.GetPortfolioSummaryUseCase, sess *session.Store, log logging.Logger) *PortfolioHolder {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &PortfolioHolder{Holder: newHolder[models.PortfolioSummary](), uc: uc, session: sess, log: log}
}

// Refresh resolves the user id from the session and starts a fetch.
func (h *PortfolioHolder) Refresh(ctx context.Context) {
	userID, ok := loggedInUser(ctx, h.session, h.log)
	if !ok {
		h.publish(resource.Error[models.PortfolioSummary](msgNotLoggedIn))
		return
	}
	h.run(ctx, func(ctx context.Context) resource.Resource[models.PortfolioSummary] {
		return h.uc.Execute(ctx, userID)
	})
}

// loggedInUser reads the session user id. A storage error is logged and
// treated the same as "not logged in".
func loggedInUser(ctx context.Context, sess *session.Store, log logging.Logger) (int64, bool) {
	userID, ok, err := sess.UserID(ctx)
	if err != nil {
		log.Error(ctx, "failed to read user id from session", "error", err)
		return 0, false
	}
	return userID, ok
}
