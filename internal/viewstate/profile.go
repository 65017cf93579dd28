package viewstate

import (
	"context"

	"github.com/pisystem/client/internal/logging"
	"github.com/pisystem/client/internal/session"
)

// Placeholder identity shown before a user has logged in.
const (
	guestName  = "Guest User"
	guestEmail = "guest@example.com"
)

// ProfileHolder exposes the stored identity and the dark-mode preference.
// It is a plain reader over the session store; storage errors fall back to
// the guest defaults so the profile screen never fails to render.
type ProfileHolder struct {
	session *session.Store
	log     logging.Logger
}

func NewProfileHolder(sess *session.Store, log logging.Logger) *ProfileHolder {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &ProfileHolder{session: sess, log: log}
}

// Name returns the stored display name, or "Guest User".
func (h *ProfileHolder) Name(ctx context.Context) string {
	name, ok, err := h.session.Name(ctx)
	if err != nil {
		h.log.Error(ctx, "failed to read name from session", "error", err)
		return guestName
	}
	if !ok || name == "" {
		return guestName
	}
	return name
}

// Email returns the stored email address, or "guest@example.com".
func (h *ProfileHolder) Email(ctx context.Context) string {
	email, ok, err := h.session.Email(ctx)
	if err != nil {
		h.log.Error(ctx, "failed to read email from session", "error", err)
		return guestEmail
	}
	if !ok || email == "" {
		return guestEmail
	}
	return email
}

// DarkMode returns the dark-mode flag; errors read as false.
func (h *ProfileHolder) DarkMode(ctx context.Context) bool {
	enabled, err := h.session.DarkMode(ctx)
	if err != nil {
		h.log.Error(ctx, "failed to read dark mode flag", "error", err)
		return false
	}
	return enabled
}

// ToggleDarkMode flips the dark-mode flag and returns the new value.
func (h *ProfileHolder) ToggleDarkMode(ctx context.Context) (bool, error) {
	next := !h.DarkMode(ctx)
	if err := h.session.SetDarkMode(ctx, next); err != nil {
		return false, err
	}
	return next, nil
}

// IsLoggedIn reports whether a complete session is stored.
func (h *ProfileHolder) IsLoggedIn(ctx context.Context) bool {
	return h.session.IsAuthenticated(ctx)
}

// Logout clears the identity fields. The dark-mode preference survives.
func (h *ProfileHolder) Logout(ctx context.Context) error {
	return h.session.ClearAll(ctx)
}
