package api

import (
	"net/http"
	"strings"

	"github.com/pisystem/client/internal/logging"
	"github.com/pisystem/client/internal/session"
)

// publicEndpoints lists the request paths reachable without a bearer token.
// Matching is by substring, as the backend mounts these under a fixed prefix.
var publicEndpoints = []string{
	"/api/auth/login",
	"/api/auth/register",
}

func isPublicEndpoint(url string) bool {
	for _, p := range publicEndpoints {
		if strings.Contains(url, p) {
			return true
		}
	}
	return false
}

// authTransport is an http.RoundTripper that attaches the stored bearer
// token to every non-public request. It is fail-open: when no token is
// stored the request goes out without an Authorization header and the
// backend answers with 401/403. The transport itself never blocks a call.
type authTransport struct {
	base    http.RoundTripper
	session *session.Store
	log     logging.Logger
}

// NewAuthTransport wraps base with bearer-token injection backed by the
// given session store. A nil base falls back to http.DefaultTransport.
func NewAuthTransport(base http.RoundTripper, store *session.Store, log logging.Logger) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &authTransport{base: base, session: store, log: log}
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	url := req.URL.String()

	if isPublicEndpoint(url) {
		t.log.Debug(ctx, "public endpoint, skipping authorization header", "url", url)
		return t.base.RoundTrip(req)
	}

	token, ok, err := t.session.Token(ctx)
	if err != nil {
		t.log.Error(ctx, "failed to read token from session", "error", err)
		ok = false
	}
	if !ok {
		t.log.Warn(ctx, "no token stored, proceeding without authorization header",
			"url", url, "method", req.Method)
		return t.base.RoundTrip(req)
	}

	t.log.Debug(ctx, "attaching bearer token",
		"url", url, "method", req.Method, "token_length", len(token))

	// RoundTrippers must not mutate the incoming request.
	clone := req.Clone(ctx)
	clone.Header.Set("Authorization", "Bearer "+token)

	resp, err := t.base.RoundTrip(clone)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		t.log.Error(ctx, "authentication rejected by backend",
			"url", url, "status", resp.StatusCode)
	}

	return resp, nil
}
