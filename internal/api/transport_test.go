package api

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pisystem/client/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupSession(t *testing.T) *session.Store {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE preferences (key TEXT PRIMARY KEY, value TEXT NOT NULL);`)
	require.NoError(t, err)
	return session.NewStore(db, nil)
}

// headerRecorder captures the Authorization header of each request.
type headerRecorder struct {
	gotAuth   []string
	gotPath   []string
	gotMethod []string
}

func (h *headerRecorder) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.gotAuth = append(h.gotAuth, r.Header.Get("Authorization"))
		h.gotPath = append(h.gotPath, r.URL.Path)
		h.gotMethod = append(h.gotMethod, r.Method)
		w.WriteHeader(http.StatusOK)
	}
}

func TestAuthTransport_PublicEndpointNeverCarriesToken(t *testing.T) {
	store := setupSession(t)
	require.NoError(t, store.SaveToken(context.Background(), "abc"))

	rec := &headerRecorder{}
	srv := httptest.NewServer(rec.handler())
	defer srv.Close()

	client := &http.Client{Transport: NewAuthTransport(nil, store, nil)}

	for _, path := range []string{"/api/auth/login", "/api/auth/register"} {
		resp, err := client.Post(srv.URL+path, "application/json", nil)
		require.NoError(t, err)
		resp.Body.Close()
	}

	require.Len(t, rec.gotAuth, 2)
	assert.Empty(t, rec.gotAuth[0], "login must go out without Authorization even when a token is stored")
	assert.Empty(t, rec.gotAuth[1], "register must go out without Authorization even when a token is stored")
}

func TestAuthTransport_ProtectedEndpointCarriesBearer(t *testing.T) {
	store := setupSession(t)
	require.NoError(t, store.SaveToken(context.Background(), "abc"))

	rec := &headerRecorder{}
	srv := httptest.NewServer(rec.handler())
	defer srv.Close()

	client := &http.Client{Transport: NewAuthTransport(nil, store, nil)}

	resp, err := client.Get(srv.URL + "/api/v1/net-worth/42")
	require.NoError(t, err)
	resp.Body.Close()

	require.Len(t, rec.gotAuth, 1)
	assert.Equal(t, "Bearer abc", rec.gotAuth[0])
}

func TestAuthTransport_NoTokenFailsOpen(t *testing.T) {
	store := setupSession(t)

	rec := &headerRecorder{}
	srv := httptest.NewServer(rec.handler())
	defer srv.Close()

	client := &http.Client{Transport: NewAuthTransport(nil, store, nil)}

	resp, err := client.Get(srv.URL + "/api/v1/portfolio/summary/7")
	require.NoError(t, err, "the middleware must never block the call")
	resp.Body.Close()

	require.Len(t, rec.gotAuth, 1)
	assert.Empty(t, rec.gotAuth[0], "no Authorization header without a stored token")
}

func TestAuthTransport_DoesNotMutateOriginalRequest(t *testing.T) {
	store := setupSession(t)
	require.NoError(t, store.SaveToken(context.Background(), "abc"))

	rec := &headerRecorder{}
	srv := httptest.NewServer(rec.handler())
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/net-worth/1", nil)
	require.NoError(t, err)

	client := &http.Client{Transport: NewAuthTransport(nil, store, nil)}
	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, req.Header.Get("Authorization"), "original request must stay untouched")
}

func TestIsPublicEndpoint(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"http://h/api/auth/login", true},
		{"http://h/api/auth/register", true},
		{"http://h/api/v1/net-worth/42", false},
		{"http://h/api/v1/portfolio/summary/42", false},
		{"http://h/", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isPublicEndpoint(tt.url), tt.url)
	}
}
