package viewstate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/pisystem/client/internal/api"
	"github.com/pisystem/client/internal/repositories/networth"
	"github.com/pisystem/client/internal/repositories/portfolio"
	"github.com/pisystem/client/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetWorthHolder_NotLoggedInGuard(t *testing.T) {
	ctx := context.Background()
	sess := setupSession(t)

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	t.Cleanup(srv.Close)

	client, err := api.New(api.Config{BaseURL: srv.URL})
	require.NoError(t, err)

	h := NewNetWorthHolder(
		usecases.NewGetNetWorthUseCase(networth.NewAPIRepository(client, nil)),
		sess, nil)
	h.Refresh(ctx)

	res, started := h.Value()
	require.True(t, started)
	require.True(t, res.IsError())
	assert.Equal(t, "User not logged in", res.Message())
	assert.Zero(t, hits.Load(), "the guard must not touch the network")
}

func TestNetWorthHolder_FetchesForStoredUser(t *testing.T) {
	ctx := context.Background()
	sess := setupSession(t)
	require.NoError(t, sess.SaveUserID(ctx, 42))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/net-worth/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"netWorth":1500.5,"totalAssets":2000,"totalLiabilities":499.5}`)
	}))
	t.Cleanup(srv.Close)

	client, err := api.New(api.Config{BaseURL: srv.URL})
	require.NoError(t, err)

	h := NewNetWorthHolder(
		usecases.NewGetNetWorthUseCase(networth.NewAPIRepository(client, nil)),
		sess, nil)
	h.Refresh(ctx)

	res := waitTerminal(t, h.Holder)
	require.True(t, res.IsSuccess())
	summary, _ := res.Data()
	assert.Equal(t, 1500.5, summary.NetWorth)
	assert.Equal(t, 2000.0, summary.TotalAssets)
}

func TestPortfolioHolder_NotLoggedInGuard(t *testing.T) {
	ctx := context.Background()
	sess := setupSession(t)

	h := NewPortfolioHolder(nil, sess, nil)
	h.Refresh(ctx)

	res, started := h.Value()
	require.True(t, started)
	require.True(t, res.IsError())
	assert.Equal(t, "User not logged in", res.Message())
}

func TestPortfolioHolder_FetchesForStoredUser(t *testing.T) {
	ctx := context.Background()
	sess := setupSession(t)
	require.NoError(t, sess.SaveUserID(ctx, 7))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/portfolio/summary/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"score":82,"assessment":"Healthy","totalValue":12000}`)
	}))
	t.Cleanup(srv.Close)

	client, err := api.New(api.Config{BaseURL: srv.URL})
	require.NoError(t, err)

	h := NewPortfolioHolder(
		usecases.NewGetPortfolioSummaryUseCase(portfolio.NewAPIRepository(client, nil)),
		sess, nil)
	h.Refresh(ctx)

	res := waitTerminal(t, h.Holder)
	require.True(t, res.IsSuccess())
	summary, _ := res.Data()
	assert.Equal(t, "Healthy", summary.Assessment)
}

func TestNetWorthHolder_ServerError(t *testing.T) {
	ctx := context.Background()
	sess := setupSession(t)
	require.NoError(t, sess.SaveUserID(ctx, 42))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	client, err := api.New(api.Config{BaseURL: srv.URL})
	require.NoError(t, err)

	h := NewNetWorthHolder(
		usecases.NewGetNetWorthUseCase(networth.NewAPIRepository(client, nil)),
		sess, nil)
	h.Refresh(ctx)

	res := waitTerminal(t, h.Holder)
	require.True(t, res.IsError())
	assert.Equal(t, "Failed to fetch net worth", res.Message())
}
