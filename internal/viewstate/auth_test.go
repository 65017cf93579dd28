package viewstate

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pisystem/client/internal/api"
	"github.com/pisystem/client/internal/models"
	"github.com/pisystem/client/internal/repositories/auth"
	"github.com/pisystem/client/internal/resource"
	"github.com/pisystem/client/internal/session"
	"github.com/pisystem/client/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupSession(t *testing.T) *session.Store {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE preferences (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	require.NoError(t, err)
	return session.NewStore(db, nil)
}

func newAuthStack(t *testing.T, handler http.Handler) (*session.Store, auth.Repository) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := api.New(api.Config{BaseURL: srv.URL})
	require.NoError(t, err)

	return setupSession(t), auth.NewAPIRepository(client, nil)
}

func waitTerminal[T any](t *testing.T, h *Holder[T]) resource.Resource[T] {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if v, ok := h.Value(); ok && !v.IsLoading() {
			return v
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("holder never reached a terminal state")
	return resource.Resource[T]{}
}

func TestLoginHolder_SuccessPopulatesSessionFirst(t *testing.T) {
	ctx := context.Background()
	sess, repo := newAuthStack(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"userId":7,"token":"t1","name":"Ann","email":"ann@x.com"}`))
	}))

	h := NewLoginHolder(usecases.NewLoginUseCase(repo), sess, nil)

	// At the moment Success is published the session must already hold the
	// identity, so the observer snapshots it inside the callback.
	sawSession := make(chan bool, 1)
	h.Subscribe(func(r resource.Resource[models.AuthResult]) {
		if r.IsSuccess() {
			sawSession <- sess.IsAuthenticated(ctx)
		}
	})

	h.Login(ctx, "ann@x.com", "pw")
	res := waitTerminal(t, h.Holder)

	require.True(t, res.IsSuccess())
	select {
	case ok := <-sawSession:
		assert.True(t, ok, "session must be persisted before Success is published")
	case <-time.After(2 * time.Second):
		t.Fatal("Success was never observed")
	}

	id, ok, err := sess.UserID(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(7), id)

	token, _, err := sess.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t1", token)

	name, _, err := sess.Name(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ann", name)

	email, _, err := sess.Email(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ann@x.com", email)
}

func TestLoginHolder_RejectionLeavesSessionEmpty(t *testing.T) {
	ctx := context.Background()
	sess, repo := newAuthStack(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"bad creds"}`))
	}))

	h := NewLoginHolder(usecases.NewLoginUseCase(repo), sess, nil)
	h.Login(ctx, "ann@x.com", "wrong")

	res := waitTerminal(t, h.Holder)
	require.True(t, res.IsError())
	assert.Equal(t, "bad creds", res.Message())
	assert.False(t, sess.IsAuthenticated(ctx))
}

func TestLoginHolder_BlankEmailSkipsNetwork(t *testing.T) {
	ctx := context.Background()
	var hits atomic.Int32
	sess, repo := newAuthStack(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))

	h := NewLoginHolder(usecases.NewLoginUseCase(repo), sess, nil)
	h.Login(ctx, "   ", "pw")

	res := waitTerminal(t, h.Holder)
	require.True(t, res.IsError())
	assert.Equal(t, "Email cannot be empty", res.Message())
	assert.Zero(t, hits.Load())
}

func TestRegisterHolder_SuccessPersistsIdentity(t *testing.T) {
	ctx := context.Background()
	sess, repo := newAuthStack(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"userId":11,"token":"t2","name":"Bob","email":"bob@x.com"}`))
	}))

	h := NewRegisterHolder(usecases.NewRegisterUseCase(repo), sess, nil)
	h.Register(ctx, "Bob", "bob@x.com", "12345", "pw")

	res := waitTerminal(t, h.Holder)
	require.True(t, res.IsSuccess())

	id, ok, err := sess.UserID(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(11), id)
}

func TestRegisterHolder_ValidationError(t *testing.T) {
	ctx := context.Background()
	var hits atomic.Int32
	sess, repo := newAuthStack(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))

	h := NewRegisterHolder(usecases.NewRegisterUseCase(repo), sess, nil)
	h.Register(ctx, "", "bob@x.com", "", "pw")

	res := waitTerminal(t, h.Holder)
	require.True(t, res.IsError())
	assert.Equal(t, "Name cannot be empty", res.Message())
	assert.Zero(t, hits.Load())
}
