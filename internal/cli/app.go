// Package cli is a small interactive front-end over the view-state holders.
// Each command reads its input, kicks off the corresponding holder and waits
// for the terminal Resource before printing it. It exists as a presentation
// collaborator; all behaviour lives in the layers below.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	"github.com/pisystem/client/internal/logging"
	"github.com/pisystem/client/internal/resource"
	"github.com/pisystem/client/internal/viewstate"
)

// App wires the holders to an input reader and an output writer.
type App struct {
	login     *viewstate.LoginHolder
	register  *viewstate.RegisterHolder
	netWorth  *viewstate.NetWorthHolder
	portfolio *viewstate.PortfolioHolder
	profile   *viewstate.ProfileHolder

	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger
}

// Holders groups the view-state dependencies of the App.
type Holders struct {
	Login     *viewstate.LoginHolder
	Register  *viewstate.RegisterHolder
	NetWorth  *viewstate.NetWorthHolder
	Portfolio *viewstate.PortfolioHolder
	Profile   *viewstate.ProfileHolder
}

func NewApp(h Holders, log logging.Logger) *App {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &App{
		login:     h.Login,
		register:  h.Register,
		netWorth:  h.NetWorth,
		portfolio: h.Portfolio,
		profile:   h.Profile,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		log:       log,
	}
}

// Run starts the REPL and blocks until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	runREPL(ctx, a, bufio.NewScanner(os.Stdin), a.out)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.profile.IsLoggedIn(ctx)
}

// awaitTerminal blocks until the holder publishes a non-Loading Resource or
// ctx is cancelled.
func awaitTerminal[T any](ctx context.Context, h *viewstate.Holder[T]) (resource.Resource[T], error) {
	ch := make(chan resource.Resource[T], 1)
	unsub := h.Subscribe(func(r resource.Resource[T]) {
		if r.IsLoading() {
			return
		}
		select {
		case ch <- r:
		default:
		}
	})
	defer unsub()

	select {
	case r := <-ch:
		return r, nil
	case <-ctx.Done():
		return resource.Resource[T]{}, ctx.Err()
	case <-time.After(2 * time.Minute):
		return resource.Resource[T]{}, context.DeadlineExceeded
	}
}
