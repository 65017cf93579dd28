package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pisystem/client/internal/api"
	"github.com/pisystem/client/internal/buildinfo"
	"github.com/pisystem/client/internal/cli"
	"github.com/pisystem/client/internal/config"
	"github.com/pisystem/client/internal/logging"
	"github.com/pisystem/client/internal/repositories/auth"
	"github.com/pisystem/client/internal/repositories/networth"
	"github.com/pisystem/client/internal/repositories/portfolio"
	"github.com/pisystem/client/internal/session"
	"github.com/pisystem/client/internal/usecases"
	"github.com/pisystem/client/internal/viewstate"

	_ "modernc.org/sqlite"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	sess, err := session.Open(ctx, cfg.SessionDBPath, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer sess.Close()

	httpClient := &http.Client{
		Timeout:   cfg.RequestTimeout,
		Transport: api.NewAuthTransport(http.DefaultTransport, sess, logger),
	}
	client, err := api.New(api.Config{
		BaseURL:    cfg.APIBaseURL,
		HTTPClient: httpClient,
		Logger:     logger,
	})
	if err != nil {
		log.Fatalf("%v", err)
	}

	authRepo := auth.NewAPIRepository(client, logger)
	netWorthRepo := networth.NewAPIRepository(client, logger)
	portfolioRepo := portfolio.NewAPIRepository(client, logger)

	app := cli.NewApp(cli.Holders{
		Login:     viewstate.NewLoginHolder(usecases.NewLoginUseCase(authRepo), sess, logger),
		Register:  viewstate.NewRegisterHolder(usecases.NewRegisterUseCase(authRepo), sess, logger),
		NetWorth:  viewstate.NewNetWorthHolder(usecases.NewGetNetWorthUseCase(netWorthRepo), sess, logger),
		Portfolio: viewstate.NewPortfolioHolder(usecases.NewGetPortfolioSummaryUseCase(portfolioRepo), sess, logger),
		Profile:   viewstate.NewProfileHolder(sess, logger),
	}, logger)

	app.Run(ctx)

}
