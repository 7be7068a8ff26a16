package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kagamino/repoforge/pkg/cli/config"
	"github.com/kagamino/repoforge/pkg/controller/server"
	"github.com/kagamino/repoforge/pkg/usecase"
	"github.com/kagamino/repoforge/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr string

		githubConfig config.GitHub
		secretConfig config.SecretStore
		slackConfig  config.Slack
		auditConfig  config.Audit
		sentryConfig config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("REPOFORGE_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serve the provisioning web form",
		Flags: slice.Flatten(
			serveFlags,
			githubConfig.Flags(),
			secretConfig.Flags(),
			slackConfig.Flags(),
			auditConfig.Flags(),
			sentryConfig.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("GitHub", githubConfig),
				slog.Any("Secrets", secretConfig),
				slog.Any("Slack", slackConfig),
				slog.Any("Audit", auditConfig),
				slog.Any("Sentry", sentryConfig),
			)

			if err := sentryConfig.Configure(ctx); err != nil {
				return err
			}

			clients, err := setupClients(ctx, &githubConfig, &secretConfig, &slackConfig, &auditConfig)
			if err != nil {
				return err
			}

			uc := usecase.New(clients)
			s := server.New(uc)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      120 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
