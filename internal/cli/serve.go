package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freight-emissions/internal/core/config"
	"freight-emissions/internal/core/logger"
	"freight-emissions/internal/core/server"
	reportHandler "freight-emissions/internal/features/report/handler"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

// NewServeCmd creates the serve command.
func NewServeCmd(cfg *config.AppConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve calculations over HTTP",
		Long:  "Starts the HTTP API. One identity session is shared by all requests.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, cfg)
		},
	}
}

func runServe(cmd *cobra.Command, cfg *config.AppConfig) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := newRuntime(ctx, cfg)
	if err != nil {
		return err
	}

	handler := reportHandler.NewReportHandler(rt.calculator, rt.reports)

	srv := server.New(cfg)
	srv.App.Post("/emissions", handler.Calculate)
	srv.App.Get("/reports/:id", handler.GetReport)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err = <-errCh:
		logger.Get().Error("Server stopped", zap.Error(err))
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err = srv.Shutdown(shutdownCtx)
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), sessionCloseTimeout)
	defer cancel()
	_ = rt.Close(closeCtx)

	return err
}
