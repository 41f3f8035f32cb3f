package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/discourses/discourses-go/internal/config"
	"github.com/discourses/discourses-go/internal/mockserver"
	"github.com/discourses/discourses-go/internal/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local mock of the Discourses API",
	Long: `Run a local server that emulates the Discourses API wire contract
with fixed per-era fixtures, for offline development and testing.

Point the SDK or CLI at it with --base-url http://localhost:8080.
Ctrl+C (SIGINT) or SIGTERM triggers a graceful shutdown.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("host", "", "bind host (default: localhost)")
	serveCmd.Flags().Int("port", 0, "bind port (default: 8080)")
	_ = viper.BindPFlag("mock.host", serveCmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("mock.port", serveCmd.Flags().Lookup("port"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	observability.InitServerLogger("discourses-mock", cfg.Logging.Level)
	logger := observability.ServerLogger

	server := mockserver.New(mockserver.Options{
		Host:   cfg.Mock.Host,
		Port:   cfg.Mock.Port,
		APIKey: cfg.Mock.APIKey,
		Logger: logger,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Mock.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", zap.Error(err))
		return err
	}

	logger.Info("Mock server stopped")
	return nil
}
