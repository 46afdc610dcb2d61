package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spendsense/spendsense/internal/common"
	"github.com/spendsense/spendsense/internal/server"
	"github.com/spendsense/spendsense/internal/storage"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the classification HTTP server",
		Long: `Run the HTTP server exposing transaction classification.

Endpoints:
  GET  /             liveness check
  GET  /api/status   model and indicator status
  POST /api/predict  classify a transaction or a list of transactions
  GET  /api/sample   sample transactions for client testing
  GET  /api/history  recent classifications (when storage is configured)`,
		RunE: runServe,
	}

	cmd.Flags().IntP("port", "p", 5000, "port to listen on")
	cmd.Flags().String("cors-origins", "*", "comma-separated allowed CORS origins")
	cmd.Flags().String("db", "", "path to the history database (empty disables history)")

	_ = viper.BindPFlag("server.port", cmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("server.cors_origins", cmd.Flags().Lookup("cors-origins"))
	_ = viper.BindPFlag("storage.db_path", cmd.Flags().Lookup("db"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	loaded := loadArtifacts(viper.GetString("model.dir"))

	var history *storage.SQLiteStorage
	if dbPath := viper.GetString("storage.db_path"); dbPath != "" {
		var err error
		history, err = storage.NewSQLiteStorage(dbPath)
		if err != nil {
			return common.NewUserError("failed to open history database", err)
		}
		defer func() { _ = history.Close() }()

		if err := history.Migrate(ctx); err != nil {
			return common.NewUserError("failed to migrate history database", err)
		}
	}

	cfg := server.Config{
		Port:        viper.GetInt("server.port"),
		CORSOrigins: viper.GetString("server.cors_origins"),
	}

	srv := server.New(cfg, server.Deps{
		Engine:     loaded.newEngine(),
		Model:      loaded.model,
		Schema:     loaded.schema,
		Indicators: loaded.indicators,
		History:    history,
	})

	errChan := make(chan error, 1)
	go func() {
		slog.Info("starting HTTP server",
			"port", cfg.Port,
			"model_loaded", loaded.model != nil,
			"history_enabled", history != nil)
		errChan <- srv.Listen()
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
