package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/iammorganparry/clive/apps/todo/internal/api"
	"github.com/iammorganparry/clive/apps/todo/internal/sessions"
	"github.com/iammorganparry/clive/apps/todo/internal/store"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}

	cmd.Flags().IntP("port", "p", 0, "port to listen on (default 8742)")
	cmd.Flags().String("host", "", "host to bind to (default all interfaces)")
	cmd.Flags().Bool("cookie-secure", false, "mark the session cookie Secure (HTTPS only)")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	cfg, logger := a.cfg, a.logger

	// SQLite
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return err
	}
	defer db.Close()

	// Sessions
	sessStore := sessions.NewSessionStore(db)
	sessMgr := sessions.NewManager(sessStore, sessions.Options{
		CookieName: cfg.CookieName,
		TTL:        cfg.SessionTTL(),
		Secure:     cfg.CookieSecure,
	}, logger)

	if n, err := sessMgr.PurgeExpired(); err != nil {
		logger.Warn("failed to purge expired sessions", "error", err)
	} else if n > 0 {
		logger.Info("purged expired sessions", "count", n)
	}

	// Server
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      api.NewRouter(db, sessMgr, logger),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("todo server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", "error", err)
			return err
		}
	case <-ctx.Done():
	}
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		return err
	}

	logger.Info("server stopped")
	return nil
}
