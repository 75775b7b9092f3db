package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/carmatch/internal/catalog"
	"github.com/donaldgifford/carmatch/internal/store"
	"github.com/donaldgifford/carmatch/internal/telemetry"
	"github.com/donaldgifford/carmatch/pkg/logger"
)

var autoMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and catalog scheduler",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", false, "apply pending migrations before serving")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	shutdownTelemetry, err := telemetry.Setup(ctx, &cfg.Telemetry, log)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			log.Warn("flushing telemetry", "error", err)
		}
	}()

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	st, err := store.NewPostgresStore(connectCtx, cfg.Database.DSN(), cfg.Database.PoolSize)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	if autoMigrate {
		applied, err := st.ApplyMigrations(connectCtx)
		if err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		log.Info("migrations checked", "applied", applied)
	}

	var cars store.CarLister = st
	if cfg.Catalog.CacheEnabled {
		cat := catalog.New(st, catalog.WithLogger(logger.Component(log, "catalog")))
		if err := cat.Refresh(connectCtx); err != nil {
			// The first search retries the load.
			log.Warn("initial catalog load failed", "error", err)
		}

		sched, err := catalog.NewScheduler(cat, cfg.Catalog.RefreshInterval, logger.Component(log, "scheduler"))
		if err != nil {
			return fmt.Errorf("creating catalog scheduler: %w", err)
		}
		sched.Start()
		defer func() { <-sched.Stop().Done() }()

		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		defer signal.Stop(hup)
		hupCtx, stopHup := context.WithCancel(ctx)
		defer stopHup()
		go cat.InvalidateOn(hupCtx, hup)

		cars = cat
	}

	e, _, err := newServer(cfg, st, cars, log)
	if err != nil {
		return err
	}

	addr := cfg.Server.Addr()
	log.Info("starting server", "addr", addr, "version", Version)

	serverErr := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		log.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}
