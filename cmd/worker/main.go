package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ridecrew/ridecrew/internal/infrastructure/config"
	"github.com/ridecrew/ridecrew/internal/infrastructure/database"
	httpRouter "github.com/ridecrew/ridecrew/internal/interfaces/http"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

// worker runs the scheduled jobs without serving HTTP, for deployments that
// start the API with --scheduler=false.
func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger()
	log.Infow("starting scheduler worker", "environment", env)

	if err := database.Init(&cfg.Database); err != nil {
		log.Errorw("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	container, err := httpRouter.NewContainer(database.Get(), cfg, log)
	if err != nil {
		log.Errorw("failed to build application container", "error", err)
		os.Exit(1)
	}

	container.StartScheduler()
	log.Infow("scheduler worker started",
		"subs_sync", cfg.Scheduler.SubsSyncSpec,
		"session_purge", cfg.Scheduler.SessionPurgeSpec)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Infow("received signal, shutting down", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	container.Shutdown(ctx)

	log.Infow("scheduler worker stopped")
}
