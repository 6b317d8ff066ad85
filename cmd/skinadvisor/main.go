package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/skinadvisor/internal/catalog"
	"github.com/alexanderramin/skinadvisor/internal/cli"
	"github.com/alexanderramin/skinadvisor/internal/config"
	"github.com/alexanderramin/skinadvisor/internal/db"
	"github.com/alexanderramin/skinadvisor/internal/repository"
	"github.com/alexanderramin/skinadvisor/internal/service"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// A missing .env is normal outside development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: loading .env: %v\n", err)
	}

	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	// The journal lives only as long as the process; sessions are not
	// meant to survive a restart.
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer database.Close()

	sessionRepo := repository.NewSQLiteAdvisorSessionRepo(database)
	journalRepo := repository.NewSQLiteActionLogRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr, cfg.LogLevel))
	}

	advisor := service.NewAdvisor(cat, nil)
	app := &cli.App{
		Sessions: service.NewSessionService(advisor, sessionRepo, journalRepo, uow, observers...),
		Catalog:  cat,
		Config:   cfg,
		Logger:   logger,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
