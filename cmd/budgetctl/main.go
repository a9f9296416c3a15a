// Package main is the budgetctl command line client.
// It reads the same database as the API and prints views to the terminal.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/budgeteur/backend/config"
	"github.com/budgeteur/backend/internal/infra/db"
	"github.com/budgeteur/backend/internal/infra/dependency"
)

var (
	cfg         *config.Config
	dbDriver    string
	databaseURL string
	logLevel    string

	rootCmd = &cobra.Command{
		Use:               "budgetctl",
		Short:             "Inspect budget views from the terminal",
		Long:              `budgetctl prints the grouped transactions view, the monthly dashboard and tag exclusions stored in the budget database.`,
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dbDriver, "db-driver", "", "database driver (postgres, sqlite); overrides DB_DRIVER")
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "database DSN or sqlite path; overrides DATABASE_URL")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); overrides LOG_LEVEL")

	rootCmd.AddCommand(viewCmd())
	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(rangesCmd())
	rootCmd.AddCommand(excludeCmd())
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	cfg = config.Load()
	if dbDriver != "" {
		cfg.Database.Driver = dbDriver
	}
	if databaseURL != "" {
		cfg.Database.URL = databaseURL
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	return cfg.Validate()
}

// app holds the wired use cases for one command run.
type app struct {
	database *db.Database
	useCases dependency.UseCases
}

func openApp() (*app, error) {
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	injector := dependency.NewInjector(cfg, database.DB(), nil)
	return &app{database: database, useCases: injector.UseCases}, nil
}

func (a *app) Close() {
	if err := a.database.Close(); err != nil {
		slog.Warn("Failed to close database connection", "error", err)
	}
}
