// desk is the terminal ticket desk. It sells tickets from a local SQLite
// store, one buyer at a time.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/vietanh2810/ticket-desk/internal/config"
	"github.com/vietanh2810/ticket-desk/internal/core"
	"github.com/vietanh2810/ticket-desk/internal/db"
	"github.com/vietanh2810/ticket-desk/internal/desk"
	"github.com/vietanh2810/ticket-desk/internal/logger"
	"github.com/vietanh2810/ticket-desk/internal/shell"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath, dbPath, logPath string

	flagSet := pflag.NewFlagSet("desk", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "./cmd/app/config.yml", "path to the configuration file")
	flagSet.StringVar(&dbPath, "db", "", "path to the SQLite store (default: sqlite.path from the configuration)")
	flagSet.StringVar(&logPath, "log", "ticket-desk.log", "write log records to this file")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.InitFile(logPath); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer func() { _ = zap.L().Sync() }()

	if dbPath == "" {
		dbPath = conf.SQLite.Path
	}

	ctx := context.Background()

	sqliteDB, err := db.OpenSQLite(dbPath)
	if err != nil {
		return noConnection(err)
	}

	c, err := core.Open(ctx, sqliteDB, conf)
	if err != nil {
		return noConnection(err)
	}

	session := shell.NewSession("desk", c.Inventory, c.Carts, c.Orders, c.Venue)
	if err = session.Start(ctx); err != nil {
		return noConnection(err)
	}

	program := tea.NewProgram(desk.NewModel(ctx, session), tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func noConnection(err error) error {
	zap.L().Error("no connection with the database", zap.Error(err))
	fmt.Fprintln(os.Stderr, desk.RenderAlert(shell.AlertNoConnection))
	return err
}
