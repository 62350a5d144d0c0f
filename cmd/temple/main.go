// Command temple serves the schema workspace API and offers offline
// import, export and diagram commands against the same database.
//
//	temple [serve]
//	temple import <file.yaml>
//	temple export
//	temple diagram <project> [model]
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/johnwards/temple/internal/config"
	"github.com/johnwards/temple/internal/database"
	"github.com/johnwards/temple/internal/logger"
	"github.com/johnwards/temple/internal/seed"
	"github.com/johnwards/temple/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "temple: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.Production())
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cmd := "serve"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}
	if err := checkArgs(cmd, args); err != nil {
		return err
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := database.Migrate(ctx, db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	s := store.New(db)
	if err := seed.Bootstrap(ctx, s); err != nil {
		return fmt.Errorf("seed data: %w", err)
	}

	log.Debug("database ready", zap.String("path", cfg.DBPath), zap.String("command", cmd))

	switch cmd {
	case "serve":
		return serve(ctx, cfg, log, s)
	case "import":
		return importFile(ctx, s, args[0], stdout)
	case "export":
		return export(ctx, s, stdout)
	default:
		return diagram(ctx, s, args, stdout)
	}
}

func checkArgs(cmd string, args []string) error {
	switch {
	case cmd == "serve" && len(args) == 0:
	case cmd == "import" && len(args) == 1:
	case cmd == "export" && len(args) == 0:
	case cmd == "diagram" && (len(args) == 1 || len(args) == 2):
	default:
		return fmt.Errorf("usage: temple [serve] | import <file.yaml> | export | diagram <project> [model]")
	}
	return nil
}
