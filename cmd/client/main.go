package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	clientapi "github.com/iudanet/zametka/internal/client/api"
	"github.com/iudanet/zametka/internal/client/auth"
	"github.com/iudanet/zametka/internal/client/cli"
	"github.com/iudanet/zametka/internal/client/iocli"
	"github.com/iudanet/zametka/internal/client/netcheck"
	"github.com/iudanet/zametka/internal/client/notes"
	"github.com/iudanet/zametka/internal/client/storage/boltdb"
	"github.com/iudanet/zametka/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "zametka.db", "Path to local database")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	args := flag.Args()
	command := "help"
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Локальное хранилище: кеш заметок, очередь операций, сессия
	store, err := boltdb.New(ctx, *dbPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Сборка зависимостей явная: каждый слой получает то, что использует
	apiClient := clientapi.NewClient(*serverURL)
	checker := netcheck.NewHTTPChecker(*serverURL)
	authService := auth.NewService(apiClient, store, logger)
	engine := sync.NewEngine(apiClient, authService, store, store, store, checker, logger)
	notesService := notes.NewService(engine, store, store, store, checker, logger)

	// Фоновый воркер отправки и наблюдатель сети живут, пока команда выполняется
	go notesService.Run(ctx)

	c := cli.New(iocli.NewStdio(), apiClient, authService, notesService, Version)
	if err := c.Run(ctx, command, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("Zametka Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
