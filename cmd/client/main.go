package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecont1/relatorios-sub001/internal/client/api"
	"github.com/alecont1/relatorios-sub001/internal/client/cli"
	"github.com/alecont1/relatorios-sub001/internal/client/iocli"
	"github.com/alecont1/relatorios-sub001/internal/client/reports"
	"github.com/alecont1/relatorios-sub001/internal/client/session"
	"github.com/alecont1/relatorios-sub001/internal/client/storage/boltdb"
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
	dbPath := flag.String("db", "relatorios-client.db", "Path to local draft database")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	io := iocli.NewStdio()

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		printUsage(io)
		os.Exit(1)
	}

	command := args[0]

	// Создаем контекст
	ctx := context.Background()

	// Открываем BoltDB storage для драфтов
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Сессия живёт только в памяти процесса: токены никогда не
	// попадают в БД
	sess := session.New()

	apiClient := api.NewClient(*serverURL, sess, api.WithLogger(logger))
	reportsService := reports.NewService(apiClient, boltStorage, logger)

	c := cli.New(io, apiClient, sess, reportsService)
	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("relatorios client %s\n", Version)
	fmt.Printf("  build date: %s\n", BuildDate)
	fmt.Printf("  git commit: %s\n", GitCommit)
}

func printUsage(io iocli.IO) {
	c := cli.New(io, nil, nil, nil)
	c.PrintUsage()
}
