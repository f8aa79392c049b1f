package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	clientapi "github.com/iudanet/splitbill/internal/client/api"
	"github.com/iudanet/splitbill/internal/client/cache"
	"github.com/iudanet/splitbill/internal/client/cli"
	"github.com/iudanet/splitbill/internal/client/iocli"
	"github.com/iudanet/splitbill/internal/client/session"
	"github.com/iudanet/splitbill/internal/client/storage/boltdb"
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
	serverURL := flag.String("server", defaultServerURL(), "Server URL")
	dbPath := flag.String("db", "splitbill-client.db", "Path to local database")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	// Создаем контекст
	ctx := context.Background()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	stdio := iocli.NewStdio()

	// Gateway клиент читает токен из хранилища и сбрасывает его на 401
	apiClient := clientapi.NewClient(*serverURL, boltStorage)

	// Session владеет identity; конструктор вешает на клиент обработчик 401
	sess := session.New(apiClient, boltStorage)

	// CLI аналог редиректа на /login: объясняем пользователю, что
	// сессия сброшена и нужна повторная авторизация
	apiClient.AddResponseHook(func(_ context.Context, resp *http.Response) {
		if resp.StatusCode == http.StatusUnauthorized {
			fmt.Fprintln(os.Stderr, "Session expired or revoked. Please run 'splitbill login' again.")
		}
	})

	cacheService := cache.NewService(boltStorage)

	app := cli.New(apiClient, sess, cacheService, stdio)

	if err := app.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// defaultServerURL берет адрес сервера из окружения, иначе localhost
func defaultServerURL() string {
	if url := os.Getenv("SPLITBILL_SERVER"); url != "" {
		return url
	}
	return "http://localhost:8000"
}

func printVersion() {
	fmt.Printf("Splitbill Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
