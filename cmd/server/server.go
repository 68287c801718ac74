package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	"github.com/berkingurcan/siglife-api/internal/catalog"
	"github.com/berkingurcan/siglife-api/internal/clients/das"
	v1alpha1 "github.com/berkingurcan/siglife-api/internal/handlers/api/v1alpha1"
	"github.com/berkingurcan/siglife-api/internal/orchestrators/session"
	"github.com/berkingurcan/siglife-api/internal/pkg/clock"
	"github.com/berkingurcan/siglife-api/internal/pkg/idgen"
	redisclient "github.com/berkingurcan/siglife-api/internal/redis"
	gamesession "github.com/berkingurcan/siglife-api/internal/repositories/game_session"
)

const shutdownTimeout = 30 * time.Second

var (
	httpPort    int
	redisAddr   string
	dasEndpoint string
	useInMemory bool
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the SigLife API HTTP server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", envInt("HTTP_PORT", 8080), "HTTP server port")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", envStr("REDIS_ADDR", "localhost:6379"), "Redis address")
	serverCmd.Flags().StringVar(&dasEndpoint, "das-endpoint", envStr("DAS_ENDPOINT", ""), "Solana DAS RPC endpoint (badge listing disabled when empty)")
	serverCmd.Flags().BoolVar(&useInMemory, "in-memory", false, "Use in-memory storage instead of Redis (dev only)")
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			return n
		}
	}
	return fallback
}

func runServer(cmd *cobra.Command, args []string) error {
	repo, err := buildRepository()
	if err != nil {
		return err
	}

	cat, err := catalog.New(nil)
	if err != nil {
		return fmt.Errorf("failed to build event catalog: %w", err)
	}

	sessionService, err := session.NewOrchestrator(&session.Config{
		GameSessionRepo: repo,
		Catalog:         cat,
		IDGenerator:     idgen.NewPrefixed("hist"),
		Clock:           clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create session orchestrator: %w", err)
	}

	var dasClient das.Client
	if dasEndpoint != "" {
		dasClient, err = das.New(&das.Config{Endpoint: dasEndpoint})
		if err != nil {
			return fmt.Errorf("failed to create DAS client: %w", err)
		}
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.Config{
		SessionService: sessionService,
		DASClient:      dasClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create API handler: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "siglife-api",
		ErrorHandler: v1alpha1.ErrorHandler,
	})
	app.Use(recover.New())
	handler.RegisterRoutes(app)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", httpPort)
		if err := app.Listen(fmt.Sprintf(":%d", httpPort)); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigChan:
		slog.Info("received shutdown signal, gracefully stopping")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func buildRepository() (gamesession.Repository, error) {
	if useInMemory {
		slog.Warn("using in-memory storage, sessions will not survive restarts")
		return gamesession.NewInMemory(), nil
	}

	client, err := redisclient.NewClient(redisAddr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	repo, err := gamesession.NewRedisRepository(&gamesession.Config{
		Client: client,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session repository: %w", err)
	}
	return repo, nil
}
