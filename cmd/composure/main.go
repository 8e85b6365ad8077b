package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/composure-bot/composure/internal/auth"
	"github.com/composure-bot/composure/internal/config"
	"github.com/composure-bot/composure/internal/interaction"
	"github.com/composure-bot/composure/internal/server"
	"github.com/composure-bot/composure/internal/telemetry"
	"github.com/composure-bot/composure/internal/webhook"
)

func main() {
	configPath := flag.String("config", "composure.yaml", "path to the config file")
	flag.Parse()

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if cfg.Discord.PublicKey == "" {
		log.Fatal("discord.public_key is required (COMPOSURE_DISCORD__PUBLIC_KEY)")
	}

	shutdown, err := telemetry.InitTracer("composure", logger)
	if err != nil {
		log.Fatalf("initializing tracer: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Error("tracer shutdown", slog.String("error", err.Error()))
		}
	}()

	verifier, err := auth.NewVerifier(cfg.Discord.PublicKey)
	if err != nil {
		log.Fatalf("bad public key: %v", err)
	}

	handler := webhook.NewHandler(verifier, logger)
	handler.Command("ping", func(ctx context.Context, ic *interaction.ApplicationCommand) (interaction.Response, error) {
		return interaction.RespondWithMessage("pong!"), nil
	})

	srv := server.New(cfg.Server.Port, logger)
	srv.Router.Post("/interactions", handler.ServeHTTP)
	srv.Router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
	logger.Info("shutdown complete")
}
