package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/alyoshka-app/alyoshka/internal/infra/config"
	"github.com/alyoshka-app/alyoshka/internal/interface/bot"
	"github.com/alyoshka-app/alyoshka/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	b, err := bot.New(cfg.Bot, logger.New())
	if err != nil {
		log.Fatalf("failed to start bot: %v", err)
	}

	if err := b.Run(ctx); err != nil {
		log.Fatalf("bot stopped with error: %v", err)
	}
}
