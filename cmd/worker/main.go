package main

import (
	"context"
	"os"
	"os/signal"
	"rimbest/config"
	"rimbest/di"
	"rimbest/shared/logger"
	"syscall"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker := di.InitializeWorker()

	defer func() {
		if err := worker.Kafka.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Kafka client")
		}
	}()

	if err := worker.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Ticket worker stopped")

		return
	}

	log.Info().Msg("Ticket worker shut down.")
}
