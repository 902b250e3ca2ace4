package main

import (
	"rimbest/config"
	"rimbest/helper"
	"rimbest/shared/logger"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	pflag.Usage = func() {
		log.Info().Msg("usage: migrate [up|down|drop|step-up|version]")
	}
	pflag.Parse()

	if pflag.NArg() < 1 {
		log.Fatal().Msg("Migration direction (up/down) is required")
	}

	cfg := config.Get()

	logger.InitLogger(cfg)
	logger.SetLogLevel(cfg)

	if err := helper.Runner(cfg, pflag.Arg(0)); err != nil {
		log.Fatal().Err(err).Str("action", pflag.Arg(0)).Msg("Migration failed")
	}
}
