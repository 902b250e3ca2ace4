package logger

import (
	"io"
	"os"
	"rimbest/config"
	"rimbest/shared/constant"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger writes JSON lines in production and a console layout everywhere else.
func InitLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var output io.Writer = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	if cfg != nil && cfg.Server.Env == constant.ServerEnvProduction {
		output = os.Stdout
	}

	log.Logger = log.Output(output).With().Str("app", appName(cfg)).Logger()
	log.Trace().Msg("Zerolog initialized.")
}

// Component returns a child of the global logger tagged with the component name.
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}

func appName(cfg *config.Config) string {
	if cfg == nil || cfg.App.Name == "" {
		return "rimbest"
	}

	return cfg.App.Name
}
