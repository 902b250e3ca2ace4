// Package environment decides once, at startup, which development shortcuts
// are allowed. Binaries built without the dev tag always report production.
package environment

import (
	"rimbest/config"
	"rimbest/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

type Environment struct {
	production       bool
	paymentTestMode  bool
	forceCancel      bool
	forceCancelDelay time.Duration
}

func New(cfg *config.Config) *Environment {
	env := &Environment{
		production: !devBuild || cfg.Server.Env == constant.ServerEnvProduction,
	}

	if !env.production {
		env.paymentTestMode = cfg.App.Dev.PaymentTestMode
		env.forceCancel = cfg.App.Dev.ForceCancelSuccess
		env.forceCancelDelay = time.Duration(cfg.App.Dev.ForceCancelDelaySeconds) * time.Second
	}

	log.Info().
		Bool("production", env.production).
		Bool("dev_build", devBuild).
		Bool("payment_test_mode", env.paymentTestMode).
		Bool("force_cancel_success", env.forceCancel).
		Msg("Environment capabilities resolved")

	if env.paymentTestMode || env.forceCancel {
		log.Warn().Msg("Development shortcuts are enabled, never run this build in production")
	}

	return env
}

// Production returns an Environment with every shortcut disabled.
func Production() *Environment {
	return &Environment{production: true}
}

func (e *Environment) IsProduction() bool {
	return e.production
}

// PaymentTestMode reports whether payments are fabricated locally with relaxed validation.
func (e *Environment) PaymentTestMode() bool {
	return !e.production && e.paymentTestMode
}

// ForceCancelSuccess reports whether a failed cancellation is turned into a
// success after the returned delay.
func (e *Environment) ForceCancelSuccess() (time.Duration, bool) {
	if e.production || !e.forceCancel {
		return 0, false
	}

	return e.forceCancelDelay, true
}
