//go:build !dev

package environment_test

import (
	"rimbest/config"
	"rimbest/shared/constant"
	"rimbest/shared/environment"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_ReleaseBuildIgnoresDevSwitches(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvDevelopment
	cfg.App.Dev.PaymentTestMode = true
	cfg.App.Dev.ForceCancelSuccess = true
	cfg.App.Dev.ForceCancelDelaySeconds = 1

	env := environment.New(cfg)

	assert.True(t, env.IsProduction())
	assert.False(t, env.PaymentTestMode())

	_, ok := env.ForceCancelSuccess()
	assert.False(t, ok)
}

func TestProduction(t *testing.T) {
	env := environment.Production()

	assert.True(t, env.IsProduction())
	assert.False(t, env.PaymentTestMode())
}
