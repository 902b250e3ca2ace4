//go:build dev

package environment_test

import (
	"rimbest/config"
	"rimbest/shared/constant"
	"rimbest/shared/environment"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_DevBuild(t *testing.T) {
	tests := []struct {
		name           string
		env            string
		testMode       bool
		forceCancel    bool
		wantProduction bool
		wantTestMode   bool
		wantForce      bool
	}{
		{name: "development with switches on", env: constant.ServerEnvDevelopment, testMode: true, forceCancel: true, wantTestMode: true, wantForce: true},
		{name: "development with switches off", env: constant.ServerEnvDevelopment},
		{name: "production env wins over switches", env: constant.ServerEnvProduction, testMode: true, forceCancel: true, wantProduction: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.Env = tt.env
			cfg.App.Dev.PaymentTestMode = tt.testMode
			cfg.App.Dev.ForceCancelSuccess = tt.forceCancel
			cfg.App.Dev.ForceCancelDelaySeconds = 2

			env := environment.New(cfg)

			assert.Equal(t, tt.wantProduction, env.IsProduction())
			assert.Equal(t, tt.wantTestMode, env.PaymentTestMode())

			delay, ok := env.ForceCancelSuccess()
			assert.Equal(t, tt.wantForce, ok)

			if ok {
				assert.Equal(t, 2*time.Second, delay)
			}
		})
	}
}
