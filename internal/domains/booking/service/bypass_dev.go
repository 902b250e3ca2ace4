//go:build dev

package service

import (
	"context"

	"github.com/rs/zerolog/log"
)

// bypassCancel turns a failed remote cancel into a success once the
// configured delay has passed. Only development builds carry it.
func (s *serviceImpl) bypassCancel(ctx context.Context, cause error) bool {
	delay, ok := s.env.ForceCancelSuccess()
	if !ok {
		return false
	}

	log.Warn().Err(cause).Dur("delay", delay).Msg("remote cancel failed, forcing success")

	select {
	case <-s.clock.After(delay):
		return true
	case <-ctx.Done():
		return false
	}
}
