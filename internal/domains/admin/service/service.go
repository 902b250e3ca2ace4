package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Admin=MockAdminService

import (
	"context"
	"fmt"
	"rimbest/infras/otel"
	"rimbest/internal/domains/admin/model/dto"
	"rimbest/internal/domains/admin/repository"
	authModel "rimbest/internal/domains/auth/model"
	"rimbest/shared/clock"
	"rimbest/shared/constant"
	"rimbest/shared/failure"

	"github.com/rs/zerolog/log"
)

// Admin forwards read-only dashboard queries with the caller's token.
type Admin interface {
	GetStats(ctx context.Context, session authModel.Session) (dto.StatsResponse, error)
	GetUsers(ctx context.Context, session authModel.Session) (dto.GetUsersResponse, error)
	GetMonthlyRevenue(ctx context.Context, session authModel.Session) (dto.RevenueResponse, error)
}

type serviceImpl struct {
	repo  repository.Admin
	clock clock.Clock
	otel  otel.Otel
}

func New(repo repository.Admin, clock clock.Clock, otel otel.Otel) Admin {
	return &serviceImpl{
		repo:  repo,
		clock: clock,
		otel:  otel,
	}
}

func authorize(session authModel.Session) error {
	if !session.IsAdmin() {
		return failure.ForbiddenError
	}

	return nil
}

func (s *serviceImpl) GetStats(ctx context.Context, session authModel.Session) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetStats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = authorize(session); err != nil {
		return res, err
	}

	stats, err := s.repo.GetStats(ctx, session.Token)
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin stats")

		return res, fmt.Errorf("failed to get admin stats: %w", err)
	}

	res.FromModel(stats, s.clock.Now())

	return res, nil
}

func (s *serviceImpl) GetUsers(ctx context.Context, session authModel.Session) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetUsers")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = authorize(session); err != nil {
		return res, err
	}

	users, err := s.repo.GetUsers(ctx, session.Token)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	res.FromModels(users)

	return res, nil
}

func (s *serviceImpl) GetMonthlyRevenue(ctx context.Context, session authModel.Session) (res dto.RevenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMonthlyRevenue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = authorize(session); err != nil {
		return res, err
	}

	revenue, err := s.repo.GetMonthlyRevenue(ctx, session.Token)
	if err != nil {
		log.Error().Err(err).Msg("failed to get monthly revenue")

		return res, fmt.Errorf("failed to get monthly revenue: %w", err)
	}

	res.FromModel(revenue)

	return res, nil
}
