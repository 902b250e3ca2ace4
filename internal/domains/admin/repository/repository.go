package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"
	"rimbest/infras/otel"
	"rimbest/infras/restapi"
	"rimbest/internal/domains/admin/model"
	"rimbest/shared/constant"
)

const (
	pathStats          = "/admin/stats"
	pathUsers          = "/admin/users"
	pathMonthlyRevenue = "/admin/revenue/monthly"
)

type Admin interface {
	GetStats(ctx context.Context, token string) (model.Stats, error)
	GetUsers(ctx context.Context, token string) ([]model.User, error)
	GetMonthlyRevenue(ctx context.Context, token string) (model.MonthlyRevenue, error)
}

type repositoryImpl struct {
	client restapi.Client
	otel   otel.Otel
}

func New(client restapi.Client, otel otel.Otel) Admin {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) GetStats(ctx context.Context, token string) (res model.Stats, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetStats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.client.Do(ctx, restapi.Request{Method: http.MethodGet, Path: pathStats, Token: token}, &res); err != nil {
		return res, fmt.Errorf("failed to get admin stats: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) GetUsers(ctx context.Context, token string) (res []model.User, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetUsers")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.client.Do(ctx, restapi.Request{Method: http.MethodGet, Path: pathUsers, Token: token}, &res); err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) GetMonthlyRevenue(ctx context.Context, token string) (res model.MonthlyRevenue, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetMonthlyRevenue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.client.Do(ctx, restapi.Request{Method: http.MethodGet, Path: pathMonthlyRevenue, Token: token}, &res); err != nil {
		return nil, fmt.Errorf("failed to get monthly revenue: %w", err)
	}

	return res, nil
}
