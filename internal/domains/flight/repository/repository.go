package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"
	"rimbest/infras/otel"
	"rimbest/infras/restapi"
	"rimbest/internal/domains/flight/model"
	"rimbest/shared/constant"
	"strconv"
)

const (
	pathFlights  = "/flights"
	pathAirlines = "/airlines"
)

type Flight interface {
	GetAll(ctx context.Context) ([]model.Flight, error)
	Get(ctx context.Context, id int64) (model.Flight, error)
	GetAirlines(ctx context.Context) ([]model.Airline, error)
}

type repositoryImpl struct {
	client restapi.Client
	otel   otel.Otel
}

func New(client restapi.Client, otel otel.Otel) Flight {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) (res []model.Flight, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAllFlights")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.client.Do(ctx, restapi.Request{Method: http.MethodGet, Path: pathFlights}, &res); err != nil {
		return nil, fmt.Errorf("failed to get flights: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Get(ctx context.Context, id int64) (res model.Flight, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetFlight")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	path := pathFlights + "/" + strconv.FormatInt(id, 10)

	if err = r.client.Do(ctx, restapi.Request{Method: http.MethodGet, Path: path}, &res); err != nil {
		return res, fmt.Errorf("failed to get flight %d: %w", id, err)
	}

	return res, nil
}

func (r *repositoryImpl) GetAirlines(ctx context.Context) (res []model.Airline, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAirlines")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.client.Do(ctx, restapi.Request{Method: http.MethodGet, Path: pathAirlines}, &res); err != nil {
		return nil, fmt.Errorf("failed to get airlines: %w", err)
	}

	return res, nil
}
