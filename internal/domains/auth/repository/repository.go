package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"
	"rimbest/infras/otel"
	"rimbest/infras/restapi"
	"rimbest/internal/domains/auth/model"
	"rimbest/shared/constant"
)

const (
	pathSignIn = "/auth/signin"
	pathSignUp = "/auth/signup"
)

type Auth interface {
	SignIn(ctx context.Context, username, password string) (model.Account, error)
	SignUp(ctx context.Context, registration model.Registration) error
}

type repositoryImpl struct {
	client restapi.Client
	otel   otel.Otel
}

func New(client restapi.Client, otel otel.Otel) Auth {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) SignIn(ctx context.Context, username, password string) (res model.Account, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".SignIn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	body := map[string]string{
		"username": username,
		"password": password,
	}

	if err = r.client.Do(ctx, restapi.Request{Method: http.MethodPost, Path: pathSignIn, Body: body}, &res); err != nil {
		return res, fmt.Errorf("failed to sign in: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) SignUp(ctx context.Context, registration model.Registration) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".SignUp")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.client.Do(ctx, restapi.Request{Method: http.MethodPost, Path: pathSignUp, Body: registration}, nil); err != nil {
		return fmt.Errorf("failed to sign up: %w", err)
	}

	return nil
}
