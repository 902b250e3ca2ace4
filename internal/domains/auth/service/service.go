package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Auth=MockAuthService

import (
	"context"
	"errors"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"rimbest/config"
	"rimbest/infras/jwt"
	"rimbest/infras/otel"
	"rimbest/internal/domains/auth/model"
	"rimbest/internal/domains/auth/model/dto"
	"rimbest/internal/domains/auth/repository"
	"rimbest/shared"
	"rimbest/shared/cache"
	"rimbest/shared/clock"
	"rimbest/shared/constant"
	"rimbest/shared/failure"
	"time"

	"github.com/rs/zerolog/log"
)

const cacheSession = "session"

const messageInvalidCredentials = "Invalid username or password"

// Auth is the session store. A bearer token is only accepted while the
// session created by SignIn exists.
type Auth interface {
	SignIn(ctx context.Context, req dto.SignInRequest) (dto.SignInResponse, error)
	SignUp(ctx context.Context, req dto.SignUpRequest) error
	SignOut(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (model.Session, error)
}

type serviceImpl struct {
	repo  repository.Auth
	cfg   *config.Config
	cache cache.RedisCache
	jwt   jwt.JWT
	clock clock.Clock
	otel  otel.Otel
}

func New(repo repository.Auth, cfg *config.Config, cache cache.RedisCache, jwt jwt.JWT, clock clock.Clock, otel otel.Otel) Auth {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		jwt:   jwt,
		clock: clock,
		otel:  otel,
	}
}

func (s *serviceImpl) SignIn(ctx context.Context, req dto.SignInRequest) (res dto.SignInResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SignIn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	account, err := s.repo.SignIn(ctx, req.Username, req.Password)
	if err != nil {
		if failure.Is(err, failure.KindAuth) || failure.Is(err, failure.KindBusinessRule) {
			log.Warn().Str("username", req.Username).Msg("sign in rejected by remote API")

			return res, failure.Unauthorized(messageInvalidCredentials)
		}

		log.Error().Err(err).Msg("failed to sign in")

		return res, fmt.Errorf("failed to sign in: %w", err)
	}

	claims, err := s.jwt.Inspect(account.Token)
	if err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("remote API issued an unusable token")

		return res, failure.Unauthorized(failure.MessageAuth)
	}

	session := model.NewSession(account, claims.Expiry())

	ttl := s.ttl(session)
	if ttl <= 0 {
		return res, failure.Unauthorized(failure.MessageAuth)
	}

	if err = s.cache.Save(ctx, sessionKey(account.Token), session, ttl); err != nil {
		log.Error().Err(err).Msg("failed to save session")

		return res, fmt.Errorf("failed to save session: %w", err)
	}

	scope.SetAttribute("user.id", session.UserID)
	log.Info().Int64("userId", session.UserID).Str("role", session.Role).Msg("session opened")

	res.FromModel(session)

	return res, nil
}

func (s *serviceImpl) SignUp(ctx context.Context, req dto.SignUpRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SignUp")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.SignUp(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("failed to sign up")

		return fmt.Errorf("failed to sign up: %w", err)
	}

	return nil
}

func (s *serviceImpl) SignOut(ctx context.Context, token string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SignOut")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.cache.Delete(ctx, sessionKey(token)); err != nil {
		log.Error().Err(err).Msg("failed to delete session")

		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// Resolve returns the session owning token. Every failure is reported as an
// auth failure so the client signs in again.
func (s *serviceImpl) Resolve(ctx context.Context, token string) (res model.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resolve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.jwt.Inspect(token); err != nil {
		log.Debug().Err(err).Msg("bearer token rejected")

		return res, failure.Unauthorized(failure.MessageAuth)
	}

	if err = s.cache.Get(ctx, sessionKey(token), &res); err != nil {
		if errors.Is(err, cache.Nil) {
			log.Debug().Msg("no session for bearer token")

			return res, failure.Unauthorized(failure.MessageAuth)
		}

		log.Error().Err(err).Msg("failed to read session")

		return res, failure.Connectivity()
	}

	if res.Expired(s.clock.Now()) {
		return model.Session{}, failure.Unauthorized(failure.MessageAuth)
	}

	return res, nil
}

// ttl is the configured session lifetime capped by the token expiry, in seconds.
func (s *serviceImpl) ttl(session model.Session) int {
	ttl := time.Duration(s.cfg.Session.TTLSeconds) * time.Second

	if !session.ExpiresAt.IsZero() {
		if remaining := session.ExpiresAt.Sub(s.clock.Now()); remaining < ttl || ttl <= 0 {
			ttl = remaining
		}
	}

	return int(ttl / time.Second)
}

// sessionKey never stores the raw bearer token in a key.
func sessionKey(token string) string {
	sum := sha256.Sum256([]byte(token))

	return shared.BuildCacheKey(cacheSession, hex.EncodeToString(sum[:]))
}
