package auth

import (
	"net/http"
	"rimbest/infras/jwt"
	"rimbest/infras/otel"
	"rimbest/internal/domains/auth/model"
	"rimbest/internal/domains/auth/model/dto"
	"rimbest/internal/domains/auth/service"
	"rimbest/shared/constant"
	"rimbest/shared/failure"
	"rimbest/shared/validator"
	"rimbest/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", handler.SignUp)
		r.Post("/signin", handler.SignIn)
		r.Post("/signout", handler.SignOut)
		r.Get("/me", handler.Me)
	})
}

// SignUp handles account registration
// @Summary Register a new account
// @Description Create an account on the booking server. The caller signs in afterwards.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignUpRequest true "Sign Up Request"
// @Success 201 {object} response.Message "Account created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/auth/signup [post]
func (handler *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SignUp")
	defer scope.End()

	req := dto.SignUpRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SignUp(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sign up")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Account created successfully")

	response.WithMessage(w, http.StatusCreated, "Account created successfully")
}

// SignIn handles sign in
// @Summary Sign in
// @Description Exchange credentials for a bearer token bound to a server side session.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignInRequest true "Sign In Request"
// @Success 200 {object} dto.SignInResponse "Signed in successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/auth/signin [post]
func (handler *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SignIn")
	defer scope.End()

	req := dto.SignInRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SignIn(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sign in")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Signed in successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// SignOut handles sign out
// @Summary Sign out
// @Description Drop the session bound to the bearer token. Signing out twice is not an error.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Message "Signed out successfully"
// @Failure 401 {object} response.Error
// @Router /v1/auth/signout [post]
// @Security BearerAuth
func (handler *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SignOut")
	defer scope.End()

	token, err := jwt.ExtractTokenFromHeader(r.Header.Get(constant.RequestHeaderAuthorization))
	if err != nil {
		err = failure.Unauthorized("Invalid authorization header format")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.SignOut(ctx, token); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sign out")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Signed out successfully")

	response.WithMessage(w, http.StatusOK, "Signed out successfully")
}

// Me returns the current session
// @Summary Current session
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} response.Error
// @Router /v1/auth/me [get]
// @Security BearerAuth
func (handler *Handler) Me(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	session, err := model.RequireSession(r.Context())
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res := dto.SessionResponse{}
	res.FromModel(session)

	response.WithJSON(w, http.StatusOK, res)
}
