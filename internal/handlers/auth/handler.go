package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"transbook/infras/otel"
	"transbook/internal/domains/auth/model/dto"
	"transbook/internal/domains/auth/service"
	"transbook/shared/constant"
	"transbook/shared/validator"
	"transbook/transport/http/response"
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

func (handler *Handler) Router(router chi.Router) {
	router.Post("/login", handler.Login)
	router.Post("/logout", handler.Logout)
	router.Post("/register", handler.Register)
}

// Login authenticates a user against the database, falling back to the
// built-in demo accounts when the database cannot answer.
// @Summary Log in
// @Description Authenticate with email, password and role.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /api/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("email", req.Email).Msg("login rejected")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Login successful for " + req.Email)

	response.WithJSON(w, http.StatusOK, res)
}

// Logout acknowledges a logout. There is no server-side session, so the
// response is the same for every caller.
// @Summary Log out
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Message "Logout successful"
// @Router /api/logout [post]
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	response.WithMessage(w, http.StatusOK, "Logout successful")
}

// Register creates a new customer account.
// @Summary Register a new user
// @Description Create a user account with the customer role.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} dto.RegisterResponse "Registration successful"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/register [post]
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := dto.RegisterRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("email", req.Email).Msg("failed to register user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User registered: " + req.Email)

	response.WithJSON(w, http.StatusCreated, res)
}
