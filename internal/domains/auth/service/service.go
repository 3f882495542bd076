package service

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"transbook/config"
	"transbook/infras/otel"
	"transbook/internal/domains/auth/model/dto"
	userModel "transbook/internal/domains/user/model"
	userRepo "transbook/internal/domains/user/repository"
	"transbook/shared"
	"transbook/shared/cache"
	"transbook/shared/constant"
	gDto "transbook/shared/dto"
	"transbook/shared/failure"
)

const (
	cacheGetAllUser = "user:gets"

	msgLoginSuccess     = "Login successful"
	msgLoginDemoSuccess = "Login successful (Demo Mode)"
	msgInvalidCreds     = "Invalid credentials"
	msgInvalidRole      = "Invalid role for this account"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error)
}

type serviceImpl struct {
	userRepo userRepo.User
	fallback FallbackCredentials
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(userRepo userRepo.User, fallback FallbackCredentials, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Auth {
	return &serviceImpl{
		userRepo: userRepo,
		fallback: fallback,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// Login authenticates in two tiers. The users table is consulted first,
// under a bounded timeout so a saturated pool or a dead store cannot hang
// the request. A row whose credential matches but whose role differs is an
// explicit rejection and never falls through. Every other store-side outcome
// (timeout, connection error, unknown email, credential mismatch) degrades
// to the injected demo table. Failures are reported with one uniform message
// so callers cannot distinguish unknown email, wrong password, or store
// unavailability.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	emailFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Email,
				Table:    userModel.TableName,
			},
		},
	}

	lookupCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Auth.LoginTimeoutSeconds)*time.Second)
	defer cancel()

	user, err := s.userRepo.Get(lookupCtx, emailFilter)
	if err == nil && user.ID != 0 && user.Password == req.Password {
		if user.Role != req.Role {
			return res, failure.Unauthorized(msgInvalidRole) //nolint:wrapcheck
		}

		res.FromModel(user, msgLoginSuccess)

		return res, nil
	}

	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("database lookup failed during login, trying demo accounts")
	}

	account, ok := s.fallback[req.Email]
	if ok && account.Password == req.Password && account.Role == req.Role {
		scope.AddEvent("Demo mode login")

		res.FromModel(userModel.User{
			ID:    1,
			Email: req.Email,
			Name:  account.Name,
			Role:  account.Role,
		}, msgLoginDemoSuccess)

		return res, nil
	}

	return res, failure.Unauthorized(msgInvalidCreds) //nolint:wrapcheck
}

// Register creates a user row with the credential stored untransformed. A
// duplicate email is rejected both by the pre-check and, should a concurrent
// registration slip past it, by the unique constraint.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.RegisterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	emailFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Email,
				Table:    userModel.TableName,
			},
		},
	}

	exists, err := s.userRepo.Exist(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, failure.InternalFromString("Registration failed. Please try again.") //nolint:wrapcheck
	}

	if exists {
		return res, failure.Conflict("Email already registered") //nolint:wrapcheck
	}

	id, err := s.userRepo.Insert(ctx, req.ToModel())
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict("Email already registered") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create user")

		return res, failure.InternalFromString("Registration failed. Please try again.") //nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllUser)
	}()

	res.Message = "User registered successfully"
	res.User = dto.UserSummary{
		ID:    id,
		Name:  req.Name,
		Email: req.Email,
		Role:  constant.RoleUser,
	}

	return res, nil
}
