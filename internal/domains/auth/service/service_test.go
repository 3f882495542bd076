package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"transbook/config"
	"transbook/infras/otel/mocks"
	"transbook/internal/domains/auth/model/dto"
	"transbook/internal/domains/auth/service"
	userMocks "transbook/internal/domains/user/mocks"
	userModel "transbook/internal/domains/user/model"
	cacheMocks "transbook/shared/cache/mocks"
	"transbook/shared/constant"
	"transbook/shared/failure"
)

func newAuthService(t *testing.T) (service.Auth, *userMocks.MockUser, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Auth.LoginTimeoutSeconds = 5

	svc := service.New(mockUserRepo, service.NewFallbackCredentials(), cfg, mockCache, mockOtel)

	return svc, mockUserRepo, mockCache
}

func TestAuthService_Login(t *testing.T) {
	dbUser := userModel.User{
		ID:       42,
		Name:     "Jane Roe",
		Email:    "jane@example.com",
		Password: "Secret123",
		Role:     constant.RoleUser,
		IsActive: true,
	}

	tests := []struct {
		name        string
		req         dto.LoginRequest
		setupMock   func(repo *userMocks.MockUser)
		wantErr     bool
		wantMessage string
		wantUserID  int64
	}{
		{
			name: "successful database login",
			req:  dto.LoginRequest{Email: "jane@example.com", Password: "Secret123", Role: constant.RoleUser},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(dbUser, nil)
			},
			wantMessage: "Login successful",
			wantUserID:  42,
		},
		{
			name: "matching credentials with wrong role never fall back",
			req:  dto.LoginRequest{Email: "jane@example.com", Password: "Secret123", Role: constant.RoleAdmin},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(dbUser, nil)
			},
			wantErr: true,
		},
		{
			name: "database error degrades to demo account",
			req:  dto.LoginRequest{Email: "user@example.com", Password: "user123", Role: constant.RoleUser},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, errors.New("connection refused"))
			},
			wantMessage: "Login successful (Demo Mode)",
			wantUserID:  1,
		},
		{
			name: "unknown email falls back to demo admin account",
			req:  dto.LoginRequest{Email: "admin@example.com", Password: "admin123", Role: constant.RoleAdmin},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantMessage: "Login successful (Demo Mode)",
			wantUserID:  1,
		},
		{
			name: "wrong password in both tiers is rejected",
			req:  dto.LoginRequest{Email: "user@example.com", Password: "nope", Role: constant.RoleUser},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
		{
			name: "demo account with wrong role is rejected",
			req:  dto.LoginRequest{Email: "user@example.com", Password: "user123", Role: constant.RoleAdmin},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockUserRepo, _ := newAuthService(t)
			tt.setupMock(mockUserRepo)

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 401, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantMessage, res.Message)
			assert.Equal(t, tt.wantUserID, res.User.ID)
		})
	}
}

func TestAuthService_Login_RejectionsShareOneMessage(t *testing.T) {
	svc, mockUserRepo, _ := newAuthService(t)

	mockUserRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(userModel.User{}, nil).
		Times(2)

	_, errUnknown := svc.Login(context.Background(), dto.LoginRequest{
		Email: "who@example.com", Password: "whatever", Role: constant.RoleUser,
	})
	_, errWrongPass := svc.Login(context.Background(), dto.LoginRequest{
		Email: "user@example.com", Password: "wrong", Role: constant.RoleUser,
	})

	assert.Error(t, errUnknown)
	assert.Error(t, errWrongPass)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestAuthService_Register(t *testing.T) {
	validReq := dto.RegisterRequest{
		Name:     "New User",
		Email:    "new@example.com",
		Password: "Passw0rd",
	}

	tests := []struct {
		name      string
		req       dto.RegisterRequest
		setupMock func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
		wantMsg   string
	}{
		{
			name: "successful registration",
			req:  validReq,
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(7), nil)
				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "duplicate email caught by pre-check",
			req:  validReq,
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "duplicate email caught by unique constraint",
			req:  validReq,
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(0), &pq.Error{Code: "23505"})
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "existence check failure",
			req:  validReq,
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("connection refused"))
			},
			wantErr:  true,
			wantCode: 500,
			wantMsg:  "Registration failed. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockUserRepo, mockCache := newAuthService(t)
			tt.setupMock(mockUserRepo, mockCache)

			res, err := svc.Register(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantMsg != "" {
					assert.EqualError(t, err, tt.wantMsg)
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "User registered successfully", res.Message)
			assert.Equal(t, int64(7), res.User.ID)
			assert.Equal(t, constant.RoleUser, res.User.Role)
		})
	}
}
