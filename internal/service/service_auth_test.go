package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-travel-diary/internal/config"
	"github.com/MKhiriev/go-travel-diary/internal/logger"
	"github.com/MKhiriev/go-travel-diary/internal/mock"
	"github.com/MKhiriev/go-travel-diary/internal/store"
	"github.com/MKhiriev/go-travel-diary/internal/utils"
	"github.com/MKhiriev/go-travel-diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "travel-diary-test"
)

// newTestAuthSvc builds an authService over a mocked repository.
func newTestAuthSvc(t *testing.T, cfg config.App) (*authService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	if cfg.TokenSignKey == "" {
		cfg.TokenSignKey = testSignKey
	}
	if cfg.TokenIssuer == "" {
		cfg.TokenIssuer = testIssuer
	}
	cfg.PasswordHashCost = bcrypt.MinCost

	svc := NewAuthService(repo, cfg, logger.Nop()).(*authService)
	return svc, repo
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	digest, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return digest
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	svc, repo := newTestAuthSvc(t, config.App{})
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{}, store.ErrNoUserWasFound),
		repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "alice", u.Username)
				assert.Empty(t, u.Password, "plain password must not reach the store")
				assert.True(t, strings.HasPrefix(u.PasswordHash, "$2"))
				assert.True(t, utils.ComparePassword(u.PasswordHash, "pw1"))
				u.UserID = 1
				return u, nil
			},
		),
	)

	user, err := svc.RegisterUser(ctx, models.User{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestAuthService_RegisterUser_MissingFields(t *testing.T) {
	svc, _ := newTestAuthSvc(t, config.App{})

	for _, user := range []models.User{
		{Username: "alice"},
		{Password: "pw1"},
		{},
	} {
		_, err := svc.RegisterUser(context.Background(), user)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

func TestAuthService_RegisterUser_AlreadyExists_PreCheck(t *testing.T) {
	svc, repo := newTestAuthSvc(t, config.App{})
	ctx := context.Background()

	repo.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{UserID: 1, Username: "alice"}, nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.RegisterUser(ctx, models.User{Username: "alice", Password: "pw1"})
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestAuthService_RegisterUser_AlreadyExists_Race(t *testing.T) {
	svc, repo := newTestAuthSvc(t, config.App{})
	ctx := context.Background()

	repo.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{}, store.ErrNoUserWasFound)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := svc.RegisterUser(ctx, models.User{Username: "alice", Password: "pw1"})
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestAuthService_RegisterUser_LookupFails(t *testing.T) {
	svc, repo := newTestAuthSvc(t, config.App{})
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	repo.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{}, dbErr)

	_, err := svc.RegisterUser(ctx, models.User{Username: "alice", Password: "pw1"})
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestAuthService_RegisterUser_PasswordTooLong(t *testing.T) {
	svc, repo := newTestAuthSvc(t, config.App{})
	ctx := context.Background()

	repo.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.RegisterUser(ctx, models.User{Username: "alice", Password: strings.Repeat("x", 73)})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	digest := hashed(t, "pw1")

	tests := []struct {
		name    string
		input   models.User
		setup   func(repo *mock.MockUserRepository)
		wantErr error
	}{
		{
			name:  "success",
			input: models.User{Username: "alice", Password: "pw1"},
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").
					Return(models.User{UserID: 1, Username: "alice", PasswordHash: digest}, nil)
			},
		},
		{
			name:  "wrong password",
			input: models.User{Username: "alice", Password: "nope"},
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").
					Return(models.User{UserID: 1, Username: "alice", PasswordHash: digest}, nil)
			},
			wantErr: ErrWrongPassword,
		},
		{
			name:  "unknown user",
			input: models.User{Username: "ghost", Password: "pw1"},
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByUsername(gomock.Any(), "ghost").
					Return(models.User{}, store.ErrNoUserWasFound)
			},
			wantErr: store.ErrNoUserWasFound,
		},
		{
			name:    "missing password",
			input:   models.User{Username: "alice"},
			setup:   func(*mock.MockUserRepository) {},
			wantErr: ErrInvalidDataProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAuthSvc(t, config.App{})
			tt.setup(repo)

			user, err := svc.Login(context.Background(), tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "alice", user.Username)
		})
	}
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc, _ := newTestAuthSvc(t, config.App{TokenDuration: time.Hour})
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{Username: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "alice", parsed.Username)

	exp, err := parsed.Claims.GetExpirationTime()
	require.NoError(t, err)
	require.NotNil(t, exp)
}

func TestAuthService_CreateToken_NoExpiry(t *testing.T) {
	svc, _ := newTestAuthSvc(t, config.App{TokenDuration: time.Hour, DisableTokenExpiry: true})

	token, err := svc.CreateToken(context.Background(), models.User{Username: "alice"})
	require.NoError(t, err)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	exp, err := parsed.Claims.GetExpirationTime()
	require.NoError(t, err)
	assert.Nil(t, exp)
}

func TestAuthService_CreateToken_EmptyUsername(t *testing.T) {
	svc, _ := newTestAuthSvc(t, config.App{})

	_, err := svc.CreateToken(context.Background(), models.User{})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc, _ := newTestAuthSvc(t, config.App{})
	other, _ := newTestAuthSvc(t, config.App{TokenSignKey: "another-key"})
	expired, _ := newTestAuthSvc(t, config.App{TokenDuration: -time.Minute})

	foreign, err := other.CreateToken(context.Background(), models.User{Username: "alice"})
	require.NoError(t, err)
	stale, err := expired.CreateToken(context.Background(), models.User{Username: "alice"})
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage":   "not-a-token",
		"wrong key": foreign.SignedString,
		"expired":   stale.SignedString,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), raw)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
