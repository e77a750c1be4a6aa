package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-travel-diary/internal/config"
	"github.com/MKhiriev/go-travel-diary/internal/logger"
	"github.com/MKhiriev/go-travel-diary/internal/service"
	"github.com/MKhiriev/go-travel-diary/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// acceptingAuth returns an AuthService whose ParseToken accepts only token.
func acceptingAuth(token, username string) *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, s string) (models.Token, error) {
			if s != token {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{SignedString: s, Username: username}, nil
		},
	}
}

// ─────────────────────────────────────────────
// Mock DiaryService
// ─────────────────────────────────────────────

type mockDiaryService struct {
	listFn    func(ctx context.Context) ([]models.DiaryEntry, error)
	getFn     func(ctx context.Context, id string) (models.DiaryEntry, error)
	createFn  func(ctx context.Context, input models.DiaryEntryInput) (models.DiaryEntry, error)
	replaceFn func(ctx context.Context, id string, input models.DiaryEntryInput) (models.DiaryEntry, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (m *mockDiaryService) ListDiaryEntries(ctx context.Context) ([]models.DiaryEntry, error) {
	return m.listFn(ctx)
}

func (m *mockDiaryService) GetDiaryEntry(ctx context.Context, id string) (models.DiaryEntry, error) {
	return m.getFn(ctx, id)
}

func (m *mockDiaryService) CreateDiaryEntry(ctx context.Context, input models.DiaryEntryInput) (models.DiaryEntry, error) {
	return m.createFn(ctx, input)
}

func (m *mockDiaryService) ReplaceDiaryEntry(ctx context.Context, id string, input models.DiaryEntryInput) (models.DiaryEntry, error) {
	return m.replaceFn(ctx, id, input)
}

func (m *mockDiaryService) DeleteDiaryEntry(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(t *testing.T, auth service.AuthService, diary service.DiaryService) *Handler {
	t.Helper()
	return newTestHandlerWithConfig(t, auth, diary, config.Server{})
}

func newTestHandlerWithConfig(t *testing.T, auth service.AuthService, diary service.DiaryService, cfg config.Server) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:  auth,
		DiaryService: diary,
	}
	return NewHandler(svcs, cfg, logger.Nop())
}
