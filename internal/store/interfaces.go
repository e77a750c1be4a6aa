package store

import (
	"context"

	"github.com/MKhiriev/go-travel-diary/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists registered accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// fields populated. A duplicate username yields [ErrLoginAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername returns the account with the exact username or
	// [ErrNoUserWasFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// DiaryEntryRepository persists the global collection of diary entries.
// Missing ids yield [ErrDiaryEntryNotFound].
type DiaryEntryRepository interface {
	ListDiaryEntries(ctx context.Context) ([]models.DiaryEntry, error)
	GetDiaryEntry(ctx context.Context, id string) (models.DiaryEntry, error)
	CreateDiaryEntry(ctx context.Context, entry models.DiaryEntry) (models.DiaryEntry, error)
	ReplaceDiaryEntry(ctx context.Context, entry models.DiaryEntry) (models.DiaryEntry, error)
	DeleteDiaryEntry(ctx context.Context, id string) error
}
