package service

import (
	"context"

	"github.com/MKhiriev/go-travel-diary/models"
)

// AuthService registers accounts, verifies credentials and issues/validates
// bearer tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// DiaryService manages the global collection of diary entries.
//
// Ids that are not well-formed UUIDs are reported as
// store.ErrDiaryEntryNotFound, the same as well-formed unknown ids.
type DiaryService interface {
	ListDiaryEntries(ctx context.Context) ([]models.DiaryEntry, error)
	GetDiaryEntry(ctx context.Context, id string) (models.DiaryEntry, error)
	CreateDiaryEntry(ctx context.Context, input models.DiaryEntryInput) (models.DiaryEntry, error)
	ReplaceDiaryEntry(ctx context.Context, id string, input models.DiaryEntryInput) (models.DiaryEntry, error)
	DeleteDiaryEntry(ctx context.Context, id string) error
}

// DiaryServiceWrapper defines middleware composition for DiaryService.
// Implementations wrap an existing DiaryService to add behavior such as
// logging or validating.
type DiaryServiceWrapper interface {
	Wrap(DiaryService) DiaryService // returns a decorated DiaryService applying additional behavior
}

// IDGenerator produces identifiers for new diary entries.
type IDGenerator interface {
	Generate() string
}
