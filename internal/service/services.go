package service

import (
	"github.com/MKhiriev/go-travel-diary/internal/config"
	"github.com/MKhiriev/go-travel-diary/internal/logger"
	"github.com/MKhiriev/go-travel-diary/internal/store"
)

// Services is the business layer handed to the transport.
type Services struct {
	AuthService  AuthService
	DiaryService DiaryService
}

// NewServices wires every service over storages. The diary service is
// decorated with input validation.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	diaryService := NewDiaryValidationService().
		Wrap(NewDiaryService(storages.DiaryEntryRepository, logger))

	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, cfg.App, logger),
		DiaryService: diaryService,
	}
}
