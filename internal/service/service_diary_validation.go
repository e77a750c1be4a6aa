package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-travel-diary/internal/validators"
	"github.com/MKhiriev/go-travel-diary/models"
)

// DiaryValidationService rejects incomplete diary entry payloads before they
// reach the wrapped DiaryService.
type DiaryValidationService struct {
	inner     DiaryService
	validator validators.Validator
}

func NewDiaryValidationService() DiaryServiceWrapper {
	return &DiaryValidationService{
		validator: validators.NewInputValidator(),
	}
}

func (v *DiaryValidationService) ListDiaryEntries(ctx context.Context) ([]models.DiaryEntry, error) {
	return v.inner.ListDiaryEntries(ctx)
}

func (v *DiaryValidationService) GetDiaryEntry(ctx context.Context, id string) (models.DiaryEntry, error) {
	return v.inner.GetDiaryEntry(ctx, id)
}

func (v *DiaryValidationService) CreateDiaryEntry(ctx context.Context, input models.DiaryEntryInput) (models.DiaryEntry, error) {
	// title, description, date and location are required; photos are optional
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.DiaryEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateDiaryEntry(ctx, input)
}

func (v *DiaryValidationService) ReplaceDiaryEntry(ctx context.Context, id string, input models.DiaryEntryInput) (models.DiaryEntry, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.DiaryEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ReplaceDiaryEntry(ctx, id, input)
}

func (v *DiaryValidationService) DeleteDiaryEntry(ctx context.Context, id string) error {
	return v.inner.DeleteDiaryEntry(ctx, id)
}

func (v *DiaryValidationService) Wrap(wrapper DiaryService) DiaryService {
	v.inner = wrapper
	return v
}
