package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-travel-diary/internal/mock"
	"github.com/MKhiriev/go-travel-diary/internal/validators"
	"github.com/MKhiriev/go-travel-diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// mockInnerService is a func-field DiaryService used as the wrapped service.
type mockInnerService struct {
	listFn    func(ctx context.Context) ([]models.DiaryEntry, error)
	getFn     func(ctx context.Context, id string) (models.DiaryEntry, error)
	createFn  func(ctx context.Context, in models.DiaryEntryInput) (models.DiaryEntry, error)
	replaceFn func(ctx context.Context, id string, in models.DiaryEntryInput) (models.DiaryEntry, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (m *mockInnerService) ListDiaryEntries(ctx context.Context) ([]models.DiaryEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}
func (m *mockInnerService) GetDiaryEntry(ctx context.Context, id string) (models.DiaryEntry, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.DiaryEntry{}, nil
}
func (m *mockInnerService) CreateDiaryEntry(ctx context.Context, in models.DiaryEntryInput) (models.DiaryEntry, error) {
	if m.createFn != nil {
		return m.createFn(ctx, in)
	}
	return models.DiaryEntry{}, nil
}
func (m *mockInnerService) ReplaceDiaryEntry(ctx context.Context, id string, in models.DiaryEntryInput) (models.DiaryEntry, error) {
	if m.replaceFn != nil {
		return m.replaceFn(ctx, id, in)
	}
	return models.DiaryEntry{}, nil
}
func (m *mockInnerService) DeleteDiaryEntry(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func newValidationSvc(inner DiaryService) DiaryService {
	return NewDiaryValidationService().Wrap(inner)
}

func TestDiaryValidationService_Create_RejectsIncompleteInput(t *testing.T) {
	called := false
	svc := newValidationSvc(&mockInnerService{
		createFn: func(context.Context, models.DiaryEntryInput) (models.DiaryEntry, error) {
			called = true
			return models.DiaryEntry{}, nil
		},
	})

	in := kyotoInput()
	in.Location = ""

	_, err := svc.CreateDiaryEntry(context.Background(), in)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrRequiredFieldMissing)
	assert.Contains(t, err.Error(), "location")
	assert.False(t, called, "inner service must not be reached")
}

func TestDiaryValidationService_Create_PassesValidInput(t *testing.T) {
	svc := newValidationSvc(&mockInnerService{
		createFn: func(_ context.Context, in models.DiaryEntryInput) (models.DiaryEntry, error) {
			return models.DiaryEntry{ID: testEntryID, Title: in.Title}, nil
		},
	})

	got, err := svc.CreateDiaryEntry(context.Background(), kyotoInput())
	require.NoError(t, err)
	assert.Equal(t, "Kyoto", got.Title)
}

func TestDiaryValidationService_Replace_RejectsBadDate(t *testing.T) {
	svc := newValidationSvc(&mockInnerService{})

	in := kyotoInput()
	in.Date = "02/04/2024"

	_, err := svc.ReplaceDiaryEntry(context.Background(), testEntryID, in)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidDate)
}

func TestDiaryValidationService_UsesInjectedValidator(t *testing.T) {
	ctrl := gomock.NewController(t)
	validator := mock.NewMockValidator(ctrl)

	wrapper := NewDiaryValidationService().(*DiaryValidationService)
	wrapper.validator = validator
	svc := wrapper.Wrap(&mockInnerService{})

	validator.EXPECT().Validate(gomock.Any(), kyotoInput()).Return(nil)

	_, err := svc.ReplaceDiaryEntry(context.Background(), testEntryID, kyotoInput())
	require.NoError(t, err)
}

func TestDiaryValidationService_PassThrough(t *testing.T) {
	var gotID, deletedID string
	svc := newValidationSvc(&mockInnerService{
		listFn: func(context.Context) ([]models.DiaryEntry, error) {
			return []models.DiaryEntry{{ID: "a"}}, nil
		},
		getFn: func(_ context.Context, id string) (models.DiaryEntry, error) {
			gotID = id
			return models.DiaryEntry{ID: id}, nil
		},
		deleteFn: func(_ context.Context, id string) error {
			deletedID = id
			return nil
		},
	})
	ctx := context.Background()

	list, err := svc.ListDiaryEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.GetDiaryEntry(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "x", gotID)

	require.NoError(t, svc.DeleteDiaryEntry(ctx, "y"))
	assert.Equal(t, "y", deletedID)
}
