// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-travel-diary/internal/logger"
	"github.com/MKhiriev/go-travel-diary/internal/store"
	"github.com/MKhiriev/go-travel-diary/internal/utils"
	"github.com/MKhiriev/go-travel-diary/models"
)

type diaryService struct {
	diaryEntryRepository store.DiaryEntryRepository
	idGenerator          IDGenerator

	logger *logger.Logger
}

func NewDiaryService(diaryEntryRepository store.DiaryEntryRepository, logger *logger.Logger) DiaryService {
	return &diaryService{
		diaryEntryRepository: diaryEntryRepository,
		idGenerator:          utils.NewEntryIDGenerator(),
		logger:               logger,
	}
}

func (d *diaryService) ListDiaryEntries(ctx context.Context) ([]models.DiaryEntry, error) {
	return d.diaryEntryRepository.ListDiaryEntries(ctx)
}

func (d *diaryService) GetDiaryEntry(ctx context.Context, id string) (models.DiaryEntry, error) {
	entryID, err := canonicalEntryID(id)
	if err != nil {
		return models.DiaryEntry{}, err
	}

	return d.diaryEntryRepository.GetDiaryEntry(ctx, entryID)
}

func (d *diaryService) CreateDiaryEntry(ctx context.Context, input models.DiaryEntryInput) (models.DiaryEntry, error) {
	entry, err := input.ToDiaryEntry(d.idGenerator.Generate())
	if err != nil {
		return models.DiaryEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := d.diaryEntryRepository.CreateDiaryEntry(ctx, entry)
	if err != nil {
		return models.DiaryEntry{}, err
	}

	logger.FromContext(ctx).Debug().Str("id", created.ID).Msg("diary entry created")
	return created, nil
}

// ReplaceDiaryEntry overwrites every user-supplied field; omitted photos
// become an empty list.
func (d *diaryService) ReplaceDiaryEntry(ctx context.Context, id string, input models.DiaryEntryInput) (models.DiaryEntry, error) {
	entryID, err := canonicalEntryID(id)
	if err != nil {
		return models.DiaryEntry{}, err
	}

	entry, err := input.ToDiaryEntry(entryID)
	if err != nil {
		return models.DiaryEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return d.diaryEntryRepository.ReplaceDiaryEntry(ctx, entry)
}

func (d *diaryService) DeleteDiaryEntry(ctx context.Context, id string) error {
	entryID, err := canonicalEntryID(id)
	if err != nil {
		return err
	}

	return d.diaryEntryRepository.DeleteDiaryEntry(ctx, entryID)
}

// canonicalEntryID normalises id to the lowercase hyphenated UUID form.
// Anything that does not parse cannot name an entry.
func canonicalEntryID(id string) (string, error) {
	canonical, ok := utils.CanonicalUUID(id)
	if !ok {
		return "", fmt.Errorf("%w: %q is not a valid id", store.ErrDiaryEntryNotFound, id)
	}

	return canonical, nil
}
