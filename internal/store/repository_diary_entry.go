// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-travel-diary/internal/logger"
	"github.com/MKhiriev/go-travel-diary/models"
)

// diaryEntryRepository is the PostgreSQL-backed implementation of
// [DiaryEntryRepository] over the "diary_entries" table.
//
// Every method obtains a context-scoped logger via [logger.FromContext] so that
// database failures are traced with the request's trace id.
type diaryEntryRepository struct {
	*DB
	logger *logger.Logger
}

// NewDiaryEntryRepository constructs a [DiaryEntryRepository] backed by db.
func NewDiaryEntryRepository(db *DB, logger *logger.Logger) DiaryEntryRepository {
	logger.Debug().Msg("creating diary entry repository")
	return &diaryEntryRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDiaryEntry(row rowScanner) (models.DiaryEntry, error) {
	var entry models.DiaryEntry
	err := row.Scan(
		&entry.ID,
		&entry.Title,
		&entry.Description,
		&entry.Date,
		&entry.Location,
		&entry.Photos,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if entry.Photos == nil {
		entry.Photos = models.Photos{}
	}
	entry.Date = entry.Date.UTC()
	return entry, err
}

// ListDiaryEntries returns every stored entry. The result is never nil.
func (d *diaryEntryRepository) ListDiaryEntries(ctx context.Context) ([]models.DiaryEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDiaryEntriesQuery()
	if err != nil {
		log.Err(err).Str("func", "diaryEntryRepository.ListDiaryEntries").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "diaryEntryRepository.ListDiaryEntries").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.DiaryEntry, 0)
	for rows.Next() {
		entry, scanErr := scanDiaryEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "diaryEntryRepository.ListDiaryEntries").
				Int("scanned", len(entries)).
				Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "diaryEntryRepository.ListDiaryEntries").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// GetDiaryEntry returns the entry with the given id.
func (d *diaryEntryRepository) GetDiaryEntry(ctx context.Context, id string) (models.DiaryEntry, error) {
	query, args, err := buildGetDiaryEntryQuery(id)
	if err != nil {
		return models.DiaryEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return d.queryOne(ctx, "diaryEntryRepository.GetDiaryEntry", id, query, args)
}

// CreateDiaryEntry inserts entry whose ID is already assigned and returns the
// stored representation.
func (d *diaryEntryRepository) CreateDiaryEntry(ctx context.Context, entry models.DiaryEntry) (models.DiaryEntry, error) {
	query, args, err := buildCreateDiaryEntryQuery(entry)
	if err != nil {
		return models.DiaryEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return d.queryOne(ctx, "diaryEntryRepository.CreateDiaryEntry", entry.ID, query, args)
}

// ReplaceDiaryEntry overwrites all user fields of the entry identified by
// entry.ID.
func (d *diaryEntryRepository) ReplaceDiaryEntry(ctx context.Context, entry models.DiaryEntry) (models.DiaryEntry, error) {
	query, args, err := buildReplaceDiaryEntryQuery(entry)
	if err != nil {
		return models.DiaryEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return d.queryOne(ctx, "diaryEntryRepository.ReplaceDiaryEntry", entry.ID, query, args)
}

// DeleteDiaryEntry removes the entry. Zero affected rows means it did not
// exist.
func (d *diaryEntryRepository) DeleteDiaryEntry(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteDiaryEntryQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := d.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "diaryEntryRepository.DeleteDiaryEntry").Str("id", id).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrDiaryEntryNotFound
	}

	return nil
}

func (d *diaryEntryRepository) queryOne(ctx context.Context, funcName, id, query string, args []any) (models.DiaryEntry, error) {
	log := logger.FromContext(ctx)

	entry, err := scanDiaryEntry(d.DB.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.DiaryEntry{}, ErrDiaryEntryNotFound
	case err != nil:
		log.Err(err).Str("func", funcName).Str("id", id).Msg("failed to query diary entry")
		return models.DiaryEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}
