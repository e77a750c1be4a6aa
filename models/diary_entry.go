// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DiaryDateLayout is the short calendar-date form accepted for DiaryEntry.Date
// in addition to RFC 3339 timestamps.
const DiaryDateLayout = time.DateOnly

// DiaryEntry is a single travel-diary record.
// Entries form one global collection; they are not owned by a user.
type DiaryEntry struct {
	// ID is the system-generated identifier (UUIDv7) assigned at creation.
	ID string `json:"id"`

	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`

	// Photos is an ordered list of photo URLs. Never nil once persisted.
	Photos Photos `json:"photos"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the DiaryEntry model.
func (e DiaryEntry) TableName() string {
	return "diary_entries"
}

// DiaryEntryInput is the request body accepted by the create and replace
// endpoints. Only presence of the required fields is checked.
type DiaryEntryInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Date        string   `json:"date" validate:"required,diarydate"`
	Location    string   `json:"location" validate:"required"`
	Photos      []string `json:"photos"`
}

// ToDiaryEntry converts validated input into a DiaryEntry with the given id.
// The input must have passed validation; an unparsable date is reported as an error.
func (in DiaryEntryInput) ToDiaryEntry(id string) (DiaryEntry, error) {
	date, err := ParseDiaryDate(in.Date)
	if err != nil {
		return DiaryEntry{}, err
	}

	photos := make(Photos, 0, len(in.Photos))
	photos = append(photos, in.Photos...)

	return DiaryEntry{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Date:        date,
		Location:    in.Location,
		Photos:      photos,
	}, nil
}

// ParseDiaryDate parses either an RFC 3339 timestamp or a YYYY-MM-DD date.
// Plain dates are interpreted as midnight UTC.
func ParseDiaryDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}

	t, err := time.Parse(DiaryDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid diary date %q: %w", value, err)
	}

	return t.UTC(), nil
}

// Photos is an ordered list of photo URLs stored as a JSONB array.
type Photos []string

// MarshalJSON renders a nil list as an empty JSON array.
func (p Photos) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(p))
}

// Value implements [driver.Valuer].
func (p Photos) Value() (driver.Value, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(p))
}

// Scan implements [sql.Scanner] for JSONB columns.
func (p *Photos) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*p = Photos{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported type for photos column")
	}

	photos := make([]string, 0)
	if err := json.Unmarshal(raw, &photos); err != nil {
		return fmt.Errorf("error decoding photos column: %w", err)
	}
	if photos == nil {
		photos = []string{}
	}

	*p = photos
	return nil
}
