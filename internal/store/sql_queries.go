package store

import (
	"strings"

	"github.com/MKhiriev/go-travel-diary/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, username, password_hash, created_at;`

	findUserByUsername = `SELECT user_id, username, password_hash, created_at
    FROM users
    WHERE username = $1;`
)

// psql renders squirrel builders with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var diaryEntryColumns = []string{
	"id",
	"title",
	"description",
	"date",
	"location",
	"photos",
	"created_at",
	"updated_at",
}

func diaryEntryTable() string {
	return models.DiaryEntry{}.TableName()
}

func returningDiaryEntry() string {
	return "RETURNING " + strings.Join(diaryEntryColumns, ", ")
}

// buildListDiaryEntriesQuery selects every entry in creation order.
func buildListDiaryEntriesQuery() (string, []any, error) {
	return psql.
		Select(diaryEntryColumns...).
		From(diaryEntryTable()).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
}

func buildGetDiaryEntryQuery(id string) (string, []any, error) {
	return psql.
		Select(diaryEntryColumns...).
		From(diaryEntryTable()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildCreateDiaryEntryQuery(entry models.DiaryEntry) (string, []any, error) {
	return psql.
		Insert(diaryEntryTable()).
		Columns("id", "title", "description", "date", "location", "photos").
		Values(entry.ID, entry.Title, entry.Description, entry.Date, entry.Location, entry.Photos).
		Suffix(returningDiaryEntry()).
		ToSql()
}

// buildReplaceDiaryEntryQuery overwrites every user-supplied field of the
// entry; created_at is preserved.
func buildReplaceDiaryEntryQuery(entry models.DiaryEntry) (string, []any, error) {
	return psql.
		Update(diaryEntryTable()).
		Set("title", entry.Title).
		Set("description", entry.Description).
		Set("date", entry.Date).
		Set("location", entry.Location).
		Set("photos", entry.Photos).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": entry.ID}).
		Suffix(returningDiaryEntry()).
		ToSql()
}

func buildDeleteDiaryEntryQuery(id string) (string, []any, error) {
	return psql.
		Delete(diaryEntryTable()).
		Where(sq.Eq{"id": id}).
		ToSql()
}
