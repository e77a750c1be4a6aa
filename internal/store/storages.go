package store

import (
	"github.com/MKhiriev/go-travel-diary/internal/logger"
)

// Storages bundles every repository over one shared [DB] handle.
type Storages struct {
	UserRepository       UserRepository
	DiaryEntryRepository DiaryEntryRepository

	db *DB
}

// NewStorages constructs the repositories over db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		DiaryEntryRepository: NewDiaryEntryRepository(db, log),
		db:                   db,
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil || s.db.DB == nil {
		return nil
	}
	return s.db.Close()
}
