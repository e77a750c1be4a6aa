package utils

import "github.com/google/uuid"

// EntryIDGenerator assigns time-ordered ids to new diary entries.
type EntryIDGenerator struct{}

func NewEntryIDGenerator() *EntryIDGenerator {
	return &EntryIDGenerator{}
}

// Generate returns a UUIDv7 string. If the clock source fails it falls back
// to a random v4 id, which still satisfies CanonicalUUID.
func (g *EntryIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// CanonicalUUID reports id in lowercase hyphenated form. Braced, urn and
// uppercase spellings are accepted; anything else yields ok == false.
func CanonicalUUID(id string) (canonical string, ok bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}

	return parsed.String(), true
}
