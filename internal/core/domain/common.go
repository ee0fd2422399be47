package domain

import "time"

// AuditFields holds standard audit information for entities owned by the
// ledger core. User references are UUID strings issued by the caller.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// NotesSeparator joins successive note fragments on a record. Notes are
// append-only: new fragments never overwrite what was already recorded.
const NotesSeparator = " | "

// AppendNotes appends a fragment to existing notes using NotesSeparator.
// Empty fragments leave the existing notes untouched.
func AppendNotes(existing, fragment string) string {
	if fragment == "" {
		return existing
	}
	if existing == "" {
		return fragment
	}
	return existing + NotesSeparator + fragment
}
