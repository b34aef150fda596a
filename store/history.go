// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-translate/models"
)

// HistoryCapacity is the number of records kept
const HistoryCapacity = 20

// History is the session's list of completed translations, newest first.
// It lives in memory only and is not safe for concurrent use.
type History struct {
	records []models.HistoryRecord
	now     func() time.Time
}

func NewHistory() *History {
	return &History{now: time.Now}
}

// Add inserts rec at the front, evicting the oldest record past capacity.
// Missing ids and timestamps are filled in.
func (h *History) Add(rec models.HistoryRecord) models.HistoryRecord {
	if rec.ID == "" {
		rec.ID = newRecordID()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = h.now()
	}

	h.records = append([]models.HistoryRecord{rec}, h.records...)
	if len(h.records) > HistoryCapacity {
		h.records = h.records[:HistoryCapacity]
	}
	return rec
}

// Remove deletes the record with id and reports whether it existed
func (h *History) Remove(id string) bool {
	for i, rec := range h.records {
		if rec.ID == id {
			h.records = append(h.records[:i], h.records[i+1:]...)
			return true
		}
	}
	return false
}

func (h *History) Clear() {
	h.records = nil
}

func (h *History) Len() int {
	return len(h.records)
}

// Records returns a copy of the history, newest first
func (h *History) Records() []models.HistoryRecord {
	out := make([]models.HistoryRecord, len(h.records))
	copy(out, h.records)
	return out
}

// newRecordID returns a time-ordered id, falling back to a random one
func newRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
