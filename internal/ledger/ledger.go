package ledger

import (
	"sort"
	"time"
)

// UnlockRecord is the durable state for one achievement. Once UnlockedAt
// is set it never changes; Progress reflects current best-known progress
// for locked records only.
type UnlockRecord struct {
	AchievementID string
	UnlockedAt    time.Time // zero while locked
	Progress      int       // 0-100
}

// Unlocked reports whether the record represents an unlocked achievement.
func (r UnlockRecord) Unlocked() bool {
	return !r.UnlockedAt.IsZero()
}

// Ledger is the in-memory set of unlock records for one user session,
// keyed by achievement id.
type Ledger struct {
	records map[string]UnlockRecord
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{records: make(map[string]UnlockRecord)}
}

// IsUnlocked reports whether the given achievement has been unlocked.
func (l *Ledger) IsUnlocked(id string) bool {
	return l.records[id].Unlocked()
}

// Unlock marks an achievement as unlocked at the given time. It returns
// false and performs no mutation if the achievement was already
// unlocked, making repeated calls idempotent.
func (l *Ledger) Unlock(id string, at time.Time) bool {
	if id == "" {
		return false
	}
	record := l.records[id]
	if record.Unlocked() {
		return false
	}
	record.AchievementID = id
	record.UnlockedAt = at
	record.Progress = 100
	l.records[id] = record
	return true
}

// RecordProgress updates the progress of a still-locked achievement from
// a fraction in [0,1]. A no-op for unlocked achievements: once unlocked,
// a record never transitions back.
func (l *Ledger) RecordProgress(id string, fraction float64) {
	if id == "" {
		return
	}
	record := l.records[id]
	if record.Unlocked() {
		return
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	record.AchievementID = id
	record.Progress = int(fraction * 100)
	l.records[id] = record
}

// Progress returns the stored progress (0-100) for the given achievement.
func (l *Ledger) Progress(id string) int {
	return l.records[id].Progress
}

// UnlockedCount returns the number of unlocked achievements.
func (l *Ledger) UnlockedCount() int {
	count := 0
	for _, record := range l.records {
		if record.Unlocked() {
			count++
		}
	}
	return count
}

// CompletionPercent returns the percentage of the catalog unlocked.
func (l *Ledger) CompletionPercent(catalogSize int) float64 {
	if catalogSize <= 0 {
		return 0
	}
	return float64(l.UnlockedCount()) / float64(catalogSize) * 100
}

// Snapshot returns all records sorted by achievement id for stable
// persistence and display.
func (l *Ledger) Snapshot() []UnlockRecord {
	out := make([]UnlockRecord, 0, len(l.records))
	for _, record := range l.records {
		out = append(out, record)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AchievementID < out[j].AchievementID
	})
	return out
}

// Len returns the number of records, locked or not.
func (l *Ledger) Len() int {
	return len(l.records)
}
