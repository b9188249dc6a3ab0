package ledger

import (
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Row is the persisted representation of an UnlockRecord.
type Row struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time `gorm:"index"`

	AchievementID string `gorm:"uniqueIndex"`
	UnlockedAt    sql.NullTime
	Progress      int `gorm:"default:0"`
}

// TableName keeps the table name stable regardless of struct renames.
func (Row) TableName() string {
	return "unlock_records"
}

// Store persists ledger snapshots to the local database.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewStore runs migrations and returns a store bound to the given database.
func NewStore(db *gorm.DB, logger *zap.Logger) (*Store, error) {
	if err := db.AutoMigrate(&Row{}); err != nil {
		return nil, fmt.Errorf("migrating unlock records: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

// Load reads the persisted ledger. Rows with blank achievement ids are
// dropped silently; a corrupt individual row never fails the whole load.
func (s *Store) Load() (*Ledger, error) {
	var rows []Row
	if err := s.db.Order("achievement_id asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("loading unlock records: %w", err)
	}

	l := New()
	dropped := 0
	for _, row := range rows {
		if row.AchievementID == "" {
			dropped++
			continue
		}
		if row.UnlockedAt.Valid {
			l.Unlock(row.AchievementID, row.UnlockedAt.Time)
		} else {
			l.RecordProgress(row.AchievementID, float64(row.Progress)/100)
		}
	}
	if dropped > 0 {
		s.logger.Warn("dropped malformed unlock records on load", zap.Int("count", dropped))
	}

	return l, nil
}

// Save upserts the full ledger snapshot. Called after every mutation pass.
func (s *Store) Save(l *Ledger) error {
	snapshot := l.Snapshot()
	for _, record := range snapshot {
		row := Row{
			AchievementID: record.AchievementID,
			Progress:      record.Progress,
		}
		if record.Unlocked() {
			row.UnlockedAt = sql.NullTime{Time: record.UnlockedAt, Valid: true}
		}

		err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "achievement_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"unlocked_at", "progress", "updated_at"}),
		}).Create(&row).Error
		if err != nil {
			return fmt.Errorf("saving unlock record %s: %w", record.AchievementID, err)
		}
	}
	return nil
}

// Reset removes all persisted unlock records.
func (s *Store) Reset() error {
	return s.db.Exec("DELETE FROM unlock_records").Error
}
