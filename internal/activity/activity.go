package activity

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jenn-182/Pixel-Pages-sub000/internal/stats"
)

// NoteEntry is a locally persisted note record.
type NoteEntry struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time `gorm:"index"`

	NoteID  string `gorm:"uniqueIndex"`
	Title   string
	Content string `gorm:"type:text"`
	Tags    string // comma-separated
	Color   string
	WroteAt time.Time `gorm:"index"`
}

// TaskEntry is a locally persisted task record.
type TaskEntry struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time `gorm:"index"`

	TaskID      string `gorm:"uniqueIndex"`
	Title       string
	Completed   bool
	CompletedAt time.Time
	AddedAt     time.Time `gorm:"index"`
}

// SessionEntry is a locally persisted focus session record.
type SessionEntry struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time `gorm:"index"`

	SessionID string `gorm:"uniqueIndex"`
	Category  string
	Minutes   int
	StartedAt time.Time `gorm:"index"`
}

// Manager stores raw activity records so the engine can aggregate
// statistics without the remote store being reachable.
type Manager struct {
	db *gorm.DB
}

// NewManager runs migrations and returns an activity manager.
func NewManager(db *gorm.DB) (*Manager, error) {
	if err := db.AutoMigrate(&NoteEntry{}, &TaskEntry{}, &SessionEntry{}); err != nil {
		return nil, fmt.Errorf("migrating activity tables: %w", err)
	}
	return &Manager{db: db}, nil
}

// Close closes the underlying database connection.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// RecordNote upserts one note record keyed by its note id.
func (m *Manager) RecordNote(note stats.Note) error {
	entry := NoteEntry{
		NoteID:  note.ID,
		Title:   note.Title,
		Content: note.Content,
		Tags:    strings.Join(note.Tags, ","),
		Color:   note.Color,
		WroteAt: note.CreatedAt,
	}
	return m.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "note_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "content", "tags", "color", "wrote_at", "updated_at"}),
	}).Create(&entry).Error
}

// RecordTask upserts one task record keyed by its task id.
func (m *Manager) RecordTask(task stats.Task) error {
	entry := TaskEntry{
		TaskID:      task.ID,
		Title:       task.Title,
		Completed:   task.Completed,
		CompletedAt: task.CompletedAt,
		AddedAt:     task.CreatedAt,
	}
	return m.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "task_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "completed", "completed_at", "added_at", "updated_at"}),
	}).Create(&entry).Error
}

// RecordSession upserts one focus session record keyed by its session id.
func (m *Manager) RecordSession(session stats.FocusSession) error {
	entry := SessionEntry{
		SessionID: session.ID,
		Category:  session.Category,
		Minutes:   session.Minutes,
		StartedAt: session.StartedAt,
	}
	return m.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"category", "minutes", "started_at", "updated_at"}),
	}).Create(&entry).Error
}

// ActivityLog loads all stored records as the aggregator's input shape.
func (m *Manager) ActivityLog() (stats.ActivityLog, error) {
	var log stats.ActivityLog

	var notes []NoteEntry
	if err := m.db.Order("wrote_at asc").Find(&notes).Error; err != nil {
		return log, fmt.Errorf("loading notes: %w", err)
	}
	for _, entry := range notes {
		log.Notes = append(log.Notes, stats.Note{
			ID:        entry.NoteID,
			Title:     entry.Title,
			Content:   entry.Content,
			Tags:      splitTags(entry.Tags),
			Color:     entry.Color,
			CreatedAt: entry.WroteAt,
		})
	}

	var tasks []TaskEntry
	if err := m.db.Order("added_at asc").Find(&tasks).Error; err != nil {
		return log, fmt.Errorf("loading tasks: %w", err)
	}
	for _, entry := range tasks {
		log.Tasks = append(log.Tasks, stats.Task{
			ID:          entry.TaskID,
			Title:       entry.Title,
			Completed:   entry.Completed,
			CreatedAt:   entry.AddedAt,
			CompletedAt: entry.CompletedAt,
		})
	}

	var sessions []SessionEntry
	if err := m.db.Order("started_at asc").Find(&sessions).Error; err != nil {
		return log, fmt.Errorf("loading focus sessions: %w", err)
	}
	for _, entry := range sessions {
		log.Sessions = append(log.Sessions, stats.FocusSession{
			ID:        entry.SessionID,
			Category:  entry.Category,
			Minutes:   entry.Minutes,
			StartedAt: entry.StartedAt,
		})
	}

	return log, nil
}

// ReplaceAll replaces the stored activity with a remote-supplied log.
func (m *Manager) ReplaceAll(log stats.ActivityLog) error {
	for _, table := range []string{"note_entries", "task_entries", "session_entries"} {
		if err := m.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	for _, note := range log.Notes {
		if err := m.RecordNote(note); err != nil {
			return err
		}
	}
	for _, task := range log.Tasks {
		if err := m.RecordTask(task); err != nil {
			return err
		}
	}
	for _, session := range log.Sessions {
		if err := m.RecordSession(session); err != nil {
			return err
		}
	}
	return nil
}

func splitTags(tags string) []string {
	if tags == "" {
		return nil
	}
	return strings.Split(tags, ",")
}
