package stats

import (
	"strings"
	"time"

	"github.com/jenn-182/Pixel-Pages-sub000/internal/catalog"
)

// Note is a raw note activity record.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

// Task is a raw task activity record.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	CompletedAt time.Time `json:"completedAt"`
}

// FocusSession is a raw focus session activity record.
type FocusSession struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Minutes   int       `json:"minutes"`
	StartedAt time.Time `json:"startedAt"`
}

// ActivityLog bundles all raw activity for one user.
type ActivityLog struct {
	Notes    []Note
	Tasks    []Task
	Sessions []FocusSession
}

// UserStats is the derived aggregate snapshot used to evaluate
// requirements. Produced fresh on each evaluation pass, never persisted.
type UserStats struct {
	TotalNotes   int
	TotalWords   int
	TotalTags    int
	UniqueTags   int
	MaxNoteWords int
	MaxNoteTags  int

	TotalTasks     int
	CompletedTasks int

	TotalSessions     int
	TotalFocusMinutes int
	MaxSessionMinutes int

	NoteStreak     int
	TaskStreak     int
	FocusStreak    int
	ActivityStreak int

	// MinutesByCategory sums focus minutes per session category.
	MinutesByCategory map[string]int
	// SessionsByMinutes counts sessions per exact duration in minutes.
	SessionsByMinutes map[int]int
}

// Value returns the named scalar metric. The second return value is
// false for unknown metric names so callers can fail closed.
func (s *UserStats) Value(metric string) (int, bool) {
	switch metric {
	case catalog.MetricTotalNotes:
		return s.TotalNotes, true
	case catalog.MetricTotalWords:
		return s.TotalWords, true
	case catalog.MetricTotalTags:
		return s.TotalTags, true
	case catalog.MetricUniqueTags:
		return s.UniqueTags, true
	case catalog.MetricMaxNoteWords:
		return s.MaxNoteWords, true
	case catalog.MetricMaxNoteTags:
		return s.MaxNoteTags, true
	case catalog.MetricTotalTasks:
		return s.TotalTasks, true
	case catalog.MetricCompletedTasks:
		return s.CompletedTasks, true
	case catalog.MetricTotalSessions:
		return s.TotalSessions, true
	case catalog.MetricTotalFocusMinutes:
		return s.TotalFocusMinutes, true
	case catalog.MetricMaxSessionMinutes:
		return s.MaxSessionMinutes, true
	case catalog.MetricNoteStreak:
		return s.NoteStreak, true
	case catalog.MetricTaskStreak:
		return s.TaskStreak, true
	case catalog.MetricFocusStreak:
		return s.FocusStreak, true
	case catalog.MetricActivityStreak:
		return s.ActivityStreak, true
	}
	return 0, false
}

// Aggregate computes a UserStats snapshot from raw activity. A record
// with a missing timestamp is skipped for date-based metrics only; one
// bad record never aborts the whole pass.
func Aggregate(log ActivityLog, now time.Time) *UserStats {
	s := &UserStats{
		MinutesByCategory: make(map[string]int),
		SessionsByMinutes: make(map[int]int),
	}

	uniqueTags := make(map[string]bool)
	noteDays := make(map[string]bool)
	taskDays := make(map[string]bool)
	focusDays := make(map[string]bool)
	allDays := make(map[string]bool)

	for _, note := range log.Notes {
		s.TotalNotes++

		words := countWords(note.Content)
		s.TotalWords += words
		if words > s.MaxNoteWords {
			s.MaxNoteWords = words
		}

		s.TotalTags += len(note.Tags)
		if len(note.Tags) > s.MaxNoteTags {
			s.MaxNoteTags = len(note.Tags)
		}
		for _, tag := range note.Tags {
			if tag != "" {
				uniqueTags[strings.ToLower(tag)] = true
			}
		}

		if !note.CreatedAt.IsZero() {
			day := dayKey(note.CreatedAt)
			noteDays[day] = true
			allDays[day] = true
		}
	}
	s.UniqueTags = len(uniqueTags)

	for _, task := range log.Tasks {
		s.TotalTasks++
		if !task.Completed {
			continue
		}
		s.CompletedTasks++
		if !task.CompletedAt.IsZero() {
			day := dayKey(task.CompletedAt)
			taskDays[day] = true
			allDays[day] = true
		}
	}

	for _, session := range log.Sessions {
		if session.Minutes <= 0 {
			// malformed duration, skip for every session metric
			continue
		}
		s.TotalSessions++
		s.TotalFocusMinutes += session.Minutes
		if session.Minutes > s.MaxSessionMinutes {
			s.MaxSessionMinutes = session.Minutes
		}
		s.SessionsByMinutes[session.Minutes]++
		if session.Category != "" {
			s.MinutesByCategory[strings.ToLower(session.Category)] += session.Minutes
		}
		if !session.StartedAt.IsZero() {
			day := dayKey(session.StartedAt)
			focusDays[day] = true
			allDays[day] = true
		}
	}

	s.NoteStreak = Streak(noteDays, now)
	s.TaskStreak = Streak(taskDays, now)
	s.FocusStreak = Streak(focusDays, now)
	s.ActivityStreak = Streak(allDays, now)

	return s
}

// Streak counts the unbroken day-over-day run of activity anchored at
// today. A run whose most recent day is yesterday still counts; anything
// older yields 0.
func Streak(activeDays map[string]bool, now time.Time) int {
	if len(activeDays) == 0 {
		return 0
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	anchor := today
	if !activeDays[dayKey(anchor)] {
		anchor = today.AddDate(0, 0, -1)
		if !activeDays[dayKey(anchor)] {
			return 0
		}
	}

	streak := 0
	for d := anchor; activeDays[dayKey(d)]; d = d.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func countWords(content string) int {
	return len(strings.Fields(content))
}
