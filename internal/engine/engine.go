package engine

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jenn-182/Pixel-Pages-sub000/internal/catalog"
	"github.com/jenn-182/Pixel-Pages-sub000/internal/evaluate"
	"github.com/jenn-182/Pixel-Pages-sub000/internal/ledger"
	"github.com/jenn-182/Pixel-Pages-sub000/internal/notify"
	"github.com/jenn-182/Pixel-Pages-sub000/internal/reconcile"
	"github.com/jenn-182/Pixel-Pages-sub000/internal/stats"
)

// Service is the achievement progression engine for one user session.
// It owns the in-memory ledger, runs evaluation passes, and publishes
// unlock events. All state is session-scoped; passes are serialized and
// never interleave.
type Service struct {
	mu sync.Mutex

	db         *gorm.DB
	catalog    *catalog.Catalog
	ledger     *ledger.Ledger
	store      *ledger.Store
	adapter    *reconcile.Adapter
	dispatcher *notify.Dispatcher
	evaluator  *evaluate.Evaluator
	profile    *PlayerProfile
	logger     *zap.Logger
	now        func() time.Time
}

// ProgressEntry pairs a locked achievement with its current progress,
// for "in progress" display.
type ProgressEntry struct {
	Definition catalog.AchievementDefinition
	Progress   int // 0-100
}

// New constructs the engine service. The adapter may be nil, in which
// case Load always uses the local ledger.
func New(
	db *gorm.DB,
	cat *catalog.Catalog,
	store *ledger.Store,
	adapter *reconcile.Adapter,
	dispatcher *notify.Dispatcher,
	username string,
	logger *zap.Logger,
) (*Service, error) {
	if err := db.AutoMigrate(&PlayerProfile{}); err != nil {
		return nil, fmt.Errorf("migrating player profile: %w", err)
	}

	profile, err := loadOrCreateProfile(db, username)
	if err != nil {
		return nil, err
	}

	return &Service{
		db:         db,
		catalog:    cat,
		ledger:     ledger.New(),
		store:      store,
		adapter:    adapter,
		dispatcher: dispatcher,
		evaluator:  evaluate.New(logger),
		profile:    profile,
		logger:     logger,
		now:        time.Now,
	}, nil
}

// SetNow overrides the clock, for tests.
func (s *Service) SetNow(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Load populates the in-memory ledger at session start, reconciling
// remote and local state. It never fails; the worst case is an empty
// ledger.
func (s *Service) Load(ctx context.Context, playerID string) reconcile.Source {
	s.mu.Lock()
	defer s.mu.Unlock()

	var source reconcile.Source
	if s.adapter != nil {
		s.ledger, source = s.adapter.Load(ctx, playerID)
	} else {
		l, err := s.store.Load()
		if err != nil {
			s.logger.Warn("local ledger unreadable, starting empty", zap.Error(err))
			l = ledger.New()
			source = reconcile.SourceEmpty
		} else if l.Len() == 0 {
			source = reconcile.SourceEmpty
		} else {
			source = reconcile.SourceLocal
		}
		s.ledger = l
	}

	s.logger.Info("achievement ledger loaded",
		zap.String("source", string(source)),
		zap.Int("unlocked", s.ledger.UnlockedCount()))

	s.dispatcher.EmitUpdated()
	return source
}

// Recalculate runs one full evaluation pass over the given activity:
// aggregate stats, evaluate every locked achievement, unlock newly
// satisfied ones, persist, and publish events. It returns the newly
// unlocked definitions in catalog order.
func (s *Service) Recalculate(activityLog stats.ActivityLog) ([]catalog.AchievementDefinition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	userStats := stats.Aggregate(activityLog, now)

	evalCtx := evaluate.Context{
		Stats:       userStats,
		Ledger:      s.ledger,
		Now:         now,
		CatalogSize: s.catalog.Size(),
	}

	var newlyUnlocked []catalog.AchievementDefinition
	for _, def := range s.catalog.AllDefinitions() {
		if s.ledger.IsUnlocked(def.ID) {
			continue
		}

		result := s.evaluator.Evaluate(def.Requirement, evalCtx)
		if result.Satisfied {
			if s.ledger.Unlock(def.ID, now) {
				newlyUnlocked = append(newlyUnlocked, def)
				s.logger.Info("achievement unlocked",
					zap.String("id", def.ID),
					zap.String("tier", string(def.Tier)))
				s.dispatcher.EmitUnlocked(def, now)
			}
		} else {
			s.ledger.RecordProgress(def.ID, result.Progress)
		}
	}

	if err := s.store.Save(s.ledger); err != nil {
		return newlyUnlocked, fmt.Errorf("persisting ledger: %w", err)
	}

	s.applyProgression(newlyUnlocked, userStats, now)
	s.dispatcher.EmitUpdated()

	return newlyUnlocked, nil
}

// applyProgression awards XP for new unlocks and refreshes the player
// profile's level, title, and streak fields.
func (s *Service) applyProgression(unlocked []catalog.AchievementDefinition, userStats *stats.UserStats, now time.Time) {
	oldTotalXP := s.profile.TotalXP
	for _, def := range unlocked {
		s.profile.TotalXP += def.XPReward
	}

	if levelUp := CheckLevelUp(oldTotalXP, s.profile.TotalXP); levelUp != nil {
		s.profile.Level = levelUp.NewLevel
		s.profile.Title = levelUp.NewTitle
		s.logger.Info("level up",
			zap.Int("level", levelUp.NewLevel),
			zap.String("title", levelUp.NewTitle))
	}

	s.profile.CurrentStreak = userStats.ActivityStreak
	if userStats.ActivityStreak > s.profile.LongestStreak {
		s.profile.LongestStreak = userStats.ActivityStreak
	}
	s.profile.LastActiveDate = sql.NullTime{Time: now, Valid: true}

	if err := s.db.Save(s.profile).Error; err != nil {
		s.logger.Warn("failed to persist player profile", zap.Error(err))
	}
}

// Profile returns the current player profile.
func (s *Service) Profile() *PlayerProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Ledger returns the in-memory ledger.
func (s *Service) Ledger() *ledger.Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger
}

// InProgress returns up to limit locked achievements ordered by progress
// descending, breaking ties by catalog order.
func (s *Service) InProgress(limit int) []ProgressEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []ProgressEntry
	for _, def := range s.catalog.AllDefinitions() {
		if s.ledger.IsUnlocked(def.ID) {
			continue
		}
		entries = append(entries, ProgressEntry{
			Definition: def,
			Progress:   s.ledger.Progress(def.ID),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Progress > entries[j].Progress
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
