package reconcile

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/jenn-182/Pixel-Pages-sub000/internal/ledger"
	"github.com/jenn-182/Pixel-Pages-sub000/internal/remote"
)

// Source identifies which candidate data source won reconciliation.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
	SourceEmpty  Source = "empty"
)

// Adapter decides, per load, whether the remote snapshot or the locally
// persisted ledger is the source of truth. The engine always gets a
// usable ledger back, possibly stale, never an error.
type Adapter struct {
	client *remote.Client // nil means offline-only
	store  *ledger.Store
	logger *zap.Logger
	now    func() time.Time

	generation atomic.Uint64
}

// NewAdapter returns an adapter. A nil client is valid and forces local
// loads.
func NewAdapter(client *remote.Client, store *ledger.Store, logger *zap.Logger) *Adapter {
	return &Adapter{
		client: client,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// SetNow overrides the clock, for tests.
func (a *Adapter) SetNow(now func() time.Time) {
	a.now = now
}

// Load populates a ledger for the session. Precedence: the remote
// snapshot wins only when it shows evidence of real state for this
// player (at least one unlocked achievement, or a non-zero aggregate
// stat); otherwise the local ledger; otherwise empty. An
// empty-but-reachable remote must not erase locally known progress. A
// load superseded by a newer one is discarded when it resolves.
func (a *Adapter) Load(ctx context.Context, playerID string) (*ledger.Ledger, Source) {
	token := a.generation.Add(1)

	if a.client == nil {
		return a.loadLocal()
	}

	achievements, err := a.client.PlayerAchievements(ctx, playerID)
	if err != nil {
		a.logger.Warn("remote achievements unavailable, falling back to local ledger",
			zap.String("player", playerID), zap.Error(err))
		return a.loadLocal()
	}

	if !a.hasRemoteEvidence(ctx, playerID, achievements) {
		a.logger.Info("remote snapshot has no player state, keeping local ledger",
			zap.String("player", playerID))
		return a.loadLocal()
	}

	l := a.buildFromRemote(achievements)

	if a.generation.Load() != token {
		a.logger.Info("remote load superseded by a newer request, discarding",
			zap.String("player", playerID))
		return a.loadLocal()
	}

	if err := a.store.Save(l); err != nil {
		a.logger.Warn("failed to persist remote snapshot locally", zap.Error(err))
	}

	return l, SourceRemote
}

func (a *Adapter) hasRemoteEvidence(ctx context.Context, playerID string, achievements []remote.PlayerAchievement) bool {
	for _, entry := range achievements {
		if entry.Completed {
			return true
		}
	}

	playerStats, err := a.client.Stats(ctx, playerID)
	if err != nil {
		a.logger.Debug("remote stats unavailable", zap.Error(err))
		return false
	}
	for _, value := range playerStats {
		if value > 0 {
			return true
		}
	}
	return false
}

func (a *Adapter) buildFromRemote(achievements []remote.PlayerAchievement) *ledger.Ledger {
	l := ledger.New()
	for _, entry := range achievements {
		if entry.ID == "" {
			continue
		}
		if entry.Completed {
			unlockedAt := a.now()
			if entry.UnlockedAt != nil {
				unlockedAt = *entry.UnlockedAt
			}
			l.Unlock(entry.ID, unlockedAt)
		} else if entry.Progress > 0 {
			l.RecordProgress(entry.ID, float64(entry.Progress)/100)
		}
	}
	return l
}

// CatalogDrift describes divergence between the remote catalog and the
// definitions this build was compiled with.
type CatalogDrift struct {
	RemoteOnly []string // served remotely, unknown to this build
	LocalOnly  []string // known to this build, no longer served remotely
}

// Empty reports whether the two catalogs agree.
func (d CatalogDrift) Empty() bool {
	return len(d.RemoteOnly) == 0 && len(d.LocalOnly) == 0
}

// CheckCatalog compares the remote catalog against the local achievement
// ids. Advisory only: the local catalog stays authoritative either way,
// and an unreachable remote reports no drift.
func (a *Adapter) CheckCatalog(ctx context.Context, localIDs []string) (CatalogDrift, error) {
	var drift CatalogDrift
	if a.client == nil {
		return drift, nil
	}

	entries, err := a.client.Catalog(ctx)
	if err != nil {
		return drift, err
	}

	remoteIDs := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if entry.ID != "" {
			remoteIDs[entry.ID] = true
		}
	}
	knownIDs := make(map[string]bool, len(localIDs))
	for _, id := range localIDs {
		knownIDs[id] = true
		if !remoteIDs[id] {
			drift.LocalOnly = append(drift.LocalOnly, id)
		}
	}
	for _, entry := range entries {
		if entry.ID != "" && !knownIDs[entry.ID] {
			drift.RemoteOnly = append(drift.RemoteOnly, entry.ID)
		}
	}

	if !drift.Empty() {
		a.logger.Warn("achievement catalog drift",
			zap.Strings("remote_only", drift.RemoteOnly),
			zap.Strings("local_only", drift.LocalOnly))
	}
	return drift, nil
}

func (a *Adapter) loadLocal() (*ledger.Ledger, Source) {
	l, err := a.store.Load()
	if err != nil {
		a.logger.Warn("local ledger unreadable, starting empty", zap.Error(err))
		return ledger.New(), SourceEmpty
	}
	if l.Len() == 0 {
		return l, SourceEmpty
	}
	return l, SourceLocal
}
