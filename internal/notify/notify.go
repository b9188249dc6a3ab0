package notify

import (
	"time"

	"go.uber.org/zap"

	"github.com/jenn-182/Pixel-Pages-sub000/internal/catalog"
)

// UnlockEvent is published once per newly unlocked achievement.
type UnlockEvent struct {
	Achievement catalog.AchievementDefinition
	Tier        catalog.Tier
	UnlockedAt  time.Time
}

// UnlockHandler receives unlock events.
type UnlockHandler func(UnlockEvent)

// Dispatcher publishes achievement events to decoupled subscribers. All
// emission is synchronous; subscribers are best-effort and a panicking
// subscriber never blocks the others or the unlock itself.
type Dispatcher struct {
	logger *zap.Logger

	nextID         int
	unlockHandlers map[int]UnlockHandler
	updateHandlers map[int]func()
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher(logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		logger:         logger,
		unlockHandlers: make(map[int]UnlockHandler),
		updateHandlers: make(map[int]func()),
	}
}

// Subscribe registers a handler for unlock events and returns an
// unsubscribe function.
func (d *Dispatcher) Subscribe(handler UnlockHandler) func() {
	id := d.nextID
	d.nextID++
	d.unlockHandlers[id] = handler
	return func() {
		delete(d.unlockHandlers, id)
	}
}

// SubscribeUpdated registers a handler for the broad invalidation
// signal. The signal carries no payload and may fire more than once for
// the same underlying change; subscribers treat it as a re-fetch hint.
func (d *Dispatcher) SubscribeUpdated(handler func()) func() {
	id := d.nextID
	d.nextID++
	d.updateHandlers[id] = handler
	return func() {
		delete(d.updateHandlers, id)
	}
}

// EmitUnlocked publishes one unlock event to every subscriber.
func (d *Dispatcher) EmitUnlocked(def catalog.AchievementDefinition, unlockedAt time.Time) {
	event := UnlockEvent{
		Achievement: def,
		Tier:        def.Tier,
		UnlockedAt:  unlockedAt,
	}
	for _, handler := range d.unlockHandlers {
		d.safeCall(func() { handler(event) }, def.ID)
	}
}

// EmitUpdated publishes the invalidation signal to every subscriber.
func (d *Dispatcher) EmitUpdated() {
	for _, handler := range d.updateHandlers {
		d.safeCall(handler, "")
	}
}

func (d *Dispatcher) safeCall(fn func(), achievementID string) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("achievement subscriber panicked",
				zap.String("achievement", achievementID),
				zap.Any("panic", r))
		}
	}()
	fn()
}
