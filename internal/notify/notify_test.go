package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jenn-182/Pixel-Pages-sub000/internal/catalog"
)

func newTestDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	return NewDispatcher(logger)
}

func sampleDefinition() catalog.AchievementDefinition {
	return catalog.AchievementDefinition{
		ID:   "note_first",
		Name: "First Words",
		Tier: catalog.TierCommon,
	}
}

func TestEmitUnlockedDeliversToAllSubscribers(t *testing.T) {
	d := newTestDispatcher(t)

	var first, second []UnlockEvent
	d.Subscribe(func(e UnlockEvent) { first = append(first, e) })
	d.Subscribe(func(e UnlockEvent) { second = append(second, e) })

	at := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	d.EmitUnlocked(sampleDefinition(), at)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, "note_first", first[0].Achievement.ID)
	assert.Equal(t, catalog.TierCommon, first[0].Tier)
	assert.Equal(t, at, first[0].UnlockedAt)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	d := newTestDispatcher(t)

	count := 0
	unsubscribe := d.Subscribe(func(UnlockEvent) { count++ })

	d.EmitUnlocked(sampleDefinition(), time.Now())
	unsubscribe()
	d.EmitUnlocked(sampleDefinition(), time.Now())

	assert.Equal(t, 1, count)
}

func TestPanickingSubscriberDoesNotBlockOthers(t *testing.T) {
	d := newTestDispatcher(t)

	delivered := 0
	d.Subscribe(func(UnlockEvent) { panic("subscriber bug") })
	d.Subscribe(func(UnlockEvent) { delivered++ })

	assert.NotPanics(t, func() {
		d.EmitUnlocked(sampleDefinition(), time.Now())
	})
	assert.Equal(t, 1, delivered)
}

func TestEmitUpdatedSignal(t *testing.T) {
	d := newTestDispatcher(t)

	count := 0
	unsubscribe := d.SubscribeUpdated(func() { count++ })

	d.EmitUpdated()
	d.EmitUpdated()
	assert.Equal(t, 2, count)

	unsubscribe()
	d.EmitUpdated()
	assert.Equal(t, 2, count)
}

func TestEmitWithNoSubscribersIsSafe(t *testing.T) {
	d := newTestDispatcher(t)

	assert.NotPanics(t, func() {
		d.EmitUnlocked(sampleDefinition(), time.Now())
		d.EmitUpdated()
	})
}
