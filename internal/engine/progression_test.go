package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXPForLevel(t *testing.T) {
	assert.Equal(t, 0, XPForLevel(1))
	assert.Equal(t, 0, XPForLevel(0))
	assert.Equal(t, 282, XPForLevel(2))
	assert.Equal(t, 3162, XPForLevel(10))
	assert.Greater(t, XPForLevel(50), XPForLevel(49), "curve is monotonic")
}

func TestLevelFromTotalXP(t *testing.T) {
	assert.Equal(t, 1, LevelFromTotalXP(0))
	assert.Equal(t, 1, LevelFromTotalXP(XPForLevel(2)-1))
	assert.Equal(t, 2, LevelFromTotalXP(XPForLevel(2)))
	assert.Equal(t, 10, LevelFromTotalXP(XPForLevel(10)))
	assert.Equal(t, 100, LevelFromTotalXP(XPForLevel(100)+999999), "level is capped at 100")
}

func TestTitleForLevel(t *testing.T) {
	assert.Equal(t, "Novice Scribe", TitleForLevel(1))
	assert.Equal(t, "Novice Scribe", TitleForLevel(4))
	assert.Equal(t, "Page Turner", TitleForLevel(5))
	assert.Equal(t, "Ink Slinger", TitleForLevel(12))
	assert.Equal(t, "Pixel Laureate", TitleForLevel(100))
}

func TestXPProgressInLevel(t *testing.T) {
	assert.Equal(t, 0.0, XPProgressInLevel(XPForLevel(2), 2))
	assert.Equal(t, 1.0, XPProgressInLevel(0, 100))

	mid := XPForLevel(2) + (XPForLevel(3)-XPForLevel(2))/2
	progress := XPProgressInLevel(mid, 2)
	assert.Greater(t, progress, 0.4)
	assert.Less(t, progress, 0.6)
}

func TestCheckLevelUp(t *testing.T) {
	info := CheckLevelUp(0, XPForLevel(2))
	require.NotNil(t, info)
	assert.Equal(t, 1, info.OldLevel)
	assert.Equal(t, 2, info.NewLevel)
	assert.Equal(t, "Novice Scribe", info.OldTitle)

	assert.Nil(t, CheckLevelUp(0, XPForLevel(2)-1), "no level boundary crossed")
	assert.Nil(t, CheckLevelUp(XPForLevel(5), XPForLevel(5)), "no XP gained")
}
