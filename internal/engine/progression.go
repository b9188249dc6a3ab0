package engine

import (
	"math"
	"sort"
)

// LevelTitles maps the first level of each title band to its title.
var LevelTitles = map[int]string{
	1:   "Novice Scribe",
	5:   "Page Turner",
	10:  "Ink Slinger",
	20:  "Wordsmith",
	35:  "Chronicler",
	50:  "Archivist",
	75:  "Loremaster",
	100: "Pixel Laureate",
}

// TitleForLevel returns the title for a given level.
func TitleForLevel(level int) string {
	title := "Novice Scribe"

	keys := make([]int, 0, len(LevelTitles))
	for lvl := range LevelTitles {
		keys = append(keys, lvl)
	}
	sort.Ints(keys)

	for _, lvl := range keys {
		if level >= lvl {
			title = LevelTitles[lvl]
		} else {
			break
		}
	}

	return title
}

// XPForLevel calculates the total XP required to reach a specific level.
// Uses an exponential curve: XP = 100 * (level^1.5)
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return int(100 * math.Pow(float64(level), 1.5))
}

// XPForNextLevel returns XP needed to reach the next level from current.
func XPForNextLevel(currentLevel int) int {
	return XPForLevel(currentLevel+1) - XPForLevel(currentLevel)
}

// LevelFromTotalXP calculates level from total XP, capped at 100.
func LevelFromTotalXP(totalXP int) int {
	level := 1
	for XPForLevel(level+1) <= totalXP {
		level++
		if level >= 100 {
			break
		}
	}
	return level
}

// XPProgressInLevel returns progress towards the next level (0.0 to 1.0).
func XPProgressInLevel(totalXP int, currentLevel int) float64 {
	if currentLevel >= 100 {
		return 1.0
	}
	currentLevelXP := XPForLevel(currentLevel)
	nextLevelXP := XPForLevel(currentLevel + 1)
	xpInLevel := totalXP - currentLevelXP
	xpNeeded := nextLevelXP - currentLevelXP
	if xpNeeded <= 0 {
		return 1.0
	}
	return float64(xpInLevel) / float64(xpNeeded)
}

// LevelUpInfo describes a level transition caused by an XP award.
type LevelUpInfo struct {
	OldLevel int
	NewLevel int
	OldTitle string
	NewTitle string
	XPToNext int
}

// CheckLevelUp returns transition info when the XP delta crosses a level
// boundary, nil otherwise.
func CheckLevelUp(oldTotalXP, newTotalXP int) *LevelUpInfo {
	oldLevel := LevelFromTotalXP(oldTotalXP)
	newLevel := LevelFromTotalXP(newTotalXP)

	if newLevel <= oldLevel {
		return nil
	}

	return &LevelUpInfo{
		OldLevel: oldLevel,
		NewLevel: newLevel,
		OldTitle: TitleForLevel(oldLevel),
		NewTitle: TitleForLevel(newLevel),
		XPToNext: XPForNextLevel(newLevel),
	}
}
