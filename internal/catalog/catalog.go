package catalog

import (
	"fmt"

	"github.com/samber/lo"
)

// Tier represents the rarity of an achievement
type Tier string

const (
	TierCommon    Tier = "common"
	TierUncommon  Tier = "uncommon"
	TierRare      Tier = "rare"
	TierLegendary Tier = "legendary"
)

// Category represents the activity family an achievement belongs to
type Category string

const (
	CategoryNotes Category = "notes"
	CategoryTasks Category = "tasks"
	CategoryFocus Category = "focus"
	CategoryCombo Category = "combo"
	CategoryMeta  Category = "meta"
)

// Kind identifies how a requirement is evaluated
type Kind string

const (
	KindCount                Kind = "count"
	KindRatio                Kind = "ratio"
	KindStreak               Kind = "streak"
	KindTimeRange            Kind = "time_range"
	KindTimeBefore           Kind = "time_before"
	KindTimeAfter            Kind = "time_after"
	KindDurationRange        Kind = "duration_range"
	KindCategoryMetric       Kind = "category_metric"
	KindCombo                Kind = "combo"
	KindCompletionPercentage Kind = "completion_percentage"
	KindAchievementCount     Kind = "achievement_count"
)

// Requirement is a declarative condition over aggregated user statistics.
// Kind selects which of the remaining fields are meaningful.
type Requirement struct {
	Kind Kind

	// count, streak
	Metric string
	Target int

	// ratio
	Numerator   string
	Denominator string
	TargetRatio float64

	// time_range, time_before, time_after (hours, 0-23)
	StartHour int
	EndHour   int

	// duration_range (session length bounds in minutes)
	MinMinutes int
	MaxMinutes int

	// category_metric
	Category string

	// combo
	All []Requirement
}

// AchievementDefinition defines a single achievement
type AchievementDefinition struct {
	ID          string
	Name        string
	Description string
	Tier        Tier
	Category    Category
	Requirement Requirement
	XPReward    int
	Color       string // display hint, opaque to the engine
}

// TierXPRewards returns the default XP for each tier, used when a
// definition omits an explicit reward.
func TierXPRewards() map[Tier]int {
	return map[Tier]int{
		TierCommon:    50,
		TierUncommon:  150,
		TierRare:      400,
		TierLegendary: 1000,
	}
}

// Catalog is the immutable registry of achievement definitions. Built
// once at session start, never mutated.
type Catalog struct {
	all  []AchievementDefinition
	byID map[string]AchievementDefinition
}

// New builds a catalog from the given definitions, filling default XP
// rewards and validating ID uniqueness.
func New(defs []AchievementDefinition) (*Catalog, error) {
	c := &Catalog{
		all:  make([]AchievementDefinition, 0, len(defs)),
		byID: make(map[string]AchievementDefinition, len(defs)),
	}

	tierXP := TierXPRewards()
	for _, def := range defs {
		if def.ID == "" {
			return nil, fmt.Errorf("achievement definition with empty id (name %q)", def.Name)
		}
		if _, exists := c.byID[def.ID]; exists {
			return nil, fmt.Errorf("duplicate achievement id %q", def.ID)
		}
		if def.XPReward == 0 {
			def.XPReward = tierXP[def.Tier]
		}

		c.all = append(c.all, def)
		c.byID[def.ID] = def
	}

	return c, nil
}

// Default returns a catalog built from the built-in definitions. Panics
// only if the built-in data is invalid, which is a programming error.
func Default() *Catalog {
	c, err := New(All)
	if err != nil {
		panic(err)
	}
	return c
}

// Size returns the number of definitions in the catalog.
func (c *Catalog) Size() int {
	return len(c.all)
}

// AllDefinitions returns every definition in declaration order.
func (c *Catalog) AllDefinitions() []AchievementDefinition {
	out := make([]AchievementDefinition, len(c.all))
	copy(out, c.all)
	return out
}

// GetByID looks up a definition by its id. The second return value is
// false when no definition with that id exists.
func (c *Catalog) GetByID(id string) (AchievementDefinition, bool) {
	def, ok := c.byID[id]
	return def, ok
}

// ByTier returns all definitions of the given tier in declaration order.
func (c *Catalog) ByTier(tier Tier) []AchievementDefinition {
	return lo.Filter(c.all, func(def AchievementDefinition, _ int) bool {
		return def.Tier == tier
	})
}

// ByCategory returns all definitions in the given category in declaration order.
func (c *Catalog) ByCategory(category Category) []AchievementDefinition {
	return lo.Filter(c.all, func(def AchievementDefinition, _ int) bool {
		return def.Category == category
	})
}

// IDs returns the ids of every definition in declaration order.
func (c *Catalog) IDs() []string {
	return lo.Map(c.all, func(def AchievementDefinition, _ int) string {
		return def.ID
	})
}
