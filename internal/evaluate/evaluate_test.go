package evaluate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/jenn-182/Pixel-Pages-sub000/internal/catalog"
	"github.com/jenn-182/Pixel-Pages-sub000/internal/stats"
)

type fakeLedger struct {
	unlocked int
}

func (f fakeLedger) UnlockedCount() int {
	return f.unlocked
}

func newTestEvaluator(t *testing.T) *Evaluator {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	return New(logger)
}

func testContext(s *stats.UserStats) Context {
	return Context{
		Stats:       s,
		Ledger:      fakeLedger{},
		Now:         time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC),
		CatalogSize: 10,
	}
}

func statsWith(notes int) *stats.UserStats {
	return &stats.UserStats{TotalNotes: notes}
}

func TestCountRequirement(t *testing.T) {
	e := newTestEvaluator(t)
	req := catalog.Requirement{Kind: catalog.KindCount, Metric: catalog.MetricTotalNotes, Target: 10}

	result := e.Evaluate(req, testContext(statsWith(4)))
	assert.False(t, result.Satisfied)
	assert.InDelta(t, 0.4, result.Progress, 0.001)

	result = e.Evaluate(req, testContext(statsWith(10)))
	assert.True(t, result.Satisfied)
	assert.Equal(t, 1.0, result.Progress)

	result = e.Evaluate(req, testContext(statsWith(25)))
	assert.True(t, result.Satisfied)
	assert.Equal(t, 1.0, result.Progress, "progress is clamped to 1")
}

func TestZeroTargetAlwaysSatisfied(t *testing.T) {
	e := newTestEvaluator(t)
	req := catalog.Requirement{Kind: catalog.KindCount, Metric: catalog.MetricTotalNotes, Target: 0}

	result := e.Evaluate(req, testContext(statsWith(0)))
	assert.True(t, result.Satisfied)
	assert.Equal(t, 1.0, result.Progress)
}

func TestUnknownKindFailsClosed(t *testing.T) {
	e := newTestEvaluator(t)
	req := catalog.Requirement{Kind: catalog.Kind("telepathy")}

	result := e.Evaluate(req, testContext(statsWith(100)))
	assert.False(t, result.Satisfied)
	assert.Equal(t, 0.0, result.Progress)
}

func TestUnknownMetricFailsClosed(t *testing.T) {
	e := newTestEvaluator(t)
	req := catalog.Requirement{Kind: catalog.KindCount, Metric: "no_such_metric", Target: 1}

	result := e.Evaluate(req, testContext(statsWith(100)))
	assert.False(t, result.Satisfied)
	assert.Equal(t, 0.0, result.Progress)
}

func TestRatioRequirement(t *testing.T) {
	e := newTestEvaluator(t)
	req := catalog.Requirement{
		Kind:        catalog.KindRatio,
		Numerator:   catalog.MetricCompletedTasks,
		Denominator: catalog.MetricTotalTasks,
		TargetRatio: 0.8,
	}

	s := &stats.UserStats{TotalTasks: 10, CompletedTasks: 9}
	result := e.Evaluate(req, testContext(s))
	assert.True(t, result.Satisfied)

	s = &stats.UserStats{TotalTasks: 10, CompletedTasks: 4}
	result = e.Evaluate(req, testContext(s))
	assert.False(t, result.Satisfied)
	assert.InDelta(t, 0.5, result.Progress, 0.001)
}

func TestRatioZeroDenominatorIsUnsatisfied(t *testing.T) {
	e := newTestEvaluator(t)
	req := catalog.Requirement{
		Kind:        catalog.KindRatio,
		Numerator:   catalog.MetricCompletedTasks,
		Denominator: catalog.MetricTotalTasks,
		TargetRatio: 0.5,
	}

	result := e.Evaluate(req, testContext(&stats.UserStats{}))
	assert.False(t, result.Satisfied)
	assert.Equal(t, 0.0, result.Progress)
}

func TestTimeRangeRequirement(t *testing.T) {
	e := newTestEvaluator(t)
	req := catalog.Requirement{Kind: catalog.KindTimeRange, StartHour: 9, EndHour: 17}

	ctx := testContext(statsWith(0))
	ctx.Now = time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC)
	assert.True(t, e.Evaluate(req, ctx).Satisfied)

	ctx.Now = time.Date(2026, 8, 31, 20, 0, 0, 0, time.UTC)
	assert.False(t, e.Evaluate(req, ctx).Satisfied)
}

func TestTimeRangeWrapsPastMidnight(t *testing.T) {
	e := newTestEvaluator(t)
	req := catalog.Requirement{Kind: catalog.KindTimeRange, StartHour: 22, EndHour: 2}

	ctx := testContext(statsWith(0))
	ctx.Now = time.Date(2026, 8, 31, 23, 0, 0, 0, time.UTC)
	assert.True(t, e.Evaluate(req, ctx).Satisfied)

	ctx.Now = time.Date(2026, 8, 31, 1, 0, 0, 0, time.UTC)
	assert.True(t, e.Evaluate(req, ctx).Satisfied)

	ctx.Now = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	assert.False(t, e.Evaluate(req, ctx).Satisfied)
}

func TestTimeBeforeAndAfter(t *testing.T) {
	e := newTestEvaluator(t)
	ctx := testContext(statsWith(0))
	ctx.Now = time.Date(2026, 8, 31, 6, 30, 0, 0, time.UTC)

	before := catalog.Requirement{Kind: catalog.KindTimeBefore, EndHour: 8}
	assert.True(t, e.Evaluate(before, ctx).Satisfied)

	after := catalog.Requirement{Kind: catalog.KindTimeAfter, StartHour: 22}
	assert.False(t, e.Evaluate(after, ctx).Satisfied)

	ctx.Now = time.Date(2026, 8, 31, 23, 0, 0, 0, time.UTC)
	assert.False(t, e.Evaluate(before, ctx).Satisfied)
	assert.True(t, e.Evaluate(after, ctx).Satisfied)
}

func TestDurationRangeRequirement(t *testing.T) {
	e := newTestEvaluator(t)
	req := catalog.Requirement{Kind: catalog.KindDurationRange, MinMinutes: 25, MaxMinutes: 60, Target: 3}

	s := &stats.UserStats{SessionsByMinutes: map[int]int{
		10: 5, // too short
		25: 2,
		45: 1,
		90: 4, // too long
	}}
	result := e.Evaluate(req, testContext(s))
	assert.True(t, result.Satisfied)

	req.Target = 5
	result = e.Evaluate(req, testContext(s))
	assert.False(t, result.Satisfied)
	assert.InDelta(t, 0.6, result.Progress, 0.001)
}

func TestCategoryMetricRequirement(t *testing.T) {
	e := newTestEvaluator(t)
	req := catalog.Requirement{Kind: catalog.KindCategoryMetric, Category: "study", Target: 100}

	s := &stats.UserStats{MinutesByCategory: map[string]int{"study": 120}}
	assert.True(t, e.Evaluate(req, testContext(s)).Satisfied)

	s = &stats.UserStats{MinutesByCategory: map[string]int{"creative": 500}}
	result := e.Evaluate(req, testContext(s))
	assert.False(t, result.Satisfied)
	assert.Equal(t, 0.0, result.Progress)
}

func TestComboRequiresAllParts(t *testing.T) {
	e := newTestEvaluator(t)
	req := catalog.Requirement{
		Kind: catalog.KindCombo,
		All: []catalog.Requirement{
			{Kind: catalog.KindCount, Metric: catalog.MetricTotalNotes, Target: 5},
			{Kind: catalog.KindCount, Metric: catalog.MetricTotalTasks, Target: 10},
		},
	}

	s := &stats.UserStats{TotalNotes: 5, TotalTasks: 5}
	result := e.Evaluate(req, testContext(s))
	assert.False(t, result.Satisfied)
	assert.InDelta(t, 0.5, result.Progress, 0.001, "combo progress tracks the weakest part")

	s = &stats.UserStats{TotalNotes: 5, TotalTasks: 10}
	result = e.Evaluate(req, testContext(s))
	assert.True(t, result.Satisfied)
	assert.Equal(t, 1.0, result.Progress)
}

func TestComboFailsClosedWhenAnyPartIsUnknown(t *testing.T) {
	e := newTestEvaluator(t)
	req := catalog.Requirement{
		Kind: catalog.KindCombo,
		All: []catalog.Requirement{
			{Kind: catalog.KindCount, Metric: catalog.MetricTotalNotes, Target: 1},
			{Kind: catalog.Kind("telepathy")},
		},
	}

	result := e.Evaluate(req, testContext(statsWith(100)))
	assert.False(t, result.Satisfied)
	assert.Equal(t, 0.0, result.Progress)
}

func TestCompletionPercentageRequirement(t *testing.T) {
	e := newTestEvaluator(t)
	req := catalog.Requirement{Kind: catalog.KindCompletionPercentage, Target: 50}

	ctx := testContext(statsWith(0))
	ctx.Ledger = fakeLedger{unlocked: 5}
	ctx.CatalogSize = 10
	assert.True(t, e.Evaluate(req, ctx).Satisfied)

	ctx.Ledger = fakeLedger{unlocked: 2}
	result := e.Evaluate(req, ctx)
	assert.False(t, result.Satisfied)
	assert.InDelta(t, 0.4, result.Progress, 0.001)
}

func TestAchievementCountRequirement(t *testing.T) {
	e := newTestEvaluator(t)
	req := catalog.Requirement{Kind: catalog.KindAchievementCount, Target: 3}

	ctx := testContext(statsWith(0))
	ctx.Ledger = fakeLedger{unlocked: 3}
	assert.True(t, e.Evaluate(req, ctx).Satisfied)

	ctx.Ledger = nil
	result := e.Evaluate(req, ctx)
	assert.False(t, result.Satisfied, "missing ledger view fails closed")
}

func TestProgressIsAlwaysBounded(t *testing.T) {
	e := newTestEvaluator(t)

	reqs := []catalog.Requirement{
		{Kind: catalog.KindCount, Metric: catalog.MetricTotalNotes, Target: 1},
		{Kind: catalog.KindRatio, Numerator: catalog.MetricCompletedTasks, Denominator: catalog.MetricTotalTasks, TargetRatio: 0.1},
		{Kind: catalog.KindCompletionPercentage, Target: 1},
	}
	s := &stats.UserStats{TotalNotes: 1000, TotalTasks: 10, CompletedTasks: 10}
	ctx := testContext(s)
	ctx.Ledger = fakeLedger{unlocked: 10}

	for _, req := range reqs {
		result := e.Evaluate(req, ctx)
		assert.GreaterOrEqual(t, result.Progress, 0.0)
		assert.LessOrEqual(t, result.Progress, 1.0)
	}
}

func TestEveryBuiltInRequirementEvaluates(t *testing.T) {
	e := newTestEvaluator(t)
	ctx := testContext(&stats.UserStats{})

	for _, def := range catalog.All {
		result := e.Evaluate(def.Requirement, ctx)
		assert.GreaterOrEqual(t, result.Progress, 0.0, "definition %s", def.ID)
		assert.LessOrEqual(t, result.Progress, 1.0, "definition %s", def.ID)
	}
}
