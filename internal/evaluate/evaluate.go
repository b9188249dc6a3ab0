package evaluate

import (
	"time"

	"go.uber.org/zap"

	"github.com/jenn-182/Pixel-Pages-sub000/internal/catalog"
	"github.com/jenn-182/Pixel-Pages-sub000/internal/stats"
)

// Result is the outcome of evaluating one requirement.
type Result struct {
	Satisfied bool
	Progress  float64 // always in [0,1], usable for "in progress" display
}

// LedgerView is the slice of ledger state meta-requirements need.
type LedgerView interface {
	UnlockedCount() int
}

// Context carries everything a requirement can be evaluated against.
// Now is injected so time-window requirements are deterministic in tests.
type Context struct {
	Stats       *stats.UserStats
	Ledger      LedgerView
	Now         time.Time
	CatalogSize int
}

type evalFunc func(catalog.Requirement, Context) Result

// Evaluator dispatches requirements to their kind-specific evaluation
// function. Unknown kinds fail closed: unsatisfied, progress 0, one
// diagnostic log line, never an error.
type Evaluator struct {
	logger *zap.Logger
	funcs  map[catalog.Kind]evalFunc
}

// New returns an evaluator with all built-in requirement kinds registered.
func New(logger *zap.Logger) *Evaluator {
	e := &Evaluator{logger: logger}
	e.funcs = map[catalog.Kind]evalFunc{
		catalog.KindCount:                e.evalCount,
		catalog.KindRatio:                e.evalRatio,
		catalog.KindStreak:               e.evalCount, // streak metrics are plain scalars in UserStats
		catalog.KindTimeRange:            e.evalTimeRange,
		catalog.KindTimeBefore:           e.evalTimeBefore,
		catalog.KindTimeAfter:            e.evalTimeAfter,
		catalog.KindDurationRange:        e.evalDurationRange,
		catalog.KindCategoryMetric:       e.evalCategoryMetric,
		catalog.KindCombo:                e.evalCombo,
		catalog.KindCompletionPercentage: e.evalCompletionPercentage,
		catalog.KindAchievementCount:     e.evalAchievementCount,
	}
	return e
}

// Evaluate returns whether the requirement is satisfied and how far
// along it is.
func (e *Evaluator) Evaluate(req catalog.Requirement, ctx Context) Result {
	fn, ok := e.funcs[req.Kind]
	if !ok {
		e.logger.Warn("unknown requirement kind, treating as unsatisfied",
			zap.String("kind", string(req.Kind)))
		return Result{Satisfied: false, Progress: 0}
	}
	result := fn(req, ctx)
	result.Progress = clamp(result.Progress)
	return result
}

func (e *Evaluator) evalCount(req catalog.Requirement, ctx Context) Result {
	value, ok := ctx.Stats.Value(req.Metric)
	if !ok {
		e.logger.Warn("unknown metric, treating as unsatisfied",
			zap.String("metric", req.Metric))
		return Result{}
	}
	return thresholdResult(value, req.Target)
}

func (e *Evaluator) evalRatio(req catalog.Requirement, ctx Context) Result {
	numerator, okNum := ctx.Stats.Value(req.Numerator)
	denominator, okDen := ctx.Stats.Value(req.Denominator)
	if !okNum || !okDen {
		e.logger.Warn("unknown ratio metric, treating as unsatisfied",
			zap.String("numerator", req.Numerator),
			zap.String("denominator", req.Denominator))
		return Result{}
	}
	if req.TargetRatio <= 0 {
		return Result{Satisfied: true, Progress: 1}
	}
	if denominator == 0 {
		return Result{}
	}
	ratio := float64(numerator) / float64(denominator)
	return Result{
		Satisfied: ratio >= req.TargetRatio,
		Progress:  ratio / req.TargetRatio,
	}
}

func (e *Evaluator) evalTimeRange(req catalog.Requirement, ctx Context) Result {
	hour := ctx.Now.Hour()
	var inside bool
	if req.StartHour <= req.EndHour {
		inside = hour >= req.StartHour && hour < req.EndHour
	} else {
		// window wraps past midnight, e.g. 22-2
		inside = hour >= req.StartHour || hour < req.EndHour
	}
	return booleanResult(inside)
}

func (e *Evaluator) evalTimeBefore(req catalog.Requirement, ctx Context) Result {
	return booleanResult(ctx.Now.Hour() < req.EndHour)
}

func (e *Evaluator) evalTimeAfter(req catalog.Requirement, ctx Context) Result {
	return booleanResult(ctx.Now.Hour() >= req.StartHour)
}

func (e *Evaluator) evalDurationRange(req catalog.Requirement, ctx Context) Result {
	count := 0
	for minutes, n := range ctx.Stats.SessionsByMinutes {
		if minutes >= req.MinMinutes && minutes <= req.MaxMinutes {
			count += n
		}
	}
	return thresholdResult(count, req.Target)
}

func (e *Evaluator) evalCategoryMetric(req catalog.Requirement, ctx Context) Result {
	return thresholdResult(ctx.Stats.MinutesByCategory[req.Category], req.Target)
}

func (e *Evaluator) evalCombo(req catalog.Requirement, ctx Context) Result {
	if len(req.All) == 0 {
		return Result{Satisfied: true, Progress: 1}
	}
	satisfied := true
	minProgress := 1.0
	for _, sub := range req.All {
		result := e.Evaluate(sub, ctx)
		if !result.Satisfied {
			satisfied = false
		}
		if result.Progress < minProgress {
			minProgress = result.Progress
		}
	}
	return Result{Satisfied: satisfied, Progress: minProgress}
}

func (e *Evaluator) evalCompletionPercentage(req catalog.Requirement, ctx Context) Result {
	if ctx.Ledger == nil || ctx.CatalogSize <= 0 {
		return Result{}
	}
	percent := float64(ctx.Ledger.UnlockedCount()) / float64(ctx.CatalogSize) * 100
	if req.Target <= 0 {
		return Result{Satisfied: true, Progress: 1}
	}
	return Result{
		Satisfied: percent >= float64(req.Target),
		Progress:  percent / float64(req.Target),
	}
}

func (e *Evaluator) evalAchievementCount(req catalog.Requirement, ctx Context) Result {
	if ctx.Ledger == nil {
		return Result{}
	}
	return thresholdResult(ctx.Ledger.UnlockedCount(), req.Target)
}

// thresholdResult implements the shared "value >= target" semantics,
// including the target-of-0-is-always-satisfied edge case.
func thresholdResult(value, target int) Result {
	if target <= 0 {
		return Result{Satisfied: true, Progress: 1}
	}
	return Result{
		Satisfied: value >= target,
		Progress:  float64(value) / float64(target),
	}
}

func booleanResult(ok bool) Result {
	if ok {
		return Result{Satisfied: true, Progress: 1}
	}
	return Result{}
}

func clamp(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
