// Package capacity converts physiological and context signals into an
// effective per-session item budget. All functions are pure and total:
// out-of-range inputs are clamped, never rejected.
package capacity

import "math"

// WarningLevel flags how loaded the session is relative to capacity.
type WarningLevel string

const (
	WarningNone     WarningLevel = "none"
	WarningModerate WarningLevel = "moderate"
	WarningHigh     WarningLevel = "high"
)

// Signals are the bounded inputs to the capacity computation.
type Signals struct {
	HoursSlept     float64 // last night, clamped to [0, 14]
	HourOfDay      int     // local hour, clamped to [0, 23]
	RecentSessions int     // sessions completed in the last 24h, clamped to [0, 10]
}

// Config holds the capacity curve parameters.
type Config struct {
	BaseCapacity int

	// NewLearningMin is the minimum effective capacity at which new-concept
	// items may be scheduled. Below it the session is review-only.
	NewLearningMin int

	// ModerateUsedPct and HighUsedPct are the percentage-used thresholds
	// for the warning levels.
	ModerateUsedPct float64
	HighUsedPct     float64
}

// DefaultConfig returns the standard capacity configuration.
func DefaultConfig() Config {
	return Config{
		BaseCapacity:    12,
		NewLearningMin:  6,
		ModerateUsedPct: 70,
		HighUsedPct:     90,
	}
}

// CognitiveCapacity is the computed session budget.
type CognitiveCapacity struct {
	BaseCapacity      int
	CircadianModifier float64
	SleepModifier     float64
	FatigueModifier   float64
	EffectiveCapacity int
	PercentageUsed    float64
	CanLearnNew       bool
	Warning           WarningLevel
}

// Compute derives the session budget from signals.
//
// EffectiveCapacity = round(base × circadian × sleep × fatigue), clamped to
// [1, base × 1.5]. The floor guarantees a session is always constructible.
func Compute(sig Signals, cfg Config) CognitiveCapacity {
	base := cfg.BaseCapacity
	if base < 1 {
		base = 1
	}

	circadian := circadianModifier(clampInt(sig.HourOfDay, 0, 23))
	sleep := sleepModifier(clampFloat(sig.HoursSlept, 0, 14))
	fatigue := fatigueModifier(clampInt(sig.RecentSessions, 0, 10))

	eff := int(math.Round(float64(base) * circadian * sleep * fatigue))
	ceiling := int(math.Round(float64(base) * 1.5))
	if eff > ceiling {
		eff = ceiling
	}
	if eff < 1 {
		eff = 1
	}

	return CognitiveCapacity{
		BaseCapacity:      base,
		CircadianModifier: circadian,
		SleepModifier:     sleep,
		FatigueModifier:   fatigue,
		EffectiveCapacity: eff,
		CanLearnNew:       eff >= cfg.NewLearningMin,
		Warning:           WarningNone,
	}
}

// WithUsage returns a copy with PercentageUsed set to itemCount/effective
// and the warning level derived from the configured thresholds.
func (c CognitiveCapacity) WithUsage(itemCount int, cfg Config) CognitiveCapacity {
	if itemCount < 0 {
		itemCount = 0
	}
	c.PercentageUsed = float64(itemCount) / float64(c.EffectiveCapacity) * 100
	c.Warning = warningFor(c.PercentageUsed, cfg)
	return c
}

// warningFor maps percentage used to a warning level. Monotonic
// non-decreasing in pct.
func warningFor(pct float64, cfg Config) WarningLevel {
	switch {
	case pct >= cfg.HighUsedPct:
		return WarningHigh
	case pct >= cfg.ModerateUsedPct:
		return WarningModerate
	default:
		return WarningNone
	}
}

// circadianModifier maps local hour to an alertness factor.
// Late morning is peak; the post-lunch dip and late night are penalized.
func circadianModifier(hour int) float64 {
	switch {
	case hour >= 9 && hour <= 11:
		return 1.2
	case hour >= 14 && hour <= 16:
		return 0.85
	case hour >= 6 && hour <= 21:
		return 1.0
	default:
		return 0.6 // late night / pre-dawn
	}
}

// sleepModifier maps hours slept to a recovery factor.
// Linear from 0.6 at ≤4h to 1.0 at 7.5h, with a mild oversleep penalty.
func sleepModifier(hours float64) float64 {
	switch {
	case hours <= 4:
		return 0.6
	case hours < 7.5:
		return 0.6 + 0.4*(hours-4)/3.5
	case hours <= 9.5:
		return 1.0
	default:
		return 0.9
	}
}

// fatigueModifier penalizes each recent session by 10%, floored at 0.6.
func fatigueModifier(recent int) float64 {
	m := 1.0 - 0.1*float64(recent)
	if m < 0.6 {
		return 0.6
	}
	return m
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
