package capacity

import "testing"

func TestComputeFloorClamp(t *testing.T) {
	// Worst-case signals must still yield a constructible session.
	cfg := Config{BaseCapacity: 1, NewLearningMin: 6, ModerateUsedPct: 70, HighUsedPct: 90}
	cap := Compute(Signals{HoursSlept: 0, HourOfDay: 3, RecentSessions: 10}, cfg)
	if cap.EffectiveCapacity < 1 {
		t.Errorf("EffectiveCapacity = %d, want >= 1", cap.EffectiveCapacity)
	}
}

func TestComputeCeilingClamp(t *testing.T) {
	cfg := DefaultConfig()
	cap := Compute(Signals{HoursSlept: 8, HourOfDay: 10, RecentSessions: 0}, cfg)
	ceiling := cfg.BaseCapacity + cfg.BaseCapacity/2
	if cap.EffectiveCapacity > ceiling {
		t.Errorf("EffectiveCapacity = %d, want <= %d", cap.EffectiveCapacity, ceiling)
	}
}

func TestComputeAlwaysAtLeastOne(t *testing.T) {
	cfg := DefaultConfig()
	for hour := -5; hour < 30; hour++ {
		for slept := -2.0; slept < 16; slept += 0.5 {
			for recent := -1; recent < 12; recent++ {
				cap := Compute(Signals{HoursSlept: slept, HourOfDay: hour, RecentSessions: recent}, cfg)
				if cap.EffectiveCapacity < 1 {
					t.Fatalf("Compute(%v, %d, %d): EffectiveCapacity = %d", slept, hour, recent, cap.EffectiveCapacity)
				}
			}
		}
	}
}

func TestSleepDeprivationReducesCapacity(t *testing.T) {
	cfg := DefaultConfig()
	rested := Compute(Signals{HoursSlept: 8, HourOfDay: 10, RecentSessions: 0}, cfg)
	tired := Compute(Signals{HoursSlept: 3, HourOfDay: 10, RecentSessions: 0}, cfg)
	if tired.EffectiveCapacity >= rested.EffectiveCapacity {
		t.Errorf("tired capacity %d not below rested %d", tired.EffectiveCapacity, rested.EffectiveCapacity)
	}
}

func TestWarningMonotonic(t *testing.T) {
	cfg := DefaultConfig()
	cap := Compute(Signals{HoursSlept: 8, HourOfDay: 10, RecentSessions: 0}, cfg)

	rank := map[WarningLevel]int{WarningNone: 0, WarningModerate: 1, WarningHigh: 2}
	prev := -1
	for used := 0; used <= cap.EffectiveCapacity*2; used++ {
		w := cap.WithUsage(used, cfg).Warning
		if rank[w] < prev {
			t.Fatalf("warning decreased at used=%d: %s", used, w)
		}
		prev = rank[w]
	}
}

func TestWarningThresholds(t *testing.T) {
	cfg := DefaultConfig()
	cap := CognitiveCapacity{BaseCapacity: 10, EffectiveCapacity: 10}

	tests := []struct {
		used int
		want WarningLevel
	}{
		{0, WarningNone},
		{6, WarningNone},
		{7, WarningModerate},
		{8, WarningModerate},
		{9, WarningHigh},
		{12, WarningHigh},
	}
	for _, tt := range tests {
		got := cap.WithUsage(tt.used, cfg).Warning
		if got != tt.want {
			t.Errorf("WithUsage(%d).Warning = %s, want %s", tt.used, got, tt.want)
		}
	}
}

func TestCanLearnNew(t *testing.T) {
	cfg := DefaultConfig()
	high := Compute(Signals{HoursSlept: 8, HourOfDay: 10, RecentSessions: 0}, cfg)
	if !high.CanLearnNew {
		t.Error("rested learner should be able to learn new concepts")
	}
	low := Compute(Signals{HoursSlept: 0, HourOfDay: 3, RecentSessions: 10}, cfg)
	if low.CanLearnNew {
		t.Errorf("depleted learner (capacity %d) should be review-only", low.EffectiveCapacity)
	}
}
