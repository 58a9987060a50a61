package model

import (
	"math"
	"testing"
)

func TestLeverDefaultIsIdentity(t *testing.T) {
	table := NewLeverTable()
	for _, lt := range LeverTypes() {
		for _, level := range AllLevels() {
			if got := table.Multiplier(lt, level); got != 1.0 {
				t.Fatalf("expected default multiplier 1.0 for %s.%s, got %g", lt, level, got)
			}
		}
	}
}

func TestWithValueClampsIntoRange(t *testing.T) {
	table := NewLeverTable()

	next, stored, adjusted := table.WithValue(LeverRecruitment, LevelC, 2.5)
	if stored != 2.0 || !adjusted {
		t.Fatalf("expected 2.5 clamped to 2.0, got %g adjusted=%v", stored, adjusted)
	}
	if next.Version() != table.Version()+1 {
		t.Fatalf("expected version bump, got %d -> %d", table.Version(), next.Version())
	}
	// Copy-on-write: the original snapshot is untouched.
	if got := table.Multiplier(LeverRecruitment, LevelC); got != 1.0 {
		t.Fatalf("original table mutated: %g", got)
	}

	_, stored, adjusted = next.WithValue(LeverChurn, LevelA, -0.5)
	if stored != 0 || !adjusted {
		t.Fatalf("expected -0.5 clamped to 0, got %g adjusted=%v", stored, adjusted)
	}

	_, stored, adjusted = next.WithValue(LeverChurn, LevelA, 1.3)
	if stored != 1.3 || adjusted {
		t.Fatalf("expected in-range 1.3 stored untouched, got %g adjusted=%v", stored, adjusted)
	}
}

func TestWithValueNonFiniteKeepsPrevious(t *testing.T) {
	table := NewLeverTable()
	table, _, _ = table.WithValue(LeverRecruitment, LevelC, 1.5)

	next, stored, adjusted := table.WithValue(LeverRecruitment, LevelC, math.NaN())
	if !adjusted {
		t.Fatal("expected NaN to be reported as adjusted")
	}
	if stored != 1.5 {
		t.Fatalf("expected previous value 1.5 to remain in effect, got %g", stored)
	}
	if next != table {
		t.Fatal("expected NaN to leave the snapshot untouched")
	}
}

func TestWithReset(t *testing.T) {
	table := NewLeverTable()
	table, _, _ = table.WithValue(LeverRecruitment, LevelA, 1.5)
	table, _, _ = table.WithValue(LeverRecruitment, LevelC, 0.5)
	table, _, _ = table.WithValue(LeverChurn, LevelA, 1.8)

	table = table.WithReset(LeverRecruitment)
	if got := table.Multiplier(LeverRecruitment, LevelA); got != 1.0 {
		t.Fatalf("expected reset recruitment.A to 1.0, got %g", got)
	}
	if got := table.Multiplier(LeverRecruitment, LevelC); got != 1.0 {
		t.Fatalf("expected reset recruitment.C to 1.0, got %g", got)
	}
	if got := table.Multiplier(LeverChurn, LevelA); got != 1.8 {
		t.Fatalf("expected churn.A untouched at 1.8, got %g", got)
	}
}

func TestFlattenRoundTrip(t *testing.T) {
	table := NewLeverTable()
	table, _, _ = table.WithValue(LeverRecruitment, LevelA, 1.5)
	table, _, _ = table.WithValue(LeverChurn, LevelSrC, 0.25)
	table, _, _ = table.WithValue(LeverProgression, LevelPiP, 0)

	rebuilt, msgs := LeverTableFromFlat(table.Flatten())
	if len(msgs) != 0 {
		t.Fatalf("expected clean round trip, got messages %v", msgs)
	}
	for _, lt := range LeverTypes() {
		for _, level := range AllLevels() {
			want := table.Multiplier(lt, level)
			got := rebuilt.Multiplier(lt, level)
			if got != want {
				t.Fatalf("round trip mismatch for %s.%s: %g != %g", lt, level, got, want)
			}
		}
	}
}

func TestFromFlatSanitizes(t *testing.T) {
	table, msgs := LeverTableFromFlat(map[string]float64{
		"recruitment.C": 5,
		"churn.A":       math.NaN(),
		"bogus":         1.2,
	})

	if got := table.Multiplier(LeverRecruitment, LevelC); got != 2.0 {
		t.Fatalf("expected 5 clamped to 2.0, got %g", got)
	}
	if got := table.Multiplier(LeverChurn, LevelA); got != 1.0 {
		t.Fatalf("expected NaN to fall back to identity, got %g", got)
	}

	codes := map[string]bool{}
	for _, m := range msgs {
		if m.Level != LevelWarning {
			t.Fatalf("sanitization must warn, not fail: %+v", m)
		}
		codes[m.Code] = true
	}
	for _, want := range []string{"MULTIPLIER_CLAMPED", "NON_NUMERIC_MULTIPLIER", "UNKNOWN_LEVER_KEY"} {
		if !codes[want] {
			t.Fatalf("expected message code %s in %v", want, msgs)
		}
	}
}
