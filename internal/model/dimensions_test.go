package model

import "testing"

func TestValidCombinations(t *testing.T) {
	if !ValidCombination(RoleConsultant, LevelPiP) {
		t.Fatal("expected PiP on the consultant ladder")
	}
	if ValidCombination(RoleSales, LevelPiP) {
		t.Fatal("PiP must not exist on the sales ladder")
	}
	if ValidCombination(RoleConsultant, LevelAM) {
		t.Fatal("AM must not exist on the consultant ladder")
	}

	// Operations runs under a single pseudo-level.
	opsLevels := LevelsFor(RoleOperations)
	if len(opsLevels) != 1 || opsLevels[0] != LevelC {
		t.Fatalf("expected operations ladder [C], got %v", opsLevels)
	}
	if ValidCombination(RoleOperations, LevelA) {
		t.Fatal("operations must reject level A")
	}
}

func TestRoleLevelTextRoundTrip(t *testing.T) {
	for _, role := range Roles() {
		text, err := role.MarshalText()
		if err != nil {
			t.Fatalf("marshal role %v: %v", role, err)
		}
		var back Role
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("unmarshal role %q: %v", text, err)
		}
		if back != role {
			t.Fatalf("role round trip: %v != %v", back, role)
		}
	}
	for _, level := range AllLevels() {
		text, err := level.MarshalText()
		if err != nil {
			t.Fatalf("marshal level %v: %v", level, err)
		}
		var back Level
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("unmarshal level %q: %v", text, err)
		}
		if back != level {
			t.Fatalf("level round trip: %v != %v", back, level)
		}
	}

	var r Role
	if err := r.UnmarshalText([]byte("janitor")); err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestPlanPeriod(t *testing.T) {
	p := PlanPeriod{Year: 2026}

	if !p.Contains(Month{Year: 2026, Index: 1}) || !p.Contains(Month{Year: 2026, Index: 12}) {
		t.Fatal("expected months 1 and 12 inside the period")
	}
	if p.Contains(Month{Year: 2026, Index: 0}) || p.Contains(Month{Year: 2026, Index: 13}) {
		t.Fatal("expected month indexes 0 and 13 outside the period")
	}
	if p.Contains(Month{Year: 2027, Index: 6}) {
		t.Fatal("expected other years outside the period")
	}

	months := p.Months()
	if len(months) != 12 {
		t.Fatalf("expected 12 months, got %d", len(months))
	}
	for i, m := range months {
		if m.Index != i+1 || m.Year != 2026 {
			t.Fatalf("month %d out of order: %v", i, m)
		}
	}
	if got := months[2].String(); got != "2026-03" {
		t.Fatalf("expected 2026-03, got %s", got)
	}
}

func TestBaselineGridCopyOnWrite(t *testing.T) {
	g0 := NewBaselineGrid()
	month := Month{Year: 2026, Index: 4}

	g1 := g0.WithCell(RoleConsultant, LevelC, month, BaselineCell{Recruitment: 3})
	if g0.Version() != 0 || g1.Version() != 1 {
		t.Fatalf("expected versions 0 and 1, got %d and %d", g0.Version(), g1.Version())
	}
	if _, ok := g0.Lookup(RoleConsultant, LevelC, month); ok {
		t.Fatal("original snapshot must not see the new cell")
	}
	cell, ok := g1.Lookup(RoleConsultant, LevelC, month)
	if !ok || cell.Recruitment != 3 {
		t.Fatalf("expected recruitment 3 in new snapshot, got %+v ok=%v", cell, ok)
	}
}
