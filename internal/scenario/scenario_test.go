package scenario

import (
	"encoding/json"
	"testing"

	"workforce-engine/internal/model"
	"workforce-engine/internal/officeregistry"
)

func newState() *State {
	return &State{
		Grid:   model.NewBaselineGrid(),
		Levers: model.NewLeverTable(),
		Period: model.PlanPeriod{Year: 2026},
		Office: officeregistry.OfficeConfig{
			OfficeID:             "test-office",
			HourlyRate:           100,
			Utilization:          0.8,
			MonthlySalary:        5000,
			StartingFTE:          10,
			OfficeCount:          1,
			StandardMonthlyHours: 160,
		},
	}
}

func run(t *testing.T, state *State, name, props string) []model.CalculationMessage {
	t.Helper()
	h, ok := Get(name)
	if !ok {
		t.Fatalf("unknown operation %s", name)
	}
	op := &model.Operation{OperationID: "o1", Name: name, Properties: json.RawMessage(props)}
	msgs := h.Validate(state, op)
	for _, m := range msgs {
		if m.Level == model.LevelCritical {
			return msgs
		}
	}
	return append(msgs, h.Apply(state, op)...)
}

func TestSetLever(t *testing.T) {
	state := newState()

	msgs := run(t, state, "set_lever", `{"lever": "churn", "level": "SrC", "value": 0.5}`)
	if len(msgs) != 0 {
		t.Fatalf("expected clean apply, got %v", msgs)
	}
	if got := state.Levers.Multiplier(model.LeverChurn, model.LevelSrC); got != 0.5 {
		t.Fatalf("expected multiplier 0.5, got %g", got)
	}
}

func TestSetLeverUnknownType(t *testing.T) {
	state := newState()

	msgs := run(t, state, "set_lever", `{"lever": "salary", "level": "A", "value": 1.2}`)
	if len(msgs) != 1 || msgs[0].Code != "UNKNOWN_LEVER_TYPE" || msgs[0].Level != model.LevelCritical {
		t.Fatalf("expected critical UNKNOWN_LEVER_TYPE, got %v", msgs)
	}
}

func TestResetLevers(t *testing.T) {
	state := newState()
	state.Levers, _, _ = state.Levers.WithValue(model.LeverRecruitment, model.LevelA, 1.7)
	state.Levers, _, _ = state.Levers.WithValue(model.LeverChurn, model.LevelA, 0.3)

	msgs := run(t, state, "reset_levers", `{"lever": "recruitment"}`)
	if len(msgs) != 0 {
		t.Fatalf("expected clean reset, got %v", msgs)
	}
	if got := state.Levers.Multiplier(model.LeverRecruitment, model.LevelA); got != 1.0 {
		t.Fatalf("expected recruitment reset to identity, got %g", got)
	}
	if got := state.Levers.Multiplier(model.LeverChurn, model.LevelA); got != 0.3 {
		t.Fatalf("expected churn untouched, got %g", got)
	}
}

func TestSetProgressionMultiplier(t *testing.T) {
	state := newState()

	msgs := run(t, state, "set_progression_multiplier", `{"level": "C", "value": 3}`)
	if len(msgs) != 1 || msgs[0].Code != "MULTIPLIER_CLAMPED" {
		t.Fatalf("expected MULTIPLIER_CLAMPED for value 3, got %v", msgs)
	}
	if got := state.Levers.Multiplier(model.LeverProgression, model.LevelC); got != 2 {
		t.Fatalf("expected clamped multiplier 2, got %g", got)
	}
}

func TestSetBaselineCellSeedsFromOfficeDefaults(t *testing.T) {
	state := newState()

	msgs := run(t, state, "set_baseline_cell", `{"role": "consultant", "level": "C", "month": 3, "recruitment": 5}`)
	if len(msgs) != 0 {
		t.Fatalf("expected clean apply, got %v", msgs)
	}

	cell, ok := state.Grid.Lookup(model.RoleConsultant, model.LevelC, model.Month{Year: 2026, Index: 3})
	if !ok {
		t.Fatal("expected the cell to exist after the edit")
	}
	if cell.Recruitment != 5 {
		t.Fatalf("expected recruitment 5, got %g", cell.Recruitment)
	}
	if cell.Price != 100 || cell.Utilization != 0.8 || cell.Salary != 5000 {
		t.Fatalf("expected office defaults in untouched fields, got %+v", cell)
	}
}

func TestSetBaselineCellClamps(t *testing.T) {
	state := newState()

	msgs := run(t, state, "set_baseline_cell", `{"role": "sales", "level": "AM", "month": 6, "churn": -4, "utilization": 1.4}`)

	codes := map[string]bool{}
	for _, m := range msgs {
		if m.Level != model.LevelWarning {
			t.Fatalf("sanitization must warn, not fail: %+v", m)
		}
		codes[m.Code] = true
	}
	if !codes["NEGATIVE_VALUE_CLAMPED"] || !codes["UTILIZATION_CLAMPED"] {
		t.Fatalf("expected clamp warnings, got %v", msgs)
	}

	cell, _ := state.Grid.Lookup(model.RoleSales, model.LevelAM, model.Month{Year: 2026, Index: 6})
	if cell.Churn != 0 {
		t.Fatalf("expected churn clamped to 0, got %g", cell.Churn)
	}
	if cell.Utilization != 1 {
		t.Fatalf("expected utilization clamped to 1, got %g", cell.Utilization)
	}
}

func TestSetBaselineCellMonthOutOfRange(t *testing.T) {
	state := newState()

	msgs := run(t, state, "set_baseline_cell", `{"role": "consultant", "level": "C", "month": 13, "recruitment": 5}`)
	if len(msgs) != 1 || msgs[0].Code != "MONTH_OUT_OF_RANGE" || msgs[0].Level != model.LevelCritical {
		t.Fatalf("expected critical MONTH_OUT_OF_RANGE, got %v", msgs)
	}
	if state.Grid.Len() != 0 {
		t.Fatal("expected no cell written after a critical validation")
	}
}
