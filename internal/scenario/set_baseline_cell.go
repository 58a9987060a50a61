package scenario

import (
	"fmt"
	"math"

	json "github.com/goccy/go-json"

	"workforce-engine/internal/model"
)

type setBaselineCellProps struct {
	Role  string `json:"role"`
	Level string `json:"level"`
	Month int    `json:"month"`

	// Omitted fields keep their current value.
	Recruitment *float64 `json:"recruitment,omitempty"`
	Churn       *float64 `json:"churn,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Utilization *float64 `json:"utilization,omitempty"`
	Salary      *float64 `json:"salary,omitempty"`
}

type SetBaselineCellHandler struct{}

func (h *SetBaselineCellHandler) Validate(state *State, op *model.Operation) []model.CalculationMessage {
	var props setBaselineCellProps
	json.Unmarshal(op.Properties, &props)

	role, okRole := model.ParseRole(props.Role)
	level, okLevel := model.ParseLevel(props.Level)
	if !okRole || !okLevel {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    "UNKNOWN_ROLE_OR_LEVEL",
			Message: fmt.Sprintf("Unknown role %q or level %q", props.Role, props.Level),
		}}
	}
	if !model.ValidCombination(role, level) {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    "INVALID_ROLE_LEVEL",
			Message: fmt.Sprintf("Level %s does not exist on the %s ladder", level, role),
		}}
	}
	month := model.Month{Year: state.Period.Year, Index: props.Month}
	if !state.Period.Contains(month) {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    "MONTH_OUT_OF_RANGE",
			Message: fmt.Sprintf("Month index %d is outside plan year %d", props.Month, state.Period.Year),
		}}
	}
	return nil
}

func (h *SetBaselineCellHandler) Apply(state *State, op *model.Operation) []model.CalculationMessage {
	var props setBaselineCellProps
	json.Unmarshal(op.Properties, &props)

	role, _ := model.ParseRole(props.Role)
	level, _ := model.ParseLevel(props.Level)
	month := model.Month{Year: state.Period.Year, Index: props.Month}

	cell, ok := state.Grid.Lookup(role, level, month)
	if !ok {
		// Seed the superseding cell from the office defaults the resolver
		// would otherwise fall back to.
		cell = model.BaselineCell{
			Price:       state.Office.HourlyRate,
			Utilization: state.Office.Utilization,
			Salary:      state.Office.MonthlySalary,
		}
	}

	var msgs []model.CalculationMessage
	setNonNegative := func(field string, dst *float64, v *float64) {
		if v == nil {
			return
		}
		if math.IsNaN(*v) || math.IsInf(*v, 0) {
			msgs = append(msgs, model.CalculationMessage{
				Level:   model.LevelWarning,
				Code:    "NON_NUMERIC_VALUE",
				Message: fmt.Sprintf("Baseline %s for %s/%s/%s is not a finite number, keeping %g", field, role, level, month, *dst),
			})
			return
		}
		if *v < 0 {
			msgs = append(msgs, model.CalculationMessage{
				Level:   model.LevelWarning,
				Code:    "NEGATIVE_VALUE_CLAMPED",
				Message: fmt.Sprintf("Baseline %s for %s/%s/%s clamped from %g to 0", field, role, level, month, *v),
			})
			*dst = 0
			return
		}
		*dst = *v
	}

	setNonNegative("recruitment", &cell.Recruitment, props.Recruitment)
	setNonNegative("churn", &cell.Churn, props.Churn)
	setNonNegative("price", &cell.Price, props.Price)
	setNonNegative("salary", &cell.Salary, props.Salary)

	if props.Utilization != nil {
		u := *props.Utilization
		switch {
		case math.IsNaN(u) || math.IsInf(u, 0):
			msgs = append(msgs, model.CalculationMessage{
				Level:   model.LevelWarning,
				Code:    "NON_NUMERIC_VALUE",
				Message: fmt.Sprintf("Baseline utilization for %s/%s/%s is not a finite number, keeping %g", role, level, month, cell.Utilization),
			})
		case u < 0 || u > 1:
			clamped := math.Min(math.Max(u, 0), 1)
			msgs = append(msgs, model.CalculationMessage{
				Level:   model.LevelWarning,
				Code:    "UTILIZATION_CLAMPED",
				Message: fmt.Sprintf("Baseline utilization for %s/%s/%s clamped from %g to %g", role, level, month, u, clamped),
			})
			cell.Utilization = clamped
		default:
			cell.Utilization = u
		}
	}

	state.Grid = state.Grid.WithCell(role, level, month, cell)
	return msgs
}
