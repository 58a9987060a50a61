package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"workforce-engine/internal/model"
	"workforce-engine/internal/officeregistry"
	"workforce-engine/internal/progression"
	"workforce-engine/internal/scenario"
	"workforce-engine/internal/snapshotdiff"
)

// Process runs one projection calculation: ingest the baseline grid and
// lever map, apply the scenario operations in order, then derive the
// monthly, role, and total summaries plus the financial rollup, progression
// outlook, and baseline-vs-scenario delta.
func Process(req *model.ProjectionRequest) *model.ProjectionResponse {
	start := time.Now()

	office := officeregistry.Get(req.OfficeID)
	period := model.PlanPeriod{Year: req.Year}

	var allMessages []model.CalculationMessage
	hasCritical := false

	record := func(msgs []model.CalculationMessage) []int {
		var indexes []int
		for _, m := range msgs {
			m.ID = len(allMessages)
			allMessages = append(allMessages, m)
			indexes = append(indexes, m.ID)
			if m.Level == model.LevelCritical {
				hasCritical = true
			}
		}
		return indexes
	}

	if req.Year < 1970 || req.Year > 2200 {
		record([]model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    "INVALID_PLAN_YEAR",
			Message: fmt.Sprintf("Plan year %d is not a usable calendar year", req.Year),
		}})
	}

	var (
		baselineGrid *model.BaselineGrid
		state        *scenario.State
		processedOps []model.ProcessedOperation
	)

	if !hasCritical {
		var gridMsgs []model.CalculationMessage
		baselineGrid, gridMsgs = ingestBaseline(req, period)
		record(gridMsgs)
	}

	if !hasCritical {
		levers, leverMsgs := model.LeverTableFromFlat(req.Levers)
		record(leverMsgs)

		state = &scenario.State{
			Grid:   baselineGrid,
			Levers: levers,
			Period: period,
			Office: office,
		}

		for _, op := range req.Operations {
			handler, ok := scenario.Get(op.Name)
			if !ok {
				indexes := record([]model.CalculationMessage{{
					Level:   model.LevelCritical,
					Code:    "UNKNOWN_OPERATION",
					Message: fmt.Sprintf("Unknown operation: %s", op.Name),
				}})
				processedOps = append(processedOps, model.ProcessedOperation{
					Operation:                 op,
					CalculationMessageIndexes: indexes,
				})
				break
			}

			indexes := record(handler.Validate(state, &op))
			if hasCritical {
				processedOps = append(processedOps, model.ProcessedOperation{
					Operation:                 op,
					CalculationMessageIndexes: indexes,
				})
				break
			}

			indexes = append(indexes, record(handler.Apply(state, &op))...)
			processedOps = append(processedOps, model.ProcessedOperation{
				Operation:                 op,
				CalculationMessageIndexes: indexes,
			})
			if hasCritical {
				break
			}
		}
	}

	var result model.ProjectionResult
	if !hasCritical {
		result, hasCritical = project(baselineGrid, state, office, period, record)
	}

	outcome := model.OutcomeSuccess
	if hasCritical {
		outcome = model.OutcomeFailure
	}

	if allMessages == nil {
		allMessages = []model.CalculationMessage{}
	}
	result.Messages = allMessages
	result.Operations = processedOps

	elapsed := time.Since(start)
	now := time.Now().UTC()

	return &model.ProjectionResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			TenantID:               req.TenantID,
			OfficeID:               req.OfficeID,
			PlanYear:               req.Year,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: result,
	}
}

// project derives every outbound summary from the final plan state. The
// unlevered ingested grid provides the comparison baseline for the delta.
func project(baselineGrid *model.BaselineGrid, state *scenario.State, office officeregistry.OfficeConfig, period model.PlanPeriod, record func([]model.CalculationMessage) []int) (model.ProjectionResult, bool) {
	fail := func(err error) (model.ProjectionResult, bool) {
		record([]model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    "PROJECTION_FAILED",
			Message: err.Error(),
		}})
		return model.ProjectionResult{}, true
	}

	weight := float64(office.OfficeCount)
	scenProj := NewProjector(state.Grid, state.Levers, office, period, weight)
	baseProj := NewProjector(baselineGrid, model.NewLeverTable(), office, period, weight)

	months, total, err := scenProj.FinancialSeries()
	if err != nil {
		return fail(err)
	}
	baseMonths, _, err := baseProj.FinancialSeries()
	if err != nil {
		return fail(err)
	}

	var roles []model.RoleSummary
	for _, role := range model.Roles() {
		for _, level := range model.LevelsFor(role) {
			sum, err := scenProj.AggregateRole(role, level)
			if err != nil {
				return fail(err)
			}
			roles = append(roles, model.RoleSummary{Role: role, Level: level, Summary: sum})
		}
	}

	prog := progression.Default()
	var outlooks []model.ProgressionOutlook
	for _, level := range model.AllLevels() {
		multiplier := state.Levers.Multiplier(model.LeverProgression, level)
		outlooks = append(outlooks, prog.Outlook(level, multiplier))
	}

	return model.ProjectionResult{
		Levers:        state.Levers.Flatten(),
		Months:        months,
		Roles:         roles,
		Total:         total,
		Progression:   outlooks,
		BaselineDelta: snapshotdiff.Compare(baseMonths, months),
	}, false
}

// ingestBaseline loads the request grid, walking the dimension tables in
// canonical order so message output is deterministic. Invalid combinations
// and month indexes are critical; out-of-range values are sanitized with a
// warning, per the boundary-validation policy.
func ingestBaseline(req *model.ProjectionRequest, period model.PlanPeriod) (*model.BaselineGrid, []model.CalculationMessage) {
	grid := model.NewBaselineGrid()
	var msgs []model.CalculationMessage

	for _, role := range model.Roles() {
		byLevel, ok := req.Baseline[role]
		if !ok {
			continue
		}
		for level := range byLevel {
			if !model.ValidCombination(role, level) {
				msgs = append(msgs, model.CalculationMessage{
					Level:   model.LevelCritical,
					Code:    "INVALID_ROLE_LEVEL",
					Message: fmt.Sprintf("Baseline contains level %s on the %s ladder", level, role),
				})
				return grid, msgs
			}
		}
		for _, level := range model.LevelsFor(role) {
			byMonth, ok := byLevel[level]
			if !ok {
				continue
			}
			indexes := make([]int, 0, len(byMonth))
			for index := range byMonth {
				indexes = append(indexes, index)
			}
			sort.Ints(indexes)
			for _, index := range indexes {
				month := model.Month{Year: period.Year, Index: index}
				if !period.Contains(month) {
					msgs = append(msgs, model.CalculationMessage{
						Level:   model.LevelCritical,
						Code:    "MONTH_OUT_OF_RANGE",
						Message: fmt.Sprintf("Baseline month index %d is outside plan year %d", index, period.Year),
					})
					return grid, msgs
				}
				sanitized, cellMsgs := sanitizeCell(role, level, month, byMonth[index])
				msgs = append(msgs, cellMsgs...)
				grid = grid.WithCell(role, level, month, sanitized)
			}
		}
	}
	return grid, msgs
}

func sanitizeCell(role model.Role, level model.Level, month model.Month, cell model.BaselineCell) (model.BaselineCell, []model.CalculationMessage) {
	var msgs []model.CalculationMessage
	clampNonNegative := func(field string, v *float64) {
		if *v < 0 {
			msgs = append(msgs, model.CalculationMessage{
				Level:   model.LevelWarning,
				Code:    "NEGATIVE_VALUE_CLAMPED",
				Message: fmt.Sprintf("Baseline %s for %s/%s/%s clamped from %g to 0", field, role, level, month, *v),
			})
			*v = 0
		}
	}
	clampNonNegative("recruitment", &cell.Recruitment)
	clampNonNegative("churn", &cell.Churn)
	clampNonNegative("price", &cell.Price)
	clampNonNegative("salary", &cell.Salary)

	if cell.Utilization < 0 || cell.Utilization > 1 {
		clamped := cell.Utilization
		if clamped < 0 {
			clamped = 0
		} else {
			clamped = 1
		}
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    "UTILIZATION_CLAMPED",
			Message: fmt.Sprintf("Baseline utilization for %s/%s/%s clamped from %g to %g", role, level, month, cell.Utilization, clamped),
		})
		cell.Utilization = clamped
	}
	return cell, msgs
}
