// Package snapshotdiff compares two projections of the same plan period and
// reports every summary field the scenario moved. Consumers use the change
// list for inline "what did my levers do" feedback.
package snapshotdiff

import "workforce-engine/internal/model"

// summaryFields enumerates the compared fields in display order.
var summaryFields = []struct {
	name string
	get  func(model.FinancialSummary) float64
}{
	{"recruitment", func(f model.FinancialSummary) float64 { return f.Recruitment }},
	{"churn", func(f model.FinancialSummary) float64 { return f.Churn }},
	{"net_growth", func(f model.FinancialSummary) float64 { return f.NetGrowth }},
	{"revenue", func(f model.FinancialSummary) float64 { return f.Revenue }},
	{"cost", func(f model.FinancialSummary) float64 { return f.Cost }},
	{"margin", func(f model.FinancialSummary) float64 { return f.Margin }},
	{"ebitda", func(f model.FinancialSummary) float64 { return f.EBITDA }},
	{"ending_fte", func(f model.FinancialSummary) float64 { return f.EndingFTE }},
}

// Compare walks both month series in order and emits one change record per
// field that differs. Months present in only one series are compared against
// the zero summary.
func Compare(baseline, scen []model.MonthlySummary) []model.SummaryChange {
	var changes []model.SummaryChange

	n := len(baseline)
	if len(scen) > n {
		n = len(scen)
	}
	for i := 0; i < n; i++ {
		var base, s model.MonthlySummary
		if i < len(baseline) {
			base = baseline[i]
		}
		if i < len(scen) {
			s = scen[i]
		}
		month := base.Month
		if i >= len(baseline) {
			month = s.Month
		}
		for _, field := range summaryFields {
			before := field.get(base.Financial)
			after := field.get(s.Financial)
			if before == after {
				continue
			}
			changes = append(changes, model.SummaryChange{
				Month:    month,
				Field:    field.name,
				Baseline: before,
				Scenario: after,
				Delta:    after - before,
			})
		}
	}
	return changes
}

// Invert flips a change list's direction, yielding the records that would
// take the scenario back to the baseline.
func Invert(changes []model.SummaryChange) []model.SummaryChange {
	out := make([]model.SummaryChange, len(changes))
	for i, c := range changes {
		out[i] = model.SummaryChange{
			Month:    c.Month,
			Field:    c.Field,
			Baseline: c.Scenario,
			Scenario: c.Baseline,
			Delta:    -c.Delta,
		}
	}
	return out
}
