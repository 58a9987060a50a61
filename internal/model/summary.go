package model

// EffectiveCell is the lever-adjusted view of one (role, level, month).
// Derived on demand, never stored. Recruitment and churn carry the scenario
// multipliers; price, utilization, and salary pass through from the baseline
// unscaled (levers only move headcount flow and progression).
type EffectiveCell struct {
	Role        Role    `json:"role"`
	Level       Level   `json:"level"`
	Month       Month   `json:"month"`
	Recruitment float64 `json:"recruitment"`
	Churn       float64 `json:"churn"`
	Price       float64 `json:"price"`
	Utilization float64 `json:"utilization"`
	Salary      float64 `json:"salary"`
}

// SummaryRecord aggregates effective cells over some slice of the plan:
// one month, one role×level, or the whole period.
type SummaryRecord struct {
	Recruitment float64 `json:"recruitment"`
	Churn       float64 `json:"churn"`
	NetGrowth   float64 `json:"net_growth"`
	Revenue     float64 `json:"revenue"`
	Cost        float64 `json:"cost"`
	Margin      float64 `json:"margin"`
}

// MarginOf implements the division-by-zero policy: zero margin, not NaN,
// when there is no revenue.
func MarginOf(revenue, cost float64) float64 {
	if revenue > 0 {
		return (revenue - cost) / revenue
	}
	return 0
}

// Finalize fills the derived fields from the accumulated ones.
func (s *SummaryRecord) Finalize() {
	s.NetGrowth = s.Recruitment - s.Churn
	s.Margin = MarginOf(s.Revenue, s.Cost)
}

// FinancialSummary extends a SummaryRecord with the rollup metrics. EndingFTE
// is the running headcount after the period's net growth has been applied.
type FinancialSummary struct {
	SummaryRecord
	EBITDA        float64 `json:"ebitda"`
	EndingFTE     float64 `json:"ending_fte"`
	CostPerFTE    float64 `json:"cost_per_fte"`
	RevenuePerFTE float64 `json:"revenue_per_fte"`
}

// MonthlySummary pairs one plan month with its rolled-up financials.
type MonthlySummary struct {
	Month     Month            `json:"month"`
	Financial FinancialSummary `json:"financial"`
}

// RoleSummary is the role×level granularity over the whole plan period.
type RoleSummary struct {
	Role    Role          `json:"role"`
	Level   Level         `json:"level"`
	Summary SummaryRecord `json:"summary"`
}

// SummaryChange records one field that differs between the unlevered and the
// levered projection of a month. Consumed by UI change feedback.
type SummaryChange struct {
	Month    Month   `json:"month"`
	Field    string  `json:"field"`
	Baseline float64 `json:"baseline"`
	Scenario float64 `json:"scenario"`
	Delta    float64 `json:"delta"`
}
