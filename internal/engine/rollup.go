package engine

import "workforce-engine/internal/model"

// Rollup combines an aggregated summary with the FTE level at the end of its
// period into the financial metrics. Per-FTE ratios follow the margin
// division policy: zero, not NaN, when there is no headcount.
func Rollup(sum model.SummaryRecord, endingFTE float64) model.FinancialSummary {
	fin := model.FinancialSummary{
		SummaryRecord: sum,
		EBITDA:        sum.Revenue - sum.Cost,
		EndingFTE:     endingFTE,
	}
	if endingFTE > 0 {
		fin.CostPerFTE = sum.Cost / endingFTE
		fin.RevenuePerFTE = sum.Revenue / endingFTE
	}
	return fin
}

// FinancialSeries folds over the ordered month sequence carrying the running
// FTE accumulator, seeded from the office's starting headcount and advanced
// by each month's net growth. This running level is the engine's only
// sequential state; everything else is stateless per period. The returned
// total is rolled up against the year-end FTE.
func (p *Projector) FinancialSeries() ([]model.MonthlySummary, model.FinancialSummary, error) {
	running := p.office.StartingFTE
	var total model.SummaryRecord

	months := p.period.Months()
	series := make([]model.MonthlySummary, 0, len(months))
	for _, month := range months {
		sum, err := p.AggregateMonth(month)
		if err != nil {
			return nil, model.FinancialSummary{}, err
		}
		running += sum.NetGrowth
		series = append(series, model.MonthlySummary{
			Month:     month,
			Financial: Rollup(sum, running),
		})

		total.Recruitment += sum.Recruitment
		total.Churn += sum.Churn
		total.Revenue += sum.Revenue
		total.Cost += sum.Cost
	}

	total.Finalize()
	return series, Rollup(total, running), nil
}
