// Package engine derives workforce and financial projections from a plan
// snapshot: per-month, per-role×level, and grand-total summaries, plus the
// financial rollup carrying the running FTE level across the year.
package engine

import (
	"math"

	"workforce-engine/internal/model"
	"workforce-engine/internal/officeregistry"
	"workforce-engine/internal/resolver"
)

type memoKey struct {
	Role     model.Role
	Level    model.Level
	Month    model.Month
	GridVer  uint64
	LeverVer uint64
}

// Projector aggregates effective cells over a fixed plan snapshot. All
// aggregation is a pure function of the snapshot; the memo cache only avoids
// re-resolving unchanged cells and never affects results.
type Projector struct {
	res    *resolver.Resolver
	office officeregistry.OfficeConfig
	period model.PlanPeriod
	weight float64
	memo   map[memoKey]model.EffectiveCell
}

// NewProjector builds a projector over the given snapshots. fteWeight is the
// headcount multiplier for aggregated views (an aggregated multi-office view
// passes its office count); anything not positive means 1.
func NewProjector(grid *model.BaselineGrid, levers *model.LeverTable, office officeregistry.OfficeConfig, period model.PlanPeriod, fteWeight float64) *Projector {
	if fteWeight <= 0 {
		fteWeight = 1
	}
	return &Projector{
		res:    resolver.New(grid, levers, office, period),
		office: office,
		period: period,
		weight: fteWeight,
		memo:   map[memoKey]model.EffectiveCell{},
	}
}

func (p *Projector) cell(role model.Role, level model.Level, month model.Month) (model.EffectiveCell, error) {
	key := memoKey{
		Role:     role,
		Level:    level,
		Month:    month,
		GridVer:  p.res.GridVersion(),
		LeverVer: p.res.LeverVersion(),
	}
	if c, ok := p.memo[key]; ok {
		return c, nil
	}
	c, err := p.res.Resolve(role, level, month)
	if err != nil {
		return model.EffectiveCell{}, err
	}
	p.memo[key] = c
	return c, nil
}

// nz guards the accumulators against NaN sneaking past the input boundary.
func nz(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}

func (p *Projector) accumulate(sum *model.SummaryRecord, c model.EffectiveCell) {
	sum.Recruitment += nz(c.Recruitment)
	sum.Churn += nz(c.Churn)
	sum.Revenue += nz(c.Price) * nz(c.Utilization) * p.office.StandardMonthlyHours * p.weight
	sum.Cost += nz(c.Salary) * p.weight
}

// AggregateMonth sums every valid (role, level) cell for the month.
func (p *Projector) AggregateMonth(month model.Month) (model.SummaryRecord, error) {
	var sum model.SummaryRecord
	for _, role := range model.Roles() {
		for _, level := range model.LevelsFor(role) {
			c, err := p.cell(role, level, month)
			if err != nil {
				return model.SummaryRecord{}, err
			}
			p.accumulate(&sum, c)
		}
	}
	sum.Finalize()
	return sum, nil
}

// AggregateRole sums one role×level across every month of the plan period.
func (p *Projector) AggregateRole(role model.Role, level model.Level) (model.SummaryRecord, error) {
	var sum model.SummaryRecord
	for _, month := range p.period.Months() {
		c, err := p.cell(role, level, month)
		if err != nil {
			return model.SummaryRecord{}, err
		}
		p.accumulate(&sum, c)
	}
	sum.Finalize()
	return sum, nil
}

// AggregateTotal sums the whole plan period. Built as the sum of the monthly
// aggregates so the additivity property holds by construction.
func (p *Projector) AggregateTotal() (model.SummaryRecord, error) {
	var total model.SummaryRecord
	for _, month := range p.period.Months() {
		s, err := p.AggregateMonth(month)
		if err != nil {
			return model.SummaryRecord{}, err
		}
		total.Recruitment += s.Recruitment
		total.Churn += s.Churn
		total.Revenue += s.Revenue
		total.Cost += s.Cost
	}
	total.Finalize()
	return total, nil
}
