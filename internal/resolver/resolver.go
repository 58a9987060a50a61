// Package resolver turns baseline cells into effective cells by applying the
// scenario lever multipliers. Resolution is a pure function of the grid and
// lever snapshots the resolver was built with.
package resolver

import (
	"fmt"

	"workforce-engine/internal/model"
	"workforce-engine/internal/officeregistry"
)

// ConfigurationError signals an invalid (role, level) combination or missing
// office configuration. Caller-fatal, never retried.
type ConfigurationError struct {
	Role  model.Role
	Level model.Level
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("level %s does not exist on the %s ladder", e.Level, e.Role)
}

// OutOfRangeError signals a month outside the configured plan period. Fatal
// for that query only; other computations proceed.
type OutOfRangeError struct {
	Month  model.Month
	Period model.PlanPeriod
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("month %s is outside plan year %d", e.Month, e.Period.Year)
}

type Resolver struct {
	grid   *model.BaselineGrid
	levers *model.LeverTable
	office officeregistry.OfficeConfig
	period model.PlanPeriod
}

func New(grid *model.BaselineGrid, levers *model.LeverTable, office officeregistry.OfficeConfig, period model.PlanPeriod) *Resolver {
	return &Resolver{grid: grid, levers: levers, office: office, period: period}
}

// GridVersion and LeverVersion expose the snapshot versions, used as
// memoization key components by callers.
func (r *Resolver) GridVersion() uint64  { return r.grid.Version() }
func (r *Resolver) LeverVersion() uint64 { return r.levers.Version() }

// Resolve returns the effective cell for (role, level, month). A missing
// baseline cell is not an error: price, utilization, and salary fall back to
// the office defaults with zero recruitment and churn. Recruitment and churn
// carry the level's lever multipliers; the remaining fields pass through
// unscaled.
func (r *Resolver) Resolve(role model.Role, level model.Level, month model.Month) (model.EffectiveCell, error) {
	if !model.ValidCombination(role, level) {
		return model.EffectiveCell{}, &ConfigurationError{Role: role, Level: level}
	}
	if !r.period.Contains(month) {
		return model.EffectiveCell{}, &OutOfRangeError{Month: month, Period: r.period}
	}

	base, ok := r.grid.Lookup(role, level, month)
	if !ok {
		base = model.BaselineCell{
			Price:       r.office.HourlyRate,
			Utilization: r.office.Utilization,
			Salary:      r.office.MonthlySalary,
		}
	}

	return model.EffectiveCell{
		Role:        role,
		Level:       level,
		Month:       month,
		Recruitment: base.Recruitment * r.levers.Multiplier(model.LeverRecruitment, level),
		Churn:       base.Churn * r.levers.Multiplier(model.LeverChurn, level),
		Price:       base.Price,
		Utilization: base.Utilization,
		Salary:      base.Salary,
	}, nil
}
