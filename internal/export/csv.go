// Package export serializes projection output for the spreadsheet/export
// collaborator.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"workforce-engine/internal/model"
)

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteMonths writes the monthly financial series as CSV, one row per month.
func WriteMonths(w io.Writer, months []model.MonthlySummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"month", "recruitment", "churn", "net_growth",
		"revenue", "cost", "margin", "ebitda",
		"ending_fte", "cost_per_fte", "revenue_per_fte",
	}); err != nil {
		return err
	}
	for _, m := range months {
		f := m.Financial
		row := []string{
			m.Month.String(),
			formatNumber(f.Recruitment),
			formatNumber(f.Churn),
			formatNumber(f.NetGrowth),
			formatNumber(f.Revenue),
			formatNumber(f.Cost),
			formatNumber(f.Margin),
			formatNumber(f.EBITDA),
			formatNumber(f.EndingFTE),
			formatNumber(f.CostPerFTE),
			formatNumber(f.RevenuePerFTE),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRoles writes the role×level matrix as CSV, one row per combination.
func WriteRoles(w io.Writer, roles []model.RoleSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"role", "level", "recruitment", "churn", "net_growth",
		"revenue", "cost", "margin",
	}); err != nil {
		return err
	}
	for _, r := range roles {
		s := r.Summary
		row := []string{
			r.Role.String(),
			r.Level.String(),
			formatNumber(s.Recruitment),
			formatNumber(s.Churn),
			formatNumber(s.NetGrowth),
			formatNumber(s.Revenue),
			formatNumber(s.Cost),
			formatNumber(s.Margin),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
