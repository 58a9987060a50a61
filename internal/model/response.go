package model

type ProjectionResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   ProjectionResult    `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	TenantID               string `json:"tenant_id"`
	OfficeID               string `json:"office_id"`
	PlanYear               int    `json:"plan_year"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type ProjectionResult struct {
	Messages   []CalculationMessage `json:"messages"`
	Operations []ProcessedOperation `json:"operations"`

	// Levers echoes the effective multiplier table after all operations,
	// in its flat wire form.
	Levers map[string]float64 `json:"levers"`

	Months      []MonthlySummary     `json:"months"`
	Roles       []RoleSummary        `json:"roles"`
	Total       FinancialSummary     `json:"total"`
	Progression []ProgressionOutlook `json:"progression"`

	// BaselineDelta lists every summary field the scenario moved away from
	// the unlevered projection.
	BaselineDelta []SummaryChange `json:"baseline_delta"`
}

type ProcessedOperation struct {
	Operation                 Operation `json:"operation"`
	CalculationMessageIndexes []int     `json:"calculation_message_indexes,omitempty"`
}

// ProgressionOutlook is the per-level view of the adjusted progression model.
type ProgressionOutlook struct {
	Level          Level               `json:"level"`
	Multiplier     float64             `json:"multiplier"`
	Buckets        []BucketProbability `json:"buckets"`
	ExpectedMonths int                 `json:"expected_months"`
	// Indeterminate is set when every adjusted probability is zero: no
	// expected time on level can be derived. Distinct from instant
	// progression.
	Indeterminate bool `json:"indeterminate"`
}

type BucketProbability struct {
	Bucket   int     `json:"bucket"`
	Base     float64 `json:"base"`
	Adjusted float64 `json:"adjusted"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
