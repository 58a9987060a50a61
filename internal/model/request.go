package model

import "encoding/json"

// ProjectionRequest is the engine's inbound contract: a baseline grid for one
// office and plan year, plus the scenario perturbations to apply before
// projecting. Baseline is keyed role → level → month index (1..12); cells the
// caller omits resolve through office-configuration defaults.
type ProjectionRequest struct {
	TenantID string `json:"tenant_id"`
	OfficeID string `json:"office_id"`
	Year     int    `json:"year"`

	Baseline map[Role]map[Level]map[int]BaselineCell `json:"baseline,omitempty"`

	// Levers is the flat "type.level" → multiplier form produced by
	// LeverTable.Flatten. Applied before Operations.
	Levers map[string]float64 `json:"levers,omitempty"`

	Operations []Operation `json:"operations,omitempty"`
}

// Operation is one scenario edit, dispatched by name through the operation
// registry. Properties are operation-specific.
type Operation struct {
	OperationID string          `json:"operation_id"`
	Name        string          `json:"name"`
	Properties  json.RawMessage `json:"properties"`
}
