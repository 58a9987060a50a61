// Package scenario implements the user-facing plan edits: lever changes and
// baseline cell overrides. Each operation validates business rules and
// applies copy-on-write state changes, reporting sanitized input back as
// warning messages so the UI can show inline feedback.
package scenario

import (
	"workforce-engine/internal/model"
	"workforce-engine/internal/officeregistry"
)

// State is the mutable plan snapshot an operation sequence runs against.
// Grid and Levers are copy-on-write: handlers replace the pointers, they
// never mutate the snapshots in place.
type State struct {
	Grid   *model.BaselineGrid
	Levers *model.LeverTable
	Period model.PlanPeriod
	Office officeregistry.OfficeConfig
}

// Handler defines the contract for all operation implementations.
type Handler interface {
	Validate(state *State, op *model.Operation) []model.CalculationMessage
	Apply(state *State, op *model.Operation) []model.CalculationMessage
}
