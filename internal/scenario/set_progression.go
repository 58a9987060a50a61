package scenario

import (
	"fmt"

	json "github.com/goccy/go-json"

	"workforce-engine/internal/model"
)

type setProgressionProps struct {
	Level string          `json:"level"`
	Value json.RawMessage `json:"value"`
}

// SetProgressionMultiplierHandler scales a level's progression probabilities.
// The multiplier obeys the same [0, 2] range as the flow levers; the
// probability clamp at 1.0 happens later, inside the progression model.
type SetProgressionMultiplierHandler struct{}

func (h *SetProgressionMultiplierHandler) Validate(state *State, op *model.Operation) []model.CalculationMessage {
	var props setProgressionProps
	json.Unmarshal(op.Properties, &props)

	if _, ok := model.ParseLevel(props.Level); !ok {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    "UNKNOWN_LEVEL",
			Message: fmt.Sprintf("Unknown level %q", props.Level),
		}}
	}
	return nil
}

func (h *SetProgressionMultiplierHandler) Apply(state *State, op *model.Operation) []model.CalculationMessage {
	var props setProgressionProps
	json.Unmarshal(op.Properties, &props)

	level, _ := model.ParseLevel(props.Level)
	return applyLeverValue(state, model.LeverProgression, level, props.Value)
}
