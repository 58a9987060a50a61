package scenario

import (
	"fmt"

	json "github.com/goccy/go-json"

	"workforce-engine/internal/model"
)

type resetLeversProps struct {
	Lever string `json:"lever"`
}

type ResetLeversHandler struct{}

func (h *ResetLeversHandler) Validate(state *State, op *model.Operation) []model.CalculationMessage {
	var props resetLeversProps
	json.Unmarshal(op.Properties, &props)

	if _, ok := model.ParseLeverType(props.Lever); !ok {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    "UNKNOWN_LEVER_TYPE",
			Message: fmt.Sprintf("Unknown lever type %q", props.Lever),
		}}
	}
	return nil
}

// Apply restores the identity multiplier for every level of the lever type.
func (h *ResetLeversHandler) Apply(state *State, op *model.Operation) []model.CalculationMessage {
	var props resetLeversProps
	json.Unmarshal(op.Properties, &props)

	lt, _ := model.ParseLeverType(props.Lever)
	state.Levers = state.Levers.WithReset(lt)
	return nil
}
