package scenario

import (
	"fmt"

	json "github.com/goccy/go-json"

	"workforce-engine/internal/model"
)

type setLeverProps struct {
	Lever string          `json:"lever"`
	Level string          `json:"level"`
	Value json.RawMessage `json:"value"`
}

type SetLeverHandler struct{}

func (h *SetLeverHandler) Validate(state *State, op *model.Operation) []model.CalculationMessage {
	var props setLeverProps
	json.Unmarshal(op.Properties, &props)

	var msgs []model.CalculationMessage
	if _, ok := model.ParseLeverType(props.Lever); !ok {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    "UNKNOWN_LEVER_TYPE",
			Message: fmt.Sprintf("Unknown lever type %q", props.Lever),
		})
		return msgs
	}
	if _, ok := model.ParseLevel(props.Level); !ok {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    "UNKNOWN_LEVEL",
			Message: fmt.Sprintf("Unknown level %q", props.Level),
		})
	}
	return msgs
}

func (h *SetLeverHandler) Apply(state *State, op *model.Operation) []model.CalculationMessage {
	var props setLeverProps
	json.Unmarshal(op.Properties, &props)

	lt, _ := model.ParseLeverType(props.Lever)
	level, _ := model.ParseLevel(props.Level)
	return applyLeverValue(state, lt, level, props.Value)
}

// applyLeverValue is the shared clamp-and-warn path for lever edits. A value
// that does not decode as a number leaves the previous valid multiplier in
// effect; an out-of-range value is clamped into the valid range. Both are
// reported as warnings, never as failures.
func applyLeverValue(state *State, lt model.LeverType, level model.Level, raw json.RawMessage) []model.CalculationMessage {
	var value float64
	if err := json.Unmarshal(raw, &value); err != nil {
		return []model.CalculationMessage{{
			Level: model.LevelWarning,
			Code:  "NON_NUMERIC_MULTIPLIER",
			Message: fmt.Sprintf("Lever %s.%s value %s is not numeric, previous value %g remains in effect",
				lt, level, string(raw), state.Levers.Multiplier(lt, level)),
		}}
	}

	next, stored, adjusted := state.Levers.WithValue(lt, level, value)
	state.Levers = next
	if adjusted {
		return []model.CalculationMessage{{
			Level: model.LevelWarning,
			Code:  "MULTIPLIER_CLAMPED",
			Message: fmt.Sprintf("Lever %s.%s value %g sanitized to %g",
				lt, level, value, stored),
		}}
	}
	return nil
}
