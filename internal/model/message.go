package model

// CalculationMessage reports a validation or processing finding to the
// caller. IDs are assigned globally per calculation, in emission order.
type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)
