package model

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// LeverType selects which baseline flow a scenario multiplier perturbs.
type LeverType uint8

const (
	LeverRecruitment LeverType = iota
	LeverChurn
	LeverProgression

	leverTypeCount
)

var leverNames = [...]string{
	LeverRecruitment: "recruitment",
	LeverChurn:       "churn",
	LeverProgression: "progression",
}

func (t LeverType) String() string {
	if int(t) < len(leverNames) {
		return leverNames[t]
	}
	return "unknown"
}

func (t LeverType) MarshalText() ([]byte, error) {
	if int(t) >= len(leverNames) {
		return nil, fmt.Errorf("unknown lever type value %d", t)
	}
	return []byte(leverNames[t]), nil
}

func (t *LeverType) UnmarshalText(b []byte) error {
	parsed, ok := ParseLeverType(string(b))
	if !ok {
		return fmt.Errorf("unknown lever type %q", string(b))
	}
	*t = parsed
	return nil
}

func ParseLeverType(s string) (LeverType, bool) {
	for i, name := range leverNames {
		if name == s {
			return LeverType(i), true
		}
	}
	return 0, false
}

func LeverTypes() []LeverType {
	return []LeverType{LeverRecruitment, LeverChurn, LeverProgression}
}

const (
	// DefaultMultiplier is the identity lever value.
	DefaultMultiplier = 1.0
	// MaxMultiplier bounds every lever value; the valid range is [0, MaxMultiplier].
	MaxMultiplier = 2.0
)

// SanitizeMultiplier normalizes a raw lever value into [0, MaxMultiplier].
// Non-finite input falls back to the identity multiplier. The second return
// reports whether the input was adjusted. This is the single validation
// boundary for multipliers: code past it may assume well-formed values.
func SanitizeMultiplier(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return DefaultMultiplier, true
	}
	if v < 0 {
		return 0, true
	}
	if v > MaxMultiplier {
		return MaxMultiplier, true
	}
	return v, false
}

type leverKey struct {
	Type  LeverType
	Level Level
}

// LeverTable is the sparse scenario multiplier map. Missing entries read as
// the identity multiplier. The table is copy-on-write with a version counter,
// so concurrent readers never observe a half-applied edit.
type LeverTable struct {
	version uint64
	values  map[leverKey]float64
}

func NewLeverTable() *LeverTable {
	return &LeverTable{values: map[leverKey]float64{}}
}

func (t *LeverTable) Version() uint64 { return t.version }

// Multiplier returns the effective multiplier for (leverType, level).
func (t *LeverTable) Multiplier(lt LeverType, level Level) float64 {
	if v, ok := t.values[leverKey{Type: lt, Level: level}]; ok {
		return v
	}
	return DefaultMultiplier
}

// WithValue returns a new table holding the sanitized value for the key,
// the value actually stored, and whether the input was adjusted. Non-finite
// input is rejected outright: the previous valid value stays in effect.
func (t *LeverTable) WithValue(lt LeverType, level Level, value float64) (*LeverTable, float64, bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return t, t.Multiplier(lt, level), true
	}
	stored, adjusted := SanitizeMultiplier(value)
	next := t.clone()
	next.values[leverKey{Type: lt, Level: level}] = stored
	return next, stored, adjusted
}

// WithReset returns a new table with every level of the lever type restored
// to the identity multiplier.
func (t *LeverTable) WithReset(lt LeverType) *LeverTable {
	next := t.clone()
	for k := range next.values {
		if k.Type == lt {
			delete(next.values, k)
		}
	}
	return next
}

func (t *LeverTable) clone() *LeverTable {
	next := &LeverTable{
		version: t.version + 1,
		values:  make(map[leverKey]float64, len(t.values)),
	}
	for k, v := range t.values {
		next.values[k] = v
	}
	return next
}

// Flatten serializes the table to a flat "type.level" → value map, the wire
// and persistence form used by scenario requests.
func (t *LeverTable) Flatten() map[string]float64 {
	out := make(map[string]float64, len(t.values))
	for k, v := range t.values {
		out[k.Type.String()+"."+k.Level.String()] = v
	}
	return out
}

// LeverTableFromFlat rebuilds a table from its Flatten form. Unknown keys and
// out-of-range values are sanitized rather than rejected; each adjustment is
// reported back for UI feedback.
func LeverTableFromFlat(flat map[string]float64) (*LeverTable, []CalculationMessage) {
	table := NewLeverTable()
	var msgs []CalculationMessage

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		raw := flat[key]
		parts := strings.SplitN(key, ".", 2)
		if len(parts) != 2 {
			msgs = append(msgs, CalculationMessage{
				Level:   LevelWarning,
				Code:    "UNKNOWN_LEVER_KEY",
				Message: fmt.Sprintf("Ignoring malformed lever key %q", key),
			})
			continue
		}
		lt, okType := ParseLeverType(parts[0])
		lvl, okLevel := ParseLevel(parts[1])
		if !okType || !okLevel {
			msgs = append(msgs, CalculationMessage{
				Level:   LevelWarning,
				Code:    "UNKNOWN_LEVER_KEY",
				Message: fmt.Sprintf("Ignoring unknown lever key %q", key),
			})
			continue
		}
		if math.IsNaN(raw) || math.IsInf(raw, 0) {
			// No previous value exists during ingestion: fall back to identity.
			msgs = append(msgs, CalculationMessage{
				Level:   LevelWarning,
				Code:    "NON_NUMERIC_MULTIPLIER",
				Message: fmt.Sprintf("Lever %s is not a finite number, using %.1f", key, DefaultMultiplier),
			})
			continue
		}
		var adjusted bool
		table, _, adjusted = table.WithValue(lt, lvl, raw)
		if adjusted {
			msgs = append(msgs, CalculationMessage{
				Level:   LevelWarning,
				Code:    "MULTIPLIER_CLAMPED",
				Message: fmt.Sprintf("Lever %s value %g clamped into [0, %g]", key, raw, MaxMultiplier),
			})
		}
	}
	return table, msgs
}
