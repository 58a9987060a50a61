package model

import (
	"fmt"
	"strconv"
)

// Role is a closed enumeration of the workforce roles a plan covers.
type Role uint8

const (
	RoleConsultant Role = iota
	RoleSales
	RoleRecruitment
	RoleOperations

	roleCount
)

var roleNames = [...]string{
	RoleConsultant:  "consultant",
	RoleSales:       "sales",
	RoleRecruitment: "recruitment",
	RoleOperations:  "operations",
}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "unknown"
}

func (r Role) MarshalText() ([]byte, error) {
	if int(r) >= len(roleNames) {
		return nil, fmt.Errorf("unknown role value %d", r)
	}
	return []byte(roleNames[r]), nil
}

func (r *Role) UnmarshalText(b []byte) error {
	parsed, ok := ParseRole(string(b))
	if !ok {
		return fmt.Errorf("unknown role %q", string(b))
	}
	*r = parsed
	return nil
}

func ParseRole(s string) (Role, bool) {
	for i, name := range roleNames {
		if name == s {
			return Role(i), true
		}
	}
	return 0, false
}

// Roles lists every role in display order.
func Roles() []Role {
	return []Role{RoleConsultant, RoleSales, RoleRecruitment, RoleOperations}
}

// Level is a closed enumeration of seniority grades.
type Level uint8

const (
	LevelA Level = iota
	LevelAC
	LevelC
	LevelSrC
	LevelAM
	LevelM
	LevelSrM
	LevelPiP

	levelCount
)

var levelNames = [...]string{
	LevelA:   "A",
	LevelAC:  "AC",
	LevelC:   "C",
	LevelSrC: "SrC",
	LevelAM:  "AM",
	LevelM:   "M",
	LevelSrM: "SrM",
	LevelPiP: "PiP",
}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

func (l Level) MarshalText() ([]byte, error) {
	if int(l) >= len(levelNames) {
		return nil, fmt.Errorf("unknown level value %d", l)
	}
	return []byte(levelNames[l]), nil
}

func (l *Level) UnmarshalText(b []byte) error {
	parsed, ok := ParseLevel(string(b))
	if !ok {
		return fmt.Errorf("unknown level %q", string(b))
	}
	*l = parsed
	return nil
}

func ParseLevel(s string) (Level, bool) {
	for i, name := range levelNames {
		if name == s {
			return Level(i), true
		}
	}
	return 0, false
}

// AllLevels lists every grade in ladder order.
func AllLevels() []Level {
	return []Level{LevelA, LevelAC, LevelC, LevelSrC, LevelAM, LevelM, LevelSrM, LevelPiP}
}

// roleLevels defines which grades exist per role. Invalid combinations are
// rejected at construction, not at access time. Operations runs a flat team
// and is planned under the single pseudo-level C.
var roleLevels = [roleCount][]Level{
	RoleConsultant:  {LevelA, LevelAC, LevelC, LevelSrC, LevelM, LevelSrM, LevelPiP},
	RoleSales:       {LevelA, LevelAC, LevelAM, LevelM, LevelSrM},
	RoleRecruitment: {LevelA, LevelAC, LevelC, LevelM},
	RoleOperations:  {LevelC},
}

// LevelsFor returns the valid grades for a role in ladder order.
func LevelsFor(role Role) []Level {
	if int(role) >= len(roleLevels) {
		return nil
	}
	return roleLevels[role]
}

// ValidCombination reports whether level exists on the role's ladder.
func ValidCombination(role Role, level Level) bool {
	for _, l := range LevelsFor(role) {
		if l == level {
			return true
		}
	}
	return false
}

// Month identifies one calendar month inside a plan year. Index runs 1..12.
type Month struct {
	Year  int `json:"year"`
	Index int `json:"index"`
}

func (m Month) String() string {
	return strconv.Itoa(m.Year) + "-" + fmt.Sprintf("%02d", m.Index)
}

func (m Month) Before(o Month) bool {
	if m.Year != o.Year {
		return m.Year < o.Year
	}
	return m.Index < o.Index
}

// PlanPeriod is the configured planning window: one calendar year.
type PlanPeriod struct {
	Year int `json:"year"`
}

func (p PlanPeriod) Contains(m Month) bool {
	return m.Year == p.Year && m.Index >= 1 && m.Index <= 12
}

// Months returns the twelve months of the period in order.
func (p PlanPeriod) Months() []Month {
	out := make([]Month, 0, 12)
	for i := 1; i <= 12; i++ {
		out = append(out, Month{Year: p.Year, Index: i})
	}
	return out
}
