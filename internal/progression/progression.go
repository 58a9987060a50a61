// Package progression holds the seniority-progression probability model:
// per level, a fixed table of transition probabilities indexed by CAT tenure
// bucket, scaled by the progression lever and clamped at 1.0.
package progression

import (
	_ "embed"
	"fmt"
	"math"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"workforce-engine/internal/model"
)

//go:embed tables.yaml
var tablesYAML []byte

type tablesFile struct {
	BucketSpanMonths int                        `yaml:"bucket_span_months"`
	Levels           map[string]map[int]float64 `yaml:"levels"`
}

// Model is the loaded progression reference data. Immutable after Load.
type Model struct {
	spanMonths int
	probs      map[model.Level]map[int]float64
}

// Load parses and validates a progression table document.
func Load(data []byte) (*Model, error) {
	var file tablesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse progression tables: %w", err)
	}
	if file.BucketSpanMonths <= 0 {
		return nil, fmt.Errorf("progression tables: bucket_span_months must be positive, got %d", file.BucketSpanMonths)
	}
	if len(file.Levels) == 0 {
		return nil, fmt.Errorf("progression tables: no levels defined")
	}

	probs := make(map[model.Level]map[int]float64, len(file.Levels))
	for name, buckets := range file.Levels {
		level, ok := model.ParseLevel(name)
		if !ok {
			return nil, fmt.Errorf("progression tables: unknown level %q", name)
		}
		if len(buckets) == 0 {
			return nil, fmt.Errorf("progression tables: level %s has no buckets", name)
		}
		table := make(map[int]float64, len(buckets))
		for bucket, p := range buckets {
			if bucket < 0 {
				return nil, fmt.Errorf("progression tables: level %s has negative bucket %d", name, bucket)
			}
			if p < 0 || p > 1 || math.IsNaN(p) {
				return nil, fmt.Errorf("progression tables: level %s bucket %d probability %v outside [0,1]", name, bucket, p)
			}
			table[bucket] = p
		}
		probs[level] = table
	}

	return &Model{spanMonths: file.BucketSpanMonths, probs: probs}, nil
}

var (
	defaultOnce  sync.Once
	defaultModel *Model
)

// Default returns the model built from the embedded reference tables.
func Default() *Model {
	defaultOnce.Do(func() {
		m, err := Load(tablesYAML)
		if err != nil {
			// The embedded tables ship with the binary; failing to parse
			// them is a build defect, not a runtime condition.
			panic(err)
		}
		defaultModel = m
	})
	return defaultModel
}

// BucketSpanMonths is the width of one CAT band.
func (m *Model) BucketSpanMonths() int { return m.spanMonths }

// Buckets returns the CAT buckets defined for the level, ascending.
func (m *Model) Buckets(level model.Level) []int {
	table, ok := m.probs[level]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(table))
	for b := range table {
		out = append(out, b)
	}
	sort.Ints(out)
	return out
}

// BaseProbability returns the unscaled transition probability for the bucket.
func (m *Model) BaseProbability(level model.Level, bucket int) (float64, bool) {
	table, ok := m.probs[level]
	if !ok {
		return 0, false
	}
	p, ok := table[bucket]
	return p, ok
}

// AdjustedProbability scales the base probability by the progression
// multiplier and clamps at 1.0. The clamp is part of the contract: a
// multiplier can never push a probability past certainty. Unknown
// level/bucket combinations read as zero.
func (m *Model) AdjustedProbability(level model.Level, bucket int, multiplier float64) float64 {
	base, ok := m.BaseProbability(level, bucket)
	if !ok {
		return 0
	}
	adjusted := base * multiplier
	if adjusted > 1.0 {
		return 1.0
	}
	if adjusted < 0 || math.IsNaN(adjusted) {
		return 0
	}
	return adjusted
}

// ExpectedTimeOnLevel derives the expected months on level from the bucket
// with the highest adjusted probability. The second return is false when
// every adjusted probability is zero: the expected time is indeterminate,
// which callers must surface distinctly from instant progression.
func (m *Model) ExpectedTimeOnLevel(level model.Level, multiplier float64) (int, bool) {
	var maxAdjusted float64
	for _, bucket := range m.Buckets(level) {
		if p := m.AdjustedProbability(level, bucket, multiplier); p > maxAdjusted {
			maxAdjusted = p
		}
	}
	if maxAdjusted == 0 {
		return 0, false
	}
	return int(math.Round((1 / maxAdjusted) * float64(m.spanMonths))), true
}

// Outlook assembles the per-level view consumed by the projection response.
func (m *Model) Outlook(level model.Level, multiplier float64) model.ProgressionOutlook {
	out := model.ProgressionOutlook{Level: level, Multiplier: multiplier}
	for _, bucket := range m.Buckets(level) {
		base, _ := m.BaseProbability(level, bucket)
		out.Buckets = append(out.Buckets, model.BucketProbability{
			Bucket:   bucket,
			Base:     base,
			Adjusted: m.AdjustedProbability(level, bucket, multiplier),
		})
	}
	months, ok := m.ExpectedTimeOnLevel(level, multiplier)
	out.ExpectedMonths = months
	out.Indeterminate = !ok
	return out
}
