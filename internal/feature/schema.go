// Package feature derives model features from raw transactions.
package feature

import (
	"fmt"

	"github.com/spendsense/spendsense/internal/model"
)

// Schema is the ordered list of feature columns the classifier was trained
// on. It is immutable after construction and shared across requests.
type Schema struct {
	columns []string
}

// NewSchema creates a schema from an ordered column list.
func NewSchema(columns []string) (*Schema, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("schema has no columns")
	}

	seen := make(map[string]struct{}, len(columns))
	owned := make([]string, len(columns))
	for i, col := range columns {
		if col == "" {
			return nil, fmt.Errorf("schema column %d is empty", i)
		}
		if _, dup := seen[col]; dup {
			return nil, fmt.Errorf("schema column %q is duplicated", col)
		}
		seen[col] = struct{}{}
		owned[i] = col
	}

	return &Schema{columns: owned}, nil
}

// DefaultSchema builds the column list the extractor produces for the given
// indicators, in extraction order. It stands in for a trained model's column
// artifact when none is on disk.
func DefaultSchema(indicators *Indicators) *Schema {
	columns := []string{
		"amount_abs",
		"is_small_purchase",
		"is_medium_purchase",
		"is_large_purchase",
	}
	columns = append(columns, indicators.NeedKeys()...)
	columns = append(columns, indicators.WantKeys()...)
	columns = append(columns,
		"is_weekend",
		"day_of_month",
		"is_end_of_month",
		"category_is_likely_need",
		"category_is_likely_want",
		"is_recurring_amount",
	)
	// A keyword present in both indicator sets yields one column.
	return &Schema{columns: dedupe(columns)}
}

func dedupe(columns []string) []string {
	seen := make(map[string]struct{}, len(columns))
	out := make([]string, 0, len(columns))
	for _, col := range columns {
		if _, dup := seen[col]; dup {
			continue
		}
		seen[col] = struct{}{}
		out = append(out, col)
	}
	return out
}

// Columns returns the column names in order.
func (s *Schema) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

// Len returns the number of columns.
func (s *Schema) Len() int {
	return len(s.columns)
}

// NewVector creates a zero-filled feature vector aligned to this schema.
func (s *Schema) NewVector() *model.FeatureVector {
	return model.NewFeatureVector(s.columns)
}
