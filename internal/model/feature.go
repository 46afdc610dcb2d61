package model

import (
	"bytes"
	"encoding/json"
)

// FeatureVector is an ordered feature name/value pairing aligned to the
// model's schema. Order matters: the classifier consumes Values() by
// position, and the transport emits features in the same order the model
// was trained on. Names outside the schema are discarded on Set.
type FeatureVector struct {
	index  map[string]int
	names  []string
	values []float64
}

// NewFeatureVector creates a zero-filled vector over the given column names.
func NewFeatureVector(names []string) *FeatureVector {
	index := make(map[string]int, len(names))
	owned := make([]string, len(names))
	copy(owned, names)
	for i, name := range owned {
		index[name] = i
	}
	return &FeatureVector{
		index:  index,
		names:  owned,
		values: make([]float64, len(owned)),
	}
}

// Set assigns a value to a named feature. It reports whether the name is
// part of the schema; unknown names are dropped.
func (v *FeatureVector) Set(name string, value float64) bool {
	i, ok := v.index[name]
	if !ok {
		return false
	}
	v.values[i] = value
	return true
}

// Get returns the value for a named feature.
func (v *FeatureVector) Get(name string) (float64, bool) {
	i, ok := v.index[name]
	if !ok {
		return 0, false
	}
	return v.values[i], true
}

// Names returns the feature names in schema order.
func (v *FeatureVector) Names() []string {
	out := make([]string, len(v.names))
	copy(out, v.names)
	return out
}

// Values returns the feature values in schema order.
func (v *FeatureVector) Values() []float64 {
	out := make([]float64, len(v.values))
	copy(out, v.values)
	return out
}

// Len returns the number of features.
func (v *FeatureVector) Len() int {
	return len(v.names)
}

// MarshalJSON emits the features as a JSON object in schema order.
// encoding/json would sort a map's keys, losing the column ordering.
func (v *FeatureVector) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range v.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(v.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
