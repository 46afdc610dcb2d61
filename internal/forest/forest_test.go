package forest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testForest routes on feature 0: low values lean need, high values lean
// want, with a second tree that always favors need.
func testForest() *Forest {
	return &Forest{
		Classes:  []string{"need", "want"},
		Features: 2,
		Trees: []Tree{
			{Nodes: []Node{
				{Feature: 0, Threshold: 0.5, Left: 1, Right: 2},
				{Feature: -1, Counts: []float64{8, 2}},
				{Feature: -1, Counts: []float64{1, 9}},
			}},
			{Nodes: []Node{
				{Feature: -1, Counts: []float64{3, 1}},
			}},
		},
	}
}

func TestForestPredict(t *testing.T) {
	f := testForest()
	require.NoError(t, f.Validate())

	tests := []struct {
		name           string
		values         []float64
		wantLabel      string
		wantConfidence float64
	}{
		{
			name:           "low feature leans need",
			values:         []float64{0, 0},
			wantLabel:      "need",
			wantConfidence: 77.5, // mean of 0.8 and 0.75
		},
		{
			name:           "high feature leans want",
			values:         []float64{1, 0},
			wantLabel:      "want",
			wantConfidence: 57.5, // mean of 0.9 and 0.25
		},
		{
			name:           "boundary value goes left",
			values:         []float64{0.5, 99},
			wantLabel:      "need",
			wantConfidence: 77.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, err := f.PredictLabel(tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLabel, label)

			confidence, err := f.PredictConfidence(tt.values, label)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantConfidence, confidence, 1e-9)
		})
	}
}

func TestForestTieBreaksToFirstClass(t *testing.T) {
	f := &Forest{
		Classes:  []string{"need", "want"},
		Features: 1,
		Trees: []Tree{
			{Nodes: []Node{{Feature: -1, Counts: []float64{5, 5}}}},
		},
	}
	require.NoError(t, f.Validate())

	label, err := f.PredictLabel([]float64{1})
	require.NoError(t, err)
	assert.Equal(t, "need", label)

	confidence, err := f.PredictConfidence([]float64{1}, label)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, confidence, 1e-9)
}

func TestForestPredictErrors(t *testing.T) {
	f := testForest()

	_, err := f.PredictLabel([]float64{1})
	assert.Error(t, err, "wrong vector width")

	_, err = f.PredictConfidence([]float64{0, 0}, "luxury")
	assert.Error(t, err, "unknown label")
}

func TestForestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Forest)
	}{
		{name: "no classes", mutate: func(f *Forest) { f.Classes = nil }},
		{name: "no trees", mutate: func(f *Forest) { f.Trees = nil }},
		{name: "bad feature count", mutate: func(f *Forest) { f.Features = 0 }},
		{name: "empty tree", mutate: func(f *Forest) { f.Trees[0].Nodes = nil }},
		{name: "leaf counts mismatch", mutate: func(f *Forest) {
			f.Trees[1].Nodes[0].Counts = []float64{1}
		}},
		{name: "feature out of range", mutate: func(f *Forest) {
			f.Trees[0].Nodes[0].Feature = 7
		}},
		{name: "child out of range", mutate: func(f *Forest) {
			f.Trees[0].Nodes[0].Right = 42
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := testForest()
			tt.mutate(f)
			assert.Error(t, f.Validate())
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "forest.json")

	data, err := json.Marshal(testForest())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0600))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"need", "want"}, f.Classes)
	assert.Equal(t, 2, f.Features)
	assert.Equal(t, "RandomForestClassifier(2 trees, 2 features)", f.Describe())

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"classes": []}`), 0600))
	_, err = Load(bad)
	assert.Error(t, err)
}
