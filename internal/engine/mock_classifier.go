package engine

import "sync"

// MockClassifier is a deterministic Classifier implementation for tests.
// It returns fixed verdicts and records every call.
type MockClassifier struct {
	LabelErr      error
	ConfidenceErr error
	Label         string
	Confidence    float64
	calls         [][]float64
	mu            sync.Mutex
}

// NewMockClassifier creates a mock that always answers with the given
// label and confidence.
func NewMockClassifier(label string, confidence float64) *MockClassifier {
	return &MockClassifier{
		Label:      label,
		Confidence: confidence,
	}
}

// PredictLabel returns the configured label.
func (m *MockClassifier) PredictLabel(values []float64) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	recorded := make([]float64, len(values))
	copy(recorded, values)
	m.calls = append(m.calls, recorded)

	if m.LabelErr != nil {
		return "", m.LabelErr
	}
	return m.Label, nil
}

// PredictConfidence returns the configured confidence.
func (m *MockClassifier) PredictConfidence(_ []float64, _ string) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ConfidenceErr != nil {
		return 0, m.ConfidenceErr
	}
	return m.Confidence, nil
}

// Calls returns the feature vectors seen by PredictLabel.
func (m *MockClassifier) Calls() [][]float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([][]float64, len(m.calls))
	copy(out, m.calls)
	return out
}
