package engine

// Classifier is the trained-model capability the engine invokes. Values are
// a feature vector in schema order; confidence is the probability mass of
// the label, as a percentage. Implementations must be safe for concurrent
// use after construction.
type Classifier interface {
	PredictLabel(values []float64) (string, error)
	PredictConfidence(values []float64, label string) (float64, error)
}
