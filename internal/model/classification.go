package model

// Classification labels produced by the engine.
const (
	LabelNeed    = "need"
	LabelWant    = "want"
	LabelUnknown = "unknown"
)

// ClassificationResult is the verdict for a single transaction. Confidence
// is a percentage in [0, 100]. When EducationOverride is true the
// classification is always "need" at confidence 100, and the model's
// pre-override verdict is preserved in the Original fields.
type ClassificationResult struct {
	Transaction            Transaction    `json:"transaction"`
	Classification         string         `json:"classification"`
	Confidence             float64        `json:"confidence"`
	EducationOverride      bool           `json:"education_override"`
	Features               *FeatureVector `json:"features,omitempty"`
	OriginalClassification string         `json:"original_classification,omitempty"`
	OriginalConfidence     *float64       `json:"original_confidence,omitempty"`
	Error                  string         `json:"error,omitempty"`
}
