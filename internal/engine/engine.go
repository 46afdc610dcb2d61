// Package engine implements the core need/want classification engine,
// merging trained-model verdicts with deterministic override rules.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spendsense/spendsense/internal/common"
	"github.com/spendsense/spendsense/internal/feature"
	"github.com/spendsense/spendsense/internal/model"
)

// Engine classifies transactions. All dependencies are injected at
// construction and never mutated, so a single engine serves concurrent
// requests without locking.
type Engine struct {
	extractor  *feature.Extractor
	classifier Classifier
}

// New creates a classification engine. A nil classifier is allowed: the
// engine then answers every request with a model-unavailable error instead
// of failing at startup.
func New(extractor *feature.Extractor, classifier Classifier) *Engine {
	return &Engine{
		extractor:  extractor,
		classifier: classifier,
	}
}

// Ready reports whether a classifier is loaded.
func (e *Engine) Ready() bool {
	return e.classifier != nil
}

// Classify runs the classifier on one transaction and applies the override
// policy. The reference time resolves missing or unparsable transaction
// dates. On error the returned result still carries the transaction with an
// "unknown" verdict at zero confidence.
func (e *Engine) Classify(_ context.Context, txn model.Transaction, ref time.Time) (model.ClassificationResult, error) {
	if e.classifier == nil {
		return unknownResult(txn), common.ErrModelUnavailable
	}

	vec := e.extractor.Extract(txn, ref)
	values := vec.Values()

	label, err := e.classifier.PredictLabel(values)
	if err != nil {
		return unknownResult(txn), fmt.Errorf("failed to predict label: %w", err)
	}

	confidence, err := e.classifier.PredictConfidence(values, label)
	if err != nil {
		return unknownResult(txn), fmt.Errorf("failed to predict confidence: %w", err)
	}

	result := model.ClassificationResult{
		Transaction:    txn,
		Classification: label,
		Confidence:     confidence,
		Features:       vec,
	}

	name := strings.ToLower(txn.Name)
	category := strings.ToLower(txn.Category)
	if term, ok := matchEducation(name, category); ok {
		original := confidence
		result.OriginalClassification = label
		result.OriginalConfidence = &original
		result.Classification = model.LabelNeed
		result.Confidence = overrideConfidence
		result.EducationOverride = true

		slog.Info("education override applied",
			"name", txn.Name,
			"term", term,
			"original_classification", label,
			"original_confidence", original)
	}

	return result, nil
}

// ClassifyBatch classifies transactions independently, preserving input
// order. A failure on one transaction is recorded on its result and does
// not abort the rest; only context cancellation stops the batch early.
func (e *Engine) ClassifyBatch(ctx context.Context, txns []model.Transaction, ref time.Time) ([]model.ClassificationResult, error) {
	results := make([]model.ClassificationResult, 0, len(txns))

	for i, txn := range txns {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		result, err := e.Classify(ctx, txn, ref)
		if err != nil {
			result.Error = err.Error()
			slog.Warn("batch item failed",
				"index", i,
				"name", txn.Name,
				"error", err)
		}
		results = append(results, result)
	}

	return results, nil
}

func unknownResult(txn model.Transaction) model.ClassificationResult {
	return model.ClassificationResult{
		Transaction:    txn,
		Classification: model.LabelUnknown,
		Confidence:     0,
	}
}
