package main

import (
	"log/slog"
	"path/filepath"

	"github.com/spendsense/spendsense/internal/engine"
	"github.com/spendsense/spendsense/internal/feature"
	"github.com/spendsense/spendsense/internal/forest"
)

// Artifact file names inside the model directory.
const (
	forestArtifact  = "forest.json"
	columnsArtifact = "feature_columns.json"
	needArtifact    = "need_indicators.json"
	wantArtifact    = "want_indicators.json"
)

// artifacts bundles everything loaded from the model directory.
type artifacts struct {
	model      *forest.Forest
	schema     *feature.Schema
	indicators *feature.Indicators
}

// loadArtifacts loads model artifacts from dir. Indicators and schema fall
// back to built-in defaults; a missing or invalid model leaves model nil so
// the process still starts and reports the condition per request.
func loadArtifacts(dir string) artifacts {
	indicators := feature.LoadIndicators(
		filepath.Join(dir, needArtifact),
		filepath.Join(dir, wantArtifact),
	)

	schema, err := feature.LoadSchema(filepath.Join(dir, columnsArtifact))
	if err != nil {
		slog.Warn("schema artifact unavailable, using extractor defaults", "error", err)
		schema = feature.DefaultSchema(indicators)
	}

	model, err := forest.Load(filepath.Join(dir, forestArtifact))
	if err != nil {
		slog.Warn("model artifact unavailable, classification disabled", "error", err)
		return artifacts{schema: schema, indicators: indicators}
	}

	if model.Features != schema.Len() {
		slog.Error("model and schema disagree on feature count, classification disabled",
			"model_features", model.Features,
			"schema_columns", schema.Len())
		return artifacts{schema: schema, indicators: indicators}
	}

	slog.Info("model loaded",
		"model", model.Describe(),
		"need_indicators", indicators.NeedCount(),
		"want_indicators", indicators.WantCount(),
		"features", schema.Len())

	return artifacts{model: model, schema: schema, indicators: indicators}
}

// newEngine builds a classification engine over the loaded artifacts.
func (a artifacts) newEngine() *engine.Engine {
	extractor := feature.NewExtractor(a.schema, a.indicators)
	if a.model == nil {
		return engine.New(extractor, nil)
	}
	return engine.New(extractor, a.model)
}
