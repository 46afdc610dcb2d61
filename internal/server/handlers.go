package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spendsense/spendsense/internal/model"
	"github.com/spendsense/spendsense/internal/storage"
)

const statusSampleSize = 5

func (s *Server) handleHome(c *fiber.Ctx) error {
	return c.SendString("Transaction classification API is running!")
}

func (s *Server) handleStatus(c *fiber.Ctx) error {
	loaded := s.deps.Engine.Ready()

	payload := fiber.Map{
		"model_loaded":           loaded,
		"need_indicators_count":  s.deps.Indicators.NeedCount(),
		"want_indicators_count":  s.deps.Indicators.WantCount(),
		"sample_need_indicators": s.deps.Indicators.SampleNeed(statusSampleSize),
		"sample_want_indicators": s.deps.Indicators.SampleWant(statusSampleSize),
		"timestamp":              time.Now().Format(time.RFC3339),
	}

	if loaded {
		payload["model_type"] = s.deps.Model.Describe()
		payload["features_count"] = s.deps.Schema.Len()
	} else {
		payload["model_type"] = nil
		payload["features_count"] = 0
	}

	if s.deps.History != nil {
		count, err := s.deps.History.Count(c.UserContext())
		if err != nil {
			slog.Warn("failed to count classification history", "error", err)
		} else {
			payload["history_count"] = count
		}
	}

	return c.JSON(payload)
}

func (s *Server) handlePredict(c *fiber.Ctx) error {
	if !s.deps.Engine.Ready() {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":          "Model not loaded. Please ensure the model artifacts are available.",
			"classification": model.LabelUnknown,
			"confidence":     0,
		})
	}

	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "no data provided",
		})
	}

	ref := time.Now()

	switch body[0] {
	case '{':
		return s.predictSingle(c, body, ref)
	case '[':
		return s.predictBatch(c, body, ref)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid data format: expected a transaction object or a list of transactions",
		})
	}
}

func (s *Server) predictSingle(c *fiber.Ctx, body []byte, ref time.Time) error {
	var txn model.Transaction
	if err := json.Unmarshal(body, &txn); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	result, err := s.deps.Engine.Classify(c.UserContext(), txn, ref)
	if err != nil {
		slog.Error("classification failed", "name", txn.Name, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":          err.Error(),
			"classification": result.Classification,
			"confidence":     result.Confidence,
		})
	}

	s.recordHistory(c, result)
	return c.JSON(result)
}

func (s *Server) predictBatch(c *fiber.Ctx, body []byte, ref time.Time) error {
	var txns []model.Transaction
	if err := json.Unmarshal(body, &txns); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	slog.Info("processing batch prediction", "count", len(txns))

	results, err := s.deps.Engine.ClassifyBatch(c.UserContext(), txns, ref)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	for _, result := range results {
		if result.Error == "" {
			s.recordHistory(c, result)
		}
	}

	return c.JSON(results)
}

func (s *Server) handleSample(c *fiber.Ctx) error {
	return c.JSON(SampleTransactions())
}

func (s *Server) handleHistory(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)

	records, err := s.deps.History.ListRecent(c.UserContext(), limit)
	if err != nil {
		slog.Error("failed to list classification history", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if records == nil {
		records = []storage.ClassificationRecord{}
	}
	return c.JSON(records)
}

// recordHistory persists a result best-effort; persistence failures are
// logged and never fail the request.
func (s *Server) recordHistory(c *fiber.Ctx, result model.ClassificationResult) {
	if s.deps.History == nil {
		return
	}
	if err := s.deps.History.RecordClassification(c.UserContext(), result); err != nil {
		slog.Warn("failed to record classification history",
			"name", result.Transaction.Name,
			"error", err)
	}
}
