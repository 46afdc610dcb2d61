package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/spendsense/spendsense/internal/model"
)

// ClassificationRecord is a persisted classification verdict.
type ClassificationRecord struct {
	ClassifiedAt           time.Time `json:"classified_at"`
	Name                   string    `json:"name"`
	Category               string    `json:"category,omitempty"`
	TxnDate                string    `json:"date,omitempty"`
	Classification         string    `json:"classification"`
	OriginalClassification string    `json:"original_classification,omitempty"`
	OriginalConfidence     *float64  `json:"original_confidence,omitempty"`
	ID                     int64     `json:"id"`
	Amount                 float64   `json:"amount"`
	Confidence             float64   `json:"confidence"`
	EducationOverride      bool      `json:"education_override"`
}

// RecordClassification persists one classification result.
func (s *SQLiteStorage) RecordClassification(ctx context.Context, result model.ClassificationResult) error {
	var originalClassification sql.NullString
	var originalConfidence sql.NullFloat64
	if result.EducationOverride {
		originalClassification = sql.NullString{String: result.OriginalClassification, Valid: true}
		if result.OriginalConfidence != nil {
			originalConfidence = sql.NullFloat64{Float64: *result.OriginalConfidence, Valid: true}
		}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO classifications
			(name, amount, category, txn_date, classification, confidence,
			 education_override, original_classification, original_confidence, classified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.Transaction.Name,
		float64(result.Transaction.Amount),
		result.Transaction.Category,
		result.Transaction.Date,
		result.Classification,
		result.Confidence,
		result.EducationOverride,
		originalClassification,
		originalConfidence,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record classification: %w", err)
	}
	return nil
}

// ListRecent returns the most recent classifications, newest first.
func (s *SQLiteStorage) ListRecent(ctx context.Context, limit int) ([]ClassificationRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, amount, category, txn_date, classification, confidence,
		       education_override, original_classification, original_confidence, classified_at
		FROM classifications
		ORDER BY classified_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []ClassificationRecord
	for rows.Next() {
		var rec ClassificationRecord
		var originalClassification sql.NullString
		var originalConfidence sql.NullFloat64

		if err := rows.Scan(
			&rec.ID, &rec.Name, &rec.Amount, &rec.Category, &rec.TxnDate,
			&rec.Classification, &rec.Confidence, &rec.EducationOverride,
			&originalClassification, &originalConfidence, &rec.ClassifiedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}

		if originalClassification.Valid {
			rec.OriginalClassification = originalClassification.String
		}
		if originalConfidence.Valid {
			confidence := originalConfidence.Float64
			rec.OriginalConfidence = &confidence
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history rows: %w", err)
	}
	return records, nil
}

// Count returns the total number of persisted classifications.
func (s *SQLiteStorage) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM classifications`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count history: %w", err)
	}
	return count, nil
}
