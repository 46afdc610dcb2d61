package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spendsense/spendsense/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "spendsense.db")
	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestNewSQLiteStorageValidation(t *testing.T) {
	_, err := NewSQLiteStorage("")
	assert.Error(t, err)
}

func TestRecordAndListClassifications(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	originalConfidence := 63.2
	results := []model.ClassificationResult{
		{
			Transaction:    model.Transaction{Name: "Kroger", Amount: 78.45, Category: "Food and Drink > Groceries", Date: "2023-06-15"},
			Classification: model.LabelNeed,
			Confidence:     88.0,
		},
		{
			Transaction:            model.Transaction{Name: "University Tuition Payment", Amount: -500, Category: "Education", Date: "2023-09-01"},
			Classification:         model.LabelNeed,
			Confidence:             100.0,
			EducationOverride:      true,
			OriginalClassification: model.LabelWant,
			OriginalConfidence:     &originalConfidence,
		},
	}

	for _, result := range results {
		require.NoError(t, store.RecordClassification(ctx, result))
	}

	count, err = store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	records, err := store.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first; equal timestamps fall back to insertion order.
	tuition := records[0]
	assert.Equal(t, "University Tuition Payment", tuition.Name)
	assert.Equal(t, model.LabelNeed, tuition.Classification)
	assert.Equal(t, 100.0, tuition.Confidence)
	assert.True(t, tuition.EducationOverride)
	assert.Equal(t, model.LabelWant, tuition.OriginalClassification)
	require.NotNil(t, tuition.OriginalConfidence)
	assert.InDelta(t, 63.2, *tuition.OriginalConfidence, 1e-9)
	assert.False(t, tuition.ClassifiedAt.IsZero())

	kroger := records[1]
	assert.Equal(t, "Kroger", kroger.Name)
	assert.InDelta(t, 78.45, kroger.Amount, 1e-9)
	assert.False(t, kroger.EducationOverride)
	assert.Empty(t, kroger.OriginalClassification)
	assert.Nil(t, kroger.OriginalConfidence)
}

func TestListRecentHonorsLimit(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.RecordClassification(ctx, model.ClassificationResult{
			Transaction:    model.Transaction{Name: "Starbucks", Amount: 5.40},
			Classification: model.LabelWant,
			Confidence:     70,
		}))
	}

	records, err := store.ListRecent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, records, 3)

	records, err = store.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, records, 5, "non-positive limit uses the default")
}
