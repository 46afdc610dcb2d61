package feature

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureKey(t *testing.T) {
	assert.Equal(t, "name_has_coffee", FeatureKey("coffee"))
	assert.Equal(t, "name_has_car_payment", FeatureKey("car payment"))
	assert.Equal(t, "name_has_late_night_snack", FeatureKey("late night snack"))
}

func TestNewIndicatorsNormalizes(t *testing.T) {
	ind := NewIndicators(
		[]string{"Grocery", "  rent ", "grocery", ""},
		[]string{"COFFEE"},
	)

	assert.Equal(t, []string{"grocery", "rent"}, ind.Need())
	assert.Equal(t, []string{"coffee"}, ind.Want())
	assert.Equal(t, []string{"name_has_grocery", "name_has_rent"}, ind.NeedKeys())
	assert.Equal(t, 2, ind.NeedCount())
	assert.Equal(t, 1, ind.WantCount())
}

func TestDefaultIndicators(t *testing.T) {
	ind := DefaultIndicators()

	assert.Equal(t, 14, ind.NeedCount())
	assert.Equal(t, 9, ind.WantCount())
	assert.Contains(t, ind.Need(), "pharmacy")
	assert.Contains(t, ind.Want(), "vacation")
	assert.Equal(t, []string{"grocery", "groceries", "bill", "utility", "utilities"}, ind.SampleNeed(5))
	assert.Len(t, ind.SampleWant(50), 9, "sample is capped at set size")
}

func TestDefaultSchemaCoversExtractorOutput(t *testing.T) {
	ind := DefaultIndicators()
	schema := DefaultSchema(ind)

	columns := schema.Columns()
	assert.Equal(t, "amount_abs", columns[0])
	assert.Contains(t, columns, "name_has_coffee")
	assert.Contains(t, columns, "is_recurring_amount")
	assert.Contains(t, columns, "category_is_likely_want")
	// 4 amount + 14 need + 9 want + 3 date + 2 category + 1 recurring.
	assert.Equal(t, 33, schema.Len())
}

func TestNewSchemaValidation(t *testing.T) {
	_, err := NewSchema(nil)
	assert.Error(t, err)

	_, err = NewSchema([]string{"a", ""})
	assert.Error(t, err)

	_, err = NewSchema([]string{"a", "b", "a"})
	assert.Error(t, err)

	schema, err := NewSchema([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, 2, schema.Len())
}

func TestLoadSchema(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "feature_columns.json")

	columns := []string{"amount_abs", "is_weekend"}
	data, err := json.Marshal(columns)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0600))

	schema, err := LoadSchema(path)
	require.NoError(t, err)
	assert.Equal(t, columns, schema.Columns())

	_, err = LoadSchema(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0600))
	_, err = LoadSchema(bad)
	assert.Error(t, err)
}

func TestLoadIndicatorsFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()

	needPath := filepath.Join(dir, "need_indicators.json")
	require.NoError(t, os.WriteFile(needPath, []byte(`["rent", "power bill"]`), 0600))

	// Want artifact missing entirely.
	ind := LoadIndicators(needPath, filepath.Join(dir, "want_indicators.json"))

	assert.Equal(t, []string{"rent", "power bill"}, ind.Need())
	assert.Equal(t, 9, ind.WantCount(), "missing want artifact uses defaults")
}
