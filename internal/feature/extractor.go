package feature

import (
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/spendsense/spendsense/internal/model"
)

// Purchase size boundaries are half-open: exactly 20 is medium, exactly 100
// is large.
const (
	smallPurchaseLimit  = 20.0
	mediumPurchaseLimit = 100.0
	endOfMonthDay       = 25
)

// Category vocabularies the classifier was trained against. Substring
// matched over the lower-cased category; the two flags are independent and
// overlapping vocabulary ("travel") can set both.
var (
	needCategories = []string{
		"bank fees", "food and drink > groceries", "housing", "transfer", "payment",
		"travel > public transportation", "healthcare", "service", "utilities",
	}
	wantCategories = []string{
		"food and drink > restaurants", "shopping", "travel", "recreation",
		"food and drink > coffee", "entertainment",
	}
)

// Date layouts accepted for transaction dates, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
}

// Extractor maps raw transactions into feature vectors aligned to a schema.
// It is pure over its inputs plus the immutable schema and indicators, so a
// single instance is safe for concurrent use.
type Extractor struct {
	schema     *Schema
	indicators *Indicators
}

// NewExtractor creates an extractor for the given schema and indicators.
func NewExtractor(schema *Schema, indicators *Indicators) *Extractor {
	return &Extractor{
		schema:     schema,
		indicators: indicators,
	}
}

// Schema returns the schema the extractor aligns vectors to.
func (e *Extractor) Schema() *Schema {
	return e.schema
}

// Extract derives the feature vector for one transaction. The reference
// time stands in for the transaction date when the date is missing or
// unparsable, keeping extraction deterministic for the caller. The returned
// vector has exactly the schema's columns in schema order; features the
// schema does not know are discarded and schema columns not produced here
// stay zero.
func (e *Extractor) Extract(txn model.Transaction, ref time.Time) *model.FeatureVector {
	vec := e.schema.NewVector()

	amountAbs := math.Abs(float64(txn.Amount))
	vec.Set("amount_abs", amountAbs)
	vec.Set("is_small_purchase", boolFeature(amountAbs < smallPurchaseLimit))
	vec.Set("is_medium_purchase", boolFeature(amountAbs >= smallPurchaseLimit && amountAbs < mediumPurchaseLimit))
	vec.Set("is_large_purchase", boolFeature(amountAbs >= mediumPurchaseLimit))

	name := strings.ToLower(txn.Name)
	for idx, keyword := range e.indicators.need {
		vec.Set(e.indicators.needKeys[idx], boolFeature(strings.Contains(name, keyword)))
	}
	for idx, keyword := range e.indicators.want {
		vec.Set(e.indicators.wantKeys[idx], boolFeature(strings.Contains(name, keyword)))
	}

	date := resolveDate(txn.Date, ref)
	weekday := date.Weekday()
	vec.Set("is_weekend", boolFeature(weekday == time.Saturday || weekday == time.Sunday))
	vec.Set("day_of_month", float64(date.Day()))
	vec.Set("is_end_of_month", boolFeature(date.Day() > endOfMonthDay))

	category := strings.ToLower(txn.Category)
	vec.Set("category_is_likely_need", boolFeature(containsAny(category, needCategories)))
	vec.Set("category_is_likely_want", boolFeature(containsAny(category, wantCategories)))

	// Recurrence detection needs transaction history; a single transaction
	// never looks recurring.
	vec.Set("is_recurring_amount", 0)

	return vec
}

// resolveDate parses the raw date string, falling back to the reference
// time. The fallback on an unparsable date is logged but not surfaced.
func resolveDate(raw string, ref time.Time) time.Time {
	if raw == "" {
		return ref
	}
	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, raw); err == nil {
			return date
		}
	}
	slog.Warn("date parse fallback, using reference time",
		"date", raw,
		"reference", ref.Format("2006-01-02"))
	return ref
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
