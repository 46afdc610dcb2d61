package feature

import "strings"

// Default indicator keywords, used when no indicator artifacts are on disk.
var (
	defaultNeedIndicators = []string{
		"grocery", "groceries", "bill", "utility", "utilities", "gas", "rent", "mortgage",
		"medical", "healthcare", "doctor", "pharmacy", "prescription", "insurance",
	}
	defaultWantIndicators = []string{
		"restaurant", "coffee", "entertainment", "shopping", "travel",
		"dining", "movie", "theater", "vacation",
	}
)

// Indicators holds the need and want keyword sets with their feature keys
// precomputed. The keyword to feature-key mapping is built once here so the
// extractor never constructs column names per call.
type Indicators struct {
	need     []string
	want     []string
	needKeys []string
	wantKeys []string
}

// NewIndicators creates an indicator set. Keywords are lower-cased and
// deduplicated within each set; a keyword may appear in both sets.
func NewIndicators(need, want []string) *Indicators {
	ind := &Indicators{}
	ind.need, ind.needKeys = compileKeywords(need)
	ind.want, ind.wantKeys = compileKeywords(want)
	return ind
}

// DefaultIndicators returns the built-in keyword sets.
func DefaultIndicators() *Indicators {
	return NewIndicators(defaultNeedIndicators, defaultWantIndicators)
}

// FeatureKey returns the feature column name for an indicator keyword.
func FeatureKey(keyword string) string {
	return "name_has_" + strings.ReplaceAll(keyword, " ", "_")
}

func compileKeywords(keywords []string) (terms, keys []string) {
	seen := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		terms = append(terms, kw)
		keys = append(keys, FeatureKey(kw))
	}
	return terms, keys
}

// Need returns the need keywords.
func (i *Indicators) Need() []string {
	out := make([]string, len(i.need))
	copy(out, i.need)
	return out
}

// Want returns the want keywords.
func (i *Indicators) Want() []string {
	out := make([]string, len(i.want))
	copy(out, i.want)
	return out
}

// NeedKeys returns the feature column names for the need keywords.
func (i *Indicators) NeedKeys() []string {
	out := make([]string, len(i.needKeys))
	copy(out, i.needKeys)
	return out
}

// WantKeys returns the feature column names for the want keywords.
func (i *Indicators) WantKeys() []string {
	out := make([]string, len(i.wantKeys))
	copy(out, i.wantKeys)
	return out
}

// NeedCount returns the number of need keywords.
func (i *Indicators) NeedCount() int { return len(i.need) }

// WantCount returns the number of want keywords.
func (i *Indicators) WantCount() int { return len(i.want) }

// SampleNeed returns up to n need keywords for status reporting.
func (i *Indicators) SampleNeed(n int) []string { return sample(i.need, n) }

// SampleWant returns up to n want keywords for status reporting.
func (i *Indicators) SampleWant(n int) []string { return sample(i.want, n) }

func sample(keywords []string, n int) []string {
	if n > len(keywords) {
		n = len(keywords)
	}
	out := make([]string, n)
	copy(out, keywords[:n])
	return out
}
