package engine

import "strings"

// overrideConfidence is the confidence assigned to any overridden verdict.
const overrideConfidence = 100.0

// educationTerms force a "need" verdict whenever one appears in a
// transaction's name or category. Education spending is a need regardless
// of what the model learned from general spending patterns.
var educationTerms = []string{
	"education", "tuition", "university", "college", "school", "textbook", "student",
	"course", "class", "degree", "academic",
}

// matchEducation reports whether the lower-cased name or category contains
// an education term, returning the first matching term.
func matchEducation(name, category string) (string, bool) {
	for _, term := range educationTerms {
		if strings.Contains(name, term) || strings.Contains(category, term) {
			return term, true
		}
	}
	return "", false
}
