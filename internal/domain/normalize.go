package domain

import (
	"strings"
	"unicode"
)

// NormalizeLabel folds a free-form workflow step label for comparison with
// status names: surrounding whitespace is dropped, letters are lowercased and
// inner whitespace runs collapse to a single space.
func NormalizeLabel(label string) string {
	return strings.ToLower(strings.Join(strings.FieldsFunc(label, unicode.IsSpace), " "))
}
