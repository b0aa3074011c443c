// Package pipeline implements the conversational core: intent
// classification, multi-source retrieval, context assembly and response
// shaping for incoming customer messages.
package pipeline

import "strings"

// turkishFolding maps Turkish-specific letters to unaccented Latin
// equivalents. Uppercase forms fold to lowercase so matching is widened in
// one pass. All other characters pass through unchanged.
var turkishFolding = strings.NewReplacer(
	"ı", "i", "ğ", "g", "ü", "u", "ş", "s", "ö", "o", "ç", "c",
	"İ", "i", "Ğ", "g", "Ü", "u", "Ş", "s", "Ö", "o", "Ç", "c",
)

// Normalize folds Turkish characters for keyword matching. It never alters
// data at rest, only transient match keys. Idempotent.
func Normalize(text string) string {
	return turkishFolding.Replace(text)
}
