package pipeline

import (
	"strconv"
	"strings"

	"github.com/voyago-ai/concierge-engine/internal/storage"
)

// factContentLimit bounds how much of a fact body enters the prompt.
const factContentLimit = 200

// Assemble merges the restated goal and retrieved records into the grounding
// context block. Section order is fixed; sections with no data are omitted.
func Assemble(restatedGoal string, tours []storage.Tour, facts []storage.Fact) string {
	var b strings.Builder

	b.WriteString("KULLANICI TALEBİ: ")
	b.WriteString(restatedGoal)
	b.WriteString("\n\n")

	if len(tours) > 0 {
		b.WriteString("BULUNAN TURLAR:\n")
		for _, tour := range tours {
			b.WriteString("- ")
			b.WriteString(tour.Name)
			b.WriteString(": ")
			b.WriteString(tour.Duration)
			b.WriteString(", ")
			b.WriteString(tour.Destination)
			if tour.Price > 0 {
				b.WriteString(", Fiyat: ")
				b.WriteString(strconv.FormatFloat(tour.Price, 'f', -1, 64))
				b.WriteString(" TL")
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(facts) > 0 {
		b.WriteString("İLGİLİ BİLGİLER:\n")
		for _, fact := range facts {
			b.WriteString("- ")
			b.WriteString(fact.Title)
			b.WriteString(": ")
			b.WriteString(truncateRunes(fact.Content, factContentLimit))
			b.WriteString("...\n")
		}
	}

	return b.String()
}

// truncateRunes cuts at a rune boundary so multi-byte Turkish characters
// are never split.
func truncateRunes(s string, limit int) string {
	if utf8Len := len([]rune(s)); utf8Len <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
