package company

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFacts_Dataset(t *testing.T) {
	facts := Facts(DefaultProfile())

	assert.NotEmpty(t, facts)

	categories := map[string]bool{}
	for _, f := range facts {
		assert.NotEmpty(t, f.Title)
		assert.NotEmpty(t, f.Content)
		assert.NotEmpty(t, f.Category)
		assert.NotEmpty(t, f.SourceURL)
		assert.True(t, f.Active)
		assert.False(t, f.LastUpdated.IsZero())
		categories[f.Category] = true
	}

	// Every retrieval category has at least one fact to ground answers.
	for _, cat := range []string{
		CategoryGeneral, CategoryCorporate, CategoryTours,
		CategoryServices, CategoryFleet, CategoryReferences, CategoryContact,
	} {
		assert.True(t, categories[cat], "missing facts for category %s", cat)
	}
}
