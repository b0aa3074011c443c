package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voyago-ai/concierge-engine/internal/storage"
)

func TestActionButtons_Counts(t *testing.T) {
	tests := []struct {
		category string
		expected int
	}{
		{CategoryTour, 5},
		{CategoryService, 5},
		{CategoryReservation, 5},
		{CategoryContact, 5},
		{CategoryCorporate, 5},
		{CategoryPrice, 5},
		{CategoryGeneral, 7},
		{"bilinmeyen", 7},
		{"", 7},
	}

	for _, tc := range tests {
		t.Run(tc.category, func(t *testing.T) {
			assert.Len(t, ActionButtons(tc.category), tc.expected)
		})
	}
}

func TestActionButtons_BaseSetAlwaysPresent(t *testing.T) {
	for _, category := range []string{CategoryTour, CategoryContact, CategoryGeneral, "x"} {
		buttons := ActionButtons(category)
		actions := make([]string, len(buttons))
		for i, b := range buttons {
			actions[i] = b.Action
		}
		assert.Contains(t, actions, "call")
		assert.Contains(t, actions, "whatsapp")
		assert.Contains(t, actions, "email")
	}
}

func TestShape_TourCategory(t *testing.T) {
	tours := []storage.Tour{{Name: "Kapadokya Turu"}}

	reply := Shape(CategoryTour, tours, "Elbette, Kapadokya turumuz mevcut.", 3)

	assert.Equal(t, "Elbette, Kapadokya turumuz mevcut.", reply.Answer)
	assert.Equal(t, reply.Answer, reply.Response)
	assert.Equal(t, CategoryTour, reply.Category)
	assert.Equal(t, "reservation", reply.Buttons[0].Action)
	assert.Equal(t, "all-tours", reply.Buttons[1].Action)
	assert.Len(t, reply.Suggestions, len(reply.Buttons))
	for i, btn := range reply.Buttons {
		assert.Equal(t, btn.Text, reply.Suggestions[i])
	}
}

func TestShape_TourPreviewCapped(t *testing.T) {
	tours := []storage.Tour{
		{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}, {Name: "E"},
	}

	reply := Shape(CategoryTour, tours, "cevap", 3)

	assert.Len(t, reply.Tours, 3)
	assert.Equal(t, "A", reply.Tours[0].Name)
}

func TestShape_NoToursYieldsEmptySlice(t *testing.T) {
	reply := Shape(CategoryContact, nil, "cevap", 3)

	// Clients iterate the field, so it must serialize as [] rather than null.
	assert.NotNil(t, reply.Tours)
	assert.Empty(t, reply.Tours)
}
