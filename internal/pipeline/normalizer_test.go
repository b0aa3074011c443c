package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Kapadokya turu", "Kapadokya turu"},
		{"günübirlik", "gunubirlik"},
		{"İletişim", "iletisim"},
		{"ÖĞRENCİ SERVİSİ", "ogRENCi SERViSi"},
		{"çığ üşö", "cig uso"},
		{"", ""},
		{"hello world", "hello world"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Kapadokya turuna gitmek istiyorum",
		"ığüşöç İĞÜŞÖÇ",
		"Pamukkale günübirlik tur fiyatı",
		"plain ascii text",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalization not idempotent for: %s", in)
	}
}
