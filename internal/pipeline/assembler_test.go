package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voyago-ai/concierge-engine/internal/storage"
)

func TestAssemble_FullContext(t *testing.T) {
	tours := []storage.Tour{
		{Name: "Kapadokya Turu", Duration: "2 Gece 3 Gün", Destination: "Kapadokya, Nevşehir", Price: 4500},
		{Name: "Salda Gölü Turu", Duration: "1 Gün", Destination: "Salda, Burdur", Price: 0},
	}
	facts := []storage.Fact{
		{Title: "Tur Kategorileri", Content: "Konaklamalı kültür turları, günübirlik turlar."},
	}

	block := Assemble("Kullanıcı Kapadokya turu hakkında bilgi istiyor", tours, facts)

	assert.True(t, strings.HasPrefix(block, "KULLANICI TALEBİ: Kullanıcı Kapadokya turu hakkında bilgi istiyor\n\n"))
	assert.Contains(t, block, "BULUNAN TURLAR:\n")
	assert.Contains(t, block, "- Kapadokya Turu: 2 Gece 3 Gün, Kapadokya, Nevşehir, Fiyat: 4500 TL\n")
	assert.Contains(t, block, "İLGİLİ BİLGİLER:\n")
	assert.Contains(t, block, "- Tur Kategorileri: Konaklamalı kültür turları, günübirlik turlar....\n")
}

func TestAssemble_PriceOmittedWhenZero(t *testing.T) {
	tours := []storage.Tour{
		{Name: "Salda Gölü Turu", Duration: "1 Gün", Destination: "Salda, Burdur", Price: 0},
	}

	block := Assemble("goal", tours, nil)

	assert.Contains(t, block, "- Salda Gölü Turu: 1 Gün, Salda, Burdur\n")
	assert.NotContains(t, block, "Fiyat:")
}

func TestAssemble_EmptySectionsOmitted(t *testing.T) {
	block := Assemble("Kullanıcı selamlaşıyor", nil, nil)

	assert.Equal(t, "KULLANICI TALEBİ: Kullanıcı selamlaşıyor\n\n", block)
	assert.NotContains(t, block, "BULUNAN TURLAR")
	assert.NotContains(t, block, "İLGİLİ BİLGİLER")
}

func TestAssemble_TruncatesLongFactContent(t *testing.T) {
	long := strings.Repeat("ş", 350)
	facts := []storage.Fact{{Title: "Uzun", Content: long}}

	block := Assemble("goal", nil, facts)

	assert.Contains(t, block, "- Uzun: "+strings.Repeat("ş", 200)+"...")
	assert.NotContains(t, block, strings.Repeat("ş", 201))
}
