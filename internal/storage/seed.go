package storage

import (
	"context"
	"fmt"
	"time"
)

// SeedTours returns the starter tour catalog used when the collection is
// empty. Prices are in TL.
func SeedTours() []Tour {
	now := time.Now().UTC()
	return []Tour{
		{
			Name:           "Kapadokya Turu",
			Category:       TourCategoryOvernight,
			Price:          4500,
			Duration:       "2 Gece 3 Gün",
			DeparturePoint: "Denizli",
			Destination:    "Kapadokya, Nevşehir",
			Features:       []string{"Konaklama dahil", "Rehberli tur", "Balon izleme"},
			Active:         true,
			CreatedAt:      now,
		},
		{
			Name:           "Pamukkale Günübirlik Turu",
			Category:       TourCategoryDayTrip,
			Price:          850,
			Duration:       "1 Gün",
			DeparturePoint: "Denizli",
			Destination:    "Pamukkale, Denizli",
			Features:       []string{"Öğle yemeği dahil", "Hierapolis girişi", "Antik havuz"},
			Active:         true,
			CreatedAt:      now,
		},
		{
			Name:           "Karadeniz Yaylalar Turu",
			Category:       TourCategoryOvernight,
			Price:          8900,
			Duration:       "4 Gece 5 Gün",
			DeparturePoint: "Denizli",
			Destination:    "Trabzon, Rize, Artvin",
			Features:       []string{"Konaklama dahil", "Ayder Yaylası", "Uzungöl"},
			Active:         true,
			CreatedAt:      now,
		},
		{
			Name:           "Efes ve Şirince Turu",
			Category:       TourCategoryDayTrip,
			Price:          750,
			Duration:       "1 Gün",
			DeparturePoint: "Denizli",
			Destination:    "Selçuk, İzmir",
			Features:       []string{"Efes Antik Kenti", "Şirince köyü", "Meryem Ana Evi"},
			Active:         true,
			CreatedAt:      now,
		},
		{
			Name:           "GAP Turu",
			Category:       TourCategoryOvernight,
			Price:          9500,
			Duration:       "5 Gece 6 Gün",
			DeparturePoint: "Denizli",
			Destination:    "Gaziantep, Şanlıurfa, Mardin",
			Features:       []string{"Konaklama dahil", "Göbeklitepe", "Gastronomi durakları"},
			Active:         true,
			CreatedAt:      now,
		},
		{
			Name:           "Salda Gölü Turu",
			Category:       TourCategoryDayTrip,
			Price:          650,
			Duration:       "1 Gün",
			DeparturePoint: "Denizli",
			Destination:    "Salda, Burdur",
			Features:       []string{"Göl gezisi", "Serbest zaman", "Öğle yemeği dahil"},
			Active:         true,
			CreatedAt:      now,
		},
		{
			Name:           "İstanbul Kültür Turu",
			Category:       TourCategoryOvernight,
			Price:          5200,
			Duration:       "2 Gece 3 Gün",
			DeparturePoint: "Denizli",
			Destination:    "İstanbul",
			Features:       []string{"Konaklama dahil", "Boğaz turu", "Tarihi Yarımada"},
			Active:         true,
			CreatedAt:      now,
		},
		{
			Name:           "Balkanlar Turu",
			Category:       TourCategoryAbroad,
			Price:          18500,
			Duration:       "6 Gece 7 Gün",
			DeparturePoint: "Denizli",
			Destination:    "Üsküp, Ohrid, Tiran, Saraybosna",
			Features:       []string{"Konaklama dahil", "Yarım pansiyon", "Rehberli tur"},
			Active:         true,
			CreatedAt:      now,
		},
	}
}

// EnsureSeedTours inserts the starter catalog when the tour collection is
// empty. Returns the number of tours inserted, zero when data already
// exists.
func EnsureSeedTours(ctx context.Context, repo *TourRepository) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed check failed: %w", err)
	}
	if count > 0 {
		return 0, nil
	}
	tours := SeedTours()
	if err := repo.InsertMany(ctx, tours); err != nil {
		return 0, err
	}
	return len(tours), nil
}
