// Package company holds the static company profile and the curated fact
// dataset the refresh job loads into the fact store.
package company

// Fact categories used across the dataset and retrieval filters.
const (
	CategoryGeneral    = "genel"
	CategoryCorporate  = "kurumsal"
	CategoryTours      = "turlar"
	CategoryServices   = "hizmetler"
	CategoryFleet      = "arac-filosu"
	CategoryReferences = "referanslar"
	CategoryContact    = "iletisim"
)

// Profile describes the company the assistant answers for. Values feed the
// system prompt and the error fallback message.
type Profile struct {
	FullName     string
	ShortName    string
	Slogan       string
	Motto        string
	Phone        string
	Mobile       string
	Email        string
	Website      string
	Address      string
	FoundingYear int
	FleetSize    string
}

// DefaultProfile returns the built-in company profile.
func DefaultProfile() Profile {
	return Profile{
		FullName:     "NAMLI Turizm - Taşımacılık San.Tic. Ltd. Şti.",
		ShortName:    "Namlı Turizm",
		Slogan:       "#NAMLIHERYERDE",
		Motto:        "1979'dan Günümüze Uzağı Yakın Ederiz",
		Phone:        "+90 258 263 33 77",
		Mobile:       "+90 530 147 95 77",
		Email:        "seyahat@namliturizm.com",
		Website:      "https://www.namliturizm.com",
		Address:      "Pelitlibağ Mah. 1126 Sok. No:22 Pamukkale/DENİZLİ",
		FoundingYear: 1979,
		FleetSize:    "121+",
	}
}
