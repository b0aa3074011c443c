package pipeline

import "github.com/voyago-ai/concierge-engine/internal/storage"

// Button is a suggested follow-up action rendered by the client.
type Button struct {
	Text   string `json:"text"`
	Action string `json:"action"`
}

// Reply is the structured response returned to the caller. Response mirrors
// Answer for older clients.
type Reply struct {
	Answer      string         `json:"answer"`
	Suggestions []string       `json:"suggestions"`
	Response    string         `json:"response"`
	Buttons     []Button       `json:"buttons"`
	Category    string         `json:"category"`
	Tours       []storage.Tour `json:"tours"`
	Error       string         `json:"error,omitempty"`
}

// baseButtons close out every button set.
var baseButtons = []Button{
	{Text: "📞 Hemen Ara", Action: "call"},
	{Text: "💬 WhatsApp", Action: "whatsapp"},
	{Text: "📧 E-posta Gönder", Action: "email"},
}

// categoryButtons are prepended to the base set. Known categories carry two
// specific actions; the general fallback carries four so first-time users
// see the full site map.
var categoryButtons = map[string][]Button{
	CategoryTour: {
		{Text: "🎫 Tur Rezervasyonu", Action: "reservation"},
		{Text: "📋 Tüm Turları Gör", Action: "all-tours"},
	},
	CategoryService: {
		{Text: "🚌 Araç Kiralama", Action: "car-rental"},
		{Text: "🎓 Servis Başvurusu", Action: "service-application"},
	},
	CategoryReservation: {
		{Text: "📝 Rezervasyon Formu", Action: "reservation-form"},
		{Text: "✅ Rezervasyon Takibi", Action: "track-reservation"},
	},
	CategoryContact: {
		{Text: "📍 Adres ve Yol Tarifi", Action: "directions"},
		{Text: "🌐 Web Sitesi", Action: "website"},
	},
	CategoryCorporate: {
		{Text: "🏢 Hakkımızda", Action: "about"},
		{Text: "📜 Tarihçe", Action: "history"},
	},
	CategoryPrice: {
		{Text: "💰 Güncel Fiyatlar", Action: "price-list"},
		{Text: "🎫 Tur Rezervasyonu", Action: "reservation"},
	},
}

var generalButtons = []Button{
	{Text: "🏢 Kurumsal", Action: "corporate"},
	{Text: "🗺️ Turlarımız", Action: "tours"},
	{Text: "🚌 Hizmetlerimiz", Action: "services"},
	{Text: "📍 Bize Ulaşın", Action: "contact"},
}

// ActionButtons returns the suggested actions for a category: the
// category-specific buttons followed by the universal contact set.
func ActionButtons(category string) []Button {
	specific, ok := categoryButtons[category]
	if !ok {
		specific = generalButtons
	}
	buttons := make([]Button, 0, len(specific)+len(baseButtons))
	buttons = append(buttons, specific...)
	return append(buttons, baseButtons...)
}

// Shape bundles the raw answer, category and retrieved tours into the
// structured reply, capping the tour preview.
func Shape(category string, tours []storage.Tour, rawAnswer string, previewLimit int) Reply {
	buttons := ActionButtons(category)

	suggestions := make([]string, len(buttons))
	for i, btn := range buttons {
		suggestions[i] = btn.Text
	}

	preview := tours
	if len(preview) > previewLimit {
		preview = preview[:previewLimit]
	}
	if preview == nil {
		preview = []storage.Tour{}
	}

	return Reply{
		Answer:      rawAnswer,
		Suggestions: suggestions,
		Response:    rawAnswer,
		Buttons:     buttons,
		Category:    category,
		Tours:       preview,
	}
}
