package pipeline

import (
	"context"
	"strings"

	"github.com/voyago-ai/concierge-engine/internal/config"
	"github.com/voyago-ai/concierge-engine/internal/llm"
	"github.com/voyago-ai/concierge-engine/internal/observability"
)

// Coarse intent categories. Wire values stay Turkish because clients key
// off them.
const (
	CategoryTour        = "tur"
	CategoryService     = "hizmet"
	CategoryReservation = "rezervasyon"
	CategoryContact     = "iletisim"
	CategoryCorporate   = "kurumsal"
	CategoryPrice       = "fiyat"
	CategoryGeneral     = "genel"
)

// categoryRule maps a keyword set to a category. Rules are evaluated in
// order and the first match wins, so a sentence mentioning both a tour and
// a price classifies as a tour query.
type categoryRule struct {
	category string
	keywords []string
}

var categoryRules = []categoryRule{
	{CategoryTour, []string{"tur", "gezi", "seyahat", "tatil"}},
	{CategoryService, []string{"servis", "transfer", "kiralama", "araç"}},
	{CategoryReservation, []string{"rezervasyon", "kayıt", "başvuru"}},
	{CategoryContact, []string{"iletişim", "telefon", "adres", "ulaş"}},
	{CategoryCorporate, []string{"hakkında", "tarihçe", "kurumsal"}},
	{CategoryPrice, []string{"fiyat", "ücret", "maliyet", "kaç tl"}},
}

// Categorize assigns a category to a restated goal. Total: every input
// yields exactly one category, defaulting to general.
func Categorize(restatedGoal string) string {
	lower := strings.ToLower(restatedGoal)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return CategoryGeneral
}

// Classifier restates a raw message through the completion service and maps
// the restatement onto a category.
type Classifier struct {
	completer llm.Client
	cfg       config.CompletionConfig
	logger    *observability.Logger
}

// NewClassifier creates an intent classifier.
func NewClassifier(completer llm.Client, cfg config.CompletionConfig, logger *observability.Logger) *Classifier {
	return &Classifier{
		completer: completer,
		cfg:       cfg,
		logger:    logger.WithComponent("classifier"),
	}
}

// Classify returns the restated goal and its category. A completion failure
// degrades to the raw message as the restated goal; classification itself
// never fails.
func (c *Classifier) Classify(ctx context.Context, message string) (string, string) {
	restated, err := c.completer.Complete(ctx, llm.CompletionRequest{
		Model: c.cfg.IntentModel,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: intentSystemPrompt},
			{Role: llm.RoleUser, Content: intentPrompt(message)},
		},
		Temperature: c.cfg.IntentTemperature,
		MaxTokens:   c.cfg.IntentMaxTokens,
	})
	if err != nil || restated == "" {
		c.logger.Warn().Err(err).Msg("Intent restatement failed, using raw message")
		restated = message
	}

	category := Categorize(restated)
	c.logger.Debug().
		Str("category", category).
		Str("restated_goal", restated).
		Msg("Message classified")

	return restated, category
}
