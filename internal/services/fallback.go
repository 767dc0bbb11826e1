package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/vendly-ng/vendly-backend/internal/models"
)

// Fallback confidence constants. These are fixed by rule, not computed.
const (
	confidencePaymentChoice = 0.9
	confidenceOrdinal       = 0.85
	confidenceListing       = 0.8
	confidenceInterest      = 0.7
	confidenceUnknown       = 0.5
)

var (
	allDigitsPattern = regexp.MustCompile(`^[0-9]+$`)
	millionsPattern  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*m\b`)
	underPattern     = regexp.MustCompile(`(?:under|below)\s+(\d+(?:\.\d+)?)`)
	bedroomsPattern  = regexp.MustCompile(`(\d+)\s*bedrooms?`)
)

var listingKeywords = []string{
	"show", "available", "see", "view", "list", "what", "have", "property", "service",
}

var interestKeywords = []string{
	"interested", "want", "buy", "book", "get",
}

// fallbackRule is one predicate in the deterministic cascade. Rules are
// evaluated in order; the first non-nil intent wins.
type fallbackRule struct {
	name  string
	match func(raw, lower string, cctx ClassifierContext) *models.Intent
}

func fallbackRules() []fallbackRule {
	return []fallbackRule{
		{name: "payment_choice", match: matchPaymentChoice},
		{name: "ordinal", match: matchOrdinal},
		{name: "listing_keywords", match: matchListingKeywords},
		{name: "interest_keywords", match: matchInterestKeywords},
	}
}

// FallbackClassify is the deterministic heuristic used when the AI
// classification call is unavailable or returns unusable output
func FallbackClassify(message string, cctx ClassifierContext) models.Intent {
	raw := strings.TrimSpace(message)
	lower := strings.ToLower(raw)

	for _, rule := range fallbackRules() {
		if intent := rule.match(raw, lower, cctx); intent != nil {
			return *intent
		}
	}

	return models.Intent{Action: models.ActionUnknown, Confidence: confidenceUnknown}
}

func matchPaymentChoice(raw, lower string, cctx ClassifierContext) *models.Intent {
	if !cctx.AwaitingPayment {
		return nil
	}
	if strings.Contains(lower, "1") || strings.Contains(lower, "paystack") {
		return &models.Intent{
			Action:        models.ActionChoosePayment,
			Confidence:    confidencePaymentChoice,
			PaymentMethod: models.PaymentChoicePaystack,
		}
	}
	if strings.Contains(lower, "2") || strings.Contains(lower, "manual") {
		return &models.Intent{
			Action:        models.ActionChoosePayment,
			Confidence:    confidencePaymentChoice,
			PaymentMethod: models.PaymentChoiceManual,
		}
	}
	return nil
}

func matchOrdinal(raw, lower string, cctx ClassifierContext) *models.Intent {
	if !allDigitsPattern.MatchString(lower) {
		return nil
	}
	return &models.Intent{
		Action:        models.ActionSelectItem,
		Confidence:    confidenceOrdinal,
		ItemReference: lower,
	}
}

func matchListingKeywords(raw, lower string, cctx ClassifierContext) *models.Intent {
	if !containsAny(lower, listingKeywords) {
		return nil
	}
	return &models.Intent{
		Action:     models.ActionShowListings,
		Confidence: confidenceListing,
		Filters:    extractFilters(lower),
	}
}

func matchInterestKeywords(raw, lower string, cctx ClassifierContext) *models.Intent {
	if !containsAny(lower, interestKeywords) {
		return nil
	}
	return &models.Intent{
		Action:        models.ActionSelectItem,
		Confidence:    confidenceInterest,
		ItemReference: raw,
	}
}

// extractFilters pulls price/bedroom hints out of a listing request.
// "5m", "under 5" and "below 5" all mean 5,000,000.
func extractFilters(lower string) models.IntentFilters {
	filters := models.IntentFilters{}

	if m := millionsPattern.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			filters.MaxPrice = v * 1_000_000
		}
	} else if m := underPattern.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			filters.MaxPrice = v * 1_000_000
		}
	}

	if m := bedroomsPattern.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			filters.Bedrooms = v
		}
	}

	return filters
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
