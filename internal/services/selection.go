package services

import (
	"log"
	"strconv"
	"strings"

	"github.com/vendly-ng/vendly-backend/internal/models"
)

// handleSelectItem maps the customer's reply back to an item from the
// previous listing turn and branches the funnel by business type
func (e *ConversationEngine) handleSelectItem(owner *models.BusinessOwner, session *models.ChatSession, intent models.Intent) Reply {
	items := session.Context.AvailableItems
	if len(items) == 0 {
		return Reply{Text: selectFirstReply()}
	}

	item, ok := ResolveSelection(items, intent.ItemReference)
	if !ok {
		return Reply{Text: itemNotFoundReply()}
	}

	log.Printf("🛒 %s selected %s (%s)", session.PhoneNumber, item.Name, item.ID)

	if owner.BusinessType == models.BusinessTypeEventPlanning {
		session.Context.BeginDateCollection(*item)
		return Reply{Text: askForDateReply(item)}
	}

	session.Context.BeginPaymentChoice(*item)
	return Reply{Text: paymentPromptReply(item)}
}

// ResolveSelection resolves a customer reference against the displayed
// items. Numeric references are 1-based ordinals into the snapshot. Anything
// else matches bidirectionally on name substrings; the first item in display
// order wins, with no ranking among multiple matches.
func ResolveSelection(items []models.Item, reference string) (*models.Item, bool) {
	ref := strings.TrimSpace(reference)
	if ref == "" {
		return nil, false
	}

	if ordinal, err := strconv.Atoi(ref); err == nil {
		if ordinal < 1 || ordinal > len(items) {
			return nil, false
		}
		return &items[ordinal-1], true
	}

	lowerRef := strings.ToLower(ref)
	for i := range items {
		name := strings.ToLower(items[i].Name)
		if strings.Contains(name, lowerRef) || strings.Contains(lowerRef, name) {
			return &items[i], true
		}
	}
	return nil, false
}
