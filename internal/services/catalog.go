package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/vendly-ng/vendly-backend/internal/models"
)

// MaxListingItems caps how many items one listing reply shows. The cap is
// also the ordinal ceiling customers can reply with.
const MaxListingItems = 5

// handleShowListings fetches and narrows the owner's catalog, fixes the
// ordinal numbering and snapshots the displayed subset into the context
func (e *ConversationEngine) handleShowListings(owner *models.BusinessOwner, session *models.ChatSession, intent models.Intent) Reply {
	items, err := e.store.ListAvailableItems(owner.ID, owner.BusinessType)
	if err != nil {
		log.Printf("❌ Catalog read failed for owner %s: %v", owner.ID, err)
		return Reply{Text: genericFailureReply()}
	}

	if len(items) == 0 {
		return Reply{Text: nothingAvailableReply(owner)}
	}

	shown := ApplyCatalogFilters(items, intent.Filters)
	disclaimer := ""
	if len(shown) == 0 {
		// No match: silently fall back to the full list with a disclaimer
		shown = items
		disclaimer = noMatchDisclaimer
	}

	if len(shown) > MaxListingItems {
		shown = shown[:MaxListingItems]
	}

	// The displayed subset, in display order, is what selection ordinals
	// index into on the next turn.
	snapshot := make([]models.Item, len(shown))
	media := make([]MediaItem, 0, len(shown))
	for i, item := range shown {
		snapshot[i] = *item
		media = append(media, MediaItem{
			URL:     item.FirstImage(),
			Caption: itemCaption(i+1, item),
		})
	}
	session.Context.AvailableItems = snapshot

	return Reply{
		Text:  disclaimer + listingHeader(owner, len(shown)),
		Media: media,
	}
}

// ApplyCatalogFilters narrows items by the extracted listing filters.
// Bedrooms match on a "<N> bedroom" substring in the name or description.
func ApplyCatalogFilters(items []*models.Item, filters models.IntentFilters) []*models.Item {
	matched := []*models.Item{}
	for _, item := range items {
		if filters.MaxPrice > 0 && item.Price > filters.MaxPrice {
			continue
		}
		if filters.Bedrooms > 0 && !matchesBedrooms(item, filters.Bedrooms) {
			continue
		}
		matched = append(matched, item)
	}
	return matched
}

func matchesBedrooms(item *models.Item, bedrooms int) bool {
	needle := fmt.Sprintf("%d bedroom", bedrooms)
	haystack := strings.ToLower(item.Name + " " + item.Description)
	return strings.Contains(haystack, needle)
}
