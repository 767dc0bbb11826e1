package services

import (
	"log"
	"time"

	"github.com/vendly-ng/vendly-backend/internal/models"
)

// eventDateLayout is the ISO date form the classifier normalizes dates to
const eventDateLayout = "2006-01-02"

// handleProvideDate validates a proposed event date against the calendar
// and existing bookings, then advances the funnel to payment
func (e *ConversationEngine) handleProvideDate(owner *models.BusinessOwner, session *models.ChatSession, intent models.Intent) Reply {
	ctx := &session.Context
	if ctx.SelectedItem == nil {
		return Reply{Text: selectFirstReply()}
	}

	// Parse in the local zone; plain Parse would yield midnight UTC and
	// reject today's date anywhere west of UTC
	date, err := time.ParseInLocation(eventDateLayout, intent.EventDate, time.Local)
	if err != nil {
		return Reply{Text: unclearDateReply()}
	}

	// Compare dates only: today itself is acceptable
	today := truncateToDay(time.Now())
	if truncateToDay(date).Before(today) {
		return Reply{Text: pastDateReply()}
	}

	conflicts, err := e.store.FindConflictingOrders(owner.ID, intent.EventDate)
	if err != nil {
		log.Printf("❌ Conflict check failed for owner %s on %s: %v", owner.ID, intent.EventDate, err)
		return Reply{Text: genericFailureReply()}
	}
	if len(conflicts) > 0 {
		return Reply{Text: dateBookedReply(intent.EventDate)}
	}

	ctx.SetEventDetails(intent.EventDate, intent.EventTime, intent.GuestCount, intent.EventLocation)
	return Reply{Text: paymentPromptReply(ctx.SelectedItem)}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
