package services

import (
	"fmt"
	"strings"

	"github.com/vendly-ng/vendly-backend/internal/models"
	"github.com/vendly-ng/vendly-backend/internal/utils"
)

// Canned reply copy for the conversation engine. Kept in one place so the
// funnel reads top to bottom in conversation.go.

func greetingReply(owner *models.BusinessOwner) string {
	if owner.BusinessType == models.BusinessTypeEventPlanning {
		return fmt.Sprintf(
			"👋 Welcome to %s!\n\nWe plan unforgettable events: weddings, parties, corporate functions and more.\n\n🎉 Reply *\"show services\"* to see what we offer, or tell me what you're planning!",
			owner.BusinessName,
		)
	}
	return fmt.Sprintf(
		"👋 Welcome to %s!\n\nWe help you find your next home or investment property.\n\n🏠 Reply *\"show listings\"* to browse available properties, or tell me what you're looking for!",
		owner.BusinessName,
	)
}

func menuReply(owner *models.BusinessOwner) string {
	if owner.BusinessType == models.BusinessTypeEventPlanning {
		return "I can help you with:\n\n1️⃣ *Show services* - browse our event packages\n2️⃣ *Book a service* - pick one and lock in your date\n\nJust tell me what you'd like to do! 😊"
	}
	return "I can help you with:\n\n1️⃣ *Show listings* - browse available properties\n2️⃣ *Buy a property* - pick one and complete payment\n\nJust tell me what you'd like to do! 😊"
}

func nothingAvailableReply(owner *models.BusinessOwner) string {
	if owner.BusinessType == models.BusinessTypeEventPlanning {
		return fmt.Sprintf("😔 %s has no services listed right now. Please check back soon!", owner.BusinessName)
	}
	return fmt.Sprintf("😔 %s has no properties available right now. Please check back soon!", owner.BusinessName)
}

const noMatchDisclaimer = "🔍 I couldn't find an exact match for that, but here's everything we have:\n\n"

func listingHeader(owner *models.BusinessOwner, count int) string {
	noun := "properties"
	if owner.BusinessType == models.BusinessTypeEventPlanning {
		noun = "services"
	}
	return fmt.Sprintf("Here are %d %s for you. 📋 Reply with the *number* of the one you want!", count, noun)
}

func itemCaption(position int, item *models.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%d. %s*\n", position, item.Name)
	fmt.Fprintf(&b, "💰 %s\n", utils.FormatNaira(item.Price))
	if item.Location != "" {
		fmt.Fprintf(&b, "📍 %s\n", item.Location)
	}
	if item.Description != "" {
		fmt.Fprintf(&b, "%s\n", utils.Truncate(item.Description, 120))
	}
	fmt.Fprintf(&b, "\nReply *%d* to select.", position)
	return b.String()
}

func selectFirstReply() string {
	return "Please ask to see what's available first - try *\"show listings\"* - then reply with the number or name of the one you want. 😊"
}

func itemNotFoundReply() string {
	return "🤔 I couldn't find that one. Reply with the *number* from the list I sent, or the exact name."
}

func askForDateReply(item *models.Item) string {
	return fmt.Sprintf(
		"Great choice! 🎉 *%s* (%s)\n\nWhat date is your event? Please send it like *2025-12-25*, and feel free to add the time, guest count and venue.",
		item.Name, utils.FormatNaira(item.Price),
	)
}

func unclearDateReply() string {
	return "I couldn't read that date. 📅 Please send it in the format *YYYY-MM-DD*, e.g. *2025-12-25*."
}

func pastDateReply() string {
	return "That date has already passed. 📅 Please pick a date from today onwards."
}

func dateBookedReply(date string) string {
	return fmt.Sprintf("😔 Sorry, *%s* is already booked. Please pick another date.", date)
}

func paymentPromptReply(item *models.Item) string {
	return fmt.Sprintf(
		"Perfect! *%s* - %s\n\nHow would you like to pay?\n\n1️⃣ *Paystack* (card - instant confirmation)\n2️⃣ *Bank transfer* (manual confirmation)\n\nReply *1* or *2*.",
		item.Name, utils.FormatNaira(item.Price),
	)
}

func paystackReply(order *models.Order, paymentLink string) string {
	return fmt.Sprintf(
		"🧾 Order *%s* created - %s\n\nPay securely with Paystack:\n%s\n\n⚡ Confirmation is instant. I'll message you as soon as payment lands!",
		order.ID, utils.FormatNaira(order.Amount), paymentLink,
	)
}

func bankTransferReply(order *models.Order, owner *models.BusinessOwner) string {
	return fmt.Sprintf(
		"🧾 Order *%s* created - %s\n\nPlease transfer to:\n🏦 %s\n🔢 %s\n👤 %s\n\nUse *%s* as the transfer reference. Confirmation takes 5 minutes to 14 hours.",
		order.ID, utils.FormatNaira(order.Amount),
		owner.BankName, owner.BankAccountNumber, owner.BankAccountName,
		order.ID,
	)
}

func genericFailureReply() string {
	return "😓 Sorry, something went wrong on our side. Please try again."
}
