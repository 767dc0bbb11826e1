package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/vendly-ng/vendly-backend/internal/models"
	"github.com/vendly-ng/vendly-backend/internal/storage"
)

// handleChoosePayment creates the customer and order records and branches
// into the Paystack-link flow or the manual bank transfer flow.
//
// The customer and order writes are two separate operations with no shared
// transaction; a customer created before a failed order write stays behind
// and is logged for reconciliation.
func (e *ConversationEngine) handleChoosePayment(owner *models.BusinessOwner, session *models.ChatSession, intent models.Intent) Reply {
	ctx := &session.Context
	if ctx.SelectedItem == nil {
		return Reply{Text: selectFirstReply()}
	}

	method := intent.PaymentMethod
	if method == "" {
		if intent.ItemReference == "1" {
			method = models.PaymentChoicePaystack
		} else {
			method = models.PaymentChoiceManual
		}
	}

	// Lazy customer resolution: look up first, create exactly once on a
	// genuine miss. Any other lookup error is a store failure, not a miss.
	customer, err := e.store.GetCustomerByPhone(owner.ID, session.PhoneNumber)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("❌ Customer lookup failed for %s: %v", session.PhoneNumber, err)
			return Reply{Text: genericFailureReply()}
		}
		customer, err = e.store.CreateCustomer(&models.Customer{
			OwnerID: owner.ID,
			Phone:   session.PhoneNumber,
		})
		if err != nil {
			log.Printf("❌ Customer create failed for %s: %v", session.PhoneNumber, err)
			return Reply{Text: genericFailureReply()}
		}
	}

	item := ctx.SelectedItem
	order := &models.Order{
		OwnerID:       owner.ID,
		CustomerID:    customer.ID,
		ItemType:      item.ItemType,
		ItemID:        item.ID,
		ItemName:      item.Name,
		Amount:        item.Price,
		PaymentMethod: wireMethod(method),
		PaymentStatus: models.PaymentStatusUnpaid,
		Status:        models.OrderStatusPending,
	}
	if item.ItemType == models.ItemTypeService && ctx.EventDate != "" {
		order.EventDate = ctx.EventDate
		order.EventTime = ctx.EventTime
		order.GuestCount = ctx.GuestCount
		order.EventLocation = ctx.EventLocation
	}

	created, err := e.store.CreateOrder(order)
	if err != nil {
		log.Printf("❌ Order create failed for customer %s (customer record kept): %v", customer.ID, err)
		return Reply{Text: genericFailureReply()}
	}

	ctx.CompleteOrder(created.ID, method)
	log.Printf("🧾 Order %s created: %s pays %.0f via %s", created.ID, session.PhoneNumber, created.Amount, method)

	if method == models.PaymentChoicePaystack {
		return Reply{Text: paystackReply(created, e.PaymentLink(created.ID))}
	}
	return Reply{Text: bankTransferReply(created, owner)}
}

// PaymentLink builds the hosted payment-initiation URL for an order
func (e *ConversationEngine) PaymentLink(orderID string) string {
	return fmt.Sprintf("%s/pay/%s", e.paymentBaseURL, orderID)
}

func wireMethod(method string) string {
	if method == models.PaymentChoicePaystack {
		return models.PaymentMethodCard
	}
	return models.PaymentMethodBankTransfer
}
