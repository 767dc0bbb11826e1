package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/vendly-ng/vendly-backend/internal/models"
	"github.com/vendly-ng/vendly-backend/internal/storage"
	"github.com/vendly-ng/vendly-backend/internal/utils"
)

// PaymentService processes Paystack webhooks and notifies customers
type PaymentService struct {
	store   storage.Store
	gateway MessagingGateway
}

// NewPaymentService creates a new payment service
func NewPaymentService(store storage.Store, gateway MessagingGateway) *PaymentService {
	return &PaymentService{
		store:   store,
		gateway: gateway,
	}
}

// PaystackWebhookPayload represents the webhook data from Paystack
type PaystackWebhookPayload struct {
	Event string `json:"event"`
	Data  struct {
		Reference string  `json:"reference"`
		Amount    float64 `json:"amount"` // kobo
		Metadata  struct {
			OrderID string `json:"order_id"`
		} `json:"metadata"`
	} `json:"data"`
}

// ProcessPaymentWebhook handles payment gateway webhooks
func (p *PaymentService) ProcessPaymentWebhook(payload []byte) error {
	var webhook PaystackWebhookPayload
	if err := json.Unmarshal(payload, &webhook); err != nil {
		return fmt.Errorf("failed to parse webhook: %v", err)
	}

	log.Printf("Processing payment webhook: %s", webhook.Event)

	switch webhook.Event {
	case "charge.success":
		return p.handleChargeSuccess(&webhook)
	case "charge.failed":
		return p.handleChargeFailed(&webhook)
	default:
		log.Printf("Unhandled webhook event: %s", webhook.Event)
		return nil
	}
}

// handleChargeSuccess marks the order paid and confirms over WhatsApp
func (p *PaymentService) handleChargeSuccess(webhook *PaystackWebhookPayload) error {
	order, err := p.lookupOrder(webhook)
	if err != nil {
		return err
	}

	now := time.Now()
	order.PaymentStatus = models.PaymentStatusCompleted
	order.PaymentRef = webhook.Data.Reference
	order.Status = models.OrderStatusConfirmed
	order.PaidAt = &now

	if err := p.store.UpdateOrder(order); err != nil {
		return fmt.Errorf("failed to update order %s: %v", order.ID, err)
	}

	p.notifyCustomer(order, fmt.Sprintf(
		"✅ Payment received! Order *%s* (%s) is confirmed. Thank you! 🎉",
		order.ID, utils.FormatNaira(order.Amount),
	))

	log.Printf("✅ Payment processed: %s for order %s", webhook.Data.Reference, order.ID)
	return nil
}

// handleChargeFailed records the failure and asks the customer to retry
func (p *PaymentService) handleChargeFailed(webhook *PaystackWebhookPayload) error {
	order, err := p.lookupOrder(webhook)
	if err != nil {
		return err
	}

	order.PaymentStatus = models.PaymentStatusFailed
	if err := p.store.UpdateOrder(order); err != nil {
		return fmt.Errorf("failed to update order %s: %v", order.ID, err)
	}

	p.notifyCustomer(order, fmt.Sprintf(
		"❌ Your payment for order *%s* didn't go through. Please try the payment link again.",
		order.ID,
	))

	log.Printf("Payment failed: %s for order %s", webhook.Data.Reference, order.ID)
	return nil
}

// lookupOrder resolves the order from webhook metadata, falling back to the
// transaction reference (the payment page sets reference = order id)
func (p *PaymentService) lookupOrder(webhook *PaystackWebhookPayload) (*models.Order, error) {
	orderID := webhook.Data.Metadata.OrderID
	if orderID == "" {
		orderID = webhook.Data.Reference
	}
	if orderID == "" {
		return nil, fmt.Errorf("order id not found in webhook payload")
	}

	order, err := p.store.GetOrder(orderID)
	if err != nil {
		return nil, fmt.Errorf("order not found: %v", err)
	}
	return order, nil
}

func (p *PaymentService) notifyCustomer(order *models.Order, message string) {
	if p.gateway == nil {
		log.Printf("Cannot notify customer for order %s - gateway is nil", order.ID)
		return
	}

	customer, err := p.store.GetCustomer(order.CustomerID)
	if err != nil {
		log.Printf("Cannot notify customer %s: %v", order.CustomerID, err)
		return
	}

	if err := p.gateway.SendText(customer.Phone, message); err != nil {
		log.Printf("Failed to send payment notification to %s: %v", customer.Phone, err)
	}
}
