package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/vendly-ng/vendly-backend/internal/services"
)

// PaymentHandler handles Paystack webhook requests
type PaymentHandler struct {
	paymentService *services.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// HandleWebhook processes Paystack charge events
func (h *PaymentHandler) HandleWebhook(c *fiber.Ctx) error {
	if err := h.paymentService.ProcessPaymentWebhook(c.Body()); err != nil {
		log.Printf("❌ Payment webhook failed: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Webhook processing failed",
		})
	}
	return c.SendStatus(fiber.StatusOK)
}
