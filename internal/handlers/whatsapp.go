package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/vendly-ng/vendly-backend/internal/models"
	"github.com/vendly-ng/vendly-backend/internal/services"
	"github.com/vendly-ng/vendly-backend/internal/storage"
)

// WhatsAppHandler handles inbound WhatsApp webhook requests
type WhatsAppHandler struct {
	store   storage.Store
	engine  *services.ConversationEngine
	gateway services.MessagingGateway
}

// NewWhatsAppHandler creates a new WhatsApp handler
func NewWhatsAppHandler(store storage.Store, engine *services.ConversationEngine, gateway services.MessagingGateway) *WhatsAppHandler {
	return &WhatsAppHandler{
		store:   store,
		engine:  engine,
		gateway: gateway,
	}
}

// TwilioWebhookPayload represents an incoming WhatsApp message from Twilio
type TwilioWebhookPayload struct {
	MessageSid          string `form:"MessageSid"`
	AccountSid          string `form:"AccountSid"`
	MessagingServiceSid string `form:"MessagingServiceSid"`
	From                string `form:"From"` // customer number (whatsapp:+2348012345678)
	To                  string `form:"To"`   // business WhatsApp number
	Body                string `form:"Body"` // message text
	NumMedia            string `form:"NumMedia"`
}

// HandleWebhook processes incoming WhatsApp messages
func (h *WhatsAppHandler) HandleWebhook(c *fiber.Ctx) error {
	var payload TwilioWebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing webhook: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid webhook payload",
		})
	}

	// Status callbacks and media-only events carry no text to process
	if payload.Body == "" || payload.From == "" {
		return c.SendStatus(fiber.StatusOK)
	}

	from := strings.TrimPrefix(payload.From, "whatsapp:")
	to := strings.TrimPrefix(payload.To, "whatsapp:")

	log.Printf("📱 WhatsApp message from %s to %s: %s", from, to, payload.Body)

	owner, err := h.store.GetOwnerByWhatsApp(to)
	if err != nil {
		log.Printf("⚠️  Message for unknown business number %s dropped", to)
		return c.SendStatus(fiber.StatusOK)
	}

	session, err := h.store.GetOrCreateSession(owner.ID, from)
	if err != nil {
		log.Printf("❌ Failed to load session for %s: %v", from, err)
		return c.SendStatus(fiber.StatusOK)
	}

	reply := h.engine.HandleInboundMessage(payload.Body, session, owner)

	// Deliver, then log the assistant turn only on successful delivery
	if err := h.gateway.SendText(from, reply.Text); err != nil {
		log.Printf("❌ Failed to send WhatsApp response to %s: %v", from, err)
	} else {
		session.Append(models.RoleAssistant, reply.Text)
	}
	for _, media := range reply.Media {
		if media.URL == "" {
			if err := h.gateway.SendText(from, media.Caption); err != nil {
				log.Printf("❌ Failed to send caption to %s: %v", from, err)
			}
			continue
		}
		if err := h.gateway.SendImage(from, media.URL, media.Caption); err != nil {
			log.Printf("❌ Failed to send image to %s: %v", from, err)
		}
	}

	if err := h.store.SaveSession(session); err != nil {
		log.Printf("❌ Failed to save session for %s: %v", from, err)
	}

	return c.SendStatus(fiber.StatusOK)
}

// TestWebhookPayload drives the engine without Twilio (development only)
type TestWebhookPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Message string `json:"message"`
}

// HandleTestWebhook processes test messages and returns the reply as JSON
func (h *WhatsAppHandler) HandleTestWebhook(c *fiber.Ctx) error {
	var payload TestWebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid test payload",
		})
	}

	log.Printf("🧪 Test webhook from %s: %s", payload.From, payload.Message)

	owner, err := h.store.GetOwnerByWhatsApp(payload.To)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No business registered for that number",
		})
	}

	session, err := h.store.GetOrCreateSession(owner.ID, payload.From)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load session",
		})
	}

	reply := h.engine.HandleInboundMessage(payload.Message, session, owner)

	if err := h.store.SaveSession(session); err != nil {
		log.Printf("❌ Failed to save session for %s: %v", payload.From, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"reply":   reply,
		"context": session.Context,
	})
}
