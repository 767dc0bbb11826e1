package routes

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/vendly-ng/vendly-backend/internal/handlers"
	"github.com/vendly-ng/vendly-backend/internal/middleware"
	"github.com/vendly-ng/vendly-backend/internal/services"
	"github.com/vendly-ng/vendly-backend/internal/storage"
)

// SetupRoutes configures all API routes
func SetupRoutes(
	app *fiber.App,
	store storage.Store,
	engine *services.ConversationEngine,
	gateway services.MessagingGateway,
	paymentService *services.PaymentService,
) {
	whatsappHandler := handlers.NewWhatsAppHandler(store, engine, gateway)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	storageMode := "database"
	if os.Getenv("USE_MEMORY_STORE") == "true" {
		storageMode = "memory"
	}
	healthHandler := handlers.NewHealthHandler("1.0.0", storageMode)

	app.Get("/health", healthHandler.Check)

	// ========== WEBHOOK ROUTES ==========
	webhooks := app.Group("/webhook")

	// WhatsApp webhook - signature validation can be disabled for local
	// tunnels that rewrite the URL Twilio signed
	if os.Getenv("ENVIRONMENT") == "development" || os.Getenv("DISABLE_WEBHOOK_VALIDATION") == "true" {
		webhooks.Post("/whatsapp", whatsappHandler.HandleWebhook)
	} else {
		webhooks.Post("/whatsapp", middleware.ValidateTwilioSignature(), whatsappHandler.HandleWebhook)
	}

	// Paystack webhook
	if os.Getenv("ENVIRONMENT") == "development" || os.Getenv("DISABLE_WEBHOOK_VALIDATION") == "true" {
		webhooks.Post("/paystack", paymentHandler.HandleWebhook)
	} else {
		webhooks.Post("/paystack", middleware.ValidatePaystackSignature(), paymentHandler.HandleWebhook)
	}

	// ========== TEST ROUTES (Development Only) ==========
	if os.Getenv("ENVIRONMENT") == "development" {
		app.Post("/test/whatsapp", whatsappHandler.HandleTestWebhook)
	}
}
