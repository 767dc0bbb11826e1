package middleware

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
)

// ValidatePaystackSignature verifies the x-paystack-signature header:
// HMAC-SHA512 of the raw body keyed with the Paystack secret key
func ValidatePaystackSignature() fiber.Handler {
	return func(c *fiber.Ctx) error {
		signature := c.Get("x-paystack-signature")
		if signature == "" {
			return c.Status(401).JSON(fiber.Map{
				"error": "Missing Paystack signature",
			})
		}

		secret := os.Getenv("PAYSTACK_SECRET_KEY")
		if secret == "" {
			log.Println("ERROR: PAYSTACK_SECRET_KEY not set")
			return c.Status(500).JSON(fiber.Map{
				"error": "Server configuration error",
			})
		}

		h := hmac.New(sha512.New, []byte(secret))
		h.Write(c.Body())
		expected := hex.EncodeToString(h.Sum(nil))

		if !hmac.Equal([]byte(signature), []byte(expected)) {
			return c.Status(401).JSON(fiber.Map{
				"error": "Invalid signature",
			})
		}

		return c.Next()
	}
}
