package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/vendly-ng/vendly-backend/internal/models"
)

// ClassifierContext carries what the classifier may know about the session
type ClassifierContext struct {
	BusinessType    string
	BusinessName    string
	AwaitingPayment bool
}

// Classifier turns a free-text customer message into a structured intent.
// Implementations never return errors: any failure is absorbed into the
// deterministic fallback so the conversation always moves forward.
type Classifier interface {
	Classify(message string, cctx ClassifierContext) models.Intent
	GenerateResponse(prompt string, cctx ClassifierContext) string
}

// FallbackApology is returned when free-text generation is unavailable
const FallbackApology = "Sorry, I'm having a little trouble right now. Please try again in a moment. 🙏"

// OpenAIClassifier classifies intents with the OpenAI chat completion API
type OpenAIClassifier struct {
	client *openai.Client
	model  string
}

// NewOpenAIClassifier creates a classifier from environment configuration
func NewOpenAIClassifier() (*OpenAIClassifier, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("missing OPENAI_API_KEY in environment variables")
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIClassifier{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

// Classify submits the message for classification; any failure falls back to
// the deterministic rule cascade
func (c *OpenAIClassifier) Classify(message string, cctx ClassifierContext) models.Intent {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: classifierSystemPrompt(cctx)},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		Temperature: 0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := c.client.CreateChatCompletion(context.Background(), req)
	if err != nil {
		log.Printf("⚠️  Intent classification failed, using fallback: %v", err)
		return FallbackClassify(message, cctx)
	}
	if len(resp.Choices) == 0 {
		log.Println("⚠️  Intent classification returned no choices, using fallback")
		return FallbackClassify(message, cctx)
	}

	var intent models.Intent
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &intent); err != nil {
		log.Printf("⚠️  Intent classification returned malformed JSON, using fallback: %v", err)
		return FallbackClassify(message, cctx)
	}
	if !validAction(intent.Action) {
		log.Printf("⚠️  Intent classification returned unknown action %q, using fallback", intent.Action)
		return FallbackClassify(message, cctx)
	}

	return intent
}

// GenerateResponse produces free-text greeting/clarification copy; it
// returns a fixed apology if the call fails
func (c *OpenAIClassifier) GenerateResponse(prompt string, cctx ClassifierContext) string {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: responderSystemPrompt(cctx)},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   300,
	}

	resp, err := c.client.CreateChatCompletion(context.Background(), req)
	if err != nil {
		log.Printf("⚠️  Response generation failed, using canned apology: %v", err)
		return FallbackApology
	}
	if len(resp.Choices) == 0 {
		log.Println("⚠️  Response generation returned no choices, using canned apology")
		return FallbackApology
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

func validAction(action string) bool {
	switch action {
	case models.ActionShowListings, models.ActionSelectItem, models.ActionProvideDate,
		models.ActionChoosePayment, models.ActionUnknown:
		return true
	}
	return false
}

func classifierSystemPrompt(cctx ClassifierContext) string {
	var b strings.Builder

	b.WriteString("You classify WhatsApp messages sent to " + cctx.BusinessName + ", ")
	if cctx.BusinessType == models.BusinessTypeEventPlanning {
		b.WriteString("an event planning business. Customers browse services and book them for a date.\n")
	} else {
		b.WriteString("a real estate business. Customers browse property listings and purchase them.\n")
	}

	b.WriteString(`
Respond with strict JSON only, no prose. Schema:
{
  "action": "show_listings" | "select_item" | "provide_date" | "choose_payment" | "unknown",
  "confidence": 0.0-1.0,
  "item_reference": "number or name the customer referenced (select_item only)",
  "payment_method": "paystack" | "manual" (choose_payment only),
  "event_date": "YYYY-MM-DD (provide_date only)",
  "event_time": "free text time (provide_date only)",
  "guest_count": "free text (provide_date only)",
  "event_location": "free text (provide_date only)",
  "filters": {"max_price": number, "bedrooms": number}
}

Rules:
- "show_listings": the customer wants to browse what is available. Extract
  max_price in plain figures (e.g. "under 5m" means 5000000) and bedrooms
  when mentioned.
- "select_item": the customer picked an item by number or by name.
- "provide_date": the customer gave an event date. Normalize to YYYY-MM-DD.
- "choose_payment": the customer chose how to pay. "1" or mentions of
  Paystack/card mean "paystack"; "2" or transfer mean "manual".
- Anything else is "unknown".
`)

	if cctx.AwaitingPayment {
		b.WriteString("\nThe customer was just asked to choose a payment method, so short replies like \"1\" or \"2\" are choose_payment.\n")
	}

	return b.String()
}

func responderSystemPrompt(cctx ClassifierContext) string {
	kind := "a real estate business selling property listings"
	if cctx.BusinessType == models.BusinessTypeEventPlanning {
		kind = "an event planning business selling event services"
	}
	return fmt.Sprintf(
		"You are the WhatsApp assistant for %s, %s. Keep replies short (2-3 sentences), warm and actionable. Never invent listings, prices or availability.",
		cctx.BusinessName, kind,
	)
}
