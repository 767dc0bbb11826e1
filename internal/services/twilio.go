package services

import (
	"fmt"
	"log"
	"os"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// MessagingGateway delivers outbound messages to the chat network
type MessagingGateway interface {
	SendText(to string, message string) error
	SendImage(to string, imageURL string, caption string) error
}

var gatewayInstance MessagingGateway

// SetMessagingGateway sets the global gateway instance (call from main.go)
func SetMessagingGateway(g MessagingGateway) {
	gatewayInstance = g
}

// GetMessagingGateway returns the global gateway instance
func GetMessagingGateway() MessagingGateway {
	return gatewayInstance
}

// TwilioService sends WhatsApp messages via Twilio
type TwilioService struct {
	client *twilio.RestClient
	from   string // Twilio WhatsApp number, format "whatsapp:+14155238886"
}

// NewTwilioService creates a new Twilio service instance
func NewTwilioService() (*TwilioService, error) {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	from := os.Getenv("TWILIO_WHATSAPP_FROM")

	if accountSid == "" || authToken == "" || from == "" {
		return nil, fmt.Errorf("missing Twilio credentials in environment variables")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})

	return &TwilioService{
		client: client,
		from:   from,
	}, nil
}

// SendText sends a plain WhatsApp message via Twilio
func (t *TwilioService) SendText(to string, message string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(t.from)
	params.SetTo(fmt.Sprintf("whatsapp:%s", to))
	params.SetBody(message)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("❌ Failed to send WhatsApp message: %v", err)
		return err
	}

	log.Printf("✅ WhatsApp message sent! SID: %s", *resp.Sid)
	return nil
}

// SendImage sends a WhatsApp image with a caption via Twilio
func (t *TwilioService) SendImage(to string, imageURL string, caption string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(t.from)
	params.SetTo(fmt.Sprintf("whatsapp:%s", to))
	params.SetBody(caption)
	params.SetMediaUrl([]string{imageURL})

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("❌ Failed to send WhatsApp image: %v", err)
		return err
	}

	log.Printf("✅ WhatsApp image sent! SID: %s", *resp.Sid)
	return nil
}
