package services

import (
	"fmt"
	"log"

	"github.com/vendly-ng/vendly-backend/internal/models"
	"github.com/vendly-ng/vendly-backend/internal/storage"
)

// ConfidenceThreshold is the classification confidence below which the
// engine asks for clarification instead of acting
const ConfidenceThreshold = 0.5

// MediaItem is one outbound image attachment
type MediaItem struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// Reply is what one conversational turn produces
type Reply struct {
	Text  string      `json:"text"`
	Media []MediaItem `json:"media,omitempty"`
}

// ConversationEngine turns inbound chat messages into replies and context
// updates. One invocation per message, fully synchronous; the caller
// persists the session and delivers the reply.
type ConversationEngine struct {
	store          storage.Store
	classifier     Classifier
	paymentBaseURL string
}

// NewConversationEngine creates the engine
func NewConversationEngine(store storage.Store, classifier Classifier, paymentBaseURL string) *ConversationEngine {
	return &ConversationEngine{
		store:          store,
		classifier:     classifier,
		paymentBaseURL: paymentBaseURL,
	}
}

// HandleInboundMessage processes one inbound message. It appends the
// customer message to the session log and mutates session.Context; the
// caller saves the session and sends the reply. Assistant replies are
// logged by the transport layer once delivery succeeds, so a brand-new
// session holds exactly the one customer message after this returns.
func (e *ConversationEngine) HandleInboundMessage(text string, session *models.ChatSession, owner *models.BusinessOwner) (reply Reply) {
	// Nothing in a turn is fatal: a panic becomes a generic failure reply
	// and leaves the whole session, message log included, untouched for
	// the next attempt.
	savedContext := session.Context
	savedMessages := session.Messages
	savedLastMessageAt := session.LastMessageAt
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ Conversation turn panicked for %s: %v", session.PhoneNumber, r)
			session.Context = savedContext
			session.Messages = savedMessages
			session.LastMessageAt = savedLastMessageAt
			reply = Reply{Text: genericFailureReply()}
		}
	}()

	session.Append(models.RoleUser, text)

	// First message ever in this session: canned greeting, no classifier
	if len(session.Messages) == 1 {
		log.Printf("👋 Greeting %s on behalf of %s", session.PhoneNumber, owner.BusinessName)
		return Reply{Text: greetingReply(owner)}
	}

	cctx := ClassifierContext{
		BusinessType:    owner.BusinessType,
		BusinessName:    owner.BusinessName,
		AwaitingPayment: session.Context.AwaitingPayment(),
	}

	intent := e.classifier.Classify(text, cctx)
	log.Printf("🧠 Intent for %s: %s (%.2f)", session.PhoneNumber, intent.Action, intent.Confidence)

	if intent.Confidence < ConfidenceThreshold {
		prompt := fmt.Sprintf(
			"The customer wrote: %q. You didn't understand what they want. Ask one short clarifying question.",
			text,
		)
		return Reply{Text: e.classifier.GenerateResponse(prompt, cctx)}
	}

	switch intent.Action {
	case models.ActionShowListings:
		return e.handleShowListings(owner, session, intent)
	case models.ActionSelectItem:
		return e.handleSelectItem(owner, session, intent)
	case models.ActionProvideDate:
		return e.handleProvideDate(owner, session, intent)
	case models.ActionChoosePayment:
		return e.handleChoosePayment(owner, session, intent)
	default:
		return Reply{Text: menuReply(owner)}
	}
}
