package models

// Stage is the explicit conversation state. Exactly one stage is active at a
// time; the awaiting stages can only be entered with a selected item, so the
// invalid flag combinations of a loose context bag cannot be represented.
type Stage string

const (
	StageBrowsing        Stage = "browsing"
	StageAwaitingDate    Stage = "awaiting_date"
	StageAwaitingPayment Stage = "awaiting_payment"
)

// Context is the per-session conversation context, persisted between turns
type Context struct {
	Stage Stage `json:"stage,omitempty"`

	// Ordered snapshot of items shown to the customer. Load-bearing: the
	// "reply with a number" ordinals index into this slice.
	AvailableItems []Item `json:"available_items,omitempty"`

	SelectedItem *Item `json:"selected_item,omitempty"`

	// Event details (event planning funnels)
	EventDate     string `json:"event_date,omitempty"`
	EventTime     string `json:"event_time,omitempty"`
	GuestCount    string `json:"guest_count,omitempty"`
	EventLocation string `json:"event_location,omitempty"`

	// Set once an order is created
	OrderID       string `json:"order_id,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
}

// AwaitingDate reports whether the session is waiting on an event date
func (c *Context) AwaitingDate() bool {
	return c.Stage == StageAwaitingDate
}

// AwaitingPayment reports whether the session is waiting on a payment choice
func (c *Context) AwaitingPayment() bool {
	return c.Stage == StageAwaitingPayment
}

// BeginDateCollection selects an item and moves to the awaiting-date stage
func (c *Context) BeginDateCollection(item Item) {
	c.SelectedItem = &item
	c.Stage = StageAwaitingDate
}

// BeginPaymentChoice selects an item and moves to the awaiting-payment stage
func (c *Context) BeginPaymentChoice(item Item) {
	c.SelectedItem = &item
	c.Stage = StageAwaitingPayment
}

// SetEventDetails records validated event details and advances to payment
func (c *Context) SetEventDetails(date, eventTime, guests, location string) {
	c.EventDate = date
	c.EventTime = eventTime
	c.GuestCount = guests
	c.EventLocation = location
	c.Stage = StageAwaitingPayment
}

// CompleteOrder records the created order and returns to browsing
func (c *Context) CompleteOrder(orderID, paymentMethod string) {
	c.OrderID = orderID
	c.PaymentMethod = paymentMethod
	c.Stage = StageBrowsing
}

// ChatMessage is one entry in a session's message log
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Message role constants
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Intent is the classified meaning of one inbound message. Ephemeral:
// produced and consumed within a single turn.
type Intent struct {
	Action     string  `json:"action"`
	Confidence float64 `json:"confidence"`

	// Action-specific slots
	ItemReference string        `json:"item_reference,omitempty"`
	PaymentMethod string        `json:"payment_method,omitempty"` // "paystack" or "manual"
	EventDate     string        `json:"event_date,omitempty"`     // ISO-8601 date
	EventTime     string        `json:"event_time,omitempty"`
	GuestCount    string        `json:"guest_count,omitempty"`
	EventLocation string        `json:"event_location,omitempty"`
	Filters       IntentFilters `json:"filters,omitempty"`
}

// IntentFilters narrows a listing request
type IntentFilters struct {
	MaxPrice float64 `json:"max_price,omitempty"`
	Bedrooms int     `json:"bedrooms,omitempty"`
}

// Intent action constants
const (
	ActionShowListings  = "show_listings"
	ActionSelectItem    = "select_item"
	ActionProvideDate   = "provide_date"
	ActionChoosePayment = "choose_payment"
	ActionUnknown       = "unknown"
)

// Payment choice constants (intent slot values)
const (
	PaymentChoicePaystack = "paystack"
	PaymentChoiceManual   = "manual"
)
