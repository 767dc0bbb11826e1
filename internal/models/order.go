package models

import "time"

// Order represents a purchase created at the end of a chat funnel
type Order struct {
	ID         string `json:"id" gorm:"primaryKey"`
	OwnerID    string `json:"owner_id" gorm:"index"`
	CustomerID string `json:"customer_id" gorm:"index"`

	// Item linkage (snapshot, no recomputation of price)
	ItemType string  `json:"item_type"` // "property" or "service"
	ItemID   string  `json:"item_id"`
	ItemName string  `json:"item_name"`
	Amount   float64 `json:"amount"`

	// Payment
	PaymentMethod string `json:"payment_method"` // "card" or "bank_transfer"
	PaymentStatus string `json:"payment_status"` // "unpaid", "completed", "failed"
	PaymentRef    string `json:"payment_ref"`    // Paystack reference

	// Status
	Status string `json:"status"` // "pending", "confirmed", "processing", "completed", "cancelled"

	// Event details (service orders only)
	EventDate     string `json:"event_date,omitempty" gorm:"index"`
	EventTime     string `json:"event_time,omitempty"`
	GuestCount    string `json:"guest_count,omitempty"`
	EventLocation string `json:"event_location,omitempty"`

	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Payment method constants
const (
	PaymentMethodCard         = "card"
	PaymentMethodBankTransfer = "bank_transfer"
)

// Payment status constants
const (
	PaymentStatusUnpaid    = "unpaid"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Order status constants
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)
