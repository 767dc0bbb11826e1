package models

import "time"

// BusinessOwner represents a business selling through WhatsApp
type BusinessOwner struct {
	ID           string `json:"id" gorm:"primaryKey"`
	BusinessName string `json:"business_name"`
	BusinessType string `json:"business_type"` // "real_estate" or "event_planning"

	// WhatsApp number customers message (webhook routing key)
	WhatsAppNumber string `json:"whatsapp_number" gorm:"uniqueIndex"`

	// Contact
	OwnerName string `json:"owner_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	// Bank details for manual transfer payments
	BankName          string `json:"bank_name"`
	BankAccountNumber string `json:"bank_account_number"`
	BankAccountName   string `json:"bank_account_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BusinessType constants
const (
	BusinessTypeRealEstate    = "real_estate"
	BusinessTypeEventPlanning = "event_planning"
)
