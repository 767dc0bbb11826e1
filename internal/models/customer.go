package models

import "time"

// Customer represents a buyer, unique per business owner and phone number
type Customer struct {
	ID      string `json:"id" gorm:"primaryKey"`
	OwnerID string `json:"owner_id" gorm:"index:idx_customer_owner_phone,unique"`
	Phone   string `json:"phone" gorm:"index:idx_customer_owner_phone,unique"`
	Name    string `json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
