package models

import "time"

// Item represents a catalog entry: a property listing or an event service
type Item struct {
	ID      string `json:"id" gorm:"primaryKey"`
	OwnerID string `json:"owner_id" gorm:"index"`

	// Item details
	ItemType    string   `json:"item_type"` // "property" or "service"
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Location    string   `json:"location"`
	Images      []string `json:"images" gorm:"serializer:json"`

	// Status
	Status  string `json:"status"` // "available", "sold", "unavailable"
	Deleted bool   `json:"deleted"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ItemType constants
const (
	ItemTypeProperty = "property"
	ItemTypeService  = "service"
)

// Item status constants
const (
	ItemStatusAvailable   = "available"
	ItemStatusSold        = "sold"
	ItemStatusUnavailable = "unavailable"
)

// ItemTypeForBusiness maps a business type to the item type it sells
func ItemTypeForBusiness(businessType string) string {
	if businessType == BusinessTypeEventPlanning {
		return ItemTypeService
	}
	return ItemTypeProperty
}

// FirstImage returns the lead image for media captions, or "" if none
func (i *Item) FirstImage() string {
	if len(i.Images) == 0 {
		return ""
	}
	return i.Images[0]
}
