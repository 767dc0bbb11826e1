package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewID builds a prefixed short id, e.g. "ORD-7F3A2B1C"
func NewID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(uuid.NewString()[:8]))
}

func (o *BusinessOwner) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = NewID("BIZ")
	}
	return nil
}

func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = NewID("ITM")
	}
	return nil
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = NewID("CUS")
	}
	return nil
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = NewID("ORD")
	}
	return nil
}
