package storage

import (
	"errors"
	"time"

	"github.com/vendly-ng/vendly-backend/internal/models"
)

// ErrNotFound reports a lookup miss, as opposed to a store failure. Callers
// that create-on-miss must match it with errors.Is so connection errors are
// never mistaken for an absent record.
var ErrNotFound = errors.New("record not found")

var storeInstance Store

// SetStore sets the global store instance (call from main.go)
func SetStore(s Store) {
	storeInstance = s
}

// GetStore returns the global store instance
func GetStore() Store {
	return storeInstance
}

// Store defines the interface for storage operations
type Store interface {
	// Business owner operations
	CreateOwner(owner *models.BusinessOwner) (*models.BusinessOwner, error)
	GetOwner(id string) (*models.BusinessOwner, error)
	GetOwnerByWhatsApp(number string) (*models.BusinessOwner, error)

	// Catalog operations
	CreateItem(item *models.Item) (*models.Item, error)
	GetItem(id string) (*models.Item, error)
	ListAvailableItems(ownerID, businessType string) ([]*models.Item, error)

	// Customer operations
	GetCustomer(id string) (*models.Customer, error)
	GetCustomerByPhone(ownerID, phone string) (*models.Customer, error)
	CreateCustomer(customer *models.Customer) (*models.Customer, error)

	// Order operations
	CreateOrder(order *models.Order) (*models.Order, error)
	GetOrder(id string) (*models.Order, error)
	UpdateOrder(order *models.Order) error
	FindConflictingOrders(ownerID, eventDate string) ([]*models.Order, error)
	GetUnpaidOrdersOlderThan(age time.Duration) ([]*models.Order, error)

	// Session operations
	GetOrCreateSession(ownerID, phone string) (*models.ChatSession, error)
	SaveSession(session *models.ChatSession) error
}
