package storage

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/vendly-ng/vendly-backend/internal/models"
)

// DatabaseStore implements Store backed by PostgreSQL via GORM
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a new database-backed store
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// Business owner operations

func (d *DatabaseStore) CreateOwner(owner *models.BusinessOwner) (*models.BusinessOwner, error) {
	if err := d.db.Create(owner).Error; err != nil {
		return nil, err
	}
	return owner, nil
}

func (d *DatabaseStore) GetOwner(id string) (*models.BusinessOwner, error) {
	var owner models.BusinessOwner
	if err := d.db.First(&owner, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("business owner %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &owner, nil
}

func (d *DatabaseStore) GetOwnerByWhatsApp(number string) (*models.BusinessOwner, error) {
	var owner models.BusinessOwner
	if err := d.db.First(&owner, "whats_app_number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("business for %s: %w", number, ErrNotFound)
		}
		return nil, err
	}
	return &owner, nil
}

// Catalog operations

func (d *DatabaseStore) CreateItem(item *models.Item) (*models.Item, error) {
	if item.Status == "" {
		item.Status = models.ItemStatusAvailable
	}
	if err := d.db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (d *DatabaseStore) GetItem(id string) (*models.Item, error) {
	var item models.Item
	if err := d.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("item %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &item, nil
}

func (d *DatabaseStore) ListAvailableItems(ownerID, businessType string) ([]*models.Item, error) {
	itemType := models.ItemTypeForBusiness(businessType)

	query := d.db.Where("owner_id = ? AND item_type = ?", ownerID, itemType)
	// Properties hide soft-deleted and non-available entries;
	// services carry no status filter.
	if itemType == models.ItemTypeProperty {
		query = query.Where("deleted = ? AND status = ?", false, models.ItemStatusAvailable)
	}

	var items []*models.Item
	if err := query.Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Customer operations

func (d *DatabaseStore) GetCustomer(id string) (*models.Customer, error) {
	var customer models.Customer
	if err := d.db.First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &customer, nil
}

func (d *DatabaseStore) GetCustomerByPhone(ownerID, phone string) (*models.Customer, error) {
	var customer models.Customer
	err := d.db.First(&customer, "owner_id = ? AND phone = ?", ownerID, phone).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer for %s: %w", phone, ErrNotFound)
		}
		return nil, err
	}
	return &customer, nil
}

func (d *DatabaseStore) CreateCustomer(customer *models.Customer) (*models.Customer, error) {
	if err := d.db.Create(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

// Order operations

func (d *DatabaseStore) CreateOrder(order *models.Order) (*models.Order, error) {
	if err := d.db.Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (d *DatabaseStore) GetOrder(id string) (*models.Order, error) {
	var order models.Order
	if err := d.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &order, nil
}

func (d *DatabaseStore) UpdateOrder(order *models.Order) error {
	return d.db.Save(order).Error
}

func (d *DatabaseStore) FindConflictingOrders(ownerID, eventDate string) ([]*models.Order, error) {
	var orders []*models.Order
	err := d.db.Where(
		"owner_id = ? AND item_type = ? AND event_date = ? AND status IN ?",
		ownerID,
		models.ItemTypeService,
		eventDate,
		[]string{models.OrderStatusPending, models.OrderStatusConfirmed, models.OrderStatusProcessing},
	).Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (d *DatabaseStore) GetUnpaidOrdersOlderThan(age time.Duration) ([]*models.Order, error) {
	cutoff := time.Now().Add(-age)

	var orders []*models.Order
	err := d.db.Where(
		"payment_status = ? AND created_at < ?",
		models.PaymentStatusUnpaid, cutoff,
	).Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// Session operations

func (d *DatabaseStore) GetOrCreateSession(ownerID, phone string) (*models.ChatSession, error) {
	var session models.ChatSession
	err := d.db.
		Where("owner_id = ? AND phone_number = ?", ownerID, phone).
		Order("created_at DESC").
		First(&session).Error

	if err == nil && !session.Expired(time.Now()) {
		return &session, nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// New session: no live window for this phone number
	session = models.ChatSession{
		OwnerID:       ownerID,
		PhoneNumber:   phone,
		Messages:      []models.ChatMessage{},
		Context:       models.Context{},
		LastMessageAt: time.Now(),
	}
	if err := d.db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (d *DatabaseStore) SaveSession(session *models.ChatSession) error {
	// Full overwrite, last writer wins
	return d.db.Save(session).Error
}
