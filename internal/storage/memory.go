package storage

import (
	"fmt"
	"sync"
	"time"

	"github.com/vendly-ng/vendly-backend/internal/models"
)

// MemoryStore holds all data in memory for tests and local development
type MemoryStore struct {
	owners    map[string]*models.BusinessOwner
	items     []*models.Item // insertion order is the catalog display order
	itemsByID map[string]*models.Item
	customers map[string]*models.Customer
	orders    map[string]*models.Order
	sessions  map[string]*models.ChatSession // keyed by ownerID|phone

	// Mutexes for thread safety
	ownerMu    sync.RWMutex
	itemMu     sync.RWMutex
	customerMu sync.RWMutex
	orderMu    sync.RWMutex
	sessionMu  sync.RWMutex

	// Counters for ID generation
	ownerCounter    int
	itemCounter     int
	customerCounter int
	orderCounter    int
	sessionCounter  uint
}

// NewMemoryStore creates a new in-memory storage
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		owners:    make(map[string]*models.BusinessOwner),
		itemsByID: make(map[string]*models.Item),
		customers: make(map[string]*models.Customer),
		orders:    make(map[string]*models.Order),
		sessions:  make(map[string]*models.ChatSession),
	}
}

// Business owner operations

func (m *MemoryStore) CreateOwner(owner *models.BusinessOwner) (*models.BusinessOwner, error) {
	m.ownerMu.Lock()
	defer m.ownerMu.Unlock()

	if owner.ID == "" {
		m.ownerCounter++
		owner.ID = fmt.Sprintf("BIZ%05d", m.ownerCounter)
	}
	owner.CreatedAt = time.Now()
	owner.UpdatedAt = time.Now()

	m.owners[owner.ID] = owner
	return owner, nil
}

func (m *MemoryStore) GetOwner(id string) (*models.BusinessOwner, error) {
	m.ownerMu.RLock()
	defer m.ownerMu.RUnlock()

	owner, exists := m.owners[id]
	if !exists {
		return nil, fmt.Errorf("business owner %s: %w", id, ErrNotFound)
	}
	return owner, nil
}

func (m *MemoryStore) GetOwnerByWhatsApp(number string) (*models.BusinessOwner, error) {
	m.ownerMu.RLock()
	defer m.ownerMu.RUnlock()

	for _, owner := range m.owners {
		if owner.WhatsAppNumber == number {
			return owner, nil
		}
	}
	return nil, fmt.Errorf("business for %s: %w", number, ErrNotFound)
}

// Catalog operations

func (m *MemoryStore) CreateItem(item *models.Item) (*models.Item, error) {
	m.itemMu.Lock()
	defer m.itemMu.Unlock()

	if item.ID == "" {
		m.itemCounter++
		item.ID = fmt.Sprintf("ITM%05d", m.itemCounter)
	}
	if item.Status == "" {
		item.Status = models.ItemStatusAvailable
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()

	m.items = append(m.items, item)
	m.itemsByID[item.ID] = item
	return item, nil
}

func (m *MemoryStore) GetItem(id string) (*models.Item, error) {
	m.itemMu.RLock()
	defer m.itemMu.RUnlock()

	item, exists := m.itemsByID[id]
	if !exists {
		return nil, fmt.Errorf("item %s: %w", id, ErrNotFound)
	}
	return item, nil
}

func (m *MemoryStore) ListAvailableItems(ownerID, businessType string) ([]*models.Item, error) {
	m.itemMu.RLock()
	defer m.itemMu.RUnlock()

	itemType := models.ItemTypeForBusiness(businessType)

	available := []*models.Item{}
	for _, item := range m.items {
		if item.OwnerID != ownerID || item.ItemType != itemType {
			continue
		}
		// Properties hide soft-deleted and non-available entries;
		// services carry no status filter.
		if itemType == models.ItemTypeProperty {
			if item.Deleted || item.Status != models.ItemStatusAvailable {
				continue
			}
		}
		available = append(available, item)
	}
	return available, nil
}

// Customer operations

func (m *MemoryStore) GetCustomer(id string) (*models.Customer, error) {
	m.customerMu.RLock()
	defer m.customerMu.RUnlock()

	customer, exists := m.customers[id]
	if !exists {
		return nil, fmt.Errorf("customer %s: %w", id, ErrNotFound)
	}
	return customer, nil
}

func (m *MemoryStore) GetCustomerByPhone(ownerID, phone string) (*models.Customer, error) {
	m.customerMu.RLock()
	defer m.customerMu.RUnlock()

	for _, customer := range m.customers {
		if customer.OwnerID == ownerID && customer.Phone == phone {
			return customer, nil
		}
	}
	return nil, fmt.Errorf("customer for %s: %w", phone, ErrNotFound)
}

func (m *MemoryStore) CreateCustomer(customer *models.Customer) (*models.Customer, error) {
	m.customerMu.Lock()
	defer m.customerMu.Unlock()

	if customer.ID == "" {
		m.customerCounter++
		customer.ID = fmt.Sprintf("CUS%05d", m.customerCounter)
	}
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = time.Now()

	m.customers[customer.ID] = customer
	return customer, nil
}

// Order operations

func (m *MemoryStore) CreateOrder(order *models.Order) (*models.Order, error) {
	m.orderMu.Lock()
	defer m.orderMu.Unlock()

	if order.ID == "" {
		m.orderCounter++
		order.ID = fmt.Sprintf("ORD%05d", m.orderCounter)
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()

	m.orders[order.ID] = order
	return order, nil
}

func (m *MemoryStore) GetOrder(id string) (*models.Order, error) {
	m.orderMu.RLock()
	defer m.orderMu.RUnlock()

	order, exists := m.orders[id]
	if !exists {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	return order, nil
}

func (m *MemoryStore) UpdateOrder(order *models.Order) error {
	m.orderMu.Lock()
	defer m.orderMu.Unlock()

	if _, exists := m.orders[order.ID]; !exists {
		return fmt.Errorf("order %s: %w", order.ID, ErrNotFound)
	}
	order.UpdatedAt = time.Now()
	m.orders[order.ID] = order
	return nil
}

func (m *MemoryStore) FindConflictingOrders(ownerID, eventDate string) ([]*models.Order, error) {
	m.orderMu.RLock()
	defer m.orderMu.RUnlock()

	blocking := map[string]bool{
		models.OrderStatusPending:    true,
		models.OrderStatusConfirmed:  true,
		models.OrderStatusProcessing: true,
	}

	conflicts := []*models.Order{}
	for _, order := range m.orders {
		if order.OwnerID == ownerID &&
			order.ItemType == models.ItemTypeService &&
			order.EventDate == eventDate &&
			blocking[order.Status] {
			conflicts = append(conflicts, order)
		}
	}
	return conflicts, nil
}

func (m *MemoryStore) GetUnpaidOrdersOlderThan(age time.Duration) ([]*models.Order, error) {
	m.orderMu.RLock()
	defer m.orderMu.RUnlock()

	cutoff := time.Now().Add(-age)
	unpaid := []*models.Order{}
	for _, order := range m.orders {
		if order.PaymentStatus == models.PaymentStatusUnpaid && order.CreatedAt.Before(cutoff) {
			unpaid = append(unpaid, order)
		}
	}
	return unpaid, nil
}

// Session operations

func (m *MemoryStore) GetOrCreateSession(ownerID, phone string) (*models.ChatSession, error) {
	m.sessionMu.Lock()
	defer m.sessionMu.Unlock()

	key := ownerID + "|" + phone
	session, exists := m.sessions[key]
	if exists && !session.Expired(time.Now()) {
		return session, nil
	}

	m.sessionCounter++
	session = &models.ChatSession{
		OwnerID:       ownerID,
		PhoneNumber:   phone,
		Messages:      []models.ChatMessage{},
		Context:       models.Context{},
		LastMessageAt: time.Now(),
	}
	session.ID = m.sessionCounter

	m.sessions[key] = session
	return session, nil
}

func (m *MemoryStore) SaveSession(session *models.ChatSession) error {
	m.sessionMu.Lock()
	defer m.sessionMu.Unlock()

	// Full overwrite, last writer wins
	m.sessions[session.OwnerID+"|"+session.PhoneNumber] = session
	return nil
}
