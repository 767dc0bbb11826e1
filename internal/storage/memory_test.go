package storage

import (
	"testing"
	"time"

	"github.com/vendly-ng/vendly-backend/internal/models"
)

func TestSessionReusedWithinWindow(t *testing.T) {
	store := NewMemoryStore()

	first, err := store.GetOrCreateSession("BIZ00001", "+2348011111111")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	first.Append(models.RoleUser, "hello")
	if err := store.SaveSession(first); err != nil {
		t.Fatalf("save session: %v", err)
	}

	second, err := store.GetOrCreateSession("BIZ00001", "+2348011111111")
	if err != nil {
		t.Fatalf("fetch session: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("expected the same session within the window, got %d and %d", first.ID, second.ID)
	}
	if len(second.Messages) != 1 {
		t.Errorf("expected saved history to survive, got %d messages", len(second.Messages))
	}
}

func TestSessionExpiresAfterWindow(t *testing.T) {
	store := NewMemoryStore()

	stale, _ := store.GetOrCreateSession("BIZ00001", "+2348011111111")
	stale.Append(models.RoleUser, "old conversation")
	stale.LastMessageAt = time.Now().Add(-models.SessionWindow - time.Minute)
	if err := store.SaveSession(stale); err != nil {
		t.Fatalf("save session: %v", err)
	}

	fresh, err := store.GetOrCreateSession("BIZ00001", "+2348011111111")
	if err != nil {
		t.Fatalf("fetch session: %v", err)
	}
	if fresh.ID == stale.ID {
		t.Error("expected a fresh session after the 24 hour window")
	}
	if len(fresh.Messages) != 0 {
		t.Errorf("fresh session must start empty, got %d messages", len(fresh.Messages))
	}
	if fresh.Context.AwaitingDate() || fresh.Context.AwaitingPayment() {
		t.Errorf("fresh session must not carry a stage, got %s", fresh.Context.Stage)
	}
}

func TestSessionsAreScopedPerOwnerAndPhone(t *testing.T) {
	store := NewMemoryStore()

	a, _ := store.GetOrCreateSession("BIZ00001", "+2348011111111")
	b, _ := store.GetOrCreateSession("BIZ00002", "+2348011111111")
	c, _ := store.GetOrCreateSession("BIZ00001", "+2348022222222")

	if a.ID == b.ID || a.ID == c.ID {
		t.Error("sessions must be keyed by owner and phone together")
	}
}

func TestListAvailableItemsFiltersProperties(t *testing.T) {
	store := NewMemoryStore()

	store.CreateItem(&models.Item{OwnerID: "BIZ00001", ItemType: models.ItemTypeProperty, Name: "Available Flat"})
	store.CreateItem(&models.Item{OwnerID: "BIZ00001", ItemType: models.ItemTypeProperty, Name: "Sold Flat", Status: models.ItemStatusSold})
	store.CreateItem(&models.Item{OwnerID: "BIZ00001", ItemType: models.ItemTypeProperty, Name: "Deleted Flat", Deleted: true})
	store.CreateItem(&models.Item{OwnerID: "BIZ00002", ItemType: models.ItemTypeProperty, Name: "Other Owner Flat"})
	store.CreateItem(&models.Item{OwnerID: "BIZ00001", ItemType: models.ItemTypeService, Name: "Wedding Package"})

	items, err := store.ListAvailableItems("BIZ00001", models.BusinessTypeRealEstate)
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Available Flat" {
		t.Fatalf("expected only the available property, got %d items", len(items))
	}
}

func TestListAvailableItemsKeepsAllServices(t *testing.T) {
	store := NewMemoryStore()

	// Service listings carry no availability status filter
	store.CreateItem(&models.Item{OwnerID: "BIZ00001", ItemType: models.ItemTypeService, Name: "Gold Package"})
	store.CreateItem(&models.Item{OwnerID: "BIZ00001", ItemType: models.ItemTypeService, Name: "Silver Package", Status: models.ItemStatusSold})
	store.CreateItem(&models.Item{OwnerID: "BIZ00001", ItemType: models.ItemTypeProperty, Name: "A Flat"})

	items, err := store.ListAvailableItems("BIZ00001", models.BusinessTypeEventPlanning)
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected both services, got %d items", len(items))
	}
}

func TestListAvailableItemsPreservesInsertionOrder(t *testing.T) {
	store := NewMemoryStore()

	names := []string{"First", "Second", "Third"}
	for _, name := range names {
		store.CreateItem(&models.Item{OwnerID: "BIZ00001", ItemType: models.ItemTypeProperty, Name: name})
	}

	items, _ := store.ListAvailableItems("BIZ00001", models.BusinessTypeRealEstate)
	for i, name := range names {
		if items[i].Name != name {
			t.Fatalf("expected %s at position %d, got %s", name, i, items[i].Name)
		}
	}
}

func TestFindConflictingOrdersScopesByStatusAndOwner(t *testing.T) {
	store := NewMemoryStore()

	mk := func(ownerID, itemType, date, status string) {
		if _, err := store.CreateOrder(&models.Order{
			OwnerID:   ownerID,
			ItemType:  itemType,
			EventDate: date,
			Status:    status,
		}); err != nil {
			t.Fatalf("seed order: %v", err)
		}
	}

	mk("BIZ00001", models.ItemTypeService, "2099-12-25", models.OrderStatusPending)
	mk("BIZ00001", models.ItemTypeService, "2099-12-25", models.OrderStatusCancelled)
	mk("BIZ00001", models.ItemTypeService, "2099-06-01", models.OrderStatusConfirmed)
	mk("BIZ00002", models.ItemTypeService, "2099-12-25", models.OrderStatusConfirmed)
	mk("BIZ00001", models.ItemTypeProperty, "2099-12-25", models.OrderStatusPending)

	conflicts, err := store.FindConflictingOrders("BIZ00001", "2099-12-25")
	if err != nil {
		t.Fatalf("find conflicts: %v", err)
	}
	if len(conflicts) != 1 {
		t.Fatalf("expected exactly one blocking order, got %d", len(conflicts))
	}
	if conflicts[0].Status != models.OrderStatusPending {
		t.Errorf("expected the pending service order, got %s", conflicts[0].Status)
	}
}

func TestGetUnpaidOrdersOlderThan(t *testing.T) {
	store := NewMemoryStore()

	old, _ := store.CreateOrder(&models.Order{
		OwnerID:       "BIZ00001",
		PaymentStatus: models.PaymentStatusUnpaid,
	})
	old.CreatedAt = time.Now().Add(-2 * time.Hour)

	store.CreateOrder(&models.Order{
		OwnerID:       "BIZ00001",
		PaymentStatus: models.PaymentStatusUnpaid,
	})
	paid, _ := store.CreateOrder(&models.Order{
		OwnerID:       "BIZ00001",
		PaymentStatus: models.PaymentStatusCompleted,
	})
	paid.CreatedAt = time.Now().Add(-2 * time.Hour)

	unpaid, err := store.GetUnpaidOrdersOlderThan(time.Hour)
	if err != nil {
		t.Fatalf("list unpaid: %v", err)
	}
	if len(unpaid) != 1 || unpaid[0].ID != old.ID {
		t.Fatalf("expected only the stale unpaid order, got %d", len(unpaid))
	}
}

func TestOwnerLookupByWhatsAppNumber(t *testing.T) {
	store := NewMemoryStore()

	owner, err := store.CreateOwner(&models.BusinessOwner{
		BusinessName:   "Horizon Homes",
		BusinessType:   models.BusinessTypeRealEstate,
		WhatsAppNumber: "+2348099999999",
	})
	if err != nil {
		t.Fatalf("create owner: %v", err)
	}

	found, err := store.GetOwnerByWhatsApp("+2348099999999")
	if err != nil {
		t.Fatalf("lookup owner: %v", err)
	}
	if found.ID != owner.ID {
		t.Errorf("expected owner %s, got %s", owner.ID, found.ID)
	}

	if _, err := store.GetOwnerByWhatsApp("+2340000000000"); err == nil {
		t.Error("expected an error for an unregistered number")
	}
}
