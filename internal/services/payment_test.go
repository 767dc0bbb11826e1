package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vendly-ng/vendly-backend/internal/models"
	"github.com/vendly-ng/vendly-backend/internal/storage"
)

type recordedMessage struct {
	to   string
	body string
}

type fakeGateway struct {
	sent    []recordedMessage
	sendErr error
}

func (f *fakeGateway) SendText(to string, message string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, recordedMessage{to: to, body: message})
	return nil
}

func (f *fakeGateway) SendImage(to string, imageURL string, caption string) error {
	return f.SendText(to, caption)
}

func seedOrder(t *testing.T, store *storage.MemoryStore) *models.Order {
	t.Helper()
	customer, err := store.CreateCustomer(&models.Customer{
		OwnerID: "BIZ00001",
		Phone:   "+2348055555555",
		Name:    "Ada",
	})
	if err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	order, err := store.CreateOrder(&models.Order{
		OwnerID:       "BIZ00001",
		CustomerID:    customer.ID,
		ItemType:      models.ItemTypeProperty,
		ItemName:      "Lekki Duplex",
		Amount:        5_000_000,
		PaymentMethod: models.PaymentMethodCard,
		PaymentStatus: models.PaymentStatusUnpaid,
		Status:        models.OrderStatusPending,
	})
	if err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return order
}

func TestChargeSuccessConfirmsOrderAndNotifies(t *testing.T) {
	store := storage.NewMemoryStore()
	gateway := &fakeGateway{}
	svc := NewPaymentService(store, gateway)
	order := seedOrder(t, store)

	payload := fmt.Sprintf(`{
		"event": "charge.success",
		"data": {
			"reference": "PSK-REF-123",
			"amount": 500000000,
			"metadata": {"order_id": %q}
		}
	}`, order.ID)

	if err := svc.ProcessPaymentWebhook([]byte(payload)); err != nil {
		t.Fatalf("webhook failed: %v", err)
	}

	updated, err := store.GetOrder(order.ID)
	if err != nil {
		t.Fatalf("order lookup: %v", err)
	}
	if updated.PaymentStatus != models.PaymentStatusCompleted {
		t.Errorf("expected completed payment status, got %s", updated.PaymentStatus)
	}
	if updated.Status != models.OrderStatusConfirmed {
		t.Errorf("expected confirmed order, got %s", updated.Status)
	}
	if updated.PaymentRef != "PSK-REF-123" {
		t.Errorf("expected payment reference recorded, got %q", updated.PaymentRef)
	}
	if updated.PaidAt == nil {
		t.Error("expected PaidAt timestamp")
	}

	if len(gateway.sent) != 1 {
		t.Fatalf("expected one confirmation message, got %d", len(gateway.sent))
	}
	if gateway.sent[0].to != "+2348055555555" {
		t.Errorf("notification sent to wrong number: %s", gateway.sent[0].to)
	}
	if !strings.Contains(gateway.sent[0].body, order.ID) {
		t.Errorf("confirmation should mention the order id, got %q", gateway.sent[0].body)
	}
	if !strings.Contains(gateway.sent[0].body, "₦5,000,000") {
		t.Errorf("confirmation should show the naira amount, got %q", gateway.sent[0].body)
	}
}

func TestChargeFailedMarksPaymentFailed(t *testing.T) {
	store := storage.NewMemoryStore()
	gateway := &fakeGateway{}
	svc := NewPaymentService(store, gateway)
	order := seedOrder(t, store)

	payload := fmt.Sprintf(`{
		"event": "charge.failed",
		"data": {
			"reference": "PSK-REF-456",
			"metadata": {"order_id": %q}
		}
	}`, order.ID)

	if err := svc.ProcessPaymentWebhook([]byte(payload)); err != nil {
		t.Fatalf("webhook failed: %v", err)
	}

	updated, _ := store.GetOrder(order.ID)
	if updated.PaymentStatus != models.PaymentStatusFailed {
		t.Errorf("expected failed payment status, got %s", updated.PaymentStatus)
	}
	if updated.Status != models.OrderStatusPending {
		t.Errorf("order status must stay pending on failure, got %s", updated.Status)
	}
	if len(gateway.sent) != 1 || !strings.Contains(gateway.sent[0].body, "didn't go through") {
		t.Errorf("expected a retry message, got %v", gateway.sent)
	}
}

func TestWebhookFallsBackToReferenceForOrderID(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewPaymentService(store, &fakeGateway{})
	order := seedOrder(t, store)

	// Payment pages set reference = order id and send no metadata
	payload := fmt.Sprintf(`{"event": "charge.success", "data": {"reference": %q}}`, order.ID)
	if err := svc.ProcessPaymentWebhook([]byte(payload)); err != nil {
		t.Fatalf("webhook failed: %v", err)
	}

	updated, _ := store.GetOrder(order.ID)
	if updated.PaymentStatus != models.PaymentStatusCompleted {
		t.Errorf("expected completed payment via reference fallback, got %s", updated.PaymentStatus)
	}
}

func TestWebhookIgnoresUnknownEvents(t *testing.T) {
	store := storage.NewMemoryStore()
	gateway := &fakeGateway{}
	svc := NewPaymentService(store, gateway)
	seedOrder(t, store)

	if err := svc.ProcessPaymentWebhook([]byte(`{"event": "transfer.success", "data": {}}`)); err != nil {
		t.Fatalf("unknown events must be acknowledged, got %v", err)
	}
	if len(gateway.sent) != 0 {
		t.Errorf("no messages expected for unknown events, got %d", len(gateway.sent))
	}
}

func TestWebhookRejectsMissingOrder(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewPaymentService(store, &fakeGateway{})

	payload := `{"event": "charge.success", "data": {"reference": "ORD-MISSING"}}`
	if err := svc.ProcessPaymentWebhook([]byte(payload)); err == nil {
		t.Error("expected an error for an unknown order")
	}

	if err := svc.ProcessPaymentWebhook([]byte(`{"event": "charge.success", "data": {}}`)); err == nil {
		t.Error("expected an error when no order id is present")
	}
}
