package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/vendly-ng/vendly-backend/internal/models"
	"github.com/vendly-ng/vendly-backend/internal/services"
	"github.com/vendly-ng/vendly-backend/internal/storage"
	"github.com/vendly-ng/vendly-backend/internal/utils"
)

const (
	reminderInterval = 30 * time.Minute
	reminderAfter    = time.Hour
)

// ReminderJob nudges customers who created an order but never paid
type ReminderJob struct {
	store          storage.Store
	gateway        services.MessagingGateway
	paymentBaseURL string

	reminded map[string]bool // one nudge per order
	stop     chan struct{}
}

// NewReminderJob creates a new payment reminder job
func NewReminderJob(store storage.Store, gateway services.MessagingGateway, paymentBaseURL string) *ReminderJob {
	return &ReminderJob{
		store:          store,
		gateway:        gateway,
		paymentBaseURL: paymentBaseURL,
		reminded:       make(map[string]bool),
		stop:           make(chan struct{}),
	}
}

// Start begins the reminder loop
func (r *ReminderJob) Start() {
	log.Println("Starting payment reminder job...")
	go r.run()
}

// Stop halts the reminder loop
func (r *ReminderJob) Stop() {
	log.Println("Stopping payment reminder job...")
	close(r.stop)
}

func (r *ReminderJob) run() {
	ticker := time.NewTicker(reminderInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.sendPaymentReminders()
		}
	}
}

// sendPaymentReminders messages customers with orders unpaid for over an hour
func (r *ReminderJob) sendPaymentReminders() {
	orders, err := r.store.GetUnpaidOrdersOlderThan(reminderAfter)
	if err != nil {
		log.Printf("Failed to fetch unpaid orders: %v", err)
		return
	}

	for _, order := range orders {
		if r.reminded[order.ID] {
			continue
		}

		customer, err := r.store.GetCustomer(order.CustomerID)
		if err != nil {
			log.Printf("Cannot remind customer %s: %v", order.CustomerID, err)
			continue
		}

		message := fmt.Sprintf(
			"👋 Just a reminder: order *%s* (%s) is still awaiting payment.",
			order.ID, utils.FormatNaira(order.Amount),
		)
		if order.PaymentMethod == models.PaymentMethodCard {
			message += fmt.Sprintf("\n\nPay here: %s/pay/%s", r.paymentBaseURL, order.ID)
		}

		if err := r.gateway.SendText(customer.Phone, message); err != nil {
			log.Printf("Failed to send payment reminder for %s: %v", order.ID, err)
			continue
		}

		r.reminded[order.ID] = true
		log.Printf("Payment reminder sent for order %s", order.ID)
	}
}
