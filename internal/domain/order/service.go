// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/goldenbarrel/storefront-backend/internal/config"
	"github.com/goldenbarrel/storefront-backend/internal/domain/cart"
	"github.com/goldenbarrel/storefront-backend/internal/domain/pricing"
	"github.com/sirupsen/logrus"
)

// Submission failures are recoverable: the cart is left untouched and the
// caller may fix the input and retry.
var (
	ErrValidation   = errors.New("order validation failed")
	ErrBelowMinimum = errors.New("order total below minimum")
)

// Notifier delivers order notification emails. Failures are logged, never
// allowed to fail the order itself.
type Notifier interface {
	SendOrderConfirmation(ctx context.Context, o *Order) error
	SendStoreNotification(ctx context.Context, o *Order) error
}

// Service handles order submission
type Service struct {
	cartStore *cart.Store
	notifier  Notifier
	config    *config.Config
	log       *logrus.Logger
}

// NewService creates a new order service
func NewService(cartStore *cart.Store, notifier Notifier, cfg *config.Config, log *logrus.Logger) *Service {
	return &Service{
		cartStore: cartStore,
		notifier:  notifier,
		config:    cfg,
		log:       log,
	}
}

// Submit turns the session's cart into an order. On success the cart is
// cleared and the order returned; on any validation or business-rule failure
// the cart is preserved and the error surfaced for display. Notification
// failures do not fail the order.
func (s *Service) Submit(ctx context.Context, sessionID string, customer *Customer) (*Order, error) {
	if err := validateCustomer(customer); err != nil {
		return nil, err
	}

	items := s.cartStore.Get(ctx, sessionID)
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrValidation)
	}

	total := cart.TotalPriceCents(items)
	if total < s.config.Order.MinTotalCents {
		return nil, fmt.Errorf("%w: order total %s is below the %s minimum",
			ErrBelowMinimum,
			pricing.FormatCents(total),
			pricing.FormatCents(s.config.Order.MinTotalCents))
	}

	o := &Order{
		Number:     s.generateOrderNumber(),
		Customer:   *customer,
		Items:      items,
		TotalCents: total,
		CreatedAt:  time.Now().UTC(),
	}

	s.notify(ctx, o)

	if err := s.cartStore.Clear(ctx, sessionID); err != nil {
		// The order already went out; an uncleared cart is an annoyance,
		// not a failure.
		s.log.WithField("order_number", o.Number).WithError(err).
			Warn("Failed to clear cart after order submission")
	}

	s.log.WithFields(logrus.Fields{
		"order_number": o.Number,
		"email":        o.Customer.Email,
		"items":        len(o.Items),
		"total":        pricing.FormatCents(o.TotalCents),
	}).Info("Order submitted")

	return o, nil
}

func validateCustomer(c *Customer) error {
	var missing []string
	if strings.TrimSpace(c.FirstName) == "" {
		missing = append(missing, "first_name")
	}
	if strings.TrimSpace(c.LastName) == "" {
		missing = append(missing, "last_name")
	}
	if strings.TrimSpace(c.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(c.Phone) == "" {
		missing = append(missing, "phone")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

func (s *Service) notify(ctx context.Context, o *Order) {
	if s.notifier == nil {
		return
	}

	if err := s.notifier.SendOrderConfirmation(ctx, o); err != nil {
		s.log.WithField("order_number", o.Number).WithError(err).
			Error("Failed to send customer confirmation email")
	}
	if err := s.notifier.SendStoreNotification(ctx, o); err != nil {
		s.log.WithField("order_number", o.Number).WithError(err).
			Error("Failed to send store notification email")
	}
}

const orderNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// generateOrderNumber builds identifiers like GBW-1735689600000-4K7Q2M9XB
func (s *Service) generateOrderNumber() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = orderNumberAlphabet[rand.Intn(len(orderNumberAlphabet))]
	}

	return fmt.Sprintf("%s-%d-%s", s.config.Order.NumberPrefix, time.Now().UnixMilli(), suffix)
}
