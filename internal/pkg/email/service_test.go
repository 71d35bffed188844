package email

import (
	"context"
	"testing"
	"time"

	"github.com/goldenbarrel/storefront-backend/internal/config"
	"github.com/goldenbarrel/storefront-backend/internal/domain/cart"
	"github.com/goldenbarrel/storefront-backend/internal/domain/catalog"
	"github.com/goldenbarrel/storefront-backend/internal/domain/order"
	"github.com/goldenbarrel/storefront-backend/internal/domain/pricing"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEmailConfig() *config.Config {
	return &config.Config{
		Order: config.OrderConfig{
			StoreEmail: "orders@goldenbarrel.example",
		},
		Email: config.EmailConfig{
			Provider:  "log",
			FromEmail: "noreply@goldenbarrel.example",
			FromName:  "Golden Barrel",
		},
	}
}

func testOrder() *order.Order {
	return &order.Order{
		Number: "GBW-1735689600000-4K7Q2M9XB",
		Customer: order.Customer{
			FirstName: "Ada",
			LastName:  "Byrne",
			Email:     "ada@example.com",
			Phone:     "555-0100",
			Address:   "1 Distillery Lane",
			City:      "Louisville",
			State:     "KY",
			ZipCode:   "40202",
			Country:   "US",
		},
		Items: []cart.LineItem{
			{
				Product: catalog.Product{
					ID:         "angel-hill",
					Name:       "Angel Hill Bourbon",
					Brand:      "Angel Hill",
					PriceCents: 4999,
				},
				Quantity:        2,
				SelectedOptions: pricing.Options{Engraving: true},
			},
		},
		TotalCents: 13196,
		CreatedAt:  time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC),
	}
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestOrderDataRendering(t *testing.T) {
	svc := NewService(testEmailConfig(), quietLogger())

	data := svc.orderData(testOrder())
	assert.Equal(t, "Golden Barrel", data.SiteName)
	assert.Equal(t, "GBW-1735689600000-4K7Q2M9XB", data.OrderNumber)
	assert.Equal(t, "January 15, 2026", data.OrderDate)
	assert.Equal(t, "$131.96", data.Total)
	require.Len(t, data.Items, 1)
	assert.Equal(t, "$131.96", data.Items[0].LineTotal)
	assert.Equal(t, 2, data.Items[0].Quantity)
	assert.Equal(t, 2026, data.Year)
}

func TestRenderTemplates(t *testing.T) {
	svc := NewService(testEmailConfig(), quietLogger())
	data := svc.orderData(testOrder())

	confirmation, err := svc.renderTemplate("order_confirmation", data)
	require.NoError(t, err)
	assert.Contains(t, confirmation, "GBW-1735689600000-4K7Q2M9XB")
	assert.Contains(t, confirmation, "Angel Hill Bourbon")
	assert.Contains(t, confirmation, "$131.96")
	assert.Contains(t, confirmation, "Thank you for your order, Ada!")

	notification, err := svc.renderTemplate("store_notification", data)
	require.NoError(t, err)
	assert.Contains(t, notification, "GBW-1735689600000-4K7Q2M9XB")
	assert.Contains(t, notification, "ada@example.com")
	assert.Contains(t, notification, "555-0100")
}

func TestRenderTemplateUnknownName(t *testing.T) {
	svc := NewService(testEmailConfig(), quietLogger())

	_, err := svc.renderTemplate("missing", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSendWithLogProvider(t *testing.T) {
	svc := NewService(testEmailConfig(), quietLogger())

	err := svc.Send(context.Background(), &Email{
		To:          []string{"ada@example.com"},
		Subject:     "Test",
		HTMLContent: "<p>hi</p>",
	})
	assert.NoError(t, err)
}

func TestSendUnsupportedProvider(t *testing.T) {
	cfg := testEmailConfig()
	cfg.Email.Provider = "carrier-pigeon"
	svc := NewService(cfg, quietLogger())

	err := svc.Send(context.Background(), &Email{To: []string{"a@b.c"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported email provider")
}

func TestNotifierRouting(t *testing.T) {
	svc := NewService(testEmailConfig(), quietLogger())
	o := testOrder()

	// With the log provider both notifications succeed without a network
	assert.NoError(t, svc.SendOrderConfirmation(context.Background(), o))
	assert.NoError(t, svc.SendStoreNotification(context.Background(), o))
}
