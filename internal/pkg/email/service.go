// internal/pkg/email/service.go
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/goldenbarrel/storefront-backend/internal/config"
	"github.com/goldenbarrel/storefront-backend/internal/domain/order"
	"github.com/goldenbarrel/storefront-backend/internal/domain/pricing"
	"github.com/keighl/postmark"
	"github.com/sirupsen/logrus"
)

// Service renders and delivers storefront emails using the configured
// provider. It implements order.Notifier.
type Service struct {
	config    *config.Config
	log       *logrus.Logger
	templates map[string]*template.Template
	postmark  *postmark.Client
}

// NewService creates a new email service
func NewService(cfg *config.Config, log *logrus.Logger) *Service {
	service := &Service{
		config: cfg,
		log:    log,
		templates: map[string]*template.Template{
			"order_confirmation": template.Must(template.New("order_confirmation").Parse(customerConfirmationTemplate)),
			"store_notification": template.Must(template.New("store_notification").Parse(storeNotificationTemplate)),
		},
	}

	if cfg.Email.Provider == "postmark" {
		service.postmark = postmark.NewClient(cfg.Email.PostmarkToken, "")
	}

	return service
}

// Send delivers an email using the configured provider
func (s *Service) Send(ctx context.Context, email *Email) error {
	switch s.config.Email.Provider {
	case "smtp":
		return s.sendSMTPEmail(email)
	case "postmark":
		return s.sendPostmarkEmail(email)
	case "log":
		return s.logEmail(email)
	default:
		return fmt.Errorf("unsupported email provider: %s", s.config.Email.Provider)
	}
}

// SendOrderConfirmation sends the customer's order confirmation email
func (s *Service) SendOrderConfirmation(ctx context.Context, o *order.Order) error {
	htmlContent, err := s.renderTemplate("order_confirmation", s.orderData(o))
	if err != nil {
		return fmt.Errorf("failed to render order confirmation template: %w", err)
	}

	return s.Send(ctx, &Email{
		To:          []string{o.Customer.Email},
		Subject:     fmt.Sprintf("Order Confirmation - %s", o.Number),
		HTMLContent: htmlContent,
	})
}

// SendStoreNotification sends the new-order notification to the store inbox
func (s *Service) SendStoreNotification(ctx context.Context, o *order.Order) error {
	htmlContent, err := s.renderTemplate("store_notification", s.orderData(o))
	if err != nil {
		return fmt.Errorf("failed to render store notification template: %w", err)
	}

	return s.Send(ctx, &Email{
		To:          []string{s.config.Order.StoreEmail},
		Subject:     fmt.Sprintf("New Order Received - %s", o.Number),
		HTMLContent: htmlContent,
	})
}

func (s *Service) orderData(o *order.Order) OrderEmailData {
	items := make([]OrderItemLine, len(o.Items))
	for i, li := range o.Items {
		items[i] = OrderItemLine{
			Name:      li.Name,
			Brand:     li.Brand,
			Quantity:  li.Quantity,
			LineTotal: pricing.FormatCents(li.LineTotalCents()),
		}
	}

	c := o.Customer
	return OrderEmailData{
		SiteName:            s.config.Email.FromName,
		OrderNumber:         o.Number,
		OrderDate:           o.CreatedAt.Format("January 2, 2006"),
		FirstName:           c.FirstName,
		LastName:            c.LastName,
		Email:               c.Email,
		Phone:               c.Phone,
		Address:             c.Address,
		City:                c.City,
		State:               c.State,
		ZipCode:             c.ZipCode,
		Country:             c.Country,
		SpecialInstructions: c.SpecialInstructions,
		Items:               items,
		Total:               pricing.FormatCents(o.TotalCents),
		SupportEmail:        s.config.Order.StoreEmail,
		Year:                o.CreatedAt.Year(),
	}
}

func (s *Service) renderTemplate(name string, data interface{}) (string, error) {
	tmpl, exists := s.templates[name]
	if !exists {
		return "", fmt.Errorf("template %s not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}

// sendPostmarkEmail delivers through the Postmark API
func (s *Service) sendPostmarkEmail(email *Email) error {
	if s.postmark == nil {
		return fmt.Errorf("postmark client not configured")
	}

	fromEmail := s.config.Email.FromEmail
	if s.config.Email.FromName != "" {
		fromEmail = fmt.Sprintf("%s <%s>", s.config.Email.FromName, s.config.Email.FromEmail)
	}

	_, err := s.postmark.SendEmail(postmark.Email{
		From:     fromEmail,
		To:       strings.Join(email.To, ","),
		ReplyTo:  s.config.Email.ReplyTo,
		Subject:  email.Subject,
		HtmlBody: email.HTMLContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email via postmark: %w", err)
	}

	return nil
}

// logEmail writes the message to the log instead of sending it. Used when no
// delivery provider is configured so development orders still leave a trace.
func (s *Service) logEmail(email *Email) error {
	s.log.WithFields(logrus.Fields{
		"to":        email.To,
		"subject":   email.Subject,
		"body_size": len(email.HTMLContent),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}).Info("Email delivery skipped: no provider configured")
	return nil
}
