// Package mailer sends customer e-mails through SendGrid.
package mailer

import (
	"context"
	"fmt"
	"log"
	"strings"

	"watchstore/internal/models"
	"watchstore/internal/pricing"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Config holds SendGrid credentials and the sender identity.
type Config struct {
	APIKey     string
	SenderName string
	SenderAddr string
}

// SendGridMailer sends order e-mails with the SendGrid v3 API.
type SendGridMailer struct {
	client *sendgrid.Client
	from   *mail.Email
}

// NewSendGridMailer creates a mailer that sends through the SendGrid API.
func NewSendGridMailer(cfg Config) *SendGridMailer {
	return &SendGridMailer{
		client: sendgrid.NewSendClient(cfg.APIKey),
		from:   mail.NewEmail(cfg.SenderName, cfg.SenderAddr),
	}
}

// SendOrderConfirmation e-mails the receipt of a newly placed order.
func (m *SendGridMailer) SendOrderConfirmation(ctx context.Context, to string, order models.Order) error {
	subject := fmt.Sprintf("Order confirmation #%s", shortID(order.ID))
	return m.send(ctx, to, subject, confirmationText(order))
}

// SendOrderStatusUpdate tells the customer their order moved to a new status.
func (m *SendGridMailer) SendOrderStatusUpdate(ctx context.Context, to string, order models.Order) error {
	subject := fmt.Sprintf("Your order #%s is %s", shortID(order.ID), order.Status)
	body := fmt.Sprintf("Your order #%s is now %s.\n\nTotal: $%s\n", shortID(order.ID), order.Status, pricing.FormatAmount(order.TotalAmount))
	return m.send(ctx, to, subject, body)
}

func (m *SendGridMailer) send(ctx context.Context, to, subject, text string) error {
	html := "<p>" + strings.ReplaceAll(text, "\n", "<br>") + "</p>"
	message := mail.NewSingleEmail(m.from, subject, mail.NewEmail("", to), text, html)

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid rejected email with status %d: %s", resp.StatusCode, resp.Body)
	}
	log.Printf("Sent %q to %s", subject, to)
	return nil
}

func confirmationText(order models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Thank you for your purchase! Your order #%s has been placed.\n\n", shortID(order.ID))
	for _, it := range order.Items {
		fmt.Fprintf(&b, "%d x %s  $%s\n", it.Quantity, it.Name, pricing.FormatAmount(it.Price))
	}
	fmt.Fprintf(&b, "\nSubtotal: $%s\n", pricing.FormatAmount(order.Subtotal))
	fmt.Fprintf(&b, "Tax: $%s\n", pricing.FormatAmount(order.Tax))
	fmt.Fprintf(&b, "Shipping (%s): $%s\n", order.ShippingType, pricing.FormatAmount(order.ShippingFee))
	fmt.Fprintf(&b, "Total: $%s\n\n", pricing.FormatAmount(order.TotalAmount))
	fmt.Fprintf(&b, "Shipping to: %s, %s %s, %s\n", order.ShippingAddress, order.PostalCode, order.City, order.Country)
	fmt.Fprintf(&b, "Payment method: %s\n", order.PaymentMethod)
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
