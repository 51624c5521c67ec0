package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey   string
	from     string
	fromName string
}

func NewEmailService(apiKey, from, fromName string) EmailService {
	return &emailService{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
	}
}

func (s *emailService) SendBookingApproved(ctx context.Context, email, courtName, date string, slots []string) error {
	subject := "Your booking was approved"
	body := fmt.Sprintf("Good news!\n\nYour booking for %s on %s (%s) has been approved.\n\nComplete payment from your dashboard to confirm the reservation.\n\nThe SportNex Team",
		courtName, date, strings.Join(slots, ", "))
	return s.send(email, subject, body)
}

func (s *emailService) SendBookingRejected(ctx context.Context, email, courtName, date string) error {
	subject := "Your booking was rejected"
	body := fmt.Sprintf("Unfortunately your booking for %s on %s could not be accommodated.\n\nPlease try a different date or time slot.\n\nThe SportNex Team",
		courtName, date)
	return s.send(email, subject, body)
}

func (s *emailService) SendPaymentReceipt(ctx context.Context, email, courtName string, finalPriceCents int32, transactionID string) error {
	subject := "Payment received"
	body := fmt.Sprintf("We received your payment of $%.2f for %s.\n\nTransaction reference: %s\n\nYour booking is now confirmed.\n\nThe SportNex Team",
		float64(finalPriceCents)/100, courtName, transactionID)
	return s.send(email, subject, body)
}

func (s *emailService) SendPaymentReminder(ctx context.Context, email, courtName, date string) error {
	subject := "Booking awaiting payment"
	body := fmt.Sprintf("Your approved booking for %s on %s is still awaiting payment.\n\nPay from your dashboard to confirm it before the date passes.\n\nThe SportNex Team",
		courtName, date)
	return s.send(email, subject, body)
}

func (s *emailService) send(to, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.from)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
