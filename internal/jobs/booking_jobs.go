package jobs

import (
	"context"
	"time"

	"sportnex-backend/internal/logger"
)

const dateLayout = "2006-01-02"

// RejectStaleBookings rejects pending bookings whose date has already passed.
// Admins never need to act on requests for days that are gone.
func (jr *JobRunner) RejectStaleBookings() {
	jr.runWithRecovery("RejectStaleBookings", func() {
		ctx := context.Background()
		today := time.Now().Format(dateLayout)

		rejected, err := jr.store.RejectPendingBefore(ctx, today)
		if err != nil {
			logger.Error("Failed to reject stale bookings", "error", err)
			return
		}

		logger.Info("Rejected stale bookings", "count", len(rejected))
		for _, b := range rejected {
			logger.Debug("Rejected stale booking",
				"booking_id", b.ID,
				"user_uid", b.UserUID,
				"date", b.Date)
		}
	})
}

// SendPaymentReminders emails users whose approved bookings are within the
// next two days and still unpaid. Approved bookings flip to CONFIRMED on
// payment, so anything still APPROVED is unpaid.
func (jr *JobRunner) SendPaymentReminders() {
	jr.runWithRecovery("SendPaymentReminders", func() {
		ctx := context.Background()
		cutoff := time.Now().AddDate(0, 0, 2).Format(dateLayout)

		bookings, err := jr.store.ListApprovedBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list approved bookings", "error", err)
			return
		}

		sent := 0
		for _, b := range bookings {
			if b.UserEmail == "" {
				continue
			}
			if err := jr.services.Email.SendPaymentReminder(ctx, b.UserEmail, b.CourtName, b.Date); err != nil {
				logger.Error("Failed to send payment reminder",
					"booking_id", b.ID,
					"error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent payment reminders", "count", sent)
	})
}
