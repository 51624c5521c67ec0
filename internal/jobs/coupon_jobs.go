package jobs

import (
	"context"
	"time"

	"sportnex-backend/internal/logger"
)

// DeactivateExpiredCoupons flips active coupons whose validity window has
// closed, so expired codes stop validating without an admin sweep.
func (jr *JobRunner) DeactivateExpiredCoupons() {
	jr.runWithRecovery("DeactivateExpiredCoupons", func() {
		ctx := context.Background()

		count, err := jr.store.DeactivateExpired(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to deactivate expired coupons", "error", err)
			return
		}

		logger.Info("Deactivated expired coupons", "count", count)
	})
}
