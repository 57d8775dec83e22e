// Package external adapts the moderation engine's outbound ports. The vendor
// record and user directory live in this deployment's own database, but the
// workflows treat them as external services so the calls stay retryable and
// timeout-bounded.
package external

import (
	"context"
	"log/slog"
	"time"

	"marketplace-moderation/internal/domain/actor"
	"marketplace-moderation/internal/domain/vendor"
	"marketplace-moderation/internal/pkg/clock"
	"marketplace-moderation/internal/usecase/commands"
	"marketplace-moderation/internal/usecase/shared"

	"github.com/google/uuid"
)

type VendorWriteAdapter struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewVendorWriteAdapter(uow shared.UnitOfWork, clk clock.Clock) commands.VendorWriteService {
	return &VendorWriteAdapter{uow: uow, clock: clk}
}

func (a *VendorWriteAdapter) ApplyStatus(ctx context.Context, vendorID uuid.UUID, status vendor.Status, act actor.Actor) error {
	start := time.Now()
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		listing, err := tx.Vendors().FindByIDForUpdate(ctx, tx.DB(), vendorID)
		if err != nil {
			return err
		}
		listing.ApplyStatus(status, a.clock.Now())
		return tx.Vendors().Update(ctx, tx.DB(), listing)
	})
	if err != nil {
		return err
	}
	slog.Info("vendor status applied",
		"vendor_id", vendorID,
		"status", status.String(),
		"actor_user_id", act.UserID,
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}
