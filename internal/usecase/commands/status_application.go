package commands

import (
	"context"
	"time"

	"marketplace-moderation/internal/domain/actor"
	"marketplace-moderation/internal/domain/rejection"
	"marketplace-moderation/internal/domain/statusapp"
	"marketplace-moderation/internal/domain/vendor"
	"marketplace-moderation/internal/infra"
	"marketplace-moderation/internal/pkg/clock"
	"marketplace-moderation/internal/pkg/errs"
	"marketplace-moderation/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrVendorNotFound       = errs.New("vendor not found")
	ErrNotVendorOwner       = errs.New("actor does not own this vendor")
	ErrDecisionNotApproved  = errs.New("application decision is not approved")
	ErrRejectionNeedsReason = errs.New("rejection requires a template")
)

type SubmitStatusApplicationRequest struct {
	VendorPublicID string
	RequestType    statusapp.RequestType
	Message        *string
	TermsVersion   string
}

type SubmitStatusApplicationResult struct {
	ApplicationID uuid.UUID
	Resubmitted   bool
}

type DecideStatusApplicationRequest struct {
	Approve    bool
	TemplateID string
	Detail     string
}

type StatusApplicationCommands interface {
	SubmitOrResubmit(ctx context.Context, act actor.Actor, req SubmitStatusApplicationRequest) (*SubmitStatusApplicationResult, error)
	Decide(ctx context.Context, act actor.Actor, applicationID uuid.UUID, req DecideStatusApplicationRequest) error
	ApplyApprovedStatus(ctx context.Context, act actor.Actor, applicationID uuid.UUID) error
	AcceptTerms(ctx context.Context, act actor.Actor, applicationID uuid.UUID, termsVersion string) error
}

type statusApplicationUseCaseImpl struct {
	uow         shared.UnitOfWork
	vendorWrite VendorWriteService
	clock       clock.Clock
	callTimeout time.Duration
}

func NewStatusApplicationUseCase(
	uow shared.UnitOfWork,
	vendorWrite VendorWriteService,
	clk clock.Clock,
	callTimeout time.Duration,
) StatusApplicationCommands {
	return &statusApplicationUseCaseImpl{
		uow:         uow,
		vendorWrite: vendorWrite,
		clock:       clk,
		callTimeout: callTimeout,
	}
}

// SubmitOrResubmit creates the vendor's status application or overwrites the
// existing one. A pending application of the same request type blocks the
// submission; a pending application of a different type is overwritten, so
// the latest request wins. The duplicate check and the write share one
// transaction with the snapshot row locked.
func (uc *statusApplicationUseCaseImpl) SubmitOrResubmit(
	ctx context.Context,
	act actor.Actor,
	req SubmitStatusApplicationRequest,
) (*SubmitStatusApplicationResult, error) {
	if !act.IsAuthenticated {
		return nil, errs.ErrPermissionDenied
	}

	var result SubmitStatusApplicationResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		vend, err := tx.Reads().VendorByPublicID(ctx, req.VendorPublicID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrVendorNotFound)
			}
			return err
		}
		if vend.OwnerUserID != act.UserID && !act.IsAdmin() {
			return ErrNotVendorOwner
		}

		now := uc.clock.Now()
		draft := statusapp.Draft{
			VendorID:        vend.ID,
			VendorPublicID:  vend.PublicID,
			ApplicantUserID: act.UserID,
			RequestType:     req.RequestType,
			CurrentStatus:   vend.Status,
			Message:         req.Message,
			TermsVersion:    req.TermsVersion,
			AgreedAt:        now,
		}

		existing, err := tx.StatusApplications().FindByVendorIDForUpdate(ctx, tx.DB(), vend.ID)
		switch {
		case err == nil:
			if existing.IsDuplicateOf(draft) {
				return errs.ErrDuplicatePending
			}
			if err := existing.OverwriteWith(draft, now); err != nil {
				return err
			}
			if err := tx.StatusApplications().Update(ctx, tx.DB(), existing); err != nil {
				return err
			}
			event := statusapp.NewResubmittedEvent(existing, act.UserID, now)
			if err := tx.StatusEvents().Append(ctx, tx.DB(), &event); err != nil {
				return err
			}
			result = SubmitStatusApplicationResult{ApplicationID: existing.ID(), Resubmitted: true}
			return nil

		case infra.IsKind(err, infra.KindNotFound):
			app, derr := statusapp.NewFromDraft(draft, now)
			if derr != nil {
				return derr
			}
			if derr := tx.StatusApplications().Create(ctx, tx.DB(), app); derr != nil {
				return derr
			}
			event := statusapp.NewSubmittedEvent(app, act.UserID, now)
			if derr := tx.StatusEvents().Append(ctx, tx.DB(), &event); derr != nil {
				return derr
			}
			result = SubmitStatusApplicationResult{ApplicationID: app.ID()}
			return nil

		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Decide records an admin verdict. The decision and its audit event commit
// first; propagating an approved status to the listing happens afterwards and
// is retryable via ApplyApprovedStatus if it fails. Rejecting an activate
// request marks the listing rejected in the same transaction so the vendor
// sees the outcome; rejecting hide or archive leaves the listing untouched.
func (uc *statusApplicationUseCaseImpl) Decide(
	ctx context.Context,
	act actor.Actor,
	applicationID uuid.UUID,
	req DecideStatusApplicationRequest,
) error {
	if err := act.RequireAdmin(); err != nil {
		return err
	}

	var approved bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		app, err := tx.StatusApplications().FindByIDForUpdate(ctx, tx.DB(), applicationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrApplicationNotFound)
			}
			return err
		}

		now := uc.clock.Now()
		if req.Approve {
			if err := app.Approve(act.UserID, now); err != nil {
				return err
			}
			approved = true
		} else {
			reason, _, err := rejection.Compose(req.TemplateID, req.Detail)
			if err != nil {
				return err
			}
			if err := app.Reject(act.UserID, reason, now); err != nil {
				return err
			}
			if app.RequestType() == statusapp.RequestActivate {
				listing, err := tx.Vendors().FindByIDForUpdate(ctx, tx.DB(), app.VendorID())
				if err != nil {
					return err
				}
				listing.ApplyStatus(vendor.StatusRejected, now)
				if err := tx.Vendors().Update(ctx, tx.DB(), listing); err != nil {
					return err
				}
			}
		}

		if err := tx.StatusApplications().Update(ctx, tx.DB(), app); err != nil {
			return err
		}
		event := statusapp.NewDecidedEvent(app, act.UserID, now)
		return tx.StatusEvents().Append(ctx, tx.DB(), &event)
	})
	if err != nil {
		return err
	}

	if approved {
		if err := uc.applyStatusSideEffect(ctx, act, applicationID); err != nil {
			return errs.Mark(err, errs.ErrApprovedButStatusApplyFailed)
		}
	}
	return nil
}

// ApplyApprovedStatus retries the listing-status side effect for an already
// approved application, after Decide reported ErrApprovedButStatusApplyFailed.
func (uc *statusApplicationUseCaseImpl) ApplyApprovedStatus(
	ctx context.Context,
	act actor.Actor,
	applicationID uuid.UUID,
) error {
	if err := act.RequireAdmin(); err != nil {
		return err
	}
	return uc.applyStatusSideEffect(ctx, act, applicationID)
}

func (uc *statusApplicationUseCaseImpl) applyStatusSideEffect(
	ctx context.Context,
	act actor.Actor,
	applicationID uuid.UUID,
) error {
	var (
		vendorID uuid.UUID
		target   vendor.Status
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		app, err := tx.StatusApplications().FindByIDForUpdate(ctx, tx.DB(), applicationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrApplicationNotFound)
			}
			return err
		}
		if app.Decision() != statusapp.DecisionApproved {
			return ErrDecisionNotApproved
		}
		vendorID = app.VendorID()
		target = app.RequestType().TargetStatus()
		return nil
	})
	if err != nil {
		return err
	}

	callCtx, cancel := context.WithTimeout(ctx, uc.callTimeout)
	defer cancel()
	if err := uc.vendorWrite.ApplyStatus(callCtx, vendorID, target, act); err != nil {
		return err
	}

	// Audit record that the side effect happened; the snapshot stays valid
	// even if this append fails.
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		app, err := tx.StatusApplications().FindByIDForUpdate(ctx, tx.DB(), applicationID)
		if err != nil {
			return err
		}
		event := statusapp.NewVendorStatusAppliedEvent(app, act.UserID, uc.clock.Now())
		return tx.StatusEvents().Append(ctx, tx.DB(), &event)
	})
}

// AcceptTerms re-records the applicant's agreement to a newer terms version.
func (uc *statusApplicationUseCaseImpl) AcceptTerms(
	ctx context.Context,
	act actor.Actor,
	applicationID uuid.UUID,
	termsVersion string,
) error {
	if !act.IsAuthenticated {
		return errs.ErrPermissionDenied
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		app, err := tx.StatusApplications().FindByIDForUpdate(ctx, tx.DB(), applicationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrApplicationNotFound)
			}
			return err
		}
		if app.ApplicantUserID() != act.UserID {
			return errs.ErrPermissionDenied
		}
		now := uc.clock.Now()
		app.AcceptTerms(termsVersion, now)
		if err := tx.StatusApplications().Update(ctx, tx.DB(), app); err != nil {
			return err
		}
		event := statusapp.NewTermsUpdatedEvent(app, act.UserID, now)
		return tx.StatusEvents().Append(ctx, tx.DB(), &event)
	})
}
