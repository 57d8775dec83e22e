package commands

import (
	"context"
	"time"

	"marketplace-moderation/internal/domain/actor"
	"marketplace-moderation/internal/domain/rejection"
	"marketplace-moderation/internal/domain/roleapp"
	"marketplace-moderation/internal/domain/user"
	"marketplace-moderation/internal/infra"
	"marketplace-moderation/internal/pkg/clock"
	"marketplace-moderation/internal/pkg/errs"
	"marketplace-moderation/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNotApproved = errs.New("application is not approved")

type SaveRegistrationRequest struct {
	Input        roleapp.RegistrationInput
	TermsVersion string
}

type SaveRegistrationResult struct {
	ApplicationID uuid.UUID
	Created       bool
	ChangedFields []string
}

type SubmitEvidenceResult struct {
	ApplicationID uuid.UUID
	EvidenceID    uuid.UUID
	// VerificationCode is set for codePost evidence; the applicant must post
	// it publicly on the submitted channel.
	VerificationCode *string
	Resubmission     bool
}

type RejectRoleApplicationRequest struct {
	Category   string
	TemplateID string
	Detail     string
}

type RoleApplicationCommands interface {
	SaveRegistration(ctx context.Context, act actor.Actor, req SaveRegistrationRequest) (*SaveRegistrationResult, error)
	SubmitEvidence(ctx context.Context, act actor.Actor, input roleapp.EvidenceInput) (*SubmitEvidenceResult, error)
	VerifyEvidence(ctx context.Context, act actor.Actor, applicationID, evidenceID uuid.UUID, note *string) error
	Approve(ctx context.Context, act actor.Actor, applicationID uuid.UUID) error
	RetryRoleGrant(ctx context.Context, act actor.Actor, applicationID uuid.UUID) error
	Reject(ctx context.Context, act actor.Actor, applicationID uuid.UUID, req RejectRoleApplicationRequest) error
	Archive(ctx context.Context, act actor.Actor, applicationID uuid.UUID) error
	AcceptTerms(ctx context.Context, act actor.Actor, termsVersion string) error
}

type roleApplicationUseCaseImpl struct {
	uow           shared.UnitOfWork
	userDirectory UserDirectory
	codeGen       roleapp.CodeGenerator
	clock         clock.Clock
	callTimeout   time.Duration
}

func NewRoleApplicationUseCase(
	uow shared.UnitOfWork,
	userDirectory UserDirectory,
	codeGen roleapp.CodeGenerator,
	clk clock.Clock,
	callTimeout time.Duration,
) RoleApplicationCommands {
	return &roleApplicationUseCaseImpl{
		uow:           uow,
		userDirectory: userDirectory,
		codeGen:       codeGen,
		clock:         clk,
		callTimeout:   callTimeout,
	}
}

// SaveRegistration creates the user's role application on first contact and
// edits the draft afterwards. The audit event carries only the names of the
// fields that changed.
func (uc *roleApplicationUseCaseImpl) SaveRegistration(
	ctx context.Context,
	act actor.Actor,
	req SaveRegistrationRequest,
) (*SaveRegistrationResult, error) {
	if !act.IsAuthenticated {
		return nil, errs.ErrPermissionDenied
	}

	var result SaveRegistrationResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		app, err := tx.RoleApplications().FindByApplicantForUpdate(ctx, tx.DB(), act.UserID)
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			app = roleapp.New(act.UserID, act.Role, req.TermsVersion, now)
			if err := tx.RoleApplications().Create(ctx, tx.DB(), app); err != nil {
				return err
			}
			created := roleapp.NewApplicationCreatedEvent(app, act.UserID, act.Role, now)
			if err := tx.RoleEvents().Append(ctx, tx.DB(), &created); err != nil {
				return err
			}
			result.Created = true
		case err != nil:
			return err
		}

		changed, err := app.SaveRegistration(req.Input, now)
		if err != nil {
			return err
		}
		if err := tx.RoleApplications().Update(ctx, tx.DB(), app); err != nil {
			return err
		}
		if len(changed) > 0 {
			event := roleapp.NewRegistrationSavedEvent(app, act.UserID, act.Role, changed, now)
			if err := tx.RoleEvents().Append(ctx, tx.DB(), &event); err != nil {
				return err
			}
		}
		result.ApplicationID = app.ID()
		result.ChangedFields = changed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// SubmitEvidence attaches or replaces an evidence item and moves the
// application to pending. Submitting after a rejection first resets the prior
// decision and regenerates codePost verification codes.
func (uc *roleApplicationUseCaseImpl) SubmitEvidence(
	ctx context.Context,
	act actor.Actor,
	input roleapp.EvidenceInput,
) (*SubmitEvidenceResult, error) {
	if !act.IsAuthenticated {
		return nil, errs.ErrPermissionDenied
	}

	var result SubmitEvidenceResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		app, err := tx.RoleApplications().FindByApplicantForUpdate(ctx, tx.DB(), act.UserID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrApplicationNotFound)
			}
			return err
		}

		now := uc.clock.Now()
		if app.Status() == roleapp.StatusRejected {
			reset, rerr := app.StartResubmission(uc.codeGen, now)
			if rerr != nil {
				return rerr
			}
			event := roleapp.NewResubmissionStartedEvent(app, act.UserID, act.Role, reset, now)
			if rerr := tx.RoleEvents().Append(ctx, tx.DB(), &event); rerr != nil {
				return rerr
			}
			result.Resubmission = true
		}

		item, prev, err := app.SubmitEvidence(input, uc.codeGen, now)
		if err != nil {
			return err
		}
		if err := tx.RoleApplications().Update(ctx, tx.DB(), app); err != nil {
			return err
		}
		event := roleapp.NewEvidenceSubmittedEvent(app, item, act.UserID, act.Role, prev, now)
		if err := tx.RoleEvents().Append(ctx, tx.DB(), &event); err != nil {
			return err
		}

		result.ApplicationID = app.ID()
		result.EvidenceID = item.ID
		if item.VerificationCode != nil {
			code := *item.VerificationCode
			result.VerificationCode = &code
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// VerifyEvidence marks one evidence item verified. The application's overall
// status never changes here; approval checks verification separately.
func (uc *roleApplicationUseCaseImpl) VerifyEvidence(
	ctx context.Context,
	act actor.Actor,
	applicationID, evidenceID uuid.UUID,
	note *string,
) error {
	if err := act.RequireAdmin(); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		app, err := uc.findByIDForUpdate(ctx, tx, applicationID)
		if err != nil {
			return err
		}
		if err := app.VerifyEvidence(evidenceID, act.UserID, note, uc.clock.Now()); err != nil {
			return err
		}
		return tx.RoleApplications().Update(ctx, tx.DB(), app)
	})
}

// Approve records the admin decision, then asks the user directory to grant
// the vendor role. The decision commits first; a failed role grant surfaces
// ErrApprovedButRoleUpdateFailed and is retried via RetryRoleGrant.
func (uc *roleApplicationUseCaseImpl) Approve(
	ctx context.Context,
	act actor.Actor,
	applicationID uuid.UUID,
) error {
	if err := act.RequireAdmin(); err != nil {
		return err
	}

	var applicantID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		app, err := uc.findByIDForUpdate(ctx, tx, applicationID)
		if err != nil {
			return err
		}
		now := uc.clock.Now()
		prev, err := app.Approve(act.UserID, now)
		if err != nil {
			return err
		}
		if err := tx.RoleApplications().Update(ctx, tx.DB(), app); err != nil {
			return err
		}
		event := roleapp.NewDecisionMadeEvent(app, act.UserID, act.Role, prev, now)
		if err := tx.RoleEvents().Append(ctx, tx.DB(), &event); err != nil {
			return err
		}
		applicantID = app.ApplicantUserID()
		return nil
	})
	if err != nil {
		return err
	}

	if err := uc.grantRole(ctx, applicantID); err != nil {
		return errs.Mark(err, errs.ErrApprovedButRoleUpdateFailed)
	}
	return nil
}

// RetryRoleGrant re-runs the role propagation for an application that was
// approved but whose directory update failed.
func (uc *roleApplicationUseCaseImpl) RetryRoleGrant(
	ctx context.Context,
	act actor.Actor,
	applicationID uuid.UUID,
) error {
	if err := act.RequireAdmin(); err != nil {
		return err
	}

	var applicantID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		app, err := uc.findByIDForUpdate(ctx, tx, applicationID)
		if err != nil {
			return err
		}
		if app.Status() != roleapp.StatusApproved {
			return ErrNotApproved
		}
		applicantID = app.ApplicantUserID()
		return nil
	})
	if err != nil {
		return err
	}

	if err := uc.grantRole(ctx, applicantID); err != nil {
		return errs.Mark(err, errs.ErrApprovedButRoleUpdateFailed)
	}
	return nil
}

func (uc *roleApplicationUseCaseImpl) grantRole(ctx context.Context, applicantID uuid.UUID) error {
	callCtx, cancel := context.WithTimeout(ctx, uc.callTimeout)
	defer cancel()
	return uc.userDirectory.UpdateRole(callCtx, applicantID, user.RoleVendor)
}

// Reject records a rejection with a reason composed from the selected
// template plus optional free-text detail.
func (uc *roleApplicationUseCaseImpl) Reject(
	ctx context.Context,
	act actor.Actor,
	applicationID uuid.UUID,
	req RejectRoleApplicationRequest,
) error {
	if err := act.RequireAdmin(); err != nil {
		return err
	}
	comment, tmpl, err := rejection.Compose(req.TemplateID, req.Detail)
	if err != nil {
		return err
	}
	category := req.Category
	if category == "" {
		category = string(tmpl.Category)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		app, err := uc.findByIDForUpdate(ctx, tx, applicationID)
		if err != nil {
			return err
		}
		now := uc.clock.Now()
		prev, err := app.Reject(act.UserID, category, comment, now)
		if err != nil {
			return err
		}
		if err := tx.RoleApplications().Update(ctx, tx.DB(), app); err != nil {
			return err
		}
		event := roleapp.NewDecisionMadeEvent(app, act.UserID, act.Role, prev, now)
		return tx.RoleEvents().Append(ctx, tx.DB(), &event)
	})
}

// Archive administratively closes a non-approved application.
func (uc *roleApplicationUseCaseImpl) Archive(
	ctx context.Context,
	act actor.Actor,
	applicationID uuid.UUID,
) error {
	if err := act.RequireAdmin(); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		app, err := uc.findByIDForUpdate(ctx, tx, applicationID)
		if err != nil {
			return err
		}
		now := uc.clock.Now()
		prev, err := app.Archive(now)
		if err != nil {
			return err
		}
		if err := tx.RoleApplications().Update(ctx, tx.DB(), app); err != nil {
			return err
		}
		event := roleapp.NewStatusChangedEvent(app, act.UserID, act.Role, prev, "archived by admin", now)
		return tx.RoleEvents().Append(ctx, tx.DB(), &event)
	})
}

// AcceptTerms re-records the applicant's agreement to a newer terms version.
func (uc *roleApplicationUseCaseImpl) AcceptTerms(
	ctx context.Context,
	act actor.Actor,
	termsVersion string,
) error {
	if !act.IsAuthenticated {
		return errs.ErrPermissionDenied
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		app, err := tx.RoleApplications().FindByApplicantForUpdate(ctx, tx.DB(), act.UserID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrApplicationNotFound)
			}
			return err
		}
		now := uc.clock.Now()
		app.AcceptTerms(termsVersion, now)
		if err := tx.RoleApplications().Update(ctx, tx.DB(), app); err != nil {
			return err
		}
		event := roleapp.NewTermsUpdatedEvent(app, act.UserID, act.Role, now)
		return tx.RoleEvents().Append(ctx, tx.DB(), &event)
	})
}

func (uc *roleApplicationUseCaseImpl) findByIDForUpdate(
	ctx context.Context,
	tx shared.Tx,
	applicationID uuid.UUID,
) (*roleapp.Application, error) {
	app, err := tx.RoleApplications().FindByIDForUpdate(ctx, tx.DB(), applicationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrApplicationNotFound)
		}
		return nil, err
	}
	return app, nil
}
