package statusapp

import (
	"time"

	"marketplace-moderation/internal/domain/vendor"

	"github.com/google/uuid"
)

// Draft carries everything a vendor supplies when requesting a status change.
type Draft struct {
	VendorID        uuid.UUID
	VendorPublicID  string
	ApplicantUserID uuid.UUID
	RequestType     RequestType
	CurrentStatus   vendor.Status
	Message         *string
	TermsVersion    string
	AgreedAt        time.Time
}

// Application is the single current status application for a vendor.
// It is overwritten in place on resubmission; the event log keeps history.
type Application struct {
	id                        uuid.UUID
	vendorID                  uuid.UUID
	vendorPublicID            string
	applicantUserID           uuid.UUID
	requestType               RequestType
	currentStatusAtSubmission vendor.Status
	message                   *string
	termsVersion              string
	agreedAt                  time.Time
	decision                  Decision
	reviewedBy                *uuid.UUID
	reviewedAt                *time.Time
	rejectionReason           *string
	createdAt                 time.Time
	updatedAt                 time.Time
}

// NewFromDraft creates the first application for a vendor.
func NewFromDraft(draft Draft, now time.Time) (*Application, error) {
	if !draft.RequestType.IsValid() {
		return nil, ErrInvalidRequestType
	}
	return &Application{
		id:                        uuid.New(),
		vendorID:                  draft.VendorID,
		vendorPublicID:            draft.VendorPublicID,
		applicantUserID:           draft.ApplicantUserID,
		requestType:               draft.RequestType,
		currentStatusAtSubmission: draft.CurrentStatus,
		message:                   draft.Message,
		termsVersion:              draft.TermsVersion,
		agreedAt:                  draft.AgreedAt,
		decision:                  DecisionPending,
		createdAt:                 now,
		updatedAt:                 now,
	}, nil
}

// IsDuplicateOf reports whether submitting draft would duplicate the
// in-flight request: same request type while the current one is undecided.
// A different request type overwrites the pending one (latest request wins).
func (a *Application) IsDuplicateOf(draft Draft) bool {
	return a.decision == DecisionPending && a.requestType == draft.RequestType
}

// OverwriteWith replaces the snapshot content from a new draft.
// Identity and createdAt survive; the decision cycle restarts at pending.
func (a *Application) OverwriteWith(draft Draft, now time.Time) error {
	if !draft.RequestType.IsValid() {
		return ErrInvalidRequestType
	}
	a.vendorPublicID = draft.VendorPublicID
	a.applicantUserID = draft.ApplicantUserID
	a.requestType = draft.RequestType
	a.currentStatusAtSubmission = draft.CurrentStatus
	a.message = draft.Message
	a.termsVersion = draft.TermsVersion
	a.agreedAt = draft.AgreedAt
	a.decision = DecisionPending
	a.reviewedBy = nil
	a.reviewedAt = nil
	a.rejectionReason = nil
	a.updatedAt = now
	return nil
}

func (a *Application) Approve(reviewerID uuid.UUID, now time.Time) error {
	if a.decision != DecisionPending {
		return ErrAlreadyDecided
	}
	a.decision = DecisionApproved
	a.reviewedBy = &reviewerID
	a.reviewedAt = &now
	a.rejectionReason = nil
	a.updatedAt = now
	return nil
}

func (a *Application) Reject(reviewerID uuid.UUID, reason string, now time.Time) error {
	if a.decision != DecisionPending {
		return ErrAlreadyDecided
	}
	if reason == "" {
		return ErrRejectionReasonEmpty
	}
	a.decision = DecisionRejected
	a.reviewedBy = &reviewerID
	a.reviewedAt = &now
	a.rejectionReason = &reason
	a.updatedAt = now
	return nil
}

func (a *Application) AcceptTerms(version string, now time.Time) {
	a.termsVersion = version
	a.agreedAt = now
	a.updatedAt = now
}

func (a *Application) IsPending() bool {
	return a.decision == DecisionPending
}

// Accessors

func (a *Application) ID() uuid.UUID                { return a.id }
func (a *Application) VendorID() uuid.UUID          { return a.vendorID }
func (a *Application) VendorPublicID() string       { return a.vendorPublicID }
func (a *Application) ApplicantUserID() uuid.UUID   { return a.applicantUserID }
func (a *Application) RequestType() RequestType     { return a.requestType }
func (a *Application) Message() *string             { return a.message }
func (a *Application) TermsVersion() string         { return a.termsVersion }
func (a *Application) AgreedAt() time.Time          { return a.agreedAt }
func (a *Application) Decision() Decision           { return a.decision }
func (a *Application) ReviewedBy() *uuid.UUID       { return a.reviewedBy }
func (a *Application) ReviewedAt() *time.Time       { return a.reviewedAt }
func (a *Application) RejectionReason() *string     { return a.rejectionReason }
func (a *Application) CreatedAt() time.Time         { return a.createdAt }
func (a *Application) UpdatedAt() time.Time         { return a.updatedAt }
func (a *Application) CurrentStatusAtSubmission() vendor.Status {
	return a.currentStatusAtSubmission
}

// Reconstruct rebuilds an Application from persisted state.
func Reconstruct(
	id, vendorID uuid.UUID,
	vendorPublicID string,
	applicantUserID uuid.UUID,
	requestType RequestType,
	currentStatusAtSubmission vendor.Status,
	message *string,
	termsVersion string,
	agreedAt time.Time,
	decision Decision,
	reviewedBy *uuid.UUID,
	reviewedAt *time.Time,
	rejectionReason *string,
	createdAt, updatedAt time.Time,
) *Application {
	return &Application{
		id:                        id,
		vendorID:                  vendorID,
		vendorPublicID:            vendorPublicID,
		applicantUserID:           applicantUserID,
		requestType:               requestType,
		currentStatusAtSubmission: currentStatusAtSubmission,
		message:                   message,
		termsVersion:              termsVersion,
		agreedAt:                  agreedAt,
		decision:                  decision,
		reviewedBy:                reviewedBy,
		reviewedAt:                reviewedAt,
		rejectionReason:           rejectionReason,
		createdAt:                 createdAt,
		updatedAt:                 updatedAt,
	}
}
