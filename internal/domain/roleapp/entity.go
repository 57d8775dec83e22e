package roleapp

import (
	"time"

	"marketplace-moderation/internal/domain/user"
	"marketplace-moderation/internal/pkg/errs"

	"github.com/google/uuid"
)

// Profile is the applicant-facing registration content.
type Profile struct {
	DisplayName  string `json:"display_name"`
	ContactEmail string `json:"contact_email"`
	Bio          string `json:"bio"`
}

// DecisionRecord is embedded once an admin decides; it is immutable
// afterwards. A new cycle (resubmission) clears it rather than editing it.
type DecisionRecord struct {
	ReviewerUserID    uuid.UUID
	DecidedAt         time.Time
	Result            DecisionResult
	RejectionCategory *string
	Comment           *string
}

// RegistrationInput is what SaveRegistration may change.
type RegistrationInput struct {
	Profile           Profile
	BrandName         *string
	BrandCategory     *string
	MessageToAdmin    *string
	ConfirmsAuthority bool
	ConfirmsRights    bool
}

// Application is the single current role application for a user.
type Application struct {
	id                uuid.UUID
	applicantUserID   uuid.UUID
	currentRole       user.Role
	requestedRole     user.Role
	profile           Profile
	brandName         *string
	brandCategory     *string
	evidence          []EvidenceItem
	messageToAdmin    *string
	termsVersion      string
	confirmsAuthority bool
	confirmsRights    bool
	confirmedAt       *time.Time
	status            Status
	decision          *DecisionRecord
	createdAt         time.Time
	updatedAt         time.Time
}

func New(applicantUserID uuid.UUID, currentRole user.Role, termsVersion string, now time.Time) *Application {
	return &Application{
		id:              uuid.New(),
		applicantUserID: applicantUserID,
		currentRole:     currentRole,
		requestedRole:   user.RoleVendor,
		termsVersion:    termsVersion,
		status:          StatusInitial,
		createdAt:       now,
		updatedAt:       now,
	}
}

// SaveRegistration updates the draft content. Only the initial state is
// editable; later changes go through the resubmission cycle. The returned
// list names the changed fields so the audit payload stays a diff, not a
// full snapshot.
func (a *Application) SaveRegistration(input RegistrationInput, now time.Time) ([]string, error) {
	if a.status != StatusInitial {
		return nil, ErrRegistrationNotEditable
	}

	var changed []string
	if a.profile != input.Profile {
		a.profile = input.Profile
		changed = append(changed, "profile")
	}
	if !equalStrPtr(a.brandName, input.BrandName) {
		a.brandName = input.BrandName
		changed = append(changed, "brandName")
	}
	if !equalStrPtr(a.brandCategory, input.BrandCategory) {
		a.brandCategory = input.BrandCategory
		changed = append(changed, "brandCategory")
	}
	if !equalStrPtr(a.messageToAdmin, input.MessageToAdmin) {
		a.messageToAdmin = input.MessageToAdmin
		changed = append(changed, "messageToAdmin")
	}
	if a.confirmsAuthority != input.ConfirmsAuthority {
		a.confirmsAuthority = input.ConfirmsAuthority
		changed = append(changed, "confirmsAuthority")
	}
	if a.confirmsRights != input.ConfirmsRights {
		a.confirmsRights = input.ConfirmsRights
		changed = append(changed, "confirmsRights")
	}
	if a.confirmsAuthority && a.confirmsRights && a.confirmedAt == nil {
		a.confirmedAt = &now
	}
	if len(changed) > 0 {
		a.updatedAt = now
	}
	return changed, nil
}

// StartResubmission re-opens a rejected application for a new cycle.
// The returned list names what was reset: the prior decision, any
// rejected evidence, and codePost verification codes.
func (a *Application) StartResubmission(codeGen CodeGenerator, now time.Time) ([]string, error) {
	if a.status != StatusRejected {
		return nil, ErrNotRejected
	}

	reset := []string{"decision"}
	a.decision = nil

	for i := range a.evidence {
		if a.evidence[i].Status == EvidenceRejected {
			a.evidence[i].Status = EvidenceInitial
			a.evidence[i].VerifiedAt = nil
			a.evidence[i].ReviewedByUserID = nil
			a.evidence[i].ReviewNote = nil
			if !contains(reset, "evidence") {
				reset = append(reset, "evidence")
			}
		}
		if a.evidence[i].Method == MethodCodePost {
			code := codeGen.Generate()
			a.evidence[i].VerificationCode = &code
			if !contains(reset, "verificationCode") {
				reset = append(reset, "verificationCode")
			}
		}
	}

	a.updatedAt = now
	return reset, nil
}

// SubmitEvidence attaches (or replaces, per method) an evidence item and
// moves the application into review. Callers resubmitting after a
// rejection must run StartResubmission first.
func (a *Application) SubmitEvidence(input EvidenceInput, codeGen CodeGenerator, now time.Time) (*EvidenceItem, Status, error) {
	if a.status != StatusInitial && a.status != StatusRejected {
		return nil, a.status, ErrEvidenceNotSubmittable
	}
	if err := input.validate(); err != nil {
		return nil, a.status, err
	}

	item := EvidenceItem{
		ID:          uuid.New(),
		Method:      input.Method,
		Status:      EvidenceSubmitted,
		SubmittedAt: &now,
		EmailHint:   input.EmailHint,
		URL:         input.URL,
		ChannelURL:  input.ChannelURL,
	}
	if input.Method == MethodCodePost {
		code := codeGen.Generate()
		item.VerificationCode = &code
	}

	// One item per method; a re-submission for the same method replaces it.
	replaced := false
	for i := range a.evidence {
		if a.evidence[i].Method == input.Method {
			a.evidence[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		a.evidence = append(a.evidence, item)
	}

	prev := a.status
	a.status = StatusPending
	a.updatedAt = now
	return &item, prev, nil
}

// VerifyEvidence marks one item verified. It never changes the
// application's overall status.
func (a *Application) VerifyEvidence(evidenceID, reviewerID uuid.UUID, note *string, now time.Time) error {
	for i := range a.evidence {
		if a.evidence[i].ID == evidenceID {
			a.evidence[i].Status = EvidenceVerified
			a.evidence[i].VerifiedAt = &now
			a.evidence[i].ReviewedByUserID = &reviewerID
			a.evidence[i].ReviewNote = note
			a.updatedAt = now
			return nil
		}
	}
	return errs.ErrEvidenceNotFound
}

// Approve runs the precondition chain in a fixed order so callers get a
// stable failure mode, then records the decision.
func (a *Application) Approve(reviewerID uuid.UUID, now time.Time) (Status, error) {
	if !a.confirmsAuthority || !a.confirmsRights {
		return a.status, errs.ErrMissingConfirmations
	}
	if len(a.evidence) == 0 {
		return a.status, errs.ErrMissingEvidence
	}
	for _, item := range a.evidence {
		if item.Status != EvidenceVerified {
			return a.status, errs.ErrEvidenceNotVerified
		}
	}

	prev := a.status
	a.status = StatusApproved
	a.decision = &DecisionRecord{
		ReviewerUserID: reviewerID,
		DecidedAt:      now,
		Result:         ResultApproved,
	}
	a.updatedAt = now
	return prev, nil
}

func (a *Application) Reject(reviewerID uuid.UUID, category, comment string, now time.Time) (Status, error) {
	if a.status != StatusPending && a.status != StatusInitial {
		return a.status, ErrNotRejectable
	}

	prev := a.status
	a.status = StatusRejected
	a.decision = &DecisionRecord{
		ReviewerUserID:    reviewerID,
		DecidedAt:         now,
		Result:            ResultRejected,
		RejectionCategory: &category,
		Comment:           &comment,
	}
	a.updatedAt = now
	return prev, nil
}

// Archive is the administrative terminal state, reachable from any
// non-approved state.
func (a *Application) Archive(now time.Time) (Status, error) {
	if a.status == StatusApproved {
		return a.status, ErrArchiveApproved
	}
	prev := a.status
	a.status = StatusArchived
	a.updatedAt = now
	return prev, nil
}

func (a *Application) AcceptTerms(version string, now time.Time) {
	a.termsVersion = version
	a.updatedAt = now
}

// Accessors

func (a *Application) ID() uuid.UUID              { return a.id }
func (a *Application) ApplicantUserID() uuid.UUID { return a.applicantUserID }
func (a *Application) CurrentRole() user.Role     { return a.currentRole }
func (a *Application) RequestedRole() user.Role   { return a.requestedRole }
func (a *Application) Profile() Profile           { return a.profile }
func (a *Application) BrandName() *string         { return a.brandName }
func (a *Application) BrandCategory() *string     { return a.brandCategory }
func (a *Application) MessageToAdmin() *string    { return a.messageToAdmin }
func (a *Application) TermsVersion() string       { return a.termsVersion }
func (a *Application) ConfirmsAuthority() bool    { return a.confirmsAuthority }
func (a *Application) ConfirmsRights() bool       { return a.confirmsRights }
func (a *Application) ConfirmedAt() *time.Time    { return a.confirmedAt }
func (a *Application) Status() Status             { return a.status }
func (a *Application) Decision() *DecisionRecord  { return a.decision }
func (a *Application) CreatedAt() time.Time       { return a.createdAt }
func (a *Application) UpdatedAt() time.Time       { return a.updatedAt }

// Evidence returns a copy; items are mutated only through Application methods.
func (a *Application) Evidence() []EvidenceItem {
	out := make([]EvidenceItem, len(a.evidence))
	copy(out, a.evidence)
	return out
}

func (a *Application) EvidenceByID(evidenceID uuid.UUID) (*EvidenceItem, error) {
	for i := range a.evidence {
		if a.evidence[i].ID == evidenceID {
			item := a.evidence[i]
			return &item, nil
		}
	}
	return nil, errs.ErrEvidenceNotFound
}

// Reconstruct rebuilds an Application from persisted state.
func Reconstruct(
	id, applicantUserID uuid.UUID,
	currentRole, requestedRole user.Role,
	profile Profile,
	brandName, brandCategory, messageToAdmin *string,
	evidence []EvidenceItem,
	termsVersion string,
	confirmsAuthority, confirmsRights bool,
	confirmedAt *time.Time,
	status Status,
	decision *DecisionRecord,
	createdAt, updatedAt time.Time,
) *Application {
	return &Application{
		id:                id,
		applicantUserID:   applicantUserID,
		currentRole:       currentRole,
		requestedRole:     requestedRole,
		profile:           profile,
		brandName:         brandName,
		brandCategory:     brandCategory,
		messageToAdmin:    messageToAdmin,
		evidence:          evidence,
		termsVersion:      termsVersion,
		confirmsAuthority: confirmsAuthority,
		confirmsRights:    confirmsRights,
		confirmedAt:       confirmedAt,
		status:            status,
		decision:          decision,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func equalStrPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
