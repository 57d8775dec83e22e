package roleapp

import "errors"

var (
	ErrInvalidStatus           = errors.New("invalid application status")
	ErrInvalidEvidenceMethod   = errors.New("invalid evidence method")
	ErrRegistrationNotEditable = errors.New("registration can only be edited before submission")
	ErrEvidenceNotSubmittable  = errors.New("evidence can only be submitted in initial or rejected state")
	ErrEvidenceFieldsMissing   = errors.New("evidence method requires missing fields")
	ErrNotRejected             = errors.New("resubmission requires a rejected application")
	ErrNotRejectable           = errors.New("application cannot be rejected in this state")
	ErrArchiveApproved         = errors.New("approved applications cannot be archived")
)

// Status is the lifecycle state of a role application.
// initial → pending → {approved | rejected} → (resubmission) → pending.
// archived is a terminal administrative state from any non-approved state.
type Status string

const (
	StatusInitial  Status = "initial"
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusArchived Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusInitial, StatusPending, StatusApproved, StatusRejected, StatusArchived:
		return true
	default:
		return false
	}
}

// EvidenceMethod is how the applicant proves authority over the brand.
type EvidenceMethod string

const (
	// MethodOfficialEmail verifies control of a mailbox on the brand's domain.
	MethodOfficialEmail EvidenceMethod = "officialEmail"
	// MethodCodePost verifies control of a public channel by posting a code.
	MethodCodePost EvidenceMethod = "codePost"
)

func (m EvidenceMethod) String() string {
	return string(m)
}

func (m EvidenceMethod) IsValid() bool {
	switch m {
	case MethodOfficialEmail, MethodCodePost:
		return true
	default:
		return false
	}
}

func NewEvidenceMethod(s string) (EvidenceMethod, error) {
	m := EvidenceMethod(s)
	if !m.IsValid() {
		return "", ErrInvalidEvidenceMethod
	}
	return m, nil
}

// EvidenceStatus is the review state of a single evidence item.
type EvidenceStatus string

const (
	EvidenceInitial   EvidenceStatus = "initial"
	EvidenceSubmitted EvidenceStatus = "submitted"
	EvidenceVerified  EvidenceStatus = "verified"
	EvidenceRejected  EvidenceStatus = "rejected"
)

func (s EvidenceStatus) String() string {
	return string(s)
}

// DecisionResult is the verdict embedded once an admin decides.
type DecisionResult string

const (
	ResultApproved DecisionResult = "approved"
	ResultRejected DecisionResult = "rejected"
)
