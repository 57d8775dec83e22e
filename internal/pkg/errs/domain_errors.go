package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Moderation workflow errors
	ErrDuplicatePending    = errors.New("duplicate pending application for request type")
	ErrApplicationNotFound = errors.New("application not found")
	ErrEvidenceNotFound    = errors.New("evidence not found")
	ErrPermissionDenied    = errors.New("permission denied")

	// Role application approval preconditions
	ErrMissingConfirmations = errors.New("applicant confirmations missing")
	ErrMissingEvidence      = errors.New("no evidence submitted")
	ErrEvidenceNotVerified  = errors.New("evidence not verified")

	// Rejection composition
	ErrMissingTemplate = errors.New("rejection template not selected")

	// Partial-failure signals: the decision is durable, the side effect is retryable
	ErrApprovedButRoleUpdateFailed  = errors.New("application approved but role update failed")
	ErrApprovedButStatusApplyFailed = errors.New("application approved but vendor status apply failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
