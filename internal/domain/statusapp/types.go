package statusapp

import (
	"errors"

	"marketplace-moderation/internal/domain/vendor"
)

var (
	ErrInvalidRequestType   = errors.New("invalid status request type")
	ErrInvalidDecision      = errors.New("invalid decision")
	ErrRejectionReasonEmpty = errors.New("rejection reason is required")
	ErrAlreadyDecided       = errors.New("application already decided")
)

// RequestType is what the vendor is asking the moderators to do with
// the listing.
type RequestType string

const (
	RequestActivate RequestType = "activate"
	RequestHide     RequestType = "hide"
	RequestArchive  RequestType = "archive"
)

func (t RequestType) String() string {
	return string(t)
}

func (t RequestType) IsValid() bool {
	switch t {
	case RequestActivate, RequestHide, RequestArchive:
		return true
	default:
		return false
	}
}

func NewRequestType(s string) (RequestType, error) {
	t := RequestType(s)
	if !t.IsValid() {
		return "", ErrInvalidRequestType
	}
	return t, nil
}

// TargetStatus is the listing status an approval of this request applies.
func (t RequestType) TargetStatus() vendor.Status {
	switch t {
	case RequestActivate:
		return vendor.StatusActive
	case RequestHide:
		return vendor.StatusHidden
	case RequestArchive:
		return vendor.StatusArchived
	default:
		return ""
	}
}

// Decision is the moderation verdict on the current application cycle.
type Decision string

const (
	DecisionPending  Decision = "pending"
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

func (d Decision) String() string {
	return string(d)
}

func (d Decision) IsValid() bool {
	switch d {
	case DecisionPending, DecisionApproved, DecisionRejected:
		return true
	default:
		return false
	}
}
