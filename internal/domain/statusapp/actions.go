package statusapp

import "marketplace-moderation/internal/domain/vendor"

// Actions is the set of operations a client may currently offer for a
// vendor listing, derived from the listing status and the current
// application snapshot (nil when none exists).
type Actions struct {
	CanRequestActivate bool `json:"can_request_activate"`
	CanRequestHide     bool `json:"can_request_hide"`
	CanRequestArchive  bool `json:"can_request_archive"`
	CanEditContent     bool `json:"can_edit_content"`
	CanDecide          bool `json:"can_decide"`
}

// DeriveActions computes the allowed actions from current state. The
// duplicate guard is same-type-only, so a pending request blocks only
// its own request type from resubmission.
func DeriveActions(status vendor.Status, app *Application) Actions {
	if status.IsTerminal() {
		return Actions{}
	}

	pendingType := RequestType("")
	hasPending := false
	if app != nil && app.IsPending() {
		hasPending = true
		pendingType = app.RequestType()
	}

	return Actions{
		CanRequestActivate: status != vendor.StatusActive && pendingType != RequestActivate,
		CanRequestHide:     status == vendor.StatusActive && pendingType != RequestHide,
		CanRequestArchive:  pendingType != RequestArchive,
		CanEditContent:     vendor.CanEditContent(status, hasPending),
		CanDecide:          hasPending,
	}
}
