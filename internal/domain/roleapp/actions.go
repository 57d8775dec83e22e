package roleapp

// Actions is what a client may currently offer for a role application.
type Actions struct {
	CanEditRegistration bool `json:"can_edit_registration"`
	CanSubmitEvidence   bool `json:"can_submit_evidence"`
	CanResubmit         bool `json:"can_resubmit"`
	CanDecide           bool `json:"can_decide"`
	CanArchive          bool `json:"can_archive"`
}

func DeriveActions(status Status) Actions {
	switch status {
	case StatusInitial:
		return Actions{CanEditRegistration: true, CanSubmitEvidence: true, CanDecide: true, CanArchive: true}
	case StatusPending:
		return Actions{CanDecide: true, CanArchive: true}
	case StatusRejected:
		return Actions{CanSubmitEvidence: true, CanResubmit: true, CanArchive: true}
	default:
		return Actions{}
	}
}
