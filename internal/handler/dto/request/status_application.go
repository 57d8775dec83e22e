package request

import "marketplace-moderation/internal/domain/statusapp"

type SubmitStatusApplicationRequest struct {
	RequestType  string  `json:"request_type" binding:"required,oneof=activate hide archive"`
	Message      *string `json:"message,omitempty"`
	TermsVersion string  `json:"terms_version" binding:"required"`
}

// ParsedRequestType validates the raw request type against the domain enum.
func (r SubmitStatusApplicationRequest) ParsedRequestType() (statusapp.RequestType, error) {
	return statusapp.NewRequestType(r.RequestType)
}

type DecideStatusApplicationRequest struct {
	Approve *bool `json:"approve" binding:"required"`
	// TemplateID selects the rejection reason; required when approve is false.
	TemplateID string `json:"template_id,omitempty"`
	Detail     string `json:"detail,omitempty"`
}

type AcceptTermsRequest struct {
	TermsVersion string `json:"terms_version" binding:"required"`
}
