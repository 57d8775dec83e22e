package request

import "marketplace-moderation/internal/domain/roleapp"

type SaveRegistrationRequest struct {
	DisplayName       string  `json:"display_name" binding:"required,max=100"`
	ContactEmail      string  `json:"contact_email" binding:"required,email"`
	Bio               string  `json:"bio" binding:"max=2000"`
	BrandName         *string `json:"brand_name,omitempty"`
	BrandCategory     *string `json:"brand_category,omitempty"`
	MessageToAdmin    *string `json:"message_to_admin,omitempty"`
	ConfirmsAuthority bool    `json:"confirms_authority"`
	ConfirmsRights    bool    `json:"confirms_rights"`
	TermsVersion      string  `json:"terms_version" binding:"required"`
}

// ToInput maps the request onto the domain registration input.
func (r SaveRegistrationRequest) ToInput() roleapp.RegistrationInput {
	return roleapp.RegistrationInput{
		Profile: roleapp.Profile{
			DisplayName:  r.DisplayName,
			ContactEmail: r.ContactEmail,
			Bio:          r.Bio,
		},
		BrandName:         r.BrandName,
		BrandCategory:     r.BrandCategory,
		MessageToAdmin:    r.MessageToAdmin,
		ConfirmsAuthority: r.ConfirmsAuthority,
		ConfirmsRights:    r.ConfirmsRights,
	}
}

type SubmitEvidenceRequest struct {
	Method     string  `json:"method" binding:"required,oneof=officialEmail codePost"`
	EmailHint  *string `json:"email_hint,omitempty"`
	URL        *string `json:"url,omitempty"`
	ChannelURL *string `json:"channel_url,omitempty"`
}

func (r SubmitEvidenceRequest) ToDomain() (roleapp.EvidenceInput, error) {
	method, err := roleapp.NewEvidenceMethod(r.Method)
	if err != nil {
		return roleapp.EvidenceInput{}, err
	}
	return roleapp.EvidenceInput{
		Method:     method,
		EmailHint:  r.EmailHint,
		URL:        r.URL,
		ChannelURL: r.ChannelURL,
	}, nil
}

type VerifyEvidenceRequest struct {
	Note *string `json:"note,omitempty"`
}

type RejectRoleApplicationRequest struct {
	Category   string `json:"category,omitempty"`
	TemplateID string `json:"template_id" binding:"required"`
	Detail     string `json:"detail,omitempty"`
}

