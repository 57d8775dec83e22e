//go:build unit || e2e

package builder

import (
	"time"

	"marketplace-moderation/internal/domain/roleapp"
	"marketplace-moderation/internal/domain/user"
	reqdto "marketplace-moderation/internal/handler/dto/request"
	"marketplace-moderation/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoleApplicationBuilder struct {
	ID                uuid.UUID
	ApplicantUserID   uuid.UUID
	CurrentRole       user.Role
	DisplayName       string
	ContactEmail      string
	Bio               string
	BrandName         *string
	BrandCategory     *string
	MessageToAdmin    *string
	TermsVersion      string
	ConfirmsAuthority bool
	ConfirmsRights    bool
	Evidence          []roleapp.EvidenceItem
	Status            roleapp.Status
	Decision          *roleapp.DecisionRecord
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewRoleApplicationBuilder() *RoleApplicationBuilder {
	now := time.Now()
	brand := "Test Brand"
	return &RoleApplicationBuilder{
		ID:                uuid.New(),
		ApplicantUserID:   uuid.New(),
		CurrentRole:       user.RoleUser,
		DisplayName:       "Test Applicant",
		ContactEmail:      "applicant@example.com",
		Bio:               "We sell handmade goods",
		BrandName:         &brand,
		TermsVersion:      "2026-01",
		ConfirmsAuthority: true,
		ConfirmsRights:    true,
		Status:            roleapp.StatusInitial,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (b *RoleApplicationBuilder) With(mutate func(*RoleApplicationBuilder)) *RoleApplicationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *RoleApplicationBuilder) BuildRegistrationInput() roleapp.RegistrationInput {
	return roleapp.RegistrationInput{
		Profile: roleapp.Profile{
			DisplayName:  b.DisplayName,
			ContactEmail: b.ContactEmail,
			Bio:          b.Bio,
		},
		BrandName:         b.BrandName,
		BrandCategory:     b.BrandCategory,
		MessageToAdmin:    b.MessageToAdmin,
		ConfirmsAuthority: b.ConfirmsAuthority,
		ConfirmsRights:    b.ConfirmsRights,
	}
}

func (b *RoleApplicationBuilder) BuildDomain() *roleapp.Application {
	app := roleapp.New(b.ApplicantUserID, b.CurrentRole, b.TermsVersion, b.CreatedAt)
	if _, err := app.SaveRegistration(b.BuildRegistrationInput(), b.CreatedAt); err != nil {
		panic(err)
	}
	return app
}

func (b *RoleApplicationBuilder) BuildReconstructed() *roleapp.Application {
	var confirmedAt *time.Time
	if b.ConfirmsAuthority && b.ConfirmsRights {
		at := b.CreatedAt
		confirmedAt = &at
	}
	return roleapp.Reconstruct(
		b.ID, b.ApplicantUserID,
		b.CurrentRole, user.RoleVendor,
		roleapp.Profile{DisplayName: b.DisplayName, ContactEmail: b.ContactEmail, Bio: b.Bio},
		b.BrandName, b.BrandCategory, b.MessageToAdmin,
		b.Evidence,
		b.TermsVersion,
		b.ConfirmsAuthority, b.ConfirmsRights,
		confirmedAt,
		b.Status,
		b.Decision,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *RoleApplicationBuilder) BuildView() *queries.RoleApplicationView {
	evidence := make([]queries.EvidenceView, 0, len(b.Evidence))
	for _, item := range b.Evidence {
		evidence = append(evidence, queries.EvidenceView{
			ID:               item.ID,
			Method:           item.Method.String(),
			Status:           item.Status.String(),
			SubmittedAt:      item.SubmittedAt,
			VerifiedAt:       item.VerifiedAt,
			ReviewedByUserID: item.ReviewedByUserID,
			ReviewNote:       item.ReviewNote,
			EmailHint:        item.EmailHint,
			URL:              item.URL,
			ChannelURL:       item.ChannelURL,
			VerificationCode: item.VerificationCode,
		})
	}
	return &queries.RoleApplicationView{
		ID:              b.ID,
		ApplicantUserID: b.ApplicantUserID,
		CurrentRole:     b.CurrentRole.String(),
		RequestedRole:   user.RoleVendor.String(),
		Profile: roleapp.Profile{
			DisplayName:  b.DisplayName,
			ContactEmail: b.ContactEmail,
			Bio:          b.Bio,
		},
		BrandName:         b.BrandName,
		BrandCategory:     b.BrandCategory,
		MessageToAdmin:    b.MessageToAdmin,
		TermsVersion:      b.TermsVersion,
		ConfirmsAuthority: b.ConfirmsAuthority,
		ConfirmsRights:    b.ConfirmsRights,
		Status:            b.Status.String(),
		Evidence:          evidence,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
		Actions:           roleapp.DeriveActions(b.Status),
	}
}

func (b *RoleApplicationBuilder) BuildListItem() *queries.RoleApplicationListItem {
	return &queries.RoleApplicationListItem{
		ID:              b.ID,
		ApplicantUserID: b.ApplicantUserID,
		ApplicantEmail:  b.ContactEmail,
		BrandName:       b.BrandName,
		Status:          b.Status.String(),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *RoleApplicationBuilder) BuildSaveRequestDTO() reqdto.SaveRegistrationRequest {
	return reqdto.SaveRegistrationRequest{
		DisplayName:       b.DisplayName,
		ContactEmail:      b.ContactEmail,
		Bio:               b.Bio,
		BrandName:         b.BrandName,
		BrandCategory:     b.BrandCategory,
		MessageToAdmin:    b.MessageToAdmin,
		ConfirmsAuthority: b.ConfirmsAuthority,
		ConfirmsRights:    b.ConfirmsRights,
		TermsVersion:      b.TermsVersion,
	}
}

func (b *RoleApplicationBuilder) BuildEmailEvidenceInput() roleapp.EvidenceInput {
	hint := "o***@testbrand.example"
	url := "https://testbrand.example"
	return roleapp.EvidenceInput{
		Method:    roleapp.MethodOfficialEmail,
		EmailHint: &hint,
		URL:       &url,
	}
}

func (b *RoleApplicationBuilder) BuildCodePostEvidenceInput() roleapp.EvidenceInput {
	channel := "https://social.example/testbrand"
	return roleapp.EvidenceInput{
		Method:     roleapp.MethodCodePost,
		ChannelURL: &channel,
	}
}

// Fluent builder methods
func (b *RoleApplicationBuilder) WithApplicant(userID uuid.UUID) *RoleApplicationBuilder {
	b.ApplicantUserID = userID
	return b
}

func (b *RoleApplicationBuilder) WithDisplayName(name string) *RoleApplicationBuilder {
	b.DisplayName = name
	return b
}

func (b *RoleApplicationBuilder) WithBrandName(name *string) *RoleApplicationBuilder {
	b.BrandName = name
	return b
}

func (b *RoleApplicationBuilder) WithTermsVersion(version string) *RoleApplicationBuilder {
	b.TermsVersion = version
	return b
}

func (b *RoleApplicationBuilder) WithStatus(status roleapp.Status) *RoleApplicationBuilder {
	b.Status = status
	return b
}

func (b *RoleApplicationBuilder) WithoutConfirmations() *RoleApplicationBuilder {
	b.ConfirmsAuthority = false
	b.ConfirmsRights = false
	return b
}

func (b *RoleApplicationBuilder) WithEvidence(items ...roleapp.EvidenceItem) *RoleApplicationBuilder {
	b.Evidence = items
	return b
}
