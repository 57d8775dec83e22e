package queries

import (
	"time"

	"marketplace-moderation/internal/domain/roleapp"
	"marketplace-moderation/internal/domain/statusapp"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type VendorView struct {
	ID          uuid.UUID `json:"id"`
	PublicID    string    `json:"public_id"`
	OwnerUserID uuid.UUID `json:"owner_user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type StatusApplicationView struct {
	ID                        uuid.UUID         `json:"id"`
	VendorID                  uuid.UUID         `json:"vendor_id"`
	VendorPublicID            string            `json:"vendor_public_id"`
	ApplicantUserID           uuid.UUID         `json:"applicant_user_id"`
	RequestType               string            `json:"request_type"`
	CurrentStatusAtSubmission string            `json:"current_status_at_submission"`
	Message                   *string           `json:"message,omitempty"`
	TermsVersion              string            `json:"terms_version"`
	AgreedAt                  time.Time         `json:"agreed_at"`
	Decision                  string            `json:"decision"`
	ReviewedBy                *uuid.UUID        `json:"reviewed_by,omitempty"`
	ReviewedAt                *time.Time        `json:"reviewed_at,omitempty"`
	RejectionReason           *string           `json:"rejection_reason,omitempty"`
	CreatedAt                 time.Time         `json:"created_at"`
	UpdatedAt                 time.Time         `json:"updated_at"`
	ListingStatus             string            `json:"listing_status"`
	Actions                   statusapp.Actions `json:"actions"`
}

type StatusApplicationListItem struct {
	ID             uuid.UUID `json:"id"`
	VendorPublicID string    `json:"vendor_public_id"`
	VendorName     string    `json:"vendor_name"`
	RequestType    string    `json:"request_type"`
	Decision       string    `json:"decision"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type StatusEventView struct {
	ID            uuid.UUID      `json:"id"`
	ApplicationID uuid.UUID      `json:"application_id"`
	Seq           int64          `json:"seq"`
	Type          string         `json:"type"`
	ActorUserID   uuid.UUID      `json:"actor_user_id"`
	OccurredAt    time.Time      `json:"occurred_at"`
	Payload       map[string]any `json:"payload,omitempty"`
}

type EvidenceView struct {
	ID               uuid.UUID  `json:"id"`
	Method           string     `json:"method"`
	Status           string     `json:"status"`
	SubmittedAt      *time.Time `json:"submitted_at,omitempty"`
	VerifiedAt       *time.Time `json:"verified_at,omitempty"`
	ReviewedByUserID *uuid.UUID `json:"reviewed_by_user_id,omitempty"`
	ReviewNote       *string    `json:"review_note,omitempty"`
	EmailHint        *string    `json:"email_hint,omitempty"`
	URL              *string    `json:"url,omitempty"`
	ChannelURL       *string    `json:"channel_url,omitempty"`
	VerificationCode *string    `json:"verification_code,omitempty"`
}

type DecisionView struct {
	ReviewerUserID    uuid.UUID `json:"reviewer_user_id"`
	DecidedAt         time.Time `json:"decided_at"`
	Result            string    `json:"result"`
	RejectionCategory *string   `json:"rejection_category,omitempty"`
	Comment           *string   `json:"comment,omitempty"`
}

type RoleApplicationView struct {
	ID                uuid.UUID       `json:"id"`
	ApplicantUserID   uuid.UUID       `json:"applicant_user_id"`
	CurrentRole       string          `json:"current_role"`
	RequestedRole     string          `json:"requested_role"`
	Profile           roleapp.Profile `json:"profile"`
	BrandName         *string         `json:"brand_name,omitempty"`
	BrandCategory     *string         `json:"brand_category,omitempty"`
	MessageToAdmin    *string         `json:"message_to_admin,omitempty"`
	TermsVersion      string          `json:"terms_version"`
	ConfirmsAuthority bool            `json:"confirms_authority"`
	ConfirmsRights    bool            `json:"confirms_rights"`
	ConfirmedAt       *time.Time      `json:"confirmed_at,omitempty"`
	Status            string          `json:"status"`
	Evidence          []EvidenceView  `json:"evidence"`
	Decision          *DecisionView   `json:"decision,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	Actions           roleapp.Actions `json:"actions"`
}

type RoleApplicationListItem struct {
	ID              uuid.UUID `json:"id"`
	ApplicantUserID uuid.UUID `json:"applicant_user_id"`
	ApplicantEmail  string    `json:"applicant_email"`
	BrandName       *string   `json:"brand_name,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type RoleEventView struct {
	ID            uuid.UUID      `json:"id"`
	ApplicationID uuid.UUID      `json:"application_id"`
	Seq           int64          `json:"seq"`
	Type          string         `json:"type"`
	ActorUserID   uuid.UUID      `json:"actor_user_id"`
	ActorRole     string         `json:"actor_role"`
	OccurredAt    time.Time      `json:"occurred_at"`
	PrevStatus    *string        `json:"prev_status,omitempty"`
	NewStatus     *string        `json:"new_status,omitempty"`
	Payload       map[string]any `json:"payload,omitempty"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type RejectionTemplateView struct {
	ID                     string `json:"id"`
	Category               string `json:"category"`
	Title                  string `json:"title"`
	PreviewText            string `json:"preview_text"`
	RequiresFreeformDetail bool   `json:"requires_freeform_detail"`
}
