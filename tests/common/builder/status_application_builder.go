//go:build unit || e2e

package builder

import (
	"time"

	"marketplace-moderation/internal/domain/statusapp"
	domvendor "marketplace-moderation/internal/domain/vendor"
	reqdto "marketplace-moderation/internal/handler/dto/request"
	"marketplace-moderation/internal/usecase/queries"

	"github.com/google/uuid"
)

type StatusApplicationBuilder struct {
	ID              uuid.UUID
	VendorID        uuid.UUID
	VendorPublicID  string
	ApplicantUserID uuid.UUID
	RequestType     statusapp.RequestType
	CurrentStatus   domvendor.Status
	Message         *string
	TermsVersion    string
	Decision        statusapp.Decision
	ReviewedBy      *uuid.UUID
	ReviewedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewStatusApplicationBuilder() *StatusApplicationBuilder {
	now := time.Now()
	msg := "Please activate our listing"
	return &StatusApplicationBuilder{
		ID:              uuid.New(),
		VendorID:        uuid.New(),
		VendorPublicID:  "vnd-test0001",
		ApplicantUserID: uuid.New(),
		RequestType:     statusapp.RequestActivate,
		CurrentStatus:   domvendor.StatusPending,
		Message:         &msg,
		TermsVersion:    "2026-01",
		Decision:        statusapp.DecisionPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *StatusApplicationBuilder) With(mutate func(*StatusApplicationBuilder)) *StatusApplicationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *StatusApplicationBuilder) BuildDraft() statusapp.Draft {
	return statusapp.Draft{
		VendorID:        b.VendorID,
		VendorPublicID:  b.VendorPublicID,
		ApplicantUserID: b.ApplicantUserID,
		RequestType:     b.RequestType,
		CurrentStatus:   b.CurrentStatus,
		Message:         b.Message,
		TermsVersion:    b.TermsVersion,
		AgreedAt:        b.CreatedAt,
	}
}

func (b *StatusApplicationBuilder) BuildDomain() (*statusapp.Application, error) {
	return statusapp.NewFromDraft(b.BuildDraft(), b.CreatedAt)
}

func (b *StatusApplicationBuilder) BuildReconstructed() *statusapp.Application {
	return statusapp.Reconstruct(
		b.ID, b.VendorID,
		b.VendorPublicID,
		b.ApplicantUserID,
		b.RequestType,
		b.CurrentStatus,
		b.Message,
		b.TermsVersion,
		b.CreatedAt,
		b.Decision,
		b.ReviewedBy,
		b.ReviewedAt,
		b.RejectionReason,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *StatusApplicationBuilder) BuildView() *queries.StatusApplicationView {
	return &queries.StatusApplicationView{
		ID:                        b.ID,
		VendorID:                  b.VendorID,
		VendorPublicID:            b.VendorPublicID,
		ApplicantUserID:           b.ApplicantUserID,
		RequestType:               b.RequestType.String(),
		CurrentStatusAtSubmission: b.CurrentStatus.String(),
		Message:                   b.Message,
		TermsVersion:              b.TermsVersion,
		AgreedAt:                  b.CreatedAt,
		Decision:                  b.Decision.String(),
		ReviewedBy:                b.ReviewedBy,
		ReviewedAt:                b.ReviewedAt,
		RejectionReason:           b.RejectionReason,
		CreatedAt:                 b.CreatedAt,
		UpdatedAt:                 b.UpdatedAt,
		ListingStatus:             b.CurrentStatus.String(),
		Actions:                   statusapp.DeriveActions(b.CurrentStatus, nil),
	}
}

func (b *StatusApplicationBuilder) BuildListItem() *queries.StatusApplicationListItem {
	return &queries.StatusApplicationListItem{
		ID:             b.ID,
		VendorPublicID: b.VendorPublicID,
		VendorName:     "Test Vendor",
		RequestType:    b.RequestType.String(),
		Decision:       b.Decision.String(),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *StatusApplicationBuilder) BuildSubmitRequestDTO() reqdto.SubmitStatusApplicationRequest {
	return reqdto.SubmitStatusApplicationRequest{
		RequestType:  b.RequestType.String(),
		Message:      b.Message,
		TermsVersion: b.TermsVersion,
	}
}

// Fluent builder methods
func (b *StatusApplicationBuilder) WithVendorID(vendorID uuid.UUID) *StatusApplicationBuilder {
	b.VendorID = vendorID
	return b
}

func (b *StatusApplicationBuilder) WithVendorPublicID(publicID string) *StatusApplicationBuilder {
	b.VendorPublicID = publicID
	return b
}

func (b *StatusApplicationBuilder) WithApplicant(userID uuid.UUID) *StatusApplicationBuilder {
	b.ApplicantUserID = userID
	return b
}

func (b *StatusApplicationBuilder) WithRequestType(t statusapp.RequestType) *StatusApplicationBuilder {
	b.RequestType = t
	return b
}

func (b *StatusApplicationBuilder) WithCurrentStatus(status domvendor.Status) *StatusApplicationBuilder {
	b.CurrentStatus = status
	return b
}

func (b *StatusApplicationBuilder) WithMessage(message *string) *StatusApplicationBuilder {
	b.Message = message
	return b
}

func (b *StatusApplicationBuilder) WithTermsVersion(version string) *StatusApplicationBuilder {
	b.TermsVersion = version
	return b
}

func (b *StatusApplicationBuilder) AsHideRequest() *StatusApplicationBuilder {
	b.RequestType = statusapp.RequestHide
	b.CurrentStatus = domvendor.StatusActive
	return b
}

func (b *StatusApplicationBuilder) AsArchiveRequest() *StatusApplicationBuilder {
	b.RequestType = statusapp.RequestArchive
	return b
}

func (b *StatusApplicationBuilder) AsApproved(reviewerID uuid.UUID, at time.Time) *StatusApplicationBuilder {
	b.Decision = statusapp.DecisionApproved
	b.ReviewedBy = &reviewerID
	b.ReviewedAt = &at
	return b
}

func (b *StatusApplicationBuilder) AsRejected(reviewerID uuid.UUID, reason string, at time.Time) *StatusApplicationBuilder {
	b.Decision = statusapp.DecisionRejected
	b.ReviewedBy = &reviewerID
	b.ReviewedAt = &at
	b.RejectionReason = &reason
	return b
}
