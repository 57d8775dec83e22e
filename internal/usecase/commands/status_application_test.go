//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace-moderation/internal/domain/actor"
	"marketplace-moderation/internal/domain/statusapp"
	"marketplace-moderation/internal/domain/user"
	"marketplace-moderation/internal/domain/vendor"
	"marketplace-moderation/internal/infra/memuow"
	"marketplace-moderation/internal/pkg/clock"
	"marketplace-moderation/internal/pkg/errs"
	"marketplace-moderation/internal/usecase/commands"
	"marketplace-moderation/tests/common/builder"
	commandsmock "marketplace-moderation/tests/mock/commands"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StatusApplicationUseCaseTestSuite struct {
	suite.Suite
	ctx             context.Context
	uow             *memuow.MemoryUoW
	mockCtrl        *gomock.Controller
	mockVendorWrite *commandsmock.MockVendorWriteService
	clk             *clock.MockClock
	uc              commands.StatusApplicationCommands

	ownerID uuid.UUID
	adminID uuid.UUID
	listing *vendor.Listing
}

func (s *StatusApplicationUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.uow = memuow.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockVendorWrite = commandsmock.NewMockVendorWriteService(s.mockCtrl)
	s.clk = clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	s.uc = commands.NewStatusApplicationUseCase(s.uow, s.mockVendorWrite, s.clk, 5*time.Second)

	s.ownerID = uuid.New()
	s.adminID = uuid.New()
	s.listing = builder.NewVendorBuilder().WithOwner(s.ownerID).AsHidden().BuildDomain()
	s.uow.SeedVendor(s.listing)
}

func (s *StatusApplicationUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStatusApplicationUseCaseSuite(t *testing.T) {
	suite.Run(t, new(StatusApplicationUseCaseTestSuite))
}

func (s *StatusApplicationUseCaseTestSuite) owner() actor.Actor {
	return actor.New(s.ownerID, user.RoleVendor)
}

func (s *StatusApplicationUseCaseTestSuite) admin() actor.Actor {
	return actor.New(s.adminID, user.RoleAdmin)
}

func (s *StatusApplicationUseCaseTestSuite) submitRequest(t statusapp.RequestType) commands.SubmitStatusApplicationRequest {
	msg := "please review"
	return commands.SubmitStatusApplicationRequest{
		VendorPublicID: s.listing.PublicID(),
		RequestType:    t,
		Message:        &msg,
		TermsVersion:   "2026-01",
	}
}

func (s *StatusApplicationUseCaseTestSuite) submit(t statusapp.RequestType) uuid.UUID {
	result, err := s.uc.SubmitOrResubmit(s.ctx, s.owner(), s.submitRequest(t))
	s.Require().NoError(err)
	return result.ApplicationID
}

func (s *StatusApplicationUseCaseTestSuite) TestSubmitOrResubmit() {
	s.Run("first submission creates the application and audit event", func() {
		result, err := s.uc.SubmitOrResubmit(s.ctx, s.owner(), s.submitRequest(statusapp.RequestActivate))
		s.Require().NoError(err)
		s.False(result.Resubmitted)

		app := s.uow.StatusApplicationByVendor(s.listing.ID())
		s.Require().NotNil(app)
		s.Equal(statusapp.RequestActivate, app.RequestType())
		s.True(app.IsPending())

		events := s.uow.StatusEvents(result.ApplicationID)
		s.Require().Len(events, 1)
		s.Equal(statusapp.EventSubmitted, events[0].Type)
		s.Equal(int64(1), events[0].Seq)
	})

	s.Run("same pending request type is a duplicate and leaves no trace", func() {
		s.SetupTest()
		appID := s.submit(statusapp.RequestActivate)
		before := s.uow.StatusApplicationByVendor(s.listing.ID())
		eventsBefore := s.uow.StatusEvents(appID)

		s.clk.Add(time.Hour)
		_, err := s.uc.SubmitOrResubmit(s.ctx, s.owner(), s.submitRequest(statusapp.RequestActivate))
		s.ErrorIs(err, errs.ErrDuplicatePending)

		// The refused submission must not touch the snapshot or the log
		after := s.uow.StatusApplicationByVendor(s.listing.ID())
		s.Equal(before.UpdatedAt(), after.UpdatedAt())
		s.Equal(before.TermsVersion(), after.TermsVersion())
		if diff := cmp.Diff(eventsBefore, s.uow.StatusEvents(appID)); diff != "" {
			s.T().Errorf("event log changed on a refused submission (-want +got):\n%s", diff)
		}
	})

	s.Run("different request type overwrites the pending one", func() {
		s.SetupTest()
		firstID := s.submit(statusapp.RequestActivate)
		s.clk.Add(time.Hour)

		result, err := s.uc.SubmitOrResubmit(s.ctx, s.owner(), s.submitRequest(statusapp.RequestArchive))
		s.Require().NoError(err)
		s.True(result.Resubmitted)
		s.Equal(firstID, result.ApplicationID)

		app := s.uow.StatusApplicationByVendor(s.listing.ID())
		s.Equal(statusapp.RequestArchive, app.RequestType())

		events := s.uow.StatusEvents(firstID)
		s.Require().Len(events, 2)
		s.Equal(statusapp.EventSubmitted, events[0].Type)
		s.Equal(statusapp.EventResubmitted, events[1].Type)
		s.Equal(int64(2), events[1].Seq)
	})

	s.Run("rejected application can be resubmitted with the same type", func() {
		s.SetupTest()
		appID := s.submit(statusapp.RequestActivate)
		err := s.uc.Decide(s.ctx, s.admin(), appID, commands.DecideStatusApplicationRequest{
			TemplateID: "incompleteListing",
		})
		s.Require().NoError(err)

		result, err := s.uc.SubmitOrResubmit(s.ctx, s.owner(), s.submitRequest(statusapp.RequestActivate))
		s.Require().NoError(err)
		s.True(result.Resubmitted)
		s.True(s.uow.StatusApplicationByVendor(s.listing.ID()).IsPending())
	})

	s.Run("only the owner or an admin may submit", func() {
		s.SetupTest()
		stranger := actor.New(uuid.New(), user.RoleVendor)
		_, err := s.uc.SubmitOrResubmit(s.ctx, stranger, s.submitRequest(statusapp.RequestActivate))
		s.ErrorIs(err, commands.ErrNotVendorOwner)
	})

	s.Run("unknown vendor", func() {
		req := s.submitRequest(statusapp.RequestActivate)
		req.VendorPublicID = "vnd-missing"
		_, err := s.uc.SubmitOrResubmit(s.ctx, s.owner(), req)
		s.ErrorIs(err, commands.ErrVendorNotFound)
	})

	s.Run("anonymous caller", func() {
		_, err := s.uc.SubmitOrResubmit(s.ctx, actor.Anonymous(), s.submitRequest(statusapp.RequestActivate))
		s.ErrorIs(err, errs.ErrPermissionDenied)
	})
}

func (s *StatusApplicationUseCaseTestSuite) TestDecide() {
	approve := commands.DecideStatusApplicationRequest{Approve: true}

	s.Run("approve commits the decision and applies the listing status", func() {
		appID := s.submit(statusapp.RequestActivate)
		eventsBefore := s.uow.StatusEvents(appID)
		s.mockVendorWrite.EXPECT().
			ApplyStatus(gomock.Any(), s.listing.ID(), vendor.StatusActive, gomock.Any()).
			Return(nil).Times(1)

		s.Require().NoError(s.uc.Decide(s.ctx, s.admin(), appID, approve))

		app := s.uow.StatusApplicationByVendor(s.listing.ID())
		s.Equal(statusapp.DecisionApproved, app.Decision())
		s.Equal(s.adminID, *app.ReviewedBy())

		events := s.uow.StatusEvents(appID)
		s.Require().Len(events, 3)
		s.Equal(statusapp.EventDecidedApproved, events[1].Type)
		s.Equal(statusapp.EventVendorStatusApplied, events[2].Type)

		// The log only grows: entries written before the decision are untouched
		if diff := cmp.Diff(eventsBefore, events[:len(eventsBefore)]); diff != "" {
			s.T().Errorf("prior events changed after the decision (-want +got):\n%s", diff)
		}
	})

	s.Run("approve survives a failed side effect", func() {
		s.SetupTest()
		appID := s.submit(statusapp.RequestActivate)
		s.mockVendorWrite.EXPECT().
			ApplyStatus(gomock.Any(), s.listing.ID(), vendor.StatusActive, gomock.Any()).
			Return(errors.New("listing service unavailable")).Times(1)

		err := s.uc.Decide(s.ctx, s.admin(), appID, approve)
		s.ErrorIs(err, errs.ErrApprovedButStatusApplyFailed)

		// decision stays committed; only the side effect is outstanding
		app := s.uow.StatusApplicationByVendor(s.listing.ID())
		s.Equal(statusapp.DecisionApproved, app.Decision())

		events := s.uow.StatusEvents(appID)
		s.Require().Len(events, 2)
		s.Equal(statusapp.EventDecidedApproved, events[1].Type)
	})

	s.Run("rejecting an activate request marks the listing rejected", func() {
		s.SetupTest()
		appID := s.submit(statusapp.RequestActivate)

		err := s.uc.Decide(s.ctx, s.admin(), appID, commands.DecideStatusApplicationRequest{
			TemplateID: "incompleteListing",
			Detail:     "see ticket #42",
		})
		s.Require().NoError(err)

		app := s.uow.StatusApplicationByVendor(s.listing.ID())
		s.Equal(statusapp.DecisionRejected, app.Decision())
		s.Contains(*app.RejectionReason(), "see ticket #42")
		s.Equal(vendor.StatusRejected, s.uow.Vendor(s.listing.ID()).Status())

		events := s.uow.StatusEvents(appID)
		s.Equal(statusapp.EventDecidedRejected, events[len(events)-1].Type)
	})

	s.Run("rejecting a hide request leaves the listing untouched", func() {
		s.SetupTest()
		s.listing.ApplyStatus(vendor.StatusActive, s.clk.Now())
		s.uow.SeedVendor(s.listing)
		appID := s.submit(statusapp.RequestHide)

		err := s.uc.Decide(s.ctx, s.admin(), appID, commands.DecideStatusApplicationRequest{
			TemplateID: "policyViolation",
		})
		s.Require().NoError(err)
		s.Equal(vendor.StatusActive, s.uow.Vendor(s.listing.ID()).Status())
	})

	s.Run("rejection without a template", func() {
		s.SetupTest()
		appID := s.submit(statusapp.RequestActivate)

		err := s.uc.Decide(s.ctx, s.admin(), appID, commands.DecideStatusApplicationRequest{})
		s.ErrorIs(err, errs.ErrMissingTemplate)
		s.True(s.uow.StatusApplicationByVendor(s.listing.ID()).IsPending())
	})

	s.Run("second decision fails", func() {
		s.SetupTest()
		appID := s.submit(statusapp.RequestArchive)
		s.mockVendorWrite.EXPECT().
			ApplyStatus(gomock.Any(), s.listing.ID(), vendor.StatusArchived, gomock.Any()).
			Return(nil).Times(1)
		s.Require().NoError(s.uc.Decide(s.ctx, s.admin(), appID, approve))

		err := s.uc.Decide(s.ctx, s.admin(), appID, approve)
		s.ErrorIs(err, statusapp.ErrAlreadyDecided)
	})

	s.Run("non-admin cannot decide", func() {
		s.SetupTest()
		appID := s.submit(statusapp.RequestActivate)

		err := s.uc.Decide(s.ctx, s.owner(), appID, approve)
		s.ErrorIs(err, errs.ErrPermissionDenied)
	})

	s.Run("unknown application", func() {
		err := s.uc.Decide(s.ctx, s.admin(), uuid.New(), approve)
		s.ErrorIs(err, errs.ErrApplicationNotFound)
	})
}

func (s *StatusApplicationUseCaseTestSuite) TestApplyApprovedStatus() {
	s.Run("retries the side effect after a failure", func() {
		appID := s.submit(statusapp.RequestActivate)
		gomock.InOrder(
			s.mockVendorWrite.EXPECT().
				ApplyStatus(gomock.Any(), s.listing.ID(), vendor.StatusActive, gomock.Any()).
				Return(errors.New("timeout")),
			s.mockVendorWrite.EXPECT().
				ApplyStatus(gomock.Any(), s.listing.ID(), vendor.StatusActive, gomock.Any()).
				Return(nil),
		)
		s.ErrorIs(s.uc.Decide(s.ctx, s.admin(), appID, commands.DecideStatusApplicationRequest{Approve: true}), errs.ErrApprovedButStatusApplyFailed)

		s.Require().NoError(s.uc.ApplyApprovedStatus(s.ctx, s.admin(), appID))

		events := s.uow.StatusEvents(appID)
		s.Equal(statusapp.EventVendorStatusApplied, events[len(events)-1].Type)
	})

	s.Run("pending application cannot be applied", func() {
		s.SetupTest()
		appID := s.submit(statusapp.RequestActivate)

		err := s.uc.ApplyApprovedStatus(s.ctx, s.admin(), appID)
		s.ErrorIs(err, commands.ErrDecisionNotApproved)
	})

	s.Run("admin only", func() {
		err := s.uc.ApplyApprovedStatus(s.ctx, s.owner(), uuid.New())
		s.ErrorIs(err, errs.ErrPermissionDenied)
	})
}

func (s *StatusApplicationUseCaseTestSuite) TestAcceptTerms() {
	s.Run("applicant re-accepts a newer version", func() {
		appID := s.submit(statusapp.RequestActivate)
		s.clk.Add(time.Hour)

		s.Require().NoError(s.uc.AcceptTerms(s.ctx, s.owner(), appID, "2026-02"))

		app := s.uow.StatusApplicationByVendor(s.listing.ID())
		s.Equal("2026-02", app.TermsVersion())
		s.Equal(s.clk.Now(), app.AgreedAt())

		events := s.uow.StatusEvents(appID)
		s.Equal(statusapp.EventTermsUpdated, events[len(events)-1].Type)
	})

	s.Run("only the applicant may accept", func() {
		s.SetupTest()
		appID := s.submit(statusapp.RequestActivate)

		err := s.uc.AcceptTerms(s.ctx, actor.New(uuid.New(), user.RoleVendor), appID, "2026-02")
		s.ErrorIs(err, errs.ErrPermissionDenied)
	})
}
