//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"marketplace-moderation/internal/domain/actor"
	"marketplace-moderation/internal/domain/user"
	"marketplace-moderation/internal/domain/vendor"
	"marketplace-moderation/internal/infra/memuow"
	"marketplace-moderation/internal/pkg/clock"
	"marketplace-moderation/internal/pkg/errs"
	"marketplace-moderation/internal/usecase/commands"
	"marketplace-moderation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type VendorUseCaseTestSuite struct {
	suite.Suite
	ctx context.Context
	uow *memuow.MemoryUoW
	clk *clock.MockClock
	uc  commands.VendorCommands

	ownerID uuid.UUID
}

func (s *VendorUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.uow = memuow.New()
	s.clk = clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	s.uc = commands.NewVendorUseCase(s.uow, s.clk)
	s.ownerID = uuid.New()
}

func TestVendorUseCaseSuite(t *testing.T) {
	suite.Run(t, new(VendorUseCaseTestSuite))
}

func (s *VendorUseCaseTestSuite) owner() actor.Actor {
	return actor.New(s.ownerID, user.RoleVendor)
}

func (s *VendorUseCaseTestSuite) TestCreateListing() {
	s.Run("creates a pending listing with a derived handle", func() {
		result, err := s.uc.CreateListing(s.ctx, s.owner(), commands.CreateListingRequest{
			Name:        "Fine Ceramics & Co",
			Description: "handmade pottery",
		})
		s.Require().NoError(err)

		s.True(strings.HasPrefix(result.PublicID, "fine-ceramics-"))
		listing := s.uow.Vendor(result.ListingID)
		s.Require().NotNil(listing)
		s.Equal(vendor.StatusPending, listing.Status())
		s.Equal(s.ownerID, listing.OwnerUserID())
	})

	s.Run("plain user cannot create a listing", func() {
		_, err := s.uc.CreateListing(s.ctx, actor.New(uuid.New(), user.RoleUser), commands.CreateListingRequest{Name: "Shop"})
		s.ErrorIs(err, commands.ErrVendorRoleRequired)
		s.ErrorIs(err, errs.ErrPermissionDenied)
	})

	s.Run("empty name", func() {
		_, err := s.uc.CreateListing(s.ctx, s.owner(), commands.CreateListingRequest{Name: "   "})
		s.ErrorIs(err, vendor.ErrInvalidContent)
	})
}

func (s *VendorUseCaseTestSuite) TestUpdateContent() {
	content := commands.UpdateListingContentRequest{Name: "Renamed Shop", Description: "new copy"}

	seedListing := func(status vendor.Status) *vendor.Listing {
		listing := builder.NewVendorBuilder().WithOwner(s.ownerID).WithStatus(status).BuildDomain()
		s.uow.SeedVendor(listing)
		return listing
	}

	s.Run("owner edits a hidden listing", func() {
		listing := seedListing(vendor.StatusHidden)

		s.Require().NoError(s.uc.UpdateContent(s.ctx, s.owner(), listing.PublicID(), content))

		updated := s.uow.Vendor(listing.ID())
		s.Equal("Renamed Shop", updated.Name())
		s.Equal(vendor.StatusHidden, updated.Status())
	})

	s.Run("editing an active listing drops it to hidden", func() {
		s.SetupTest()
		listing := seedListing(vendor.StatusActive)

		s.Require().NoError(s.uc.UpdateContent(s.ctx, s.owner(), listing.PublicID(), content))

		s.Equal(vendor.StatusHidden, s.uow.Vendor(listing.ID()).Status())
	})

	s.Run("pending status application freezes content", func() {
		s.SetupTest()
		listing := seedListing(vendor.StatusActive)
		app, err := builder.NewStatusApplicationBuilder().
			WithVendorID(listing.ID()).
			WithVendorPublicID(listing.PublicID()).
			AsHideRequest().
			BuildDomain()
		s.Require().NoError(err)
		s.uow.SeedStatusApplication(app)

		err = s.uc.UpdateContent(s.ctx, s.owner(), listing.PublicID(), content)
		s.ErrorIs(err, vendor.ErrEditForbidden)
	})

	s.Run("decided application no longer freezes content", func() {
		s.SetupTest()
		listing := seedListing(vendor.StatusActive)
		app, err := builder.NewStatusApplicationBuilder().
			WithVendorID(listing.ID()).
			WithVendorPublicID(listing.PublicID()).
			AsHideRequest().
			BuildDomain()
		s.Require().NoError(err)
		s.Require().NoError(app.Reject(uuid.New(), "declined", s.clk.Now()))
		s.uow.SeedStatusApplication(app)

		s.Require().NoError(s.uc.UpdateContent(s.ctx, s.owner(), listing.PublicID(), content))
	})

	s.Run("only the owner or an admin may edit", func() {
		s.SetupTest()
		listing := seedListing(vendor.StatusHidden)

		err := s.uc.UpdateContent(s.ctx, actor.New(uuid.New(), user.RoleVendor), listing.PublicID(), content)
		s.ErrorIs(err, commands.ErrNotVendorOwner)
	})

	s.Run("admin may edit any listing", func() {
		s.SetupTest()
		listing := seedListing(vendor.StatusHidden)

		err := s.uc.UpdateContent(s.ctx, actor.New(uuid.New(), user.RoleAdmin), listing.PublicID(), content)
		s.Require().NoError(err)
	})

	s.Run("unknown vendor", func() {
		err := s.uc.UpdateContent(s.ctx, s.owner(), "vnd-missing", content)
		s.ErrorIs(err, commands.ErrVendorNotFound)
	})
}
