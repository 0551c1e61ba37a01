package commands

import (
	"context"
	"strings"

	"tourmate/internal/domain/tour"
	"tourmate/internal/infra"
	"tourmate/internal/pkg/clock"
	"tourmate/internal/pkg/errs"
)

var (
	ErrTourNotFound        = errs.ErrTourNotFound
	ErrDuplicateTourID     = errs.ErrDuplicateTourID
	ErrGuideNotFound       = errs.ErrGuideNotFound
	ErrDestinationNotFound = errs.ErrDestinationNotFound
	ErrDestinationMismatch = errs.ErrDestinationMismatch
	ErrEmptyCustomerName   = errs.New("customer name is required")
	ErrGroupTooLarge       = errs.New("guests exceed destination max group size")
)

type BookTourRequest struct {
	DestinationID int64
	GuideID       int64
	CustomerName  string
	CheckIn       string
	CheckOut      string
	Guests        int
}

type SubmitReviewRequest struct {
	Rating int
	Text   string
}

type BookTourResult struct {
	TourID int64
}

type TourCommands interface {
	BookTour(ctx context.Context, req BookTourRequest) (*BookTourResult, error)
	SubmitReview(ctx context.Context, tourID int64, req SubmitReviewRequest) error
}

type tourCommandsImpl struct {
	store   BookedTourWriteStore
	catalog CatalogLookup
	clock   clock.Clock
}

func NewTourCommands(store BookedTourWriteStore, catalog CatalogLookup, clk clock.Clock) TourCommands {
	return &tourCommandsImpl{store: store, catalog: catalog, clock: clk}
}

// BookTour completes the booking flow that the guide-profile modal
// submits: the destination must belong to the requested guide, the
// party must fit the destination's capacity, and name/image/duration/
// price are denormalized from the destination at this moment. The
// customer name is a required form field but, like the original, is
// not carried onto the record.
func (uc *tourCommandsImpl) BookTour(_ context.Context, req BookTourRequest) (*BookTourResult, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, ErrEmptyCustomerName
	}

	g, err := uc.catalog.GuideByID(req.GuideID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGuideNotFound
		}
		return nil, err
	}
	dest, ok := g.Destination(req.DestinationID)
	if !ok {
		// Distinguish an unknown destination from one owned by a
		// different guide.
		if _, lookupErr := uc.catalog.DestinationByID(req.DestinationID); lookupErr != nil {
			return nil, ErrDestinationNotFound
		}
		return nil, ErrDestinationMismatch
	}
	if !dest.FitsGroup(req.Guests) {
		return nil, ErrGroupTooLarge
	}

	dates, err := tour.ParseDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	price, err := tour.NewPrice(dest.PriceVND())
	if err != nil {
		return nil, err
	}

	booked, err := tour.NewBookedTour(
		dest.ID(), dest.Name(), dest.Image(),
		dates, g, dest.DurationDays(), price,
		uc.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	added, err := uc.store.Add(booked)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateTourID
		}
		return nil, err
	}
	return &BookTourResult{TourID: added.ID()}, nil
}

// SubmitReview replaces the tour's review wholesale; rating range is
// validated here rather than trusting the star-control caller.
func (uc *tourCommandsImpl) SubmitReview(_ context.Context, tourID int64, req SubmitReviewRequest) error {
	review, err := tour.NewReview(req.Rating, req.Text)
	if err != nil {
		return err
	}

	if _, err := uc.store.UpdateReview(tourID, review); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTourNotFound
		}
		return err
	}
	return nil
}
