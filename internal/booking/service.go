package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/nekogravitycat/shareit-backend/internal/item"
	"github.com/nekogravitycat/shareit-backend/internal/metrics"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
	"github.com/nekogravitycat/shareit-backend/internal/user"
)

//go:generate mockgen -destination=mocks/mock_lookup.go -package=mocks . UserLookup,ItemLookup
//go:generate mockgen -destination=mocks/mock_service.go -package=mocks . Service

type UserLookup interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
}

type ItemLookup interface {
	GetByID(ctx context.Context, id string) (*item.Item, error)
}

type CreateRequest struct {
	BookerID string
	ItemID   string
	Start    time.Time
	End      time.Time
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	Decide(ctx context.Context, actorID, bookingID string, approve bool) (*Booking, error)
	GetByID(ctx context.Context, requesterID, bookingID string) (*Booking, error)

	ListForBooker(ctx context.Context, bookerID, state string, page request.Page) ([]*Booking, error)
	ListForOwner(ctx context.Context, ownerID, state string, page request.Page) ([]*Booking, error)

	// LastAndNext returns the reduced last and next bookings of an item as seen by viewerID.
	// Only the owner ever gets non-nil results.
	LastAndNext(ctx context.Context, itemID, viewerID string) (last, next *ItemBooking, err error)
	HasFinishedBooking(ctx context.Context, itemID, bookerID string) (bool, error)
}

type service struct {
	repo  Repository
	users UserLookup
	items ItemLookup
	now   func() time.Time
}

// Option configures a Service.
type Option func(*service)

// WithClock replaces the wall clock used to decide what "now" is.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

func NewService(repo Repository, users UserLookup, items ItemLookup, opts ...Option) Service {
	s := &service{
		repo:  repo,
		users: users,
		items: items,
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	now := s.now()

	// Identity checks come first so error reporting is deterministic.
	if err := s.checkUser(ctx, req.BookerID); err != nil {
		return nil, err
	}
	it, err := s.items.GetByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, item.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrItemNotFound, req.ItemID)
		}
		return nil, err
	}

	if !req.Start.Before(req.End) || req.Start.Before(now) || req.End.Before(now) {
		return nil, fmt.Errorf("%w: start %s, end %s, now %s",
			ErrInvalidTimeRange, req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339), now.Format(time.RFC3339))
	}
	if it.OwnerID == req.BookerID {
		return nil, fmt.Errorf("%w: user %s owns item %s", ErrSelfBooking, req.BookerID, it.ID)
	}
	if !it.Available {
		return nil, fmt.Errorf("%w: %s", ErrItemUnavailable, it.ID)
	}

	b := &Booking{
		ItemID:   it.ID,
		BookerID: req.BookerID,
		Start:    req.Start,
		End:      req.End,
		Status:   StatusWaiting,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	metrics.IncBookingTransition(string(StatusWaiting))
	zerolog.Ctx(ctx).Info().
		Str("booking_id", b.ID).
		Str("item_id", b.ItemID).
		Msg("booking created")

	return s.repo.GetByID(ctx, b.ID)
}

func (s *service) Decide(ctx context.Context, actorID, bookingID string, approve bool) (*Booking, error) {
	if err := s.checkUser(ctx, actorID); err != nil {
		return nil, err
	}

	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != StatusWaiting {
		return nil, fmt.Errorf("%w: booking %s is %s", ErrAlreadyDecided, b.ID, b.Status)
	}
	if b.ItemOwnerID != actorID {
		return nil, fmt.Errorf("%w: user %s, booking %s", ErrNotItemOwner, actorID, b.ID)
	}

	next := StatusRejected
	if approve {
		next = StatusApproved
	}

	// A concurrent decision may have won since the read above.
	ok, err := s.repo.CompareAndSetStatus(ctx, b.ID, StatusWaiting, next)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: booking %s was decided concurrently", ErrAlreadyDecided, b.ID)
	}

	metrics.IncBookingTransition(string(next))
	zerolog.Ctx(ctx).Info().
		Str("booking_id", b.ID).
		Str("status", string(next)).
		Msg("booking decided")

	b.Status = next
	return b, nil
}

func (s *service) GetByID(ctx context.Context, requesterID, bookingID string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.BookerID != requesterID && b.ItemOwnerID != requesterID {
		return nil, fmt.Errorf("%w: user %s, booking %s", ErrViewForbidden, requesterID, b.ID)
	}
	return b, nil
}

func (s *service) ListForBooker(ctx context.Context, bookerID, state string, page request.Page) ([]*Booking, error) {
	return s.list(ctx, ViewBooker, bookerID, state, page)
}

func (s *service) ListForOwner(ctx context.Context, ownerID, state string, page request.Page) ([]*Booking, error) {
	return s.list(ctx, ViewOwner, ownerID, state, page)
}

// list resolves the category before any booking query so an unknown state never yields a partial result.
func (s *service) list(ctx context.Context, view Viewpoint, subjectID, state string, page request.Page) ([]*Booking, error) {
	if err := s.checkUser(ctx, subjectID); err != nil {
		return nil, err
	}

	category, err := ParseCategory(state)
	if err != nil {
		return nil, err
	}

	metrics.IncBookingList(string(view), string(category))

	return s.repo.List(ctx, Query{
		Viewpoint: view,
		SubjectID: subjectID,
		Category:  category,
		Now:       s.now(),
		Page:      page,
	})
}

func (s *service) LastAndNext(ctx context.Context, itemID, viewerID string) (*ItemBooking, *ItemBooking, error) {
	n, err := s.repo.CountByItem(ctx, itemID)
	if err != nil {
		return nil, nil, err
	}
	if n == 0 {
		return nil, nil, nil
	}

	now := s.now()
	last, err := s.repo.LastForItem(ctx, itemID, viewerID, now)
	if err != nil {
		return nil, nil, err
	}
	next, err := s.repo.NextForItem(ctx, itemID, viewerID, now)
	if err != nil {
		return nil, nil, err
	}
	return last, next, nil
}

func (s *service) HasFinishedBooking(ctx context.Context, itemID, bookerID string) (bool, error) {
	return s.repo.HasFinishedBooking(ctx, itemID, bookerID, s.now())
}

func (s *service) checkUser(ctx context.Context, id string) error {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrUserNotFound, id)
		}
		return err
	}
	return nil
}
