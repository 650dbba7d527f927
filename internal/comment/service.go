package comment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nekogravitycat/shareit-backend/internal/item"
	"github.com/nekogravitycat/shareit-backend/internal/user"
)

type UserLookup interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
}

type ItemLookup interface {
	GetByID(ctx context.Context, id string) (*item.Item, error)
}

// RentalChecker answers whether a user has finished renting an item.
type RentalChecker interface {
	HasFinishedBooking(ctx context.Context, itemID, bookerID string) (bool, error)
}

type Service interface {
	Add(ctx context.Context, authorID, itemID, text string) (*Comment, error)
	ListByItem(ctx context.Context, itemID string) ([]*Comment, error)
}

type service struct {
	repo    Repository
	users   UserLookup
	items   ItemLookup
	rentals RentalChecker
}

func NewService(repo Repository, users UserLookup, items ItemLookup, rentals RentalChecker) Service {
	return &service{
		repo:    repo,
		users:   users,
		items:   items,
		rentals: rentals,
	}
}

func (s *service) Add(ctx context.Context, authorID, itemID, text string) (*Comment, error) {
	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUserNotFound, authorID)
		}
		return nil, err
	}
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		if errors.Is(err, item.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
		}
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrTextRequired
	}

	ok, err := s.rentals.HasFinishedBooking(ctx, itemID, authorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: user %s, item %s", ErrNotRenter, authorID, itemID)
	}

	c := &Comment{
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: author.Name,
		Text:       text,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Str("comment_id", c.ID).Str("item_id", itemID).Msg("comment added")
	return c, nil
}

func (s *service) ListByItem(ctx context.Context, itemID string) ([]*Comment, error) {
	return s.repo.ListByItem(ctx, itemID)
}
