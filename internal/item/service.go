package item

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nekogravitycat/shareit-backend/internal/itemrequest"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
	"github.com/nekogravitycat/shareit-backend/internal/user"
)

type UserLookup interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
}

type RequestLookup interface {
	GetByID(ctx context.Context, id string) (*itemrequest.ItemRequest, error)
}

type CreateRequest struct {
	Name        string
	Description string
	Available   *bool
	RequestID   *string
}

// UpdateRequest is a partial update; nil fields are left unchanged.
type UpdateRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

type Service interface {
	Create(ctx context.Context, ownerID string, req CreateRequest) (*Item, error)
	Update(ctx context.Context, actorID, id string, req UpdateRequest) (*Item, error)
	GetByID(ctx context.Context, id string) (*Item, error)
	ListByOwner(ctx context.Context, ownerID string, page request.Page) ([]*Item, error)
	Search(ctx context.Context, text string, page request.Page) ([]*Item, error)
	ListByRequest(ctx context.Context, requestIDs ...string) ([]*Item, error)
}

type service struct {
	repo     Repository
	users    UserLookup
	requests RequestLookup
}

func NewService(repo Repository, users UserLookup, requests RequestLookup) Service {
	return &service{
		repo:     repo,
		users:    users,
		requests: requests,
	}
}

func (s *service) Create(ctx context.Context, ownerID string, req CreateRequest) (*Item, error) {
	if err := s.checkOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}
	if req.Available == nil {
		return nil, ErrAvailableRequired
	}

	if req.RequestID != nil {
		if _, err := s.requests.GetByID(ctx, *req.RequestID); err != nil {
			if errors.Is(err, itemrequest.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrRequestNotFound, *req.RequestID)
			}
			return nil, err
		}
	}

	it := &Item{
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		Available:   *req.Available,
		RequestID:   req.RequestID,
	}
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Str("item_id", it.ID).Msg("item created")
	return it, nil
}

func (s *service) Update(ctx context.Context, actorID, id string, req UpdateRequest) (*Item, error) {
	if err := s.checkOwner(ctx, actorID); err != nil {
		return nil, err
	}

	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if it.OwnerID != actorID {
		return nil, fmt.Errorf("%w: item %s, actor %s", ErrNotOwner, id, actorID)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		it.Name = name
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			return nil, ErrDescriptionRequired
		}
		it.Description = description
	}
	if req.Available != nil {
		it.Available = *req.Available
	}

	if err := s.repo.Update(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByOwner(ctx context.Context, ownerID string, page request.Page) ([]*Item, error) {
	if err := s.checkOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.repo.ListByOwner(ctx, ownerID, page)
}

// Search returns nothing for blank text rather than every available item.
func (s *service) Search(ctx context.Context, text string, page request.Page) ([]*Item, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []*Item{}, nil
	}
	return s.repo.Search(ctx, text, page)
}

func (s *service) ListByRequest(ctx context.Context, requestIDs ...string) ([]*Item, error) {
	return s.repo.ListByRequest(ctx, requestIDs...)
}

func (s *service) checkOwner(ctx context.Context, id string) error {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrOwnerNotFound, id)
		}
		return err
	}
	return nil
}
