package itemrequest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
	"github.com/nekogravitycat/shareit-backend/internal/user"
)

// UserLookup resolves the caller of every operation.
type UserLookup interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
}

type Service interface {
	Create(ctx context.Context, requesterID, description string) (*ItemRequest, error)
	ListOwn(ctx context.Context, requesterID string) ([]*ItemRequest, error)
	ListOthers(ctx context.Context, userID string, page request.Page) ([]*ItemRequest, error)
	GetByID(ctx context.Context, userID, id string) (*ItemRequest, error)
}

type service struct {
	repo  Repository
	users UserLookup
}

func NewService(repo Repository, users UserLookup) Service {
	return &service{repo: repo, users: users}
}

func (s *service) Create(ctx context.Context, requesterID, description string) (*ItemRequest, error) {
	if err := s.checkUser(ctx, requesterID); err != nil {
		return nil, err
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}

	req := &ItemRequest{
		Description: description,
		RequesterID: requesterID,
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Str("request_id", req.ID).Msg("item request created")
	return req, nil
}

func (s *service) ListOwn(ctx context.Context, requesterID string) ([]*ItemRequest, error) {
	if err := s.checkUser(ctx, requesterID); err != nil {
		return nil, err
	}
	return s.repo.ListByRequester(ctx, requesterID)
}

func (s *service) ListOthers(ctx context.Context, userID string, page request.Page) ([]*ItemRequest, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListOthers(ctx, userID, page)
}

func (s *service) GetByID(ctx context.Context, userID, id string) (*ItemRequest, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
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
