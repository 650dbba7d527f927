package item

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/shareit-backend/internal/itemrequest"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
	"github.com/nekogravitycat/shareit-backend/internal/user"
)

type fakeUsers map[string]bool

func (f fakeUsers) GetByID(_ context.Context, id string) (*user.User, error) {
	if !f[id] {
		return nil, user.ErrNotFound
	}
	return &user.User{ID: id, IsActive: true}, nil
}

type fakeRequests map[string]bool

func (f fakeRequests) GetByID(_ context.Context, id string) (*itemrequest.ItemRequest, error) {
	if !f[id] {
		return nil, itemrequest.ErrNotFound
	}
	return &itemrequest.ItemRequest{ID: id}, nil
}

type fakeRepo struct {
	items      map[string]*Item
	searchHits int
}

func (r *fakeRepo) Create(_ context.Context, it *Item) error {
	it.ID = fmt.Sprintf("i%d", len(r.items)+1)
	c := *it
	r.items[it.ID] = &c
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := *it
	return &c, nil
}

func (r *fakeRepo) Update(_ context.Context, it *Item) error {
	c := *it
	r.items[it.ID] = &c
	return nil
}

func (r *fakeRepo) ListByOwner(_ context.Context, ownerID string, _ request.Page) ([]*Item, error) {
	out := []*Item{}
	for _, it := range r.items {
		if it.OwnerID == ownerID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeRepo) Search(_ context.Context, _ string, _ request.Page) ([]*Item, error) {
	r.searchHits++
	return []*Item{}, nil
}

func (r *fakeRepo) ListByRequest(_ context.Context, _ ...string) ([]*Item, error) {
	return []*Item{}, nil
}

func newTestService() (Service, *fakeRepo) {
	repo := &fakeRepo{items: map[string]*Item{}}
	users := fakeUsers{"owner": true, "other": true}
	requests := fakeRequests{"req-1": true}
	return NewService(repo, users, requests), repo
}

func boolPtr(b bool) *bool { return &b }
func strPtr(s string) *string { return &s }

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, repo := newTestService()
		it, err := svc.Create(ctx, "owner", CreateRequest{
			Name: " Drill ", Description: "Cordless drill", Available: boolPtr(true), RequestID: strPtr("req-1"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Drill", it.Name)
		assert.Equal(t, "owner", it.OwnerID)
		assert.Contains(t, repo.items, it.ID)
	})

	tests := []struct {
		name    string
		ownerID string
		req     CreateRequest
		wantErr error
	}{
		{"unknown owner", "ghost", CreateRequest{Name: "a", Description: "b", Available: boolPtr(true)}, ErrOwnerNotFound},
		{"blank name", "owner", CreateRequest{Name: " ", Description: "b", Available: boolPtr(true)}, ErrNameRequired},
		{"blank description", "owner", CreateRequest{Name: "a", Description: "", Available: boolPtr(true)}, ErrDescriptionRequired},
		{"missing availability", "owner", CreateRequest{Name: "a", Description: "b"}, ErrAvailableRequired},
		{"unknown request", "owner", CreateRequest{Name: "a", Description: "b", Available: boolPtr(false), RequestID: strPtr("nope")}, ErrRequestNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()
			_, err := svc.Create(ctx, tt.ownerID, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.items)
		})
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()
	it, err := svc.Create(ctx, "owner", CreateRequest{Name: "Drill", Description: "Cordless", Available: boolPtr(true)})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "owner", it.ID, UpdateRequest{Available: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, updated.Available)
	assert.Equal(t, "Drill", updated.Name)
	assert.False(t, repo.items[it.ID].Available)

	_, err = svc.Update(ctx, "other", it.ID, UpdateRequest{Name: strPtr("Mine now")})
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = svc.Update(ctx, "owner", it.ID, UpdateRequest{Name: strPtr("  ")})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Update(ctx, "owner", "missing", UpdateRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchBlankTextSkipsStore(t *testing.T) {
	svc, repo := newTestService()

	got, err := svc.Search(context.Background(), "   ", request.Page{Size: 10})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
	assert.Zero(t, repo.searchHits)

	_, err = svc.Search(context.Background(), "drill", request.Page{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.searchHits)
}
