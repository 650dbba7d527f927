package itemrequest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
	"github.com/nekogravitycat/shareit-backend/internal/user"
)

type knownUsers map[string]bool

func (k knownUsers) GetByID(_ context.Context, id string) (*user.User, error) {
	if !k[id] {
		return nil, user.ErrNotFound
	}
	return &user.User{ID: id}, nil
}

type memRepo struct {
	byID      map[string]*ItemRequest
	lastPage  request.Page
	lastOther string
}

func (m *memRepo) Create(_ context.Context, req *ItemRequest) error {
	req.ID = "r1"
	m.byID[req.ID] = req
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id string) (*ItemRequest, error) {
	req, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return req, nil
}

func (m *memRepo) ListByRequester(_ context.Context, requesterID string) ([]*ItemRequest, error) {
	out := []*ItemRequest{}
	for _, req := range m.byID {
		if req.RequesterID == requesterID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (m *memRepo) ListOthers(_ context.Context, userID string, page request.Page) ([]*ItemRequest, error) {
	m.lastOther, m.lastPage = userID, page
	return []*ItemRequest{}, nil
}

func TestService(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{byID: map[string]*ItemRequest{}}
	svc := NewService(repo, knownUsers{"alice": true, "bob": true})

	_, err := svc.Create(ctx, "alice", "  ")
	assert.ErrorIs(t, err, ErrDescriptionRequired)

	_, err = svc.Create(ctx, "nobody", "A ladder")
	assert.ErrorIs(t, err, ErrUserNotFound)

	req, err := svc.Create(ctx, "alice", " A ladder ")
	require.NoError(t, err)
	assert.Equal(t, "A ladder", req.Description)

	own, err := svc.ListOwn(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, own, 1)

	got, err := svc.GetByID(ctx, "bob", req.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.RequesterID)

	_, err = svc.GetByID(ctx, "bob", "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.ListOthers(ctx, "bob", request.Page{From: 20, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, "bob", repo.lastOther)
	assert.Equal(t, uint64(20), repo.lastPage.Offset())
}
