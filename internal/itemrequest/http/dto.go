package http

import (
	"time"

	"github.com/nekogravitycat/shareit-backend/internal/item"
	itemHttp "github.com/nekogravitycat/shareit-backend/internal/item/http"
	"github.com/nekogravitycat/shareit-backend/internal/itemrequest"
)

type CreateRequestBody struct {
	Description string `json:"description" binding:"required"`
}

// RequestResponse is an item request with the items listed in answer to it.
type RequestResponse struct {
	ID          string                  `json:"id"`
	Description string                  `json:"description"`
	CreatedAt   time.Time               `json:"created_at"`
	Items       []itemHttp.ItemResponse `json:"items"`
}

// NewRequestResponses pairs each request with its answering items, which may span all requests.
func NewRequestResponses(requests []*itemrequest.ItemRequest, answers []*item.Item) []RequestResponse {
	byRequest := make(map[string][]*item.Item)
	for _, it := range answers {
		if it.RequestID != nil {
			byRequest[*it.RequestID] = append(byRequest[*it.RequestID], it)
		}
	}

	out := make([]RequestResponse, len(requests))
	for i, req := range requests {
		out[i] = RequestResponse{
			ID:          req.ID,
			Description: req.Description,
			CreatedAt:   req.CreatedAt,
			Items:       itemHttp.NewItemResponses(byRequest[req.ID]),
		}
	}
	return out
}
