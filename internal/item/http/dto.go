package http

import (
	"github.com/nekogravitycat/shareit-backend/internal/booking"
	commentHttp "github.com/nekogravitycat/shareit-backend/internal/comment/http"
	"github.com/nekogravitycat/shareit-backend/internal/item"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
)

type CreateItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Available   *bool   `json:"available" binding:"required"`
	RequestID   *string `json:"request_id" binding:"omitempty,uuid"`
}

// UpdateItemRequest uses pointers to distinguish "not sent" from "sent empty".
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type SearchItemsRequest struct {
	request.PageParams
	Text string `form:"text"`
}

type ItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Available   bool    `json:"available"`
	RequestID   *string `json:"request_id"`
}

func NewItemResponse(it *item.Item) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
	}
}

func NewItemResponses(items []*item.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, it := range items {
		out[i] = NewItemResponse(it)
	}
	return out
}

// ItemTag is the item as embedded in booking responses.
type ItemTag struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

type ItemBookingResponse struct {
	ID       string `json:"id"`
	BookerID string `json:"booker_id"`
}

func newItemBookingResponse(b *booking.ItemBooking) *ItemBookingResponse {
	if b == nil {
		return nil
	}
	return &ItemBookingResponse{ID: b.ID, BookerID: b.BookerID}
}

// ItemSummaryResponse is an item with its booking context and comments.
type ItemSummaryResponse struct {
	ItemResponse
	LastBooking *ItemBookingResponse          `json:"last_booking"`
	NextBooking *ItemBookingResponse          `json:"next_booking"`
	Comments    []commentHttp.CommentResponse `json:"comments"`
}
