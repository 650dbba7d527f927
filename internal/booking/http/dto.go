package http

import (
	"time"

	"github.com/nekogravitycat/shareit-backend/internal/booking"
	itemHttp "github.com/nekogravitycat/shareit-backend/internal/item/http"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
	userHttp "github.com/nekogravitycat/shareit-backend/internal/user/http"
)

// ListBookingsRequest defines query parameters for both booking listings.
type ListBookingsRequest struct {
	request.PageParams
	State string `form:"state"`
}

type CreateBookingRequest struct {
	ItemID string    `json:"item_id" binding:"required,uuid"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

// DecideBookingRequest carries ?approved=true|false.
type DecideBookingRequest struct {
	Approved *bool `form:"approved" binding:"required"`
}

type BookingResponse struct {
	ID     string           `json:"id"`
	Start  time.Time        `json:"start"`
	End    time.Time        `json:"end"`
	Status string           `json:"status"`
	Booker userHttp.UserTag `json:"booker"`
	Item   itemHttp.ItemTag `json:"item"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: string(b.Status),
		Booker: userHttp.UserTag{ID: b.BookerID, Name: b.BookerName},
		Item: itemHttp.ItemTag{
			ID:          b.ItemID,
			Name:        b.ItemName,
			Description: b.ItemDescription,
			Available:   b.ItemAvailable,
		},
	}
}

func NewBookingResponses(bookings []*booking.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = NewBookingResponse(b)
	}
	return out
}
