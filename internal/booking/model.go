package booking

import (
	"time"

	"github.com/nekogravitycat/shareit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.NotFound("booking not found")
	ErrUserNotFound     = apperror.NotFound("user not found")
	ErrItemNotFound     = apperror.NotFound("item not found")
	ErrInvalidTimeRange = apperror.Invalid("start must be before end and neither may be in the past")
	ErrSelfBooking      = apperror.Forbidden("owners cannot book their own items")
	ErrItemUnavailable  = apperror.Invalid("item is not available for booking")
	ErrAlreadyDecided   = apperror.Invalid("booking has already been decided")
	ErrNotItemOwner     = apperror.Forbidden("only the item owner may approve or reject a booking")
	ErrViewForbidden    = apperror.Forbidden("only the author of the booking or the item owner may view it")

	// ErrUnknownState keeps a fixed public message; the offending value is only wrapped in for logs.
	ErrUnknownState = apperror.Invalid("Unknown state: UNSUPPORTED_STATUS")
)

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Booking is a reservation of an item by a booker, together with the
// booker and item columns the store joins in for responses.
type Booking struct {
	ID        string
	ItemID    string
	BookerID  string
	Start     time.Time
	End       time.Time
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time

	BookerName      string
	BookerEmail     string
	ItemName        string
	ItemDescription string
	ItemAvailable   bool
	ItemOwnerID     string
}

// ItemBooking is the reduced view embedded in item summaries.
type ItemBooking struct {
	ID       string
	BookerID string
}
