package itemrequest

import (
	"time"

	"github.com/nekogravitycat/shareit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.NotFound("item request not found")
	ErrUserNotFound        = apperror.NotFound("user not found")
	ErrDescriptionRequired = apperror.Invalid("request description is required")
)

// ItemRequest is a user's note that they want to rent something nobody lists yet.
// Owners answer it by creating an item that references the request.
type ItemRequest struct {
	ID          string
	Description string
	RequesterID string
	CreatedAt   time.Time
}
