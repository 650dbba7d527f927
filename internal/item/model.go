package item

import (
	"time"

	"github.com/nekogravitycat/shareit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.NotFound("item not found")
	ErrOwnerNotFound       = apperror.NotFound("user not found")
	ErrRequestNotFound     = apperror.NotFound("item request not found")
	ErrNameRequired        = apperror.Invalid("item name is required")
	ErrDescriptionRequired = apperror.Invalid("item description is required")
	ErrAvailableRequired   = apperror.Invalid("item availability is required")
	ErrNotOwner            = apperror.Forbidden("only the owner may edit the item")
)

// Item is something a user offers for rent.
type Item struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	Available   bool
	RequestID   *string // set when the item was listed in answer to an item request
	CreatedAt   time.Time
}
