package comment

import (
	"time"

	"github.com/nekogravitycat/shareit-backend/internal/pkg/apperror"
)

var (
	ErrUserNotFound = apperror.NotFound("user not found")
	ErrItemNotFound = apperror.NotFound("item not found")
	ErrTextRequired = apperror.Invalid("comment text is required")
	ErrNotRenter    = apperror.Invalid("only users who finished an approved booking of the item may comment")
)

type Comment struct {
	ID         string
	ItemID     string
	AuthorID   string
	AuthorName string
	Text       string
	CreatedAt  time.Time
}
