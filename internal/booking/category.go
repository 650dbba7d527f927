package booking

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
)

// Category is a named filter over a subject's bookings.
type Category string

const (
	CategoryAll      Category = "ALL"
	CategoryCurrent  Category = "CURRENT"
	CategoryPast     Category = "PAST"
	CategoryFuture   Category = "FUTURE"
	CategoryWaiting  Category = "WAITING"
	CategoryRejected Category = "REJECTED"
)

// Viewpoint selects whose bookings a listing covers.
type Viewpoint string

const (
	ViewBooker Viewpoint = "booker" // bookings the subject made
	ViewOwner  Viewpoint = "owner"  // bookings on items the subject owns
)

func (v Viewpoint) subjectColumn() string {
	if v == ViewOwner {
		return "i.owner_id"
	}
	return "b.booker_id"
}

// predicate returns the category condition at instant now, or nil for no condition.
type predicate func(now time.Time) squirrel.Sqlizer

// Both viewpoints share one boundary policy: a booking touching now at either end is CURRENT.
var categoryPredicates = map[Category]predicate{
	CategoryAll: func(time.Time) squirrel.Sqlizer { return nil },
	CategoryCurrent: func(now time.Time) squirrel.Sqlizer {
		return squirrel.And{
			squirrel.LtOrEq{"b.start_time": now},
			squirrel.GtOrEq{"b.end_time": now},
		}
	},
	CategoryPast: func(now time.Time) squirrel.Sqlizer {
		return squirrel.Lt{"b.end_time": now}
	},
	CategoryFuture: func(now time.Time) squirrel.Sqlizer {
		return squirrel.Gt{"b.start_time": now}
	},
	CategoryWaiting: func(time.Time) squirrel.Sqlizer {
		return squirrel.Eq{"b.status": StatusWaiting}
	},
	CategoryRejected: func(time.Time) squirrel.Sqlizer {
		return squirrel.Eq{"b.status": StatusRejected}
	},
}

// ParseCategory matches category names exactly. An empty value means ALL.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return CategoryAll, nil
	}
	c := Category(s)
	if _, ok := categoryPredicates[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownState, s)
	}
	return c, nil
}

// Query is a classified listing, ready for the store.
type Query struct {
	Viewpoint Viewpoint
	SubjectID string
	Category  Category
	Now       time.Time
	Page      request.Page
}

// Where is the full filter: subject scope plus the category condition.
func (q Query) Where() squirrel.And {
	where := squirrel.And{squirrel.Eq{q.Viewpoint.subjectColumn(): q.SubjectID}}
	if p, ok := categoryPredicates[q.Category]; ok {
		if cond := p(q.Now); cond != nil {
			where = append(where, cond)
		}
	}
	return where
}
