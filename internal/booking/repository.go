package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks . Repository

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, q Query) ([]*Booking, error)

	// CompareAndSetStatus moves booking id from status from to status to.
	// It reports false when the booking was no longer in status from.
	CompareAndSetStatus(ctx context.Context, id string, from, to Status) (bool, error)

	CountByItem(ctx context.Context, itemID string) (int, error)
	// LastForItem and NextForItem return nil when there is no match.
	LastForItem(ctx context.Context, itemID, ownerID string, now time.Time) (*ItemBooking, error)
	NextForItem(ctx context.Context, itemID, ownerID string, now time.Time) (*ItemBooking, error)
	HasFinishedBooking(ctx context.Context, itemID, bookerID string, now time.Time) (bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func selectBookings() squirrel.SelectBuilder {
	return psql.Select(
		"b.id", "b.item_id", "b.booker_id", "b.start_time", "b.end_time", "b.status",
		"b.created_at", "b.updated_at",
		"u.name", "u.email",
		"i.name", "i.description", "i.is_available", "i.owner_id",
	).
		From("public.bookings b").
		Join("public.items i ON b.item_id = i.id").
		Join("public.users u ON b.booker_id = u.id")
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	if err := row.Scan(
		&b.ID, &b.ItemID, &b.BookerID, &b.Start, &b.End, &b.Status,
		&b.CreatedAt, &b.UpdatedAt,
		&b.BookerName, &b.BookerEmail,
		&b.ItemName, &b.ItemDescription, &b.ItemAvailable, &b.ItemOwnerID,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	query, args, err := psql.Insert("public.bookings").
		Columns("item_id", "booker_id", "start_time", "end_time", "status").
		Values(b.ItemID, b.BookerID, b.Start, b.End, b.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query, args, err := selectBookings().Where(squirrel.Eq{"b.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

// listQuery orders by start descending; id breaks ties so pages are stable.
func listQuery(q Query) squirrel.SelectBuilder {
	return selectBookings().
		Where(q.Where()).
		OrderBy("b.start_time DESC", "b.id DESC").
		Limit(q.Page.Limit()).
		Offset(q.Page.Offset())
}

func (r *pgxRepository) List(ctx context.Context, q Query) ([]*Booking, error) {
	query, args, err := listQuery(q).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	bookings := []*Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings failed: %w", err)
	}
	return bookings, nil
}

// setStatusQuery matches the row only while its status is still from.
func setStatusQuery(id string, from, to Status) squirrel.UpdateBuilder {
	return psql.Update("public.bookings").
		Set("status", to).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": from})
}

func (r *pgxRepository) CompareAndSetStatus(ctx context.Context, id string, from, to Status) (bool, error) {
	query, args, err := setStatusQuery(id, from, to).ToSql()
	if err != nil {
		return false, fmt.Errorf("build update booking status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update booking status failed: %w", err)
	}
	return ct.RowsAffected() == 1, nil
}

func (r *pgxRepository) CountByItem(ctx context.Context, itemID string) (int, error) {
	query, args, err := psql.Select("count(*)").
		From("public.bookings").
		Where(squirrel.Eq{"item_id": itemID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count bookings query failed: %w", err)
	}

	var n int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count bookings failed: %w", err)
	}
	return n, nil
}

func lastForItemQuery(itemID, ownerID string, now time.Time) squirrel.SelectBuilder {
	return psql.Select("b.id", "b.booker_id").
		From("public.bookings b").
		Join("public.items i ON b.item_id = i.id").
		Where(squirrel.Eq{"b.item_id": itemID, "i.owner_id": ownerID}).
		Where(squirrel.LtOrEq{"b.start_time": now}).
		OrderBy("b.end_time DESC", "b.id DESC").
		Limit(1)
}

func nextForItemQuery(itemID, ownerID string, now time.Time) squirrel.SelectBuilder {
	return psql.Select("b.id", "b.booker_id").
		From("public.bookings b").
		Join("public.items i ON b.item_id = i.id").
		Where(squirrel.Eq{"b.item_id": itemID, "i.owner_id": ownerID}).
		Where(squirrel.GtOrEq{"b.start_time": now}).
		OrderBy("b.start_time ASC", "b.id ASC").
		Limit(1)
}

func (r *pgxRepository) LastForItem(ctx context.Context, itemID, ownerID string, now time.Time) (*ItemBooking, error) {
	return r.itemBooking(ctx, lastForItemQuery(itemID, ownerID, now))
}

func (r *pgxRepository) NextForItem(ctx context.Context, itemID, ownerID string, now time.Time) (*ItemBooking, error) {
	return r.itemBooking(ctx, nextForItemQuery(itemID, ownerID, now))
}

func (r *pgxRepository) itemBooking(ctx context.Context, qb squirrel.SelectBuilder) (*ItemBooking, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item booking query failed: %w", err)
	}

	var ib ItemBooking
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&ib.ID, &ib.BookerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item booking failed: %w", err)
	}
	return &ib, nil
}

// HasFinishedBooking reports whether bookerID holds an approved booking of itemID that ended before now.
func (r *pgxRepository) HasFinishedBooking(ctx context.Context, itemID, bookerID string, now time.Time) (bool, error) {
	sub := psql.Select("1").
		From("public.bookings").
		Where(squirrel.Eq{"item_id": itemID, "booker_id": bookerID, "status": StatusApproved}).
		Where(squirrel.Lt{"end_time": now})

	query, args, err := psql.Select().Column(squirrel.Expr("EXISTS (?)", sub)).ToSql()
	if err != nil {
		return false, fmt.Errorf("build finished booking query failed: %w", err)
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check finished booking failed: %w", err)
	}
	return exists, nil
}
