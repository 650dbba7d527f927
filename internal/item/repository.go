package item

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
)

type Repository interface {
	Create(ctx context.Context, it *Item) error
	GetByID(ctx context.Context, id string) (*Item, error)
	Update(ctx context.Context, it *Item) error
	ListByOwner(ctx context.Context, ownerID string, page request.Page) ([]*Item, error)
	Search(ctx context.Context, text string, page request.Page) ([]*Item, error)
	ListByRequest(ctx context.Context, requestIDs ...string) ([]*Item, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func selectItems() squirrel.SelectBuilder {
	return psql.Select(
		"i.id", "i.owner_id", "i.name", "i.description", "i.is_available", "i.request_id", "i.created_at",
	).From("public.items i")
}

func scanItem(row pgx.Row) (*Item, error) {
	var it Item
	if err := row.Scan(
		&it.ID, &it.OwnerID, &it.Name, &it.Description, &it.Available, &it.RequestID, &it.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *pgxRepository) Create(ctx context.Context, it *Item) error {
	query, args, err := psql.Insert("public.items").
		Columns("owner_id", "name", "description", "is_available", "request_id").
		Values(it.OwnerID, it.Name, it.Description, it.Available, it.RequestID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create item query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&it.ID, &it.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			if pgErr.ConstraintName == "items_request_id_fkey" {
				return ErrRequestNotFound
			}
			return ErrOwnerNotFound
		}
		return fmt.Errorf("create item failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Item, error) {
	query, args, err := selectItems().Where(squirrel.Eq{"i.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get item query failed: %w", err)
	}

	it, err := scanItem(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get item failed: %w", err)
	}
	return it, nil
}

func (r *pgxRepository) Update(ctx context.Context, it *Item) error {
	query, args, err := psql.Update("public.items").
		Set("name", it.Name).
		Set("description", it.Description).
		Set("is_available", it.Available).
		Where(squirrel.Eq{"id": it.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update item query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update item failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) ListByOwner(ctx context.Context, ownerID string, page request.Page) ([]*Item, error) {
	return r.list(ctx, selectItems().
		Where(squirrel.Eq{"i.owner_id": ownerID}).
		OrderBy("i.created_at ASC", "i.id ASC").
		Limit(page.Limit()).
		Offset(page.Offset()))
}

// Search matches available items whose name or description contains text, ignoring case.
func (r *pgxRepository) Search(ctx context.Context, text string, page request.Page) ([]*Item, error) {
	pattern := "%" + text + "%"
	return r.list(ctx, selectItems().
		Where(squirrel.Eq{"i.is_available": true}).
		Where(squirrel.Or{
			squirrel.ILike{"i.name": pattern},
			squirrel.ILike{"i.description": pattern},
		}).
		OrderBy("i.created_at ASC", "i.id ASC").
		Limit(page.Limit()).
		Offset(page.Offset()))
}

func (r *pgxRepository) ListByRequest(ctx context.Context, requestIDs ...string) ([]*Item, error) {
	if len(requestIDs) == 0 {
		return []*Item{}, nil
	}
	return r.list(ctx, selectItems().
		Where(squirrel.Eq{"i.request_id": requestIDs}).
		OrderBy("i.created_at ASC", "i.id ASC"))
}

func (r *pgxRepository) list(ctx context.Context, qb squirrel.SelectBuilder) ([]*Item, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list items query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items failed: %w", err)
	}
	defer rows.Close()

	items := []*Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item failed: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items failed: %w", err)
	}
	return items, nil
}
