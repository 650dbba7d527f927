package itemrequest

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
)

type Repository interface {
	Create(ctx context.Context, req *ItemRequest) error
	GetByID(ctx context.Context, id string) (*ItemRequest, error)
	ListByRequester(ctx context.Context, requesterID string) ([]*ItemRequest, error)
	// ListOthers returns requests made by anyone except userID, newest first.
	ListOthers(ctx context.Context, userID string, page request.Page) ([]*ItemRequest, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, req *ItemRequest) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.item_requests").
		Columns("description", "requester_id").
		Values(req.Description, req.RequesterID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create item request query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&req.ID, &req.CreatedAt); err != nil {
		return fmt.Errorf("create item request failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*ItemRequest, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "description", "requester_id", "created_at").
		From("public.item_requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get item request query failed: %w", err)
	}

	var req ItemRequest
	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&req.ID, &req.Description, &req.RequesterID, &req.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get item request failed: %w", err)
	}
	return &req, nil
}

func (r *pgxRepository) ListByRequester(ctx context.Context, requesterID string) ([]*ItemRequest, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return r.list(ctx, psql.Select("id", "description", "requester_id", "created_at").
		From("public.item_requests").
		Where(squirrel.Eq{"requester_id": requesterID}).
		OrderBy("created_at DESC", "id DESC"))
}

func (r *pgxRepository) ListOthers(ctx context.Context, userID string, page request.Page) ([]*ItemRequest, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return r.list(ctx, psql.Select("id", "description", "requester_id", "created_at").
		From("public.item_requests").
		Where(squirrel.NotEq{"requester_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(page.Limit()).
		Offset(page.Offset()))
}

func (r *pgxRepository) list(ctx context.Context, qb squirrel.SelectBuilder) ([]*ItemRequest, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list item requests query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list item requests failed: %w", err)
	}
	defer rows.Close()

	result := []*ItemRequest{}
	for rows.Next() {
		var req ItemRequest
		if err := rows.Scan(&req.ID, &req.Description, &req.RequesterID, &req.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item request failed: %w", err)
		}
		result = append(result, &req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate item requests failed: %w", err)
	}
	return result, nil
}
