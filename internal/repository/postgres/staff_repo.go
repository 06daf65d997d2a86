package postgres

import (
	"context"
	"errors"
	"fmt"

	"vstore-backend/internal/domain"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type staffRepo struct {
	pool *pgxpool.Pool
}

func NewStaffRepository(pool *pgxpool.Pool) domain.StaffRepository {
	return &staffRepo{pool: pool}
}

func (r *staffRepo) Create(ctx context.Context, staff *domain.Staff) error {
	data, err := json.Marshal(staff)
	if err != nil {
		return fmt.Errorf("failed to marshal staff: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO staff (id, data, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		staff.ID, data, staff.CreatedAt, staff.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert staff: %w", err)
	}
	return nil
}

func (r *staffRepo) GetByID(ctx context.Context, id string) (*domain.Staff, error) {
	return r.getOne(ctx, `SELECT data FROM staff WHERE id = $1`, id)
}

func (r *staffRepo) GetByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	return r.getOne(ctx, `SELECT data FROM staff WHERE data->>'email' = $1`, email)
}

func (r *staffRepo) getOne(ctx context.Context, query string, arg interface{}) (*domain.Staff, error) {
	var data []byte
	err := r.pool.QueryRow(ctx, query, arg).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: staff account", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}

	var staff domain.Staff
	if err := json.Unmarshal(data, &staff); err != nil {
		return nil, fmt.Errorf("failed to unmarshal staff: %w", err)
	}
	return &staff, nil
}

func (r *staffRepo) GetAll(ctx context.Context) ([]domain.Staff, error) {
	rows, err := r.pool.Query(ctx, `SELECT data FROM staff ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	members := []domain.Staff{}
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan staff row: %w", err)
		}
		var staff domain.Staff
		if err := json.Unmarshal(data, &staff); err != nil {
			return nil, fmt.Errorf("failed to unmarshal staff: %w", err)
		}
		members = append(members, staff)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate staff rows: %w", err)
	}
	return members, nil
}

func (r *staffRepo) Update(ctx context.Context, staff *domain.Staff) error {
	data, err := json.Marshal(staff)
	if err != nil {
		return fmt.Errorf("failed to marshal staff: %w", err)
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE staff SET data = $2, updated_at = $3 WHERE id = $1`,
		staff.ID, data, staff.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: staff %s", domain.ErrNotFound, staff.ID)
	}
	return nil
}

func (r *staffRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: staff %s", domain.ErrNotFound, id)
	}
	return nil
}
