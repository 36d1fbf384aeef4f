package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dinheirorapido/loanledger/internal/domain"
)

// PixKeyRepository implements usecase.PixKeyRepository.
type PixKeyRepository struct {
	pool *pgxpool.Pool
}

// NewPixKeyRepository creates a new PixKeyRepository.
func NewPixKeyRepository(pool *pgxpool.Pool) *PixKeyRepository {
	return &PixKeyRepository{pool: pool}
}

const pixKeyColumns = `id, name, key_type, key_value, owner, created_at, updated_at`

// Create inserts a pix key.
func (r *PixKeyRepository) Create(ctx context.Context, key *domain.PixKey) error {
	query := `
		INSERT INTO pix_keys (` + pixKeyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		key.ID,
		key.Name,
		key.KeyType,
		key.KeyValue,
		key.Owner,
		key.CreatedAt,
		key.UpdatedAt,
	)

	return err
}

// GetByID retrieves a pix key by ID.
func (r *PixKeyRepository) GetByID(ctx context.Context, id string) (*domain.PixKey, error) {
	query := `SELECT ` + pixKeyColumns + ` FROM pix_keys WHERE id = $1`

	var key domain.PixKey
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&key.ID,
		&key.Name,
		&key.KeyType,
		&key.KeyValue,
		&key.Owner,
		&key.CreatedAt,
		&key.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPixKeyNotFound
	}
	if err != nil {
		return nil, err
	}

	return &key, nil
}

// Update updates a pix key.
func (r *PixKeyRepository) Update(ctx context.Context, key *domain.PixKey) error {
	query := `
		UPDATE pix_keys
		SET name = $2, key_type = $3, key_value = $4, owner = $5, updated_at = $6
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		key.ID,
		key.Name,
		key.KeyType,
		key.KeyValue,
		key.Owner,
		key.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrPixKeyNotFound
	}

	return nil
}

// Delete removes a pix key.
func (r *PixKeyRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM pix_keys WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrPixKeyNotFound
	}

	return nil
}

// List retrieves pix keys with pagination.
func (r *PixKeyRepository) List(ctx context.Context, limit, offset int) ([]*domain.PixKey, error) {
	query := `
		SELECT ` + pixKeyColumns + `
		FROM pix_keys
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []*domain.PixKey
	for rows.Next() {
		var key domain.PixKey
		err := rows.Scan(
			&key.ID,
			&key.Name,
			&key.KeyType,
			&key.KeyValue,
			&key.Owner,
			&key.CreatedAt,
			&key.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		keys = append(keys, &key)
	}

	return keys, rows.Err()
}
