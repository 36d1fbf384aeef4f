package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dinheirorapido/loanledger/internal/domain"
	"github.com/dinheirorapido/loanledger/internal/usecase"
)

// ClientRepository implements usecase.ClientRepository.
type ClientRepository struct {
	pool *pgxpool.Pool
}

// NewClientRepository creates a new ClientRepository.
func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

const clientColumns = `id, name, email, phone, cpf, address, city, state, zip_code, notes, created_at`

// Create inserts a new client.
func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		client.ID,
		client.Name,
		client.Email,
		client.Phone,
		client.CPF,
		client.Address,
		client.City,
		client.State,
		client.ZipCode,
		client.Notes,
		client.CreatedAt,
	)

	return err
}

// GetByID retrieves a client by ID.
func (r *ClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

	client, err := scanClient(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrClientNotFound
	}

	return client, err
}

// Update updates a client profile.
func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) error {
	query := `
		UPDATE clients
		SET name = $2, email = $3, phone = $4, cpf = $5, address = $6,
		    city = $7, state = $8, zip_code = $9, notes = $10
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		client.ID,
		client.Name,
		client.Email,
		client.Phone,
		client.CPF,
		client.Address,
		client.City,
		client.State,
		client.ZipCode,
		client.Notes,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrClientNotFound
	}

	return nil
}

// DeleteTx deletes a client within a transaction.
func (r *ClientRepository) DeleteTx(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrClientNotFound
	}

	return nil
}

// List retrieves clients with pagination.
func (r *ClientRepository) List(ctx context.Context, limit, offset int) ([]*domain.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanClients(rows)
}

// Search retrieves clients whose name or CPF matches the query.
func (r *ClientRepository) Search(ctx context.Context, query string, limit, offset int) ([]*domain.Client, error) {
	sql := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE name ILIKE '%' || $1 || '%' OR cpf LIKE '%' || $1 || '%'
		ORDER BY name
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, sql, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanClients(rows)
}

func scanClient(row pgx.Row) (*domain.Client, error) {
	var client domain.Client

	err := row.Scan(
		&client.ID,
		&client.Name,
		&client.Email,
		&client.Phone,
		&client.CPF,
		&client.Address,
		&client.City,
		&client.State,
		&client.ZipCode,
		&client.Notes,
		&client.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &client, nil
}

func scanClients(rows pgx.Rows) ([]*domain.Client, error) {
	var clients []*domain.Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}

	return clients, rows.Err()
}
