package intake

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository is the CRUD surface the admin handlers need.
type Repository interface {
	Create(ctx context.Context, r Record) (*Record, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Record, error)
	List(ctx context.Context, limit, offset int) ([]Record, error)
	Update(ctx context.Context, r Record) (*Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

const recordColumns = `id, first_name, last_name, national_id, birth_date, address, email, phone, history, created_at, updated_at`

func scanRecord(row pgx.Row) (*Record, error) {
	var r Record
	var history []byte

	err := row.Scan(
		&r.ID,
		&r.FirstName,
		&r.LastName,
		&r.NationalID,
		&r.BirthDate,
		&r.Address,
		&r.Email,
		&r.Phone,
		&history,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	if len(history) > 0 {
		if err := json.Unmarshal(history, &r.History); err != nil {
			return nil, fmt.Errorf("decode history for record %s: %w", r.ID, err)
		}
	}
	return &r, nil
}

func (repo *PgRepository) Create(ctx context.Context, r Record) (*Record, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	history, err := json.Marshal(r.History)
	if err != nil {
		return nil, fmt.Errorf("marshal history: %w", err)
	}

	id := uuid.New()
	row := repo.pool.QueryRow(ctx, `
		INSERT INTO intake_records (id, first_name, last_name, national_id, birth_date, address, email, phone, history, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
		RETURNING `+recordColumns+`
	`, id, r.FirstName, r.LastName, r.NationalID, r.BirthDate, r.Address, r.Email, r.Phone, history)

	created, err := scanRecord(row)
	if err != nil {
		return nil, fmt.Errorf("insert intake record: %w", err)
	}
	return created, nil
}

func (repo *PgRepository) GetByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	row := repo.pool.QueryRow(ctx, `
		SELECT `+recordColumns+`
		FROM intake_records
		WHERE id = $1
	`, id)
	return scanRecord(row)
}

func (repo *PgRepository) List(ctx context.Context, limit, offset int) ([]Record, error) {
	rows, err := repo.pool.Query(ctx, `
		SELECT `+recordColumns+`
		FROM intake_records
		ORDER BY last_name, first_name
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list intake records: %w", err)
	}
	defer rows.Close()

	var result []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list intake records: %w", err)
	}
	return result, nil
}

func (repo *PgRepository) Update(ctx context.Context, r Record) (*Record, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	history, err := json.Marshal(r.History)
	if err != nil {
		return nil, fmt.Errorf("marshal history: %w", err)
	}

	row := repo.pool.QueryRow(ctx, `
		UPDATE intake_records
		SET first_name = $2,
		    last_name = $3,
		    national_id = $4,
		    birth_date = $5,
		    address = $6,
		    email = $7,
		    phone = $8,
		    history = $9,
		    updated_at = now()
		WHERE id = $1
		RETURNING `+recordColumns+`
	`, r.ID, r.FirstName, r.LastName, r.NationalID, r.BirthDate, r.Address, r.Email, r.Phone, history)

	return scanRecord(row)
}

func (repo *PgRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := repo.pool.Exec(ctx, `
		DELETE FROM intake_records
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("delete intake record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}
