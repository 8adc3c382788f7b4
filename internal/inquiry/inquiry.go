package inquiry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrInquiryNotFound = errors.New("inquiry not found")
	ErrInvalidInquiry  = errors.New("invalid inquiry")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAttended Status = "attended"
)

// Inquiry is one contact-form message awaiting admin review.
type Inquiry struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Message   string
	Status    Status
	CreatedAt time.Time
}

func (i Inquiry) Validate() error {
	if strings.TrimSpace(i.Name) == "" || strings.TrimSpace(i.Email) == "" || strings.TrimSpace(i.Message) == "" {
		return fmt.Errorf("%w: name, email and message are required", ErrInvalidInquiry)
	}
	return nil
}

type Repository interface {
	Create(ctx context.Context, i Inquiry) (*Inquiry, error)
	List(ctx context.Context, limit, offset int) ([]Inquiry, error)
	MarkAttended(ctx context.Context, id uuid.UUID) (*Inquiry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

func scanInquiry(row pgx.Row) (*Inquiry, error) {
	var i Inquiry
	var status string

	err := row.Scan(&i.ID, &i.Name, &i.Email, &i.Phone, &i.Message, &status, &i.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInquiryNotFound
		}
		return nil, err
	}

	i.Status = Status(status)
	return &i, nil
}

func (repo *PgRepository) Create(ctx context.Context, i Inquiry) (*Inquiry, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}

	id := uuid.New()
	row := repo.pool.QueryRow(ctx, `
		INSERT INTO inquiries (id, name, email, phone, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, 'pending', now())
		RETURNING id, name, email, phone, message, status, created_at
	`, id, i.Name, i.Email, i.Phone, i.Message)

	created, err := scanInquiry(row)
	if err != nil {
		return nil, fmt.Errorf("insert inquiry: %w", err)
	}
	return created, nil
}

func (repo *PgRepository) List(ctx context.Context, limit, offset int) ([]Inquiry, error) {
	rows, err := repo.pool.Query(ctx, `
		SELECT id, name, email, phone, message, status, created_at
		FROM inquiries
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	var result []Inquiry
	for rows.Next() {
		i, err := scanInquiry(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	return result, nil
}

func (repo *PgRepository) MarkAttended(ctx context.Context, id uuid.UUID) (*Inquiry, error) {
	row := repo.pool.QueryRow(ctx, `
		UPDATE inquiries
		SET status = 'attended'
		WHERE id = $1
		RETURNING id, name, email, phone, message, status, created_at
	`, id)
	return scanInquiry(row)
}

func (repo *PgRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := repo.pool.Exec(ctx, `
		DELETE FROM inquiries
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("delete inquiry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrInquiryNotFound
	}
	return nil
}
