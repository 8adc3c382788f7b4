package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fransaa81/glowup-dermoestetica/internal/schedule"
)

const uniqueViolation = "23505"

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

func scanReservation(row pgx.Row) (*Reservation, error) {
	var r Reservation
	var slot string

	err := row.Scan(
		&r.ID,
		&r.Day,
		&slot,
		&r.FullName,
		&r.NationalID,
		&r.BirthDate,
		&r.Email,
		&r.Phone,
		&r.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	r.Slot = schedule.Slot(slot)
	return &r, nil
}

func (repo *PgRepository) Insert(ctx context.Context, r Reservation) (*Reservation, error) {
	row := repo.pool.QueryRow(ctx, `
		INSERT INTO reservations (id, day, slot, full_name, national_id, birth_date, email, phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		RETURNING id, day, slot, full_name, national_id, birth_date, email, phone, created_at
	`, r.ID, r.DayKey(), string(r.Slot), r.FullName, r.NationalID, r.BirthDate, r.Email, r.Phone)

	created, err := scanReservation(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrSlotAlreadyBooked
		}
		return nil, fmt.Errorf("insert reservation: %w", err)
	}
	return created, nil
}

func (repo *PgRepository) GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	row := repo.pool.QueryRow(ctx, `
		SELECT id, day, slot, full_name, national_id, birth_date, email, phone, created_at
		FROM reservations
		WHERE id = $1
	`, id)
	return scanReservation(row)
}

func (repo *PgRepository) List(ctx context.Context, limit, offset int) ([]Reservation, error) {
	rows, err := repo.pool.Query(ctx, `
		SELECT id, day, slot, full_name, national_id, birth_date, email, phone, created_at
		FROM reservations
		ORDER BY day, slot
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (repo *PgRepository) ListByDay(ctx context.Context, day string) ([]Reservation, error) {
	rows, err := repo.pool.Query(ctx, `
		SELECT id, day, slot, full_name, national_id, birth_date, email, phone, created_at
		FROM reservations
		WHERE day = $1
		ORDER BY slot
	`, day)
	if err != nil {
		return nil, fmt.Errorf("list reservations for day: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (repo *PgRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := repo.pool.Exec(ctx, `
		DELETE FROM reservations
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrReservationNotFound
	}
	return nil
}

func (repo *PgRepository) SlotsTaken(ctx context.Context, day string) ([]schedule.Slot, error) {
	rows, err := repo.pool.Query(ctx, `
		SELECT slot
		FROM reservations
		WHERE day = $1
	`, day)
	if err != nil {
		return nil, fmt.Errorf("load taken slots: %w", err)
	}
	defer rows.Close()

	var taken []schedule.Slot
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("scan taken slot: %w", err)
		}
		taken = append(taken, schedule.Slot(slot))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load taken slots: %w", err)
	}
	return taken, nil
}

func (repo *PgRepository) SlotsTakenRange(ctx context.Context, from, to string) (map[string][]schedule.Slot, error) {
	rows, err := repo.pool.Query(ctx, `
		SELECT day, slot
		FROM reservations
		WHERE day BETWEEN $1 AND $2
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("load taken slots in range: %w", err)
	}
	defer rows.Close()

	taken := make(map[string][]schedule.Slot)
	for rows.Next() {
		var day time.Time
		var slot string
		if err := rows.Scan(&day, &slot); err != nil {
			return nil, fmt.Errorf("scan taken slot: %w", err)
		}
		key := schedule.DayKey(day)
		taken[key] = append(taken[key], schedule.Slot(slot))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load taken slots in range: %w", err)
	}
	return taken, nil
}

func collectReservations(rows pgx.Rows) ([]Reservation, error) {
	var result []Reservation
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *r)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
