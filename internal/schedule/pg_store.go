package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgStore struct {
	pool *pgxpool.Pool
}

func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool}
}

func (s *PgStore) Get(ctx context.Context) (Configuration, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT day, blocked, slot_overrides
		FROM schedule_exceptions
	`)
	if err != nil {
		return Configuration{}, fmt.Errorf("load schedule exceptions: %w", err)
	}
	defer rows.Close()

	cfg := NewConfiguration()
	for rows.Next() {
		day, exc, err := scanException(rows)
		if err != nil {
			return Configuration{}, err
		}
		cfg.Exceptions[day] = exc
	}

	if err := rows.Err(); err != nil {
		return Configuration{}, fmt.Errorf("load schedule exceptions: %w", err)
	}

	return cfg, nil
}

func (s *PgStore) GetDay(ctx context.Context, day string) (Exception, bool, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT day, blocked, slot_overrides
		FROM schedule_exceptions
		WHERE day = $1
	`, day)

	_, exc, err := scanException(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Exception{}, false, nil
		}
		return Exception{}, false, err
	}
	return exc, true, nil
}

func (s *PgStore) Upsert(ctx context.Context, day string, exc Exception) error {
	overrides, err := json.Marshal(exc.SlotOverrides)
	if err != nil {
		return fmt.Errorf("marshal slot overrides: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO schedule_exceptions (day, blocked, slot_overrides, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (day) DO UPDATE
		SET blocked = EXCLUDED.blocked,
		    slot_overrides = EXCLUDED.slot_overrides,
		    updated_at = now()
	`, day, exc.Blocked, overrides)
	if err != nil {
		return fmt.Errorf("upsert schedule exception: %w", err)
	}
	return nil
}

func (s *PgStore) Delete(ctx context.Context, day string) error {
	_, err := s.pool.Exec(ctx, `
		DELETE FROM schedule_exceptions
		WHERE day = $1
	`, day)
	if err != nil {
		return fmt.Errorf("delete schedule exception: %w", err)
	}
	return nil
}

func scanException(row pgx.Row) (string, Exception, error) {
	var day time.Time
	var blocked bool
	var overrides []byte

	if err := row.Scan(&day, &blocked, &overrides); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", Exception{}, pgx.ErrNoRows
		}
		return "", Exception{}, fmt.Errorf("scan schedule exception: %w", err)
	}

	exc := Exception{Blocked: blocked}
	if len(overrides) > 0 {
		if err := json.Unmarshal(overrides, &exc.SlotOverrides); err != nil {
			return "", Exception{}, fmt.Errorf("decode slot overrides for %s: %w", DayKey(day), err)
		}
	}

	return DayKey(day), exc, nil
}
