package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fransaa81/glowup-dermoestetica/internal/booking"
	"github.com/fransaa81/glowup-dermoestetica/internal/db"
	"github.com/fransaa81/glowup-dermoestetica/internal/intake"
	"github.com/fransaa81/glowup-dermoestetica/internal/schedule"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		log.Fatal("POSTGRES_DSN is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.ConnectPostgres(ctx, dsn)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(context.Background(), pool); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	gofakeit.Seed(time.Now().UnixNano())

	if err := seedSchedule(context.Background(), pool, 30); err != nil {
		log.Fatalf("seed schedule: %v", err)
	}
	if err := seedReservations(context.Background(), pool, 25); err != nil {
		log.Fatalf("seed reservations: %v", err)
	}
	if err := seedIntakeRecords(context.Background(), pool, 40); err != nil {
		log.Fatalf("seed intake records: %v", err)
	}

	log.Println("seed complete")
}

// seedSchedule enables weekdays for the next N days, blocking the occasional
// one and disabling a random slot here and there, roughly what the studio's
// real calendar looks like.
func seedSchedule(ctx context.Context, pool *pgxpool.Pool, days int) error {
	log.Printf("seeding schedule for the next %d days", days)

	store := schedule.NewPgStore(pool)
	today := time.Now()

	for i := 0; i < days; i++ {
		day := today.AddDate(0, 0, i)
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}

		exc := schedule.Exception{SlotOverrides: make(map[schedule.Slot]bool)}
		if gofakeit.Number(0, 9) == 0 {
			exc.Blocked = true
		} else if gofakeit.Bool() {
			slots := schedule.Slots()
			exc.SlotOverrides[slots[gofakeit.Number(0, len(slots)-1)]] = true
		}

		if err := store.Upsert(ctx, schedule.DayKey(day), exc); err != nil {
			return err
		}
	}
	return nil
}

func seedReservations(ctx context.Context, pool *pgxpool.Pool, count int) error {
	log.Printf("seeding %d reservations", count)

	repo := booking.NewPgRepository(pool)
	store := schedule.NewPgStore(pool)

	cfg, err := store.Get(ctx)
	if err != nil {
		return err
	}

	inserted := 0
	for day, exc := range cfg.Exceptions {
		if inserted >= count || exc.Blocked {
			continue
		}

		d, err := schedule.ParseDay(day)
		if err != nil {
			return err
		}

		for _, slot := range schedule.Slots() {
			if inserted >= count || !exc.SlotEnabled(slot) || gofakeit.Bool() {
				continue
			}

			r := booking.Reservation{
				ID:         uuid.New(),
				Day:        d,
				Slot:       slot,
				FullName:   gofakeit.Name(),
				NationalID: fmt.Sprintf("%08d", gofakeit.Number(10000000, 99999999)),
				BirthDate:  gofakeit.DateRange(time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC)).Format("02/01/2006"),
				Email:      gofakeit.Email(),
				Phone:      fmt.Sprintf("11%08d", gofakeit.Number(10000000, 99999999)),
			}

			if _, err := repo.Insert(ctx, r); err != nil {
				return err
			}
			inserted++
		}
	}

	log.Printf("inserted %d reservations", inserted)
	return nil
}

func seedIntakeRecords(ctx context.Context, pool *pgxpool.Pool, count int) error {
	log.Printf("seeding %d intake records", count)

	repo := intake.NewPgRepository(pool)

	skinTypes := []string{"normal", "seca", "grasa", "mixta", "sensible"}

	for i := 0; i < count; i++ {
		rec := intake.Record{
			FirstName:  gofakeit.FirstName(),
			LastName:   gofakeit.LastName(),
			NationalID: fmt.Sprintf("%08d", gofakeit.Number(10000000, 99999999)),
			BirthDate:  gofakeit.DateRange(time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC)).Format("02/01/2006"),
			Address:    gofakeit.Street(),
			Email:      gofakeit.Email(),
			Phone:      fmt.Sprintf("11%08d", gofakeit.Number(10000000, 99999999)),
			History: map[string]string{
				"biotipo":  skinTypes[gofakeit.Number(0, len(skinTypes)-1)],
				"alergias": gofakeit.RandomString([]string{"no", "sí, polen", "sí, penicilina"}),
				"tabaco":   gofakeit.RandomString([]string{"no", "ocasional", "diario"}),
			},
		}

		if _, err := repo.Create(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}
