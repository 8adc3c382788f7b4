package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fransaa81/glowup-dermoestetica/internal/api"
	"github.com/fransaa81/glowup-dermoestetica/internal/booking"
	"github.com/fransaa81/glowup-dermoestetica/internal/config"
	"github.com/fransaa81/glowup-dermoestetica/internal/db"
	"github.com/fransaa81/glowup-dermoestetica/internal/inquiry"
	"github.com/fransaa81/glowup-dermoestetica/internal/intake"
	"github.com/fransaa81/glowup-dermoestetica/internal/notify"
	redisclient "github.com/fransaa81/glowup-dermoestetica/internal/redis"
	"github.com/fransaa81/glowup-dermoestetica/internal/schedule"
)

const version = "1.0.0"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("api-server starting up")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	log.Printf("running in env=%s http_port=%s", cfg.Env, cfg.HTTPPort)

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect Postgres
	pgCtx, cancelPg := context.WithTimeout(rootCtx, 10*time.Second)
	pgPool, err := db.ConnectPostgres(pgCtx, cfg.PostgresDSN)
	cancelPg()
	if err != nil {
		log.Fatalf("postgres connection error: %v", err)
	}
	defer pgPool.Close()
	log.Println("connected to Postgres")

	migrateCtx, cancelMigrate := context.WithTimeout(rootCtx, 30*time.Second)
	err = db.Migrate(migrateCtx, pgPool)
	cancelMigrate()
	if err != nil {
		log.Fatalf("migration error: %v", err)
	}

	// Connect Redis
	rdb, err := redisclient.NewRedisClient(cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("redis connection error: %v", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Printf("error closing redis: %v", err)
		}
	}()
	log.Println("connected to Redis")

	scheduleStore := schedule.NewPgStore(pgPool)
	cache := redisclient.NewAvailabilityCache(rdb, cfg.CacheTTL)
	scheduleSvc := schedule.NewService(scheduleStore, cache)

	mailer := notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)
	reminders := notify.NewPgReminderStore(pgPool)

	bookingRepo := booking.NewPgRepository(pgPool)
	locker := redisclient.NewRedisSlotLocker(rdb, cfg.LockTTL)
	bookingSvc := booking.NewService(bookingRepo, scheduleStore, locker, mailer, reminders, cache, cfg.ReminderLead)

	router := api.NewRouter(api.RouterConfig{
		Bookings:  bookingSvc,
		Schedule:  scheduleSvc,
		Intake:    intake.NewPgRepository(pgPool),
		Inquiries: inquiry.NewPgRepository(pgPool),
		PgPool:    pgPool,
		Redis:     rdb,
		Env:       cfg.Env,
		Version:   version,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("listening on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	<-rootCtx.Done()

	log.Println("shutting down api-server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
}
