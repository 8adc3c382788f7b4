package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/fransaa81/glowup-dermoestetica/internal/booking"
	"github.com/fransaa81/glowup-dermoestetica/internal/config"
	"github.com/fransaa81/glowup-dermoestetica/internal/db"
	"github.com/fransaa81/glowup-dermoestetica/internal/notify"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("reminder-worker starting up")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	log.Printf("running reminder worker in env=%s spec=%q", cfg.Env, cfg.WorkerSpec)

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

	mailer := notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)
	dispatcher := notify.NewDispatcher(
		notify.NewPgReminderStore(pgPool),
		booking.NewPgRepository(pgPool),
		mailer,
	)

	// Run once at startup to catch anything that came due while down
	runOnce(rootCtx, dispatcher)

	c := cron.New()
	_, err = c.AddFunc(cfg.WorkerSpec, func() {
		runOnce(rootCtx, dispatcher)
	})
	if err != nil {
		log.Fatalf("failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("reminder sweep scheduled")

	<-rootCtx.Done()

	log.Println("shutdown signal received, stopping reminder worker")
	<-c.Stop().Done()
}

func runOnce(ctx context.Context, d *notify.Dispatcher) {
	runCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	start := time.Now()
	if err := d.DispatchDue(runCtx); err != nil {
		log.Printf("reminder sweep error: %v", err)
		return
	}
	log.Printf("reminder sweep complete in %s", time.Since(start))
}
