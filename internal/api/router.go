package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/fransaa81/glowup-dermoestetica/internal/booking"
	"github.com/fransaa81/glowup-dermoestetica/internal/inquiry"
	"github.com/fransaa81/glowup-dermoestetica/internal/intake"
	"github.com/fransaa81/glowup-dermoestetica/internal/schedule"
)

type RouterConfig struct {
	Bookings  *booking.Service
	Schedule  *schedule.Service
	Intake    intake.Repository
	Inquiries inquiry.Repository
	PgPool    *pgxpool.Pool
	Redis     *redis.Client
	Env       string
	Version   string
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)

	health := NewHealthHandler(cfg.PgPool, cfg.Redis, cfg.Env, cfg.Version)
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	// Public booking surface
	r.Get("/calendar", calendarHandler(cfg.Bookings))
	r.Get("/availability/{day}", availableSlotsHandler(cfg.Bookings))
	r.Post("/bookings", createBookingHandler(cfg.Bookings))
	r.Get("/bookings", listBookingsHandler(cfg.Bookings))
	r.Get("/bookings/{id}", getBookingHandler(cfg.Bookings))
	r.Delete("/bookings/{id}", cancelBookingHandler(cfg.Bookings))

	// Contact form
	r.Post("/inquiries", createInquiryHandler(cfg.Inquiries))

	// Admin back office
	r.Route("/admin", func(r chi.Router) {
		r.Get("/schedule", getScheduleHandler(cfg.Schedule))
		r.Get("/schedule/{day}", getScheduleDayHandler(cfg.Schedule))
		r.Post("/schedule/{day}/enable", enableDayHandler(cfg.Schedule))
		r.Post("/schedule/{day}/disable", disableDayHandler(cfg.Schedule))
		r.Post("/schedule/{day}/block", blockDayHandler(cfg.Schedule))
		r.Post("/schedule/{day}/slots/{slot}/toggle", toggleSlotHandler(cfg.Schedule))

		r.Get("/inquiries", listInquiriesHandler(cfg.Inquiries))
		r.Post("/inquiries/{id}/attend", attendInquiryHandler(cfg.Inquiries))
		r.Delete("/inquiries/{id}", deleteInquiryHandler(cfg.Inquiries))
	})

	// Client intake sheets
	r.Route("/intake-records", func(r chi.Router) {
		r.Post("/", createIntakeRecordHandler(cfg.Intake))
		r.Get("/", listIntakeRecordsHandler(cfg.Intake))
		r.Get("/{id}", getIntakeRecordHandler(cfg.Intake))
		r.Put("/{id}", updateIntakeRecordHandler(cfg.Intake))
		r.Delete("/{id}", deleteIntakeRecordHandler(cfg.Intake))
	})

	return r
}
