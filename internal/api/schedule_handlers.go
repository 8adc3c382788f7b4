package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fransaa81/glowup-dermoestetica/internal/schedule"
)

func getScheduleHandler(svc *schedule.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := svc.Configuration(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		out := make([]ExceptionResponse, 0, len(cfg.Exceptions))
		for day, exc := range cfg.Exceptions {
			out = append(out, toExceptionResponse(day, exc))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getScheduleDayHandler(svc *schedule.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day := chi.URLParam(r, "day")

		exc, ok, err := svc.Day(r.Context(), day)
		if err != nil {
			handleScheduleError(w, err)
			return
		}
		if !ok {
			writeError(w, http.StatusNotFound, "day_not_configured", "no exception entry for this day")
			return
		}

		writeJSON(w, http.StatusOK, toExceptionResponse(day, exc))
	}
}

func enableDayHandler(svc *schedule.Service) http.HandlerFunc {
	return scheduleMutation(svc, func(r *http.Request, svc *schedule.Service) error {
		return svc.Enable(r.Context(), chi.URLParam(r, "day"))
	})
}

func disableDayHandler(svc *schedule.Service) http.HandlerFunc {
	return scheduleMutation(svc, func(r *http.Request, svc *schedule.Service) error {
		return svc.Disable(r.Context(), chi.URLParam(r, "day"))
	})
}

func blockDayHandler(svc *schedule.Service) http.HandlerFunc {
	return scheduleMutation(svc, func(r *http.Request, svc *schedule.Service) error {
		return svc.Block(r.Context(), chi.URLParam(r, "day"))
	})
}

func toggleSlotHandler(svc *schedule.Service) http.HandlerFunc {
	return scheduleMutation(svc, func(r *http.Request, svc *schedule.Service) error {
		slot, err := schedule.ParseSlot(chi.URLParam(r, "slot"))
		if err != nil {
			return err
		}
		return svc.ToggleSlot(r.Context(), chi.URLParam(r, "day"), slot)
	})
}

func scheduleMutation(svc *schedule.Service, fn func(r *http.Request, svc *schedule.Service) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(r, svc); err != nil {
			handleScheduleError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleScheduleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, schedule.ErrUnknownSlot):
		writeError(w, http.StatusBadRequest, "invalid_slot", "slot must be one of the fixed time ranges")
	case errors.Is(err, schedule.ErrDayNotEnabled):
		writeError(w, http.StatusConflict, "day_not_enabled", "slot overrides require an enabled day")
	case isDayParseError(err):
		writeError(w, http.StatusBadRequest, "invalid_day", "day must be yyyy-MM-dd")
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

func isDayParseError(err error) bool {
	var pe *time.ParseError
	return errors.As(err, &pe)
}
