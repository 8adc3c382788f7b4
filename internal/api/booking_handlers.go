package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fransaa81/glowup-dermoestetica/internal/booking"
	redisclient "github.com/fransaa81/glowup-dermoestetica/internal/redis"
	"github.com/fransaa81/glowup-dermoestetica/internal/schedule"
)

func calendarHandler(svc *booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month := r.URL.Query().Get("month")
		ref := time.Now()
		if month != "" {
			parsed, err := time.Parse("2006-01", month)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid_month", "month must be yyyy-MM")
				return
			}
			ref = parsed
		}

		cells, err := svc.MonthCells(r.Context(), ref)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, toCalendarResponse(ref.Format("2006-01"), cells))
	}
}

func availableSlotsHandler(svc *booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dayStr := chi.URLParam(r, "day")
		day, err := schedule.ParseDay(dayStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_day", "day must be yyyy-MM-dd")
			return
		}

		slots, err := svc.AvailableSlots(r.Context(), day)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		resp := AvailabilityResponse{Day: dayStr, Slots: make([]string, 0, len(slots))}
		for _, s := range slots {
			resp.Slots = append(resp.Slots, string(s))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func createBookingHandler(svc *booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		day, err := schedule.ParseDay(req.Day)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_day", "day must be yyyy-MM-dd")
			return
		}

		slot, err := schedule.ParseSlot(req.Slot)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_slot", "slot must be one of the fixed time ranges")
			return
		}

		info := booking.ClientInfo{
			FullName:   req.FullName,
			NationalID: req.NationalID,
			BirthDate:  req.BirthDate,
			Email:      req.Email,
			Phone:      req.Phone,
		}

		created, err := svc.Book(r.Context(), day, slot, info)
		if err != nil {
			handleBookingError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toReservationResponse(*created))
	}
}

func listBookingsHandler(svc *booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if day := r.URL.Query().Get("day"); day != "" {
			if _, err := schedule.ParseDay(day); err != nil {
				writeError(w, http.StatusBadRequest, "invalid_day", "day must be yyyy-MM-dd")
				return
			}
			reservations, err := svc.ListReservationsByDay(r.Context(), day)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
				return
			}
			writeReservations(w, reservations)
			return
		}

		limit, offset := pagination(r)
		reservations, err := svc.ListReservations(r.Context(), limit, offset)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}
		writeReservations(w, reservations)
	}
}

func getBookingHandler(svc *booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_reservation_id", "id must be a valid UUID")
			return
		}

		res, err := svc.GetReservation(r.Context(), id)
		if err != nil {
			if errors.Is(err, booking.ErrReservationNotFound) {
				writeError(w, http.StatusNotFound, "reservation_not_found", err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, toReservationResponse(*res))
	}
}

func cancelBookingHandler(svc *booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_reservation_id", "id must be a valid UUID")
			return
		}

		if err := svc.Cancel(r.Context(), id); err != nil {
			if errors.Is(err, booking.ErrReservationNotFound) {
				writeError(w, http.StatusNotFound, "reservation_not_found", err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleBookingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, booking.ErrInvalidClientInfo):
		writeError(w, http.StatusBadRequest, "invalid_client_info", err.Error())
	case errors.Is(err, booking.ErrDayUnavailable):
		writeError(w, http.StatusConflict, "day_unavailable", "this day is not enabled for bookings, choose another day")
	case errors.Is(err, booking.ErrSlotNotOpen):
		writeError(w, http.StatusConflict, "slot_not_open", "this time range is not open on the chosen day")
	case errors.Is(err, booking.ErrSlotAlreadyBooked):
		writeError(w, http.StatusConflict, "slot_already_booked", "this time range was just taken, choose another one")
	case errors.Is(err, booking.ErrSlotBeingBooked),
		errors.Is(err, redisclient.ErrLockNotAcquired):
		writeError(w, http.StatusConflict, "slot_being_booked", "slot is currently being booked, please retry shortly")
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

func writeReservations(w http.ResponseWriter, reservations []booking.Reservation) {
	out := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, toReservationResponse(r))
	}
	writeJSON(w, http.StatusOK, out)
}

func pagination(r *http.Request) (limit, offset int) {
	limit = 20
	offset = 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := parseInt(v); err == nil {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := parseInt(v); err == nil {
			offset = n
		}
	}
	return limit, offset
}
