package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fransaa81/glowup-dermoestetica/internal/inquiry"
)

func createInquiryHandler(repo inquiry.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req InquiryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		created, err := repo.Create(r.Context(), inquiry.Inquiry{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Message: req.Message,
		})
		if err != nil {
			handleInquiryError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toInquiryResponse(*created))
	}
}

func listInquiriesHandler(repo inquiry.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := pagination(r)

		inquiries, err := repo.List(r.Context(), limit, offset)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		out := make([]InquiryResponse, 0, len(inquiries))
		for _, i := range inquiries {
			out = append(out, toInquiryResponse(i))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func attendInquiryHandler(repo inquiry.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_inquiry_id", "id must be a valid UUID")
			return
		}

		updated, err := repo.MarkAttended(r.Context(), id)
		if err != nil {
			handleInquiryError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toInquiryResponse(*updated))
	}
}

func deleteInquiryHandler(repo inquiry.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_inquiry_id", "id must be a valid UUID")
			return
		}

		if err := repo.Delete(r.Context(), id); err != nil {
			handleInquiryError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleInquiryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, inquiry.ErrInvalidInquiry):
		writeError(w, http.StatusBadRequest, "invalid_inquiry", err.Error())
	case errors.Is(err, inquiry.ErrInquiryNotFound):
		writeError(w, http.StatusNotFound, "inquiry_not_found", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
