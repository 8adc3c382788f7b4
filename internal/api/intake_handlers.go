package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fransaa81/glowup-dermoestetica/internal/intake"
)

func createIntakeRecordHandler(repo intake.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req IntakeRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		created, err := repo.Create(r.Context(), intakeRecordFromRequest(req))
		if err != nil {
			handleIntakeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toIntakeRecordResponse(*created))
	}
}

func listIntakeRecordsHandler(repo intake.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := pagination(r)

		records, err := repo.List(r.Context(), limit, offset)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		out := make([]IntakeRecordResponse, 0, len(records))
		for _, rec := range records {
			out = append(out, toIntakeRecordResponse(rec))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getIntakeRecordHandler(repo intake.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_record_id", "id must be a valid UUID")
			return
		}

		rec, err := repo.GetByID(r.Context(), id)
		if err != nil {
			handleIntakeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toIntakeRecordResponse(*rec))
	}
}

func updateIntakeRecordHandler(repo intake.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_record_id", "id must be a valid UUID")
			return
		}

		var req IntakeRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		rec := intakeRecordFromRequest(req)
		rec.ID = id

		updated, err := repo.Update(r.Context(), rec)
		if err != nil {
			handleIntakeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toIntakeRecordResponse(*updated))
	}
}

func deleteIntakeRecordHandler(repo intake.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_record_id", "id must be a valid UUID")
			return
		}

		if err := repo.Delete(r.Context(), id); err != nil {
			handleIntakeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func intakeRecordFromRequest(req IntakeRecordRequest) intake.Record {
	return intake.Record{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		NationalID: req.NationalID,
		BirthDate:  req.BirthDate,
		Address:    req.Address,
		Email:      req.Email,
		Phone:      req.Phone,
		History:    req.History,
	}
}

func handleIntakeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, intake.ErrInvalidRecord):
		writeError(w, http.StatusBadRequest, "invalid_record", err.Error())
	case errors.Is(err, intake.ErrRecordNotFound):
		writeError(w, http.StatusNotFound, "record_not_found", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
