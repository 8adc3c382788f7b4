package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/fransaa81/glowup-dermoestetica/internal/booking"
	"github.com/fransaa81/glowup-dermoestetica/internal/inquiry"
	"github.com/fransaa81/glowup-dermoestetica/internal/intake"
	"github.com/fransaa81/glowup-dermoestetica/internal/schedule"
)

type BookingRequest struct {
	Day        string `json:"day"`
	Slot       string `json:"slot"`
	FullName   string `json:"full_name"`
	NationalID string `json:"national_id"`
	BirthDate  string `json:"birth_date"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

type ReservationResponse struct {
	ID         uuid.UUID `json:"id"`
	Day        string    `json:"day"`
	Slot       string    `json:"slot"`
	FullName   string    `json:"full_name"`
	NationalID string    `json:"national_id"`
	BirthDate  string    `json:"birth_date"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `json:"created_at"`
}

func toReservationResponse(r booking.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:         r.ID,
		Day:        r.DayKey(),
		Slot:       string(r.Slot),
		FullName:   r.FullName,
		NationalID: r.NationalID,
		BirthDate:  r.BirthDate,
		Email:      r.Email,
		Phone:      r.Phone,
		CreatedAt:  r.CreatedAt,
	}
}

type AvailabilityResponse struct {
	Day   string   `json:"day"`
	Slots []string `json:"slots"`
}

type CellResponse struct {
	Day       string `json:"day"`
	InMonth   bool   `json:"in_month"`
	Today     bool   `json:"today"`
	OpenSlots int    `json:"open_slots"`
}

type CalendarResponse struct {
	Month string         `json:"month"`
	Cells []CellResponse `json:"cells"`
}

func toCalendarResponse(month string, cells []schedule.Cell) CalendarResponse {
	out := CalendarResponse{Month: month, Cells: make([]CellResponse, 0, len(cells))}
	for _, c := range cells {
		out.Cells = append(out.Cells, CellResponse{
			Day:       schedule.DayKey(c.Day),
			InMonth:   c.InMonth,
			Today:     c.Today,
			OpenSlots: c.OpenSlots,
		})
	}
	return out
}

type ExceptionResponse struct {
	Day           string          `json:"day"`
	Blocked       bool            `json:"blocked"`
	SlotOverrides map[string]bool `json:"slot_overrides,omitempty"`
}

func toExceptionResponse(day string, exc schedule.Exception) ExceptionResponse {
	resp := ExceptionResponse{Day: day, Blocked: exc.Blocked}
	if len(exc.SlotOverrides) > 0 {
		resp.SlotOverrides = make(map[string]bool, len(exc.SlotOverrides))
		for slot, disabled := range exc.SlotOverrides {
			resp.SlotOverrides[string(slot)] = disabled
		}
	}
	return resp
}

type InquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type InquiryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func toInquiryResponse(i inquiry.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:        i.ID,
		Name:      i.Name,
		Email:     i.Email,
		Phone:     i.Phone,
		Message:   i.Message,
		Status:    string(i.Status),
		CreatedAt: i.CreatedAt,
	}
}

type IntakeRecordRequest struct {
	FirstName  string            `json:"first_name"`
	LastName   string            `json:"last_name"`
	NationalID string            `json:"national_id"`
	BirthDate  string            `json:"birth_date"`
	Address    string            `json:"address"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	History    map[string]string `json:"history"`
}

type IntakeRecordResponse struct {
	ID         uuid.UUID         `json:"id"`
	FirstName  string            `json:"first_name"`
	LastName   string            `json:"last_name"`
	FullName   string            `json:"full_name"`
	NationalID string            `json:"national_id"`
	BirthDate  string            `json:"birth_date"`
	Address    string            `json:"address"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	History    map[string]string `json:"history,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func toIntakeRecordResponse(r intake.Record) IntakeRecordResponse {
	return IntakeRecordResponse{
		ID:         r.ID,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		FullName:   r.FullName(),
		NationalID: r.NationalID,
		BirthDate:  r.BirthDate,
		Address:    r.Address,
		Email:      r.Email,
		Phone:      r.Phone,
		History:    r.History,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
