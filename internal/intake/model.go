package intake

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrRecordNotFound = errors.New("intake record not found")
	ErrInvalidRecord  = errors.New("invalid intake record")
)

// Record is one client intake sheet ("ficha cosmetológica"): identity fields
// plus the free-form clinical history answers (cardiac, allergies, skin
// biotype and so on) kept as a key/value map.
type Record struct {
	ID         uuid.UUID
	FirstName  string
	LastName   string
	NationalID string
	BirthDate  string // dd/mm/yyyy as entered on the sheet
	Address    string
	Email      string
	Phone      string
	History    map[string]string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FullName renders the sheet heading, surname first.
func (r Record) FullName() string {
	return r.LastName + ", " + r.FirstName
}

func (r Record) Validate() error {
	if strings.TrimSpace(r.FirstName) == "" || strings.TrimSpace(r.LastName) == "" {
		return fmt.Errorf("%w: first and last name are required", ErrInvalidRecord)
	}
	if strings.TrimSpace(r.NationalID) == "" {
		return fmt.Errorf("%w: national id is required", ErrInvalidRecord)
	}
	return nil
}
