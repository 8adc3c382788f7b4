package booking

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var ErrInvalidClientInfo = errors.New("invalid client info")

var (
	emailPattern  = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	digitsPattern = regexp.MustCompile(`^\d+$`)
)

// ClientInfo carries the intake fields of the booking form. Validation rules
// mirror the public form: full name with at least name and surname, national
// ID of exactly 8 digits, birth date dd/mm/yyyy not in the future, a
// plausible email and a digits-only phone of at least 8 digits.
type ClientInfo struct {
	FullName   string
	NationalID string
	BirthDate  string
	Email      string
	Phone      string
}

func (ci ClientInfo) Validate(now time.Time) error {
	if len(strings.Fields(strings.TrimSpace(ci.FullName))) < 2 {
		return fmt.Errorf("%w: full name must include name and surname", ErrInvalidClientInfo)
	}

	if len(ci.NationalID) != 8 || !digitsPattern.MatchString(ci.NationalID) {
		return fmt.Errorf("%w: national id must be exactly 8 digits", ErrInvalidClientInfo)
	}

	born, err := time.Parse("02/01/2006", ci.BirthDate)
	if err != nil {
		return fmt.Errorf("%w: birth date must be dd/mm/yyyy", ErrInvalidClientInfo)
	}
	if born.After(now) {
		return fmt.Errorf("%w: birth date cannot be in the future", ErrInvalidClientInfo)
	}

	if !emailPattern.MatchString(ci.Email) {
		return fmt.Errorf("%w: malformed email", ErrInvalidClientInfo)
	}

	if len(ci.Phone) < 8 || !digitsPattern.MatchString(ci.Phone) {
		return fmt.Errorf("%w: phone must be at least 8 digits", ErrInvalidClientInfo)
	}

	return nil
}
