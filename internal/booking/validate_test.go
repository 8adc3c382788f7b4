package booking

import (
	"errors"
	"testing"
	"time"
)

func TestClientInfoValidate(t *testing.T) {
	now := time.Date(2025, time.June, 5, 12, 0, 0, 0, time.UTC)

	valid := ClientInfo{
		FullName:   "María García",
		NationalID: "30123456",
		BirthDate:  "01/05/1990",
		Email:      "maria@example.com",
		Phone:      "1145678901",
	}

	if err := valid.Validate(now); err != nil {
		t.Fatalf("valid info rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*ClientInfo)
	}{
		{"single word name", func(ci *ClientInfo) { ci.FullName = "María" }},
		{"blank name", func(ci *ClientInfo) { ci.FullName = "   " }},
		{"short national id", func(ci *ClientInfo) { ci.NationalID = "3012345" }},
		{"long national id", func(ci *ClientInfo) { ci.NationalID = "301234567" }},
		{"letters in national id", func(ci *ClientInfo) { ci.NationalID = "3012345a" }},
		{"birth date wrong format", func(ci *ClientInfo) { ci.BirthDate = "1990-05-01" }},
		{"impossible birth date", func(ci *ClientInfo) { ci.BirthDate = "31/02/1990" }},
		{"future birth date", func(ci *ClientInfo) { ci.BirthDate = "01/05/2030" }},
		{"email without at", func(ci *ClientInfo) { ci.Email = "maria.example.com" }},
		{"email without domain dot", func(ci *ClientInfo) { ci.Email = "maria@example" }},
		{"short phone", func(ci *ClientInfo) { ci.Phone = "1145678" }},
		{"letters in phone", func(ci *ClientInfo) { ci.Phone = "11456789ab" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ci := valid
			tt.mutate(&ci)
			err := ci.Validate(now)
			if !errors.Is(err, ErrInvalidClientInfo) {
				t.Errorf("err = %v, want ErrInvalidClientInfo", err)
			}
		})
	}
}
