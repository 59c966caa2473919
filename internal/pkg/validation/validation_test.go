//go:build unit

package validation_test

import (
	"testing"

	"stayhub/internal/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Type string `validate:"omitempty,booking_type"`
	URL  string `validate:"omitempty,calendar_url"`
}

func TestRegister(t *testing.T) {
	v := validator.New()
	require.NoError(t, validation.Register(v))

	tests := []struct {
		name    string
		in      sample
		wantErr bool
	}{
		{name: "reservation type", in: sample{Type: "RESERVATION"}},
		{name: "lower case type", in: sample{Type: "blocked"}},
		{name: "unknown type", in: sample{Type: "HOLD"}, wantErr: true},
		{name: "https feed", in: sample{URL: "https://www.airbnb.com/calendar/ical/1.ics"}},
		{name: "webcal feed", in: sample{URL: "webcal://example.com/cal.ics"}},
		{name: "ftp feed", in: sample{URL: "ftp://example.com/cal.ics"}, wantErr: true},
		{name: "relative url", in: sample{URL: "/cal.ics"}, wantErr: true},
		{name: "empty is skipped", in: sample{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
