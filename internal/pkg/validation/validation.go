// Package validation registers request binding rules shared by handlers.
package validation

import (
	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/calendar"

	"github.com/go-playground/validator/v10"
)

const (
	TagBookingType = "booking_type"
	TagCalendarURL = "calendar_url"
)

func Register(v *validator.Validate) error {
	if err := v.RegisterValidation(TagBookingType, validateBookingType); err != nil {
		return err
	}
	return v.RegisterValidation(TagCalendarURL, validateCalendarURL)
}

func validateBookingType(fl validator.FieldLevel) bool {
	_, err := booking.ParseType(fl.Field().String())
	return err == nil
}

func validateCalendarURL(fl validator.FieldLevel) bool {
	_, err := calendar.NormalizeFeedURL(fl.Field().String())
	return err == nil
}
