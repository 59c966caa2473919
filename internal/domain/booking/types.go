package booking

import "strings"

type Type string

const (
	TypeReservation Type = "RESERVATION"
	TypeBlocked     Type = "BLOCKED"
	TypeMaintenance Type = "MAINTENANCE"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeReservation, TypeBlocked, TypeMaintenance:
		return true
	default:
		return false
	}
}

func ParseType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}
