//go:build unit || e2e

package builder

import "time"

// BaseTime is the fixed "now" builders stamp entities with.
var BaseTime = time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)

// Day returns UTC midnight of a YYYY-MM-DD date and panics on bad input.
func Day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}
