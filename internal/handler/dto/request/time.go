package request

import (
	"encoding/json"
	"strings"
	"time"

	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/patch"
)

const dateLayout = "2006-01-02"

var ErrInvalidDate = errs.Mark(errs.New("dates must be RFC3339 or YYYY-MM-DD"), errs.ErrInvalidInput)

// FlexibleTime decodes either an RFC3339 instant or a bare date taken as
// UTC midnight.
type FlexibleTime struct {
	time.Time
}

func (t *FlexibleTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return ErrInvalidDate
	}
	parsed, err := ParseFlexibleTime(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t FlexibleTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.UTC().Format(time.RFC3339))
}

func ParseFlexibleTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.ParseInLocation(dateLayout, s, time.UTC); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}

func timeField(f patch.Field[FlexibleTime]) patch.Field[time.Time] {
	switch {
	case !f.IsPresent():
		return patch.Absent[time.Time]()
	case f.IsNull():
		return patch.Null[time.Time]()
	default:
		v, _ := f.Get()
		return patch.Value(v.Time)
	}
}
