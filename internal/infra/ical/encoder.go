package ical

import (
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/config"
	"stayhub/internal/usecase/queries"

	ics "github.com/arran4/golang-ical"
)

type Encoder struct {
	productID string
	clock     clock.Clock
}

func NewEncoder(cfg config.CalendarConfig, clk clock.Clock) *Encoder {
	return &Encoder{productID: cfg.ProductID, clock: clk}
}

// Encode renders one VEVENT per document event as an all-day range.
// Event start/end must already be truncated to UTC days.
func (e *Encoder) Encode(doc queries.CalendarDocument) (string, error) {
	cal := ics.NewCalendar()
	cal.SetProductId(e.productID)
	cal.SetMethod(ics.MethodPublish)
	cal.SetCalscale("GREGORIAN")
	if doc.Name != "" {
		cal.SetName(doc.Name)
		cal.SetXWRCalName(doc.Name)
	}

	stamp := e.clock.Now()
	for _, ev := range doc.Events {
		vevent := cal.AddEvent(ev.UID)
		vevent.SetDtStampTime(stamp)
		vevent.SetAllDayStartAt(ev.Start.UTC())
		vevent.SetAllDayEndAt(ev.End.UTC())
		vevent.SetSummary(ev.Summary)
		if ev.Description != "" {
			vevent.SetDescription(ev.Description)
		}
		if !ev.UpdatedAt.IsZero() {
			vevent.SetLastModifiedAt(ev.UpdatedAt)
		}
		vevent.SetStatus(ics.ObjectStatusConfirmed)
		vevent.SetTimeTransparency(ics.TransparencyOpaque)
	}

	return cal.Serialize(), nil
}
