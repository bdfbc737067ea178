package services

import (
	"errors"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/terraincognita07/rangepicker/internal/models"
)

var ErrIncompleteRange = errors.New("range is incomplete")

const rangeICSProductID = "-//terraincognita07//rangepicker//EN"

// BuildRangeICS renders a completed selection as a single all-day event. DTEND is
// exclusive, so it is the day after the later endpoint.
func BuildRangeICS(selection models.Selection, summary string, eventID string, now time.Time) (string, error) {
	earlier, later, ok := selection.Ordered()
	if !ok {
		return "", ErrIncompleteRange
	}

	calendar := ics.NewCalendar()
	calendar.SetMethod(ics.MethodPublish)
	calendar.SetProductId(rangeICSProductID)

	event := calendar.AddEvent(eventID)
	event.SetDtStampTime(now.UTC())
	event.SetAllDayStartAt(earlier)
	event.SetAllDayEndAt(later.AddDate(0, 0, 1))
	if summary != "" {
		event.SetSummary(summary)
	}

	return calendar.Serialize(), nil
}
