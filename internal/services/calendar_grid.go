package services

import (
	"sort"
	"time"

	"github.com/terraincognita07/rangepicker/internal/models"
	"golang.org/x/text/language"
)

type DateFormatter interface {
	FormatDate(value time.Time, pattern string, locale language.Tag) string
}

type CalendarGridBuilder struct {
	formatter DateFormatter
	now       func() time.Time
	location  *time.Location
}

func NewCalendarGridBuilder(formatter DateFormatter, now func() time.Time, location *time.Location) *CalendarGridBuilder {
	if now == nil {
		now = time.Now
	}
	if location == nil {
		location = time.UTC
	}
	return &CalendarGridBuilder{
		formatter: formatter,
		now:       now,
		location:  location,
	}
}

// Build lays out the month containing anchor's calendar date. Leading days from the
// previous month are prepended only when weekday(first of month) - firstCalendarDay is
// positive; the difference is not wrapped modulo 7.
func (builder *CalendarGridBuilder) Build(anchor time.Time, options models.CalendarOptions, isIncluded func(time.Time) bool, isActive func(models.Day) bool) models.Calendar {
	anchor = CivilDate(anchor)
	start, end := MonthBounds(anchor)
	today := DateAtLocation(builder.now(), builder.location)
	firstDay := options.FirstDay()

	days := make([]models.Day, 0, 42)
	leadCount := int(start.Weekday()) - firstDay
	for offset := leadCount; offset >= 1; offset-- {
		date := time.Date(start.Year(), start.Month(), 1-offset, 0, 0, 0, 0, time.UTC)
		days = append(days, newGridDay(date, false, false))
	}
	for day := 1; day <= end.Day(); day++ {
		date := time.Date(start.Year(), start.Month(), day, 0, 0, 0, 0, time.UTC)
		days = append(days, newGridDay(date, true, SameDay(date, today)))
	}

	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	for index := range days {
		if isIncluded != nil {
			days[index].IsIncluded = isIncluded(days[index].Date)
		}
		if isActive != nil {
			days[index].IsActive = isActive(days[index])
		}
	}

	return models.Calendar{
		Month:    int(anchor.Month()) - 1,
		Year:     anchor.Year(),
		Title:    builder.format(anchor, options.FormatTitle, options.Locale),
		Days:     days,
		DayNames: builder.dayNames(options),
	}
}

// dayNames labels the seven columns, starting at firstCalendarDay, using dates of the
// current week so the labels never depend on the grid's month.
func (builder *CalendarGridBuilder) dayNames(options models.CalendarOptions) []string {
	today := DateAtLocation(builder.now(), builder.location)
	sunday := today.Day() - int(today.Weekday())
	firstDay := options.FirstDay()

	names := make([]string, 0, 7)
	for weekday := firstDay; weekday <= firstDay+6; weekday++ {
		date := time.Date(today.Year(), today.Month(), sunday+weekday, 0, 0, 0, 0, time.UTC)
		names = append(names, builder.format(date, options.FormatDays, options.Locale))
	}
	return names
}

func (builder *CalendarGridBuilder) format(value time.Time, pattern string, locale language.Tag) string {
	if builder.formatter == nil {
		return value.Format("2006-01-02")
	}
	return builder.formatter.FormatDate(value, pattern, locale)
}

func newGridDay(date time.Time, sameMonth bool, isToday bool) models.Day {
	return models.Day{
		Date:         date,
		Day:          date.Day(),
		Month:        int(date.Month()) - 1,
		Year:         date.Year(),
		IsSameMonth:  sameMonth,
		IsToday:      isToday,
		IsSelectable: sameMonth,
		IsVisible:    true,
	}
}
