package models

import "golang.org/x/text/language"

const (
	DefaultSeparator        = ","
	DefaultDateFormat       = "yyyy-MM-dd"
	DefaultTitleFormat      = "MMMM yyyy"
	DefaultDayNameFormat    = "eeeeee"
	DefaultFirstCalendarDay = 0
)

// CalendarOptions configures a picker. Pointer fields are unset when nil so that an
// explicit zero or false survives MergeCalendarOptions.
type CalendarOptions struct {
	Separator        string
	Format           string
	FormatTitle      string
	FormatDays       string
	FirstCalendarDay *int
	MinYear          *int
	MaxYear          *int
	CloseOnSelected  *bool
	Locale           language.Tag
}

func DefaultCalendarOptions() CalendarOptions {
	return CalendarOptions{
		Separator:        DefaultSeparator,
		Format:           DefaultDateFormat,
		FormatTitle:      DefaultTitleFormat,
		FormatDays:       DefaultDayNameFormat,
		FirstCalendarDay: Int(DefaultFirstCalendarDay),
		CloseOnSelected:  Bool(false),
		Locale:           language.English,
	}
}

// MergeCalendarOptions fills every unset field of options with its default.
func MergeCalendarOptions(options CalendarOptions) CalendarOptions {
	merged := DefaultCalendarOptions()
	if options.Separator != "" {
		merged.Separator = options.Separator
	}
	if options.Format != "" {
		merged.Format = options.Format
	}
	if options.FormatTitle != "" {
		merged.FormatTitle = options.FormatTitle
	}
	if options.FormatDays != "" {
		merged.FormatDays = options.FormatDays
	}
	if options.FirstCalendarDay != nil && *options.FirstCalendarDay >= 0 && *options.FirstCalendarDay <= 6 {
		merged.FirstCalendarDay = Int(*options.FirstCalendarDay)
	}
	if options.MinYear != nil {
		merged.MinYear = Int(*options.MinYear)
	}
	if options.MaxYear != nil {
		merged.MaxYear = Int(*options.MaxYear)
	}
	if options.CloseOnSelected != nil {
		merged.CloseOnSelected = Bool(*options.CloseOnSelected)
	}
	if options.Locale != language.Und {
		merged.Locale = options.Locale
	}
	return merged
}

func (options CalendarOptions) FirstDay() int {
	if options.FirstCalendarDay == nil {
		return DefaultFirstCalendarDay
	}
	return *options.FirstCalendarDay
}

func (options CalendarOptions) ShouldCloseOnSelected() bool {
	return options.CloseOnSelected != nil && *options.CloseOnSelected
}

func Int(value int) *int {
	return &value
}

func Bool(value bool) *bool {
	return &value
}
