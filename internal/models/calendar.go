package models

import "time"

type GridSide string

const (
	GridPrimary   GridSide = "primary"
	GridSecondary GridSide = "secondary"
)

type Direction string

const (
	DirectionPrevious Direction = "previous"
	DirectionNext     Direction = "next"
)

// Day is a single cell of a month grid. Month is zero-based (January = 0).
type Day struct {
	Date         time.Time `json:"date"`
	Day          int       `json:"day"`
	Month        int       `json:"month"`
	Year         int       `json:"year"`
	IsSameMonth  bool      `json:"is_same_month"`
	IsToday      bool      `json:"is_today"`
	IsSelectable bool      `json:"is_selectable"`
	IsVisible    bool      `json:"is_visible"`
	IsIncluded   bool      `json:"is_included"`
	IsActive     bool      `json:"is_active"`
}

type Calendar struct {
	Month    int      `json:"month"`
	Year     int      `json:"year"`
	Title    string   `json:"title"`
	Days     []Day    `json:"days"`
	DayNames []string `json:"day_names"`
}

// Clone returns a copy whose slices do not alias the receiver.
func (calendar Calendar) Clone() Calendar {
	days := make([]Day, len(calendar.Days))
	copy(days, calendar.Days)
	names := make([]string, len(calendar.DayNames))
	copy(names, calendar.DayNames)
	calendar.Days = days
	calendar.DayNames = names
	return calendar
}

type ControlsStatus struct {
	PreviousEnabled bool `json:"previous_enabled"`
	NextEnabled     bool `json:"next_enabled"`
}
