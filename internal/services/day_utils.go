package services

import "time"

// CivilDate keeps the calendar date of value as written in its own zone and returns it
// as UTC midnight. Grid and selection dates are always civil dates.
func CivilDate(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateAtLocation returns the civil date an observer at location sees for the instant value.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	return CivilDate(value.In(location))
}

// MonthBounds returns the first and the last civil date of value's month.
func MonthBounds(value time.Time) (time.Time, time.Time) {
	year, month, _ := value.Date()
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1)
}

// AddMonths shifts value by whole months, clamping to the last day of the target month.
func AddMonths(value time.Time, months int) time.Time {
	year, month, day := value.Date()
	target := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	lastDay := target.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, time.UTC)
}

func SameDay(left time.Time, right time.Time) bool {
	leftYear, leftMonth, leftDay := left.Date()
	rightYear, rightMonth, rightDay := right.Date()
	return leftYear == rightYear && leftMonth == rightMonth && leftDay == rightDay
}
