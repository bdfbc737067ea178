package cli

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/terraincognita07/rangepicker/internal/models"
)

const (
	cellWidth     = 4
	calendarWidth = 7 * cellWidth
	columnGap     = "    "
	ansiReverse   = "\x1b[7m"
	ansiReset     = "\x1b[0m"
)

// renderCalendar draws one month. Every line is calendarWidth columns wide, not
// counting escape sequences.
func renderCalendar(calendar models.Calendar, highlight bool) []string {
	lines := []string{padRight(calendar.Title, calendarWidth)}

	var header strings.Builder
	for _, name := range calendar.DayNames {
		header.WriteString(" " + padRight(truncate(name, cellWidth-1), cellWidth-1))
	}
	lines = append(lines, header.String())

	var row strings.Builder
	for index, day := range calendar.Days {
		row.WriteString(renderDay(day, highlight))
		if index%7 == 6 {
			lines = append(lines, row.String())
			row.Reset()
		}
	}
	if row.Len() > 0 {
		lines = append(lines, row.String()+strings.Repeat(" ", calendarWidth-(len(calendar.Days)%7)*cellWidth))
	}
	return lines
}

// renderDay: [d] endpoint, (d) inside the range, blank for padding.
func renderDay(day models.Day, highlight bool) string {
	if !day.IsSelectable {
		return strings.Repeat(" ", cellWidth)
	}

	cell := fmt.Sprintf(" %2d ", day.Day)
	switch {
	case day.IsActive:
		cell = fmt.Sprintf("[%2d]", day.Day)
	case day.IsIncluded:
		cell = fmt.Sprintf("(%2d)", day.Day)
	}
	if highlight && day.IsToday {
		cell = ansiReverse + cell + ansiReset
	}
	return cell
}

func joinColumns(left []string, right []string) []string {
	count := len(left)
	if len(right) > count {
		count = len(right)
	}

	lines := make([]string, 0, count)
	for index := 0; index < count; index++ {
		leftLine := strings.Repeat(" ", calendarWidth)
		if index < len(left) {
			leftLine = left[index]
		}
		rightLine := ""
		if index < len(right) {
			rightLine = right[index]
		}
		lines = append(lines, strings.TrimRight(leftLine+columnGap+rightLine, " "))
	}
	return lines
}

func padRight(value string, width int) string {
	if count := utf8.RuneCountInString(value); count < width {
		return value + strings.Repeat(" ", width-count)
	}
	return value
}

func truncate(value string, width int) string {
	if utf8.RuneCountInString(value) <= width {
		return value
	}
	return string([]rune(value)[:width])
}
