package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

type DateParser interface {
	ParseDate(raw string) (time.Time, error)
}

var isoDateLayouts = []string{
	"2006-01-02",
	"20060102",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	time.RFC3339,
	time.RFC3339Nano,
}

// ISODateParser reads ISO-8601 calendar dates. Any time-of-day or offset is dropped and
// the wall-clock date is returned as a civil date.
type ISODateParser struct{}

func (parser ISODateParser) ParseDate(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}

	for _, layout := range isoDateLayouts {
		parsed, err := time.Parse(layout, trimmed)
		if err != nil {
			continue
		}
		return CivilDate(parsed), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, trimmed)
}
