package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/terraincognita07/rangepicker/internal/i18n"
	"github.com/terraincognita07/rangepicker/internal/models"
	"github.com/terraincognita07/rangepicker/internal/services"
	"golang.org/x/text/language"
)

var errInvalidMonth = errors.New("month must use YYYY-MM")

type ShowOptions struct {
	DBPath          string
	Profile         string
	Month           string
	Value           *string
	Language        string
	DefaultLanguage string
	Location        *time.Location
	Now             func() time.Time
	Highlight       bool
}

// RunShowCommand prints the two visible months of a picker, optionally pre-filled with a
// value, the way the picker would render them.
func RunShowCommand(out io.Writer, options ShowOptions) error {
	location := options.Location
	if location == nil {
		location = time.UTC
	}
	now := options.Now
	if now == nil {
		now = time.Now
	}

	manager, err := i18n.NewEmbeddedManager(options.DefaultLanguage)
	if err != nil {
		return fmt.Errorf("i18n init failed: %w", err)
	}
	lang := manager.NormalizeLanguage(options.Language)

	calendarOptions := models.CalendarOptions{}
	if strings.TrimSpace(options.Profile) != "" {
		profiles, closeDatabase, err := openProfileService(options.DBPath)
		if err != nil {
			return err
		}
		defer closeDatabase()

		calendarOptions, err = profiles.ResolveOptions(options.Profile)
		if err != nil {
			return fmt.Errorf("load profile %q: %w", options.Profile, err)
		}
	}
	if calendarOptions.Locale == language.Und {
		calendarOptions.Locale = manager.Tag(lang)
	}

	reference, err := parseMonth(options.Month, now(), location)
	if err != nil {
		return err
	}

	builder := services.NewCalendarGridBuilder(manager, now, location)
	controller := services.NewRangeSelectionController(builder, nil, calendarOptions, reference)
	controller.WriteValue(options.Value)

	for _, line := range joinColumns(renderCalendar(controller.Current(), options.Highlight), renderCalendar(controller.Next(), options.Highlight)) {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}

	summary := manager.Translate(lang, "picker.empty")
	if value, ok := controller.Value(); ok && value != "" {
		summary = fmt.Sprintf("%s: %s", manager.Translate(lang, "picker.value"), value)
	}
	_, err = fmt.Fprintf(out, "\n%s\n", summary)
	return err
}

func parseMonth(raw string, now time.Time, location *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return services.DateAtLocation(now, location), nil
	}
	parsed, err := time.Parse("2006-01", raw)
	if err != nil {
		return time.Time{}, errInvalidMonth
	}
	return parsed, nil
}
