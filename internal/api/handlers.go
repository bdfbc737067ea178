package api

import (
	"errors"
	"time"

	"github.com/terraincognita07/rangepicker/internal/db"
	"github.com/terraincognita07/rangepicker/internal/i18n"
	"github.com/terraincognita07/rangepicker/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	location     *time.Location
	cookieSecure bool
	i18n         *i18n.Manager
	profiles     *services.ProfileService
	grids        *services.CalendarGridBuilder
	states       *pickerStateCodec
	now          func() time.Time
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, i18nManager *i18n.Manager, cookieSecure bool) (*Handler, error) {
	return newHandlerWithClock(database, secret, location, i18nManager, cookieSecure, time.Now)
}

func newHandlerWithClock(database *gorm.DB, secret string, location *time.Location, i18nManager *i18n.Manager, cookieSecure bool, now func() time.Time) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}
	if location == nil {
		location = time.Local
	}
	if now == nil {
		now = time.Now
	}

	states, err := newPickerStateCodec([]byte(secret), now)
	if err != nil {
		return nil, err
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		db:           database,
		location:     location,
		cookieSecure: cookieSecure,
		i18n:         i18nManager,
		profiles:     services.NewProfileService(repositories.Profiles),
		grids:        services.NewCalendarGridBuilder(i18nManager, now, location),
		states:       states,
		now:          now,
	}, nil
}
