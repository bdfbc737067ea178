package models

import (
	"time"

	"golang.org/x/text/language"
)

// PickerProfile is a named, persisted set of calendar options.
type PickerProfile struct {
	ID               uint   `gorm:"primaryKey"`
	Name             string `gorm:"uniqueIndex;not null"`
	Separator        string `gorm:"not null;default:''"`
	Format           string `gorm:"not null;default:''"`
	FormatTitle      string `gorm:"not null;default:''"`
	FormatDays       string `gorm:"not null;default:''"`
	FirstCalendarDay *int
	MinYear          *int
	MaxYear          *int
	CloseOnSelected  *bool
	Locale           string `gorm:"not null;default:''"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (profile PickerProfile) Options() CalendarOptions {
	options := CalendarOptions{
		Separator:        profile.Separator,
		Format:           profile.Format,
		FormatTitle:      profile.FormatTitle,
		FormatDays:       profile.FormatDays,
		FirstCalendarDay: profile.FirstCalendarDay,
		MinYear:          profile.MinYear,
		MaxYear:          profile.MaxYear,
		CloseOnSelected:  profile.CloseOnSelected,
	}
	if profile.Locale != "" {
		if tag, err := language.Parse(profile.Locale); err == nil {
			options.Locale = tag
		}
	}
	return options
}
