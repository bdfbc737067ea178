package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/terraincognita07/rangepicker/internal/models"
	"golang.org/x/text/language"
)

var (
	ErrInvalidProfileName      = errors.New("invalid profile name")
	ErrInvalidFirstCalendarDay = errors.New("first calendar day must be between 0 and 6")
	ErrInvalidYearBounds       = errors.New("min year must not exceed max year")
	ErrInvalidProfileLocale    = errors.New("invalid profile locale")
	ErrProfileNotFound         = errors.New("profile not found")
	ErrProfileLoadFailed       = errors.New("load profile failed")
	ErrProfileSaveFailed       = errors.New("save profile failed")
	ErrProfileDeleteFailed     = errors.New("delete profile failed")
)

var profileNamePattern = regexp.MustCompile(`^[a-z0-9_-]{1,64}$`)

type ProfileRepository interface {
	List() ([]models.PickerProfile, error)
	FindByName(name string) (models.PickerProfile, bool, error)
	Save(profile *models.PickerProfile) error
	DeleteByName(name string) (bool, error)
}

type ProfileInput struct {
	Name             string
	Separator        string
	Format           string
	FormatTitle      string
	FormatDays       string
	FirstCalendarDay *int
	MinYear          *int
	MaxYear          *int
	CloseOnSelected  *bool
	Locale           string
}

type ProfileService struct {
	profiles ProfileRepository
}

func NewProfileService(profiles ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

func NormalizeProfileName(raw string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if !profileNamePattern.MatchString(name) {
		return "", ErrInvalidProfileName
	}
	return name, nil
}

func (service *ProfileService) ListProfiles() ([]models.PickerProfile, error) {
	profiles, err := service.profiles.List()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileLoadFailed, err)
	}
	return profiles, nil
}

func (service *ProfileService) GetProfile(rawName string) (models.PickerProfile, error) {
	name, err := NormalizeProfileName(rawName)
	if err != nil {
		return models.PickerProfile{}, err
	}
	profile, found, err := service.profiles.FindByName(name)
	if err != nil {
		return models.PickerProfile{}, fmt.Errorf("%w: %v", ErrProfileLoadFailed, err)
	}
	if !found {
		return models.PickerProfile{}, ErrProfileNotFound
	}
	return profile, nil
}

// ResolveOptions returns the options stored under name, not yet merged with defaults so
// callers can tell which fields the profile left unset. An empty name yields no options.
func (service *ProfileService) ResolveOptions(rawName string) (models.CalendarOptions, error) {
	if strings.TrimSpace(rawName) == "" {
		return models.CalendarOptions{}, nil
	}
	profile, err := service.GetProfile(rawName)
	if err != nil {
		return models.CalendarOptions{}, err
	}
	return profile.Options(), nil
}

func (service *ProfileService) SaveProfile(input ProfileInput) (models.PickerProfile, error) {
	name, err := NormalizeProfileName(input.Name)
	if err != nil {
		return models.PickerProfile{}, err
	}
	if err := ValidateProfileInput(input); err != nil {
		return models.PickerProfile{}, err
	}

	profile, found, err := service.profiles.FindByName(name)
	if err != nil {
		return models.PickerProfile{}, fmt.Errorf("%w: %v", ErrProfileLoadFailed, err)
	}
	if !found {
		profile = models.PickerProfile{Name: name}
	}

	profile.Separator = input.Separator
	profile.Format = strings.TrimSpace(input.Format)
	profile.FormatTitle = strings.TrimSpace(input.FormatTitle)
	profile.FormatDays = strings.TrimSpace(input.FormatDays)
	profile.FirstCalendarDay = input.FirstCalendarDay
	profile.MinYear = input.MinYear
	profile.MaxYear = input.MaxYear
	profile.CloseOnSelected = input.CloseOnSelected
	profile.Locale = strings.TrimSpace(input.Locale)

	if err := service.profiles.Save(&profile); err != nil {
		return models.PickerProfile{}, fmt.Errorf("%w: %v", ErrProfileSaveFailed, err)
	}
	return profile, nil
}

func (service *ProfileService) DeleteProfile(rawName string) error {
	name, err := NormalizeProfileName(rawName)
	if err != nil {
		return err
	}
	deleted, err := service.profiles.DeleteByName(name)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProfileDeleteFailed, err)
	}
	if !deleted {
		return ErrProfileNotFound
	}
	return nil
}

func ValidateProfileInput(input ProfileInput) error {
	if input.FirstCalendarDay != nil && (*input.FirstCalendarDay < 0 || *input.FirstCalendarDay > 6) {
		return ErrInvalidFirstCalendarDay
	}
	if input.MinYear != nil && input.MaxYear != nil && *input.MinYear > *input.MaxYear {
		return ErrInvalidYearBounds
	}
	if locale := strings.TrimSpace(input.Locale); locale != "" {
		if _, err := language.Parse(locale); err != nil {
			return ErrInvalidProfileLocale
		}
	}
	return nil
}
