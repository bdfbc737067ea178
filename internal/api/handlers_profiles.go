package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/rangepicker/internal/models"
	"github.com/terraincognita07/rangepicker/internal/services"
)

type profilePayload struct {
	Separator        string `json:"separator"`
	Format           string `json:"format"`
	FormatTitle      string `json:"format_title"`
	FormatDays       string `json:"format_days"`
	FirstCalendarDay *int   `json:"first_calendar_day"`
	MinYear          *int   `json:"min_year"`
	MaxYear          *int   `json:"max_year"`
	CloseOnSelected  *bool  `json:"close_on_selected"`
	Locale           string `json:"locale"`
}

type profileView struct {
	Name             string    `json:"name"`
	Separator        string    `json:"separator,omitempty"`
	Format           string    `json:"format,omitempty"`
	FormatTitle      string    `json:"format_title,omitempty"`
	FormatDays       string    `json:"format_days,omitempty"`
	FirstCalendarDay *int      `json:"first_calendar_day,omitempty"`
	MinYear          *int      `json:"min_year,omitempty"`
	MaxYear          *int      `json:"max_year,omitempty"`
	CloseOnSelected  *bool     `json:"close_on_selected,omitempty"`
	Locale           string    `json:"locale,omitempty"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (handler *Handler) ListProfiles(c *fiber.Ctx) error {
	profiles, err := handler.profiles.ListProfiles()
	if err != nil {
		return apiError(c, profileErrorStatus(err), profileErrorMessage(err))
	}

	views := make([]profileView, 0, len(profiles))
	for _, profile := range profiles {
		views = append(views, newProfileView(profile))
	}
	return c.JSON(views)
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	profile, err := handler.profiles.GetProfile(c.Params("name"))
	if err != nil {
		return apiError(c, profileErrorStatus(err), profileErrorMessage(err))
	}
	return c.JSON(newProfileView(profile))
}

// PutProfile creates or replaces the named profile.
func (handler *Handler) PutProfile(c *fiber.Ctx) error {
	payload := profilePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	profile, err := handler.profiles.SaveProfile(services.ProfileInput{
		Name:             c.Params("name"),
		Separator:        payload.Separator,
		Format:           payload.Format,
		FormatTitle:      payload.FormatTitle,
		FormatDays:       payload.FormatDays,
		FirstCalendarDay: payload.FirstCalendarDay,
		MinYear:          payload.MinYear,
		MaxYear:          payload.MaxYear,
		CloseOnSelected:  payload.CloseOnSelected,
		Locale:           payload.Locale,
	})
	if err != nil {
		return apiError(c, profileErrorStatus(err), profileErrorMessage(err))
	}
	return c.JSON(newProfileView(profile))
}

func (handler *Handler) DeleteProfile(c *fiber.Ctx) error {
	if err := handler.profiles.DeleteProfile(c.Params("name")); err != nil {
		return apiError(c, profileErrorStatus(err), profileErrorMessage(err))
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func newProfileView(profile models.PickerProfile) profileView {
	return profileView{
		Name:             profile.Name,
		Separator:        profile.Separator,
		Format:           profile.Format,
		FormatTitle:      profile.FormatTitle,
		FormatDays:       profile.FormatDays,
		FirstCalendarDay: profile.FirstCalendarDay,
		MinYear:          profile.MinYear,
		MaxYear:          profile.MaxYear,
		CloseOnSelected:  profile.CloseOnSelected,
		Locale:           profile.Locale,
		UpdatedAt:        profile.UpdatedAt,
	}
}
