package api

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/rangepicker/internal/models"
	"github.com/terraincognita07/rangepicker/internal/services"
)

type pickerStateInput struct {
	State string `json:"state" form:"state"`
}

type pickerSelectInput struct {
	State string `json:"state" form:"state"`
	Side  string `json:"side" form:"side"`
	Index int    `json:"index" form:"index"`
}

type pickerNavigateInput struct {
	State     string `json:"state" form:"state"`
	Direction string `json:"direction" form:"direction"`
}

type pickerValueInput struct {
	State string  `json:"state" form:"state"`
	Value *string `json:"value" form:"value"`
}

// GetPicker starts a session from profile/month/value query parameters, or resumes the
// one carried by the state query parameter.
func (handler *Handler) GetPicker(c *fiber.Ctx) error {
	var (
		session *pickerSession
		err     error
	)
	if rawState := c.Query("state"); strings.TrimSpace(rawState) != "" {
		session, err = handler.loadPickerSession(c, rawState)
	} else {
		session, err = handler.newPickerSession(c, c.Query("profile"), c.Query("month"))
		if err == nil && c.Query("value") != "" {
			value := c.Query("value")
			session.controller.WriteValue(&value)
		}
	}
	if err != nil {
		return pickerError(c, err)
	}
	return handler.respondPicker(c, session)
}

func (handler *Handler) SelectDay(c *fiber.Ctx) error {
	input := pickerSelectInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	session, err := handler.loadPickerSession(c, input.State)
	if err != nil {
		return pickerError(c, err)
	}
	session.controller.SelectDay(models.GridSide(strings.TrimSpace(input.Side)), input.Index)
	return handler.respondPicker(c, session)
}

func (handler *Handler) Navigate(c *fiber.Ctx) error {
	input := pickerNavigateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	direction := models.Direction(strings.ToLower(strings.TrimSpace(input.Direction)))
	if direction != models.DirectionPrevious && direction != models.DirectionNext {
		return apiError(c, fiber.StatusBadRequest, "invalid direction")
	}

	session, err := handler.loadPickerSession(c, input.State)
	if err != nil {
		return pickerError(c, err)
	}
	moved := session.controller.Navigate(direction)

	view, err := handler.buildPickerView(session)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to encode picker state")
	}
	view.Moved = &moved
	return c.JSON(view)
}

func (handler *Handler) WriteValue(c *fiber.Ctx) error {
	input := pickerValueInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	session, err := handler.loadPickerSession(c, input.State)
	if err != nil {
		return pickerError(c, err)
	}
	session.controller.WriteValue(input.Value)
	return handler.respondPicker(c, session)
}

func (handler *Handler) OpenPicker(c *fiber.Ctx) error {
	return handler.togglePicker(c, true)
}

func (handler *Handler) ClosePicker(c *fiber.Ctx) error {
	return handler.togglePicker(c, false)
}

func (handler *Handler) togglePicker(c *fiber.Ctx, opened bool) error {
	input := pickerStateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	session, err := handler.loadPickerSession(c, input.State)
	if err != nil {
		return pickerError(c, err)
	}
	if opened {
		session.controller.Open()
	} else {
		session.controller.Close()
	}
	return handler.respondPicker(c, session)
}

// ExportICS serves the completed range as an all-day iCalendar event.
func (handler *Handler) ExportICS(c *fiber.Ctx) error {
	session, err := handler.loadPickerSession(c, c.Query("state"))
	if err != nil {
		return pickerError(c, err)
	}

	summary := handler.i18n.Translate(session.state.Language, "picker.range")
	if value, ok := session.controller.Value(); ok && strings.TrimSpace(value) != "" {
		summary += " " + value
	}
	eventID := fmt.Sprintf("%s@rangepicker", session.state.ID)

	payload, err := services.BuildRangeICS(session.controller.Selection(), summary, eventID, handler.now())
	if err != nil {
		return pickerError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="range.ics"`)
	return c.SendString(payload)
}

func (handler *Handler) respondPicker(c *fiber.Ctx, session *pickerSession) error {
	view, err := handler.buildPickerView(session)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to encode picker state")
	}
	return c.JSON(view)
}
