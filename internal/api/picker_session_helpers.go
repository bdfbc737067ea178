package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/rangepicker/internal/services"
	"golang.org/x/text/language"
)

var errInvalidPickerMonth = errors.New("invalid month")

const (
	pickerEventValue = "value"
	pickerEventFrom  = "from"
	pickerEventTo    = "to"
	pickerEventClose = "close"
)

type pickerEvent struct {
	Type  string `json:"type"`
	Value string `json:"value,omitempty"`
}

// pickerSession is a controller rebuilt for a single request.
type pickerSession struct {
	state      pickerState
	controller *services.RangeSelectionController
	events     []pickerEvent
}

func (handler *Handler) newPickerSession(c *fiber.Ctx, profile string, month string) (*pickerSession, error) {
	reference, err := handler.parsePickerMonth(month)
	if err != nil {
		return nil, err
	}
	state := pickerState{
		Profile:   strings.TrimSpace(profile),
		Language:  currentLanguage(c),
		Reference: reference,
		Opened:    true,
	}
	if state.Profile != "" {
		name, err := services.NormalizeProfileName(state.Profile)
		if err != nil {
			return nil, err
		}
		state.Profile = name
	}
	return handler.restorePickerSession(state)
}

func (handler *Handler) loadPickerSession(c *fiber.Ctx, rawState string) (*pickerSession, error) {
	state, err := handler.states.decode(rawState)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(c.Query(languageQueryKey)) != "" {
		state.Language = currentLanguage(c)
	}
	return handler.restorePickerSession(state)
}

func (handler *Handler) restorePickerSession(state pickerState) (*pickerSession, error) {
	options, err := handler.profiles.ResolveOptions(state.Profile)
	if err != nil {
		return nil, err
	}
	if options.Locale == language.Und {
		options.Locale = handler.i18n.Tag(state.Language)
	}

	session := &pickerSession{state: state, events: []pickerEvent{}}
	controller := services.NewRangeSelectionController(handler.grids, nil, options, state.Reference)
	controller.Restore(state.Reference, state.Selection, state.Value, state.Opened)
	controller.SetListeners(services.RangeListeners{
		OnValue:        session.record(pickerEventValue),
		OnFrom:         session.record(pickerEventFrom),
		OnTo:           session.record(pickerEventTo),
		OnCloseRequest: func() { session.events = append(session.events, pickerEvent{Type: pickerEventClose}) },
	})
	session.controller = controller
	return session, nil
}

func (session *pickerSession) record(eventType string) func(string) {
	return func(value string) {
		session.events = append(session.events, pickerEvent{Type: eventType, Value: value})
	}
}

// snapshot copies the controller state back so it can be re-encoded.
func (session *pickerSession) snapshot() pickerState {
	state := session.state
	state.Reference = session.controller.ReferenceDate()
	state.Selection = session.controller.Selection()
	state.Opened = session.controller.IsOpened()
	state.Value = nil
	if value, ok := session.controller.Value(); ok {
		state.Value = &value
	}
	return state
}

func (handler *Handler) parsePickerMonth(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return services.DateAtLocation(handler.now(), handler.location), nil
	}
	parsed, err := time.Parse(pickerMonthLayout, raw)
	if err != nil {
		return time.Time{}, errInvalidPickerMonth
	}
	return parsed, nil
}

func pickerErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, errInvalidPickerState):
		return fiber.StatusBadRequest, errInvalidPickerState.Error()
	case errors.Is(err, errInvalidPickerMonth):
		return fiber.StatusBadRequest, errInvalidPickerMonth.Error()
	case errors.Is(err, services.ErrIncompleteRange):
		return fiber.StatusBadRequest, services.ErrIncompleteRange.Error()
	default:
		return profileErrorStatus(err), profileErrorMessage(err)
	}
}

func pickerError(c *fiber.Ctx, err error) error {
	status, message := pickerErrorStatus(err)
	return apiError(c, status, message)
}
