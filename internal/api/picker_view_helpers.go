package api

import "github.com/terraincognita07/rangepicker/internal/models"

type pickerView struct {
	State    string                `json:"state"`
	Profile  string                `json:"profile,omitempty"`
	Language string                `json:"language"`
	Value    string                `json:"value"`
	HasValue bool                  `json:"has_value"`
	From     string                `json:"from,omitempty"`
	To       string                `json:"to,omitempty"`
	Opened   bool                  `json:"opened"`
	Moved    *bool                 `json:"moved,omitempty"`
	Controls models.ControlsStatus `json:"controls"`
	Current  models.Calendar       `json:"current"`
	Next     models.Calendar       `json:"next"`
	Events   []pickerEvent         `json:"events"`
}

func (handler *Handler) buildPickerView(session *pickerSession) (pickerView, error) {
	state := session.snapshot()
	token, err := handler.states.encode(state)
	if err != nil {
		return pickerView{}, err
	}

	controller := session.controller
	value, hasValue := controller.Value()
	view := pickerView{
		State:    token,
		Profile:  state.Profile,
		Language: handler.i18n.NormalizeLanguage(state.Language),
		Value:    value,
		HasValue: hasValue,
		Opened:   controller.IsOpened(),
		Controls: controller.ControlsStatus(),
		Current:  controller.Current(),
		Next:     controller.Next(),
		Events:   session.events,
	}
	if from := state.Selection.From; from != nil {
		view.From = controller.FormatDate(*from)
	}
	if to := state.Selection.To; to != nil {
		view.To = controller.FormatDate(*to)
	}
	return view, nil
}
