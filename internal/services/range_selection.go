package services

import (
	"strings"
	"time"

	"github.com/terraincognita07/rangepicker/internal/models"
)

type RangeListeners struct {
	OnValue        func(string)
	OnFrom         func(string)
	OnTo           func(string)
	OnCloseRequest func()
}

// RangeSelectionController owns the from/to selection and the two visible month grids.
// It is not safe for concurrent use.
type RangeSelectionController struct {
	builder   *CalendarGridBuilder
	parser    DateParser
	options   models.CalendarOptions
	reference time.Time
	selection models.Selection
	current   models.Calendar
	next      models.Calendar
	value     BoundValue
	opened    bool
	listeners RangeListeners
}

func NewRangeSelectionController(builder *CalendarGridBuilder, parser DateParser, options models.CalendarOptions, reference time.Time) *RangeSelectionController {
	if parser == nil {
		parser = ISODateParser{}
	}
	controller := &RangeSelectionController{
		builder:   builder,
		parser:    parser,
		options:   models.MergeCalendarOptions(options),
		reference: CivilDate(reference),
	}
	controller.Rebuild()
	return controller
}

func (controller *RangeSelectionController) SetListeners(listeners RangeListeners) {
	controller.listeners = listeners
}

// Binding exposes the owned value so a form layer can register change callbacks.
func (controller *RangeSelectionController) Binding() *BoundValue {
	return &controller.value
}

func (controller *RangeSelectionController) SetOptions(options models.CalendarOptions) {
	controller.options = models.MergeCalendarOptions(options)
	controller.Rebuild()
}

func (controller *RangeSelectionController) Options() models.CalendarOptions {
	return controller.options
}

func (controller *RangeSelectionController) Rebuild() {
	controller.current = controller.builder.Build(controller.reference, controller.options, controller.isIncluded, controller.isActive)
	controller.next = controller.builder.Build(AddMonths(controller.reference, 1), controller.options, controller.isIncluded, controller.isActive)
}

// Restore rehydrates a controller from saved state without emitting notifications.
func (controller *RangeSelectionController) Restore(reference time.Time, selection models.Selection, value *string, opened bool) {
	if selection.From == nil {
		selection.To = nil
	}
	controller.reference = CivilDate(reference)
	controller.selection = selection
	controller.value.Assign(value)
	controller.opened = opened
	controller.Rebuild()
}

// Navigate moves the reference date one month in direction. It refuses to move past
// the configured year bounds and reports whether the grids changed.
func (controller *RangeSelectionController) Navigate(direction models.Direction) bool {
	status := controller.ControlsStatus()
	switch direction {
	case models.DirectionPrevious:
		if !status.PreviousEnabled {
			return false
		}
		controller.reference = AddMonths(controller.reference, -1)
	case models.DirectionNext:
		if !status.NextEnabled {
			return false
		}
		controller.reference = AddMonths(controller.reference, 1)
	default:
		return false
	}

	controller.Rebuild()
	controller.RefreshFlags()
	return true
}

// SelectDay applies a click on the index-th day (1-based) of the given grid. Index 0, an
// index outside the grid or a padding day only refreshes the flags.
func (controller *RangeSelectionController) SelectDay(side models.GridSide, index int) {
	if date, ok := controller.selectableDate(side, index); ok {
		controller.pick(date)
	}
	controller.RefreshFlags()
}

func (controller *RangeSelectionController) RefreshFlags() {
	refreshCalendarFlags(&controller.current, controller.isIncluded, controller.isActive)
	refreshCalendarFlags(&controller.next, controller.isIncluded, controller.isActive)
}

// WriteValue applies an external value. nil is ignored, "" clears the selection and
// anything else is split on the separator and each date is picked in the grid showing it,
// padding days included. Tokens that do not parse or are not visible in either grid are skipped.
func (controller *RangeSelectionController) WriteValue(raw *string) {
	if raw == nil {
		return
	}

	controller.selection = models.Selection{}
	if *raw == "" {
		controller.RefreshFlags()
		controller.emitValue("")
		return
	}

	tokens := strings.Split(*raw, controller.options.Separator)
	if len(tokens) > 2 {
		tokens = tokens[:2]
	}
	for _, token := range tokens {
		controller.applyToken(token)
	}

	controller.RefreshFlags()
	controller.value.Assign(raw)
}

func (controller *RangeSelectionController) ControlsStatus() models.ControlsStatus {
	status := models.ControlsStatus{PreviousEnabled: true, NextEnabled: true}
	year, month := controller.current.Year, controller.current.Month

	if minYear := controller.options.MinYear; minYear != nil {
		if year < *minYear || (year == *minYear && month == 0) {
			status.PreviousEnabled = false
		}
	}
	if maxYear := controller.options.MaxYear; maxYear != nil {
		if year > *maxYear || (year == *maxYear && month == 11) {
			status.NextEnabled = false
		}
	}
	return status
}

func (controller *RangeSelectionController) Current() models.Calendar {
	return controller.current.Clone()
}

func (controller *RangeSelectionController) Next() models.Calendar {
	return controller.next.Clone()
}

func (controller *RangeSelectionController) Selection() models.Selection {
	return controller.selection
}

func (controller *RangeSelectionController) Value() (string, bool) {
	return controller.value.Get()
}

func (controller *RangeSelectionController) ReferenceDate() time.Time {
	return controller.reference
}

func (controller *RangeSelectionController) IsOpened() bool {
	return controller.opened
}

func (controller *RangeSelectionController) Open() {
	controller.opened = true
}

func (controller *RangeSelectionController) Close() {
	controller.opened = false
}

// FormatDate renders value with the configured output pattern.
func (controller *RangeSelectionController) FormatDate(value time.Time) string {
	return controller.builder.format(value, controller.options.Format, controller.options.Locale)
}

func (controller *RangeSelectionController) pick(date time.Time) {
	switch {
	case controller.selection.From == nil, controller.selection.To != nil:
		controller.selection = models.Selection{From: &date}
		from := controller.FormatDate(date)
		controller.emitValue(from)
		if controller.listeners.OnFrom != nil {
			controller.listeners.OnFrom(from)
		}
	default:
		controller.selection.To = &date
		earlier, later, _ := controller.selection.Ordered()
		value := controller.FormatDate(earlier) + controller.options.Separator + controller.FormatDate(later)
		controller.emitValue(value)
		if controller.listeners.OnTo != nil {
			controller.listeners.OnTo(value)
		}
		if controller.options.ShouldCloseOnSelected() {
			controller.opened = false
			if controller.listeners.OnCloseRequest != nil {
				controller.listeners.OnCloseRequest()
			}
		}
	}
}

func (controller *RangeSelectionController) emitValue(value string) {
	controller.value.Set(value)
	if controller.listeners.OnValue != nil {
		controller.listeners.OnValue(value)
	}
}

// applyToken picks the grid day matching token by date alone, so padding days can be
// written even though clicks on them are refused. The current grid is tried first and the
// pick lands on whichever grid matched.
func (controller *RangeSelectionController) applyToken(token string) {
	date, err := controller.parser.ParseDate(token)
	if err != nil {
		return
	}
	for _, calendar := range []models.Calendar{controller.current, controller.next} {
		if day, ok := findDay(calendar, date); ok {
			controller.pick(day.Date)
			return
		}
	}
}

func (controller *RangeSelectionController) selectableDate(side models.GridSide, index int) (time.Time, bool) {
	var calendar *models.Calendar
	switch side {
	case models.GridPrimary:
		calendar = &controller.current
	case models.GridSecondary:
		calendar = &controller.next
	default:
		return time.Time{}, false
	}
	if index < 1 || index > len(calendar.Days) {
		return time.Time{}, false
	}
	day := calendar.Days[index-1]
	if !day.IsSelectable {
		return time.Time{}, false
	}
	return day.Date, true
}

// isIncluded is strict: the endpoints themselves are not included.
func (controller *RangeSelectionController) isIncluded(date time.Time) bool {
	earlier, later, ok := controller.selection.Ordered()
	if !ok {
		return false
	}
	return date.After(earlier) && date.Before(later)
}

func (controller *RangeSelectionController) isActive(day models.Day) bool {
	if from := controller.selection.From; from != nil && SameDay(*from, day.Date) {
		return true
	}
	if to := controller.selection.To; to != nil && SameDay(*to, day.Date) {
		return true
	}
	return false
}

func findDay(calendar models.Calendar, date time.Time) (models.Day, bool) {
	for _, day := range calendar.Days {
		if SameDay(day.Date, date) {
			return day, true
		}
	}
	return models.Day{}, false
}

func refreshCalendarFlags(calendar *models.Calendar, isIncluded func(time.Time) bool, isActive func(models.Day) bool) {
	for index := range calendar.Days {
		calendar.Days[index].IsIncluded = isIncluded(calendar.Days[index].Date)
		calendar.Days[index].IsActive = isActive(calendar.Days[index])
	}
}
