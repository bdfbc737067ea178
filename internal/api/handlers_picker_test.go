package api

import (
	"io"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestPickerSelectFlowEmitsOrderedRange(t *testing.T) {
	app := newPickerTestApp(t)

	initial := readPickerView(t, doRequest(t, app, http.MethodGet, "/api/picker?month=2024-03", ""))
	if initial.Current.Month != 2 || initial.Next.Month != 3 || initial.Current.Year != 2024 {
		t.Fatalf("unexpected grids: current=%d/%d next=%d/%d", initial.Current.Month, initial.Current.Year, initial.Next.Month, initial.Next.Year)
	}
	if initial.HasValue || !initial.Opened {
		t.Fatalf("expected an opened picker without value, got %+v", initial)
	}

	first := selectDay(t, app, initial.State, "primary", marchIndex(20))
	if first.Value != "2024-03-20" || first.From != "2024-03-20" || first.To != "" {
		t.Fatalf("unexpected first selection: value=%q from=%q to=%q", first.Value, first.From, first.To)
	}
	if got := eventTypes(first.Events); !reflect.DeepEqual(got, []string{pickerEventValue, pickerEventFrom}) {
		t.Fatalf("unexpected first events: %v", got)
	}

	second := selectDay(t, app, first.State, "primary", marchIndex(10))
	if second.Value != "2024-03-10,2024-03-20" {
		t.Fatalf("expected ordered value, got %q", second.Value)
	}
	if second.From != "2024-03-20" || second.To != "2024-03-10" {
		t.Fatalf("expected selection order kept, got from=%q to=%q", second.From, second.To)
	}
	if got := eventTypes(second.Events); !reflect.DeepEqual(got, []string{pickerEventValue, pickerEventTo}) {
		t.Fatalf("unexpected second events: %v", got)
	}
	if !second.Opened {
		t.Fatal("expected picker to stay open without close_on_selected")
	}

	included := second.Current.Days[marchIndex(15)-1]
	if !included.IsIncluded || included.IsActive {
		t.Fatalf("expected March 15 included and not active, got %+v", included)
	}
	endpoint := second.Current.Days[marchIndex(10)-1]
	if !endpoint.IsActive || endpoint.IsIncluded {
		t.Fatalf("expected March 10 active and not included, got %+v", endpoint)
	}
}

func TestPickerClosesOnSelectedWhenProfileAsks(t *testing.T) {
	app := newPickerTestApp(t)

	response := doRequest(t, app, http.MethodPut, "/api/profiles/closing", `{"close_on_selected": true, "separator": " - "}`)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("expected profile save to succeed, got %d", response.StatusCode)
	}

	initial := readPickerView(t, doRequest(t, app, http.MethodGet, "/api/picker?profile=closing&month=2024-03", ""))
	first := selectDay(t, app, initial.State, "primary", marchIndex(4))
	if !first.Opened {
		t.Fatal("expected picker to stay open after the first click")
	}

	second := selectDay(t, app, first.State, "primary", marchIndex(9))
	if second.Value != "2024-03-04 - 2024-03-09" {
		t.Fatalf("unexpected value %q", second.Value)
	}
	if got := eventTypes(second.Events); !reflect.DeepEqual(got, []string{pickerEventValue, pickerEventTo, pickerEventClose}) {
		t.Fatalf("unexpected events: %v", got)
	}
	if second.Opened {
		t.Fatal("expected picker to close after completing the range")
	}

	restarted := selectDay(t, app, second.State, "primary", marchIndex(11))
	if restarted.Value != "2024-03-11" || restarted.To != "" {
		t.Fatalf("expected a third click to restart the range, got value=%q to=%q", restarted.Value, restarted.To)
	}
}

func TestPickerSelectIgnoresPaddingAndOutOfRangeIndexes(t *testing.T) {
	app := newPickerTestApp(t)
	initial := readPickerView(t, doRequest(t, app, http.MethodGet, "/api/picker?month=2024-03", ""))

	for _, index := range []int{0, 1, 99} {
		view := selectDay(t, app, initial.State, "primary", index)
		if view.HasValue || len(view.Events) != 0 {
			t.Fatalf("index %d: expected no selection, got value=%q events=%v", index, view.Value, view.Events)
		}
	}

	view := selectDay(t, app, initial.State, "sideways", marchIndex(3))
	if view.HasValue || len(view.Events) != 0 {
		t.Fatalf("unknown side: expected no selection, got %+v", view.Events)
	}
}

func TestPickerSelectAcrossGrids(t *testing.T) {
	app := newPickerTestApp(t)
	initial := readPickerView(t, doRequest(t, app, http.MethodGet, "/api/picker?month=2024-03", ""))

	first := selectDay(t, app, initial.State, "primary", marchIndex(28))
	// April 2024 starts on a Monday: one leading day.
	second := selectDay(t, app, first.State, "secondary", 1+5)
	if second.Value != "2024-03-28,2024-04-05" {
		t.Fatalf("unexpected cross-month value %q", second.Value)
	}
	if !second.Next.Days[1+2-1].IsIncluded {
		t.Fatal("expected April 2 to be included in the secondary grid")
	}
}

func TestPickerWriteValue(t *testing.T) {
	app := newPickerTestApp(t)
	initial := readPickerView(t, doRequest(t, app, http.MethodGet, "/api/picker?month=2024-03", ""))

	written := readPickerView(t, doRequest(t, app, http.MethodPost, "/api/picker/value", jsonBody(t, map[string]any{
		"state": initial.State,
		"value": "2024-03-20,2024-04-02",
	})))
	if written.Value != "2024-03-20,2024-04-02" || written.From != "2024-03-20" || written.To != "2024-04-02" {
		t.Fatalf("unexpected written state: value=%q from=%q to=%q", written.Value, written.From, written.To)
	}

	unchanged := readPickerView(t, doRequest(t, app, http.MethodPost, "/api/picker/value", jsonBody(t, map[string]any{
		"state": written.State,
		"value": nil,
	})))
	if unchanged.Value != written.Value || len(unchanged.Events) != 0 {
		t.Fatalf("expected null value to be ignored, got value=%q events=%v", unchanged.Value, unchanged.Events)
	}

	cleared := readPickerView(t, doRequest(t, app, http.MethodPost, "/api/picker/value", jsonBody(t, map[string]any{
		"state": unchanged.State,
		"value": "",
	})))
	if !cleared.HasValue || cleared.Value != "" || cleared.From != "" || cleared.To != "" {
		t.Fatalf("expected cleared selection with empty value, got %+v", cleared)
	}
	if got := eventTypes(cleared.Events); !reflect.DeepEqual(got, []string{pickerEventValue}) {
		t.Fatalf("expected a single value event, got %v", got)
	}
}

func TestPickerInitialValueQuery(t *testing.T) {
	app := newPickerTestApp(t)

	view := readPickerView(t, doRequest(t, app, http.MethodGet, "/api/picker?month=2024-03&value=2024-03-02,2024-03-04", ""))
	if view.From != "2024-03-02" || view.To != "2024-03-04" {
		t.Fatalf("expected initial value to be applied, got from=%q to=%q", view.From, view.To)
	}
	if !view.Current.Days[marchIndex(3)-1].IsIncluded {
		t.Fatal("expected March 3 to be included")
	}
}

func TestPickerNavigateHonorsYearBounds(t *testing.T) {
	app := newPickerTestApp(t)

	response := doRequest(t, app, http.MethodPut, "/api/profiles/bounded", `{"max_year": 2024, "min_year": 2024}`)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("expected profile save to succeed, got %d", response.StatusCode)
	}

	initial := readPickerView(t, doRequest(t, app, http.MethodGet, "/api/picker?profile=bounded&month=2024-11", ""))
	if !initial.Controls.NextEnabled {
		t.Fatal("expected next to be enabled in November")
	}

	moved := readPickerView(t, doRequest(t, app, http.MethodPost, "/api/picker/navigate", jsonBody(t, map[string]any{
		"state":     initial.State,
		"direction": "next",
	})))
	if moved.Moved == nil || !*moved.Moved || moved.Current.Month != 11 {
		t.Fatalf("expected move to December, got moved=%v month=%d", moved.Moved, moved.Current.Month)
	}
	if moved.Controls.NextEnabled {
		t.Fatal("expected next to be disabled in December of the max year")
	}

	refused := readPickerView(t, doRequest(t, app, http.MethodPost, "/api/picker/navigate", jsonBody(t, map[string]any{
		"state":     moved.State,
		"direction": "next",
	})))
	if refused.Moved == nil || *refused.Moved || refused.Current.Month != 11 || refused.Current.Year != 2024 {
		t.Fatalf("expected navigation to be refused, got moved=%v %d/%d", refused.Moved, refused.Current.Month, refused.Current.Year)
	}

	january := readPickerView(t, doRequest(t, app, http.MethodGet, "/api/picker?profile=bounded&month=2024-01", ""))
	if january.Controls.PreviousEnabled {
		t.Fatal("expected previous to be disabled in January of the min year")
	}
}

func TestPickerNavigateRejectsUnknownDirection(t *testing.T) {
	app := newPickerTestApp(t)
	initial := readPickerView(t, doRequest(t, app, http.MethodGet, "/api/picker?month=2024-03", ""))

	response := doRequest(t, app, http.MethodPost, "/api/picker/navigate", jsonBody(t, map[string]any{
		"state":     initial.State,
		"direction": "sideways",
	}))
	if response.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
	if got := readAPIError(t, response.Body); got != "invalid direction" {
		t.Fatalf("unexpected error %q", got)
	}
}

func TestPickerRejectsInvalidInputs(t *testing.T) {
	app := newPickerTestApp(t)
	initial := readPickerView(t, doRequest(t, app, http.MethodGet, "/api/picker?month=2024-03", ""))

	tests := []struct {
		name    string
		method  string
		path    string
		body    string
		status  int
		message string
	}{
		{name: "tampered state", method: http.MethodPost, path: "/api/picker/select", body: jsonBody(t, map[string]any{"state": initial.State + "x", "side": "primary", "index": 7}), status: fiber.StatusBadRequest, message: "invalid picker state"},
		{name: "missing state", method: http.MethodPost, path: "/api/picker/value", body: `{"value": ""}`, status: fiber.StatusBadRequest, message: "invalid picker state"},
		{name: "invalid month", method: http.MethodGet, path: "/api/picker?month=2024-13", status: fiber.StatusBadRequest, message: "invalid month"},
		{name: "unknown profile", method: http.MethodGet, path: "/api/picker?profile=missing", status: fiber.StatusNotFound, message: "profile not found"},
		{name: "invalid profile name", method: http.MethodGet, path: "/api/picker?profile=bad%20name", status: fiber.StatusBadRequest, message: "invalid profile name"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			response := doRequest(t, app, test.method, test.path, test.body)
			if response.StatusCode != test.status {
				t.Fatalf("expected status %d, got %d", test.status, response.StatusCode)
			}
			if got := readAPIError(t, response.Body); got != test.message {
				t.Fatalf("expected error %q, got %q", test.message, got)
			}
		})
	}
}

func TestPickerOpenAndClose(t *testing.T) {
	app := newPickerTestApp(t)
	initial := readPickerView(t, doRequest(t, app, http.MethodGet, "/api/picker?month=2024-03", ""))

	closed := readPickerView(t, doRequest(t, app, http.MethodPost, "/api/picker/close", jsonBody(t, map[string]any{"state": initial.State})))
	if closed.Opened {
		t.Fatal("expected picker to be closed")
	}
	opened := readPickerView(t, doRequest(t, app, http.MethodPost, "/api/picker/open", jsonBody(t, map[string]any{"state": closed.State})))
	if !opened.Opened {
		t.Fatal("expected picker to be opened")
	}
}

func TestPickerUsesRequestLanguage(t *testing.T) {
	app := newPickerTestApp(t)

	view := readPickerView(t, doRequest(t, app, http.MethodGet, "/api/picker?month=2024-03&lang=de", ""))
	if view.Current.Title != "März 2024" {
		t.Fatalf("expected German title, got %q", view.Current.Title)
	}
	if view.Language != "de" {
		t.Fatalf("expected language de, got %q", view.Language)
	}

	next := selectDay(t, app, view.State, "primary", marchIndex(1))
	if next.Current.Title != "März 2024" {
		t.Fatalf("expected language to persist in state, got %q", next.Current.Title)
	}
}

func TestPickerProfileLocaleWinsOverRequestLanguage(t *testing.T) {
	app := newPickerTestApp(t)

	response := doRequest(t, app, http.MethodPut, "/api/profiles/russian", `{"locale": "ru", "first_calendar_day": 1}`)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("expected profile save to succeed, got %d", response.StatusCode)
	}

	view := readPickerView(t, doRequest(t, app, http.MethodGet, "/api/picker?profile=russian&month=2024-03&lang=de", ""))
	if !strings.HasPrefix(view.Current.Title, "Март") {
		t.Fatalf("expected Russian title, got %q", view.Current.Title)
	}
	// Monday-first grid: March 1 2024 is a Friday, four leading days.
	if view.Current.Days[4].Day != 1 || view.Current.Days[4].IsSelectable != true {
		t.Fatalf("expected March 1 at position 5, got %+v", view.Current.Days[4])
	}
}

func TestPickerExportICS(t *testing.T) {
	app := newPickerTestApp(t)
	initial := readPickerView(t, doRequest(t, app, http.MethodGet, "/api/picker?month=2024-03", ""))
	first := selectDay(t, app, initial.State, "primary", marchIndex(12))

	incomplete := doRequest(t, app, http.MethodGet, "/api/picker/ics?state="+first.State, "")
	if incomplete.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected status 400 for incomplete range, got %d", incomplete.StatusCode)
	}

	second := selectDay(t, app, first.State, "primary", marchIndex(8))
	response := doRequest(t, app, http.MethodGet, "/api/picker/ics?state="+second.State, "")
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	if contentType := response.Header.Get("Content-Type"); !strings.HasPrefix(contentType, "text/calendar") {
		t.Fatalf("unexpected content type %q", contentType)
	}

	payload, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read ics body: %v", err)
	}
	body := string(payload)
	for _, fragment := range []string{"BEGIN:VEVENT", "20240308", "20240313", "SUMMARY:Selected range 2024-03-08"} {
		if !strings.Contains(body, fragment) {
			t.Fatalf("expected %q in ics payload:\n%s", fragment, body)
		}
	}
}

func TestHealthAndNotFound(t *testing.T) {
	app := newPickerTestApp(t)

	health := doRequest(t, app, http.MethodGet, "/healthz", "")
	if health.StatusCode != fiber.StatusOK {
		t.Fatalf("expected health 200, got %d", health.StatusCode)
	}

	missing := doRequest(t, app, http.MethodGet, "/api/unknown", "")
	if missing.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", missing.StatusCode)
	}
	if got := readAPIError(t, missing.Body); got != "not found" {
		t.Fatalf("unexpected error %q", got)
	}
}
