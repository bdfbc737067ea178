package models

import (
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestMergeCalendarOptionsFillsDefaults(t *testing.T) {
	merged := MergeCalendarOptions(CalendarOptions{})

	if merged.Separator != DefaultSeparator || merged.Format != DefaultDateFormat {
		t.Fatalf("unexpected separator/format defaults: %+v", merged)
	}
	if merged.FormatTitle != DefaultTitleFormat || merged.FormatDays != DefaultDayNameFormat {
		t.Fatalf("unexpected title/day defaults: %+v", merged)
	}
	if merged.FirstDay() != 0 || merged.ShouldCloseOnSelected() {
		t.Fatalf("unexpected first day/close defaults: %+v", merged)
	}
	if merged.MinYear != nil || merged.MaxYear != nil {
		t.Fatalf("expected unbounded years, got %v/%v", merged.MinYear, merged.MaxYear)
	}
	if merged.Locale != language.English {
		t.Fatalf("expected english locale, got %v", merged.Locale)
	}
}

func TestMergeCalendarOptionsKeepsExplicitZeroValues(t *testing.T) {
	merged := MergeCalendarOptions(CalendarOptions{
		Separator:        " to ",
		FirstCalendarDay: Int(0),
		MinYear:          Int(0),
		CloseOnSelected:  Bool(false),
		Locale:           language.Russian,
	})

	if merged.Separator != " to " {
		t.Fatalf("expected custom separator, got %q", merged.Separator)
	}
	if merged.MinYear == nil || *merged.MinYear != 0 {
		t.Fatalf("expected explicit zero min year, got %v", merged.MinYear)
	}
	if merged.CloseOnSelected == nil || *merged.CloseOnSelected {
		t.Fatalf("expected explicit false close flag, got %v", merged.CloseOnSelected)
	}
	if merged.Locale != language.Russian {
		t.Fatalf("expected russian locale, got %v", merged.Locale)
	}
}

func TestMergeCalendarOptionsRejectsOutOfRangeFirstDay(t *testing.T) {
	if merged := MergeCalendarOptions(CalendarOptions{FirstCalendarDay: Int(9)}); merged.FirstDay() != DefaultFirstCalendarDay {
		t.Fatalf("expected fallback first day, got %d", merged.FirstDay())
	}
	if merged := MergeCalendarOptions(CalendarOptions{FirstCalendarDay: Int(6)}); merged.FirstDay() != 6 {
		t.Fatalf("expected first day 6, got %d", merged.FirstDay())
	}
}

func TestSelectionOrdered(t *testing.T) {
	march10 := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	march5 := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	if _, _, ok := (Selection{From: &march10}).Ordered(); ok {
		t.Fatal("expected incomplete selection to report not ok")
	}

	earlier, later, ok := Selection{From: &march10, To: &march5}.Ordered()
	if !ok || !earlier.Equal(march5) || !later.Equal(march10) {
		t.Fatalf("expected reordered endpoints, got %s..%s", earlier, later)
	}
}

func TestPickerProfileOptionsParsesLocale(t *testing.T) {
	profile := PickerProfile{Name: "x", Locale: "ru", FirstCalendarDay: Int(1)}
	options := profile.Options()
	if options.Locale != language.Russian || options.FirstDay() != 1 {
		t.Fatalf("unexpected options: %+v", options)
	}

	if broken := (PickerProfile{Locale: "???"}).Options(); broken.Locale != language.Und {
		t.Fatalf("expected undetermined locale for invalid tag, got %v", broken.Locale)
	}
}
