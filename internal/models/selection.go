package models

import "time"

// Selection holds the picked endpoints in click order. To is never set without From.
type Selection struct {
	From *time.Time
	To   *time.Time
}

func (selection Selection) IsEmpty() bool {
	return selection.From == nil && selection.To == nil
}

func (selection Selection) IsComplete() bool {
	return selection.From != nil && selection.To != nil
}

// Ordered returns the endpoints in chronological order. ok is false unless both are set.
func (selection Selection) Ordered() (earlier time.Time, later time.Time, ok bool) {
	if !selection.IsComplete() {
		return time.Time{}, time.Time{}, false
	}
	if selection.From.After(*selection.To) {
		return *selection.To, *selection.From, true
	}
	return *selection.From, *selection.To, true
}
