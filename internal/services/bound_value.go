package services

// BoundValue is the picker's externally visible value. It distinguishes an untouched
// value from an explicit empty string.
type BoundValue struct {
	value     string
	present   bool
	onChange  func(string)
	onTouched func()
}

func (bound *BoundValue) Get() (string, bool) {
	return bound.value, bound.present
}

// Set stores value and notifies the registered change and touched callbacks.
func (bound *BoundValue) Set(value string) {
	bound.value = value
	bound.present = true
	if bound.onChange != nil {
		bound.onChange(value)
	}
	if bound.onTouched != nil {
		bound.onTouched()
	}
}

// Assign stores an external write without notifying. nil marks the value absent.
func (bound *BoundValue) Assign(value *string) {
	if value == nil {
		bound.value = ""
		bound.present = false
		return
	}
	bound.value = *value
	bound.present = true
}

func (bound *BoundValue) RegisterOnChange(fn func(string)) {
	bound.onChange = fn
}

func (bound *BoundValue) RegisterOnTouched(fn func()) {
	bound.onTouched = fn
}
