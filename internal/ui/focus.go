package ui

// FocusRing tracks and rotates keyboard focus across a fixed set of controls.
// Used by modals to move focus between their actions.
type FocusRing struct {
	Current string   // ID of the currently focused control
	Order   []string // Tab order for focus rotation
}

// NewFocusRing creates a ring focused on the first control.
func NewFocusRing(order ...string) *FocusRing {
	r := &FocusRing{Order: order}
	if len(order) > 0 {
		r.Current = order[0]
	}
	return r
}

// Next advances focus to the next control in order.
// Returns the new current focus ID.
func (f *FocusRing) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.index()
	f.Current = f.Order[(idx+1)%len(f.Order)]
	return f.Current
}

// Prev advances focus to the previous control in order.
func (f *FocusRing) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.index() - 1
	if idx < 0 {
		idx = len(f.Order) - 1
	}
	f.Current = f.Order[idx]
	return f.Current
}

// Set moves focus to the given control ID.
// Returns true if the ID exists in order.
func (f *FocusRing) Set(id string) bool {
	for _, o := range f.Order {
		if o == id {
			f.Current = id
			return true
		}
	}
	return false
}

func (f *FocusRing) index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}
