package ui

// FocusManager tracks which input of a form has focus and rotates it in tab
// order. An empty Current means nothing is focused.
type FocusManager struct {
	Current  string   // ID of the focused input
	Order    []string // Tab order for focus rotation
	OnChange func(from, to string)
}

func (f *FocusManager) index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}

// Next moves focus to the next input in order, wrapping around. With nothing
// focused it picks the first one. Returns the new current focus ID.
func (f *FocusManager) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	f.set(f.Order[(f.index()+1)%len(f.Order)])
	return f.Current
}

// Prev moves focus to the previous input in order, wrapping around.
func (f *FocusManager) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	i := f.index() - 1
	if i < 0 {
		i = len(f.Order) - 1
	}
	f.set(f.Order[i])
	return f.Current
}

// SetFocus sets focus to the given input ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			f.set(id)
			return true
		}
	}
	return false
}

// Blur drops focus.
func (f *FocusManager) Blur() { f.set("") }

// Focused reports whether any input has focus.
func (f *FocusManager) Focused() bool { return f.Current != "" }
