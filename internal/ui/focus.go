package ui

// FocusManager tracks and rotates focus across named fields.
// An empty Current means nothing is focused.
type FocusManager struct {
	Current  string   // ID of the focused field
	Order    []string // Tab order
	OnChange func(from, to string)
}

func (f *FocusManager) indexOf(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}

func (f *FocusManager) move(to string) string {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
	return to
}

// Next advances focus in tab order, wrapping. From no focus it picks the first field.
func (f *FocusManager) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	return f.move(f.Order[(f.indexOf(f.Current)+1)%len(f.Order)])
}

// Prev moves focus back in tab order, wrapping. From no focus it picks the last field.
func (f *FocusManager) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	i := f.indexOf(f.Current) - 1
	if i < 0 {
		i = len(f.Order) - 1
	}
	return f.move(f.Order[i])
}

// SetFocus focuses id. Returns false if id is not in Order.
func (f *FocusManager) SetFocus(id string) bool {
	if f.indexOf(id) < 0 {
		return false
	}
	f.move(id)
	return true
}

// Blur clears focus.
func (f *FocusManager) Blur() {
	f.move("")
}

// Focused reports whether id has focus.
func (f *FocusManager) Focused(id string) bool {
	return id != "" && f.Current == id
}
