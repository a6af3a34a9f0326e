package gui

// ButtonState is the draw state of a menu entry.
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonSelected
)

// Button is one menu entry. Geometry lives in the renderer; the button
// carries only its label and draw state.
type Button struct {
	label string
	state ButtonState
}

func (b Button) Label() string      { return b.label }
func (b Button) State() ButtonState { return b.state }

// Group is a vertical run of buttons with wrap-around selection.
// Exactly one entry is selected at all times.
type Group struct {
	buttons  []Button
	selected int
}

// NewGroup creates a group with the first entry selected.
func NewGroup(labels ...string) *Group {
	g := &Group{buttons: make([]Button, len(labels))}
	for i, label := range labels {
		g.buttons[i] = Button{label: label, state: ButtonNormal}
	}
	if len(g.buttons) > 0 {
		g.buttons[0].state = ButtonSelected
	}
	return g
}

// SelectionUp moves the selection one entry up, wrapping to the bottom.
func (g *Group) SelectionUp() {
	g.moveSelection(-1)
}

// SelectionDown moves the selection one entry down, wrapping to the top.
func (g *Group) SelectionDown() {
	g.moveSelection(1)
}

func (g *Group) moveSelection(step int) {
	if len(g.buttons) == 0 {
		return
	}
	g.buttons[g.selected].state = ButtonNormal
	g.selected = (g.selected + step + len(g.buttons)) % len(g.buttons)
	g.buttons[g.selected].state = ButtonSelected
}

// ResetSelection returns the selection to the first entry, so the menu
// opens fresh on its next visit.
func (g *Group) ResetSelection() {
	if len(g.buttons) == 0 {
		return
	}
	g.buttons[g.selected].state = ButtonNormal
	g.selected = 0
	g.buttons[0].state = ButtonSelected
}

// SelectionIndex returns the selected entry's index.
func (g *Group) SelectionIndex() int {
	return g.selected
}

// SetLabel rewrites one entry. Settings menus use it to show live
// values.
func (g *Group) SetLabel(i int, label string) {
	if i < 0 || i >= len(g.buttons) {
		return
	}
	g.buttons[i].label = label
}

// Buttons returns the entries for drawing, valid until the next change.
func (g *Group) Buttons() []Button {
	return g.buttons
}
