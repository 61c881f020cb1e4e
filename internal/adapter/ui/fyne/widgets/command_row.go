// Package widgets holds the custom Fyne widgets of the shell.
package widgets

import (
	fyneapp "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

var _ fyneapp.DoubleTappable = (*CommandRow)(nil)

// CommandRow is a list row showing a command label. Double-tapping it runs the
// command through the activate callback.
type CommandRow struct {
	widget.Label
	activate func(command string)
	command  string
}

// NewCommandRow creates an empty row. activate may be nil.
func NewCommandRow(activate func(command string)) *CommandRow {
	row := &CommandRow{activate: activate}
	row.ExtendBaseWidget(row)
	return row
}

// Bind points the row at command and shows label.
func (r *CommandRow) Bind(command, label string) {
	r.command = command
	r.Label.SetText(label)
}

// Command returns the command id the row is bound to.
func (r *CommandRow) Command() string {
	return r.command
}

// DoubleTapped implements fyne.DoubleTappable.
func (r *CommandRow) DoubleTapped(_ *fyneapp.PointEvent) {
	if r.activate != nil && r.command != "" {
		r.activate(r.command)
	}
}
