// Package domain contains the core types of the help-about shell.
// These types have no dependencies on UI frameworks or host adapters.
package domain

import "strings"

// CommandAbout is the public identifier of the About command.
// Other plugins and keybindings invoke the dialog through this id.
const CommandAbout = "help:about"

// Commands owned by the shell itself.
const (
	CommandPaletteOpen = "palette:open"
	CommandQuit        = "application:quit"
)

// Icon names understood by the icon providers.
const (
	IconJupyter            = "jupyter"
	IconJupyterlabWordmark = "jupyterlab-wordmark"
)

// Link is an external link shown in a dialog body.
type Link struct {
	Label string
	URL   string
}

// ButtonOptions describes a dialog button before the dialog service turns it into a Button.
type ButtonOptions struct {
	Label     string
	ClassName string
}

// Button is a dialog action.
// Accept is false for dismiss/cancel style buttons.
type Button struct {
	Label     string
	ClassName string
	Accept    bool
}

// NewButton builds a Button from options. A button is an accept button only
// when its class list carries jp-mod-accept.
func NewButton(opts ButtonOptions) Button {
	accept := false
	for _, class := range strings.Fields(opts.ClassName) {
		if class == "jp-mod-accept" {
			accept = true
			break
		}
	}
	return Button{
		Label:     opts.Label,
		ClassName: opts.ClassName,
		Accept:    accept,
	}
}

// DialogOptions is everything a dialog service needs to present a modal dialog.
type DialogOptions struct {
	Title   Node
	Body    Node
	Buttons []Button
}

// DialogResult is delivered once a dialog closes.
// Button is the zero value when the dialog was closed without pressing a button.
type DialogResult struct {
	Button Button
}

// AboutDialogContent is the read-only content of the About dialog.
// A fresh value is built on every invocation of the About command.
type AboutDialogContent struct {
	VersionLabel   string
	Header         Node
	Links          []Link
	Body           Node
	CopyrightLabel string
	DismissLabel   string
}

// PaletteItem is an entry in the command palette.
type PaletteItem struct {
	Command  string
	Category string
	Rank     int
}

// PluginDescriptor describes a plugin to the shell that activates it.
type PluginDescriptor struct {
	ID        string
	AutoStart bool
	Requires  []string
	Optional  []string
}
