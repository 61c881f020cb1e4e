package fyne

import (
	"fmt"
	"strings"

	fyneapp "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	xwidget "fyne.io/x/fyne/widget"

	"github.com/tejashwikalptaru/helpabout/internal/adapter/ui/fyne/widgets"
	"github.com/tejashwikalptaru/helpabout/internal/ports"
)

// PaletteWindow is the searchable command list.
// Typing narrows the list and offers completions; Enter runs the best match and
// double-clicking a row runs that command.
type PaletteWindow struct {
	window fyneapp.Window
	search *xwidget.CompletionEntry
	list   *widget.List

	presenter *Presenter
	trans     ports.TranslationBundle

	data []MenuEntry

	onWindowClosed func()
	isVisible      bool
}

// NewPaletteWindow creates the palette window showing every palette command.
func NewPaletteWindow(app fyneapp.App, presenter *Presenter, trans ports.TranslationBundle) *PaletteWindow {
	w := &PaletteWindow{
		presenter: presenter,
		trans:     trans,
	}

	w.window = app.NewWindow(trans.Gettext("Command Palette"))
	w.window.Resize(fyneapp.NewSize(420, 360))

	w.buildUI()

	w.window.SetOnClosed(func() {
		w.isVisible = false
		if w.onWindowClosed != nil {
			w.onWindowClosed()
		}
	})

	w.filter("")
	return w
}

func (w *PaletteWindow) buildUI() {
	w.search = xwidget.NewCompletionEntry(nil)
	w.search.SetPlaceHolder(w.trans.Gettext("Search commands"))
	w.search.OnChanged = w.filter
	w.search.OnSubmitted = w.submit

	w.list = widget.NewList(
		func() int {
			return len(w.data)
		},
		func() fyneapp.CanvasObject {
			return widgets.NewCommandRow(w.run)
		},
		func(i widget.ListItemID, obj fyneapp.CanvasObject) {
			row, ok := obj.(*widgets.CommandRow)
			if !ok || i < 0 || i >= len(w.data) {
				return
			}
			row.Bind(w.data[i].Command, w.data[i].Label)
		},
	)

	w.window.SetContent(container.NewBorder(w.search, nil, nil, nil, w.list))
	w.window.Canvas().Focus(w.search)
}

// filter narrows the list to commands matching query.
func (w *PaletteWindow) filter(query string) {
	w.data = w.presenter.Search(query)

	labels := make([]string, len(w.data))
	for i, entry := range w.data {
		labels[i] = entry.Label
	}
	w.search.SetOptions(labels)
	if strings.TrimSpace(query) != "" && len(labels) > 0 {
		w.search.ShowCompletion()
	} else {
		w.search.HideCompletion()
	}

	w.updateWindowTitle()
	w.list.Refresh()
}

// submit runs the entry whose label equals text, or the first match.
func (w *PaletteWindow) submit(text string) {
	if len(w.data) == 0 {
		return
	}
	chosen := w.data[0]
	for _, entry := range w.data {
		if strings.EqualFold(entry.Label, strings.TrimSpace(text)) {
			chosen = entry
			break
		}
	}
	w.run(chosen.Command)
}

// run closes the palette and hands the command to the presenter.
func (w *PaletteWindow) run(command string) {
	w.search.HideCompletion()
	w.Close()
	w.presenter.OnCommandSelected(command)
}

func (w *PaletteWindow) updateWindowTitle() {
	w.window.SetTitle(fmt.Sprintf("%s (%s)",
		w.trans.Gettext("Command Palette"),
		w.trans.Gettext("%1 commands", len(w.data))))
}

// Entries returns the commands currently listed.
func (w *PaletteWindow) Entries() []MenuEntry {
	return w.data
}

// Show displays the palette window.
func (w *PaletteWindow) Show() {
	w.isVisible = true
	w.window.Show()
}

// Close closes the palette window.
func (w *PaletteWindow) Close() {
	w.isVisible = false
	w.window.Close()
}

// IsVisible returns whether the window is currently visible.
func (w *PaletteWindow) IsVisible() bool {
	return w.isVisible
}

// SetOnWindowClosed sets a callback invoked when the window is closed.
// This allows the MainWindow to clear its reference.
func (w *PaletteWindow) SetOnWindowClosed(callback func()) {
	w.onWindowClosed = callback
}
