package fyne

import (
	"sync"

	fyneapp "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/tejashwikalptaru/helpabout/internal/domain"
	"github.com/tejashwikalptaru/helpabout/internal/ports"
	"github.com/tejashwikalptaru/helpabout/res"
)

// Window geometry.
const (
	WIDTH  = 560
	HEIGHT = 320
)

// MainWindow is the shell window implementing the ShellView interface.
//
// The MainWindow follows the MVP pattern:
// - It's a "dumb view" that shows the menu it is given
// - All command handling is in the Presenter
// - User interactions are forwarded to the Presenter
type MainWindow struct {
	app    fyneapp.App
	window fyneapp.Window
	trans  ports.TranslationBundle

	title         *widget.Label
	paletteButton *widget.Button

	paletteWindow *PaletteWindow

	closeOnce sync.Once

	// Presenter (set after construction)
	presenter *Presenter
}

// NewMainWindow creates the shell window titled appName.
func NewMainWindow(app fyneapp.App, appName string, trans ports.TranslationBundle) *MainWindow {
	w := &MainWindow{
		app:   app,
		trans: trans,
	}

	w.window = app.NewWindow(appName)
	w.buildUI(appName)

	w.window.Resize(fyneapp.NewSize(WIDTH, HEIGHT))
	w.app.SetIcon(res.ResourceJupyterSvg)

	return w
}

// SetPresenter connects the presenter to this view and builds the initial menu.
// This must be called before showing the window.
func (w *MainWindow) SetPresenter(presenter *Presenter) {
	w.presenter = presenter
	w.window.SetMainMenu(w.buildMenu(presenter.MenuSections()))
	w.wirePresenterHandlers()
	w.addShortcuts()
}

func (w *MainWindow) buildUI(appName string) {
	logo := canvas.NewImageFromResource(res.ResourceJupyterSvg)
	logo.FillMode = canvas.ImageFillContain
	logo.SetMinSize(fyneapp.NewSize(64, 64/res.JupyterAspect))

	w.title = widget.NewLabel(appName)
	w.title.Alignment = fyneapp.TextAlignCenter
	w.title.TextStyle = fyneapp.TextStyle{Bold: true}

	w.paletteButton = widget.NewButtonWithIcon(w.trans.Gettext("Open Command Palette"), theme.SearchIcon(), nil)

	w.window.SetContent(container.NewCenter(
		container.NewVBox(logo, w.title, w.paletteButton),
	))
}

func (w *MainWindow) wirePresenterHandlers() {
	if w.presenter == nil {
		return
	}

	w.paletteButton.OnTapped = w.openPalette
	if !w.presenter.HasCommand(domain.CommandPaletteOpen) {
		w.paletteButton.Hide()
	}
}

func (w *MainWindow) openPalette() {
	w.presenter.OnCommandSelected(domain.CommandPaletteOpen)
}

// buildMenu turns menu sections into the Fyne main menu.
func (w *MainWindow) buildMenu(sections []MenuSection) *fyneapp.MainMenu {
	menus := make([]*fyneapp.Menu, 0, len(sections))
	for _, section := range sections {
		items := make([]*fyneapp.MenuItem, 0, len(section.Items))
		for _, entry := range section.Items {
			command := entry.Command
			item := fyneapp.NewMenuItem(entry.Label, func() {
				w.presenter.OnCommandSelected(command)
			})
			item.IsQuit = command == domain.CommandQuit
			items = append(items, item)
		}
		menus = append(menus, fyneapp.NewMenu(section.Title, items...))
	}
	return fyneapp.NewMainMenu(menus...)
}

// addShortcuts adds keyboard shortcuts.
func (w *MainWindow) addShortcuts() {
	w.window.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyneapp.KeyC,
		Modifier: fyneapp.KeyModifierShortcutDefault | fyneapp.KeyModifierShift,
	}, func(fyneapp.Shortcut) {
		if w.presenter.HasCommand(domain.CommandPaletteOpen) {
			w.openPalette()
		}
	})
}

// ShowPalette opens the palette window, or focuses it when it is already open.
func (w *MainWindow) ShowPalette() {
	if w.paletteWindow != nil && w.paletteWindow.IsVisible() {
		w.paletteWindow.window.RequestFocus()
		return
	}

	w.paletteWindow = NewPaletteWindow(w.app, w.presenter, w.trans)
	w.paletteWindow.SetOnWindowClosed(func() {
		w.paletteWindow = nil
	})
	w.paletteWindow.Show()
}

// PaletteWindow returns the open palette window, or nil.
func (w *MainWindow) PaletteWindow() *PaletteWindow {
	return w.paletteWindow
}

// ShowAndRun shows the window and runs the application.
func (w *MainWindow) ShowAndRun() {
	w.window.ShowAndRun()
}

// Close closes the window.
// It's safe to call multiple times (idempotent).
func (w *MainWindow) Close() {
	w.closeOnce.Do(func() {
		if w.paletteWindow != nil {
			w.paletteWindow.Close()
		}
		w.window.Close()
	})
}

// GetWindow returns the underlying Fyne window.
func (w *MainWindow) GetWindow() fyneapp.Window {
	return w.window
}

// ShellView interface implementation

// SetMenu rebuilds the main menu on the UI thread.
func (w *MainWindow) SetMenu(sections []MenuSection) {
	fyneapp.Do(func() {
		w.window.SetMainMenu(w.buildMenu(sections))
	})
}

// ShowNotification displays a system notification.
func (w *MainWindow) ShowNotification(title, message string) {
	w.app.SendNotification(fyneapp.NewNotification(title, message))
}

// Verify ShellView implementation
var _ ShellView = (*MainWindow)(nil)
