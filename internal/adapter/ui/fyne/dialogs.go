package fyne

import (
	"log/slog"
	"sync"

	fyneapp "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/tejashwikalptaru/helpabout/internal/domain"
	"github.com/tejashwikalptaru/helpabout/internal/ports"
)

// DialogService implements ports.DialogService with Fyne custom dialogs.
//
// Every dialog is modal over the parent window. Its Pending resolves once,
// when the dialog hides, with the button that closed it.
type DialogService struct {
	logger   *slog.Logger
	renderer *Renderer
	bus      ports.EventBus

	mu     sync.Mutex
	parent fyneapp.Window
	open   []*openDialog
}

type openDialog struct {
	dialog  *dialog.CustomDialog
	buttons []*widget.Button
}

// NewDialogService creates a dialog service. SetParent must be called before
// the first dialog is shown. bus may be nil.
func NewDialogService(logger *slog.Logger, renderer *Renderer, bus ports.EventBus) *DialogService {
	return &DialogService{
		logger:   logger,
		renderer: renderer,
		bus:      bus,
	}
}

// SetParent sets the window dialogs are shown over.
func (s *DialogService) SetParent(window fyneapp.Window) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parent = window
}

// CreateButton builds a dialog button from options.
func (s *DialogService) CreateButton(opts domain.ButtonOptions) domain.Button {
	return domain.NewButton(opts)
}

// defaultButtons are used when a dialog asks for none, so it can always be closed.
func defaultButtons() []domain.Button {
	return []domain.Button{
		domain.NewButton(domain.ButtonOptions{Label: "Cancel", ClassName: "jp-mod-reject"}),
		domain.NewButton(domain.ButtonOptions{Label: "OK", ClassName: "jp-mod-accept"}),
	}
}

// ShowDialog presents opts and returns without waiting for the user.
// Must be called on the UI thread.
func (s *DialogService) ShowDialog(opts domain.DialogOptions) domain.Pending {
	s.mu.Lock()
	parent := s.parent
	s.mu.Unlock()

	if parent == nil {
		s.logger.Error("dialog requested without a parent window")
		return domain.Rejected(domain.ErrNoParentWindow)
	}

	buttons := opts.Buttons
	if len(buttons) == 0 {
		buttons = defaultButtons()
	}

	content := container.NewVBox(
		s.renderer.Render(opts.Title),
		widget.NewSeparator(),
		s.renderer.Render(opts.Body),
	)
	d := dialog.NewCustomWithoutButtons("", content, parent)
	od := &openDialog{dialog: d}

	var pressed domain.Button
	for _, b := range buttons {
		btn := widget.NewButton(b.Label, func() {
			pressed = b
			d.Hide()
		})
		if b.Accept {
			btn.Importance = widget.HighImportance
		}
		od.buttons = append(od.buttons, btn)
	}
	objects := make([]fyneapp.CanvasObject, len(od.buttons))
	for i, btn := range od.buttons {
		objects[i] = btn
	}
	d.SetButtons(objects)

	result := make(chan domain.Result, 1)
	var once sync.Once
	d.SetOnClosed(func() {
		once.Do(func() {
			s.forget(od)
			dr := domain.DialogResult{Button: pressed}
			result <- domain.Result{Value: dr}
			close(result)

			s.logger.Debug("dialog closed", slog.String("button", pressed.Label))
			s.publish(domain.NewDialogClosedEvent(dr))
		})
	})

	s.mu.Lock()
	s.open = append(s.open, od)
	s.mu.Unlock()

	d.Show()
	s.logger.Debug("dialog shown", slog.Int("buttons", len(buttons)))
	s.publish(domain.NewDialogShownEvent(len(buttons)))

	return result
}

func (s *DialogService) forget(od *openDialog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, candidate := range s.open {
		if candidate == od {
			s.open = append(s.open[:i:i], s.open[i+1:]...)
			return
		}
	}
}

// OpenCount returns the number of dialogs currently showing.
func (s *DialogService) OpenCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.open)
}

// CloseAll hides every open dialog; their results carry no button.
// Must be called on the UI thread.
func (s *DialogService) CloseAll() {
	s.mu.Lock()
	open := make([]*openDialog, len(s.open))
	copy(open, s.open)
	s.mu.Unlock()

	for _, od := range open {
		od.dialog.Hide()
	}
}

func (s *DialogService) publish(event domain.Event) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}

var _ ports.DialogService = (*DialogService)(nil)
