package ports

import (
	"github.com/tejashwikalptaru/helpabout/internal/domain"
)

// DialogService presents modal dialogs.
// The service owns the dialog lifecycle; callers only see the pending result.
//
// Thread-safety: Methods must be called from the UI thread.
type DialogService interface {
	// CreateButton turns button options into a dialog button.
	CreateButton(opts domain.ButtonOptions) domain.Button

	// ShowDialog presents a modal dialog and returns immediately.
	// The returned Pending resolves with a domain.DialogResult when the dialog closes.
	ShowDialog(opts domain.DialogOptions) domain.Pending
}
