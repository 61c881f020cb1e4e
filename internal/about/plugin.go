// Package about implements the plugin that contributes the help:about command
// and its dialog to the shell.
//
// The plugin is thin glue: it registers one command and, on execution, hands
// static content to the shell's dialog service. Content construction lives in
// pure functions (see content.go) so it can be tested without a window.
package about

import (
	"log/slog"

	"github.com/tejashwikalptaru/helpabout/internal/domain"
	"github.com/tejashwikalptaru/helpabout/internal/ports"
)

// PluginID identifies the plugin to the shell.
const PluginID = "about"

// TextDomain is the translation domain the plugin's strings belong to.
const TextDomain = "jupyterlab"

// Plugin contributes the About command.
type Plugin struct {
	logger *slog.Logger
}

// NewPlugin creates the About plugin.
func NewPlugin(logger *slog.Logger) *Plugin {
	return &Plugin{logger: logger}
}

// Descriptor tells the shell how to activate the plugin.
func (p *Plugin) Descriptor() domain.PluginDescriptor {
	return domain.PluginDescriptor{
		ID:        PluginID,
		AutoStart: true,
		Requires:  []string{"translator"},
		Optional:  []string{"palette"},
	}
}

// Activate registers help:about with shell's command registry and, when palette
// is non-nil, adds a palette entry under the localized "Help" category.
//
// Errors from the registry or palette are returned as they are.
func (p *Plugin) Activate(shell ports.Shell, translator ports.Translator, palette ports.Palette) error {
	trans := translator.Load(TextDomain)
	category := trans.Gettext("Help")

	_, err := shell.Commands().AddCommand(domain.CommandAbout, domain.CommandOptions{
		Label: trans.Gettext("About"),
		Execute: func() domain.Pending {
			content := BuildContent(trans, shell.Version())
			dialogs := shell.Dialogs()
			return dialogs.ShowDialog(DialogOptions(content, dialogs))
		},
	})
	if err != nil {
		return err
	}

	if palette != nil {
		if _, err := palette.AddItem(domain.PaletteItem{Command: domain.CommandAbout, Category: category}); err != nil {
			return err
		}
	}

	p.logger.Debug("about plugin activated",
		slog.String("command", domain.CommandAbout),
		slog.Bool("palette", palette != nil))
	return nil
}
