package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejashwikalptaru/helpabout/internal/about"
	"github.com/tejashwikalptaru/helpabout/internal/domain"
	"github.com/tejashwikalptaru/helpabout/internal/ports"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	config := DefaultConfig()
	config.Version = "3.0.0"
	config.Locale = "en"
	config.LogLevel = slog.LevelWarn
	config.TestFyneApp = test.NewTempApp(t)
	return config
}

func newTestApplication(t *testing.T, config Config, plugins ...Plugin) *Application {
	t.Helper()
	app, err := NewApplication(config, plugins...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Shutdown() })
	return app
}

type stubPlugin struct {
	desc      domain.PluginDescriptor
	err       error
	activated int
	palette   ports.Palette
}

func (p *stubPlugin) Descriptor() domain.PluginDescriptor { return p.desc }

func (p *stubPlugin) Activate(_ ports.Shell, _ ports.Translator, palette ports.Palette) error {
	p.activated++
	p.palette = palette
	return p.err
}

func TestNewApplication(t *testing.T) {
	app := newTestApplication(t, testConfig(t))

	commands := app.Commands()
	assert.Equal(t, []string{domain.CommandQuit, domain.CommandAbout, domain.CommandPaletteOpen}, commands.ListCommands())
	assert.Equal(t, "About", commands.Label(domain.CommandAbout))
	assert.Equal(t, "3.0.0", app.Version())
	assert.Equal(t, "en", app.Translator().Locale())
	assert.Equal(t, []string{about.PluginID}, app.ActivatedPlugins())

	var help []string
	for _, entry := range app.Palette().Items() {
		if entry.Category == "Help" {
			help = append(help, entry.Command)
		}
	}
	assert.Equal(t, []string{domain.CommandAbout}, help)
}

func TestApplication_AboutCommandShowsDialog(t *testing.T) {
	app := newTestApplication(t, testConfig(t))

	pending, err := app.Commands().Execute(context.Background(), domain.CommandAbout)
	require.NoError(t, err)
	assert.Equal(t, 1, app.dialogs.OpenCount())

	select {
	case <-pending:
		t.Fatal("about dialog resolved before it was closed")
	default:
	}

	app.dialogs.CloseAll()

	result, ok := <-pending
	require.True(t, ok)
	assert.Equal(t, domain.DialogResult{}, result.Value)
	assert.Equal(t, 0, app.dialogs.OpenCount())
}

func TestApplication_GermanLocale(t *testing.T) {
	config := testConfig(t)
	config.Locale = "de_DE.UTF-8"
	app := newTestApplication(t, config)

	assert.Equal(t, "de", app.Translator().Locale())
	assert.Equal(t, "Über", app.Commands().Label(domain.CommandAbout))
	assert.Equal(t, "Beenden", app.Commands().Label(domain.CommandQuit))
}

func TestApplication_PaletteDisabled(t *testing.T) {
	config := testConfig(t)
	config.EnablePalette = false
	plugin := &stubPlugin{desc: domain.PluginDescriptor{ID: "stub", AutoStart: true}}

	app := newTestApplication(t, config, about.NewPlugin(slog.Default()), plugin)

	assert.True(t, app.Commands().HasCommand(domain.CommandAbout))
	assert.False(t, app.Commands().HasCommand(domain.CommandPaletteOpen))
	assert.Nil(t, plugin.palette)

	for _, entry := range app.Palette().Items() {
		assert.NotEqual(t, domain.CommandAbout, entry.Command)
	}
	assert.Equal(t, []string{about.PluginID, "stub"}, app.ActivatedPlugins())
}

func TestApplication_PluginPaletteWhenEnabled(t *testing.T) {
	plugin := &stubPlugin{desc: domain.PluginDescriptor{ID: "stub", AutoStart: true, Optional: []string{ServicePalette}}}

	app := newTestApplication(t, testConfig(t), plugin)

	assert.Equal(t, 1, plugin.activated)
	assert.Same(t, app.Palette(), plugin.palette)
	assert.False(t, app.Commands().HasCommand(domain.CommandAbout))
}

func TestApplication_PluginErrorIsWrapped(t *testing.T) {
	plugin := &stubPlugin{
		desc: domain.PluginDescriptor{ID: "broken", AutoStart: true},
		err:  domain.NewCommandError("add", "x", domain.ErrDuplicateCommand),
	}

	_, err := NewApplication(testConfig(t), plugin)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateCommand)
	assert.Contains(t, err.Error(), "broken")
}

func TestApplication_DuplicatePluginFails(t *testing.T) {
	_, err := NewApplication(testConfig(t), about.NewPlugin(slog.Default()), about.NewPlugin(slog.Default()))

	var cmdErr *domain.CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, domain.CommandAbout, cmdErr.ID)
	assert.ErrorIs(t, err, domain.ErrDuplicateCommand)
}

func TestApplication_MissingRequirement(t *testing.T) {
	config := testConfig(t)
	config.EnablePalette = false
	plugin := &stubPlugin{desc: domain.PluginDescriptor{ID: "needy", AutoStart: true, Requires: []string{ServicePalette}}}

	_, err := NewApplication(config, plugin)
	assert.ErrorIs(t, err, domain.ErrMissingRequirement)
	assert.Equal(t, 0, plugin.activated)
}

func TestApplication_SkipsManualPlugins(t *testing.T) {
	plugin := &stubPlugin{desc: domain.PluginDescriptor{ID: "manual"}}

	app := newTestApplication(t, testConfig(t), plugin)

	assert.Equal(t, 0, plugin.activated)
	assert.Empty(t, app.ActivatedPlugins())
}

func TestApplication_ShutdownIdempotent(t *testing.T) {
	app, err := NewApplication(testConfig(t))
	require.NoError(t, err)

	assert.NoError(t, app.Shutdown())
	assert.NoError(t, app.Shutdown())

	_, err = app.Commands().Execute(context.Background(), domain.CommandAbout)
	assert.ErrorIs(t, err, domain.ErrRegistryClosed)
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv("HELPABOUT_LOCALE", "fr")
	t.Setenv("HELPABOUT_LOG_LEVEL", "error")

	config := DefaultConfig()

	assert.Equal(t, "io.github.tejashwikalptaru.helpabout", config.AppID)
	assert.Equal(t, "Help About", config.AppName)
	assert.Equal(t, "fr", config.Locale)
	assert.Equal(t, slog.LevelError, config.LogLevel)
	assert.True(t, config.EnablePalette)
	assert.Equal(t, GetVersionInfo().String(), config.Version)
}

func TestDefaultConfig_LocaleFromLang(t *testing.T) {
	t.Setenv("HELPABOUT_LOCALE", "")
	t.Setenv("LANG", "de_DE.UTF-8")

	assert.Equal(t, "de_DE.UTF-8", DefaultConfig().Locale)
}

func TestVersionInfo(t *testing.T) {
	v := VersionInfo{Version: "1.2.3", GitCommit: "abc", BuildTime: "now"}
	assert.Equal(t, "1.2.3", v.String())
	assert.Equal(t, "helpabout 1.2.3 (commit: abc, built: now)", v.FullString())

	v.GitTag = "v1.2.3"
	assert.Equal(t, "v1.2.3", v.String())
}
