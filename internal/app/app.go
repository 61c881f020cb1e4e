// Package app provides application-level orchestration and dependency injection.
// This package wires together all components and manages the application lifecycle.
package app

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sync"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"github.com/tejashwikalptaru/helpabout/internal/about"
	"github.com/tejashwikalptaru/helpabout/internal/adapter/command"
	"github.com/tejashwikalptaru/helpabout/internal/adapter/eventbus"
	"github.com/tejashwikalptaru/helpabout/internal/adapter/palette"
	"github.com/tejashwikalptaru/helpabout/internal/adapter/translation"
	fyneui "github.com/tejashwikalptaru/helpabout/internal/adapter/ui/fyne"
	"github.com/tejashwikalptaru/helpabout/internal/domain"
	"github.com/tejashwikalptaru/helpabout/internal/logger"
	"github.com/tejashwikalptaru/helpabout/internal/ports"
)

// ShellTextDomain is the translation domain of the shell's own strings.
const ShellTextDomain = "helpabout"

// Services a plugin descriptor can name in Requires or Optional.
const (
	ServiceTranslator = "translator"
	ServicePalette    = "palette"
)

// Plugin is an extension the shell activates at startup.
type Plugin interface {
	Descriptor() domain.PluginDescriptor
	Activate(shell ports.Shell, translator ports.Translator, palette ports.Palette) error
}

// Application is the root application structure that holds all dependencies.
// It follows the Dependency Injection pattern with constructor-based injection,
// and is the ports.Shell handed to plugins.
type Application struct {
	config  Config
	logger  *slog.Logger
	fyneApp fyne.App

	// Infrastructure
	eventBus   *eventbus.SyncEventBus
	registry   *command.Registry
	palette    *palette.Palette
	translator ports.Translator

	// UI
	dialogs    *fyneui.DialogService
	mainWindow *fyneui.MainWindow
	presenter  *fyneui.Presenter

	activated    []string
	shutdownOnce sync.Once
}

// Config holds application configuration.
type Config struct {
	// AppID is the unique application identifier
	AppID string

	// AppName is the display name and window title
	AppName string

	// Version is the version shown in the About dialog
	Version string

	// Locale selects the translation catalogs (e.g., "de", "fr_FR.UTF-8")
	Locale string

	// LogLevel controls logging verbosity
	LogLevel slog.Level

	// LogFormat is "text" or "json"
	LogFormat string

	// EnablePalette offers the command palette to plugins and enables the palette window
	EnablePalette bool

	// TestFyneApp allows injecting a test Fyne app for testing (nil for production)
	TestFyneApp fyne.App
}

// DefaultConfig returns the default application configuration.
// HELPABOUT_LOCALE overrides the locale, which otherwise comes from LANG.
func DefaultConfig() Config {
	loggerCfg := logger.DefaultConfig()

	locale := os.Getenv("HELPABOUT_LOCALE")
	if locale == "" {
		locale = os.Getenv("LANG")
	}

	return Config{
		AppID:         "io.github.tejashwikalptaru.helpabout",
		AppName:       "Help About",
		Version:       GetVersionInfo().String(),
		Locale:        locale,
		LogLevel:      loggerCfg.Level,
		LogFormat:     loggerCfg.Format,
		EnablePalette: true,
	}
}

// DefaultPlugins returns the plugins shipped with the shell.
func DefaultPlugins(log *slog.Logger) []Plugin {
	return []Plugin{
		about.NewPlugin(log.With(slog.String("plugin", about.PluginID))),
	}
}

// NewApplication creates a new application with all dependencies wired and
// activates plugins. With no plugins given, DefaultPlugins are used.
func NewApplication(config Config, plugins ...Plugin) (*Application, error) {
	app := &Application{config: config}

	// Step 1: Create Fyne application
	if config.TestFyneApp != nil {
		app.fyneApp = config.TestFyneApp
	} else {
		app.fyneApp = fyneapp.NewWithID(config.AppID)
	}

	// Step 2: Create logger
	app.logger = logger.NewLogger(logger.Config{
		Level:  config.LogLevel,
		Format: config.LogFormat,
	})
	app.logger.Info("initializing application",
		slog.String("app_id", config.AppID),
		slog.String("app_name", config.AppName),
		slog.String("version", config.Version))

	// Step 3: Create an event bus; every event is logged at debug level
	app.eventBus = eventbus.NewSyncEventBus()
	app.eventBus.SetLogger(app.logger.With(slog.String("component", "eventbus")))
	eventLogger := app.logger.With(slog.String("component", "events"))
	app.eventBus.SubscribeAll(func(event domain.Event) {
		eventLogger.Debug("event", slog.String("type", string(event.Type())))
	})

	// Step 4: Create command registry and palette
	app.registry = command.NewRegistry(app.logger.With(slog.String("component", "commands")), app.eventBus)
	app.palette = palette.NewPalette(app.logger.With(slog.String("component", "palette")), app.registry, app.eventBus)

	// Step 5: Create translator
	translator, err := translation.NewCatalogTranslator(
		app.logger.With(slog.String("component", "translation")), config.Locale)
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}
	app.translator = translator
	shellTrans := translator.Load(ShellTextDomain)

	// Step 6: Create UI
	app.mainWindow = fyneui.NewMainWindow(app.fyneApp, config.AppName, shellTrans)

	uiLogger := app.logger.With(slog.String("component", "ui"))
	app.dialogs = fyneui.NewDialogService(uiLogger, fyneui.NewRenderer(uiLogger, fyneui.NewIconSet()), app.eventBus)
	app.dialogs.SetParent(app.mainWindow.GetWindow())

	// Step 7: Register shell commands and activate plugins
	if err := app.registerShellCommands(shellTrans); err != nil {
		return nil, fmt.Errorf("failed to register shell commands: %w", err)
	}

	if len(plugins) == 0 {
		plugins = DefaultPlugins(app.logger)
	}
	if err := app.activatePlugins(plugins); err != nil {
		return nil, err
	}

	// Step 8: Create Presenter and wire with UI
	app.presenter = fyneui.NewPresenter(
		app.logger.With(slog.String("component", "presenter")),
		app.registry,
		app.palette,
		shellTrans,
		app.eventBus,
		app.mainWindow,
	)
	app.mainWindow.SetPresenter(app.presenter)

	return app, nil
}

// registerShellCommands adds the commands the shell itself provides.
func (a *Application) registerShellCommands(trans ports.TranslationBundle) error {
	category := trans.Gettext("Application")

	if a.config.EnablePalette {
		if _, err := a.registry.AddCommand(domain.CommandPaletteOpen, domain.CommandOptions{
			Label: trans.Gettext("Open Command Palette"),
			Execute: func() domain.Pending {
				a.mainWindow.ShowPalette()
				return nil
			},
		}); err != nil {
			return err
		}
		if _, err := a.palette.AddItem(domain.PaletteItem{Command: domain.CommandPaletteOpen, Category: category}); err != nil {
			return err
		}
	}

	if _, err := a.registry.AddCommand(domain.CommandQuit, domain.CommandOptions{
		Label: trans.Gettext("Quit"),
		Execute: func() domain.Pending {
			a.fyneApp.Quit()
			return nil
		},
	}); err != nil {
		return err
	}
	_, err := a.palette.AddItem(domain.PaletteItem{Command: domain.CommandQuit, Category: category, Rank: 100})
	return err
}

// activatePlugins activates every auto-start plugin in order. The palette is
// handed over only when enabled; otherwise plugins receive a nil palette.
func (a *Application) activatePlugins(plugins []Plugin) error {
	var pal ports.Palette
	available := []string{ServiceTranslator}
	if a.config.EnablePalette {
		pal = a.palette
		available = append(available, ServicePalette)
	}

	for _, plugin := range plugins {
		desc := plugin.Descriptor()
		if !desc.AutoStart {
			a.logger.Debug("plugin not auto-started", slog.String("plugin", desc.ID))
			continue
		}

		for _, required := range desc.Requires {
			if !slices.Contains(available, required) {
				return fmt.Errorf("failed to activate plugin %s: %s: %w", desc.ID, required, domain.ErrMissingRequirement)
			}
		}

		if err := plugin.Activate(a, a.translator, pal); err != nil {
			return fmt.Errorf("failed to activate plugin %s: %w", desc.ID, err)
		}

		a.activated = append(a.activated, desc.ID)
		a.logger.Info("plugin activated", slog.String("plugin", desc.ID))
		a.eventBus.Publish(domain.NewPluginActivatedEvent(desc.ID))
	}
	return nil
}

// ports.Shell implementation

// Commands returns the command registry.
func (a *Application) Commands() ports.CommandRegistry {
	return a.registry
}

// Dialogs returns the modal dialog service.
func (a *Application) Dialogs() ports.DialogService {
	return a.dialogs
}

// Version returns the application version string.
func (a *Application) Version() string {
	return a.config.Version
}

// Palette returns the shell's command palette.
func (a *Application) Palette() *palette.Palette {
	return a.palette
}

// Translator returns the translator plugins are activated with.
func (a *Application) Translator() ports.Translator {
	return a.translator
}

// EventBus returns the application event bus.
func (a *Application) EventBus() ports.EventBus {
	return a.eventBus
}

// ActivatedPlugins returns the ids of activated plugins in activation order.
func (a *Application) ActivatedPlugins() []string {
	return slices.Clone(a.activated)
}

// Run starts the application.
// It blocks until the main window is closed.
func (a *Application) Run() {
	a.logger.Info("application started",
		slog.String("version", GetVersionInfo().FullString()),
		slog.String("locale", a.translator.Locale()),
		slog.Any("plugins", a.activated))

	a.mainWindow.ShowAndRun()
}

// Shutdown gracefully shuts down the application.
// It's safe to call multiple times (idempotent).
func (a *Application) Shutdown() error {
	var err error
	a.shutdownOnce.Do(func() {
		a.logger.Info("shutting down application")

		if a.presenter != nil {
			a.presenter.Shutdown()
		}
		a.registry.Close()

		if closeErr := a.eventBus.Close(); closeErr != nil {
			err = fmt.Errorf("failed to close event bus: %w", closeErr)
		}

		a.logger.Info("application shutdown complete")
	})
	return err
}

var _ ports.Shell = (*Application)(nil)
