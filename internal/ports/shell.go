package ports

// Shell is the application handle passed to plugins on activation.
type Shell interface {
	// Commands returns the shell's command registry.
	Commands() CommandRegistry

	// Dialogs returns the shell's modal dialog service.
	Dialogs() DialogService

	// Version returns the application version string.
	Version() string
}
