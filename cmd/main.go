// Package main is the production entry point for the help-about shell.
//
// The shell hosts plugins that contribute commands; the bundled About plugin
// adds help:about, reachable from the Help menu and the command palette
// (Ctrl+Shift+C).
//
// Build:
//
//	go build -o build/helpabout ./cmd
//
// Run:
//
//	HELPABOUT_LOCALE=de HELPABOUT_LOG_LEVEL=debug ./build/helpabout
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/tejashwikalptaru/helpabout/internal/app"
)

func main() {
	config := app.DefaultConfig()

	// Create the application with dependency injection
	application, err := app.NewApplication(config)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Ensure a graceful shutdown
	defer func() {
		if err := application.Shutdown(); err != nil {
			fmt.Fprintf(os.Stderr, "Shutdown error: %v\n", err)
		}
	}()

	// Run application (blocks until the window closed)
	application.Run()
}
