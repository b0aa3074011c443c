// Package main provides UI utilities for the concierge CLI.
package main

import (
	"fmt"

	"github.com/fatih/color"
)

// UI provides user-friendly output utilities.
type UI struct {
	jsonMode bool
	noColor  bool
}

// NewUI creates a new UI instance.
func NewUI(jsonMode, noColor bool) *UI {
	return &UI{jsonMode: jsonMode, noColor: noColor}
}

// Success prints a success message.
func (ui *UI) Success(format string, args ...interface{}) {
	if ui.jsonMode {
		return
	}
	if ui.noColor {
		fmt.Printf("✓ %s\n", fmt.Sprintf(format, args...))
	} else {
		color.New(color.FgGreen).Printf("✓ %s\n", fmt.Sprintf(format, args...))
	}
}

// Info prints an informational message.
func (ui *UI) Info(format string, args ...interface{}) {
	if ui.jsonMode {
		return
	}
	if ui.noColor {
		fmt.Printf("• %s\n", fmt.Sprintf(format, args...))
	} else {
		color.New(color.FgCyan).Printf("• %s\n", fmt.Sprintf(format, args...))
	}
}

// Warn prints a warning message.
func (ui *UI) Warn(format string, args ...interface{}) {
	if ui.jsonMode {
		return
	}
	if ui.noColor {
		fmt.Printf("! %s\n", fmt.Sprintf(format, args...))
	} else {
		color.New(color.FgYellow).Printf("! %s\n", fmt.Sprintf(format, args...))
	}
}

// Answer prints the assistant's reply body.
func (ui *UI) Answer(text string) {
	if ui.jsonMode {
		return
	}
	if ui.noColor {
		fmt.Println(text)
	} else {
		color.New(color.FgWhite, color.Bold).Println(text)
	}
}
