// Package ui provides terminal output helpers for the CLI.
package ui

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// Success prints a success message.
func Success(format string, args ...any) {
	successColor.Printf("✓ "+format+"\n", args...)
}

// Error prints an error message.
func Error(format string, args ...any) {
	errorColor.Fprintf(color.Error, "✗ "+format+"\n", args...)
}

// PrintTable renders a result set as a table with a header row.
func PrintTable(headers []string, rows [][]string) {
	data := pterm.TableData{headers}
	data = append(data, rows...)
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		fmt.Println(err)
	}
}
