// Package ui provides styled terminal output for the multispin CLI.
//
// This package uses Lipgloss to render one-shot command output: a Header
// banner naming the command and its parameters, and Result boxes for
// success, warning and failure. Printer ties them together and falls back to
// plain "key: value" lines when stdout is not a terminal, so the same
// commands work in pipelines.
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout, ui.IsTerminal(os.Stdout))
//	p.Header("Format", "multispin format", ui.Param{Key: "Locale", Value: "de-DE"})
//	p.Success("Value formatted", ui.Param{Key: "Text", Value: "6.789,12"})
//
// # Logging Integration
//
// This package expects logging to be controlled via the MULTISPIN_LOG_LEVEL
// environment variable. When unset or empty, zap logging is silent, allowing
// the curated UI output to be displayed cleanly.
package ui
