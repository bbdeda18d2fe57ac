package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"castor/internal/diag"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
)

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

func renderDiagnostic(d diag.Diagnostic) string {
	return fmt.Sprintf("%s %s", severityColor(d.Severity).Sprintf("[%s]", d.Code.ID()), d.Message)
}

func printBag(out io.Writer, bag *diag.Bag) {
	for _, d := range bag.Items() {
		fmt.Fprintln(out, renderDiagnostic(d))
	}
}
