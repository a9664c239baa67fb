// Package ui renders appin's command results for the terminal. Rich
// output is styled with lipgloss; plain output is stable text suitable
// for scripts and tests.
package ui

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/appin/pkg/commands/create"
	"github.com/arthur-debert/appin/pkg/commands/list"
	"github.com/arthur-debert/appin/pkg/ui/styles"
)

// RenderReport renders the reconciliation report
func RenderReport(result *list.Result, format Format) string {
	var b strings.Builder

	if result.Total() == 0 {
		return style("Muted", "No bundles found", format)
	}

	b.WriteString(style("Title", "Integrated", format) + "\n")
	if len(result.Matched) == 0 {
		b.WriteString("  " + style("Muted", "(none)", format) + "\n")
	}
	for _, bundle := range result.Matched {
		fmt.Fprintf(&b, "  %s %s\n", style("Matched", "✓", format), bundle.Name)
	}

	b.WriteString(style("Title", "Missing descriptor", format) + "\n")
	if len(result.Unmatched) == 0 {
		b.WriteString("  " + style("Muted", "(none)", format) + "\n")
	}
	for _, bundle := range result.Unmatched {
		fmt.Fprintf(&b, "  %s %s\n", style("Unmatched", "✗", format), bundle.Name)
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderCreated renders the outcome of a create run
func RenderCreated(result *create.Result, format Format) string {
	var b strings.Builder

	for _, c := range result.Created {
		fmt.Fprintf(&b, "%s %s -> %s\n",
			style("Matched", "✓", format), c.Bundle.Name, c.DescriptorPath)
	}
	if len(result.Created) == 0 {
		b.WriteString(style("Muted", "No descriptors written", format) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderWarning renders a single warning line
func RenderWarning(msg string, format Format) string {
	return style("Warning", "warning:", format) + " " + msg
}

// style applies a registered style in terminal format, and returns the
// raw text otherwise
func style(name, text string, format Format) string {
	if format != FormatTerminal {
		return text
	}
	return styles.Get(name).Render(text)
}
