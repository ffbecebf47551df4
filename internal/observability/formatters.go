// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"reqdoc/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPoints outputs the preprocessed requirement points.
func (p *Printer) PrintPoints(points []string) {
	var sb strings.Builder

	for i, point := range points {
		if i == maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(points)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, point))
	}
	if len(points) == 0 {
		sb.WriteString("(none)\n")
	}

	p.printBox(fmt.Sprintf("Requirement points (%d)", len(points)), strings.TrimRight(sb.String(), "\n"))
}

// PrintDocument outputs a human-readable summary of the structured document.
func (p *Printer) PrintDocument(doc *types.StructuredRequirements) {
	if doc == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:       %s\n", doc.Title))
	sb.WriteString(fmt.Sprintf("Sections:    %d\n", len(doc.Sections)))
	for i, section := range doc.Sections {
		if i == maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Sections)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  - %s (%d bullets, %d subheadings)\n",
			section.Heading, len(section.Bullets), len(section.Subheadings)))
	}
	sb.WriteString(fmt.Sprintf("Assumptions: %d\n", len(doc.Assumptions)))
	sb.WriteString(fmt.Sprintf("Out of scope: %d\n", len(doc.OutOfScope)))
	if len(doc.Figures) > 0 {
		sb.WriteString(fmt.Sprintf("Figures:     %d\n", len(doc.Figures)))
	}

	p.printBox("Structured document", strings.TrimRight(sb.String(), "\n"))
}

// PrintVersion outputs the recorded version entry.
func (p *Printer) PrintVersion(info *types.VersionInfo) {
	if info == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Version:   %d\n", info.Version))
	sb.WriteString(fmt.Sprintf("File:      %s\n", info.FileName))
	sb.WriteString(fmt.Sprintf("Timestamp: %s\n", info.Timestamp))
	sb.WriteString(fmt.Sprintf("Summary:   %s", info.Summary))

	p.printBox("Recorded version", sb.String())
}
