// Package ui provides styled CLI output for dingoc's simplify and resolve
// subcommands, built on lipgloss.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary   = lipgloss.Color("#7D56F4")
	colorSecondary = lipgloss.Color("#56C3F4")
	colorSuccess   = lipgloss.Color("#5AF78E")
	colorWarning   = lipgloss.Color("#F7DC6F")
	colorError     = lipgloss.Color("#FF6B9D")
	colorMuted     = lipgloss.Color("#6C7086")
	colorText      = lipgloss.Color("#CDD6F4")
	colorHighlight = lipgloss.Color("#F5E0DC")
)

var (
	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 2).
			MarginBottom(1)

	styleVersion = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)

	styleSection = lipgloss.NewStyle().Bold(true).Foreground(colorSecondary).MarginTop(1)

	styleFilePath = lipgloss.NewStyle().Foreground(colorHighlight).Bold(true)

	styleSuccess = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	styleError   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	styleMuted   = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	styleText    = lipgloss.NewStyle().Foreground(colorText)

	styleStepLabel = lipgloss.NewStyle().Foreground(colorText).Width(14).Align(lipgloss.Left)
	styleStepTime  = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)

	styleSummary = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(colorMuted).
			MarginTop(1).
			PaddingTop(1)

	styleIndent = lipgloss.NewStyle().PaddingLeft(2)
)

// PrintHeader prints dingoc's banner.
func PrintHeader(version string) {
	fmt.Println(styleHeader.Render("dingoc") + " " + styleVersion.Render("v"+version))
}

// PrintVersionInfo prints the output of `dingoc version`.
func PrintVersionInfo(version string) {
	fmt.Println(styleHeader.Render("dingoc"))
	fmt.Println()
	fmt.Printf("  %s %s\n", styleMuted.Render("Version:"), styleSuccess.Render(version))
	fmt.Printf("  %s %s\n", styleMuted.Render("Passes:"), styleText.Render("simplify, resolve"))
	fmt.Println()
}

// Step is one reported stage of a subcommand run: parsing the fixture,
// running the pass, printing the result.
type Step struct {
	Name     string
	Status   StepStatus
	Duration time.Duration
	Message  string
}

// StepStatus classifies a Step's outcome.
type StepStatus int

const (
	StepSuccess StepStatus = iota
	StepWarning
	StepError
)

// PrintStep prints one Step line, formatted like "  ✓ Parse    Done (1ms)".
func PrintStep(step Step) {
	var icon, status string
	switch step.Status {
	case StepSuccess:
		icon, status = "✓", styleSuccess.Render("Done")
	case StepWarning:
		icon, status = "⚠", styleWarning().Render("Warning")
	case StepError:
		icon, status = "✗", styleError.Render("Failed")
	}

	line := fmt.Sprintf("  %s %s %s", icon, styleStepLabel.Render(step.Name), status)
	if step.Duration > 0 {
		line += " " + styleStepTime.Render("("+formatDuration(step.Duration)+")")
	}
	fmt.Println(line)

	if step.Message != "" {
		fmt.Println(styleIndent.Render(styleMuted.Render(step.Message)))
	}
}

func styleWarning() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
}

// PrintSummary prints the final pass/fail line for a subcommand run.
func PrintSummary(success bool, detail string) {
	fmt.Println()
	var line string
	if success {
		line = styleSuccess.Render("✓ " + detail)
	} else {
		line = styleError.Render("✗ " + detail)
	}
	fmt.Println(styleSummary.Render(line))
}

// PrintError prints a single indented error line.
func PrintError(msg string) {
	fmt.Println(styleIndent.Render(styleError.Render("✗ ") + msg))
}

// PrintInfo prints a single indented informational line.
func PrintInfo(msg string) {
	fmt.Println(styleIndent.Render(styleMuted.Render("ℹ " + msg)))
}

// PrintWarning prints a single indented warning line, e.g. for unused
// imports or extern crates reported after a successful resolve.
func PrintWarning(msg string) {
	fmt.Println(styleIndent.Render(styleWarning().Render("⚠ ") + msg))
}

// PrintFilePath prints a labelled file path, e.g. before running a pass
// against it.
func PrintFilePath(label, path string) {
	fmt.Printf("  %s %s\n", styleMuted.Render(label+":"), styleFilePath.Render(path))
}

// Section prints a section header, e.g. "Blocks:" or "Diagnostics:".
func Section(title string) {
	fmt.Println(styleSection.Render(title))
}

// Table renders a simple two-column, left-aligned table.
func Table(rows [][2]string) string {
	maxWidth := 0
	for _, row := range rows {
		if len(row[0]) > maxWidth {
			maxWidth = len(row[0])
		}
	}
	lines := make([]string, len(rows))
	for i, row := range rows {
		label := styleMuted.Render(fmt.Sprintf("%-*s", maxWidth, row[0]))
		lines[i] = fmt.Sprintf("  %s  %s", label, styleText.Render(row[1]))
	}
	return strings.Join(lines, "\n")
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
