// Package ui holds the huh theme and the framed summaries printed after
// interactive and batch commands.
package ui

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	activeSymbol   = "◆"
	completeSymbol = "◇"
	separator      = " · "
	arrow          = " → "
	borderTop      = "┌"
	borderSide     = "│"
	borderBottom   = "└"
	checkSymbol    = "✓"
)

func FormTheme() *huh.Theme {
	t := huh.ThemeBase()
	red := lipgloss.Color("1")
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.SetString("✗").Foreground(red)
	t.Blurred.ErrorMessage = t.Blurred.ErrorMessage.SetString("✗").Foreground(red)
	return t
}

// Field is one line of a summary. A field whose Previous differs from Value
// is drawn as a change.
type Field struct {
	Label    string
	Value    string
	Previous string
}

func (f Field) Changed() bool {
	return f.Previous != f.Value
}

func borderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
}

// frame accumulates lines hung off a left border.
type frame struct {
	b      strings.Builder
	border lipgloss.Style
}

func newFrame(title string) *frame {
	f := &frame{border: borderStyle()}
	f.line(borderTop, title)
	return f
}

func (f *frame) line(edge, text string) {
	f.b.WriteString(f.border.Render(edge))
	if text != "" {
		f.b.WriteString(" " + text)
	}
	f.b.WriteString("\n")
}

func (f *frame) raw(text string) {
	f.b.WriteString(text + "\n")
}

func (f *frame) close() string {
	f.line(borderBottom, "")
	return f.b.String()
}

// RenderSummary frames fields under title. Unchanged empty fields are left
// out.
func RenderSummary(title string, fields []Field) string {
	f := newFrame(title)
	f.line(borderSide, "")
	for _, field := range fields {
		if field.Value == "" && !field.Changed() {
			continue
		}
		f.raw(renderField(field))
	}
	return f.close()
}

// RenderChecks frames a heading, a path and one checked line per item.
func RenderChecks(heading, path string, checks []string) string {
	f := newFrame(activeSymbol + " " + heading)
	f.line(borderSide, path)
	if len(checks) > 0 {
		f.line(borderSide, "")
	}
	for _, check := range checks {
		f.line(borderSide, checkSymbol+" "+check)
	}
	return f.close()
}

func renderField(f Field) string {
	if !f.Changed() {
		return completeSymbol + " " + f.Label + separator + orNone(f.Value)
	}
	return activeSymbol + " " + f.Label + separator + orNone(f.Previous) + arrow + orNone(f.Value)
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
