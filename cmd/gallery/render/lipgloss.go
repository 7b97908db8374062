package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

type LipglossRenderer struct {
	width int
	r     *lipgloss.Renderer

	titleStyle      lipgloss.Style
	pathStyle       lipgloss.Style
	sizeStyle       lipgloss.Style
	descStyle       lipgloss.Style
	collectionStyle lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:           width,
		r:               r,
		titleStyle:      r.NewStyle().Bold(true),
		pathStyle:       r.NewStyle().Faint(true),
		sizeStyle:       r.NewStyle().Faint(true),
		descStyle:       r.NewStyle(),
		collectionStyle: r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width)
}

func (r *LipglossRenderer) RenderImageList(view ImageListView) string {
	if view.IsEmpty() {
		return "No images found.\n"
	}

	items := make([]string, len(view.Items))
	for i, item := range view.Items {
		items[i] = r.renderItem(item)
	}
	return strings.Join(items, "\n\n") + "\n"
}

func (r *LipglossRenderer) renderItem(item ImageListItem) string {
	title := item.Title
	if title == "" {
		title = item.Path
	}
	header := r.titleStyle.Render(title)
	if len(item.Collections) > 0 {
		collectionsEl := r.collectionStyle.Render(strings.Join(item.Collections, ", "))
		padding := max(1, r.width-lipgloss.Width(header)-lipgloss.Width(collectionsEl))
		header += strings.Repeat(" ", padding) + collectionsEl
	}
	lines := []string{header}

	pathLine := r.pathStyle.Render("  " + item.Path)
	if size := formatSize(item); size != "" {
		pathLine += r.sizeStyle.Render("  " + size)
	}
	lines = append(lines, pathLine)

	if item.Description != "" {
		lines = append(lines, r.descStyle.Render("  "+item.Description))
	}
	return strings.Join(lines, "\n")
}

func formatSize(item ImageListItem) string {
	if item.Width == 0 || item.Height == 0 {
		return item.Format
	}
	if item.Format == "" {
		return fmt.Sprintf("%dx%d", item.Width, item.Height)
	}
	return fmt.Sprintf("%dx%d %s", item.Width, item.Height, item.Format)
}
