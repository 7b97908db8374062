package ui

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

func TestRenderSummary(t *testing.T) {
	t.Run("unchanged field renders collapsed with its value", func(t *testing.T) {
		fields := []Field{{Label: "Title", Value: "Kuku Trees", Previous: "Kuku Trees"}}

		output := stripANSI(RenderSummary("kuku/kuku-trees.jpg", fields))

		assert.Contains(t, output, "◇ Title · Kuku Trees")
	})

	t.Run("changed field shows old and new values", func(t *testing.T) {
		fields := []Field{{Label: "Title", Value: "Dawn", Previous: "Kuku Trees"}}

		output := stripANSI(RenderSummary("kuku/kuku-trees.jpg", fields))

		assert.Contains(t, output, "◆ Title · Kuku Trees → Dawn")
	})

	t.Run("cleared field shows none", func(t *testing.T) {
		fields := []Field{{Label: "Description", Value: "", Previous: "old"}}

		output := stripANSI(RenderSummary("x.jpg", fields))

		assert.Contains(t, output, "◆ Description · old → (none)")
	})

	t.Run("empty unchanged field produces no line", func(t *testing.T) {
		fields := []Field{
			{Label: "Title", Value: "x", Previous: "x"},
			{Label: "Description"},
		}

		output := stripANSI(RenderSummary("x.jpg", fields))

		assert.NotContains(t, output, "Description")
	})

	t.Run("title follows the top border and output is closed", func(t *testing.T) {
		output := stripANSI(RenderSummary("Updated kuku/kuku-trees.jpg", nil))

		assert.Contains(t, output, "┌ Updated kuku/kuku-trees.jpg")
		assert.Contains(t, output, "└")
	})
}

func TestRenderChecks(t *testing.T) {
	t.Run("lists every check under the path", func(t *testing.T) {
		output := stripANSI(RenderChecks("Created 2 thumbnails", "/site/thumbnails", []string{"a-thumbnail.jpg", "b-thumbnail.png"}))

		assert.Contains(t, output, "┌ ◆ Created 2 thumbnails")
		assert.Contains(t, output, "│ /site/thumbnails")
		assert.Contains(t, output, "│ ✓ a-thumbnail.jpg")
		assert.Contains(t, output, "│ ✓ b-thumbnail.png")
	})

	t.Run("no checks renders just the frame", func(t *testing.T) {
		output := stripANSI(RenderChecks("Nothing to do", "/site", nil))

		assert.NotContains(t, output, "✓")
		assert.Contains(t, output, "└")
	})
}
