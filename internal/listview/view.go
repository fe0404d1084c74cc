// Package listview is a virtualized terminal list that renders the slots of
// an adapter.Adapter. Only slots inside the viewport are bound; holders that
// scroll out are recycled.
package listview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View is anything a slot can render. Render must return lines no wider
// than width.
type View interface {
	Render(width int) string
}

// Text renders plain, possibly multi-line content. Each line is fitted to
// the slot width; with Wrap set long lines are word-wrapped instead of cut.
type Text struct {
	Content string
	Style   lipgloss.Style
	Wrap    bool
}

// NewText returns an unstyled Text
func NewText(content string) Text {
	return Text{Content: content, Style: lipgloss.NewStyle()}
}

// Render fits every line of the content to width and applies the style
func (t Text) Render(width int) string {
	content := t.Content
	if t.Wrap && width > 0 {
		content = lipgloss.NewStyle().Width(width).Render(content)
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = t.Style.Render(Fit(line, width))
	}
	return strings.Join(lines, "\n")
}

func (t Text) String() string {
	return t.Content
}
