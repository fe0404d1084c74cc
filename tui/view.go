package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	if !m.ready {
		return m.renderLoading()
	}

	sections := []string{
		m.renderTitle(),
		m.renderList(),
		m.renderStatus(),
		m.renderHelp(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderLoading renders the screen shown before the first window size
func (m Model) renderLoading() string {
	return m.styles.Muted.Render("Loading...")
}

// renderTitle renders the title bar with layout and slot counts
func (m Model) renderTitle() string {
	layout := m.layoutKind
	if layout != "linear" {
		layout = fmt.Sprintf("%s(%d)", layout, m.cfg.Layout.SpanCount)
	}

	title := m.styles.Title.Render("slotlist")
	info := m.styles.Muted.Render(fmt.Sprintf("layout: %s · %d items · %d slots",
		layout, len(*m.items), m.adapter.Count()))

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", info)
}

// renderList renders the list padded to its full height
func (m Model) renderList() string {
	view := m.list.View()
	lines := 0
	if view != "" {
		lines = strings.Count(view, "\n") + 1
	}
	if pad := m.listHeight() - lines; pad > 0 {
		if view != "" {
			view += "\n"
		}
		view += strings.Repeat("\n", pad-1)
	}
	return view
}

// renderStatus renders the last activation or the current error
func (m Model) renderStatus() string {
	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.lastActivation == nil {
		return m.styles.Muted.Render("No activations yet")
	}
	a := m.lastActivation
	return m.styles.Status.Render(fmt.Sprintf("Activated #%d %q (slot %d) at %s · %d this session · %d stored",
		a.DataIndex, a.Value, a.Slot, a.Timestamp.Format("15:04:05"), m.activations, m.stored))
}

// renderHelp renders the key help line
func (m Model) renderHelp() string {
	return m.styles.Divider.Render("j/k move · enter activate · h/f/e header/footer/empty · a/d/x add/delete/clear · l layout · q quit")
}
