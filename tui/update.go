package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/slotlist/internal/store"
)

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.list.SetSize(m.width, m.listHeight())
		return m, nil

	case ItemsLoadedMsg:
		*m.items = append((*m.items)[:0], msg.Items...)
		m.adapter.NotifyDataSetChanged()
		m.log.Debug().Int("items", len(msg.Items)).Msg("items reloaded")
		return m, nil

	case ActivationRecordedMsg:
		if msg.Err != nil {
			m.err = fmt.Errorf("failed to record activation: %w", msg.Err)
			return m, nil
		}
		a := msg.Activation
		m.lastActivation = &a
		m.activations++
		m.stored++
		return m, nil

	case HistoryLoadedMsg:
		m.stored = msg.Total
		if m.lastActivation == nil && len(msg.Recent) > 0 {
			a := msg.Recent[0]
			m.lastActivation = &a
		}
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case WatcherFailedMsg:
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		m.list.CursorUp()
	case "down", "j":
		m.list.CursorDown()
	case "enter", " ":
		return m, m.activate()
	case "h":
		if _, ok := m.adapter.Header(); ok {
			m.adapter.RemoveHeader()
		} else {
			m.adapter.SetHeader(m.headerView())
		}
	case "f":
		if _, ok := m.adapter.Footer(); ok {
			m.adapter.RemoveFooter()
		} else {
			m.adapter.SetFooter(m.footerView())
		}
	case "e":
		if _, ok := m.adapter.Empty(); ok {
			m.adapter.RemoveEmpty()
		} else {
			m.adapter.SetEmpty(m.emptyView())
		}
	case "a":
		*m.items = append(*m.items, fmt.Sprintf("Item %d", len(*m.items)))
		m.adapter.NotifyDataSetChanged()
	case "d":
		if n := len(*m.items); n > 0 {
			*m.items = (*m.items)[:n-1]
			m.adapter.NotifyDataSetChanged()
		}
	case "x":
		*m.items = (*m.items)[:0]
		m.adapter.NotifyDataSetChanged()
	case "l":
		m.layoutKind = nextLayout(m.layoutKind)
		m.list.SetLayout(newLayout(m.layoutKind, m.cfg.Layout.SpanCount))
	}

	return m, nil
}

// handleMouseMsg activates the slot under a left click
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	// the title bar sits above the list
	slot, ok := m.list.SlotAt(msg.Y-1, msg.X)
	if !ok {
		return m, nil
	}
	m.list.SetCursor(slot)
	return m, m.activate()
}

// activate clicks the cursor slot and returns a command storing the
// activation, or nil when the slot is not clickable
func (m Model) activate() tea.Cmd {
	slot := m.list.Cursor()
	if !m.list.Activate() {
		return nil
	}
	c, ok := m.clicks.take()
	if !ok {
		return nil
	}

	a := store.Activation{
		Slot:      slot,
		DataIndex: c.index,
		Value:     c.item,
		Timestamp: time.Now(),
	}
	m.log.Info().Int("slot", slot).Int("index", c.index).Str("value", c.item).Msg("row activated")

	recorder := m.recorder
	return func() tea.Msg {
		if recorder == nil {
			return ActivationRecordedMsg{Activation: a}
		}
		saved, err := recorder.Record(a)
		return ActivationRecordedMsg{Activation: saved, Err: err}
	}
}

// listHeight returns the lines available to the list
func (m Model) listHeight() int {
	if m.cfg.Layout.Height > 0 {
		return m.cfg.Layout.Height
	}
	h := m.height - chromeLines
	if h < 1 {
		h = 1
	}
	return h
}
