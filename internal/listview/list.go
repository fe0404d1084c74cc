package listview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/young1lin/slotlist/internal/adapter"
)

// Styles used by the list itself
type Styles struct {
	Cursor lipgloss.Style
}

// DefaultStyles highlights the cursor slot in reverse video
func DefaultStyles() Styles {
	return Styles{
		Cursor: lipgloss.NewStyle().Reverse(true),
	}
}

// List is the render surface for an adapter. It observes the adapter and
// must be driven from a single goroutine.
type List[T any] struct {
	adapter *adapter.Adapter[T, View]
	layout  Layout

	width  int
	height int
	cursor int
	top    int
	count  int

	attached map[int]*adapter.Holder[T, View]
	pool     []*adapter.Holder[T, View]
	hits     []hit

	styles Styles
	log    zerolog.Logger
}

// Option configures a List
type Option func(*listOptions)

type listOptions struct {
	styles Styles
	logger zerolog.Logger
}

// WithStyles overrides DefaultStyles
func WithStyles(s Styles) Option {
	return func(o *listOptions) { o.styles = s }
}

// WithLogger sets the logger for recycling events
func WithLogger(l zerolog.Logger) Option {
	return func(o *listOptions) { o.logger = l }
}

// New creates a list that renders a through layout and registers itself
// as an observer of a
func New[T any](a *adapter.Adapter[T, View], layout Layout, width, height int, opts ...Option) *List[T] {
	o := listOptions{styles: DefaultStyles(), logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	l := &List[T]{
		adapter:  a,
		width:    width,
		height:   height,
		attached: make(map[int]*adapter.Holder[T, View]),
		styles:   o.styles,
		log:      o.logger.With().Str("component", "listview").Logger(),
	}
	a.RegisterObserver(l)
	l.SetLayout(layout)
	l.count = a.Count()
	return l
}

// Close detaches the list from its adapter
func (l *List[T]) Close() {
	l.recycleAll()
	l.adapter.UnregisterObserver(l)
}

// Layout returns the active layout
func (l *List[T]) Layout() Layout {
	return l.layout
}

// SetLayout switches layouts. Pooled holders carry the old layout's params
// and are dropped.
func (l *List[T]) SetLayout(layout Layout) {
	l.recycleAll()
	l.pool = nil
	l.layout = layout
	l.layout.reset()
	l.adapter.AttachedTo(layout)
	l.log.Debug().Str("layout", layout.Name()).Msg("layout attached")
}

// SetSize resizes the viewport
func (l *List[T]) SetSize(width, height int) {
	if width != l.width {
		l.recycleAll()
		l.layout.reset()
	}
	l.width = width
	l.height = height
}

// Cursor returns the slot under the cursor
func (l *List[T]) Cursor() int {
	return l.cursor
}

// SetCursor moves the cursor, clamped to the slot range
func (l *List[T]) SetCursor(slot int) {
	l.cursor = slot
	l.clampCursor()
}

// CursorUp moves the cursor one slot up
func (l *List[T]) CursorUp() {
	l.SetCursor(l.cursor - 1)
}

// CursorDown moves the cursor one slot down
func (l *List[T]) CursorDown() {
	l.SetCursor(l.cursor + 1)
}

// Activate clicks the holder under the cursor. It reports whether a click
// handler ran.
func (l *List[T]) Activate() bool {
	h, ok := l.attached[l.cursor]
	if !ok {
		return false
	}
	return h.Click()
}

// SlotAt returns the slot drawn at viewport line and column
func (l *List[T]) SlotAt(line, col int) (int, bool) {
	for _, h := range l.hits {
		if line >= h.line && line < h.line+h.height && col >= h.col && col < h.col+h.width {
			return h.slot, true
		}
	}
	return 0, false
}

// ItemInserted recycles holders bound at or after pos. When the slot count
// grew, a cursor at or after pos moves with its slot.
func (l *List[T]) ItemInserted(pos int) {
	for slot := range l.attached {
		if slot >= pos {
			l.recycle(slot)
		}
	}
	l.layout.reset()

	count := l.adapter.Count()
	if l.count > 0 && count > l.count && pos <= l.cursor {
		l.cursor++
		if pos <= l.top && l.top > 0 {
			l.top++
		}
	}
	l.count = count
	l.clampCursor()
}

// DataSetChanged recycles every bound holder
func (l *List[T]) DataSetChanged() {
	l.recycleAll()
	l.layout.reset()
	l.count = l.adapter.Count()
	l.clampCursor()
}

// View renders the viewport, scrolling so the cursor slot is fully visible
func (l *List[T]) View() string {
	if l.height <= 0 || l.width <= 0 || l.adapter.Count() == 0 {
		l.recycleAll()
		return ""
	}
	// top always sits on a row boundary
	l.top = l.layout.rowStart(l.top)
	target := l.layout.rowStart(l.cursor)
	if target < l.top {
		l.top = target
	}

	var f frame
	for {
		f = l.layoutFrom(l.top)
		if l.top >= target || cursorVisible(f, l.cursor, l.height) {
			break
		}
		next := l.layout.nextRow(f, l.top)
		if next > target {
			next = target
		}
		l.top = next
	}

	if len(f.lines) > l.height {
		f.lines = f.lines[:l.height]
	}
	l.hits = l.hits[:0]
	for _, h := range f.hits {
		if h.line < l.height {
			l.hits = append(l.hits, h)
		}
	}
	return strings.Join(f.lines, "\n")
}

func cursorVisible(f frame, cursor, height int) bool {
	for _, h := range f.hits {
		if h.slot == cursor {
			return h.line+h.height <= height
		}
	}
	return false
}

// layoutFrom binds slots from top on and recycles holders left off screen
func (l *List[T]) layoutFrom(top int) frame {
	count := l.adapter.Count()
	next := top
	shown := make(map[int]bool)

	f := l.layout.arrange(func() (cell, bool) {
		if next >= count {
			return cell{}, false
		}
		slot := next
		next++
		shown[slot] = true

		h := l.holderFor(slot)
		full := false
		if p, ok := h.Params.(*adapter.StaggeredParams); ok && p != nil {
			full = p.FullSpan
		}
		return cell{
			slot:     slot,
			fullSpan: full,
			render: func(width int) []string {
				return l.renderHolder(h, slot, width)
			},
		}, true
	}, l.width, l.height)

	for slot := range l.attached {
		if !shown[slot] {
			l.recycle(slot)
		}
	}
	return f
}

func (l *List[T]) renderHolder(h *adapter.Holder[T, View], slot, width int) []string {
	lines := strings.Split(h.View.Render(width), "\n")
	if slot == l.cursor {
		for i, line := range lines {
			lines[i] = l.styles.Cursor.Render(line)
		}
	}
	return lines
}

// holderFor returns the holder attached at slot, binding a pooled or new
// one when none is
func (l *List[T]) holderFor(slot int) *adapter.Holder[T, View] {
	if h, ok := l.attached[slot]; ok {
		return h
	}

	kind := l.adapter.Kind(slot)
	var h *adapter.Holder[T, View]
	if kind == adapter.KindNormal && len(l.pool) > 0 {
		h = l.pool[len(l.pool)-1]
		l.pool = l.pool[:len(l.pool)-1]
	} else {
		h = l.adapter.CreateHolder(kind, adapter.CreateContext{Width: l.width})
		h.Params = l.layout.newParams()
	}

	l.adapter.BindHolder(h, slot)
	l.adapter.HolderAttached(h)
	l.attached[slot] = h
	return h
}

// recycle detaches the holder at slot. Decoration holders are dropped since
// they wrap a decoration that may since have been replaced.
func (l *List[T]) recycle(slot int) {
	h, ok := l.attached[slot]
	if !ok {
		return
	}
	delete(l.attached, slot)
	if h.Kind != adapter.KindNormal {
		return
	}
	l.adapter.HolderRecycled(h)
	l.pool = append(l.pool, h)
}

func (l *List[T]) recycleAll() {
	for slot := range l.attached {
		l.recycle(slot)
	}
	l.hits = nil
}

func (l *List[T]) clampCursor() {
	count := l.adapter.Count()
	if l.cursor >= count {
		l.cursor = count - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	if l.top > l.cursor {
		l.top = l.cursor
	}
}
