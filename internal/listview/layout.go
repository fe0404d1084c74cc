package listview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/slotlist/internal/adapter"
)

// cell is one bound slot handed to a layout
type cell struct {
	slot     int
	fullSpan bool
	render   func(width int) []string
}

// hit records where a slot was drawn, for mouse lookups
type hit struct {
	slot   int
	line   int
	col    int
	width  int
	height int
}

// frame is the result of one layout pass
type frame struct {
	lines []string
	hits  []hit
}

// Layout places bound slots in the viewport. next yields slots in order
// starting at the first visible one and returns false when none are left.
//
// The list only scrolls to slots returned by rowStart and nextRow, so a
// layout that packs several slots per row is never arranged from the middle
// of a row.
type Layout interface {
	Name() string
	newParams() any
	arrange(next func() (cell, bool), width, height int) frame
	// rowStart returns the first slot of the row holding slot
	rowStart(slot int) int
	// nextRow returns the first slot of the row after top. f is the frame
	// arranged from top.
	nextRow(f frame, top int) int
	// reset drops placement state once slots have moved
	reset()
}

// Linear stacks slots vertically
type Linear struct{}

// NewLinear returns a vertical list layout
func NewLinear() *Linear {
	return &Linear{}
}

func (*Linear) Name() string { return "linear" }

func (*Linear) newParams() any { return nil }

func (*Linear) rowStart(slot int) int { return slot }

func (*Linear) nextRow(_ frame, top int) int { return top + 1 }

func (*Linear) reset() {}

func (*Linear) arrange(next func() (cell, bool), width, height int) frame {
	var f frame
	for len(f.lines) < height {
		c, ok := next()
		if !ok {
			break
		}
		lines := c.render(width)
		f.hits = append(f.hits, hit{slot: c.slot, line: len(f.lines), width: width, height: len(lines)})
		f.lines = append(f.lines, lines...)
	}
	return f
}

// Grid packs slots into rows of SpanCount equal columns. The span of each
// slot comes from the lookup registered by the adapter.
type Grid struct {
	spans  int
	lookup adapter.SpanSizeLookup
}

// NewGrid returns a grid layout with spans columns
func NewGrid(spans int) *Grid {
	if spans < 1 {
		spans = 1
	}
	return &Grid{spans: spans}
}

func (g *Grid) Name() string { return "grid" }

// SpanCount returns the number of columns
func (g *Grid) SpanCount() int { return g.spans }

// SetSpanSizeLookup installs the per-slot span lookup
func (g *Grid) SetSpanSizeLookup(lookup adapter.SpanSizeLookup) {
	g.lookup = lookup
}

func (g *Grid) spanOf(slot int) int {
	if g.lookup == nil {
		return 1
	}
	span := g.lookup(slot)
	if span < 1 {
		return 1
	}
	if span > g.spans {
		return g.spans
	}
	return span
}

func (*Grid) newParams() any { return nil }

func (*Grid) reset() {}

// rowStart packs rows from slot 0, the same way arrange does
func (g *Grid) rowStart(slot int) int {
	start, used := 0, 0
	for s := 0; s <= slot; s++ {
		span := g.spanOf(s)
		if used+span > g.spans {
			start, used = s, 0
		}
		used += span
		if used == g.spans && s < slot {
			start, used = s+1, 0
		}
	}
	return start
}

func (g *Grid) nextRow(_ frame, top int) int {
	used := 0
	for s := top; ; s++ {
		span := g.spanOf(s)
		if used+span > g.spans {
			return s
		}
		used += span
		if used == g.spans {
			return s + 1
		}
	}
}

func (g *Grid) arrange(next func() (cell, bool), width, height int) frame {
	var f frame
	colWidth := width / g.spans

	var blocks []string
	var rowHits []hit
	used := 0

	flush := func() {
		if len(blocks) == 0 {
			return
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
		rowLines := strings.Split(row, "\n")
		for _, h := range rowHits {
			h.line = len(f.lines)
			f.hits = append(f.hits, h)
		}
		f.lines = append(f.lines, rowLines...)
		blocks, rowHits, used = nil, nil, 0
	}

	for len(f.lines) < height {
		c, ok := next()
		if !ok {
			break
		}
		span := g.spanOf(c.slot)
		if used+span > g.spans {
			flush()
		}
		w := colWidth * span
		lines := c.render(w)
		rowHits = append(rowHits, hit{slot: c.slot, col: used * colWidth, width: w, height: len(lines)})
		blocks = append(blocks, padBlock(lines, w))
		used += span
		if used == g.spans {
			flush()
		}
	}
	flush()
	return f
}

// Staggered places slots in the currently shortest of SpanCount columns.
// Holders flagged full span close the current band and take a whole row.
// A slot keeps the column it was first placed in until reset, so scrolling
// does not move slots between columns.
type Staggered struct {
	spans int
	lanes map[int]int
}

// NewStaggered returns a staggered-grid layout with spans columns
func NewStaggered(spans int) *Staggered {
	if spans < 1 {
		spans = 1
	}
	return &Staggered{spans: spans, lanes: make(map[int]int)}
}

func (s *Staggered) Name() string { return "staggered" }

// SpanCount returns the number of columns
func (s *Staggered) SpanCount() int { return s.spans }

func (*Staggered) newParams() any { return &adapter.StaggeredParams{} }

func (s *Staggered) reset() {
	s.lanes = make(map[int]int)
}

func (*Staggered) rowStart(slot int) int { return slot }

// nextRow skips every slot drawn on the first line of f
func (*Staggered) nextRow(f frame, top int) int {
	next := -1
	for _, h := range f.hits {
		if h.line > 0 && h.slot > top && (next < 0 || h.slot < next) {
			next = h.slot
		}
	}
	if next < 0 {
		return top + 1
	}
	return next
}

func (s *Staggered) arrange(next func() (cell, bool), width, height int) frame {
	var f frame
	colWidth := width / s.spans
	cols := make([][]string, s.spans)
	if s.lanes == nil {
		s.lanes = make(map[int]int)
	}

	tallest := func() int {
		h := 0
		for _, c := range cols {
			if len(c) > h {
				h = len(c)
			}
		}
		return h
	}
	shortestLen := func() int {
		h := len(cols[0])
		for _, c := range cols[1:] {
			if len(c) < h {
				h = len(c)
			}
		}
		return h
	}

	flush := func() {
		h := tallest()
		if h == 0 {
			return
		}
		blocks := make([]string, s.spans)
		for i, c := range cols {
			for len(c) < h {
				c = append(c, strings.Repeat(" ", colWidth))
			}
			blocks[i] = strings.Join(c, "\n")
			cols[i] = nil
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
		f.lines = append(f.lines, strings.Split(row, "\n")...)
	}

	for len(f.lines)+shortestLen() < height {
		c, ok := next()
		if !ok {
			break
		}
		if c.fullSpan {
			flush()
			lines := c.render(width)
			f.hits = append(f.hits, hit{slot: c.slot, line: len(f.lines), width: width, height: len(lines)})
			f.lines = append(f.lines, lines...)
			continue
		}

		shortest, placed := s.lanes[c.slot]
		if !placed || shortest >= s.spans {
			shortest = 0
			for i := range cols {
				if len(cols[i]) < len(cols[shortest]) {
					shortest = i
				}
			}
			s.lanes[c.slot] = shortest
		}
		lines := c.render(colWidth)
		f.hits = append(f.hits, hit{
			slot:   c.slot,
			line:   len(f.lines) + len(cols[shortest]),
			col:    shortest * colWidth,
			width:  colWidth,
			height: len(lines),
		})
		for _, line := range lines {
			cols[shortest] = append(cols[shortest], padRendered(line, colWidth))
		}
	}
	flush()
	return f
}

// padBlock pads every line to width and joins them
func padBlock(lines []string, width int) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = padRendered(line, width)
	}
	return strings.Join(out, "\n")
}

// padRendered pads an already styled line; lipgloss.Width skips ANSI
// sequences where runewidth would count them.
func padRendered(line string, width int) string {
	if w := lipgloss.Width(line); w < width {
		return line + strings.Repeat(" ", width-w)
	}
	return line
}
