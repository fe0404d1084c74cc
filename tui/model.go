package tui

import (
	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/young1lin/slotlist/internal/adapter"
	"github.com/young1lin/slotlist/internal/config"
	"github.com/young1lin/slotlist/internal/listview"
	"github.com/young1lin/slotlist/internal/store"
)

// chromeLines is the number of lines drawn around the list
const chromeLines = 3

// ActivationRecorder persists activations; *store.DB implements it
type ActivationRecorder interface {
	Record(a store.Activation) (store.Activation, error)
}

// click is an activation captured by the adapter's click listener
type click struct {
	index int
	item  string
}

// clickQueue collects clicks fired synchronously during Activate
type clickQueue struct {
	pending []click
}

func (q *clickQueue) take() (click, bool) {
	if len(q.pending) == 0 {
		return click{}, false
	}
	c := q.pending[0]
	q.pending = q.pending[1:]
	return c, true
}

// Model is the demo screen
type Model struct {
	items   *[]string
	adapter *adapter.Adapter[string, listview.View]
	list    *listview.List[string]
	clicks  *clickQueue

	cfg        *config.Config
	layoutKind string
	recorder   ActivationRecorder

	// Status
	lastActivation *store.Activation
	activations    int // this session
	stored         int // in the history database
	err            error

	// State
	width    int
	height   int
	ready    bool
	quitting bool

	styles Styles
	log    zerolog.Logger
}

// Styles contains the Lipgloss styles for the UI
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Empty   lipgloss.Style
	Row     lipgloss.Style
	Cursor  lipgloss.Style
	Status  lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Divider lipgloss.Style
}

// DefaultStyles returns the default UI styles
func DefaultStyles() Styles {
	var styles Styles

	// Color palette
	primaryColor := lipgloss.Color("86")    // Green
	secondaryColor := lipgloss.Color("239") // Grey
	errorColor := lipgloss.Color("196")     // Red
	accentColor := lipgloss.Color("228")    // Yellow

	styles.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255"))

	styles.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(primaryColor)

	styles.Footer = lipgloss.NewStyle().
		Foreground(accentColor)

	styles.Empty = lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color("243"))

	styles.Row = lipgloss.NewStyle().
		Foreground(lipgloss.Color("250"))

	styles.Cursor = lipgloss.NewStyle().
		Reverse(true)

	styles.Status = lipgloss.NewStyle().
		Foreground(accentColor)

	styles.Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	styles.Error = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true)

	styles.Divider = lipgloss.NewStyle().
		Foreground(secondaryColor)

	return styles
}

// rowBinder renders data rows as wrapped text
type rowBinder struct {
	style lipgloss.Style
}

func (b rowBinder) CreateRow(ctx adapter.CreateContext) listview.View {
	return listview.Text{Style: b.style, Wrap: true}
}

func (b rowBinder) BindRow(h *adapter.Holder[string, listview.View], index int, item string) {
	h.View = listview.Text{Content: item, Style: b.style, Wrap: true}
}

// NewModel creates the screen over items. items stays owned by the caller
// of NewModel until the program starts; afterwards only Update mutates it.
func NewModel(cfg *config.Config, items []string, recorder ActivationRecorder, logger zerolog.Logger) Model {
	styles := DefaultStyles()
	owned := append([]string(nil), items...)
	m := Model{
		items:      &owned,
		clicks:     &clickQueue{},
		cfg:        cfg,
		layoutKind: cfg.Layout.Kind,
		recorder:   recorder,
		styles:     styles,
		log:        logger,
	}

	m.adapter = adapter.New[string, listview.View](
		adapter.NewSliceSource(m.items),
		rowBinder{style: styles.Row},
		adapter.WithLogger(logger),
	)
	clicks := m.clicks
	m.adapter.SetClickListener(func(index int, item string) {
		clicks.pending = append(clicks.pending, click{index: index, item: item})
	})

	m.list = listview.New(m.adapter, newLayout(m.layoutKind, cfg.Layout.SpanCount), 80, 20,
		listview.WithStyles(listview.Styles{Cursor: styles.Cursor}),
		listview.WithLogger(logger),
	)

	if cfg.Decorations.Header != "" {
		m.adapter.SetHeader(m.headerView())
	}
	if cfg.Decorations.Footer != "" {
		m.adapter.SetFooter(m.footerView())
	}
	if cfg.Decorations.Empty != "" {
		m.adapter.SetEmpty(m.emptyView())
	}

	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) headerView() listview.View {
	text := m.cfg.Decorations.Header
	if text == "" {
		text = "Header"
	}
	return listview.Text{Content: text, Style: m.styles.Header}
}

func (m Model) footerView() listview.View {
	text := m.cfg.Decorations.Footer
	if text == "" {
		text = "Footer"
	}
	return listview.Text{Content: text, Style: m.styles.Footer}
}

func (m Model) emptyView() listview.View {
	text := m.cfg.Decorations.Empty
	if text == "" {
		text = "No items"
	}
	return listview.Text{Content: text, Style: m.styles.Empty}
}

// newLayout builds the list layout for a config layout kind
func newLayout(kind string, spans int) listview.Layout {
	switch kind {
	case config.LayoutGrid:
		return listview.NewGrid(spans)
	case config.LayoutStaggered:
		return listview.NewStaggered(spans)
	default:
		return listview.NewLinear()
	}
}

// nextLayout cycles linear -> grid -> staggered -> linear
func nextLayout(kind string) string {
	switch kind {
	case config.LayoutLinear:
		return config.LayoutGrid
	case config.LayoutGrid:
		return config.LayoutStaggered
	default:
		return config.LayoutLinear
	}
}
