package tui

import (
	"io"
	"log/slog"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"kochflake/internal/geom"
	"kochflake/internal/koch"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string
	log    *slog.Logger

	// Snowflake
	tree       *koch.Node
	side       float64
	maxDepth   int
	depthLimit int
	depth      int // depth on screen
	bbox       geom.BBox
	building   bool

	// Depth picker
	l list.Model

	// rebuild prompt
	promptMode bool
	ti         textinput.Model

	showFill bool

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverMicX   int
	hoverMicY   int
	hoverHasPos bool
	hoverX      float64
	hoverY      float64

	// stats table
	showStats bool
	tbl       table.Model
}

// New returns a viewer for tree, a snowflake of the given base side. Rebuilds requested
// from the prompt may not exceed depthLimit.
func New(tree *koch.Node, side float64, depthLimit int) Model {
	m := Model{
		helpVisible: true,
		zoom:        1.0,
		depthLimit:  depthLimit,
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	// list setup
	d := list.NewDefaultDelegate()
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Depths"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// prompt setup
	m.ti = textinput.New()
	m.ti.Placeholder = "side depth  (e.g. 1.5 6)"
	m.ti.Prompt = "rebuild> "
	m.ti.CharLimit = 32
	// stats table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.setTree(tree, side)
	return m
}

// WithLogger routes the viewer's diagnostics to log.
func (m Model) WithLogger(log *slog.Logger) Model {
	if log != nil {
		m.log = log
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// setTree swaps in a freshly built tree and shows it at full depth.
func (m *Model) setTree(tree *koch.Node, side float64) {
	m.tree = tree
	m.side = side
	m.maxDepth = tree.Depth()
	m.bbox = geom.BBoxOfRing(tree.Outline(m.maxDepth)).Square(0.02)
	m.refreshDepths()
	m.refreshStats()
	m.setDepth(m.maxDepth)
}

func (m *Model) setDepth(d int) {
	m.depth = max(0, min(d, m.maxDepth))
	m.l.Select(m.depth)
	m.tbl.SetCursor(m.depth)
	q := m.tree.Query(m.depth)
	m.status = statusLine(m.depth, m.maxDepth, q)
}

// builtMsg carries the result of an asynchronous rebuild.
type builtMsg struct {
	tree *koch.Node
	side float64
	err  error
}

func buildCmd(side float64, maxDepth int) tea.Cmd {
	return func() tea.Msg {
		tree, err := koch.Build(side, maxDepth)
		return builtMsg{tree: tree, side: side, err: err}
	}
}
