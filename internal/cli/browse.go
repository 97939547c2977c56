package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphnet/pkg/graph"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the browse command.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse FILE",
		Short: "Explore a library interactively",
		Long: `Open a terminal browser over a library. Pick a graph, then a node, to see
its attributes and neighbors. Selecting a neighbor jumps to it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := c.loadLibrary(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			p := tea.NewProgram(NewBrowseModel(lib),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}
}

// =============================================================================
// BrowseModel - Library browser
// =============================================================================

// browseLevel is the depth of the browser: graphs, nodes of a graph, or a
// single node.
type browseLevel int

const (
	levelGraphs browseLevel = iota
	levelNodes
	levelNode
)

// neighbor is a selectable edge in the node view.
type neighbor struct {
	edge int
	node int
	out  bool
}

// BrowseModel is the bubbletea model for the library browser.
type BrowseModel struct {
	Library *graph.AnyLibrary
	Level   browseLevel
	Height  int

	ids       []string
	graph     *graph.AnyGraph
	node      int
	neighbors []neighbor
	cursor    [3]int
	offset    [3]int
}

// NewBrowseModel creates a browser positioned on the graph list.
func NewBrowseModel(lib *graph.AnyLibrary) BrowseModel {
	return BrowseModel{Library: lib, Height: 15, ids: lib.IDs()}
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc", "backspace", "left", "h":
			if m.Level == levelGraphs {
				return m, tea.Quit
			}
			m.Level--
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "enter", "right", "l":
			m.descend()
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
	}
	return m, nil
}

// count is the number of selectable rows at the current level.
func (m *BrowseModel) count() int {
	switch m.Level {
	case levelGraphs:
		return len(m.ids)
	case levelNodes:
		return m.graph.NodeCount()
	default:
		return len(m.neighbors)
	}
}

func (m *BrowseModel) move(delta int) {
	n := m.count()
	if n == 0 {
		return
	}
	l := m.Level
	m.cursor[l] = min(max(m.cursor[l]+delta, 0), n-1)
	if m.cursor[l] < m.offset[l] {
		m.offset[l] = m.cursor[l]
	}
	if m.cursor[l] >= m.offset[l]+m.Height {
		m.offset[l] = m.cursor[l] - m.Height + 1
	}
}

func (m *BrowseModel) descend() {
	if m.count() == 0 {
		return
	}
	switch m.Level {
	case levelGraphs:
		g, ok := m.Library.Lookup(m.ids[m.cursor[levelGraphs]])
		if !ok {
			return
		}
		m.graph = g
		m.cursor[levelNodes], m.offset[levelNodes] = 0, 0
		m.Level = levelNodes
	case levelNodes:
		m.openNode(m.cursor[levelNodes])
	case levelNode:
		target := m.neighbors[m.cursor[levelNode]].node
		m.cursor[levelNodes] = target
		m.offset[levelNodes] = max(target-m.Height+1, 0)
		m.openNode(target)
	}
}

// openNode shows node i of the current graph with its outgoing edges first.
func (m *BrowseModel) openNode(i int) {
	n := m.graph.Node(i)
	m.node = i
	m.neighbors = nil
	for e, edge := range n.Edges(graph.Out) {
		m.neighbors = append(m.neighbors, neighbor{edge: e, node: edge.End(), out: true})
	}
	for e, edge := range n.Edges(graph.In) {
		m.neighbors = append(m.neighbors, neighbor{edge: e, node: edge.Start()})
	}
	m.cursor[levelNode], m.offset[levelNode] = 0, 0
	m.Level = levelNode
}

func (m BrowseModel) View() string {
	var b strings.Builder

	switch m.Level {
	case levelGraphs:
		b.WriteString(StyleTitle.Render("Graphs"))
	case levelNodes:
		b.WriteString(StyleTitle.Render("Graph " + m.graph.ID()))
	case levelNode:
		b.WriteString(StyleTitle.Render(m.graph.ID() + " › " + m.graph.Node(m.node).ID()))
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ open  esc back  q quit"))
	b.WriteString("\n\n")

	switch m.Level {
	case levelGraphs:
		b.WriteString(m.graphsView())
	case levelNodes:
		b.WriteString(m.nodesView())
	case levelNode:
		b.WriteString(m.nodeView())
	}

	if n := m.count(); n > 0 {
		b.WriteString("\n\n")
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor[m.Level]+1, n)))
	}
	return b.String()
}

func (m BrowseModel) graphsView() string {
	if len(m.ids) == 0 {
		return listDimStyle.Render("  library has no graphs")
	}
	start, end := m.window(len(m.ids))
	rows := make([][]string, 0, end-start)
	for i := start; i < end; i++ {
		g, _ := m.Library.Lookup(m.ids[i])
		rows = append(rows, []string{
			m.marker(i), g.ID(),
			fmt.Sprint(g.NodeCount()), fmt.Sprint(g.EdgeCount()), fmt.Sprint(g.Attrs.Len()),
		})
	}
	return m.table(start, []string{"", "Graph", "Nodes", "Edges", "Attrs"}, rows)
}

func (m BrowseModel) nodesView() string {
	var b strings.Builder
	b.WriteString(attrsView(&m.graph.Attrs))
	if m.graph.NodeCount() == 0 {
		b.WriteString(listDimStyle.Render("  graph has no nodes"))
		return b.String()
	}
	start, end := m.window(m.graph.NodeCount())
	rows := make([][]string, 0, end-start)
	for i := start; i < end; i++ {
		n := m.graph.Node(i)
		rows = append(rows, []string{
			m.marker(i), n.ID(),
			fmt.Sprint(n.InCount()), fmt.Sprint(n.OutCount()), fmt.Sprint(n.Attrs.Len()),
		})
	}
	b.WriteString(m.table(start, []string{"", "Node", "In", "Out", "Attrs"}, rows))
	return b.String()
}

func (m BrowseModel) nodeView() string {
	var b strings.Builder
	b.WriteString(attrsView(&m.graph.Node(m.node).Attrs))
	if len(m.neighbors) == 0 {
		b.WriteString(listDimStyle.Render("  node has no edges"))
		return b.String()
	}
	start, end := m.window(len(m.neighbors))
	rows := make([][]string, 0, end-start)
	for i := start; i < end; i++ {
		nb := m.neighbors[i]
		dir := "←"
		if nb.out {
			dir = "→"
		}
		e := m.graph.Edge(nb.edge)
		rows = append(rows, []string{m.marker(i), dir, m.graph.Node(nb.node).ID(), fmtAttrs(&e.Attrs)})
	}
	b.WriteString(m.table(start, []string{"", "", "Neighbor", "Edge attributes"}, rows))
	return b.String()
}

// window returns the visible row range for a list of n rows.
func (m BrowseModel) window(n int) (start, end int) {
	start = m.offset[m.Level]
	return start, min(start+m.Height, n)
}

func (m BrowseModel) marker(i int) string {
	if i == m.cursor[m.Level] {
		return "▸ "
	}
	return "  "
}

func (m BrowseModel) table(start int, headers []string, rows [][]string) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cursor := m.cursor[m.Level]
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if start+row == cursor {
				return listSelectedStyle
			}
			if col == len(headers)-1 {
				return listDimStyle
			}
			return listNormalStyle
		})
	return t.Render()
}

// attrsView lists attribute pairs above a table.
func attrsView[T any](a *graph.Attrs[T]) string {
	if a.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for k, v := range a.All() {
		printKeyValue(&b, k, strings.ReplaceAll(v, "\n", "⏎"))
	}
	b.WriteString("\n")
	return b.String()
}

// fmtAttrs joins attribute pairs on a single line.
func fmtAttrs[T any](a *graph.Attrs[T]) string {
	parts := make([]string, 0, a.Len())
	for k, v := range a.All() {
		parts = append(parts, k+"="+strings.ReplaceAll(v, "\n", "⏎"))
	}
	return strings.Join(parts, " ")
}
