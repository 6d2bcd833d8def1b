// Package ui implements the interactive IR explorer for `hwopt explore`.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"hwopt/internal/ir"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	kindStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	nameStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	detailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	collapsedMark = "+ "
	expandedMark  = "- "
	leafMark      = "  "
)

// row is one visible line of the tree.
type row struct {
	op       ir.Op
	depth    int
	children bool
}

// explorerModel is a Bubble Tea model that renders an op tree with
// expand/collapse navigation.
type explorerModel struct {
	title     string
	root      ir.Op
	collapsed map[ir.Op]bool
	rows      []row
	cursor    int
	vp        viewport.Model
	width     int
	height    int
	ready     bool
}

// NewExplorer returns a Bubble Tea model browsing the given circuit.
func NewExplorer(title string, root *ir.Circuit) tea.Model {
	m := &explorerModel{
		title:     title,
		root:      root,
		collapsed: make(map[ir.Op]bool),
		width:     80,
		height:    24,
	}
	m.rebuild()
	return m
}

func (m *explorerModel) Init() tea.Cmd { return nil }

func (m *explorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case "enter", " ":
			m.toggle()
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = len(m.rows) - 1
		}
		m.syncViewport()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 2
		footerHeight := 1
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - headerHeight - footerHeight
		}
		m.syncViewport()
	}
	return m, nil
}

func (m *explorerModel) View() string {
	if !m.ready {
		return "loading..."
	}
	header := titleStyle.Render(m.title) + "\n\n"
	footer := helpStyle.Render("up/down: move  enter: expand/collapse  q: quit")
	return header + m.vp.View() + "\n" + footer
}

// toggle flips the collapsed state under the cursor.
func (m *explorerModel) toggle() {
	if m.cursor >= len(m.rows) {
		return
	}
	r := m.rows[m.cursor]
	if !r.children {
		return
	}
	m.collapsed[r.op] = !m.collapsed[r.op]
	m.rebuild()
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
}

// rebuild recomputes visible rows from the tree and collapse state.
func (m *explorerModel) rebuild() {
	m.rows = m.rows[:0]
	m.addRows(m.root, 0)
}

func (m *explorerModel) addRows(op ir.Op, depth int) {
	children := hasChildren(op)
	m.rows = append(m.rows, row{op: op, depth: depth, children: children})
	if !children || m.collapsed[op] {
		return
	}
	for _, region := range op.Regions() {
		for _, block := range region.Blocks {
			for _, child := range block.Ops {
				m.addRows(child, depth+1)
			}
		}
	}
}

func (m *explorerModel) syncViewport() {
	if !m.ready {
		return
	}
	var b strings.Builder
	for i, r := range m.rows {
		line := m.renderRow(r, i == m.cursor)
		b.WriteString(line)
		b.WriteString("\n")
	}
	m.vp.SetContent(b.String())

	// Keep the cursor in view.
	if m.cursor < m.vp.YOffset {
		m.vp.SetYOffset(m.cursor)
	} else if m.cursor >= m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(m.cursor - m.vp.Height + 1)
	}
}

func (m *explorerModel) renderRow(r row, selected bool) string {
	mark := leafMark
	if r.children {
		mark = expandedMark
		if m.collapsed[r.op] {
			mark = collapsedMark
		}
	}
	text := strings.Repeat("  ", r.depth) + mark + describe(r.op)
	text = runewidth.Truncate(text, max(m.width-2, 20), "...")
	if selected {
		return cursorStyle.Render(text)
	}
	return text
}

// describe renders one op as a single line.
func describe(op ir.Op) string {
	kind := kindStyle.Render(op.Kind().String())
	switch op := op.(type) {
	case *ir.Circuit:
		return kind + " " + nameStyle.Render(op.Ident)
	case *ir.Module:
		return fmt.Sprintf("%s %s %s", kind, nameStyle.Render(op.Ident),
			detailStyle.Render(fmt.Sprintf("(%d ports)", len(op.Ports))))
	case *ir.Wire:
		return fmt.Sprintf("%s %s: %s", kind, nameStyle.Render(op.Ident),
			detailStyle.Render(op.Type.String()))
	case *ir.Reg:
		return fmt.Sprintf("%s %s: %s", kind, nameStyle.Render(op.Ident),
			detailStyle.Render(fmt.Sprintf("%s, clock %s", op.Type, op.Clock.Ident)))
	case *ir.Node:
		return fmt.Sprintf("%s %s = %s", kind, nameStyle.Render(op.Ident),
			detailStyle.Render(op.Operand.Ident))
	case *ir.Instance:
		return fmt.Sprintf("%s %s of %s", kind, nameStyle.Render(op.Ident),
			detailStyle.Render(op.Target))
	case *ir.Connect:
		return fmt.Sprintf("%s %s", kind,
			detailStyle.Render(op.Dst.Ident+" <- "+op.Src.Ident))
	case *ir.When:
		return fmt.Sprintf("%s %s", kind, detailStyle.Render(op.Cond.Ident))
	default:
		return kind
	}
}

func hasChildren(op ir.Op) bool {
	for _, region := range op.Regions() {
		for _, block := range region.Blocks {
			if len(block.Ops) > 0 {
				return true
			}
		}
	}
	return false
}
