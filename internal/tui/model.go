// Package tui is an interactive terminal planner. Every instance gets one row
// with a current and a target handle; totals update on every key press.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/ChicagoDave/haydaycalc/pkg/catalog"
	"github.com/ChicagoDave/haydaycalc/pkg/planner"
)

// Handle selects which end of a range the arrow keys move.
type Handle int

const (
	CurrentHandle Handle = iota
	TargetHandle
)

const defaultHeight = 24

// chrome is the number of lines View spends outside the row list.
const chrome = 7

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8FD18F"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F4D35E"))
	handleStyle   = lipgloss.NewStyle().Reverse(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	totalStyle    = lipgloss.NewStyle().Bold(true).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

type row struct {
	kind      string
	instance  int
	instances int
	currency  catalog.Currency
	minSlots  int
	maxSlots  int
}

// Model is the bubbletea model for the planner.
type Model struct {
	planner *planner.Planner
	rows    []row
	cursor  int
	handle  Handle
	offset  int
	height  int
	help    help.Model
}

// New builds a model over every plannable instance in c.
func New(c *catalog.Catalog) Model {
	p := planner.New(c)
	var rows []row
	for _, b := range p.Snapshot().Buildings {
		for i := range b.Instances {
			rows = append(rows, row{
				kind:      b.Name,
				instance:  i,
				instances: len(b.Instances),
				currency:  b.Currency,
				minSlots:  b.MinSlots,
				maxSlots:  b.MaxSlots,
			})
		}
	}
	return Model{planner: p, rows: rows, height: defaultHeight, help: help.New()}
}

// Planner exposes the underlying planner.
func (m Model) Planner() *planner.Planner {
	return m.planner
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.help.Width = msg.Width
		m.scroll()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Handle):
			if m.handle == CurrentHandle {
				m.handle = TargetHandle
			} else {
				m.handle = CurrentHandle
			}
		case key.Matches(msg, keys.Left):
			m.move(-1)
		case key.Matches(msg, keys.Right):
			m.move(1)
		case key.Matches(msg, keys.Less):
			m.reduce(-1)
		case key.Matches(msg, keys.More):
			m.reduce(1)
		case key.Matches(msg, keys.Reset):
			m.planner.Reset()
		}
		m.scroll()
	}
	return m, nil
}

func (m *Model) move(delta int) {
	if len(m.rows) == 0 {
		return
	}
	r := m.rows[m.cursor]
	cur, _ := m.planner.Range(r.kind, r.instance)
	if m.handle == CurrentHandle {
		m.planner.SetCurrent(r.kind, r.instance, cur.Current+delta)
	} else {
		m.planner.SetTarget(r.kind, r.instance, cur.Target+delta)
	}
}

// reduce steps the global reduction. At either limit nothing is re-applied,
// so instance edits survive.
func (m *Model) reduce(delta int) {
	next := m.planner.Reduction() + delta
	if next < 0 || next > planner.MaxReduction {
		return
	}
	m.planner.SetReduction(next)
}

func (m *Model) visible() int {
	n := m.height - chrome
	if n < 1 {
		return 1
	}
	return n
}

func (m *Model) scroll() {
	n := m.visible()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+n {
		m.offset = m.cursor - n + 1
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Hay Day slot planner"))
	b.WriteString("\n\n")

	end := m.offset + m.visible()
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}

	t := m.planner.Totals()
	b.WriteString(totalStyle.Render(fmt.Sprintf("Diamonds %s   Coins %s   Reduction %d",
		humanize.Comma(int64(t.Diamonds)), humanize.Comma(int64(t.Coins)), m.planner.Reduction())))
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))
	return b.String()
}

func (m Model) renderRow(i int) string {
	r := m.rows[i]
	rng, _ := m.planner.Range(r.kind, r.instance)

	name := r.kind
	if r.instances > 1 {
		name = fmt.Sprintf("%s #%d", r.kind, r.instance+1)
	}

	current := fmt.Sprintf("%d", rng.Current)
	target := fmt.Sprintf("%d", rng.Target)
	selected := i == m.cursor
	if selected && m.handle == CurrentHandle {
		current = handleStyle.Render(current)
	}
	if selected && m.handle == TargetHandle {
		target = handleStyle.Render(target)
	}

	bar := gauge(rng, r.minSlots, r.maxSlots)

	// The kind's cost is shown once, on its first instance.
	cost := ""
	if r.instance == 0 {
		cost = dimStyle.Render("no cost")
		if c := m.planner.KindCost(r.kind); c > 0 {
			cost = fmt.Sprintf("%s %s", humanize.Comma(int64(c)), r.currency)
		}
	}

	line := fmt.Sprintf("%-24s %s %s → %s  %s", name, bar, current, target, cost)
	if selected {
		return selectedStyle.Render("› ") + line
	}
	return "  " + line
}

// gauge draws the slot range as a bar: owned slots, slots to buy, then the
// remainder up to hi.
func gauge(r planner.Range, lo, hi int) string {
	var b strings.Builder
	for n := lo; n <= hi; n++ {
		switch {
		case n <= r.Current:
			b.WriteString("█")
		case n <= r.Target:
			b.WriteString("▒")
		default:
			b.WriteString("·")
		}
	}
	return b.String()
}

// Run starts the interactive planner and blocks until the user quits.
func Run(c *catalog.Catalog) (planner.Plan, error) {
	final, err := tea.NewProgram(New(c), tea.WithAltScreen()).Run()
	if err != nil {
		return planner.Plan{}, fmt.Errorf("running planner: %w", err)
	}
	return final.(Model).planner.Snapshot(), nil
}
