package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tablekit"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type model struct {
	surface *tablekit.Surface
	input   *tablekit.TeaInput
	path    string
	dirty   *bool
	err     error
}

func initialModel(path string) model {
	table := sampleTable()
	if path != "" {
		if loaded, err := tablekit.ReadTableFile(path); err == nil {
			table = loaded
		}
	}

	opts := tablekit.DefaultOptions().
		HandleWidth(1).
		CellMinWidth(4).
		CellMinHeight(1)

	renderer := tablekit.NewTermRenderer(opts).
		DefaultColWidth(12).
		DefaultRowHeight(1).
		Origin(0, 2)

	input := tablekit.NewTeaInput()
	dirty := new(bool)

	surface := tablekit.NewSurface(table, opts).
		Renderer(renderer).
		Source(input).
		OnCommit(func(*tablekit.Transaction) { *dirty = true })

	// prime the renderer geometry so the first mouse event can hit-test
	surface.View()

	return model{surface: surface, input: input, path: path, dirty: dirty}
}

func sampleTable() *tablekit.Node {
	cell := func(text string, cs, rs int) *tablekit.Node {
		c := tablekit.NewCell(cs, rs)
		c.Children = []*tablekit.Node{tablekit.NewBlock(text)}
		return c
	}
	return tablekit.NewTable(
		tablekit.NewRow(cell("region", 1, 1), cell("q1", 1, 1), cell("q2", 1, 1)),
		tablekit.NewRow(cell("emea", 1, 2), cell("1,204", 1, 1), cell("980", 1, 1)),
		tablekit.NewRow(cell("2,011", 2, 1)),
		tablekit.NewRow(cell("apac", 1, 1), cell("640", 1, 1), cell("712", 1, 1)),
	)
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.input.Dispatch(msg, m.surface)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.surface.CancelDrag()
		case "ctrl+s":
			return m.save()
		}
	}
	return m, nil
}

func (m model) save() (tea.Model, tea.Cmd) {
	if m.path == "" {
		return m, nil
	}
	if err := tablekit.WriteTableFile(m.path, m.surface.Table()); err != nil {
		m.err = err
		return m, nil
	}
	*m.dirty = false
	m.err = nil
	return m, nil
}

func (m model) View() string {
	title := " tablekit resize demo"
	if *m.dirty {
		title += " *"
	}
	out := titleStyle.Render(title) + "\n\n"
	out += m.surface.View() + "\n"

	state := m.surface.State()
	status := " idle"
	switch {
	case state.Dragging():
		status = fmt.Sprintf(" dragging %s handle @%d", state.Axis, state.Handle)
	case state.Hovering():
		status = fmt.Sprintf(" hover %s handle @%d", state.Axis, state.Handle)
	}
	out += statusStyle.Render(status) + "\n"
	if m.err != nil {
		out += errorStyle.Render(" error: "+m.err.Error()) + "\n"
	}
	out += dimStyle.Render(" drag cell edges to resize  esc cancel drag  ctrl+s save  q quit")
	return out
}

func main() {
	path := flag.String("file", "", "automerge table file to load/save")
	flag.Parse()

	p := tea.NewProgram(initialModel(*path), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
