// Package tui is an interactive terminal browser over a catalog session.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/meur/blueprintlabs/internal/catalog"
	"github.com/meur/blueprintlabs/internal/filter"
	"github.com/meur/blueprintlabs/internal/models"
	"github.com/meur/blueprintlabs/internal/preview"
	"github.com/meur/blueprintlabs/internal/view"
)

// Options configure a Model
type Options struct {
	Session     *catalog.Session
	Resolver    *preview.Resolver
	Prober      preview.Prober
	SearchDelay time.Duration
}

// Model renders a view.State and turns key presses into its transitions
type Model struct {
	state    view.State
	session  *catalog.Session
	resolver *preview.Resolver
	prober   preview.Prober
	delay    time.Duration

	search  textinput.Model
	visible []models.Row
	cursor  int

	width    int
	height   int
	quitting bool
}

type searchSettledMsg struct {
	seq uint64
}

type previewProbedMsg struct {
	base string
	src  string
	ok   bool
}

func NewModel(opts Options) Model {
	session := opts.Session
	if session == nil {
		session = catalog.NewSession(nil, nil)
	}
	resolver := opts.Resolver
	if resolver == nil {
		resolver = preview.NewResolver()
	}

	search := textinput.New()
	search.Placeholder = "Search for blueprints or weapons..."
	search.Focus()

	m := Model{
		state:    view.New(),
		session:  session,
		resolver: resolver,
		prober:   opts.Prober,
		delay:    opts.SearchDelay,
		search:   search,
		height:   24,
	}
	m.visible = m.state.Visible(session.Rows())
	return m
}

// State returns the current browsing state
func (m Model) State() view.State {
	return m.state
}

// Visible returns the rows currently listed
func (m Model) Visible() []models.Row {
	return m.visible
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case searchSettledMsg:
		m.setState(m.state.SettleSearch(msg.seq))
		return m, nil

	case previewProbedMsg:
		return m.handleProbe(msg)

	case tea.KeyMsg:
		if m.state.Preview != nil || m.state.Panel != view.PanelNone {
			return m.updateOverlay(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		if len(m.visible) == 0 {
			return m, nil
		}
		m.state = m.state.OpenPreview(m.resolver, m.visible[m.cursor].ImageBase)
		return m, m.probe(*m.state.Preview)
	case "f2":
		m.setState(m.state.CycleStatus(filter.Statuses(), 1))
		return m, nil
	case "f3":
		m.setState(m.state.CycleCategory(catalog.Categories(), 1))
		return m, nil
	case "f4":
		m.setState(m.state.CyclePool(m.session.Pools(), 1))
		return m, nil
	case "f5":
		m.state = m.state.OpenPanel(view.PanelUpdateLog)
		return m, nil
	case "f6":
		m.state = m.state.OpenPanel(view.PanelGuide)
		return m, nil
	case "f7":
		m.state = m.state.OpenPanel(view.PanelCredits)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == m.state.SearchInput {
		return m, cmd
	}

	state, seq := m.state.SetSearchInput(m.search.Value())
	m.state = state
	if m.delay <= 0 {
		m.setState(m.state.SettleSearch(seq))
		return m, cmd
	}
	settle := tea.Tick(m.delay, func(time.Time) tea.Msg {
		return searchSettledMsg{seq: seq}
	})
	return m, tea.Batch(cmd, settle)
}

func (m Model) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc", "enter", "q":
		if m.state.Preview != nil {
			m.state = m.state.ClosePreview()
		} else {
			m.state = m.state.ClosePanel()
		}
		return m, nil
	}

	if m.state.Panel == view.PanelGuide {
		sections := view.GuideSections()
		switch msg.String() {
		case "1", "2", "3":
			idx := int(msg.String()[0] - '1')
			m.state = m.state.SetGuideSection(sections[idx])
		case "left", "right":
			step := 1
			if msg.String() == "left" {
				step = len(sections) - 1
			}
			for i, sec := range sections {
				if sec == m.state.Guide {
					m.state = m.state.SetGuideSection(sections[(i+step)%len(sections)])
					break
				}
			}
		}
	}
	return m, nil
}

func (m Model) handleProbe(msg previewProbedMsg) (tea.Model, tea.Cmd) {
	p := m.state.Preview
	// Closed, reopened elsewhere, or already moved past this candidate.
	if p == nil || p.Base != msg.base || p.Candidate() != msg.src {
		return m, nil
	}

	if msg.ok {
		m.state = m.state.PreviewLoaded(msg.base)
		return m, nil
	}
	m.state = m.state.PreviewFailed(msg.base)
	if !m.state.Preview.Terminal() {
		return m, m.probe(*m.state.Preview)
	}
	return m, nil
}

func (m Model) probe(p preview.State) tea.Cmd {
	base, src := p.Base, p.Candidate()
	prober := m.prober
	return func() tea.Msg {
		if prober == nil {
			return previewProbedMsg{base: base, src: src}
		}
		ok, err := prober.Probe(context.Background(), src)
		return previewProbedMsg{base: base, src: src, ok: ok && err == nil}
	}
}

// setState applies a filter-affecting transition and refreshes the list
func (m *Model) setState(s view.State) {
	m.state = s
	m.visible = m.state.Visible(m.session.Rows())
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Blueprint Labs"))
	if v := m.session.Version(); v != "" {
		b.WriteString("  " + versionStyle.Render("Version: "+v))
	}
	b.WriteString("\n")

	switch {
	case m.state.Preview != nil:
		b.WriteString(m.previewView())
	case m.state.Panel == view.PanelUpdateLog:
		b.WriteString(m.updateLogView())
	case m.state.Panel == view.PanelGuide:
		b.WriteString(m.guideView())
	case m.state.Panel == view.PanelCredits:
		b.WriteString(m.creditsView())
	default:
		b.WriteString(m.listView())
	}
	return b.String()
}

func (m Model) listView() string {
	var b strings.Builder
	c := m.state.Criteria
	b.WriteString(m.search.View() + "\n")
	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s\n\n",
		labelStyle.Render("Status:"), c.Status,
		labelStyle.Render("Category:"), c.Category,
		labelStyle.Render("Pool:"), c.Pool,
	))

	if len(m.visible) == 0 {
		b.WriteString(mutedStyle.Render("No results found.") + "\n")
	} else {
		start, end := m.window()
		for i := start; i < end; i++ {
			row := m.visible[i]
			line := fmt.Sprintf("%-28s %-20s %-15s %-11s %s",
				row.Blueprint, row.Weapon, row.Category, row.Status, row.Pool)
			if i == m.cursor {
				b.WriteString(selectedRowStyle.Render(line))
			} else {
				b.WriteString(rowStyle.Render(line))
			}
			b.WriteString("\n")
		}
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%d of %d", len(m.visible), len(m.session.Rows()))) + "\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ select • enter preview • F2 status • F3 category • F4 pool • F5 update log • F6 guide • F7 credits • esc quit"))
	return b.String()
}

// window keeps the cursor inside the rows that fit on screen
func (m Model) window() (int, int) {
	size := m.height - 10
	if size < 5 {
		size = 5
	}
	start := 0
	if m.cursor >= size {
		start = m.cursor - size + 1
	}
	end := start + size
	if end > len(m.visible) {
		end = len(m.visible)
	}
	return start, end
}

func (m Model) previewView() string {
	p := m.state.Preview
	var body string
	switch p.Phase {
	case preview.Pending:
		body = mutedStyle.Render("Loading " + p.Candidate())
	case preview.Found:
		body = successStyle.Render("Preview: " + p.Candidate())
	case preview.Unavailable:
		body = warningStyle.Render("No Preview Available")
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(p.Base),
		"",
		body,
		"",
		mutedStyle.Render("esc close"),
	))
}

func (m Model) updateLogView() string {
	lines := []string{labelStyle.Render("Update Log"), ""}
	entries := m.session.Changelog()
	if len(entries) == 0 {
		lines = append(lines, mutedStyle.Render("No updates yet. Stay tuned!"))
	}
	for _, entry := range entries {
		heading := entry.Version + " - " + entry.Date
		if entry.Author != "" {
			heading += " (" + entry.Author + ")"
		}
		lines = append(lines, successStyle.Render(heading))
		for _, change := range entry.Changes {
			lines = append(lines, "  • "+change)
		}
		lines = append(lines, "")
	}
	lines = append(lines, mutedStyle.Render("esc close"))
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) guideView() string {
	var tabs []string
	for i, sec := range view.GuideSections() {
		tab := fmt.Sprintf("%d %s", i+1, sec.Title())
		if sec == m.state.Guide {
			tab = selectedRowStyle.Render(tab)
		} else {
			tab = mutedStyle.Render(tab)
		}
		tabs = append(tabs, tab)
	}

	lines := []string{
		labelStyle.Render("How to Pull Blueprints"),
		"",
		strings.Join(tabs, "  "),
		"",
	}
	if url := m.state.Guide.VideoURL(); url != "" {
		lines = append(lines, versionStyle.Render("▶ "+url))
	}
	lines = append(lines, m.state.Guide.Text(), "", mutedStyle.Render("1-3 or ←/→ switch • esc close"))
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) creditsView() string {
	lines := []string{
		labelStyle.Render("Credits"),
		"",
		"BlueprintLabs is a blueprint pool website for Call of Duty weapons.",
		"All data is sourced from community contributions.",
		"",
	}
	for _, c := range view.Credits() {
		lines = append(lines, labelStyle.Render(c.Role+":")+" "+c.Name)
	}
	lines = append(lines, "", mutedStyle.Render("esc close"))
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
