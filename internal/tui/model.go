// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tui is a terminal front-end for a search session: a topic field,
// one toggle per resource type, a search button, and the result cards.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dnemni/Resource-Scraper-Tool/internal/catalog"
	"github.com/Dnemni/Resource-Scraper-Tool/internal/session"
	"github.com/Dnemni/Resource-Scraper-Tool/pkg/types"
)

// catalogMsg carries the outcome of the startup catalog load.
type catalogMsg struct {
	types []types.ResourceType
	err   error
}

// searchDoneMsg signals that a submit finished.
type searchDoneMsg struct {
	err error
}

// Model is the Bubble Tea model for the search screen.
type Model struct {
	ctx    context.Context
	sess   *session.Session
	loader *catalog.Loader

	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap
	styles  *Styles

	// focus is 0 for the topic field, 1..n for the filters, n+1 for the button.
	focus int
	width int
}

// NewModel returns a model driving sess. The catalog is loaded through
// loader when the program starts.
func NewModel(ctx context.Context, sess *session.Session, loader *catalog.Loader) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter topic or course name"
	ti.CharLimit = 200
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:     ctx,
		sess:    sess,
		loader:  loader,
		input:   ti,
		spinner: sp,
		help:    help.New(),
		keys:    defaultKeyMap(),
		styles:  NewStyles(),
		width:   80,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadCatalog())
}

func (m Model) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		rt, err := m.loader.Load(m.ctx)
		return catalogMsg{types: rt, err: err}
	}
}

func (m Model) submit() tea.Cmd {
	return func() tea.Msg {
		return searchDoneMsg{err: m.sess.Submit(m.ctx)}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case catalogMsg:
		m.sess.ApplyCatalog(msg.types, msg.err)
		m.focus = min(m.focus, m.buttonIndex())
		return m, nil

	case searchDoneMsg:
		// Results and errors already live in the session; only redraw.
		return m, nil

	case spinner.TickMsg:
		if !m.sess.Snapshot().Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1)
	case key.Matches(msg, m.keys.Submit):
		return m.trySubmit()
	}

	if m.focus == 0 {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.sess.SetTopic(m.input.Value())
		return m, cmd
	}

	if m.focus <= m.filterCount() && key.Matches(msg, m.keys.Toggle) {
		st := m.sess.Snapshot()
		m.sess.Toggle(st.Catalog[m.focus-1].Value)
	}
	return m, nil
}

// trySubmit starts a search unless the button is disabled.
func (m Model) trySubmit() (tea.Model, tea.Cmd) {
	m.sess.SetTopic(m.input.Value())
	if !m.sess.Snapshot().CanSubmit() {
		return m, nil
	}
	return m, tea.Batch(m.submit(), m.spinner.Tick)
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	n := m.buttonIndex() + 1
	m.focus = ((m.focus+delta)%n + n) % n
	if m.focus == 0 {
		return m, m.input.Focus()
	}
	m.input.Blur()
	return m, nil
}

func (m Model) filterCount() int {
	return len(m.sess.Snapshot().Catalog)
}

func (m Model) buttonIndex() int {
	return m.filterCount() + 1
}

// View implements tea.Model.
func (m Model) View() string {
	st := m.sess.Snapshot()
	s := m.styles

	var b strings.Builder
	b.WriteString(s.Title.Render("Find Educational Resources"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString(s.Label.Render("Resource Types (Optional)"))
	b.WriteString("\n")
	if len(st.Catalog) == 0 {
		b.WriteString(s.Dim.Render("  none available"))
		b.WriteString("\n")
	}
	for i, rt := range st.Catalog {
		box := "[ ]"
		if st.IsSelected(rt.Value) {
			box = "[x]"
		}
		line := fmt.Sprintf("  %s %s", box, rt.Label)
		if m.focus == i+1 {
			line = s.Focused.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.buttonView(st))
	b.WriteString("\n")

	if st.Error != "" {
		b.WriteString("\n")
		b.WriteString(s.Error.Render(st.Error))
		b.WriteString("\n")
	}

	if h := st.Header(); h != "" {
		b.WriteString(s.Header.Render(h))
		b.WriteString("\n")
		for _, c := range st.Cards() {
			b.WriteString(m.cardView(c))
			b.WriteString("\n")
		}
	}

	b.WriteString(s.Help.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) buttonView(st session.State) string {
	if st.Loading {
		return m.styles.ButtonOff.Render(m.spinner.View() + " Searching...")
	}
	label := "Search Resources"
	if m.focus == m.buttonIndex() {
		label = "> " + label + " <"
	}
	if !st.CanSubmit() {
		return m.styles.ButtonOff.Render(label)
	}
	return m.styles.Button.Render(label)
}

func (m Model) cardView(c session.Card) string {
	s := m.styles
	top := lipgloss.JoinHorizontal(lipgloss.Center,
		s.Chip.Render(c.ResourceType), "  ",
		s.Stars.Render(session.Stars(c.Rating)))
	scores := s.Dim.Render(fmt.Sprintf("Credibility: %s  Relevance: %s", c.Credibility, c.Relevance))

	body := strings.Join([]string{
		s.CardTitle.Render(c.Title),
		top,
		c.Description,
		s.Link.Render(c.URL) + "  " + scores,
	}, "\n")

	width := m.width - 4
	if width < 20 {
		width = 20
	}
	return s.Card.Width(width).Render(body)
}

// Run starts the interactive program and blocks until the user quits.
func Run(ctx context.Context, sess *session.Session, loader *catalog.Loader) error {
	p := tea.NewProgram(NewModel(ctx, sess, loader), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
