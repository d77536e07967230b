// Package tui hosts the comment view controller in a terminal UI.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/evcraddock/portfolio/internal/lang"
	"github.com/evcraddock/portfolio/internal/view"
)

// Controls is the terminal's page input and language selector.
// It is only mutated from Update.
type Controls struct {
	page    int
	langs   []string
	langIdx int
}

// NewControls starts on page with the given language choices. An empty
// code ("all languages") is always offered first, and selected is
// added when it is not one of langs.
func NewControls(page int, langs []string, selected string) *Controls {
	choices := []string{""}
	for _, l := range langs {
		if l != "" {
			choices = append(choices, l)
		}
	}
	c := &Controls{page: page, langs: choices}
	c.langIdx = slices.Index(choices, selected)
	if c.langIdx < 0 {
		c.langs = append(c.langs, selected)
		c.langIdx = len(c.langs) - 1
	}
	if c.page < 1 {
		c.page = 1
	}
	return c
}

// Page implements view.Controls.
func (c *Controls) Page() (int, error) { return c.page, nil }

// Language implements view.Controls.
func (c *Controls) Language() (string, error) { return c.langs[c.langIdx], nil }

func (c *Controls) nextLanguage() {
	c.langIdx = (c.langIdx + 1) % len(c.langs)
	c.page = 1
}

type loadedMsg struct {
	res *view.Result
	err error
}

// Model is the Bubble Tea model for the comment browser.
type Model struct {
	ctrl     *view.Controller
	controls *Controls
	keys     keyMap
	quote    string

	cursor  int
	total   int
	loading bool
	loaded  bool
	width   int
}

// New creates the model. ctrl must have been built with controls.
func New(ctrl *view.Controller, controls *Controls, quote string) Model {
	return Model{
		ctrl:     ctrl,
		controls: controls,
		keys:     defaultKeyMap(),
		quote:    quote,
	}
}

// Init starts the first load.
func (m Model) Init() tea.Cmd {
	return m.load()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case loadedMsg:
		return m.handleLoaded(msg), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleLoaded(msg loadedMsg) Model {
	m.loading = false
	if msg.err != nil {
		slog.Debug("loading comments failed", "error", msg.err)
		return m
	}
	m.ctrl.Render(msg.res)
	m.loaded = true
	m.total = len(msg.res.Comments)
	m.cursor = clamp(m.cursor, m.ctrl.List().Len())
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.ctrl.List().Len()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.NextPage):
		m.controls.page++
		m.cursor = 0
		cmd := m.load()
		return m, cmd
	case key.Matches(msg, m.keys.PrevPage):
		if m.controls.page > 1 {
			m.controls.page--
			m.cursor = 0
			cmd := m.load()
			return m, cmd
		}
	case key.Matches(msg, m.keys.Language):
		m.controls.nextLanguage()
		m.cursor = 0
		cmd := m.load()
		return m, cmd
	case key.Matches(msg, m.keys.Reload):
		cmd := m.load()
		return m, cmd
	case key.Matches(msg, m.keys.Delete):
		elems := m.ctrl.List().Elements()
		if m.cursor < len(elems) {
			elems[m.cursor].Delete()
			m.total--
			m.cursor = clamp(m.cursor, m.ctrl.List().Len())
		}
	}
	return m, nil
}

// load reads the controls on the update loop and fetches in a command.
func (m *Model) load() tea.Cmd {
	state, err := view.ReadState(m.controls)
	if err != nil {
		slog.Debug("reading controls", "error", err)
		return nil
	}
	m.loading = true
	ctrl := m.ctrl
	return func() tea.Msg {
		res, err := ctrl.FetchState(context.Background(), state)
		return loadedMsg{res: res, err: err}
	}
}

// View renders the screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Comments"))
	b.WriteString("\n")
	if m.quote != "" {
		b.WriteString(quoteStyle.Render(m.quote))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	code, _ := m.controls.Language()
	status := fmt.Sprintf("Page %d", m.controls.page)
	if pages := view.PageCount(m.total, m.ctrl.PageSize()); pages > 0 {
		status += fmt.Sprintf(" of %d", pages)
	}
	status += " · " + lang.Name(code)
	if m.loading {
		status += " · loading…"
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n\n")

	elems := m.ctrl.List().Elements()
	if len(elems) == 0 {
		if m.loaded {
			b.WriteString(emptyStyle.Render("  No comments on this page."))
		}
		b.WriteString("\n")
	}
	for i, e := range elems {
		line := fmt.Sprintf("%s  %s", e.Label, renderSentiment(e.Comment.Sentiment))
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(itemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(renderHelp(m.keys)))
	return b.String()
}

func renderSentiment(v float64) string {
	s := fmt.Sprintf("%+.2f", v)
	switch {
	case v > 0.25:
		return positiveStyle.Render(s)
	case v < -0.25:
		return negativeStyle.Render(s)
	default:
		return neutralStyle.Render(s)
	}
}

func renderHelp(k keyMap) string {
	parts := make([]string, 0, len(k.help()))
	for _, b := range k.help() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

func clamp(cursor, n int) int {
	if n == 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

// Run starts the program and blocks until the user quits. Pending
// deletes are drained before returning.
func Run(ctrl *view.Controller, controls *Controls, quote string) error {
	p := tea.NewProgram(New(ctrl, controls, quote), tea.WithAltScreen())
	_, err := p.Run()
	ctrl.Wait()
	if err != nil {
		return fmt.Errorf("running terminal view: %w", err)
	}
	return nil
}
