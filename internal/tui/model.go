// Package tui implements a terminal interface that feeds the session on every key press
// and redraws the suggestions live.
package tui

import (
	"fmt"
	"strings"

	"github.com/bastiangx/sentserve/internal/utils"
	"github.com/bastiangx/sentserve/pkg/suggest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// Model is the bubbletea model around a single session.
type Model struct {
	session     suggest.Autocompleter
	suggestions []string
	recorded    string
	keystrokes  int
	err         error
}

// NewModel creates a TUI model over session.
func NewModel(session suggest.Autocompleter) *Model {
	return &Model{session: session}
}

// Init has nothing to schedule
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses; everything else is ignored
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		m.feed(m.session.Terminator())
	case tea.KeySpace:
		m.feed(' ')
	case tea.KeyRunes:
		for _, r := range keyMsg.Runes {
			m.feed(r)
		}
	}
	return m, nil
}

func (m *Model) feed(r rune) {
	pending := m.session.Buffer()
	results, err := m.session.Feed(r)
	if err != nil {
		m.err = err
		log.Debugf("Rejected key %s: %v", utils.DisplayRune(r), err)
		return
	}

	m.err = nil
	m.keystrokes++
	m.suggestions = results
	if r == m.session.Terminator() {
		m.recorded = pending
	}
}

// View renders the buffer, the suggestions and a status line
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleColor.Render("SentServe"))
	b.WriteString("\n\n> ")
	b.WriteString(bufferColor.Render(m.session.Buffer()))
	b.WriteString(cursorColor.Render("_"))
	b.WriteString("\n\n")

	if len(m.suggestions) == 0 {
		b.WriteString(dimmedColor.Render("  no suggestions"))
		b.WriteString("\n")
	}
	for i, sentence := range m.suggestions {
		freq, _ := m.session.Frequency(sentence)
		fmt.Fprintf(&b, "%2d. %s %s\n", i+1,
			sentenceColor.Render(sentence),
			frequencyColor.Render(fmt.Sprintf("(%s)", utils.FormatWithCommas(freq))))
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(errorColor.Render(m.err.Error()))
	case m.recorded != "":
		b.WriteString(successColor.Render(fmt.Sprintf("recorded %q", m.recorded)))
	}
	b.WriteString("\n")
	b.WriteString(dimmedColor.Render(fmt.Sprintf("[a-z/space]type  [enter/%c]submit  [esc]quit", m.session.Terminator())))
	b.WriteString("\n")
	return b.String()
}
