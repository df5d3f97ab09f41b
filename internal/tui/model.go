// Package tui is a terminal rendition of the site's chat widget. It drives a
// local chat.Session and renders its transcript with bubbletea.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"safik-ai/site/internal/chat"
)

// maxSuggestionKeys is the number of suggestions reachable with the digit keys.
const maxSuggestionKeys = 9

const (
	headerHeight = 2
	inputHeight  = 2
	typingHeight = 1
)

// replyMsg carries a settled reply back into the update loop.
type replyMsg struct {
	reply chat.Message
}

// Model is the bubbletea model of the chat widget.
type Model struct {
	ctx         context.Context
	session     *chat.Session
	suggestions []string

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer markdownRenderer
	styles   styles

	state  chat.State
	width  int
	height int
}

// New creates a model over session. suggestions are offered under the
// transcript and sent with the keys 1 to 9 while the input is empty.
func New(ctx context.Context, session *chat.Session, suggestions []string) Model {
	st := defaultStyles()

	ti := textinput.New()
	ti.Placeholder = "Ask about our AI services... (Enter to send)"
	ti.Prompt = "› "
	ti.CharLimit = 500
	ti.Width = 80
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = st.typing

	m := Model{
		ctx:         ctx,
		session:     session,
		suggestions: suggestions,
		input:       ti,
		viewport:    viewport.New(80, 20),
		spinner:     sp,
		renderer:    newMarkdownRenderer(76),
		styles:      st,
		width:       80,
		height:      24,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		m.renderer = newMarkdownRenderer(msg.Width - 4)
		m.refresh()
		return m, nil

	case replyMsg:
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if !m.state.Pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyCtrlL:
		m.session.Clear()
		m.refresh()
		return m, nil
	case tea.KeyEnter:
		return m.submit(m.input.Value())
	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if text, ok := m.suggestionFor(msg); ok {
		return m.submit(text)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.state.Draft {
		m.session.UpdateDraft(m.input.Value())
		m.refresh()
	}
	return m, cmd
}

// suggestionFor maps a digit key to a suggestion while the input is empty.
func (m Model) suggestionFor(msg tea.KeyMsg) (string, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 || m.input.Value() != "" {
		return "", false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return "", false
	}
	idx := int(r - '1')
	if idx >= len(m.suggestions) {
		return "", false
	}
	return m.suggestions[idx], true
}

func (m Model) submit(text string) (tea.Model, tea.Cmd) {
	done, ok := m.session.Submit(m.ctx, text)
	if !ok {
		return m, nil
	}
	m.input.Reset()
	m.refresh()
	return m, tea.Batch(m.spinner.Tick, waitForReply(done))
}

func waitForReply(done <-chan chat.Message) tea.Cmd {
	return func() tea.Msg {
		return replyMsg{reply: <-done}
	}
}

// refresh pulls a fresh snapshot from the session and redraws the transcript.
func (m *Model) refresh() {
	m.state = m.session.State()
	m.resize()
	m.viewport.SetContent(renderTranscript(m.state, m.viewport.Width, m.renderer, m.styles))
	m.viewport.GotoBottom()
}

func (m *Model) resize() {
	suggestions := renderSuggestions(m.suggestions, m.width, m.styles)
	h := m.height - headerHeight - inputHeight - typingHeight - lipgloss.Height(suggestions)
	if h < 3 {
		h = 3
	}
	m.viewport.Width = m.width
	m.viewport.Height = h
}

// State returns the snapshot the model last rendered.
func (m Model) State() chat.State {
	return m.state
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.header.Render("AI-Powered Assistant"))
	b.WriteString("  ")
	b.WriteString(m.styles.status.Render("● AI Assistant Online"))
	b.WriteString("  ")
	b.WriteString(m.styles.hint.Render("ctrl+l clear · esc quit"))
	b.WriteString("\n\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.state.Pending {
		b.WriteString(m.styles.typing.Render(m.spinner.View() + " Safik AI is typing..."))
	}
	b.WriteString("\n")

	if s := renderSuggestions(m.suggestions, m.width, m.styles); s != "" {
		b.WriteString(s)
		b.WriteString("\n")
	}

	b.WriteString(m.styles.inputFrame.Width(m.width).Render(m.input.View()))
	return b.String()
}

// Run starts the chat widget in the terminal's alternate screen and blocks
// until the user quits or ctx is done.
func Run(ctx context.Context, session *chat.Session, suggestions []string) error {
	p := tea.NewProgram(New(ctx, session, suggestions), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
