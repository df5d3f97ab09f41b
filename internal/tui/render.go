package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"safik-ai/site/internal/chat"
)

// markdownRenderer is satisfied by *glamour.TermRenderer.
type markdownRenderer interface {
	Render(in string) (string, error)
}

func newMarkdownRenderer(width int) markdownRenderer {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	return r
}

// renderTranscript draws every message of state for a viewport of the given
// width. Bot text goes through md when it is non-nil; user text is shown
// verbatim.
func renderTranscript(state chat.State, width int, md markdownRenderer, st styles) string {
	var b strings.Builder
	for i, msg := range state.Messages {
		if i > 0 {
			b.WriteString("\n")
		}
		switch msg.Sender {
		case chat.SenderUser:
			b.WriteString(st.userLabel.Render("You"))
			b.WriteString("\n")
			b.WriteString(st.userText.Render(lipgloss.NewStyle().Width(max(width-2, 1)).Render(msg.Text)))
			b.WriteString("\n")
		default:
			b.WriteString(st.botLabel.Render("Safik AI"))
			b.WriteString("\n")
			b.WriteString(renderBotText(msg.Text, md))
			if msg.HasSources() {
				b.WriteString(renderSources(msg.Sources, st))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

func renderBotText(text string, md markdownRenderer) string {
	if md != nil {
		if out, err := md.Render(text); err == nil {
			return strings.TrimLeft(out, "\n")
		}
	}
	return text + "\n"
}

func renderSources(sources []string, st styles) string {
	tags := make([]string, len(sources))
	for i, s := range sources {
		tags[i] = st.sourceTag.Render(s)
	}
	return st.sources.Render("Sources: ") + strings.Join(tags, " ")
}

// renderSuggestions lists the suggested questions with the key that sends
// each, packing the pills into rows no wider than width.
func renderSuggestions(suggestions []string, width int, st styles) string {
	if len(suggestions) == 0 {
		return ""
	}
	var rows []string
	var row []string
	rowWidth := 0
	for i, s := range suggestions {
		if i >= maxSuggestionKeys {
			break
		}
		pill := st.pill.Render(fmt.Sprintf("%d %s", i+1, s))
		w := lipgloss.Width(pill)
		if len(row) > 0 && rowWidth+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, pill)
		rowWidth += w
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	return st.pillTitle.Render("Suggested questions:") + "\n" + lipgloss.JoinVertical(lipgloss.Left, rows...)
}
