package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"verdant/internal/types"
)

// Sender is the chat backend: it takes the user's question and returns
// the botanist's answer.
type Sender interface {
	Send(ctx context.Context, message string) (string, error)
	Record() *types.Identification
}

type replyMsg struct {
	text string
	err  error
}

// ChatModel is the interactive conversation view for one plant.
type ChatModel struct {
	sender   Sender
	ctx      context.Context
	viewport viewport.Model
	input    textinput.Model
	spin     spinner.Model
	renderer *glamour.TermRenderer

	waiting bool
	err     error
	ready   bool
	width   int
}

// NewChatModel builds the chat view around a session.
func NewChatModel(ctx context.Context, sender Sender) ChatModel {
	input := textinput.New()
	input.Placeholder = "Ask about your plant..."
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = GoodStyle

	return ChatModel{
		sender: sender,
		ctx:    ctx,
		input:  input,
		spin:   spin,
	}
}

func (m ChatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-3)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 3
		}
		m.renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(msg.Width-4),
		)
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.waiting {
				return m, nil
			}
			question := strings.TrimSpace(m.input.Value())
			if question == "" {
				return m, nil
			}
			m.input.Reset()
			m.waiting = true
			m.err = nil
			return m, tea.Batch(m.spin.Tick, m.ask(question))
		}

	case replyMsg:
		m.waiting = false
		m.err = msg.err
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoBottom()
		return m, nil

	case spinner.TickMsg:
		if m.waiting {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// ask sends the question off-thread; the session commits the exchange
// to the record before the reply message arrives.
func (m ChatModel) ask(question string) tea.Cmd {
	return func() tea.Msg {
		reply, err := m.sender.Send(m.ctx, question)
		return replyMsg{text: reply, err: err}
	}
}

func (m ChatModel) renderHistory() string {
	rec := m.sender.Record()
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Chatting about "+rec.DisplayName()) + "  " +
		ScoreStyle(rec.HealthScore).Render(fmt.Sprintf("health %d/100", rec.HealthScore)) + "\n\n")

	for _, turn := range rec.ChatHistory {
		if turn.Role == types.RoleUser {
			b.WriteString(UserBubbleStyle.Render("You: ") + turn.Text + "\n")
			continue
		}
		b.WriteString(BotBubbleStyle.Render("Botanist:") + "\n" + m.renderMarkdown(turn.Text) + "\n")
	}
	return b.String()
}

func (m ChatModel) renderMarkdown(text string) string {
	if m.renderer == nil {
		return text
	}
	out, err := m.renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

func (m ChatModel) View() string {
	if !m.ready {
		return "loading..."
	}

	status := ""
	if m.waiting {
		status = m.spin.View() + " thinking..."
	} else if m.err != nil {
		status = DangerStyle.Render("error: " + m.err.Error())
	}

	return m.viewport.View() + "\n" + m.input.View() + "\n" + status
}
