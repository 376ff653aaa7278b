package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"farm-market/chatpoll"
	"farm-market/models"
)

// MessagesMsg delivers a refreshed, timestamp-sorted message list from the
// poller into the view.
type MessagesMsg []models.Message

type sendResultMsg struct {
	err error
}

// ChatModel is one open conversation view. The poller owns the refresh cycle;
// the model only renders the latest list it was handed and sends messages.
type ChatModel struct {
	conversationID int
	userID         int
	poller         *chatpoll.Poller

	messages []models.Message
	input    textinput.Model
	status   string
	width    int
	height   int
}

func NewChatModel(conversationID, userID int, poller *chatpoll.Poller) ChatModel {
	input := textinput.New()
	input.Placeholder = "Type your message..."
	input.Focus()
	input.CharLimit = 500

	return ChatModel{
		conversationID: conversationID,
		userID:         userID,
		poller:         poller,
		input:          input,
		width:          80,
		height:         24,
	}
}

func (m ChatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case MessagesMsg:
		m.messages = msg
		return m, nil

	case sendResultMsg:
		if msg.err != nil {
			// Keep the typed content so the user can retry.
			m.status = warnStyle.Render("Send failed: " + msg.err.Error())
			return m, nil
		}
		m.input.Reset()
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			content := strings.TrimSpace(m.input.Value())
			if content == "" {
				return m, nil
			}
			return m, sendCmd(m.poller, content)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func sendCmd(poller *chatpoll.Poller, content string) tea.Cmd {
	return func() tea.Msg {
		return sendResultMsg{err: poller.Send(context.Background(), content)}
	}
}

func (m ChatModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Conversation #%d", m.conversationID)))
	b.WriteString("\n\n")

	// Keep the most recent messages that fit above the input line.
	visible := m.messages
	budget := m.height - 6
	if budget > 0 && len(visible) > budget {
		visible = visible[len(visible)-budget:]
	}

	if len(visible) == 0 {
		b.WriteString(dimStyle.Render("  No messages yet. Say hello!"))
		b.WriteString("\n")
	}
	for _, msg := range visible {
		bubble := theirMessageStyle.Render(msg.Content)
		align := lipgloss.Left
		if msg.SenderID == m.userID {
			bubble = myMessageStyle.Render(msg.Content)
			align = lipgloss.Right
		}
		b.WriteString(lipgloss.PlaceHorizontal(m.width, align, bubble))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter: send • esc: close"))
	return b.String()
}
