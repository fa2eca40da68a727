package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NoteInputModel provides a modal for entering authoring notes
type NoteInputModel struct {
	textarea textarea.Model
	itemID   string
	itemName string
	width    int

	// Result
	submitted bool
	cancelled bool
	text      string
}

// NewNoteInputModel creates a new note input modal
func NewNoteInputModel(itemID, itemName string) NoteInputModel {
	ta := textarea.New()
	ta.Placeholder = "Enter your note here..."
	ta.Focus()
	ta.CharLimit = 1000
	ta.SetWidth(50)
	ta.SetHeight(5)

	return NoteInputModel{
		textarea: ta,
		itemID:   itemID,
		itemName: itemName,
	}
}

// Init implements tea.Model
func (m NoteInputModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model
func (m NoteInputModel) Update(msg tea.Msg) (NoteInputModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.cancelled = true
			return m, nil
		case "ctrl+enter", "ctrl+s", "ctrl+j":
			// ctrl+j is alternate for terminals that don't support ctrl+enter
			m.submitted = true
			m.text = m.textarea.Value()
			return m, nil
		}
	}

	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m NoteInputModel) View() string {
	var b strings.Builder

	width := 60
	if m.width > 0 && m.width < 70 {
		width = m.width - 10
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Width(width).
		Align(lipgloss.Center)
	b.WriteString(titleStyle.Render("Add Note for " + m.itemName))
	b.WriteString("\n\n")

	b.WriteString(m.textarea.View())
	b.WriteString("\n\n")

	b.WriteString(HintStyle.Render("[Ctrl+Enter/Ctrl+J] Save  [Esc] Cancel"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBgHighlight).
		Padding(1, 2).
		Width(width)

	return boxStyle.Render(b.String())
}

// SetSize sets the modal dimensions
func (m *NoteInputModel) SetSize(width, height int) {
	m.width = width

	taWidth := width - 20
	if taWidth < 30 {
		taWidth = 30
	}
	if taWidth > 60 {
		taWidth = 60
	}
	m.textarea.SetWidth(taWidth)
}

// IsSubmitted returns true if the user submitted the note
func (m NoteInputModel) IsSubmitted() bool {
	return m.submitted
}

// IsCancelled returns true if the user cancelled
func (m NoteInputModel) IsCancelled() bool {
	return m.cancelled
}

// Text returns the entered note text
func (m NoteInputModel) Text() string {
	return m.text
}

// ItemID returns the item being noted
func (m NoteInputModel) ItemID() string {
	return m.itemID
}

// Reset prepares the modal for reuse
func (m *NoteInputModel) Reset() {
	m.submitted = false
	m.cancelled = false
	m.text = ""
	m.textarea.Reset()
}
