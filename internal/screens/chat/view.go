package chat

import (
	"path/filepath"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/doubtbox/internal/ui/theme"
)

func (c *ChatScreen) View(width, height int) string {
	if c.picker != nil {
		return c.renderSubjectPicker(width)
	}

	var b strings.Builder

	inputHeight := 4
	transcriptHeight := height - inputHeight
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}

	b.WriteString(c.renderTranscript(width, transcriptHeight))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")

	if c.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + c.errMsg))
		b.WriteString("\n")
	}

	if c.loading {
		b.WriteString("  " + c.thinking.View())
		return b.String()
	}

	if c.pendingImage != nil {
		b.WriteString(theme.Attachment.Render("  attached: " + filepath.Base(c.pendingPath)))
		b.WriteString("\n")
	}

	prompt := "  > "
	if c.attachMode {
		prompt = "  image path > "
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(prompt))
	b.WriteString(c.input.View())

	return b.String()
}

// renderTranscript renders the last messages that fit the given height,
// newest at the bottom.
func (c *ChatScreen) renderTranscript(width, height int) string {
	if len(c.transcript) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Ask anything. Attach a photo of a problem with Ctrl+O.")
	}

	wrap := lipgloss.NewStyle().Width(max(width-6, 20))

	var blocks []string
	for _, e := range c.transcript {
		var label string
		switch e.Role {
		case roleUser:
			label = theme.UserLabel.Render("You")
		case roleTutor:
			label = theme.TutorLabel.Render("Tutor")
		}

		text := e.Text
		if e.HadImage {
			if text != "" {
				text += "\n"
			}
			text += theme.Attachment.Render("[image]")
		}

		blocks = append(blocks, label+"\n"+wrap.Render(text))
	}

	full := strings.Join(blocks, "\n\n")

	// Trim from the top so the newest lines stay visible.
	lines := strings.Split(full, "\n")
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	body := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		PaddingLeft(2).
		Render(body)
}

func (c *ChatScreen) renderSubjectPicker(width int) string {
	title := theme.Title.Width(width).Render("Choose a subject")

	return title + "\n\n" + c.picker.View()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
