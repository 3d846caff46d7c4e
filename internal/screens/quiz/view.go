package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/doubtbox/internal/quiz"
	"github.com/abhisek/doubtbox/internal/ui/components"
	"github.com/abhisek/doubtbox/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	if q.engine.Phase() == quiz.PhaseCompleted {
		return q.renderResults(width, height)
	}
	return q.renderQuestion(width, height)
}

func (q *QuizScreen) renderQuestion(width, height int) string {
	index, total := q.engine.Progress()

	var b strings.Builder

	bar := components.NewProgressBar(
		fmt.Sprintf("  Question %d of %d", index+1, total),
		float64(index)/float64(total),
		false,
		min(width-4, 60),
	)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Width(width - 4).Render(q.picker.View()))
	b.WriteString("\n")

	hint := "Pick an option with Enter, then press N for the next question."
	if _, ok := q.engine.Pending(); ok {
		hint = "Press N to lock it in."
	}
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(hint))

	return b.String()
}

func (q *QuizScreen) renderResults(width, height int) string {
	score, _ := q.engine.Score()
	percent, _ := q.engine.Percent()
	_, total := q.engine.Progress()

	var b strings.Builder

	headline := fmt.Sprintf("You scored %d out of %d (%d%%)", score, total, percent)
	style := theme.Correct
	if score*2 < total {
		style = theme.Incorrect
	}
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(style.Render(headline)))
	b.WriteString("\n\n")

	for i := 0; i < total; i++ {
		b.WriteString(q.renderResultRow(i, width))
	}

	return b.String()
}

func (q *QuizScreen) renderResultRow(i, width int) string {
	question, ok := q.engine.Question(i)
	if !ok {
		return ""
	}
	answer, _ := q.engine.Answer(i)

	mark := theme.Incorrect.Render("✗")
	if q.engine.Correct(i) {
		mark = theme.Correct.Render("✓")
	}

	prefix := "  "
	lineStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if i == q.resultCursor {
		prefix = "▸ "
		lineStyle = lineStyle.Bold(true)
	}

	var b strings.Builder
	b.WriteString(prefix + mark + " " + lineStyle.Render(question.Question) + "\n")

	if i != q.resultCursor {
		return b.String()
	}

	detail := lipgloss.NewStyle().PaddingLeft(6).Width(max(width-8, 20))

	lines := "Your answer: " + answer
	if !q.engine.Correct(i) {
		lines += "\nCorrect answer: " + question.Answer
	}
	b.WriteString(detail.Foreground(theme.TextDim).Render(lines))
	b.WriteString("\n")

	switch {
	case q.explLoading[i]:
		b.WriteString(detail.Foreground(theme.TextDim).Italic(true).Render("Fetching explanation..."))
		b.WriteString("\n")
	case q.explErr[i] != "":
		b.WriteString(detail.Foreground(theme.Error).Render(q.explErr[i]))
		b.WriteString("\n")
	default:
		if text, ok := q.engine.CachedExplanation(i); ok {
			b.WriteString(detail.Foreground(theme.Secondary).Render(text))
			b.WriteString("\n")
		} else {
			b.WriteString(detail.Foreground(theme.TextDim).Italic(true).Render("Press E for an explanation."))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
