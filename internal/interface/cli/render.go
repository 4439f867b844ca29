// Package cli renders analyses for the terminal.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yanqian/passage-analyzer/internal/domain/analyzer"
)

var (
	colorTitle   = lipgloss.Color("#4ecdc4")
	colorMuted   = lipgloss.Color("#666666")
	colorSuccess = lipgloss.Color("#a8e6cf")
	colorInfo    = lipgloss.Color("#a8dadc")
	colorError   = lipgloss.Color("#FF6B6B")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorTitle).MarginBottom(1)
	headingStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	rawStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 1)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(colorSuccess).PaddingLeft(1)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(colorInfo).PaddingLeft(1)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorError)
)

const wrapWidth = 78

// Renderer writes passages and analyses to a terminal stream.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a renderer on out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Passage prints the fixed passage with its statistics.
func (r *Renderer) Passage(info analyzer.PassageInfo) error {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Book Passage Analyzer (Groq Edition)"))
	b.WriteString("\n")
	b.WriteString(rawStyle.Width(wrapWidth).Render(strings.TrimSpace(info.Text)))
	b.WriteString("\n")
	stats := fmt.Sprintf("%d words", info.Words)
	if info.EstimatedTokens > 0 {
		stats += fmt.Sprintf(", ~%d tokens", info.EstimatedTokens)
	}
	b.WriteString(mutedStyle.Render(stats))
	b.WriteString("\n")
	_, err := io.WriteString(r.out, b.String())
	return err
}

// Analysis prints the word count followed by either the result or the error.
// Emotion and summary appear only when the reply was structured.
func (r *Renderer) Analysis(wordCount int, resp *analyzer.Response, analyzeErr error) error {
	var b strings.Builder
	b.WriteString(headingStyle.Render("1. Total number of words"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%d words\n\n", wordCount)

	if analyzeErr != nil {
		b.WriteString(errorStyle.Render("Error from Groq API: " + analyzeErr.Error()))
		b.WriteString("\n")
		_, err := io.WriteString(r.out, b.String())
		return err
	}

	b.WriteString(headingStyle.Render("Result from Groq"))
	b.WriteString("\n")
	b.WriteString(rawStyle.Width(wrapWidth).Render(resp.Raw))
	b.WriteString("\n")

	if resp.Result != nil {
		b.WriteString("\n")
		b.WriteString(headingStyle.Render("2. Predominant emotion"))
		b.WriteString("\n")
		b.WriteString(successStyle.Render("Emotion: " + resp.Result.Emotion))
		b.WriteString("\n\n")
		b.WriteString(headingStyle.Render("3. Summary (2-3 sentences)"))
		b.WriteString("\n")
		b.WriteString(infoStyle.Width(wrapWidth).Render("Summary: " + resp.Result.Summary))
		b.WriteString("\n")
	}
	if resp.TokenUsage != nil {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("tokens: %d prompt / %d completion, %d ms", resp.TokenUsage.PromptTokens, resp.TokenUsage.CompletionTokens, resp.DurationMs)))
		b.WriteString("\n")
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}
