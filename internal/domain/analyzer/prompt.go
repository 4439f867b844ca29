package analyzer

import "fmt"

const promptTemplate = `
You are a helpful AI language model.

Analyze the following book passage:
"""%s"""

Return:
1. The primary emotion conveyed (just the one word: joy, sadness, fear, etc.)
2. A 2-3 sentence summary of the passage.

Respond in this format:
Emotion: <emotion>
Summary: <summary>
`

// BuildPrompt embeds text in the instruction that fixes the reply format.
func BuildPrompt(text string) string {
	return fmt.Sprintf(promptTemplate, text)
}
