// Package passage holds the fixed text under analysis and its local statistics.
package passage

import "strings"

// Text is the hardcoded book passage. It never changes at runtime.
const Text = `
When we strive to become better than we are, everything around us becomes better too.
The boy remembered the crystal merchant. He had once said that he always wanted to
go to Mecca, but he was never able to. He said that he was afraid that, when he had
achieved his dream, he would have no reason to go on living. The boy told himself that
he would never be like the crystal merchant, and that someday he would go back to his
sheep. He knew that it was not love that would keep him from traveling, because he had
already known love, and had left it behind. It had not hurt him then, and it would not
hurt him now.
`

// TokenCounter estimates how many model tokens a text occupies.
type TokenCounter interface {
	Count(text string) int
}

// Stats describes a passage without contacting the provider.
type Stats struct {
	Words           int `json:"wordCount"`
	EstimatedTokens int `json:"estimatedTokens,omitempty"`
}

// WordCount returns the number of whitespace-delimited tokens in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Describe computes Stats; the token estimate is skipped when counter is nil.
func Describe(text string, counter TokenCounter) Stats {
	stats := Stats{Words: WordCount(text)}
	if counter != nil {
		stats.EstimatedTokens = counter.Count(text)
	}
	return stats
}
