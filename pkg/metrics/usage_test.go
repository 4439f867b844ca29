package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTokenUsage(t *testing.T) {
	require.Nil(t, NewTokenUsage(0, 0, 0))
	require.Equal(t, &TokenUsage{PromptTokens: 150, CompletionTokens: 40, TotalTokens: 190}, NewTokenUsage(150, 40, 190))
	require.Equal(t, 190, NewTokenUsage(150, 40, 0).TotalTokens)
}
