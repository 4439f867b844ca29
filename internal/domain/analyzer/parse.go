package analyzer

import "strings"

const (
	emotionMarker = "Emotion:"
	summaryMarker = "Summary:"
)

// Parse extracts the emotion and summary from a free-text reply. The second
// return value is false when the reply does not contain each marker exactly
// once with Emotion before Summary, or when either field is empty. A false
// result is an expected outcome, not an error.
func Parse(raw string) (Result, bool) {
	content := strings.TrimSpace(raw)
	if content == "" {
		return Result{}, false
	}

	emotionIdx, ok := findSingleMarker(content, emotionMarker)
	if !ok {
		return Result{}, false
	}
	summaryIdx, ok := findSingleMarker(content, summaryMarker)
	if !ok {
		return Result{}, false
	}
	emotionEnd := emotionIdx + len(emotionMarker)
	if summaryIdx < emotionEnd {
		return Result{}, false
	}

	result := Result{
		Emotion: strings.TrimSpace(content[emotionEnd:summaryIdx]),
		Summary: strings.TrimSpace(content[summaryIdx+len(summaryMarker):]),
	}
	if result.Emotion == "" || result.Summary == "" {
		return Result{}, false
	}
	return result, true
}

// findSingleMarker locates marker by exact case. Lowercase words such as
// "emotion:" inside the summary text are ordinary prose, not markers.
func findSingleMarker(content, marker string) (int, bool) {
	idx := strings.Index(content, marker)
	if idx == -1 {
		return -1, false
	}
	if strings.Contains(content[idx+len(marker):], marker) {
		return -1, false
	}
	return idx, true
}
