package aioptimizer

import (
	"errors"
	"strings"
)

const summaryMarker = "SUMMARY:"

// parseSummary extracts the body after the SUMMARY marker. A reply without
// the marker is taken verbatim.
func parseSummary(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", errors.New("empty llm response")
	}
	if idx := findMarker(content, summaryMarker); idx != -1 {
		content = strings.TrimSpace(content[idx+len(summaryMarker):])
	}
	if content == "" {
		return "", errors.New("summary section empty")
	}
	return content, nil
}

// findMarker returns the byte offset in content of the first case-insensitive
// occurrence of marker, or -1.
func findMarker(content, marker string) int {
	for i := range content {
		if i+len(marker) > len(content) {
			break
		}
		if strings.EqualFold(content[i:i+len(marker)], marker) {
			return i
		}
	}
	return -1
}

// truncateWords keeps at most limit words, joined by single spaces.
func truncateWords(text string, limit int) string {
	words := strings.Fields(text)
	if limit <= 0 || len(words) <= limit {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:limit], " ")
}
