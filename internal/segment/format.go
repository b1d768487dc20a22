package segment

import (
	"fmt"
	"strings"
)

// Format renders segments one per line as "[MM:SS] text".
func Format(segments []Segment) string {
	lines := make([]string, 0, len(segments))
	for _, seg := range segments {
		start := max(seg.Start, 0)
		minutes := int(start) / 60
		seconds := int(start) % 60
		lines = append(lines, fmt.Sprintf("[%02d:%02d] %s", minutes, seconds, strings.TrimSpace(seg.Text)))
	}
	return strings.Join(lines, "\n")
}

// JoinText concatenates segment texts with single spaces.
func JoinText(segments []Segment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if text := strings.TrimSpace(seg.Text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}
