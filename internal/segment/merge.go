package segment

import (
	"cmp"
	"slices"
	"strings"
)

const (
	DefaultMinDuration        = 1.0
	DefaultDuplicateThreshold = 0.8
)

// SortByStart orders segments by start time, keeping the input order for equal starts.
func SortByStart(segments []Segment) {
	slices.SortStableFunc(segments, func(a, b Segment) int {
		return cmp.Compare(a.Start, b.Start)
	})
}

// MergeShort folds every segment shorter than minDuration into the segment before it.
// The first segment is kept as is even when short.
func MergeShort(segments []Segment, minDuration float64) []Segment {
	if len(segments) == 0 {
		return segments
	}

	merged := make([]Segment, 0, len(segments))
	for _, seg := range segments {
		if seg.Duration() < minDuration && len(merged) > 0 {
			last := &merged[len(merged)-1]
			last.Text = joinText(last.Text, seg.Text)
			last.End = max(last.End, seg.End)
			continue
		}
		merged = append(merged, seg)
	}
	return merged
}

// RemoveDuplicates drops segments whose text is near-identical to the last kept segment.
// Only adjacent repeats are caught, which is where chunk overlap puts them.
func RemoveDuplicates(segments []Segment, threshold float64) []Segment {
	if len(segments) == 0 {
		return segments
	}

	kept := make([]Segment, 0, len(segments))
	kept = append(kept, segments[0])
	for _, seg := range segments[1:] {
		if Similarity(kept[len(kept)-1].Text, seg.Text) > threshold {
			continue
		}
		kept = append(kept, seg)
	}
	return kept
}

// Merge runs MergeShort followed by RemoveDuplicates.
func Merge(segments []Segment, minDuration, threshold float64) []Segment {
	return RemoveDuplicates(MergeShort(segments, minDuration), threshold)
}

// Similarity is the share of distinct characters two texts have in common,
// |A ∩ B| / max(|A|, |B|) over case-folded, trimmed character sets.
// Empty texts are never similar.
func Similarity(a, b string) float64 {
	setA := charSet(a)
	setB := charSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	common := 0
	for r := range setA {
		if _, ok := setB[r]; ok {
			common++
		}
	}
	return float64(common) / float64(max(len(setA), len(setB)))
}

func charSet(s string) map[rune]struct{} {
	s = strings.TrimSpace(strings.ToLower(s))
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}

func joinText(a, b string) string {
	return a + " " + b
}
