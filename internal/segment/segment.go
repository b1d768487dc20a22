// Package segment repairs the timeline stitched together from overlapping transcription chunks.
package segment

// Segment is a timed span of transcript text, in seconds.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Duration returns End - Start.
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

// Shift returns s moved later by offset seconds.
func (s Segment) Shift(offset float64) Segment {
	s.Start += offset
	s.End += offset
	return s
}
