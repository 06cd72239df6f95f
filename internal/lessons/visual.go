package lessons

import (
	"errors"
	"regexp"
	"strings"
)

// VisualMarkerPrefix opens a visual-cue marker. A marker is written as
// "[VISUAL: <description>]" and may not contain "]".
const VisualMarkerPrefix = "[VISUAL:"

var visualMarkerRe = regexp.MustCompile(`\[VISUAL:\s*([^\]]*)\]`)

// SegmentKind distinguishes narration text from visual cues.
type SegmentKind int

const (
	SegmentText SegmentKind = iota
	SegmentVisual
)

// Segment is one piece of an explanation split on visual markers.
type Segment struct {
	Kind SegmentKind
	Text string
}

// SplitVisualCues splits text into alternating text and visual segments in
// order of appearance. Visual segments carry the trimmed description.
// Empty text segments are dropped.
func SplitVisualCues(text string) []Segment {
	var out []Segment
	last := 0
	for _, loc := range visualMarkerRe.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] > last {
			out = append(out, Segment{Kind: SegmentText, Text: text[last:loc[0]]})
		}
		out = append(out, Segment{Kind: SegmentVisual, Text: strings.TrimSpace(text[loc[2]:loc[3]])})
		last = loc[1]
	}
	if last < len(text) {
		out = append(out, Segment{Kind: SegmentText, Text: text[last:]})
	}
	return out
}

// StripVisualCues removes every marker, leaving only the spoken text.
func StripVisualCues(text string) string {
	stripped := visualMarkerRe.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(stripped), " ")
}

// VisualCues returns the descriptions of every marker in text.
func VisualCues(text string) []string {
	var out []string
	for _, m := range visualMarkerRe.FindAllStringSubmatch(text, -1) {
		out = append(out, strings.TrimSpace(m[1]))
	}
	return out
}

// checkVisualMarkers rejects text with an opened but unclosed marker.
func checkVisualMarkers(text string) error {
	if strings.Count(text, VisualMarkerPrefix) != len(visualMarkerRe.FindAllStringIndex(text, -1)) {
		return errors.New("unbalanced [VISUAL: ...] marker")
	}
	return nil
}

// visualMarker formats description as a marker, replacing characters that
// would break the grammar.
func visualMarker(description string) string {
	description = strings.NewReplacer("[", "(", "]", ")").Replace(description)
	return VisualMarkerPrefix + " " + strings.TrimSpace(description) + "]"
}
