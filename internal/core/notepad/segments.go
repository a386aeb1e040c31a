package notepad

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Segment is a run of text sharing one combination of styles.
type Segment struct {
	Text   string
	Bold   bool
	Italic bool
}

// Segments splits the buffer at every style boundary, in text order.
func (doc *Document) Segments() []Segment {
	doc.mu.Lock()
	defer doc.mu.Unlock()

	if len(doc.text) == 0 {
		return nil
	}
	cuts := map[int]bool{0: true, len(doc.text): true}
	for _, r := range doc.ranges {
		cuts[r.Start] = true
		cuts[r.End] = true
	}
	points := make([]int, 0, len(cuts))
	for p := range cuts {
		if p >= 0 && p <= len(doc.text) {
			points = append(points, p)
		}
	}
	sort.Ints(points)

	var out []Segment
	for i := 0; i+1 < len(points); i++ {
		start, end := points[i], points[i+1]
		if start == end {
			continue
		}
		seg := Segment{
			Text:   string(doc.text[start:end]),
			Bold:   doc.coversLocked(Bold, start),
			Italic: doc.coversLocked(Italic, start),
		}
		if n := len(out); n > 0 && out[n-1].Bold == seg.Bold && out[n-1].Italic == seg.Italic {
			out[n-1].Text += seg.Text
			continue
		}
		out = append(out, seg)
	}
	return out
}

// Stats describes the buffer for the status line.
type Stats struct {
	Characters int
	Words      int
	Lines      int
}

func (stats Stats) String() string {
	return fmt.Sprintf("Characters: %d  Words: %d  Lines: %d", stats.Characters, stats.Words, stats.Lines)
}

// Count measures text in user-perceived characters.
func Count(text string) Stats {
	if text == "" {
		return Stats{}
	}
	return Stats{
		Characters: uniseg.GraphemeClusterCount(text),
		Words:      len(strings.FieldsFunc(text, unicode.IsSpace)),
		Lines:      strings.Count(text, "\n") + 1,
	}
}
