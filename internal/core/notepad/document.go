// Package notepad holds the notepad buffer: its text, the bold and italic
// ranges applied to it, and the base font size.
package notepad

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"unicode/utf8"
)

const (
	MinFontSize     = 8
	MaxFontSize     = 48
	DefaultFontSize = 12

	// DefaultExt is the extension suggested for new notes.
	DefaultExt = ".txt"
)

var (
	ErrNoSelection = errors.New("no text selected")
	ErrNotUTF8     = errors.New("file is not valid UTF-8")
)

// Style is a text attribute that can be toggled over a range.
type Style int

const (
	Bold Style = iota
	Italic
)

func (style Style) String() string {
	switch style {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	default:
		return fmt.Sprintf("style(%d)", int(style))
	}
}

// Range marks runes [Start, End) with a style.
type Range struct {
	Start int
	End   int
	Style Style
}

// Document is safe for concurrent use.
type Document struct {
	mu       sync.Mutex
	text     []rune
	ranges   []Range
	fontSize int
}

// NewDocument returns an empty buffer with a clamped font size.
func NewDocument(fontSize int) *Document {
	return &Document{fontSize: ClampFontSize(fontSize)}
}

// Text returns the current buffer.
func (doc *Document) Text() string {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	return string(doc.text)
}

// Ranges returns the style ranges sorted by start offset.
func (doc *Document) Ranges() []Range {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	return append([]Range(nil), doc.ranges...)
}

// FontSize returns the preview font size in points.
func (doc *Document) FontSize() int {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	return doc.fontSize
}

// SetFontSize clamps size to [MinFontSize, MaxFontSize] and returns the
// applied value.
func (doc *Document) SetFontSize(size int) int {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	doc.fontSize = ClampFontSize(size)
	return doc.fontSize
}

// ClampFontSize maps size into the slider range. Zero or less means the default.
func ClampFontSize(size int) int {
	switch {
	case size <= 0:
		return DefaultFontSize
	case size < MinFontSize:
		return MinFontSize
	case size > MaxFontSize:
		return MaxFontSize
	}
	return size
}

// SetText replaces the whole buffer and drops all styles.
func (doc *Document) SetText(text string) {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	doc.text = []rune(text)
	doc.ranges = nil
}

// Clear empties the buffer and drops every style range.
func (doc *Document) Clear() { doc.SetText("") }

// Edit replaces the buffer with an edited version of it. Style ranges are
// moved with the text that survives the edit and clipped where their text
// was removed.
func (doc *Document) Edit(text string) {
	doc.mu.Lock()
	defer doc.mu.Unlock()

	next := []rune(text)
	prefix := commonPrefix(doc.text, next)
	suffix := commonSuffix(doc.text[prefix:], next[prefix:])
	removedEnd := len(doc.text) - suffix
	delta := len(next) - len(doc.text)

	shift := func(pos int, isEnd bool) int {
		switch {
		case pos < prefix:
			return pos
		case pos >= removedEnd:
			return pos + delta
		default:
			// inside the replaced span: collapse to its boundary
			if isEnd {
				return prefix
			}
			return prefix + (len(next) - prefix - suffix)
		}
	}

	kept := doc.ranges[:0]
	for _, r := range doc.ranges {
		r.Start = shift(r.Start, false)
		r.End = shift(r.End, true)
		if r.End > r.Start {
			kept = append(kept, r)
		}
	}
	doc.text = next
	doc.ranges = normalize(kept)
}

// ToggleStyle applies style to runes [start, end) unless the style already
// covers start, in which case it is removed from that span.
func (doc *Document) ToggleStyle(style Style, start, end int) (applied bool, err error) {
	doc.mu.Lock()
	defer doc.mu.Unlock()

	if start > end {
		start, end = end, start
	}
	start = max(start, 0)
	end = min(end, len(doc.text))
	if start >= end {
		return false, ErrNoSelection
	}

	if doc.coversLocked(style, start) {
		doc.ranges = subtract(doc.ranges, style, start, end)
		return false, nil
	}
	doc.ranges = normalize(append(doc.ranges, Range{Start: start, End: end, Style: style}))
	return true, nil
}

// HasStyle reports whether the rune at pos carries style.
func (doc *Document) HasStyle(style Style, pos int) bool {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	return doc.coversLocked(style, pos)
}

func (doc *Document) coversLocked(style Style, pos int) bool {
	for _, r := range doc.ranges {
		if r.Style == style && r.Start <= pos && pos < r.End {
			return true
		}
	}
	return false
}

// Open reads a UTF-8 file into the buffer. The buffer is left untouched on
// failure.
func (doc *Document) Open(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("read %s: %w", path, ErrNotUTF8)
	}
	doc.SetText(string(data))
	return nil
}

// WriteTo writes the buffer verbatim. It implements io.WriterTo.
func (doc *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, doc.Text())
	if err != nil {
		return int64(n), fmt.Errorf("write note: %w", err)
	}
	return int64(n), nil
}

func commonPrefix(a, b []rune) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

func commonSuffix(a, b []rune) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}
	return i
}

// normalize sorts ranges and merges overlapping or touching ranges of the
// same style.
func normalize(ranges []Range) []Range {
	if len(ranges) == 0 {
		return nil
	}
	sort.SliceStable(ranges, func(i, j int) bool {
		if ranges[i].Style != ranges[j].Style {
			return ranges[i].Style < ranges[j].Style
		}
		return ranges[i].Start < ranges[j].Start
	})
	out := []Range{ranges[0]}
	for _, r := range ranges[1:] {
		last := &out[len(out)-1]
		if r.Style == last.Style && r.Start <= last.End {
			last.End = max(last.End, r.End)
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

func subtract(ranges []Range, style Style, start, end int) []Range {
	var out []Range
	for _, r := range ranges {
		if r.Style != style || r.End <= start || r.Start >= end {
			out = append(out, r)
			continue
		}
		if r.Start < start {
			out = append(out, Range{Start: r.Start, End: start, Style: style})
		}
		if r.End > end {
			out = append(out, Range{Start: end, End: r.End, Style: style})
		}
	}
	return normalize(out)
}

// SelectionRange converts an entry cursor position and its selected text
// into rune offsets. The selection may extend either side of the cursor, so
// both placements are tried against the text. When neither matches, ok is
// false: repeated text makes any other placement a guess.
func SelectionRange(text string, row, col int, selected string) (start, end int, ok bool) {
	if selected == "" {
		return 0, 0, false
	}
	runes := []rune(text)
	sel := []rune(selected)
	cursor := offsetOf(runes, row, col)

	if cursor-len(sel) >= 0 && string(runes[cursor-len(sel):cursor]) == selected {
		return cursor - len(sel), cursor, true
	}
	if cursor+len(sel) <= len(runes) && string(runes[cursor:cursor+len(sel)]) == selected {
		return cursor, cursor + len(sel), true
	}
	return 0, 0, false
}

func offsetOf(runes []rune, row, col int) int {
	pos := 0
	for r := 0; r < row && pos < len(runes); pos++ {
		if runes[pos] == '\n' {
			r++
		}
	}
	pos += col
	return min(max(pos, 0), len(runes))
}
