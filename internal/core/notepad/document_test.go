package notepad

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestToggleStyleAddsAndRemoves(t *testing.T) {
	doc := NewDocument(0)
	doc.SetText("hello world")

	applied, err := doc.ToggleStyle(Bold, 0, 5)
	if err != nil || !applied {
		t.Fatalf("ToggleStyle() = (%v, %v)", applied, err)
	}
	if !doc.HasStyle(Bold, 0) || doc.HasStyle(Bold, 5) {
		t.Fatalf("unexpected ranges %+v", doc.Ranges())
	}

	// selection starting inside the bold span removes bold from it
	applied, err = doc.ToggleStyle(Bold, 2, 4)
	if err != nil || applied {
		t.Fatalf("second ToggleStyle() = (%v, %v)", applied, err)
	}
	want := []Range{{0, 2, Bold}, {4, 5, Bold}}
	if got := doc.Ranges(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ranges = %+v, want %+v", got, want)
	}
}

func TestToggleStyleMergesAdjacent(t *testing.T) {
	doc := NewDocument(0)
	doc.SetText("abcdef")
	doc.ToggleStyle(Italic, 0, 2)
	doc.ToggleStyle(Italic, 2, 4)
	doc.ToggleStyle(Bold, 1, 3)

	want := []Range{{0, 4, Italic}, {1, 3, Bold}}
	if got := doc.Ranges(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ranges = %+v, want %+v", got, want)
	}
}

func TestToggleStyleWithoutSelection(t *testing.T) {
	doc := NewDocument(0)
	doc.SetText("abc")
	if _, err := doc.ToggleStyle(Bold, 1, 1); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("err = %v, want ErrNoSelection", err)
	}
	if _, err := doc.ToggleStyle(Bold, 5, 9); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("out of range err = %v", err)
	}
	if len(doc.Ranges()) != 0 {
		t.Fatalf("ranges mutated: %+v", doc.Ranges())
	}
}

func TestEditShiftsRanges(t *testing.T) {
	cases := []struct {
		name   string
		before string
		r      Range
		after  string
		want   []Range
	}{
		{"insert before", "hello world", Range{6, 11, Bold}, ">> hello world", []Range{{9, 14, Bold}}},
		{"insert after", "hello world", Range{0, 5, Bold}, "hello world!", []Range{{0, 5, Bold}}},
		{"insert inside", "hello world", Range{0, 5, Bold}, "helXlo world", []Range{{0, 6, Bold}}},
		{"delete inside", "hello world", Range{0, 5, Bold}, "heo world", []Range{{0, 3, Bold}}},
		{"delete overlapping start", "hello world", Range{3, 8, Italic}, "heworld", []Range{{2, 4, Italic}}},
		{"delete whole range", "hello world", Range{0, 5, Bold}, " world", nil},
		{"replace styled text", "hello world", Range{6, 11, Bold}, "hello there", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := NewDocument(0)
			doc.SetText(tc.before)
			doc.ToggleStyle(tc.r.Style, tc.r.Start, tc.r.End)
			doc.Edit(tc.after)
			if got := doc.Ranges(); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ranges = %+v, want %+v", got, tc.want)
			}
			if doc.Text() != tc.after {
				t.Fatalf("text = %q", doc.Text())
			}
		})
	}
}

func TestSegments(t *testing.T) {
	doc := NewDocument(0)
	doc.SetText("plain bold both")
	doc.ToggleStyle(Bold, 6, 15)
	doc.ToggleStyle(Italic, 11, 15)

	want := []Segment{
		{Text: "plain "},
		{Text: "bold ", Bold: true},
		{Text: "both", Bold: true, Italic: true},
	}
	if got := doc.Segments(); !reflect.DeepEqual(got, want) {
		t.Fatalf("segments = %+v, want %+v", got, want)
	}
}

func TestSetFontSizeClamps(t *testing.T) {
	doc := NewDocument(0)
	if doc.FontSize() != DefaultFontSize {
		t.Fatalf("default font size = %d", doc.FontSize())
	}
	for in, want := range map[int]int{4: MinFontSize, 20: 20, 99: MaxFontSize} {
		if got := doc.SetFontSize(in); got != want {
			t.Errorf("SetFontSize(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestOpenAndWriteTo(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(src, []byte("ünïcode\nline two"), 0o600); err != nil {
		t.Fatal(err)
	}

	doc := NewDocument(0)
	doc.SetText("old")
	doc.ToggleStyle(Bold, 0, 3)
	if err := doc.Open(src); err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if doc.Text() != "ünïcode\nline two" || len(doc.Ranges()) != 0 {
		t.Fatalf("open left text=%q ranges=%+v", doc.Text(), doc.Ranges())
	}

	var out strings.Builder
	n, err := doc.WriteTo(&out)
	if err != nil {
		t.Fatalf("WriteTo() error: %v", err)
	}
	if out.String() != doc.Text() || n != int64(len(doc.Text())) {
		t.Fatalf("WriteTo() wrote %q (%d bytes)", out.String(), n)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteToFailureKeepsBuffer(t *testing.T) {
	doc := NewDocument(0)
	doc.SetText("keep me")
	doc.ToggleStyle(Italic, 0, 4)
	if _, err := doc.WriteTo(failingWriter{}); err == nil {
		t.Fatalf("expected write error")
	}
	if doc.Text() != "keep me" || !doc.HasStyle(Italic, 0) {
		t.Fatalf("buffer changed: %q %+v", doc.Text(), doc.Ranges())
	}
}

func TestOpenFailureKeepsBuffer(t *testing.T) {
	dir := t.TempDir()
	binary := filepath.Join(dir, "blob.bin")
	if err := os.WriteFile(binary, []byte{0xff, 0xfe, 0x00}, 0o600); err != nil {
		t.Fatal(err)
	}

	doc := NewDocument(0)
	doc.SetText("keep me")
	if err := doc.Open(binary); !errors.Is(err, ErrNotUTF8) {
		t.Fatalf("err = %v, want ErrNotUTF8", err)
	}
	if err := doc.Open(filepath.Join(dir, "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want ErrNotExist", err)
	}
	if doc.Text() != "keep me" {
		t.Fatalf("buffer changed to %q", doc.Text())
	}
}

func TestSelectionRange(t *testing.T) {
	text := "first line\nsecond line"
	cases := []struct {
		name       string
		row, col   int
		selected   string
		start, end int
	}{
		{"cursor after selection", 1, 6, "second", 11, 17},
		{"cursor before selection", 1, 7, "line", 18, 22},
		{"first row", 0, 5, "first", 0, 5},
	}
	for _, tc := range cases {
		start, end, ok := SelectionRange(text, tc.row, tc.col, tc.selected)
		if !ok || start != tc.start || end != tc.end {
			t.Errorf("%s: got (%d, %d, %v), want (%d, %d)", tc.name, start, end, ok, tc.start, tc.end)
		}
	}
	if _, _, ok := SelectionRange(text, 0, 0, ""); ok {
		t.Fatalf("empty selection reported ok")
	}
}

func TestSelectionRangeDoesNotGuess(t *testing.T) {
	text := "echo echo echo"
	// selection of the last "echo" with the cursor at its end
	start, end, ok := SelectionRange(text, 0, 14, "echo")
	if !ok || start != 10 || end != 14 {
		t.Fatalf("got (%d, %d, %v), want (10, 14, true)", start, end, ok)
	}
	// cursor not adjacent to any placement of the selected text
	if _, _, ok := SelectionRange(text, 0, 2, "echo"); ok {
		t.Fatalf("selection away from the cursor reported ok")
	}
}

func TestCount(t *testing.T) {
	stats := Count("héllo 👋🏽 world\nbye")
	if stats.Characters != 17 || stats.Words != 4 || stats.Lines != 2 {
		t.Fatalf("Count() = %+v", stats)
	}
	if Count("") != (Stats{}) {
		t.Fatalf("empty text not zero")
	}
}
