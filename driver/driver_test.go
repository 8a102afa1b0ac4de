package driver

import (
	"bytes"
	"strings"
	"testing"
)

func TestRecordingCapturesWordsPerLine(t *testing.T) {
	r := NewRecording()
	r.BeginPage()
	r.BeginLine(100)
	r.ShowWord([]rune("hello"), nil, true)
	r.ShowWord([]rune("world"), nil, false)
	r.EndLine()
	r.EndPage()

	if len(r.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(r.Pages))
	}
	if len(r.Pages[0]) != 1 {
		t.Fatalf("expected 1 line, got %d", len(r.Pages[0]))
	}
	words := r.Pages[0][0].Words
	if len(words) != 2 || string(words[0].Glyphs) != "hello" || string(words[1].Glyphs) != "world" {
		t.Errorf("unexpected words recorded: %+v", words)
	}
}

func TestRecordingBlankLine(t *testing.T) {
	r := NewRecording()
	r.BeginPage()
	r.BlankLine()
	r.EndPage()
	if !r.Pages[0][0].Blank {
		t.Errorf("expected recorded line to be marked blank")
	}
}

func TestTextDriverJoinsWordsWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	d := NewText(&buf)
	d.BeginPage()
	d.BeginLine(0)
	d.ShowWord([]rune("the"), nil, true)
	d.ShowWord([]rune("fox"), nil, false)
	d.EndLine()
	d.EndPage()

	if got := buf.String(); !strings.Contains(got, "the fox") {
		t.Errorf("expected rendered output to contain %q, got %q", "the fox", got)
	}
}
