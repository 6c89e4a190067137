package html

import (
	"strings"
	"testing"

	"github.com/npillmayer/bidi"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidi")
	defer teardown()
	//
	text, err := Text(strings.NewReader("<p>Hello <b>World</b></p>"))
	if err != nil {
		t.Fatal(err)
	}
	if text != "Hello World" {
		t.Fatalf("expected 'Hello World', got %q", text)
	}
}

func TestResolve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidi")
	defer teardown()
	//
	text, levels, err := Resolve(strings.NewReader("<p>abc <span>אבג</span></p>"), bidi.DirAuto)
	if err != nil {
		t.Fatal(err)
	}
	if text != "abc אבג" {
		t.Fatalf("unexpected text %q", text)
	}
	if len(levels.Levels) != 7 {
		t.Fatalf("expected 7 levels, got %d", len(levels.Levels))
	}
	if levels.Levels[0] != 0 || levels.Levels[4] != 1 {
		t.Fatalf("unexpected levels %v", levels.Levels)
	}
}
