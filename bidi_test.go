package bidi

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func levelsEqual(t *testing.T, got []uint8, want ...uint8) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d levels, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("level mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}

func TestLatinOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidi")
	defer teardown()
	//
	r := EmbeddingLevels("abc", DirAuto)
	if len(r.Paragraphs) != 1 || r.Paragraphs[0].Level != 0 {
		t.Fatalf("expected a single LTR paragraph, got %v", r.Paragraphs)
	}
	levelsEqual(t, r.Levels, 0, 0, 0)
	indices := r.ReorderedIndices(0, -1)
	for i, x := range indices {
		if x != i {
			t.Fatalf("expected identity order, got %v", indices)
		}
	}
}

func TestArabicOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidi")
	defer teardown()
	//
	r := EmbeddingLevels("ا ب ج", DirAuto)
	if len(r.Paragraphs) != 1 || r.Paragraphs[0].Level != 1 {
		t.Fatalf("expected a single RTL paragraph, got %v", r.Paragraphs)
	}
	levelsEqual(t, r.Levels, 1, 1, 1, 1, 1)
	indices := r.ReorderedIndices(0, -1)
	want := []int{4, 3, 2, 1, 0}
	for i := range want {
		if indices[i] != want[i] {
			t.Fatalf("expected fully reversed order %v, got %v", want, indices)
		}
	}
}

func TestOverride(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidi")
	defer teardown()
	//
	// A <RLO> B C <PDF> D: the override forces B and C into an RTL run,
	// the retained formatting characters take the level of their
	// preceding character.
	r := EmbeddingLevels("A\u202eBC\u202cD", DirAuto)
	if r.Paragraphs[0].Level != 0 {
		t.Fatalf("expected base level 0, got %d", r.Paragraphs[0].Level)
	}
	levelsEqual(t, r.Levels, 0, 0, 1, 1, 1, 0)
	indices := r.ReorderedIndices(0, -1)
	posOf := func(logical int) int {
		for v, x := range indices {
			if x == logical {
				return v
			}
		}
		return -1
	}
	if posOf(3) >= posOf(2) {
		t.Errorf("expected C before B in visual order, got %v", indices)
	}
	if indices[0] != 0 || indices[5] != 5 {
		t.Errorf("expected A and D to keep their positions, got %v", indices)
	}
}

func TestBracketsInRTLContext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidi")
	defer teardown()
	//
	r := EmbeddingLevels("(a)", DirRTL)
	levelsEqual(t, r.Levels, 1, 2, 1)
}

func TestSurrogatePairLevels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidi")
	defer teardown()
	//
	r := EmbeddingLevels("\U0001F600", DirAuto)
	levelsEqual(t, r.Levels, 0, 0)
	indices := r.ReorderedIndices(0, -1)
	if indices[0] != 0 || indices[1] != 1 {
		t.Fatalf("expected order [0 1], got %v", indices)
	}
}

func TestTwoParagraphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidi")
	defer teardown()
	//
	r := EmbeddingLevels("abc\u2029دع", DirAuto)
	if len(r.Paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %v", r.Paragraphs)
	}
	p0, p1 := r.Paragraphs[0], r.Paragraphs[1]
	if p0.Start != 0 || p0.End != 3 || p0.Level != 0 {
		t.Errorf("unexpected first paragraph %v", p0)
	}
	if p1.Start != 4 || p1.End != 5 || p1.Level != 1 {
		t.Errorf("unexpected second paragraph %v", p1)
	}
	levelsEqual(t, r.Levels, 0, 0, 0, 0, 1, 1)
}

func TestMixedDirections(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidi")
	defer teardown()
	//
	r := EmbeddingLevels("abc אבג", DirAuto)
	levelsEqual(t, r.Levels, 0, 0, 0, 0, 1, 1, 1)
	//
	r = EmbeddingLevels("אבג abc", DirAuto)
	levelsEqual(t, r.Levels, 1, 1, 1, 1, 2, 2, 2)
	indices := r.ReorderedIndices(0, -1)
	want := []int{4, 5, 6, 3, 2, 1, 0}
	for i := range want {
		if indices[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, indices)
		}
	}
}

func TestNumbersInRTLContext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidi")
	defer teardown()
	//
	// European digits inside Hebrew text: the digits stay in logical
	// order at an even level above the RTL run.
	r := EmbeddingLevels("א 123 ב", DirAuto)
	levelsEqual(t, r.Levels, 1, 1, 2, 2, 2, 1, 1)
	if s := r.ReorderedString(0, -1); s != "ב 123 א" {
		t.Fatalf("unexpected visual string %q", s)
	}
}

func TestCommonSeparatorJoinsNumbers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidi")
	defer teardown()
	//
	// W4: a period between two European digits joins them into one
	// number, so "1.2" travels as a unit.
	r := EmbeddingLevels("א 1.2 ב", DirAuto)
	levelsEqual(t, r.Levels, 1, 1, 2, 2, 2, 1, 1)
}

func TestTerminatorJoinsNumber(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidi")
	defer teardown()
	//
	// W5: the percent sign trails the number it terminates.
	r := EmbeddingLevels("א 50% ב", DirAuto)
	levelsEqual(t, r.Levels, 1, 1, 2, 2, 2, 1, 1)
}

func TestArabicNumberContext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidi")
	defer teardown()
	//
	// W2: European digits after an Arabic letter read as Arabic numbers,
	// which still take an even level in an RTL paragraph.
	r := EmbeddingLevels("ا 123", DirAuto)
	levelsEqual(t, r.Levels, 1, 1, 2, 2, 2)
}

func TestIsolatePair(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidi")
	defer teardown()
	//
	r := EmbeddingLevels("a\u2067אבג\u2069b", DirAuto)
	levelsEqual(t, r.Levels, 0, 0, 1, 1, 1, 0, 0)
	if r.IsolationPairs[1] != 5 || r.IsolationPairs[5] != 1 {
		t.Fatalf("expected isolation pair 1<->5, got %v", r.IsolationPairs)
	}
}

func TestUnmatchedPDI(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidi")
	defer teardown()
	//
	r := EmbeddingLevels("a\u2069b", DirAuto)
	levelsEqual(t, r.Levels, 0, 0, 0)
	if len(r.IsolationPairs) != 0 {
		t.Fatalf("expected no isolation pairs, got %v", r.IsolationPairs)
	}
}

func TestUnmatchedIsolateInitiator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidi")
	defer teardown()
	//
	// An LRI without a PDI isolates the rest of the paragraph at the
	// next even level.
	r := EmbeddingLevels("a\u2066b", DirAuto)
	levelsEqual(t, r.Levels, 0, 0, 2)
	if len(r.IsolationPairs) != 0 {
		t.Fatalf("expected no isolation pairs, got %v", r.IsolationPairs)
	}
}

func TestFirstStrongIsolate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidi")
	defer teardown()
	//
	// FSI picks RTL from the first strong character of its scope.
	r := EmbeddingLevels("a\u2068א\u2069b", DirAuto)
	levelsEqual(t, r.Levels, 0, 0, 1, 0, 0)
}

func TestEmbeddingOverflow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidi")
	defer teardown()
	//
	// 100 nested RLEs blow past the depth limit; the deepest valid
	// level is 125 and excess initiators are absorbed silently.
	s := ""
	for i := 0; i < 100; i++ {
		s += "\u202b"
	}
	s += "א"
	r := EmbeddingLevels(s, DirAuto)
	if got := r.Levels[100]; got != 125 {
		t.Fatalf("expected level 125 for the letter, got %d", got)
	}
	for i, l := range r.Levels {
		if l > 125 {
			t.Fatalf("level out of range at %d: %d", i, l)
		}
	}
}

func TestSegmentSeparatorReset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidi")
	defer teardown()
	//
	// L1: the tab and the whitespace before it reset to the base level.
	r := EmbeddingLevels("אבג \t", DirLTR)
	levelsEqual(t, r.Levels, 1, 1, 1, 0, 0)
}

func TestTrailingResetCrossesFormatting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidi")
	defer teardown()
	//
	// The whitespace ahead of the PDF is still trailing whitespace of
	// the paragraph; the invisible formatting characters do not block
	// the end-of-paragraph reset.
	r := EmbeddingLevels("ab\u202bcd \u202c ", DirAuto)
	levelsEqual(t, r.Levels, 0, 0, 0, 2, 2, 0, 0, 0)
}

func TestFormattingLevelBeforeSeparatorReset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidi")
	defer teardown()
	//
	// <RLE> a <TAB> <LRE> b <PDF>: the LRE inherits the tab's implicit
	// level 2, not the base level the tab is later reset to by L1.
	r := EmbeddingLevels("\u202ba\t\u202ab\u202c", DirLTR)
	levelsEqual(t, r.Levels, 0, 2, 0, 2, 2, 0)
}

func TestReorderIsPermutation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidi")
	defer teardown()
	//
	inputs := []string{
		"abc אבג def",
		"العربية abc 123",
		"a(א[b]ב)c",
		"\U0001F600א\U0001F601",
	}
	for _, s := range inputs {
		r := EmbeddingLevels(s, DirAuto)
		indices := r.ReorderedIndices(0, -1)
		seen := make([]bool, len(indices))
		for _, x := range indices {
			if x < 0 || x >= len(seen) || seen[x] {
				t.Fatalf("not a permutation for %q: %v", s, indices)
			}
			seen[x] = true
		}
	}
}

func TestIdempotentOnLTR(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidi")
	defer teardown()
	//
	s := "plain left to right text"
	r := EmbeddingLevels(s, DirAuto)
	visual := r.ReorderedString(0, -1)
	if visual != s {
		t.Fatalf("all-LTR text must not change, got %q", visual)
	}
	r2 := EmbeddingLevels(visual, DirAuto)
	levelsEqual(t, r2.Levels, r.Levels...)
}

func TestEmptyString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidi")
	defer teardown()
	//
	r := EmbeddingLevels("", DirAuto)
	if len(r.Levels) != 0 || len(r.Paragraphs) != 0 {
		t.Fatalf("expected empty result, got %v", r)
	}
	if s := r.ReorderedString(0, -1); s != "" {
		t.Fatalf("expected empty visual string, got %q", s)
	}
}

func TestForcedDirections(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidi")
	defer teardown()
	//
	r := EmbeddingLevels("abc", DirRTL)
	if r.Paragraphs[0].Level != 1 {
		t.Errorf("expected forced base level 1, got %d", r.Paragraphs[0].Level)
	}
	levelsEqual(t, r.Levels, 2, 2, 2)
	r = EmbeddingLevels("א", DirLTR)
	if r.Paragraphs[0].Level != 0 {
		t.Errorf("expected forced base level 0, got %d", r.Paragraphs[0].Level)
	}
	levelsEqual(t, r.Levels, 1)
}

func TestParseDirection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidi")
	defer teardown()
	//
	if ParseDirection("ltr") != DirLTR || ParseDirection("rtl") != DirRTL {
		t.Error("expected ltr/rtl to parse to the forced directions")
	}
	if ParseDirection("sideways") != DirAuto {
		t.Error("expected unknown value to mean auto")
	}
}
