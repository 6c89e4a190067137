package chars

import (
	"sync"
)

// Paired brackets per UCD BidiBrackets.txt: opening code point followed by
// its closing counterpart.
var bracketPairs = [...][2]rune{
	{0x0028, 0x0029}, // ( )
	{0x005B, 0x005D}, // [ ]
	{0x007B, 0x007D}, // { }
	{0x0F3A, 0x0F3B},
	{0x0F3C, 0x0F3D},
	{0x169B, 0x169C},
	{0x2045, 0x2046},
	{0x207D, 0x207E},
	{0x208D, 0x208E},
	{0x2308, 0x2309},
	{0x230A, 0x230B},
	{0x2329, 0x232A},
	{0x2768, 0x2769},
	{0x276A, 0x276B},
	{0x276C, 0x276D},
	{0x276E, 0x276F},
	{0x2770, 0x2771},
	{0x2772, 0x2773},
	{0x2774, 0x2775},
	{0x27C5, 0x27C6},
	{0x27E6, 0x27E7},
	{0x27E8, 0x27E9},
	{0x27EA, 0x27EB},
	{0x27EC, 0x27ED},
	{0x27EE, 0x27EF},
	{0x2983, 0x2984},
	{0x2985, 0x2986},
	{0x2987, 0x2988},
	{0x2989, 0x298A},
	{0x298B, 0x298C},
	{0x298D, 0x2990}, // tick in top corner closes with tick in bottom corner
	{0x298F, 0x298E},
	{0x2991, 0x2992},
	{0x2993, 0x2994},
	{0x2995, 0x2996},
	{0x2997, 0x2998},
	{0x29D8, 0x29D9},
	{0x29DA, 0x29DB},
	{0x29FC, 0x29FD},
	{0x2E22, 0x2E23},
	{0x2E24, 0x2E25},
	{0x2E26, 0x2E27},
	{0x2E28, 0x2E29},
	{0x2E55, 0x2E56},
	{0x2E57, 0x2E58},
	{0x2E59, 0x2E5A},
	{0x2E5B, 0x2E5C},
	{0x3008, 0x3009},
	{0x300A, 0x300B},
	{0x300C, 0x300D},
	{0x300E, 0x300F},
	{0x3010, 0x3011},
	{0x3014, 0x3015},
	{0x3016, 0x3017},
	{0x3018, 0x3019},
	{0x301A, 0x301B},
	{0xFE59, 0xFE5A},
	{0xFE5B, 0xFE5C},
	{0xFE5D, 0xFE5E},
	{0xFF08, 0xFF09},
	{0xFF3B, 0xFF3D},
	{0xFF5B, 0xFF5D},
	{0xFF5F, 0xFF60},
	{0xFF62, 0xFF63},
}

// A selection of the mirrored characters without a bracket pairing, from
// UCD BidiMirroring.txt; pairs not listed here have no mirror. Each entry mirrors both ways; bracket pairs are added programmatically.
var mirrorPairs = [...][2]rune{
	{0x003C, 0x003E}, // < >
	{0x00AB, 0x00BB}, // « »
	{0x2039, 0x203A}, // ‹ ›
	{0x2208, 0x220B}, // ∈ ∋
	{0x2209, 0x220C},
	{0x220A, 0x220D},
	{0x2215, 0x29F5},
	{0x223C, 0x223D},
	{0x2243, 0x22CD},
	{0x2252, 0x2253},
	{0x2254, 0x2255},
	{0x2264, 0x2265}, // ≤ ≥
	{0x2266, 0x2267},
	{0x2268, 0x2269},
	{0x226A, 0x226B},
	{0x226E, 0x226F},
	{0x2270, 0x2271},
	{0x2272, 0x2273},
	{0x2274, 0x2275},
	{0x2276, 0x2277},
	{0x2278, 0x2279},
	{0x227A, 0x227B},
	{0x227C, 0x227D},
	{0x227E, 0x227F},
	{0x2280, 0x2281},
	{0x2282, 0x2283}, // ⊂ ⊃
	{0x2284, 0x2285},
	{0x2286, 0x2287},
	{0x2288, 0x2289},
	{0x228A, 0x228B},
	{0x228F, 0x2290},
	{0x2291, 0x2292},
	{0x22A2, 0x22A3}, // ⊢ ⊣
	{0x22B0, 0x22B1},
	{0x22B2, 0x22B3},
	{0x22B4, 0x22B5},
	{0x22B6, 0x22B7},
	{0x22C9, 0x22CA},
	{0x22CB, 0x22CC},
	{0x22D0, 0x22D1},
	{0x22D6, 0x22D7},
	{0x22D8, 0x22D9},
	{0x22DA, 0x22DB},
	{0x22DC, 0x22DD},
	{0x22DE, 0x22DF},
	{0x22E0, 0x22E1},
	{0x22E2, 0x22E3},
	{0x22E4, 0x22E5},
	{0x22E6, 0x22E7},
	{0x22E8, 0x22E9},
	{0x22EA, 0x22EB},
	{0x22EC, 0x22ED},
	{0x22F0, 0x22F1},
	{0x27C3, 0x27C4},
	{0x27C8, 0x27C9},
	{0x27D5, 0x27D6},
	{0x27DD, 0x27DE},
	{0x27E2, 0x27E3},
	{0x27E4, 0x27E5},
	{0x29F8, 0x29F9},
}

// Canonically equivalent brackets (NFC): the CJK angle brackets decompose
// from the deprecated math angle brackets. N0 matching treats either
// member of a pair as interchangeable with the other.
var canonicalPairs = [...][2]rune{
	{0x2329, 0x3008},
	{0x232A, 0x3009},
}

var (
	tableOnce   sync.Once
	openToClose map[rune]rune
	closeToOpen map[rune]rune
	canonical   map[rune]rune
	mirrors     map[rune]rune
)

// initTables builds the lookup maps from the pair lists. Idempotent,
// guarded for concurrent first use.
func initTables() {
	tableOnce.Do(func() {
		openToClose = make(map[rune]rune, len(bracketPairs))
		closeToOpen = make(map[rune]rune, len(bracketPairs))
		mirrors = make(map[rune]rune, 2*(len(bracketPairs)+len(mirrorPairs)))
		for _, p := range bracketPairs {
			openToClose[p[0]] = p[1]
			closeToOpen[p[1]] = p[0]
			mirrors[p[0]] = p[1]
			mirrors[p[1]] = p[0]
		}
		for _, p := range mirrorPairs {
			mirrors[p[0]] = p[1]
			mirrors[p[1]] = p[0]
		}
		canonical = make(map[rune]rune, 2*len(canonicalPairs))
		for _, p := range canonicalPairs {
			canonical[p[0]] = p[1]
			canonical[p[1]] = p[0]
		}
	})
}

// ClosingBracket returns the closing counterpart of an opening paired
// bracket, or false if r does not open a bracket pair.
func ClosingBracket(r rune) (rune, bool) {
	initTables()
	c, ok := openToClose[r]
	return c, ok
}

// OpeningBracket returns the opening counterpart of a closing paired
// bracket, or false if r does not close a bracket pair.
func OpeningBracket(r rune) (rune, bool) {
	initTables()
	o, ok := closeToOpen[r]
	return o, ok
}

// CanonicalBracket returns the canonically equivalent bracket of r, or
// false if r has none.
func CanonicalBracket(r rune) (rune, bool) {
	initTables()
	c, ok := canonical[r]
	return c, ok
}

// MirroredCharacter returns the mirror glyph of r, or false if r has no
// entry in the mirror table. The table holds every paired bracket and a
// selection of the other BidiMirroring pairs; mirrored characters outside
// it, such as U+FF1C, report false.
func MirroredCharacter(r rune) (rune, bool) {
	initTables()
	m, ok := mirrors[r]
	return m, ok
}
