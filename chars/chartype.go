package chars

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"math/bits"

	ucd "golang.org/x/text/unicode/bidi"
)

// CharType is the bidi character class of a code point, encoded as a
// single-bit flag so that sets of classes can be tested with one AND.
type CharType uint32

// The 23 bidi character classes of UAX #9.
const (
	L   CharType = 1 << iota // Left-to-Right
	R                        // Right-to-Left
	EN                       // European Number
	ES                       // European Number Separator
	ET                       // European Number Terminator
	AN                       // Arabic Number
	CS                       // Common Number Separator
	B                        // Paragraph Separator
	S                        // Segment Separator
	WS                       // Whitespace
	ON                       // Other Neutral
	BN                       // Boundary Neutral
	NSM                      // Nonspacing Mark
	AL                       // Right-to-Left Arabic
	LRO                      // Left-to-Right Override
	RLO                      // Right-to-Left Override
	LRE                      // Left-to-Right Embedding
	RLE                      // Right-to-Left Embedding
	PDF                      // Pop Directional Format
	LRI                      // Left-to-Right Isolate
	RLI                      // Right-to-Left Isolate
	FSI                      // First Strong Isolate
	PDI                      // Pop Directional Isolate
)

// Class unions used throughout the resolution rules.
const (
	Strong          = L | R | AL
	IsolateInits    = LRI | RLI | FSI
	NeutralIsolates = B | S | WS | ON | FSI | LRI | RLI | PDI
	BNLike          = BN | RLE | LRE | RLO | LRO | PDF
	Trailing        = WS | IsolateInits | PDI | S | B
)

// fromUCD maps the class values of the x/text trie onto flag encoding.
// The trie stores the nine explicit formatting characters under one
// control class; Type disambiguates those by code point before
// consulting the trie, so a bare control fold maps to BN here.
var fromUCD = [...]CharType{
	ucd.L: L, ucd.R: R, ucd.EN: EN, ucd.ES: ES, ucd.ET: ET, ucd.AN: AN,
	ucd.CS: CS, ucd.B: B, ucd.S: S, ucd.WS: WS, ucd.ON: ON, ucd.BN: BN,
	ucd.NSM: NSM, ucd.AL: AL, ucd.Control: BN,
	ucd.LRO: LRO, ucd.RLO: RLO, ucd.LRE: LRE, ucd.RLE: RLE, ucd.PDF: PDF,
	ucd.LRI: LRI, ucd.RLI: RLI, ucd.FSI: FSI, ucd.PDI: PDI,
}

// Type returns the bidi character class of a code point.
func Type(r rune) CharType {
	switch r {
	case 0x202A:
		return LRE
	case 0x202B:
		return RLE
	case 0x202C:
		return PDF
	case 0x202D:
		return LRO
	case 0x202E:
		return RLO
	case 0x2066:
		return LRI
	case 0x2067:
		return RLI
	case 0x2068:
		return FSI
	case 0x2069:
		return PDI
	}
	props, _ := ucd.LookupRune(r)
	return fromUCD[props.Class()]
}

var typeNames = [...]string{
	"L", "R", "EN", "ES", "ET", "AN", "CS", "B", "S", "WS", "ON", "BN",
	"NSM", "AL", "LRO", "RLO", "LRE", "RLE", "PDF", "LRI", "RLI", "FSI",
	"PDI",
}

// Name returns the short UAX #9 name of a class, e.g. "AL". For values
// that are not a single class flag it returns "?".
func (t CharType) Name() string {
	if bits.OnesCount32(uint32(t)) != 1 {
		return "?"
	}
	return typeNames[bits.TrailingZeros32(uint32(t))]
}

// TypeName returns the short class name for a code point.
func TypeName(r rune) string {
	return Type(r).Name()
}
