package bidi

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

	"github.com/npillmayer/bidi/chars"
)

// The resolver walks a fixed pipeline per paragraph: explicit levels
// (X1–X8), isolating run sequences (X10/BD13), weak rules (W1–W7),
// neutral and bracket rules (N0–N2), implicit levels (I1–I2) and the
// end-of-paragraph reset (L1). The class array is rewritten in place by
// the W/N rules; wherever a rule depends on the *original* class of a
// position (N0's mark propagation, L1's trailing test), the class is
// re-derived from the character table instead of the mutated array.
//
// Some invariants hold:
//
//   * types and levels have one entry per code point.
//   * The level array is written by the X rules and the I rules only;
//     W/N rules touch nothing but the class array.
//   * Within one isolating run sequence the embedding level is constant.
//   * An isolate initiator and its PDI are either both in the pair map
//     or neither is.

// maxDepth is the embedding depth limit of UAX #9 (X1 ff).
const maxDepth = 125

type resolver struct {
	runes      []rune           // code points of the input
	types      []chars.CharType // class per code point, mutable
	levels     []uint8          // embedding level per code point
	cpToCu     []int            // code point index -> first code unit
	cuToCp     []int            // code unit index -> code point
	counts     histogram        // running class census
	pairs      map[int]int      // isolate initiator <-> matching PDI, both ways
	paragraphs []cpParagraph
}

// cpParagraph is a paragraph span in code-point indices, end inclusive.
type cpParagraph struct {
	start, end int
	level      uint8
}

// histogram counts occurrences per class. It lets entire rule passes be
// skipped when a class is absent, the common case for ASCII input.
type histogram [23]int32

func (h *histogram) add(t chars.CharType) {
	h[bits.TrailingZeros32(uint32(t))]++
}

func (h *histogram) remove(t chars.CharType) {
	h[bits.TrailingZeros32(uint32(t))]--
}

// any reports whether at least one character of any class in set exists.
func (h *histogram) any(set chars.CharType) bool {
	for m := uint32(set); m != 0; m &= m - 1 {
		if h[bits.TrailingZeros32(m)] > 0 {
			return true
		}
	}
	return false
}

// newResolver scans the input once, decoding code points, recording the
// class of each and filling the code-unit index maps. A code point above
// the BMP is two code units wide, every other one is a single unit.
func newResolver(s string) *resolver {
	rs := &resolver{pairs: make(map[int]int)}
	cu := 0
	for _, r := range s {
		cp := len(rs.runes)
		t := chars.Type(r)
		rs.runes = append(rs.runes, r)
		rs.types = append(rs.types, t)
		rs.counts.add(t)
		rs.cpToCu = append(rs.cpToCu, cu)
		rs.cuToCp = append(rs.cuToCp, cp)
		cu++
		if r >= 0x10000 {
			rs.cuToCp = append(rs.cuToCp, cp)
			cu++
		}
	}
	rs.levels = make([]uint8, len(rs.runes))
	return rs
}

// changeClass rewrites the class of code point i, keeping the census
// accurate.
func (rs *resolver) changeClass(i int, t chars.CharType) {
	if rs.types[i] == t {
		return
	}
	rs.counts.remove(rs.types[i])
	rs.counts.add(t)
	rs.types[i] = t
}

// splitParagraphs opens a paragraph at position 0 and after every
// paragraph separator (P1). The separator belongs to the paragraph it
// terminates. Base levels follow the caller's direction if forced, and
// rules P2–P3 otherwise.
func (rs *resolver) splitParagraphs(dir Direction) {
	start := 0
	for i, t := range rs.types {
		if t&chars.B != 0 {
			rs.paragraphs = append(rs.paragraphs, cpParagraph{start: start, end: i})
			start = i + 1
		}
	}
	if start < len(rs.types) {
		rs.paragraphs = append(rs.paragraphs, cpParagraph{start: start, end: len(rs.types) - 1})
	}
	for pi := range rs.paragraphs {
		p := &rs.paragraphs[pi]
		switch dir {
		case DirLTR:
			p.level = 0
		case DirRTL:
			p.level = 1
		default:
			p.level = rs.autoLevel(p.start, false)
		}
	}
}

// autoLevel applies P2–P3: scan forward from start to the first strong
// class and derive a base level from it. Isolated scopes are skipped as
// units (BD9). In FSI mode a pop of the scope being scanned terminates
// with LTR.
func (rs *resolver) autoLevel(start int, isFSI bool) uint8 {
	for i := start; i < len(rs.types); i++ {
		t := rs.types[i]
		if t&(chars.R|chars.AL) != 0 {
			return 1
		}
		if t&(chars.L|chars.B) != 0 {
			return 0
		}
		if isFSI && t&chars.PDI != 0 {
			return 0
		}
		if t&chars.IsolateInits != 0 {
			pdi := rs.matchingPDI(i)
			if pdi < 0 {
				break
			}
			i = pdi
		}
	}
	return 0
}

// matchingPDI returns the code-point index of the PDI terminating the
// isolate scope opened at init, or -1. The scan tracks isolate nesting
// and never crosses a paragraph separator.
func (rs *resolver) matchingPDI(init int) int {
	depth := 1
	for i := init + 1; i < len(rs.types); i++ {
		t := rs.types[i]
		if t&chars.B != 0 {
			break
		}
		if t&chars.PDI != 0 {
			depth--
			if depth == 0 {
				return i
			}
		} else if t&chars.IsolateInits != 0 {
			depth++
		}
	}
	return -1
}

// resolveParagraph runs the per-paragraph pipeline.
func (rs *resolver) resolveParagraph(p *cpParagraph) {
	rs.resolveExplicit(p)
	for _, seq := range rs.sequences(p) {
		rs.resolveWeak(&seq)
		rs.resolveNeutral(&seq)
	}
	rs.resolveImplicit(p)
}

func (rs *resolver) resolve() {
	tracer().Debugf("resolving %d paragraph(s), %d code points", len(rs.paragraphs), len(rs.runes))
	for pi := range rs.paragraphs {
		rs.resolveParagraph(&rs.paragraphs[pi])
	}
}
