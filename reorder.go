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
	"unicode/utf16"

	"github.com/npillmayer/bidi/chars"
)

// Segment is an inclusive code-unit range to be reversed for display.
type Segment struct {
	From, To int
}

// ReorderSegments returns the contiguous substrings that the standard
// reversal procedure (L2) reverses within [from,to], higher levels
// first. The range defaults to the whole string and is clamped; it is
// treated as one display line per paragraph, so trailing whitespace of
// an odd-level run at a line edge is excluded from reversal.
func (rl *ResolvedLevels) ReorderSegments(from, to int) []Segment {
	if len(rl.Levels) == 0 {
		return nil
	}
	from, to = rl.clampRange(from, to)
	var segments []Segment
	for _, p := range rl.Paragraphs {
		lineStart := p.Start
		if from > lineStart {
			lineStart = from
		}
		lineEnd := p.End
		if to < lineEnd {
			lineEnd = to
		}
		if lineStart >= lineEnd {
			continue
		}
		line := make([]uint8, lineEnd-lineStart+1)
		copy(line, rl.Levels[lineStart:lineEnd+1])

		// L1 re-applied to the line slice: the trailing run resets to
		// the base level so it is not carried to the far line edge.
		for i := lineEnd; i >= lineStart; i-- {
			if chars.Type(rl.runes[rl.cuToCp[i]])&(chars.Trailing|chars.BNLike) == 0 {
				break
			}
			line[i-lineStart] = p.Level
		}

		highest := p.Level
		lowest := line[0]
		for _, l := range line {
			if l > highest {
				highest = l
			}
			if l < lowest {
				lowest = l
			}
		}
		lowestOdd := lowest | 1
		for lvl := highest; lvl >= lowestOdd; lvl-- {
			for i := 0; i < len(line); i++ {
				if line[i] < lvl {
					continue
				}
				segStart := i
				for i+1 < len(line) && line[i+1] >= lvl {
					i++
				}
				if i > segStart {
					segments = append(segments, Segment{From: segStart + lineStart, To: i + lineStart})
				}
			}
		}
	}
	return segments
}

// ReorderedIndices returns a permutation of code-unit indices: entry i
// is the logical index displayed at visual position i. Positions outside
// [from,to] map to themselves. Surrogate pairs keep their logical unit
// order inside reversed segments.
func (rl *ResolvedLevels) ReorderedIndices(from, to int) []int {
	indices := make([]int, len(rl.Levels))
	for i := range indices {
		indices[i] = i
	}
	for _, seg := range rl.ReorderSegments(from, to) {
		for a, b := seg.From, seg.To; a < b; a, b = a+1, b-1 {
			indices[a], indices[b] = indices[b], indices[a]
		}
		for i := seg.From; i < seg.To; i++ {
			if indices[i] > indices[i+1] && rl.cuToCp[indices[i]] == rl.cuToCp[indices[i+1]] {
				indices[i], indices[i+1] = indices[i+1], indices[i]
				i++
			}
		}
	}
	return indices
}

// ReorderedString returns the string in visual order within [from,to],
// with mirrored characters substituted inside right-to-left runs.
func (rl *ResolvedLevels) ReorderedString(from, to int) string {
	if len(rl.Levels) == 0 {
		return ""
	}
	units := make([]uint16, len(rl.Levels))
	for cp, r := range rl.runes {
		cu := rl.cpToCu[cp]
		if r >= 0x10000 {
			h, l := utf16.EncodeRune(r)
			units[cu] = uint16(h)
			units[cu+1] = uint16(l)
		} else {
			units[cu] = uint16(r)
		}
	}
	for cu, mirror := range rl.MirroredCharacters(from, to) {
		units[cu] = uint16(mirror)
	}
	indices := rl.ReorderedIndices(from, to)
	visual := make([]uint16, len(units))
	for pos, logical := range indices {
		visual[pos] = units[logical]
	}
	return string(utf16.Decode(visual))
}
