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
	"sort"

	"github.com/npillmayer/bidi/chars"
)

// Numbers read as R for the purposes of the N rules (N0 note, N1).
const strongForN = chars.Strong | chars.EN | chars.AN
const rForN = chars.R | chars.AL | chars.EN | chars.AN

// maxBracketDepth is the bracket-pair stack bound of BD16.
const maxBracketDepth = 63

// resolveNeutral applies rules N0–N2 to one isolating run sequence.
func (rs *resolver) resolveNeutral(seq *runSequence) {
	embedDir := dirType(rs.levels[seq.indices[0]])

	if rs.counts.any(chars.ON) {
		rs.resolveBrackets(seq, embedDir)
	}

	// N1/N2: a run of neutrals, extended across BN-like positions, takes
	// the surrounding strong direction if both sides agree and the
	// embedding direction otherwise. One forward scan, skipping past
	// each resolved run.
	if !rs.counts.any(chars.NeutralIsolates) {
		return
	}
	for si := 0; si < len(seq.indices); si++ {
		if rs.types[seq.indices[si]]&chars.NeutralIsolates == 0 {
			continue
		}
		runStart, runEnd := si, si
		prev := seq.sos
		for sj := si - 1; sj >= 0; sj-- {
			t := rs.types[seq.indices[sj]]
			if t&chars.BNLike != 0 {
				runStart = sj // 5.2: BN-like adjacent to neutrals counts as neutral
				continue
			}
			prev = chars.L
			if t&rForN != 0 {
				prev = chars.R
			}
			break
		}
		next := seq.eos
		for sj := si + 1; sj < len(seq.indices); sj++ {
			t := rs.types[seq.indices[sj]]
			if t&(chars.NeutralIsolates|chars.BNLike) != 0 {
				runEnd = sj
				continue
			}
			next = chars.L
			if t&rForN != 0 {
				next = chars.R
			}
			break
		}
		use := embedDir
		if prev == next {
			use = prev
		}
		for sj := runStart; sj <= runEnd; sj++ {
			rs.changeClass(seq.indices[sj], use)
		}
		si = runEnd
	}
}

// bracketPairing is a matched pair of bracket positions, as sequence
// indices.
type bracketPairing struct {
	opener, closer int
}

// resolveBrackets applies rule N0. Pairing follows BD16: a bounded stack
// of pending openers, closed by exact match or by canonical equivalence.
// Running out of stack abandons pairing for the rest of the sequence.
func (rs *resolver) resolveBrackets(seq *runSequence, embedDir chars.CharType) {
	var stack [maxBracketDepth]struct {
		r  rune
		si int
	}
	sp := 0
	var pairings []bracketPairing

pairing:
	for si, i := range seq.indices {
		if rs.types[i]&chars.ON == 0 {
			continue
		}
		r := rs.runes[i]
		if _, isOpen := chars.ClosingBracket(r); isOpen {
			if sp == maxBracketDepth {
				break pairing
			}
			stack[sp].r = r
			stack[sp].si = si
			sp++
		} else if opening, isClose := chars.OpeningBracket(r); isClose {
			for k := sp - 1; k >= 0; k-- {
				if !bracketsMatch(stack[k].r, opening, r) {
					continue
				}
				pairings = append(pairings, bracketPairing{opener: stack[k].si, closer: si})
				sp = k
				break
			}
		}
	}
	sort.Slice(pairings, func(a, b int) bool {
		return pairings[a].opener < pairings[b].opener
	})

	for _, pr := range pairings {
		rs.resolvePairing(seq, pr, embedDir)
	}
}

// bracketsMatch reports whether a pending opener closes with the closing
// bracket at hand, either directly or through canonical equivalence.
func bracketsMatch(opener, openerWanted, closer rune) bool {
	if opener == openerWanted {
		return true
	}
	if canon, ok := chars.CanonicalBracket(closer); ok {
		if o, ok2 := chars.OpeningBracket(canon); ok2 && opener == o {
			return true
		}
	}
	if canon, ok := chars.CanonicalBracket(opener); ok {
		if c, ok2 := chars.ClosingBracket(canon); ok2 && c == closer {
			return true
		}
	}
	return false
}

// resolvePairing decides the direction of one bracket pair per N0: a
// strong type of the embedding direction inside wins; an opposite strong
// type inside defers to the context preceding the opener.
func (rs *resolver) resolvePairing(seq *runSequence, pr bracketPairing, embedDir chars.CharType) {
	foundStrong := false
	var use chars.CharType
	for si := pr.opener + 1; si < pr.closer; si++ {
		t := rs.types[seq.indices[si]]
		if t&strongForN == 0 {
			continue
		}
		foundStrong = true
		d := chars.L
		if t&rForN != 0 {
			d = chars.R
		}
		if d == embedDir {
			use = d
			break
		}
	}
	if !foundStrong {
		return // no strong type inside, leave the pair to N1/N2
	}
	if use == 0 {
		prev := seq.sos
		for si := pr.opener - 1; si >= 0; si-- {
			t := rs.types[seq.indices[si]]
			if t&strongForN == 0 {
				continue
			}
			prev = chars.L
			if t&rForN != 0 {
				prev = chars.R
			}
			break
		}
		if prev != embedDir {
			use = prev
		} else {
			use = embedDir
		}
	}
	rs.changeClass(seq.indices[pr.opener], use)
	rs.changeClass(seq.indices[pr.closer], use)
	rs.propagateToMarks(seq, pr.opener, use)
	rs.propagateToMarks(seq, pr.closer, use)
}

// propagateToMarks extends a bracket's resolved direction to the
// nonspacing marks immediately following it. The test is against the
// original class from the character table: W1 has already rewritten the
// working class of every mark.
func (rs *resolver) propagateToMarks(seq *runSequence, si int, use chars.CharType) {
	for sj := si + 1; sj < len(seq.indices); sj++ {
		i := seq.indices[sj]
		if rs.types[i]&chars.BNLike != 0 {
			continue
		}
		if chars.Type(rs.runes[i])&chars.NSM == 0 {
			return
		}
		rs.changeClass(i, use)
	}
}
