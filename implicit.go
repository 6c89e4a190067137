package bidi

import (
	"github.com/npillmayer/bidi/chars"
)

// resolveImplicit applies rules I1–I2, the level propagation of rule 5.2
// for retained formatting characters, and the end-of-paragraph reset L1.
// Three full passes over the paragraph, in that order: 5.2 must see the
// I1/I2-resolved level of the preceding character, and L1 must not reset
// a level before a later 5.2 step reads it.
//
// L1 tests the *original* class of a position, re-derived from the
// character table: the working class array has been rewritten by the
// weak and neutral rules by now. The backward walk treats BN-like
// positions as part of a trailing run and resets them along with it;
// they are invisible, and stopping at them would leave whitespace ahead
// of a formatting character at a non-base level.
func (rs *resolver) resolveImplicit(p *cpParagraph) {
	// I1, I2
	for i := p.start; i <= p.end; i++ {
		t := rs.types[i]
		if rs.levels[i]&1 != 0 { // I2
			if t&(chars.L|chars.EN|chars.AN) != 0 {
				rs.levels[i]++
			}
		} else { // I1
			if t&chars.R != 0 {
				rs.levels[i]++
			} else if t&(chars.AN|chars.EN) != 0 {
				rs.levels[i] += 2
			}
		}
	}

	// 5.2: retained formatting characters take the level of the
	// preceding character, the base level at the paragraph head.
	for i := p.start; i <= p.end; i++ {
		if rs.types[i]&chars.BNLike == 0 {
			continue
		}
		if i == p.start {
			rs.levels[i] = p.level
		} else {
			rs.levels[i] = rs.levels[i-1]
		}
	}

	// L1: at the paragraph end and before every segment/paragraph
	// separator, the separator and any run of trailing whitespace and
	// isolate formatting characters reset to the base level.
	for i := p.start; i <= p.end; i++ {
		if i == p.end || chars.Type(rs.runes[i])&(chars.S|chars.B) != 0 {
			for j := i; j >= p.start; j-- {
				if chars.Type(rs.runes[j])&(chars.Trailing|chars.BNLike) == 0 {
					break
				}
				rs.levels[j] = p.level
			}
		}
	}
}
