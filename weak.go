package bidi

import (
	"github.com/npillmayer/bidi/chars"
)

// resolveWeak applies rules W1–W7 to one isolating run sequence. All
// positional reasoning happens on sequence indices; BN-like positions
// interior to the sequence are skipped when looking at neighbours, per
// rule 5.2.
func (rs *resolver) resolveWeak(seq *runSequence) {
	// W1: nonspacing marks take the class of the nearest preceding
	// non-BN character, sos if none. Following an isolate initiator or
	// PDI they become neutral instead.
	if rs.counts.any(chars.NSM) {
		for si, i := range seq.indices {
			if rs.types[i]&chars.NSM == 0 {
				continue
			}
			prev := seq.sos
			for sj := si - 1; sj >= 0; sj-- {
				if t := rs.types[seq.indices[sj]]; t&chars.BNLike == 0 {
					prev = t
					break
				}
			}
			if prev&(chars.IsolateInits|chars.PDI) != 0 {
				rs.changeClass(i, chars.ON)
			} else {
				rs.changeClass(i, prev)
			}
		}
	}

	// W2: European numbers in an Arabic context become Arabic numbers.
	if rs.counts.any(chars.EN) && rs.counts.any(chars.AL) {
		for si, i := range seq.indices {
			if rs.types[i]&chars.EN == 0 {
				continue
			}
			for sj := si - 1; sj >= 0; sj-- {
				t := rs.types[seq.indices[sj]]
				if t&chars.Strong == 0 {
					continue
				}
				if t&chars.AL != 0 {
					rs.changeClass(i, chars.AN)
				}
				break
			}
		}
	}

	// W3: Arabic letters are treated as R from here on.
	if rs.counts.any(chars.AL) {
		for _, i := range seq.indices {
			if rs.types[i]&chars.AL != 0 {
				rs.changeClass(i, chars.R)
			}
		}
	}

	// W4: a single separator between numbers of matching kind joins them.
	if rs.counts.any(chars.ES | chars.CS) {
		for si, i := range seq.indices {
			t := rs.types[i]
			if t&(chars.ES|chars.CS) == 0 {
				continue
			}
			var prev, next chars.CharType
			for sj := si - 1; sj >= 0; sj-- {
				if tt := rs.types[seq.indices[sj]]; tt&chars.BNLike == 0 {
					prev = tt
					break
				}
			}
			for sj := si + 1; sj < len(seq.indices); sj++ {
				if tt := rs.types[seq.indices[sj]]; tt&chars.BNLike == 0 {
					next = tt
					break
				}
			}
			if prev&chars.EN != 0 && next&chars.EN != 0 {
				rs.changeClass(i, chars.EN)
			} else if t&chars.CS != 0 && prev&chars.AN != 0 && next&chars.AN != 0 {
				rs.changeClass(i, chars.AN)
			}
		}
	}

	// W5: runs of terminators adjacent to a European number join it.
	if rs.counts.any(chars.ET) && rs.counts.any(chars.EN) {
		for si := 0; si < len(seq.indices); si++ {
			if rs.types[seq.indices[si]]&chars.ET == 0 {
				continue
			}
			end := si
			for end+1 < len(seq.indices) && rs.types[seq.indices[end+1]]&(chars.ET|chars.BNLike) != 0 {
				end++
			}
			adjacentEN := false
			for sj := si - 1; sj >= 0; sj-- {
				if t := rs.types[seq.indices[sj]]; t&chars.BNLike == 0 {
					adjacentEN = t&chars.EN != 0
					break
				}
			}
			if !adjacentEN {
				for sj := end + 1; sj < len(seq.indices); sj++ {
					if t := rs.types[seq.indices[sj]]; t&chars.BNLike == 0 {
						adjacentEN = t&chars.EN != 0
						break
					}
				}
			}
			if adjacentEN {
				for sj := si; sj <= end; sj++ {
					if rs.types[seq.indices[sj]]&chars.ET != 0 {
						rs.changeClass(seq.indices[sj], chars.EN)
					}
				}
			}
			si = end
		}
	}

	// W6: leftover separators and terminators become neutral, dragging
	// adjacent BN-like positions with them (5.2).
	if rs.counts.any(chars.ES | chars.ET | chars.CS) {
		for si, i := range seq.indices {
			if rs.types[i]&(chars.ES|chars.ET|chars.CS) == 0 {
				continue
			}
			rs.changeClass(i, chars.ON)
			for sj := si - 1; sj >= 0 && rs.types[seq.indices[sj]]&chars.BNLike != 0; sj-- {
				rs.changeClass(seq.indices[sj], chars.ON)
			}
			for sj := si + 1; sj < len(seq.indices) && rs.types[seq.indices[sj]]&chars.BNLike != 0; sj++ {
				rs.changeClass(seq.indices[sj], chars.ON)
			}
		}
	}

	// W7: European numbers after an L context read as L.
	if rs.counts.any(chars.EN) {
		prevStrong := seq.sos
		for _, i := range seq.indices {
			t := rs.types[i]
			if t&chars.EN != 0 {
				if prevStrong&chars.L != 0 {
					rs.changeClass(i, chars.L)
				}
			} else if t&chars.Strong != 0 {
				prevStrong = t
			}
		}
	}
}
