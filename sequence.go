package bidi

import (
	"github.com/npillmayer/bidi/chars"
)

// levelRun is a maximal run of consecutive code points sharing one
// embedding level. Runs are delimited by non-BN-like positions only, so
// a run may span interior BN-like code points but never starts or ends
// on one.
type levelRun struct {
	start, end      int
	level           uint8
	startsWithPDI   bool
	endsWithIsoInit bool
}

// runSequence is an isolating run sequence (BD13): level runs chained
// across isolate initiator/PDI pairs, flattened to a code-point index
// list. sos and eos are the synthetic strong types at its boundaries.
type runSequence struct {
	indices []int
	sos     chars.CharType // chars.L or chars.R
	eos     chars.CharType
}

// dirType maps a level to the strong type of its direction.
func dirType(level uint8) chars.CharType {
	if level&1 != 0 {
		return chars.R
	}
	return chars.L
}

// sequences builds the isolating run sequences of a paragraph (X10,
// BD13). A sequence starts at every run not opened by a PDI with a known
// matching initiator, and is extended from each run that ends with a
// matched isolate initiator to the run its PDI opens.
func (rs *resolver) sequences(p *cpParagraph) []runSequence {
	var runs []levelRun
	cur := -1
	for i := p.start; i <= p.end; i++ {
		t := rs.types[i]
		if t&chars.BNLike != 0 {
			continue
		}
		isInit := t&chars.IsolateInits != 0
		if cur >= 0 && rs.levels[i] == runs[cur].level {
			runs[cur].end = i
			runs[cur].endsWithIsoInit = isInit
		} else {
			runs = append(runs, levelRun{
				start:           i,
				end:             i,
				level:           rs.levels[i],
				startsWithPDI:   t&chars.PDI != 0,
				endsWithIsoInit: isInit,
			})
			cur++
		}
	}

	var seqs []runSequence
	for ri := range runs {
		run := &runs[ri]
		if run.startsWithPDI {
			if _, matched := rs.pairs[run.start]; matched {
				continue // absorbed into the sequence of its initiator
			}
		}
		chain := []*levelRun{run}
		last := run
		for last.endsWithIsoInit {
			pdi, ok := rs.pairs[last.end]
			if !ok {
				break
			}
			var next *levelRun
			for rj := ri + 1; rj < len(runs); rj++ {
				if runs[rj].start == pdi {
					next = &runs[rj]
					break
				}
			}
			if next == nil {
				break
			}
			chain = append(chain, next)
			last = next
		}

		size := 0
		for _, r := range chain {
			size += r.end - r.start + 1
		}
		indices := make([]int, 0, size)
		for _, r := range chain {
			for i := r.start; i <= r.end; i++ {
				indices = append(indices, i)
			}
		}

		// sos/eos (X10): compare against the level just outside the
		// sequence, skipping BN-like positions; past the paragraph edge
		// the base level applies. A trailing isolate initiator with no
		// matching PDI is bounded by the base level on the right.
		prevLevel := p.level
		for i := chain[0].start - 1; i >= p.start; i-- {
			if rs.types[i]&chars.BNLike == 0 {
				prevLevel = rs.levels[i]
				break
			}
		}
		nextLevel := p.level
		if rs.types[last.end]&chars.IsolateInits == 0 {
			for i := last.end + 1; i <= p.end; i++ {
				if rs.types[i]&chars.BNLike == 0 {
					nextLevel = rs.levels[i]
					break
				}
			}
		}
		seqs = append(seqs, runSequence{
			indices: indices,
			sos:     dirType(maxLevel(prevLevel, chain[0].level)),
			eos:     dirType(maxLevel(nextLevel, last.level)),
		})
	}
	return seqs
}

func maxLevel(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}
