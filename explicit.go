package bidi

import (
	"github.com/npillmayer/bidi/chars"
)

// statusFrame is one entry of the directional status stack (X1).
type statusFrame struct {
	level     uint8
	override  chars.CharType // 0, chars.L or chars.R
	isolate   bool
	initIndex int32 // code point of the isolate initiator, -1 otherwise
}

// resolveExplicit computes the explicit embedding levels of a paragraph,
// rules X1–X8. The status stack is a fixed-size array: level 0 or 1 at
// the bottom plus at most maxDepth pushes.
//
// Every code point receives a level here. Characters removed by X9 in
// the standard's formulation (RLE, LRE, RLO, LRO, PDF, BN) are retained
// and take the level current at their position; rule 5.2 adjusts them
// again after the implicit rules.
func (rs *resolver) resolveExplicit(p *cpParagraph) {
	var stack [maxDepth + 2]statusFrame
	sp := 0
	stack[0] = statusFrame{level: p.level, initIndex: -1}
	overflowIsolate, overflowEmbedding, validIsolate := 0, 0, 0

	for i := p.start; i <= p.end; i++ {
		t := rs.types[i]
		switch {
		case t&(chars.RLE|chars.LRE|chars.RLO|chars.LRO) != 0: // X2–X5
			rs.levels[i] = stack[sp].level
			newLevel := nextOddLevel(stack[sp].level)
			if t&(chars.LRE|chars.LRO) != 0 {
				newLevel = nextEvenLevel(stack[sp].level)
			}
			var override chars.CharType
			if t&chars.RLO != 0 {
				override = chars.R
			} else if t&chars.LRO != 0 {
				override = chars.L
			}
			if newLevel <= maxDepth && overflowIsolate == 0 && overflowEmbedding == 0 {
				sp++
				stack[sp] = statusFrame{level: newLevel, override: override, initIndex: -1}
			} else if overflowIsolate == 0 {
				overflowEmbedding++
			}

		case t&chars.IsolateInits != 0: // X5a–X5c
			rtl := t&chars.RLI != 0
			if t&chars.FSI != 0 {
				rtl = rs.autoLevel(i+1, true) == 1
			}
			rs.levels[i] = stack[sp].level
			if stack[sp].override != 0 {
				rs.changeClass(i, stack[sp].override)
			}
			newLevel := nextEvenLevel(stack[sp].level)
			if rtl {
				newLevel = nextOddLevel(stack[sp].level)
			}
			if newLevel <= maxDepth && overflowIsolate == 0 && overflowEmbedding == 0 {
				validIsolate++
				sp++
				stack[sp] = statusFrame{level: newLevel, isolate: true, initIndex: int32(i)}
			} else {
				overflowIsolate++
			}

		case t&chars.PDI != 0: // X6a
			if overflowIsolate > 0 {
				overflowIsolate--
			} else if validIsolate > 0 {
				overflowEmbedding = 0
				assert(sp > 0, "valid isolate count is set but the status stack has no isolate frame")
				for !stack[sp].isolate {
					sp--
				}
				if init := stack[sp].initIndex; init >= 0 {
					rs.pairs[int(init)] = i
					rs.pairs[i] = int(init)
				}
				sp--
				validIsolate--
			}
			rs.levels[i] = stack[sp].level
			if stack[sp].override != 0 {
				rs.changeClass(i, stack[sp].override)
			}

		case t&chars.PDF != 0: // X7
			if overflowIsolate == 0 {
				if overflowEmbedding > 0 {
					overflowEmbedding--
				} else if !stack[sp].isolate && sp > 0 {
					sp--
				}
			}
			rs.levels[i] = stack[sp].level

		case t&chars.B != 0: // X8
			rs.levels[i] = p.level

		default: // X6
			rs.levels[i] = stack[sp].level
			if stack[sp].override != 0 && t&chars.BN == 0 {
				rs.changeClass(i, stack[sp].override)
			}
		}
	}
}

// nextOddLevel returns the least odd level greater than l.
func nextOddLevel(l uint8) uint8 {
	return (l + 1) | 1
}

// nextEvenLevel returns the least even level greater than l.
func nextEvenLevel(l uint8) uint8 {
	return (l + 2) &^ 1
}
