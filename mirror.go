package bidi

import (
	"github.com/npillmayer/bidi/chars"
)

// MirroredCharacters returns the positions within [from,to] whose
// character sits at an odd embedding level and has a mirror glyph,
// mapped to the replacement character (L4). Keys are code-unit indices;
// for a surrogate pair only the leading unit is reported.
func (rl *ResolvedLevels) MirroredCharacters(from, to int) map[int]rune {
	mirrored := make(map[int]rune)
	if len(rl.Levels) == 0 {
		return mirrored
	}
	from, to = rl.clampRange(from, to)
	for cu := from; cu <= to; cu++ {
		if rl.Levels[cu]&1 == 0 {
			continue
		}
		cp := rl.cuToCp[cu]
		if rl.cpToCu[cp] != cu {
			continue // trailing unit of a surrogate pair
		}
		if mirror, ok := chars.MirroredCharacter(rl.runes[cp]); ok {
			mirrored[cu] = mirror
		}
	}
	return mirrored
}
