/*
Package bidi implements the resolution core of the Unicode Bidirectional
Algorithm (UAX #9).

Given a string in logical order and an optional base direction, the package
resolves an embedding level for every character and reports paragraph
boundaries. From a resolved level array clients may derive the visual-order
index permutation, the list of substrings to reverse for display, and the
set of characters to replace by their mirror glyphs inside right-to-left
runs.

All positional values in the public API are UTF-16 code-unit offsets: a
code point outside the Basic Multilingual Plane occupies two positions and
both positions carry the same embedding level. This matches the indexing
conventions of the text stacks this package is typically embedded in.
Internally the algorithm operates on code points throughout.

Typical usage:

	levels := bidi.EmbeddingLevels("abc אבג", bidi.DirAuto)
	visual := levels.ReorderedIndices(0, -1)
	display := levels.ReorderedString(0, -1)

The resolver is a pure function of its inputs. No state is shared between
calls and concurrent calls on different strings are safe. Line breaking is
not handled here: callers that wrap text re-apply the reordering entry
points per display line, passing the line's code-unit range.

Package `chars` contains the Unicode data surface used by this package:
the bidi character class of a code point, bracket pairing, and mirror
glyphs.
*/
package bidi

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bidi'.
func tracer() tracing.Trace {
	return tracing.Select("bidi")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
