package html

import (
	"io"
	"strings"

	"github.com/npillmayer/bidi"
	"golang.org/x/net/html"
)

// Text extracts the textual content of an HTML fragment and all its
// descendents, in logical order. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that Text cannot respect CSS styling suppressing
// the visibility of a node's descendents).
func Text(input io.Reader) (string, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, n := range nodes {
		collectText(n, &sb)
	}
	return sb.String(), nil
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

// Resolve extracts the text of an HTML fragment and resolves its
// embedding levels. The returned string is the text the levels refer to.
func Resolve(input io.Reader, dir bidi.Direction) (string, *bidi.ResolvedLevels, error) {
	text, err := Text(input)
	if err != nil {
		return "", nil, err
	}
	return text, bidi.EmbeddingLevels(text, dir), nil
}
