// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transduce rewrites indentation-scoped admonition blocks into
// explicitly fenced directive containers. It scans a document line by line,
// tracking the stack of open blocks, and never interprets any other Markdown
// structure.
// Implements: prd001-transducer (R1-R4);
//
//	docs/ARCHITECTURE § Block Transducer.
package transduce

import "regexp"

// openMarkerRe matches an admonition open marker: leading whitespace, the
// !!! sigil, a bareword type token, and an optional double-quoted title on
// the same line.
var openMarkerRe = regexp.MustCompile(`^(\s*)!!!\s+(\w+)(?:\s+"(.*?)")?`)

// marker is the structured result of classifying a block-open line.
type marker struct {
	prefix   string // leading whitespace, verbatim
	typ      string // type token in its original casing
	title    string // quoted title text, meaningful only when hasTitle
	hasTitle bool
}

// indent reports the marker's indentation depth in characters.
func (m marker) indent() int { return len(m.prefix) }

// parseMarker classifies line. ok is false for every line that is not a
// block-open marker. Submatch indexes distinguish an absent title from an
// explicitly empty one ("").
func parseMarker(line string) (m marker, ok bool) {
	idx := openMarkerRe.FindStringSubmatchIndex(line)
	if idx == nil {
		return marker{}, false
	}
	m.prefix = line[idx[2]:idx[3]]
	m.typ = line[idx[4]:idx[5]]
	if idx[6] >= 0 {
		m.title = line[idx[6]:idx[7]]
		m.hasTitle = true
	}
	return m, true
}
