// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transduce

import (
	"strings"

	"github.com/pdiddy/callout-bridge/internal/remap"
)

// fenceBase is the fence length of a top-level container; each nesting
// level adds one colon.
const fenceBase = 3

// Transform rewrites every admonition block in text into a fenced directive
// container, resolving block types through table. It is a pure function of
// its arguments: one left-to-right pass, no I/O, no shared state. Output is
// joined with LF regardless of the input's line endings.
func Transform(text string, table remap.Table) string {
	lines := splitLines(text)
	out := make([]string, 0, len(lines))
	var stack blockStack

	for _, line := range lines {
		if m, ok := parseMarker(line); ok {
			out = openBlock(&stack, out, m, table)
			continue
		}
		// A non-blank line at insufficient indentation ends the blocks it
		// has dedented out of. Blank lines are never evidence of closure.
		if !stack.empty() && !isBlank(line) {
			out = closeToIndent(&stack, out, indentOf(line))
		}
		out = append(out, line)
	}

	for !stack.empty() {
		out = appendClose(&stack, out)
	}

	return strings.Join(out, "\n")
}

// openBlock closes every sibling or deeper frame at the marker's
// indentation, then emits the opening fence and pushes the new frame.
func openBlock(stack *blockStack, out []string, m marker, table remap.Table) []string {
	for !stack.empty() && stack.peek().baseIndent >= m.indent() {
		out = appendClose(stack, out)
	}

	dest := table.Resolve(m.typ)
	title, hasTitle := resolveTitle(m, dest)

	open := m.prefix + fence(stack.depth()) + dest
	if hasTitle {
		open += "[" + title + "]"
	}
	out = append(out, open)

	stack.push(frame{
		baseIndent:    m.indent(),
		contentIndent: m.indent() + 1,
		prefix:        m.prefix,
	})
	return out
}

// closeToIndent pops frames whose content threshold the line no longer
// reaches. It stops at the first frame the line is still inside of.
func closeToIndent(stack *blockStack, out []string, indent int) []string {
	for !stack.empty() && stack.peek().contentIndent > indent {
		out = appendClose(stack, out)
	}
	return out
}

// appendClose pops the innermost frame and emits its closing fence. The
// fence length comes from the stack depth after the pop, which equals the
// depth at which the frame was opened, so open and close lengths agree.
func appendClose(stack *blockStack, out []string) []string {
	f := stack.pop()
	return append(out, f.prefix+fence(stack.depth()))
}

// resolveTitle applies the title policy: an explicit title is used verbatim;
// a type changed by the remap synthesizes one from the original token so the
// source label survives; an unchanged type carries none and the destination
// dialect's default label applies. An explicitly empty title suppresses
// synthesis without emitting a bracket.
func resolveTitle(m marker, dest string) (string, bool) {
	if m.hasTitle {
		return m.title, m.title != ""
	}
	if dest != strings.ToLower(m.typ) {
		return capitalize(m.typ), true
	}
	return "", false
}

func fence(depth int) string {
	return strings.Repeat(":", fenceBase+depth)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// splitLines splits text on newline boundaries, accepting both LF and CRLF
// endings.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// indentOf measures a line's leading whitespace in characters.
func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
