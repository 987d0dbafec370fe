// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transduce

import (
	"regexp"
	"strings"
	"testing"

	"github.com/pdiddy/callout-bridge/internal/remap"
)

func TestTransform(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single block type unchanged",
			input: "!!! note\n    Hello",
			want:  ":::note\n    Hello\n:::",
		},
		{
			name:  "type remapped synthesizes title",
			input: "!!! bug\n    Oops",
			want:  ":::danger[Bug]\n    Oops\n:::",
		},
		{
			name:  "explicit title suppresses synthesis",
			input: "!!! bug \"Known Issue\"\n    X",
			want:  ":::danger[Known Issue]\n    X\n:::",
		},
		{
			name:  "explicit title on unchanged type",
			input: "!!! note \"Heads Up\"\n    X",
			want:  ":::note[Heads Up]\n    X\n:::",
		},
		{
			name:  "explicitly empty title emits no bracket",
			input: "!!! bug \"\"\n    X",
			want:  ":::danger\n    X\n:::",
		},
		{
			name:  "unrecognized type falls back",
			input: "!!! randomthing\n    text",
			want:  ":::note[Randomthing]\n    text\n:::",
		},
		{
			name:  "nested block uses longer fence",
			input: "!!! note\n    outer\n    !!! tip\n        inner",
			want:  ":::note\n    outer\n    ::::tip\n        inner\n    ::::\n:::",
		},
		{
			name:  "sibling at top level closes previous block",
			input: "!!! note\n    a\n!!! tip\n    b",
			want:  ":::note\n    a\n:::\n:::tip\n    b\n:::",
		},
		{
			name:  "sibling at same nested indentation",
			input: "!!! note\n    !!! tip\n        t\n    !!! warning\n        w",
			want:  ":::note\n    ::::tip\n        t\n    ::::\n    ::::warning\n        w\n    ::::\n:::",
		},
		{
			name:  "dedent closes inner block only",
			input: "!!! note\n    !!! tip\n        x\n    y\nz",
			want:  ":::note\n    ::::tip\n        x\n    ::::\n    y\n:::\nz",
		},
		{
			name:  "dedent past both blocks closes both",
			input: "!!! note\n    !!! tip\n        x\nafter",
			want:  ":::note\n    ::::tip\n        x\n    ::::\n:::\nafter",
		},
		{
			name:  "blank line does not close a block",
			input: "!!! note\n    a\n\n    b",
			want:  ":::note\n    a\n\n    b\n:::",
		},
		{
			name:  "blank line then dedented line closes",
			input: "!!! note\n    a\n\nafter",
			want:  ":::note\n    a\n\n:::\nafter",
		},
		{
			name:  "uppercase token lowercased for lookup",
			input: "!!! Bug\n    x",
			want:  ":::danger[Bug]\n    x\n:::",
		},
		{
			name:  "crlf input normalized to lf",
			input: "!!! bug\r\n    Oops\r\n",
			want:  ":::danger[Bug]\n    Oops\n\n:::",
		},
		{
			name:  "text without admonitions passes through",
			input: "# Title\n\nplain paragraph\n",
			want:  "# Title\n\nplain paragraph\n",
		},
		{
			name:  "bare sigil without type is not a marker",
			input: "!!!\ntext",
			want:  "!!!\ntext",
		},
		{
			name:  "sigil without separating space is not a marker",
			input: "!!!note\ntext",
			want:  "!!!note\ntext",
		},
		{
			name:  "trailing text after title is dropped with the marker line",
			input: "!!! note \"T\" {: .wide}\n    x",
			want:  ":::note[T]\n    x\n:::",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "three levels of nesting",
			input: "!!! note\n    !!! tip\n        !!! warning\n            deep",
			want:  ":::note\n    ::::tip\n        :::::warning\n            deep\n        :::::\n    ::::\n:::",
		},
	}

	table := remap.Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transform(tt.input, table)
			if got != tt.want {
				t.Errorf("Transform() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestTransform_Deterministic(t *testing.T) {
	input := "!!! note\n    !!! bug\n        x\nout"
	table := remap.Default()
	first := Transform(input, table)
	for i := 0; i < 3; i++ {
		if got := Transform(input, table); got != first {
			t.Fatalf("run %d differs: %q vs %q", i, got, first)
		}
	}
}

// fenceRe matches a destination-dialect marker line: an opening fence when a
// type follows the colons, a closing fence when nothing does.
var fenceRe = regexp.MustCompile(`^(\s*)(:{3,})(\w*)`)

// replayFences re-parses output and verifies balanced nesting and the
// depth-encoding fence lengths. It returns the number of opens seen.
func replayFences(t *testing.T, output string) int {
	t.Helper()
	var open []int // fence lengths of currently open containers
	opens := 0
	for _, line := range strings.Split(output, "\n") {
		m := fenceRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		length := len(m[2])
		if m[3] != "" {
			if want := fenceBase + len(open); length != want {
				t.Errorf("open fence %q has length %d at depth %d, want %d", line, length, len(open), want)
			}
			open = append(open, length)
			opens++
			continue
		}
		if len(open) == 0 {
			t.Fatalf("close fence %q with no open container", line)
		}
		top := open[len(open)-1]
		open = open[:len(open)-1]
		if length != top {
			t.Errorf("close fence %q has length %d, opened with %d", line, length, top)
		}
	}
	if len(open) != 0 {
		t.Errorf("%d containers left open", len(open))
	}
	return opens
}

func TestTransform_BalancedOutput(t *testing.T) {
	inputs := []string{
		"!!! note\n    a",
		"!!! note\n    !!! tip\n        b\n    !!! bug\n        c\nd",
		"!!! warning\n  !!! note\n    x\n!!! tip\n  y",
		// Ambiguous dedent between two frame boundaries: popped per the
		// contentIndent rule, still balanced.
		"!!! note\n        !!! tip\n            x\n     half",
		"!!! a\n    !!! b\n        !!! c\n            x",
	}
	table := remap.Default()
	for _, input := range inputs {
		output := Transform(input, table)
		opens := replayFences(t, output)
		if opens == 0 {
			t.Errorf("no containers found in output %q", output)
		}
	}
}

func TestTransform_CustomTable(t *testing.T) {
	table := remap.New(map[string]string{"note": "memo"}, "aside")

	got := Transform("!!! note\n    x", table)
	want := ":::memo[Note]\n    x\n:::"
	if got != want {
		t.Errorf("remapped note = %q, want %q", got, want)
	}

	got = Transform("!!! whatever\n    x", table)
	want = ":::aside[Whatever]\n    x\n:::"
	if got != want {
		t.Errorf("fallback = %q, want %q", got, want)
	}
}
