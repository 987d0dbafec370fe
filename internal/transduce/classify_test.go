// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transduce

import "testing"

func TestParseMarker(t *testing.T) {
	tests := []struct {
		name string
		line string
		ok   bool
		want marker
	}{
		{
			name: "top level no title",
			line: "!!! note",
			ok:   true,
			want: marker{prefix: "", typ: "note"},
		},
		{
			name: "indented with title",
			line: "    !!! warning \"Careful\"",
			ok:   true,
			want: marker{prefix: "    ", typ: "warning", title: "Careful", hasTitle: true},
		},
		{
			name: "explicitly empty title",
			line: "!!! note \"\"",
			ok:   true,
			want: marker{prefix: "", typ: "note", title: "", hasTitle: true},
		},
		{
			name: "original casing preserved",
			line: "!!! Bug",
			ok:   true,
			want: marker{prefix: "", typ: "Bug"},
		},
		{
			name: "trailing text after the token",
			line: "  !!! tip extra words",
			ok:   true,
			want: marker{prefix: "  ", typ: "tip"},
		},
		{
			name: "non-greedy title capture",
			line: "!!! note \"a\" and \"b\"",
			ok:   true,
			want: marker{prefix: "", typ: "note", title: "a", hasTitle: true},
		},
		{name: "bare sigil", line: "!!!", ok: false},
		{name: "no space after sigil", line: "!!!note", ok: false},
		{name: "sigil mid-line", line: "see !!! note", ok: false},
		{name: "plain text", line: "    just content", ok: false},
		{name: "blank", line: "", ok: false},
		{name: "destination fence", line: ":::note", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseMarker(tt.line)
			if ok != tt.ok {
				t.Fatalf("parseMarker(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if !ok {
				return
			}
			if got != tt.want {
				t.Errorf("parseMarker(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestMarkerIndent(t *testing.T) {
	m, ok := parseMarker("\t  !!! note")
	if !ok {
		t.Fatal("expected a marker")
	}
	if m.indent() != 3 {
		t.Errorf("indent() = %d, want 3", m.indent())
	}
}
