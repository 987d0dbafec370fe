// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transduce

import "testing"

func TestBlockStack(t *testing.T) {
	var s blockStack

	if !s.empty() || s.depth() != 0 {
		t.Fatalf("new stack: empty=%v depth=%d", s.empty(), s.depth())
	}

	outer := frame{baseIndent: 0, contentIndent: 1, prefix: ""}
	inner := frame{baseIndent: 4, contentIndent: 5, prefix: "    "}

	s.push(outer)
	s.push(inner)

	if s.depth() != 2 {
		t.Fatalf("depth = %d, want 2", s.depth())
	}
	if got := s.peek(); got != inner {
		t.Errorf("peek = %+v, want %+v", got, inner)
	}
	if got := s.pop(); got != inner {
		t.Errorf("pop = %+v, want %+v", got, inner)
	}
	if got := s.peek(); got != outer {
		t.Errorf("peek after pop = %+v, want %+v", got, outer)
	}
	if got := s.pop(); got != outer {
		t.Errorf("second pop = %+v, want %+v", got, outer)
	}
	if !s.empty() {
		t.Error("stack should be empty after popping both frames")
	}
}
