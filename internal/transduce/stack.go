// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transduce

// frame records one currently open block. baseIndent is the indentation of
// the marker line that opened it; contentIndent is the minimum indentation a
// non-blank line needs to still count as the block's content. prefix keeps
// the marker line's whitespace verbatim for the closing fence.
type frame struct {
	baseIndent    int
	contentIndent int
	prefix        string
}

// blockStack is the LIFO of open blocks, outermost at the bottom. Frames are
// strictly increasing in baseIndent from bottom to top.
type blockStack struct {
	frames []frame
}

func (s *blockStack) push(f frame) {
	s.frames = append(s.frames, f)
}

func (s *blockStack) pop() frame {
	f := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return f
}

func (s *blockStack) peek() frame {
	return s.frames[len(s.frames)-1]
}

func (s *blockStack) depth() int {
	return len(s.frames)
}

func (s *blockStack) empty() bool {
	return len(s.frames) == 0
}
