package env

// numparamFrame is one entry of the MaxNumparamStack: depth distinguishes
// a real block boundary (depth > 0) from a top-level/method frame
// (depth == 0, where _1.._9 are plain locals, never numparams), and
// maxSeen records the highest _N registered in that frame.
type numparamFrame struct {
	depth   int
	maxSeen int
}

// MaxNumparamStack is a stack of (depth, max_seen) frames, consulted on
// every `_N` occurrence inside a block body to decide whether it is an
// implicit numbered block parameter or an ordinary local (spec §9
// "Numparam scope").
type MaxNumparamStack struct {
	frames []numparamFrame
}

// Push opens a new frame. dynamicBlock is true for `{ }`/`do...end`
// blocks, which may capture numparams; false for method/class/module
// bodies, which never do.
func (s *MaxNumparamStack) Push(dynamicBlock bool) {
	depth := 0
	if dynamicBlock {
		depth = 1
	}
	s.frames = append(s.frames, numparamFrame{depth: depth})
}

// Pop closes the innermost frame and returns the max numparam seen in
// it, so the caller can build the right Args node for a Numblock.
func (s *MaxNumparamStack) Pop() int {
	n := len(s.frames)
	if n == 0 {
		return 0
	}
	top := s.frames[n-1]
	s.frames = s.frames[:n-1]
	return top.maxSeen
}

// HasNumparams reports whether the innermost block frame has registered
// any numbered parameters yet.
func (s *MaxNumparamStack) HasNumparams() bool {
	if n := len(s.frames); n > 0 {
		return s.frames[n-1].maxSeen > 0
	}
	return false
}

// Register records that _N was used in the innermost frame and returns
// whether that frame is a dynamic block (so _N is a numparam at all,
// rather than a plain local outside any block).
func (s *MaxNumparamStack) Register(n int) (isNumparam bool) {
	idx := len(s.frames) - 1
	if idx < 0 || s.frames[idx].depth == 0 {
		return false
	}
	if n > s.frames[idx].maxSeen {
		s.frames[idx].maxSeen = n
	}
	return true
}
