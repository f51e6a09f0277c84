package encode

// accepts decides whether a complete segmentation is emitted. An empty
// stack is rejected and a single segment always passes. A longer stack
// must strictly alternate between word and digit segments, and all of its
// word segments must share one length. That length is fixed by the first
// word segment: a leading digit leaves it open until the first word
// appears.
func accepts(stack []Segment) bool {
	if len(stack) == 0 {
		return false
	}
	if len(stack) == 1 {
		return true
	}

	wasDigit := stack[0].IsDigit
	fixedLen := 0
	if !wasDigit {
		fixedLen = len(stack[0].Word)
	}

	for _, s := range stack[1:] {
		if fixedLen == 0 {
			fixedLen = s.Len()
		}
		if s.IsDigit == wasDigit {
			return false
		}
		if !s.IsDigit && len(s.Word) != fixedLen {
			return false
		}
		wasDigit = s.IsDigit
	}

	return true
}
