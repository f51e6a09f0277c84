package encode

// Segment is one atomic unit of a translation: either a whole dictionary
// word or a single leftover digit. Word segments borrow the dictionary's
// string; they never own text of their own.
type Segment struct {
	Word    string
	Digit   byte
	IsDigit bool
}

// wordSegment wraps a dictionary word.
func wordSegment(word string) Segment {
	return Segment{Word: word}
}

// digitSegment wraps a single digit value 0-9.
func digitSegment(d byte) Segment {
	return Segment{Digit: d, IsDigit: true}
}

// Len returns the character count of the segment: the word length for a
// word segment, always 1 for a digit segment.
func (s Segment) Len() int {
	if s.IsDigit {
		return 1
	}
	return len(s.Word)
}

// String renders the segment as it appears in output lines.
func (s Segment) String() string {
	if s.IsDigit {
		return string('0' + s.Digit)
	}
	return s.Word
}
