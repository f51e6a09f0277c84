package encode

import (
	"bufio"
	"fmt"
	"io"

	"codeberg.org/snonux/phoneword/internal/dict"
)

// Encoder translates phone numbers into word sequences against a fixed
// dictionary. It owns the output buffering and the accepted/rejected
// counters, which accumulate across all numbers of a run.
type Encoder struct {
	dict  dict.Dictionary
	out   *bufio.Writer
	stack []Segment

	Accepted int
	Rejected int
}

// New creates an encoder writing solutions to w.
func New(d dict.Dictionary, w io.Writer) *Encoder {
	return &Encoder{
		dict: d,
		out:  bufio.NewWriter(w),
	}
}

// Encode enumerates and prints every acceptable translation of one phone
// number. The line is echoed verbatim as the output prefix; only its
// ASCII digits take part in the search. Returns an error only on write
// failure, which aborts the whole run.
func (e *Encoder) Encode(line string) error {
	return e.search(line, stripNonDigits(line))
}

// Flush writes out any buffered output.
func (e *Encoder) Flush() error {
	if err := e.out.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

// search consumes digits left to right, backtracking over the segment
// stack. Every prefix of the remaining digits is tried shortest first; a
// prefix with a dictionary bucket pushes each of its words in bucket
// order and recurses on the rest. A lone digit is only tried when no
// prefix matched at this position and the stack top is not already a
// digit, so two digit segments can never sit next to each other.
func (e *Encoder) search(num, digits string) error {
	if len(digits) == 0 {
		if !accepts(e.stack) {
			e.Rejected++
			return nil
		}
		if err := e.render(num); err != nil {
			return err
		}
		e.Accepted++
		return nil
	}

	foundWord := false
	for i := 1; i <= len(digits); i++ {
		words, ok := e.dict[digits[:i]]
		if !ok {
			continue
		}
		for _, word := range words {
			foundWord = true
			e.stack = append(e.stack, wordSegment(word))
			if err := e.search(num, digits[i:]); err != nil {
				return err
			}
			e.stack = e.stack[:len(e.stack)-1]
		}
	}
	if foundWord {
		return nil
	}

	if n := len(e.stack); n > 0 && e.stack[n-1].IsDigit {
		// Dead end: a digit is already on top and no word matched.
		return nil
	}
	e.stack = append(e.stack, digitSegment(digits[0]-'0'))
	err := e.search(num, digits[1:])
	e.stack = e.stack[:len(e.stack)-1]
	return err
}

// render streams one solution line piece by piece, never materializing
// the full line as a string. With an empty stack only "num:" is written.
func (e *Encoder) render(num string) error {
	e.out.WriteString(num)
	if len(e.stack) == 0 {
		if err := e.out.WriteByte(':'); err != nil {
			return fmt.Errorf("failed to write solution: %w", err)
		}
		return nil
	}
	e.out.WriteString(": ")
	last := len(e.stack) - 1
	for _, s := range e.stack[:last] {
		e.writeSegment(s)
		e.out.WriteByte(' ')
	}
	e.writeSegment(e.stack[last])
	// bufio.Writer latches the first error, so checking the final write
	// covers the whole line.
	if err := e.out.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write solution: %w", err)
	}
	return nil
}

func (e *Encoder) writeSegment(s Segment) {
	if s.IsDigit {
		e.out.WriteByte('0' + s.Digit)
		return
	}
	e.out.WriteString(s.Word)
}

// stripNonDigits keeps only the ASCII digits of a number line, dropping
// separators such as "-" or "/".
func stripNonDigits(line string) string {
	digits := make([]byte, 0, len(line))
	for i := 0; i < len(line); i++ {
		if c := line[i]; c >= '0' && c <= '9' {
			digits = append(digits, c)
		}
	}
	return string(digits)
}
