// Package encode implements the phone-number translation search: a
// depth-first backtracking walk over the digits of a number, matching
// dictionary words by their digit keys and falling back to single digits
// where no word fits.
//
// The acceptance rules are stricter than the commonly known form of this
// puzzle. Besides forbidding adjacent digit segments, an emitted
// translation must strictly alternate between words and digits, and all
// of its words must have the same length. This is deliberate and matches
// the reference behavior of the program, not an oversight.
package encode
