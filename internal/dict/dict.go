package dict

import (
	"fmt"

	"codeberg.org/snonux/phoneword/internal/batch"
)

// Dictionary maps a digit key to the words that encode to it, in input
// order. Two different words sharing a key are synonyms for encoding
// purposes; duplicate words in the input yield duplicate bucket entries.
type Dictionary map[string][]string

// Load reads a words file (one word per line) and builds the reverse
// index from digit key to words.
func Load(path string) (Dictionary, error) {
	d := make(Dictionary, 100)

	err := batch.EachLine(path, func(word string) error {
		key := WordToKey(word)
		d[key] = append(d[key], word)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}

	return d, nil
}

// WordToKey computes the digit key for a word: every letter is mapped
// through CharToDigit and non-letter characters (punctuation,
// apostrophes) are skipped. The word itself is stored and printed
// verbatim elsewhere; only the key ignores the extra characters.
func WordToKey(word string) string {
	key := make([]byte, 0, len(word))
	for i := 0; i < len(word); i++ {
		c := word[i]
		if isLetter(c) {
			key = append(key, '0'+CharToDigit(c))
		}
	}
	return string(key)
}

// CharToDigit returns the digit for a letter per the fixed encoding
// table. Callers must only pass a-z or A-Z; anything else is a contract
// violation and panics.
func CharToDigit(c byte) byte {
	switch lower(c) {
	case 'e':
		return 0
	case 'j', 'n', 'q':
		return 1
	case 'r', 'w', 'x':
		return 2
	case 'd', 's', 'y':
		return 3
	case 'f', 't':
		return 4
	case 'a', 'm':
		return 5
	case 'c', 'i', 'v':
		return 6
	case 'b', 'k', 'u':
		return 7
	case 'l', 'o', 'p':
		return 8
	case 'g', 'h', 'z':
		return 9
	default:
		panic(fmt.Sprintf("invalid input: not a letter: %q", c))
	}
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
