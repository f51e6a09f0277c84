// Package dict builds the reverse word index used by the encoder: each
// dictionary word is reduced to its digit key via a fixed letter-to-digit
// table, and words sharing a key end up in the same bucket. The index is
// built once per run and is read-only afterwards.
package dict
