// Package processor drives a transcoding run. It loads the word
// dictionary, feeds every number line through the encoder and prints the
// accepted/rejected summary. This package is the coordinator between the
// input, dictionary and encoding components.
package processor
