package processor

import (
	"fmt"
	"io"
	"os"

	"codeberg.org/snonux/phoneword/internal/batch"
	"codeberg.org/snonux/phoneword/internal/cli"
	"codeberg.org/snonux/phoneword/internal/dict"
	"codeberg.org/snonux/phoneword/internal/encode"
)

// Processor runs a whole transcoding pass: load the dictionary, encode
// every number from the numbers file, report the summary.
type Processor struct {
	flags *cli.Flags

	// Out receives solution lines, Diag the summary. They default to
	// stdout and stderr.
	Out  io.Writer
	Diag io.Writer
}

// NewProcessor creates a new processor for the given flags
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{
		flags: flags,
		Out:   os.Stdout,
		Diag:  os.Stderr,
	}
}

// Run executes one full pass. Any file or write error is returned as-is;
// nothing is retried.
func (p *Processor) Run() error {
	d, err := dict.Load(p.flags.WordsFile)
	if err != nil {
		return err
	}

	enc := encode.New(d, p.Out)
	err = batch.EachLine(p.flags.NumbersFile, func(number string) error {
		return enc.Encode(number)
	})
	if err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(p.Diag, "Found solutions: %d, rejected: %d\n", enc.Accepted, enc.Rejected)
	return nil
}
