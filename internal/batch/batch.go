// Package batch reads line-oriented input files. Both the words file and
// the numbers file use the same one-entry-per-line format, so a single
// walker serves both.
package batch

import (
	"bufio"
	"fmt"
	"os"
)

// EachLine opens the file at path and calls fn once per line, in order,
// without loading the whole file into memory. Line text is passed without
// its trailing newline. An error from fn aborts the walk and is returned
// unchanged; open and read failures are wrapped.
func EachLine(path string, fn func(line string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	return nil
}
