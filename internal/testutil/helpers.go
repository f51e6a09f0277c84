package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// CreateWordsFile writes a dictionary file with one word per line and
// returns its path.
func CreateWordsFile(t *testing.T, dir string, words ...string) string {
	t.Helper()

	path := filepath.Join(dir, "words.txt")
	CreateTestFile(t, path, []byte(strings.Join(words, "\n")+"\n"))
	return path
}

// CreateNumbersFile writes a numbers file with one entry per line and
// returns its path.
func CreateNumbersFile(t *testing.T, dir string, numbers ...string) string {
	t.Helper()

	path := filepath.Join(dir, "numbers.txt")
	CreateTestFile(t, path, []byte(strings.Join(numbers, "\n")+"\n"))
	return path
}
