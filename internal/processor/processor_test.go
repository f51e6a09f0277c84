package processor

import (
	"bytes"
	"path/filepath"
	"testing"

	"codeberg.org/snonux/phoneword/internal/cli"
	"codeberg.org/snonux/phoneword/internal/testutil"
)

func runProcessor(t *testing.T, wordsFile, numbersFile string) (string, string, error) {
	t.Helper()

	flags := &cli.Flags{WordsFile: wordsFile, NumbersFile: numbersFile}
	proc := NewProcessor(flags)

	var out, diag bytes.Buffer
	proc.Out = &out
	proc.Diag = &diag

	err := proc.Run()
	return out.String(), diag.String(), err
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	wordsFile := testutil.CreateWordsFile(t, dir,
		"an", "blau", `Bo"`, "Boot", `bo"s`, "da", "Fee", "fern", "Fest",
		"fort", "je", "jemand", "mir", "Mix", "Mixer", "Name", "neu",
		`o"d`, "Ort", "so", "Tor", "Torf", "Wasser")
	numbersFile := testutil.CreateNumbersFile(t, dir,
		"112", "5624-82", "4824", "0721/608-4067", "10/783--5",
		"1078-913-5", "381482", "04824")

	out, diag, err := runProcessor(t, wordsFile, numbersFile)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	wantOut := `4824: Tor 4
4824: fort
4824: Torf
04824: 0 Tor 4
04824: 0 fort
04824: 0 Torf
`
	if out != wantOut {
		t.Errorf("Expected output:\n%s\ngot:\n%s", wantOut, out)
	}

	wantDiag := "Found solutions: 6, rejected: 6\n"
	if diag != wantDiag {
		t.Errorf("Expected diagnostic %q, got %q", wantDiag, diag)
	}
}

func TestRun_EmptyNumbersFile(t *testing.T) {
	dir := t.TempDir()
	wordsFile := testutil.CreateWordsFile(t, dir, "fern")
	numbersFile := filepath.Join(dir, "numbers.txt")
	testutil.CreateTestFile(t, numbersFile, nil)

	out, diag, err := runProcessor(t, wordsFile, numbersFile)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if out != "" {
		t.Errorf("Expected no output, got %q", out)
	}
	if diag != "Found solutions: 0, rejected: 0\n" {
		t.Errorf("Expected zero-count diagnostic, got %q", diag)
	}
}

func TestRun_MissingWordsFile(t *testing.T) {
	dir := t.TempDir()
	numbersFile := testutil.CreateNumbersFile(t, dir, "4824")

	_, _, err := runProcessor(t, filepath.Join(dir, "missing.txt"), numbersFile)
	if err == nil {
		t.Error("Expected error for missing words file")
	}
}

func TestRun_MissingNumbersFile(t *testing.T) {
	dir := t.TempDir()
	wordsFile := testutil.CreateWordsFile(t, dir, "fern")

	_, _, err := runProcessor(t, wordsFile, filepath.Join(dir, "missing.txt"))
	if err == nil {
		t.Error("Expected error for missing numbers file")
	}
}

func TestRun_IdenticalAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	wordsFile := testutil.CreateWordsFile(t, dir, "Tor", "fort", "Torf", "an")
	numbersFile := testutil.CreateNumbersFile(t, dir, "4824", "0511")

	first, firstDiag, err := runProcessor(t, wordsFile, numbersFile)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	second, secondDiag, err := runProcessor(t, wordsFile, numbersFile)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if first != second || firstDiag != secondDiag {
		t.Error("Expected byte-identical output across runs")
	}
}
