package cli

// Flags holds all command-line flag values
type Flags struct {
	CfgFile     string
	WordsFile   string
	NumbersFile string
}

// Default input paths, relative to the working directory.
const (
	DefaultWordsFile   = "tests/words.txt"
	DefaultNumbersFile = "tests/numbers.txt"
)

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		WordsFile:   DefaultWordsFile,
		NumbersFile: DefaultNumbersFile,
	}
}
