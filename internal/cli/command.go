package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/phoneword/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "phoneword [words-file] [numbers-file]",
		Short: "Phone number to word-sequence transcoder",
		Long: `phoneword enumerates every way to transcribe phone numbers into
sequences of dictionary words and leftover digits, using a fixed
letter-to-digit table.

Solutions are written to standard output, one per line; a summary of
accepted and rejected candidates goes to standard error.

Examples:
  phoneword                           # Use tests/words.txt and tests/numbers.txt
  phoneword words.txt numbers.txt     # Explicit input files`,
		Args:    cobra.MaximumNArgs(2),
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.phoneword.yaml)")
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".phoneword" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".phoneword")
	}

	// Environment variables
	viper.SetEnvPrefix("PHONEWORD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ResolveInputs fills in the input file paths from the positional
// arguments, falling back to the config file and finally the built-in
// defaults. Arguments always win over configuration.
func (f *Flags) ResolveInputs(args []string) {
	if path := viper.GetString("input.words"); path != "" {
		f.WordsFile = path
	}
	if path := viper.GetString("input.numbers"); path != "" {
		f.NumbersFile = path
	}
	if len(args) > 0 {
		f.WordsFile = args[0]
	}
	if len(args) > 1 {
		f.NumbersFile = args[1]
	}
}
