package main

import (
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/phoneword/internal/cli"
	"codeberg.org/snonux/phoneword/internal/processor"
)

func main() {
	flags := cli.NewFlags()

	rootCmd := cli.CreateRootCommand(flags)

	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(args, flags)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(args []string, flags *cli.Flags) error {
	flags.ResolveInputs(args)

	proc := processor.NewProcessor(flags)
	return proc.Run()
}
