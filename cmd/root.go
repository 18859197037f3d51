package cmd

import (
	"fmt"
	"os"

	"github.com/elbeno/blisp/repl"
	"github.com/spf13/cobra"
)

var rootPrompt string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "blisp",
	Short: "A minimal lisp interpreter",
	Long:  `blisp starts an interactive read-eval-print loop when invoked without a subcommand.`,
	Run: func(cmd *cobra.Command, args []string) {
		repl.RunRepl(rootPrompt)
	},
}

// Execute runs the root command.  This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootPrompt, "prompt", repl.DefaultPrompt,
		"Prompt text printed before each line of input")
}
