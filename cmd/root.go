package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/neurosym/logicpipe/utils/config"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "logicpipe",
	Short: "A neuro-symbolic logic puzzle solver",
	Long: `logicpipe solves natural-language logic puzzles by asking a language
model to write a logic program, running that program through a
constraint solver, and asking the model to explain the solver's output.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Verbose = verbose
		config.Debug = debug
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug output")
}

// Execute runs the root command
func Execute() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	err := rootCmd.Execute()
	if err != nil {
		errMsg := err.Error()
		if strings.Contains(errMsg, "unknown command") {
			fmt.Printf("To solve a puzzle, use the 'solve' command:\n\n   logicpipe solve \"<puzzle text>\"\n\n")
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
