package cmd

import (
	"github.com/KornaPhp/random/internal/generate"
	"github.com/spf13/cobra"
)

// lettersCmd represents the letters command
var lettersCmd = &cobra.Command{
	Use:   "letters",
	Short: "generate strings of upper and lowercase letters",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runGenerate(generate.KindLetters)
	},
}

func init() {
	rootCmd.AddCommand(lettersCmd)
	addGenerateFlags(lettersCmd, false)
}
