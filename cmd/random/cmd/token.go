package cmd

import (
	"github.com/KornaPhp/random/internal/generate"
	"github.com/spf13/cobra"
)

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "generate alphanumeric tokens",
	Long: `token generates alphanumeric tokens that contain at least one lowercase letter,
one uppercase letter and one number`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runGenerate(generate.KindToken)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	addGenerateFlags(tokenCmd, false)
}
