package cmd

import (
	"github.com/KornaPhp/random/internal/generate"
	"github.com/spf13/cobra"
)

var passwordRequireAll = false

// passwordCmd represents the password command
var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "generate passwords from letters, numbers and symbols",
	Long: `password generates passwords using every character class, 16 characters long by default

usage:
random password
random password -l 24 --require-all
random password -i`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runGenerate(generate.KindPassword, generate.RequireAll(passwordRequireAll))
	},
}

func init() {
	rootCmd.AddCommand(passwordCmd)
	addGenerateFlags(passwordCmd, true)

	passwordCmd.Flags().BoolVar(&passwordRequireAll, "require-all", false, "require at least one character of every class")
}
