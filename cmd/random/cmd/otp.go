package cmd

import (
	"github.com/KornaPhp/random/internal/generate"
	"github.com/spf13/cobra"
)

// otpCmd represents the otp command
var otpCmd = &cobra.Command{
	Use:     "otp",
	Aliases: []string{"passcode"},
	Short:   "generate numeric one time passcodes",
	Long: `otp generates numeric one time passcodes, 6 digits long by default

usage:
random otp
random otp -l 8 -c 5 -o text`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runGenerate(generate.KindOTP)
	},
}

func init() {
	rootCmd.AddCommand(otpCmd)
	addGenerateFlags(otpCmd, false)
}
