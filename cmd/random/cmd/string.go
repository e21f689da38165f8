package cmd

import (
	"github.com/KornaPhp/random/internal/generate"
	"github.com/KornaPhp/random/pkg/random"
	"github.com/spf13/cobra"
)

var (
	useLower   = false
	useUpper   = false
	useNumbers = false
	useSymbols = false
	requireAll = false
)

// stringCmd represents the string command
var stringCmd = &cobra.Command{
	Use:   "string",
	Short: "generate strings from a selection of character classes",
	Long: `string generates random strings using the selected character classes.
When no class flag is provided, every class is used.
With --require-all, every selected class appears at least once

usage:
random string -l 12 --upper --numbers
random string --lower --symbols --require-all -c 10`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		classes := random.NoClasses
		for c, v := range map[random.Class]bool{
			random.Lower:   useLower,
			random.Upper:   useUpper,
			random.Numbers: useNumbers,
			random.Symbols: useSymbols,
		} {
			if v {
				classes |= c
			}
		}
		if classes == random.NoClasses {
			classes = random.AllClasses
		}
		runGenerate(generate.KindString, generate.Classes(classes), generate.RequireAll(requireAll))
	},
}

func init() {
	rootCmd.AddCommand(stringCmd)
	addGenerateFlags(stringCmd, true)

	stringCmd.Flags().BoolVar(&useLower, "lower", false, "include lowercase letters")
	stringCmd.Flags().BoolVar(&useUpper, "upper", false, "include uppercase letters")
	stringCmd.Flags().BoolVar(&useNumbers, "numbers", false, "include numbers")
	stringCmd.Flags().BoolVar(&useSymbols, "symbols", false, "include symbols")
	stringCmd.Flags().BoolVar(&requireAll, "require-all", false, "require at least one character of every selected class")
}
