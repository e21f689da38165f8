package cmd

import (
	"strconv"

	"github.com/KornaPhp/random/internal/generate"
	"github.com/KornaPhp/random/pkg/log"
	"github.com/spf13/cobra"
)

// numberCmd represents the number command
var numberCmd = &cobra.Command{
	Use:   "number MIN MAX",
	Short: "generate integers in the inclusive range MIN to MAX",
	Long: `number draws uniformly distributed integers between MIN and MAX, both included

usage:
random number 1 6
random number -- -10 10 -c 3`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		min, err := strconv.Atoi(args[0])
		if err != nil {
			log.Fatal().Err(err).Str("min", args[0]).Msg("invalid minimum")
		}
		max, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatal().Err(err).Str("max", args[1]).Msg("invalid maximum")
		}
		runGenerate(generate.KindNumber, generate.Range(min, max))
	},
}

func init() {
	rootCmd.AddCommand(numberCmd)

	numberCmd.Flags().IntVarP(&count, "count", "c", 1, "number of values to generate")
	numberCmd.Flags().StringVar(&template, "template", "", "template each value is rendered into, e.g. 'ROLL={value}'")
	numberCmd.Flags().BoolVar(&progress, "progress", false, "show a progress bar on stderr")
}
