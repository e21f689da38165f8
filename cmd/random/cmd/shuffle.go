package cmd

import (
	"github.com/KornaPhp/random/internal/generate"
	"github.com/spf13/cobra"
)

// shuffleCmd represents the shuffle command
var shuffleCmd = &cobra.Command{
	Use:   "shuffle ITEM...",
	Short: "shuffle the provided items",
	Long: `shuffle prints the provided items in a uniformly random order

usage:
random shuffle alice bob carol dave
random shuffle -c 3 -o json red green blue`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runGenerate(generate.KindShuffle, generate.Items(args))
	},
}

func init() {
	rootCmd.AddCommand(shuffleCmd)

	shuffleCmd.Flags().IntVarP(&count, "count", "c", 1, "number of shuffles to generate")
	shuffleCmd.Flags().StringVar(&template, "template", "", "template each shuffle is rendered into")
}
