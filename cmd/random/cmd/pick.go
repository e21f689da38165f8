package cmd

import (
	"strconv"

	"github.com/KornaPhp/random/internal/generate"
	"github.com/KornaPhp/random/pkg/log"
	"github.com/spf13/cobra"
)

// pickCmd represents the pick command
var pickCmd = &cobra.Command{
	Use:   "pick COUNT ITEM...",
	Short: "pick COUNT distinct items from the provided items",
	Long: `pick selects COUNT items without repetition, in a random order

usage:
random pick 2 alice bob carol dave`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			log.Fatal().Err(err).Str("count", args[0]).Msg("invalid pick count")
		}
		runGenerate(generate.KindPick, generate.PickCount(n), generate.Items(args[1:]))
	},
}

func init() {
	rootCmd.AddCommand(pickCmd)

	pickCmd.Flags().IntVarP(&count, "count", "c", 1, "number of selections to generate")
	pickCmd.Flags().StringVar(&template, "template", "", "template each selection is rendered into")
}
