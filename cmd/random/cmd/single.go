package cmd

import (
	"github.com/KornaPhp/random/internal/generate"
	"github.com/spf13/cobra"
)

// singleCmd represents the single command
var singleCmd = &cobra.Command{
	Use:     "single ITEM...",
	Aliases: []string{"one"},
	Short:   "pick one of the provided items",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runGenerate(generate.KindSingle, generate.Items(args))
	},
}

func init() {
	rootCmd.AddCommand(singleCmd)

	singleCmd.Flags().IntVarP(&count, "count", "c", 1, "number of items to pick, with repetition")
	singleCmd.Flags().StringVar(&template, "template", "", "template each item is rendered into")
}
