package cmd

import (
	"github.com/KornaPhp/random/internal/generate"
	"github.com/KornaPhp/random/pkg/random"
	"github.com/spf13/cobra"
)

var (
	delimiter   = random.DefaultDelimiter
	chunkLength = random.DefaultChunkLength
	upperOnly   = false
)

// dashedCmd represents the dashed command
var dashedCmd = &cobra.Command{
	Use:   "dashed",
	Short: "generate license key style strings split into chunks",
	Long: `dashed generates alphanumeric strings split into fixed size chunks, e.g. AB3dE-f9GhJ-...

usage:
random dashed
random dashed -l 16 --chunk 4 --delimiter . --upper-only`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runGenerate(generate.KindDashed,
			generate.Delimiter(delimiter),
			generate.ChunkLength(chunkLength),
			generate.MixedCase(!upperOnly),
		)
	},
}

func init() {
	rootCmd.AddCommand(dashedCmd)
	addGenerateFlags(dashedCmd, false)

	dashedCmd.Flags().StringVar(&delimiter, "delimiter", delimiter, "delimiter placed between chunks")
	dashedCmd.Flags().IntVar(&chunkLength, "chunk", chunkLength, "number of characters per chunk")
	dashedCmd.Flags().BoolVar(&upperOnly, "upper-only", false, "only use uppercase letters and numbers")
}
