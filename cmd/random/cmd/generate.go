package cmd

import (
	"os"

	"github.com/KornaPhp/random/internal/generate"
	"github.com/KornaPhp/random/pkg/context"
	errors2 "github.com/KornaPhp/random/pkg/errors"
	"github.com/KornaPhp/random/pkg/log"
	"github.com/spf13/cobra"
)

// flags shared by every generator command
var (
	length      = 0
	count       = 1
	template    = ""
	progress    = false
	interactive = false
)

func addGenerateFlags(cmd *cobra.Command, interactiveSupported bool) {
	cmd.Flags().IntVarP(&length, "length", "l", 0, "length of each value. 0 uses the default for the command")
	cmd.Flags().IntVarP(&count, "count", "c", 1, "number of values to generate")
	cmd.Flags().StringVar(&template, "template", "", "template each value is rendered into, e.g. 'KEY={value}'. supports {value},{id},{index},{kind},{entropy}")
	cmd.Flags().BoolVar(&progress, "progress", false, "show a progress bar on stderr")
	if interactiveSupported {
		cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt for the length, count and character classes")
	}
}

// runGenerate generates and writes a batch of kind k, exiting on invalid options or generation failures
func runGenerate(k generate.Kind, opts ...generate.Option) {
	format, err := generate.FormatFromString(Output)
	if err != nil {
		log.Fatal().Err(err).Str("output", Output).Msg("invalid format")
	}

	o := generate.NewOptions(k, append([]generate.Option{
		generate.WithGenerator(generator()),
		generate.Length(length),
		generate.Count(count),
		generate.Template(template),
		generate.Progress(progress),
		generate.Output(format),
		generate.Writer(os.Stdout),
	}, opts...)...)

	if interactive {
		if err := generate.Interactive(o); err != nil {
			log.Fatal().Err(err).Msg("failed to read answers")
		}
	}

	if err := o.Validate(); err != nil {
		errors2.PrintError(err, 0)
		os.Exit(1)
	}
	if err := generate.Run(context.Context(), o); err != nil {
		log.Fatal().Err(err).Str("kind", string(k)).Msg("failed to generate")
	}
}
