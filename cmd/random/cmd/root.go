package cmd

import (
	"fmt"
	"os"

	"github.com/KornaPhp/random/pkg/log"
	"github.com/KornaPhp/random/pkg/random"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// These global variables can be configured with the corresponding lowercase flag
var (
	Verbose string // Verbose defines the logging level, either trace, debug, info, error, fatal
	Output  string // Output defines the output format, either pretty, text, json
	Quiet   bool   // Quiet hides informational messages such as the config file in use

	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "random",
	Short: "random generates secure random strings, numbers and selections",
	Long: `random generates one time passcodes, tokens, passwords, license style keys
and random numbers from a cryptographically secure source.
It can also shuffle and pick from lists of items, or serve all of this over http`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initLogging)
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.random.yaml)")

	rootCmd.PersistentFlags().StringVarP(&Verbose, "verbose", "v", "info", "level of logging verbosity. can be error,info,debug,trace")
	rootCmd.PersistentFlags().StringVarP(&Output, "output", "o", "pretty", "output format. can be json,text,pretty")
	rootCmd.PersistentFlags().BoolVarP(&Quiet, "quiet", "q", false, "quiet mode. will mute informational messages")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initLogging() {
	if err := log.SetFormat(viper.GetString("output")); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize logging")
	}

	level := viper.GetString("verbose")
	if level != "" {
		if err := log.SetLevelString(level); err != nil {
			log.Fatal().Err(err).Msg("failed to initialize logging")
		}
	}
	log.Debug().Str("level", level).Str("format", viper.GetString("output")).Msg("custom log settings")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".random" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".random")
	}

	viper.SetEnvPrefix("random")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && !viper.GetBool("quiet") {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// generator builds the generator for the configured character sets. Unset keys keep the default sets
func generator() *random.Generator {
	var opts []random.Option
	if v := viper.GetString("lower"); v != "" {
		opts = append(opts, random.WithLower(v))
	}
	if v := viper.GetString("upper"); v != "" {
		opts = append(opts, random.WithUpper(v))
	}
	if v := viper.GetString("numbers"); v != "" {
		opts = append(opts, random.WithNumbers(v))
	}
	if v := viper.GetString("symbols"); v != "" {
		opts = append(opts, random.WithSymbols(v))
	}
	g := random.New(opts...)
	log.Debug().
		Str("lower", g.LowerSet()).
		Str("upper", g.UpperSet()).
		Str("numbers", g.NumberSet()).
		Str("symbols", g.SymbolSet()).
		Msg("character sets")
	return g
}
