package cmd

import (
	"github.com/KornaPhp/random/internal/server"
	"github.com/KornaPhp/random/pkg/context"
	"github.com/KornaPhp/random/pkg/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var listen = ":8080"

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve the generators over http",
	Long: `serve starts an http server exposing every generator as a route.
Values are returned as json. The server shuts down gracefully on the first interrupt

usage:
random serve --listen :8080
curl 'localhost:8080/string?length=12&upper&numbers'
printf 'a\nb\nc' | curl --data-binary @- 'localhost:8080/pick?count=2'`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		srv := server.New(server.WithGenerator(generator()))
		if err := srv.ListenAndServe(context.Context(), viper.GetString("listen")); err != nil {
			log.Fatal().Err(err).Msg("failed to serve")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&listen, "listen", listen, "address to listen on")
	viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
}
