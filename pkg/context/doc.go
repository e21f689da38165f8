/*
Package context wraps the standard context package to stop long running commands on SIGINT or SIGTERM.

The first signal cancels the context so batches and the HTTP server can stop cleanly. A second signal
exits straight away.

	import "github.com/KornaPhp/random/pkg/context"

	...

	if err := srv.ListenAndServe(context.Context(), ":8080"); err != nil {
		log.Fatal().Err(err).Msg("failed to serve")
	}
*/
package context
