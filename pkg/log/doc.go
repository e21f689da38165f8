/*
Package log wraps zerolog with a package level stderr logger shared by the library, the CLI and the server.

The format is one of pretty, text or json and is selected once at startup by the CLI

	if err := log.SetFormat("json"); err != nil {
		...
	}
	log.Info().Int("count", 10).Msg("generated values")
*/
package log
