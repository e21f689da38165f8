package log

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

type LogFormat string

var (
	Pretty LogFormat = "pretty"
	JSON   LogFormat = "json"
	Text   LogFormat = "text"
)

var (
	stderr = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)

	globalFormat LogFormat = "pretty"
)

const (
	FatalLevel = zerolog.FatalLevel
	PanicLevel = zerolog.PanicLevel
	ErrorLevel = zerolog.ErrorLevel
	WarnLevel  = zerolog.WarnLevel
	InfoLevel  = zerolog.InfoLevel
	DebugLevel = zerolog.DebugLevel
	TraceLevel = zerolog.TraceLevel
)

// The helpers below resolve the logger on every call so SetFormat, SetLevelString and SetOutput
// apply to loggers captured before they were called.

func Fatal() *zerolog.Event { return stderr.Fatal() }
func Panic() *zerolog.Event { return stderr.Panic() }
func Error() *zerolog.Event { return stderr.Error() }
func Warn() *zerolog.Event  { return stderr.Warn() }
func Info() *zerolog.Event  { return stderr.Info() }
func Debug() *zerolog.Event { return stderr.Debug() }
func Trace() *zerolog.Event { return stderr.Trace() }

func Err(err error) *zerolog.Event { return stderr.Err(err) }

func With() zerolog.Context { return stderr.With() }

func GetLevel() zerolog.Level { return stderr.GetLevel() }

func SetLevelString(level string) error {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}

	stderr = stderr.Level(l)
	return nil
}

// SetOutput redirects the stderr logger, used by tests to capture logs
func SetOutput(w io.Writer) {
	stderr = stderr.Output(w)
}

var (
	ErrUnsupportedFormat = fmt.Errorf("unsupported format. supported 'json', 'pretty', 'text'")
)

func GetLogFormat() LogFormat {
	return globalFormat
}

func SetFormat(format string) error {
	switch format {
	case "json", "":
		globalFormat = JSON
	case "pretty":
		stderr = stderr.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: false, TimeFormat: "3:04PM"})
		globalFormat = Pretty
	case "text":
		stderr = stderr.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true, TimeFormat: "3:04PM"})
		globalFormat = Text
	default:
		return ErrUnsupportedFormat
	}
	return nil
}
