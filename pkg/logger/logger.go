package logger

import (
	"log/slog"
	"os"
)

var log = slog.Default()

// Init configures the process logger: JSON at info level in
// production, human-readable text at debug level everywhere else.
func Init(environment string) {
	var handler slog.Handler
	if environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}
	log = slog.New(handler)
}

// fields tolerates the two call shapes used across the codebase:
// alternating key/value pairs and bare error values.
func fields(args []any) []any {
	out := make([]any, 0, len(args))
	for i := 0; i < len(args); {
		switch v := args[i].(type) {
		case error:
			out = append(out, slog.Any("error", v))
			i++
		case slog.Attr:
			out = append(out, v)
			i++
		case string:
			if i+1 < len(args) {
				out = append(out, v, args[i+1])
				i += 2
			} else {
				out = append(out, slog.String("detail", v))
				i++
			}
		default:
			out = append(out, slog.Any("value", v))
			i++
		}
	}
	return out
}

func Debug(msg string, args ...any) {
	log.Debug(msg, fields(args)...)
}

func Info(msg string, args ...any) {
	log.Info(msg, fields(args)...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, fields(args)...)
}

func Error(msg string, args ...any) {
	log.Error(msg, fields(args)...)
}

func Fatal(msg string, args ...any) {
	log.Error(msg, fields(args)...)
	os.Exit(1)
}
