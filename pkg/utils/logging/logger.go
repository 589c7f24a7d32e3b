package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/clog/hooks"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
	"github.com/sujeethshingade/docster/pkg/domain/types"
)

var defaultLogger = slog.New(slog.NewTextHandler(os.Stdout, nil))

func init() {
	_ = Configure("text", "info", "stdout")
}

// Default returns the default logger
func Default() *slog.Logger {
	return defaultLogger
}

var levelMap = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Configure replaces the default logger. logOutput is stdout, stderr or a
// file path; "-" is the same as stdout. Files are appended to.
func Configure(logFormat, logLevel, logOutput string) error {
	var w io.Writer
	switch logOutput {
	case "stdout", "-":
		w = os.Stdout
	case "stderr":
		w = os.Stderr
	default:
		fd, err := os.OpenFile(filepath.Clean(logOutput), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return goerr.Wrap(err, "failed to open log file", goerr.V("path", logOutput))
		}
		w = fd
	}

	logger, err := New(logFormat, logLevel, w)
	if err != nil {
		return err
	}

	defaultLogger = logger
	return nil
}

// New builds a logger writing to w. GitHub tokens, OAuth client secrets, LLM
// API keys and fields tagged `masq:"secret"` are masked in every format.
func New(logFormat, logLevel string, w io.Writer) (*slog.Logger, error) {
	filter := masq.New(
		masq.WithTag("secret"),
		masq.WithType[types.GitHubToken](masq.MaskWithSymbol('*', 32)),
		masq.WithType[types.OAuthClientSecret](masq.MaskWithSymbol('*', 32)),
		masq.WithType[types.LLMAPIKey](masq.MaskWithSymbol('*', 32)),
	)

	level, ok := levelMap[logLevel]
	if !ok {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid log level", goerr.V("value", logLevel))
	}

	var handler slog.Handler
	switch logFormat {
	case "text":
		handler = clog.New(
			clog.WithWriter(w),
			clog.WithLevel(level),
			clog.WithSource(true),
			clog.WithColorMap(&clog.ColorMap{
				Level: map[slog.Level]*color.Color{
					slog.LevelDebug: color.New(color.FgGreen, color.Bold),
					slog.LevelInfo:  color.New(color.FgCyan, color.Bold),
					slog.LevelWarn:  color.New(color.FgYellow, color.Bold),
					slog.LevelError: color.New(color.FgRed, color.Bold),
				},
				LevelDefault: color.New(color.FgBlue, color.Bold),
				Time:         color.New(color.FgWhite),
				Message:      color.New(color.FgHiWhite),
				AttrKey:      color.New(color.FgHiCyan),
				AttrValue:    color.New(color.FgHiWhite),
			}),
			clog.WithAttrHook(hooks.GoErr()),
			clog.WithReplaceAttr(filter),
		)

	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource:   true,
			Level:       level,
			ReplaceAttr: filter,
		})

	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid log format, should be 'json' or 'text'", goerr.V("value", logFormat))
	}

	return slog.New(handler), nil
}
