package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// sourceRoot is the repository root as the compiler recorded it, so debug
// logs show paths like internal/cms/products.go:42.
var sourceRoot = func() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	return filepath.Dir(filepath.Dir(file)) + "/"
}()

// newLogger builds the process logger for level (debug, info, warn,
// error). Debug uses tint with source locations; anything else is JSON.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if logLevel > slog.LevelDebug {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logLevel})), nil
	}

	replacer := func(_ []string, a slog.Attr) slog.Attr {
		if source, ok := a.Value.Any().(*slog.Source); ok && a.Key == slog.SourceKey {
			source.File = strings.TrimPrefix(source.File, sourceRoot)
		}
		if err, ok := a.Value.Any().(error); ok {
			aErr := tint.Err(err)
			aErr.Key = a.Key
			return aErr
		}
		return a
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:       logLevel,
		TimeFormat:  time.TimeOnly,
		ReplaceAttr: replacer,
		AddSource:   true,
	})), nil
}
