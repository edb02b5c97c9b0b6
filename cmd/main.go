// FILE: cmd/main.go
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lixenwraith/params"
)

func main() {
	slog.SetDefault(newLogger(os.Getenv("KK_LOG_LEVEL"), os.Stderr))

	if err := run(os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, params.ErrUsage) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// run binds the parameters and reports the resulting configuration. The
// clustering engine takes over from here with p.
func run(args []string, outW io.Writer) error {
	p, reg, err := params.Setup(args, outW)
	if err != nil {
		return err
	}

	slog.Info("parameters bound",
		"file_base", p.FileBase,
		"elec_no", p.ElecNo,
		"max_iter", p.MaxIter)

	if p.Verbose > 0 {
		fmt.Fprintln(outW, "Current Parameters:")
		return reg.PrintCurrent(outW)
	}
	return nil
}

// newLogger creates a text logger at the named level, defaulting to warn.
func newLogger(levelStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(levelStr) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(outW, &slog.HandlerOptions{Level: level}))
}
