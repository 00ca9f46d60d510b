package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/tictactoe-console/internal"
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
)

const configFile = "config.yml"

// main - plays one console session; a closed stdin before the end of the game exits with 1.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := loadConfig()
	logger := newLogger(conf.LogLevel)

	if err := app.RunApp(logger, conf); err != nil {
		if reportClosedInput(os.Stderr, err) {
			os.Exit(1)
		}

		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// reportClosedInput - prints a plain line for an input stream that ended mid-game.
func reportClosedInput(w io.Writer, err error) bool {
	if !errors.Is(err, apperror.ErrInputClosed) {
		return false
	}

	fmt.Fprintln(w, "input closed before the game finished")

	return true
}

func loadConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, configFile))
}

// newLogger - JSON logs on stderr, stdout carries only the board.
func newLogger(levelName string) *slog.Logger {
	level := slog.LevelWarn

	switch levelName {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
