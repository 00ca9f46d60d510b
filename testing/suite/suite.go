package suite

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
)

const maxWaitDuration = 10 * time.Second

// Suite - scripted console for a single game session.
type Suite struct {
	*testing.T
	Logger *slog.Logger
	Config *config.Config

	Out  *bytes.Buffer
	Logs *bytes.Buffer
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Config: &config.Config{
			LogLevel:     "debug",
			FirstMover:   "X",
			RelaxedInput: false,
			InitialBoard: "_________",
		},
		Out:  &bytes.Buffer{},
		Logs: logs,
	}
}

// Input - stdin replaying the given lines.
func (that *Suite) Input(lines ...string) io.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}

	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

// OutputLines - everything written to stdout, split by line.
func (that *Suite) OutputLines() []string {
	return strings.Split(strings.TrimSuffix(that.Out.String(), "\n"), "\n")
}
