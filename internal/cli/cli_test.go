package cli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/runoshun/procrastinot/internal/app"
	"github.com/runoshun/procrastinot/internal/testutil"
	"github.com/stretchr/testify/require"
)

// newTestContainer creates a container with a fixed clock on 2024-03-01.
func newTestContainer() *app.Container {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return app.NewWithDeps(
		&testutil.MockClock{NowTime: time.Date(2024, 3, 1, 15, 4, 5, 0, time.UTC)},
		&testutil.MockLogger{},
		nil,
		logger,
	)
}

// runShell feeds script to a fresh shell and returns stdout and stderr.
func runShell(t *testing.T, c *app.Container, script string) (string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := NewShell(c, &out, &errOut).Run(context.Background(), strings.NewReader(script))
	require.NoError(t, err)
	return out.String(), errOut.String()
}

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}
