package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAskYes(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	prompt := New(strings.NewReader("1\n"), &out)
	require.True(t, prompt.Ask(context.Background(), "Print the report?", time.Second))
	require.Contains(t, out.String(), "Print the report?")
}

func TestAskNo(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	prompt := New(strings.NewReader("0\n"), &out)
	require.False(t, prompt.Ask(context.Background(), "Print the report?", time.Second))
}

func TestAskInvalidInputDefaultsToNo(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	prompt := New(strings.NewReader("maybe\n"), &out)
	require.False(t, prompt.Ask(context.Background(), "Print the report?", time.Second))
	require.Contains(t, out.String(), "Invalid input")
}

func TestAskTimesOutToNo(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	// A reader that never delivers a line.
	blocked, _ := io.Pipe()
	prompt := New(blocked, &out)

	start := time.Now()
	require.False(t, prompt.Ask(context.Background(), "Print the report?", 50*time.Millisecond))
	require.Less(t, time.Since(start), time.Second)
	require.Contains(t, out.String(), "defaulting to No")
}

func TestAskCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	blocked, _ := io.Pipe()
	prompt := New(blocked, io.Discard)
	require.False(t, prompt.Ask(ctx, "Print the report?", time.Minute))
}
