//go:build unix

package runner_test

import (
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/mukulkathayat/linkedin-mcp/runner"
	"github.com/mukulkathayat/linkedin-mcp/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_Run_ShutsDownOnConfiguredSignal(t *testing.T) {
	t.Parallel()

	core := newBlockingService("core")

	r := runner.New(
		runner.WithCoreService(core),
		runner.WithStartupWindow(10*time.Millisecond),
		runner.WithSignals(syscall.SIGUSR1),
	)

	ctx, _ := testutil.ContextWithTimeout(t)

	done := make(chan error, 1)

	go func() {
		done <- r.Run(ctx)
	}()

	testutil.Eventually(t, core.started.Load, time.Second, 5*time.Millisecond)

	process, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, process.Signal(syscall.SIGUSR1))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-ctx.Done():
		t.Fatal("runner did not stop after the configured signal")
	}

	assert.True(t, core.stopped.Load())
	assert.NoError(t, ctx.Err())
}
