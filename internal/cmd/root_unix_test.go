//go:build unix

package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/nilote/bootsplash/internal/config"
	"github.com/nilote/bootsplash/internal/loading"
	"github.com/nilote/bootsplash/internal/logging"
)

// lockedBuffer is a bytes.Buffer safe for the scheduler's goroutines.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRunHeadlessStopsOnSignal(t *testing.T) {
	orig := shutdownSignals
	shutdownSignals = []os.Signal{syscall.SIGUSR1}
	t.Cleanup(func() { shutdownSignals = orig })

	cfg := config.Default()
	cfg.Splash.Duration = time.Minute

	var out, logs lockedBuffer
	logger := logging.NewWriterLogger(&logs, "info")

	errCh := make(chan error, 1)
	go func() {
		errCh <- runHeadless(context.Background(), &out, cfg, logger)
	}()

	// The first item is printed once the signal handler is installed.
	first := loading.DefaultContent()[0].String()
	deadline := time.Now().Add(5 * time.Second)
	for !strings.Contains(out.String(), first) {
		if time.Now().After(deadline) {
			t.Fatalf("headless run never started, output:\n%s", out.String())
		}
		time.Sleep(5 * time.Millisecond)
	}

	if err := syscall.Kill(os.Getpid(), syscall.SIGUSR1); err != nil {
		t.Fatalf("Kill() error = %v", err)
	}

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("runHeadless() error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("runHeadless did not stop on signal")
	}

	if strings.Contains(out.String(), "done") {
		t.Errorf("interrupted run should not print done:\n%s", out.String())
	}
	for _, want := range []string{"splash unmounted before completion", "headless run interrupted"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("log missing %q:\n%s", want, logs.String())
		}
	}
}
