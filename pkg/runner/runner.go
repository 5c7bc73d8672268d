// pkg/runner/runner.go
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/briandowns/spinner"
)

// Executor spawns an external command and blocks until it exits
type Executor interface {
	Run(ctx context.Context, name string, args ...string) error
}

// CommandExecutor runs commands attached to the given streams.
// No timeout is applied; the child runs to natural completion.
type CommandExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewCommandExecutor returns an executor wired to the process's own stdio
func NewCommandExecutor() *CommandExecutor {
	return &CommandExecutor{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes name with args
func (e *CommandExecutor) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", name, err)
	}
	return nil
}

// Waiter pauses for d or until ctx is done
type Waiter func(ctx context.Context, d time.Duration)

// Sleep waits without any output
func Sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// SpinnerWait returns a Waiter that shows a spinner on w while it waits
func SpinnerWait(w io.Writer) Waiter {
	return func(ctx context.Context, d time.Duration) {
		if d <= 0 {
			return
		}
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
		s.Start()
		defer s.Stop()

		Sleep(ctx, d)
	}
}

// NoWait returns immediately
func NoWait(context.Context, time.Duration) {}
