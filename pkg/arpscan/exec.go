package arpscan

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// killGrace is how long the watchdog waits after the termination signal
// before escalating to a hard kill.
const killGrace = 2 * time.Second

// executeScan runs arp-scan to completion and returns its stdout. The run
// resolves on exactly one of three events: process exit, watchdog expiry, or
// context cancellation; whichever fires first wins and the others become
// no-ops.
func (s *Scanner) executeScan(ctx context.Context, iface, subnet string, timeout time.Duration) (string, error) {
	args := []string{
		"-I", iface,
		"-t", strconv.FormatInt(timeout.Milliseconds(), 10),
		"--format=${ip}\t${mac}\t${vendor}",
		"--plain",
		"--quiet",
		subnet,
	}

	cmd := exec.Command(s.binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	s.logger.Debugf("running %s %s", s.binary, strings.Join(args, " "))

	if err := cmd.Start(); err != nil {
		return "", &SpawnError{Binary: s.binary, Err: err}
	}

	// The tool timeout bounds per-host probing, not wall-clock runtime, so
	// the watchdog enforces the total budget independently.
	budget := timeout + s.grace
	watchdog := time.NewTimer(budget)
	defer watchdog.Stop()

	waitDone := make(chan error, 1)
	go func() {
		waitDone <- cmd.Wait()
	}()

	select {
	case err := <-waitDone:
		if err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				return "", &ExitError{ExitCode: exitErr.ExitCode(), Stderr: stderr.String()}
			}
			return "", fmt.Errorf("waiting for %s: %w", s.binary, err)
		}
		return stdout.String(), nil
	case <-watchdog.C:
		s.reap(cmd, waitDone)
		return "", &TimeoutError{Budget: budget}
	case <-ctx.Done():
		s.reap(cmd, waitDone)
		return "", ctx.Err()
	}
}

// reap terminates the running process gracefully, escalating to a hard kill
// if it does not exit, and waits for the process to be collected so no
// zombie is left behind.
func (s *Scanner) reap(cmd *exec.Cmd, waitDone <-chan error) {
	if err := terminateProcess(cmd.Process); err != nil {
		s.logger.Debugf("failed to signal %s: %s", s.binary, err)
	}
	select {
	case <-waitDone:
	case <-time.After(killGrace):
		_ = cmd.Process.Kill()
		<-waitDone
	}
}
