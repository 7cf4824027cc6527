package arpscan

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrScanInProgress is returned when Scan is called while another scan on the
// same Scanner has not resolved yet. The in-flight scan is unaffected.
var ErrScanInProgress = errors.New("scan already in progress")

// SpawnError indicates the arp-scan binary could not be launched at all
// (not found, permission denied, etc).
type SpawnError struct {
	Binary string
	Err    error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %s: %s", e.Binary, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// ExitError indicates arp-scan ran but exited non-zero. Stderr carries the
// captured diagnostic output verbatim.
type ExitError struct {
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("arp-scan exited with code %d: %s", e.ExitCode, strings.TrimSpace(e.Stderr))
}

// TimeoutError indicates the watchdog fired before the process exited. The
// process has already been terminated when this error surfaces.
type TimeoutError struct {
	Budget time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("arp-scan did not exit within %s, process terminated", e.Budget)
}
