//go:build windows
// +build windows

package arpscan

import "os"

// terminateProcess stops the process; windows has no graceful signal to
// send, so this is a hard kill.
func terminateProcess(p *os.Process) error {
	return p.Kill()
}
