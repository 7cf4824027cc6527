package arpscan

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CheckAvailability reports whether the arp-scan binary is resolvable on the
// execution path. It never returns an error; resolution failures collapse
// to false.
func (s *Scanner) CheckAvailability() bool {
	_, err := exec.LookPath(s.binary)
	return err == nil
}

// Version invokes the tool's version flag and returns the trimmed combined
// stdout and stderr text. Any spawn failure or non-zero exit yields a
// generic error.
func (s *Scanner) Version(ctx context.Context) (string, error) {
	output, err := exec.CommandContext(ctx, s.binary, "--version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("failed to get arp-scan version: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}
