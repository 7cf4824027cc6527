package arpscan

import (
	"bufio"
	"fmt"
	"strings"
	"time"
)

// maxLineCapacity bounds a single output line; arp-scan lines are short but
// the default bufio limit is worth raising for hostile output.
const maxLineCapacity = 1024 * 1024

// parseOutput converts arp-scan stdout into Device records. Each line is
// expected as ip<TAB>mac[<TAB>vendor]; blank lines are skipped, lines with
// fewer than two fields or failing validation are dropped with a warning.
// Every record is stamped at the moment its line is parsed, not once per
// batch, so records within one scan may carry slightly different timestamps.
func (s *Scanner) parseOutput(output string) ([]Device, error) {
	scanner := bufio.NewScanner(strings.NewReader(output))
	buf := make([]byte, maxLineCapacity)
	scanner.Buffer(buf, maxLineCapacity)

	var devices []Device
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			s.logger.Warningf("skipping malformed line: %q", line)
			continue
		}

		ip := strings.TrimSpace(fields[0])
		mac := strings.ToLower(strings.TrimSpace(fields[1]))
		vendor := UnknownVendor
		if len(fields) >= 3 {
			if v := strings.TrimSpace(fields[2]); v != "" {
				vendor = v
			}
		}

		if !isValidIP(ip) || !isValidMAC(mac) {
			s.logger.Warningf("dropping invalid device entry: %q", line)
			continue
		}

		devices = append(devices, Device{
			IP:         ip,
			MAC:        mac,
			Vendor:     vendor,
			DetectedAt: time.Now().UTC(),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning arp-scan output: %w", err)
	}

	return devices, nil
}
