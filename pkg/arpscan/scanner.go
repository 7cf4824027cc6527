// Package arpscan discovers live hosts on a local IPv4 subnet by driving the
// external arp-scan binary and parsing its tab-delimited output into
// validated Device records. It does not construct packets or speak ARP
// itself; all of that is delegated to the tool.
package arpscan

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/projectdiscovery/gologger"
)

const (
	// DefaultBinary is the arp-scan executable resolved on $PATH.
	DefaultBinary = "arp-scan"

	// DefaultTimeout is the per-host probe timeout handed to arp-scan when
	// the caller does not provide one.
	DefaultTimeout = 5 * time.Second

	// DefaultWatchdogGrace is added on top of the scan timeout before the
	// watchdog terminates the process. The tool timeout governs per-host
	// probing only, so total runtime needs its own bound; the grace covers
	// startup and teardown latency.
	DefaultWatchdogGrace = 10 * time.Second
)

// Logger receives the scanner's log events: scan lifecycle, process start
// traces and malformed-line warnings. The default implementation forwards to
// gologger; tests inject their own sink.
type Logger interface {
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type defaultLogger struct{}

func (defaultLogger) Infof(format string, args ...interface{}) {
	gologger.Info().Msgf(format, args...)
}

func (defaultLogger) Warningf(format string, args ...interface{}) {
	gologger.Warning().Msgf(format, args...)
}

func (defaultLogger) Errorf(format string, args ...interface{}) {
	gologger.Error().Msgf(format, args...)
}

func (defaultLogger) Debugf(format string, args ...interface{}) {
	gologger.Debug().Msgf(format, args...)
}

// Scanner runs arp-scan against a subnet and returns validated devices.
// A Scanner allows a single in-flight scan at a time; overlapping calls
// fail immediately with ErrScanInProgress.
type Scanner struct {
	binary   string
	grace    time.Duration
	logger   Logger
	inFlight atomic.Bool
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithBinary overrides the arp-scan executable path.
func WithBinary(path string) Option {
	return func(s *Scanner) {
		if path != "" {
			s.binary = path
		}
	}
}

// WithLogger injects the logger used for scan lifecycle events and
// malformed-line warnings. Defaults to a gologger-backed logger.
func WithLogger(logger Logger) Option {
	return func(s *Scanner) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithWatchdogGrace overrides the slack added to the scan timeout before the
// watchdog terminates the process.
func WithWatchdogGrace(grace time.Duration) Option {
	return func(s *Scanner) {
		if grace > 0 {
			s.grace = grace
		}
	}
}

// NewScanner creates a Scanner with the given options applied.
func NewScanner(options ...Option) *Scanner {
	scanner := &Scanner{
		binary: DefaultBinary,
		grace:  DefaultWatchdogGrace,
		logger: defaultLogger{},
	}
	for _, option := range options {
		option(scanner)
	}
	return scanner
}

// Scan runs a single arp-scan of subnet bound to the given interface and
// returns the devices that passed IP and MAC validation. timeout is the
// per-host probe budget handed to the tool (DefaultTimeout when <= 0); the
// whole run is additionally bounded by timeout plus the watchdog grace.
//
// Only one scan may be in flight per Scanner; concurrent calls return
// ErrScanInProgress without queueing.
func (s *Scanner) Scan(ctx context.Context, iface, subnet string, timeout time.Duration) ([]Device, error) {
	if iface == "" {
		return nil, errors.New("interface name is required")
	}
	if subnet == "" {
		return nil, errors.New("subnet is required")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrScanInProgress
	}
	defer s.inFlight.Store(false)

	s.logger.Infof("starting arp scan on %s for %s", iface, subnet)

	output, err := s.executeScan(ctx, iface, subnet, timeout)
	if err != nil {
		s.logger.Errorf("arp scan on %s failed: %s", subnet, err)
		return nil, err
	}

	devices, err := s.parseOutput(output)
	if err != nil {
		s.logger.Errorf("arp scan on %s failed: %s", subnet, err)
		return nil, err
	}

	s.logger.Infof("arp scan completed, %d devices found", len(devices))
	return devices, nil
}
