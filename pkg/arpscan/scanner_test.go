//go:build !windows
// +build !windows

package arpscan

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestScanInputValidation(t *testing.T) {
	scanner, _ := newTestScanner()

	if _, err := scanner.Scan(context.Background(), "", "192.168.1.0/24", 0); err == nil {
		t.Error("expected error for empty interface")
	}
	if _, err := scanner.Scan(context.Background(), "eth0", "", 0); err == nil {
		t.Error("expected error for empty subnet")
	}
}

func TestScanReentrancy(t *testing.T) {
	scanner, _ := newTestScanner(WithBinary(writeStub(t, "sleep 1\n")))

	firstDone := make(chan error, 1)
	go func() {
		_, err := scanner.Scan(context.Background(), "eth0", "192.168.1.0/24", 2*time.Second)
		firstDone <- err
	}()

	// wait for the first scan to take the flag
	deadline := time.Now().Add(2 * time.Second)
	for !scanner.inFlight.Load() {
		if time.Now().After(deadline) {
			t.Fatal("first scan never started")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if _, err := scanner.Scan(context.Background(), "eth0", "192.168.1.0/24", 2*time.Second); !errors.Is(err, ErrScanInProgress) {
		t.Fatalf("expected ErrScanInProgress, got %v", err)
	}

	// the overlapping call must not have cleared the in-flight flag
	if !scanner.inFlight.Load() {
		t.Error("overlapping call cleared the in-progress flag")
	}

	if err := <-firstDone; err != nil {
		t.Fatalf("first scan failed: %v", err)
	}

	// flag released, a new scan is permitted
	if _, err := scanner.Scan(context.Background(), "eth0", "192.168.1.0/24", 2*time.Second); err != nil {
		t.Fatalf("scan after resolution failed: %v", err)
	}
}

func TestScanFlagResetAfterFailure(t *testing.T) {
	scanner, _ := newTestScanner(WithBinary("/nonexistent/arp-scan-binary"))

	if _, err := scanner.Scan(context.Background(), "eth0", "192.168.1.0/24", 0); err == nil {
		t.Fatal("expected spawn failure")
	}
	if scanner.inFlight.Load() {
		t.Error("in-progress flag not released after failure")
	}
}

func TestCheckAvailability(t *testing.T) {
	missing, _ := newTestScanner(WithBinary("arp-scan-definitely-not-installed"))
	if missing.CheckAvailability() {
		t.Error("expected false for missing binary")
	}

	present, _ := newTestScanner(WithBinary("sh"))
	if !present.CheckAvailability() {
		t.Error("expected true for resolvable binary")
	}
}
