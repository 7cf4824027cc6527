package runner

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/projectdiscovery/gologger"

	"github.com/willyanxd/arpmonit/pkg/arpscan"
)

// watch rescans the subnets on a fixed interval, reporting devices that were
// not seen within the recently-seen TTL. A failed round is logged and the
// loop keeps going; retry policy beyond that stays with the operator.
func (r *Runner) watch(ctx context.Context, subnets []string) error {
	interval := time.Duration(r.options.Interval) * time.Second
	gologger.Info().Msgf("watching %s on %s every %s", strings.Join(subnets, ", "), r.options.Interface, interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		devices, err := r.scanAll(ctx, subnets)
		switch {
		case errors.Is(err, context.Canceled):
			return nil
		case err != nil:
			gologger.Error().Msgf("scan round failed: %s", err)
		default:
			r.reportNewDevices(devices)
			if err := saveLastScan(devices); err != nil {
				gologger.Warning().Msgf("could not save scan results: %s", err)
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (r *Runner) reportNewDevices(devices []arpscan.Device) {
	fresh := 0
	for _, device := range devices {
		if !r.seen.Has(device.IP) {
			fresh++
			gologger.Info().Msgf("new device %s (%s, %s)", au.Cyan(device.IP), device.MAC, device.Vendor)
		}
		_ = r.seen.Set(device.IP, device)
	}
	gologger.Verbose().Msgf("%d devices online, %d new", len(devices), fresh)
}

// saveLastScan persists the latest results under the user's home directory
// so other tooling can pick them up between runs.
func saveLastScan(devices []arpscan.Device) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(homeDir, ".arpmonit")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(devices, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "last-scan.json"), data, 0o644)
}
