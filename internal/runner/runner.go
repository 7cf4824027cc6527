package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/projectdiscovery/gcache"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/mapcidr"
	errorutil "github.com/projectdiscovery/utils/errors"
	sliceutil "github.com/projectdiscovery/utils/slice"
	"github.com/rs/xid"

	"github.com/willyanxd/arpmonit/pkg/arpscan"
	"github.com/willyanxd/arpmonit/pkg/oui"
)

const (
	// maxTrackedDevices bounds the watch-mode recently-seen cache.
	maxTrackedDevices = 4096

	// seenTTL is how long a device stays known in watch mode before its
	// reappearance is reported as new again.
	seenTTL = time.Hour
)

// Runner contains the internal logic of the program
type Runner struct {
	options *Options
	scanner *arpscan.Scanner
	vendors *oui.DB
	seen    gcache.Cache[string, arpscan.Device]
}

// NewRunner instance
func NewRunner(options *Options) (*Runner, error) {
	scanner := arpscan.NewScanner(arpscan.WithBinary(options.Binary))

	vendors := oui.New()
	if options.OuiDBFile != "" {
		if err := vendors.LoadFile(options.OuiDBFile); err != nil {
			return nil, err
		}
		gologger.Verbose().Msgf("oui database loaded with %d prefixes", vendors.Len())
	}

	seen := gcache.New[string, arpscan.Device](maxTrackedDevices).
		LRU().
		Expiration(seenTTL).
		Build()

	return &Runner{options: options, scanner: scanner, vendors: vendors, seen: seen}, nil
}

// Run the instance
func (r *Runner) Run(ctx context.Context) error {
	if r.options.ListInterfaces {
		return r.listInterfaces()
	}

	if !r.scanner.CheckAvailability() {
		return errorutil.New("%s binary not found, install arp-scan and run again", r.options.Binary)
	}
	if toolVersion, err := r.scanner.Version(ctx); err == nil {
		gologger.Info().Msgf("using %s", firstLine(toolVersion))
	} else {
		gologger.Warning().Msgf("could not determine arp-scan version: %s", err)
	}

	if r.options.Interface == "" {
		return errorutil.New("no interface specified, use -interface (see -list-interfaces)")
	}

	subnets, err := r.resolveSubnets()
	if err != nil {
		return err
	}

	if r.options.Watch {
		return r.watch(ctx, subnets)
	}

	devices, err := r.scanAll(ctx, subnets)
	if err != nil {
		return err
	}
	return r.writeOutput(devices)
}

// Close the runner instance
func (r *Runner) Close() {}

// resolveSubnets returns the deduplicated subnet list, falling back to the
// network derived from the interface's own address when no subnet was given.
func (r *Runner) resolveSubnets() ([]string, error) {
	subnets := sliceutil.Dedupe([]string(r.options.Subnets))
	if len(subnets) == 0 {
		derived, err := deriveSubnet(r.options.Interface)
		if err != nil {
			return nil, errorutil.NewWithErr(err).Msgf("no subnet specified and none could be derived from %s", r.options.Interface)
		}
		gologger.Info().Msgf("no subnet specified, using %s derived from %s", derived, r.options.Interface)
		subnets = []string{derived}
	}
	return subnets, nil
}

func (r *Runner) scanAll(ctx context.Context, subnets []string) ([]arpscan.Device, error) {
	scanID := xid.New().String()
	timeout := time.Duration(r.options.Timeout) * time.Second

	var all []arpscan.Device
	for _, subnet := range subnets {
		if count, err := mapcidr.AddressCount(subnet); err == nil {
			gologger.Verbose().Msgf("[%s] scanning %s (%d addresses) on %s", scanID, subnet, count, r.options.Interface)
		} else {
			gologger.Verbose().Msgf("[%s] scanning %s on %s", scanID, subnet, r.options.Interface)
		}

		devices, err := r.scanner.Scan(ctx, r.options.Interface, subnet, timeout)
		if err != nil {
			return nil, err
		}
		all = append(all, devices...)
	}

	r.enrichVendors(all)
	return all, nil
}

// enrichVendors fills in vendors from the oui table where arp-scan reported
// none. Vendors the tool actually resolved are never overwritten.
func (r *Runner) enrichVendors(devices []arpscan.Device) {
	for i := range devices {
		if devices[i].Vendor != arpscan.UnknownVendor {
			continue
		}
		if vendor, ok := r.vendors.Lookup(devices[i].MAC); ok {
			devices[i].Vendor = vendor
		}
	}
}

func (r *Runner) writeOutput(devices []arpscan.Device) error {
	if r.options.JSON {
		data, err := json.MarshalIndent(devices, "", "  ")
		if err != nil {
			return err
		}
		gologger.Silent().Msgf("%s", string(data))
		return nil
	}

	for i, device := range devices {
		fmt.Printf("%d. %s\t%s\t%s\n", i+1, au.Cyan(device.IP), au.Yellow(device.MAC), device.Vendor)
	}
	return nil
}
