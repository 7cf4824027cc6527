package runner

import (
	"fmt"
	"net"
	"strings"

	"github.com/projectdiscovery/gologger"
	sliceutil "github.com/projectdiscovery/utils/slice"
	psnet "github.com/shirou/gopsutil/v3/net"
)

// listInterfaces prints the usable network interfaces with their addresses.
func (r *Runner) listInterfaces() error {
	interfaces, err := psnet.Interfaces()
	if err != nil {
		return err
	}

	usable := 0
	for _, iface := range interfaces {
		if sliceutil.Contains(iface.Flags, "loopback") || !sliceutil.Contains(iface.Flags, "up") {
			continue
		}
		var addrs []string
		for _, addr := range iface.Addrs {
			addrs = append(addrs, addr.Addr)
		}
		usable++
		fmt.Printf("%d. %s\t%s\t%s\n", usable, au.Bold(iface.Name), iface.HardwareAddr, strings.Join(addrs, " "))
	}
	if usable == 0 {
		gologger.Warning().Msg("no usable interfaces found")
	}
	return nil
}

// deriveSubnet returns the network of the interface's first IPv4 address in
// CIDR form.
func deriveSubnet(ifaceName string) (string, error) {
	interfaces, err := psnet.Interfaces()
	if err != nil {
		return "", err
	}
	for _, iface := range interfaces {
		if iface.Name != ifaceName {
			continue
		}
		for _, addr := range iface.Addrs {
			if network, ok := networkOf(addr.Addr); ok {
				return network, nil
			}
		}
		return "", fmt.Errorf("interface %s has no usable IPv4 address", ifaceName)
	}
	return "", fmt.Errorf("interface %s not found", ifaceName)
}

// networkOf converts an interface address like 192.168.1.5/24 to its network
// 192.168.1.0/24. Addresses without a prefix and non-IPv4 ones are rejected.
func networkOf(addr string) (string, bool) {
	ip, network, err := net.ParseCIDR(addr)
	if err != nil || ip.To4() == nil {
		return "", false
	}
	return network.String(), true
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return strings.TrimSpace(s[:idx])
	}
	return strings.TrimSpace(s)
}
