package arpscan

import "regexp"

var (
	ipv4Pattern = regexp.MustCompile(`^(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)(\.(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)){3}$`)

	// Six 2-hex-digit groups joined by the same separator throughout; mixed
	// ":" and "-" within one address is rejected. Input is lowercased by the
	// parser before validation.
	macColonPattern = regexp.MustCompile(`^([0-9a-f]{2}:){5}[0-9a-f]{2}$`)
	macDashPattern  = regexp.MustCompile(`^([0-9a-f]{2}-){5}[0-9a-f]{2}$`)
)

// isValidIP reports whether ip is a strict dotted-quad IPv4 address with
// every octet in 0-255. Partial, classful and IPv6 forms are rejected.
func isValidIP(ip string) bool {
	return ipv4Pattern.MatchString(ip)
}

// isValidMAC reports whether mac is six 2-hex-digit groups with a uniform
// ":" or "-" separator.
func isValidMAC(mac string) bool {
	return macColonPattern.MatchString(mac) || macDashPattern.MatchString(mac)
}
