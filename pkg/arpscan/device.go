package arpscan

import "time"

// UnknownVendor is assigned to devices whose vendor arp-scan could not resolve.
const UnknownVendor = "Unknown"

// Device represents a single host discovered on the scanned subnet.
type Device struct {
	IP         string    `json:"ip"`
	MAC        string    `json:"mac"`
	Vendor     string    `json:"vendor"`
	DetectedAt time.Time `json:"detected_at"`
}
