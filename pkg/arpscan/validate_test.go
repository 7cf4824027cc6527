package arpscan

import "testing"

func TestIsValidIP(t *testing.T) {
	tests := []struct {
		ip    string
		valid bool
	}{
		{"192.168.1.1", true},
		{"0.0.0.0", true},
		{"255.255.255.255", true},
		{"10.0.0.254", true},
		{"999.1.1.1", false},
		{"256.1.1.1", false},
		{"192.168.1", false},
		{"192.168.1.1.1", false},
		{"192.168.1.", false},
		{"a.b.c.d", false},
		{"fe80::1", false},
		{"", false},
		{" 192.168.1.1", false},
	}

	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			if got := isValidIP(tt.ip); got != tt.valid {
				t.Errorf("isValidIP(%q) = %v, want %v", tt.ip, got, tt.valid)
			}
		})
	}
}

func TestIsValidMAC(t *testing.T) {
	tests := []struct {
		mac   string
		valid bool
	}{
		{"00:11:22:33:44:55", true},
		{"aa-bb-cc-dd-ee-ff", true},
		{"ff:ff:ff:ff:ff:ff", true},
		{"00:11:22:33:44", false},
		{"00:11:22:33:44:55:66", false},
		{"00:11:22:33:44:gg", false},
		{"00-11:22-33:44-55", false},
		{"001122334455", false},
		{"00.11.22.33.44.55", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.mac, func(t *testing.T) {
			if got := isValidMAC(tt.mac); got != tt.valid {
				t.Errorf("isValidMAC(%q) = %v, want %v", tt.mac, got, tt.valid)
			}
		})
	}
}
