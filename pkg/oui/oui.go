// Package oui maps MAC address prefixes to hardware vendors. It carries a
// small built-in table for common vendors and can merge a user-supplied JSON
// database of the form {"AABBCC": "Vendor Name"}.
package oui

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

// builtin covers the assignments most commonly seen on home and office
// networks. A full database can be merged on top with LoadFile.
var builtin = map[string]string{
	"3C22FB": "Apple",
	"843A4B": "Apple",
	"F01898": "Apple",
	"00155D": "Microsoft",
	"B827EB": "Raspberry Pi Foundation",
	"DCA632": "Raspberry Pi Trading",
	"001B63": "Apple",
	"00E04C": "Realtek",
	"F4F5D8": "Google",
	"3C5AB4": "Google",
	"0050F2": "Microsoft",
	"FCFBFB": "Cisco Systems",
	"00000C": "Cisco Systems",
	"ECF4BB": "Dell",
	"F8BC12": "Dell",
	"001A11": "Google",
	"525400": "QEMU",
	"080027": "Oracle VirtualBox",
	"005056": "VMware",
	"000C29": "VMware",
}

// DB is a prefix-indexed vendor lookup table.
type DB struct {
	prefixes map[string]string
}

// New returns a DB seeded with the built-in table.
func New() *DB {
	prefixes := make(map[string]string, len(builtin))
	for prefix, vendor := range builtin {
		prefixes[prefix] = vendor
	}
	return &DB{prefixes: prefixes}
}

// LoadFile merges a JSON prefix-to-vendor database into the table. Entries
// in the file win over built-in ones.
func (d *DB) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read oui database %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("oui database %s is not valid json", path)
	}
	gjson.ParseBytes(data).ForEach(func(key, value gjson.Result) bool {
		prefix := normalizePrefix(key.String())
		if len(prefix) == prefixLen && value.Type == gjson.String {
			d.prefixes[prefix] = value.String()
		}
		return true
	})
	return nil
}

// Len returns the number of known prefixes.
func (d *DB) Len() int {
	return len(d.prefixes)
}

// prefixLen is the OUI length in hex characters (3 octets).
const prefixLen = 6

// Lookup resolves the vendor for a MAC address by its 3-octet prefix.
func (d *DB) Lookup(mac string) (string, bool) {
	prefix := normalizePrefix(mac)
	if len(prefix) < prefixLen {
		return "", false
	}
	vendor, ok := d.prefixes[prefix[:prefixLen]]
	return vendor, ok
}

func normalizePrefix(s string) string {
	s = strings.NewReplacer(":", "", "-", "", ".", "").Replace(s)
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) > prefixLen {
		s = s[:prefixLen]
	}
	return s
}
