package oui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLookup(t *testing.T) {
	db := New()

	tests := []struct {
		name   string
		mac    string
		vendor string
		found  bool
	}{
		{"colon separated", "b8:27:eb:aa:bb:cc", "Raspberry Pi Foundation", true},
		{"dash separated", "B8-27-EB-11-22-33", "Raspberry Pi Foundation", true},
		{"vmware prefix", "00:50:56:00:00:01", "VMware", true},
		{"unknown prefix", "02:00:00:11:22:33", "", false},
		{"too short", "b8:27", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vendor, found := db.Lookup(tt.mac)
			if found != tt.found || vendor != tt.vendor {
				t.Errorf("Lookup(%q) = (%q, %v), want (%q, %v)", tt.mac, vendor, found, tt.vendor, tt.found)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oui.json")
	content := `{"a1b2c3": "Custom Corp", "b8:27:eb": "Overridden", "bad": "too short", "deadbe": 42}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	db := New()
	if err := db.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if vendor, ok := db.Lookup("a1:b2:c3:00:00:00"); !ok || vendor != "Custom Corp" {
		t.Errorf("loaded prefix lookup = (%q, %v)", vendor, ok)
	}
	if vendor, ok := db.Lookup("b8:27:eb:00:00:00"); !ok || vendor != "Overridden" {
		t.Errorf("file entry should win over builtin, got (%q, %v)", vendor, ok)
	}
	if _, ok := db.Lookup("de:ad:be:00:00:00"); ok {
		t.Error("non-string value should be ignored")
	}
}

func TestLoadFileErrors(t *testing.T) {
	db := New()
	if err := db.LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := db.LoadFile(path); err == nil {
		t.Error("expected error for invalid json")
	}
}
