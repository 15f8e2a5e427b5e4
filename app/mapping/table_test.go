package mapping

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTable(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "system_mapping.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write mapping table: %v", err)
	}
	return path
}

func TestLoadMissingTable(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("Expected error for missing mapping table")
	}

	var invalid *InvalidMappingError
	if !errors.As(err, &invalid) {
		t.Errorf("Expected InvalidMappingError, got: %v", err)
	}
}

func TestLoadMalformedTable(t *testing.T) {
	path := writeTable(t, `{"snes": `)

	_, err := Load(path)
	var invalid *InvalidMappingError
	if !errors.As(err, &invalid) {
		t.Errorf("Expected InvalidMappingError for malformed JSON, got: %v", err)
	}
}

func TestLoadPlainAndObjectEntries(t *testing.T) {
	path := writeTable(t, `{
		"snes": "snes",
		"neogeo": {"type": "neogeo", "title": "Neo Geo AES", "icon": "https://img.example.com/neogeo.png"}
	}`)

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("Expected 2 entries, got %d", table.Len())
	}

	entry, ok := table.Lookup("snes", "")
	if !ok || entry.Type != "snes" {
		t.Errorf("Plain entry not loaded: %+v (ok=%v)", entry, ok)
	}

	entry, ok = table.Lookup("neogeo", "")
	if !ok || entry.Type != "neogeo" || entry.Title != "Neo Geo AES" {
		t.Errorf("Object entry not loaded: %+v (ok=%v)", entry, ok)
	}
	if entry.Icon != "https://img.example.com/neogeo.png" {
		t.Errorf("Icon hint not loaded: %q", entry.Icon)
	}
}

func TestLookupChain(t *testing.T) {
	path := writeTable(t, `{
		"Super Nintendo": "snes",
		"megadrive": "genesis",
		"PlayStation": "psx"
	}`)

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	tests := []struct {
		name     string
		folder   string
		expected string
		found    bool
	}{
		{"Super Nintendo", "", "snes", true},     // exact name
		{"Sega Mega Drive", "megadrive", "genesis", true}, // folder
		{"Sega Mega Drive", "MegaDrive", "genesis", true}, // lowercased folder
		{"playstation", "", "psx", true},         // case-insensitive name
		{"dreamcast", "dc", "", false},           // unmapped
	}

	for _, test := range tests {
		entry, ok := table.Lookup(test.name, test.folder)
		if ok != test.found {
			t.Errorf("Lookup(%q, %q): expected found=%v, got %v", test.name, test.folder, test.found, ok)
			continue
		}
		if entry.Type != test.expected {
			t.Errorf("Lookup(%q, %q): expected type %q, got %q", test.name, test.folder, test.expected, entry.Type)
		}
	}
}

func TestMergeOverrides(t *testing.T) {
	path := writeTable(t, `{"snes": "snes"}`)

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	table.Merge("snes", "16-bit Classics", "https://img.example.com/snes.png", false)
	table.Merge("ports", "", "", true)

	entry, ok := table.Lookup("snes", "")
	if !ok || entry.Type != "snes" {
		t.Fatalf("Merge should preserve the platform type: %+v", entry)
	}
	if entry.Title != "16-bit Classics" || entry.Icon != "https://img.example.com/snes.png" {
		t.Errorf("Merge should layer overrides: %+v", entry)
	}

	entry, ok = table.Lookup("ports", "")
	if !ok || !entry.Hide {
		t.Errorf("Merge should create a hide entry for unmapped systems: %+v (ok=%v)", entry, ok)
	}
}
