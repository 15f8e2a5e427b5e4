package mapping

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// InvalidMappingError reports an unusable mapping table. It is fatal:
// without the table the transform cannot assign platform types.
type InvalidMappingError struct {
	Path string
	Err  error
}

func (e *InvalidMappingError) Error() string {
	return fmt.Sprintf("system mapping unusable at %s: %v", e.Path, e.Err)
}

func (e *InvalidMappingError) Unwrap() error {
	return e.Err
}

// Entry describes the target platform for one source system. Title and
// Icon are optional per-system overrides.
type Entry struct {
	Type  string `json:"type"`
	Title string `json:"title,omitempty"`
	Icon  string `json:"icon,omitempty"`
	Hide  bool   `json:"hide,omitempty"`
}

// Table maps RGSX system identifiers to platform entries.
type Table struct {
	entries map[string]Entry
}

// Load reads the mapping table. Values may be plain platform type
// strings or full entry objects.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &InvalidMappingError{Path: path, Err: err}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &InvalidMappingError{Path: path, Err: fmt.Errorf("failed to parse JSON: %w", err)}
	}

	entries := make(map[string]Entry, len(raw))
	for name, value := range raw {
		var plain string
		if err := json.Unmarshal(value, &plain); err == nil {
			entries[name] = Entry{Type: plain}
			continue
		}

		var entry Entry
		if err := json.Unmarshal(value, &entry); err != nil {
			return nil, &InvalidMappingError{Path: path, Err: fmt.Errorf("entry %q: %w", name, err)}
		}
		entries[name] = entry
	}

	return &Table{entries: entries}, nil
}

// Lookup resolves the entry for a system, trying the exact name, the
// cache folder, the lowercased folder, and finally a case-insensitive
// scan of the table keys.
func (t *Table) Lookup(name, folder string) (Entry, bool) {
	if entry, ok := t.entries[name]; ok {
		return entry, true
	}

	if folder != "" {
		if entry, ok := t.entries[folder]; ok {
			return entry, true
		}
		if entry, ok := t.entries[strings.ToLower(folder)]; ok {
			return entry, true
		}
	}

	for key, entry := range t.entries {
		if strings.EqualFold(key, name) {
			return entry, true
		}
	}

	return Entry{}, false
}

// Merge layers a profile override onto a system's entry, creating the
// entry if the system is otherwise unmapped.
func (t *Table) Merge(name, title, icon string, hide bool) {
	entry := t.entries[name]
	if title != "" {
		entry.Title = title
	}
	if icon != "" {
		entry.Icon = icon
	}
	if hide {
		entry.Hide = true
	}
	t.entries[name] = entry
}

func (t *Table) Len() int {
	return len(t.entries)
}
