package cache

import (
	"encoding/json"
	"strings"
)

// System is one entry from the RGSX systems manifest.
type System struct {
	Name         string `json:"name"`
	PlatformName string `json:"platform_name"`
	Folder       string `json:"folder"`
}

// Identifier is the key used for mapping table lookups.
func (s System) Identifier() string {
	if s.Name != "" {
		return s.Name
	}
	return s.PlatformName
}

// DisplayName is the human-readable name used for category titles and
// for locating the per-system game manifest.
func (s System) DisplayName() string {
	if s.PlatformName != "" {
		return s.PlatformName
	}
	if s.Name != "" {
		return s.Name
	}
	return "Unknown"
}

// Game is one entry from a per-system game manifest.
type Game struct {
	Title      string
	URL        string
	Path       string
	Thumbnail  string
	Background string
	Size       string
}

// UnmarshalJSON accepts the three entry shapes found in RGSX caches:
// objects with varying key names, [title, url, size] arrays, and bare
// title strings.
func (g *Game) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch value := raw.(type) {
	case map[string]any:
		g.Title = stringField(value, "title", "name")
		g.URL = stringField(value, "url", "rom", "href")
		g.Path = stringField(value, "path", "rom_path")
		g.Thumbnail = stringField(value, "img", "thumbnail", "image")
		g.Background = stringField(value, "background", "banner", "screenshot")
		g.Size = stringField(value, "size")
	case []any:
		if len(value) > 0 {
			g.Title = asString(value[0])
		}
		if len(value) > 1 {
			g.URL = asString(value[1])
		}
		if len(value) > 2 {
			g.Size = asString(value[2])
		}
	case string:
		g.Title = strings.TrimSpace(value)
	}

	return nil
}

func stringField(entry map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := entry[key].(string); ok {
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

func asString(value any) string {
	text, _ := value.(string)
	return strings.TrimSpace(text)
}
