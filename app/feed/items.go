package feed

import (
	"log/slog"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/lysyi3m/rgsx-comb/app/cache"
)

var romExtensionRe = regexp.MustCompile(`(?i)\.(zip|7z|chd|rar|iso|bin|cue|gba|gbc|gb|nes|sfc|smc|smd|md|pce|img)$`)

// BuildItems converts the games of one system into feed items in
// game-list order. Entries missing both a usable title and a URL are
// skipped.
func (r *Resolver) BuildItems(games []cache.Game, platformType string, bios []string) []Item {
	items := make([]Item, 0, len(games))

	for _, game := range games {
		romURL, ok := r.RomURL(game.URL, game.Path)
		if !ok {
			slog.Debug("Skipping game without a ROM reference", "title", game.Title)
			continue
		}

		title := CleanTitle(game.Title, romURL)
		if title == "" {
			slog.Debug("Skipping game without a usable title", "rom", romURL)
			continue
		}

		items = append(items, Item{
			Title:      title,
			Type:       platformType,
			Thumbnail:  game.Thumbnail,
			Background: game.Background,
			Props: ItemProps{
				Rom:  romURL,
				Bios: bios,
			},
		})
	}

	return items
}

// CleanTitle trims the raw title and strips trailing ROM archive
// extensions, deriving a title from the URL basename when the raw
// title is empty.
func CleanTitle(raw, romURL string) string {
	title := strings.TrimSpace(raw)
	if title != "" {
		title = strings.TrimSpace(romExtensionRe.ReplaceAllString(title, ""))
	}
	if title == "" && romURL != "" {
		title = strings.TrimSpace(romExtensionRe.ReplaceAllString(titleFromURL(romURL), ""))
	}
	return title
}

func titleFromURL(romURL string) string {
	segment := romURL[strings.LastIndex(romURL, "/")+1:]
	if decoded, err := url.PathUnescape(segment); err == nil {
		segment = decoded
	}

	stem := strings.TrimSuffix(segment, path.Ext(segment))
	if stem == "" {
		return segment
	}
	return stem
}
