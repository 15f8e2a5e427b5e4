package feed

import (
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// UnknownPlatformType marks systems without a mapping table entry.
const UnknownPlatformType = "unknown"

// biosRequirements lists the firmware files each BIOS-dependent
// platform type needs, in the order the remote fallback URLs are
// configured.
var biosRequirements = map[string][]string{
	"neogeo": {"neogeo.zip"},
	"psx":    {"scph5500.bin", "scph5501.bin", "scph5502.bin"},
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

type ResolverOptions struct {
	RomPrefixURL     string
	PlatformImageURL string
	ImagesDir        string
	BiosURLPrefix    string
	BiosLocalPath    string
	NeoGeoBiosURL    string
	PsxBiosURLs      []string
}

// Resolver turns cache-relative references into absolute URLs,
// preferring locally hosted assets over remote fallbacks.
type Resolver struct {
	opts ResolverOptions
}

func NewResolver(opts ResolverOptions) *Resolver {
	return &Resolver{opts: opts}
}

// RomURL resolves the download URL for a game entry. Absolute URLs pass
// through unchanged; relative paths are joined to the configured ROM
// prefix. A relative path without a prefix is passed through with a
// warning so the client can attempt its own resolution.
func (r *Resolver) RomURL(romURL, romPath string) (string, bool) {
	candidate := romURL
	if candidate == "" {
		candidate = romPath
	}
	if candidate == "" {
		return "", false
	}

	if isAbsoluteURL(candidate) {
		return candidate, true
	}

	if r.opts.RomPrefixURL == "" {
		slog.Warn("Relative ROM path with no ROM prefix configured, passing through", "path", candidate)
		return candidate, true
	}

	return joinURL(r.opts.RomPrefixURL, candidate), true
}

// Artwork locates platform artwork named after the system identifier in
// the cache images directory. Without a configured image prefix no URL
// is emitted, so the feed never points at an asset that is not hosted.
func (r *Resolver) Artwork(identifier string) ResolvedAsset {
	if r.opts.PlatformImageURL == "" {
		return ResolvedAsset{Source: AssetAbsent}
	}

	entries, err := os.ReadDir(r.opts.ImagesDir)
	if err != nil {
		slog.Warn("Platform images directory unavailable", "dir", r.opts.ImagesDir, "error", err)
		return ResolvedAsset{Source: AssetAbsent}
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if !imageExtensions[strings.ToLower(ext)] {
			continue
		}
		if strings.EqualFold(strings.TrimSuffix(name, ext), identifier) {
			return ResolvedAsset{
				URL:    joinURL(r.opts.PlatformImageURL, url.PathEscape(name)),
				Source: AssetLocal,
			}
		}
	}

	slog.Warn("No platform artwork found", "system", identifier)
	return ResolvedAsset{Source: AssetAbsent}
}

// Bios resolves the firmware URLs for a BIOS-dependent platform type.
// Each required file is checked locally first; a miss falls back to the
// positionally matching remote URL. Files with neither source are
// omitted with a warning, never failing the run.
func (r *Resolver) Bios(platformType string) []string {
	required, ok := biosRequirements[platformType]
	if !ok {
		return nil
	}

	var fallbacks []string
	switch platformType {
	case "neogeo":
		if r.opts.NeoGeoBiosURL != "" {
			fallbacks = []string{r.opts.NeoGeoBiosURL}
		}
	case "psx":
		fallbacks = r.opts.PsxBiosURLs
	}

	var urls []string
	for i, name := range required {
		fallback := ""
		if i < len(fallbacks) {
			fallback = fallbacks[i]
		}

		asset := ResolveAsset(r.opts.BiosLocalPath, name, r.opts.BiosURLPrefix, fallback)
		if asset.Source == AssetAbsent {
			slog.Warn("BIOS file unavailable locally and no fallback configured", "platform", platformType, "file", name)
			continue
		}
		urls = append(urls, asset.URL)
	}

	return urls
}

// ResolveAsset prefers a locally hosted file and falls back to a remote
// URL. An empty localDir or prefix disables the local side.
func ResolveAsset(localDir, filename, prefix, fallback string) ResolvedAsset {
	if localDir != "" && prefix != "" {
		if info, err := os.Stat(filepath.Join(localDir, filename)); err == nil && !info.IsDir() {
			return ResolvedAsset{
				URL:    joinURL(prefix, url.PathEscape(filename)),
				Source: AssetLocal,
			}
		}
	}

	if fallback != "" {
		return ResolvedAsset{URL: fallback, Source: AssetRemote}
	}

	return ResolvedAsset{Source: AssetAbsent}
}

func joinURL(prefix, path string) string {
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(path, "/")
}

func isAbsoluteURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
