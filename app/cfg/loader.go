package cfg

import (
	"cmp"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Cache input configuration
	DataPath    string `long:"data-path" env:"RGSX_DATA_PATH" default:"/mnt/rgsx/saves/ports/RGSX" description:"Base path for the RGSX cache"`
	SystemsFile string `long:"systems-file" env:"RGSX_SYSTEMS_FILE" description:"Override path to systems_list.json"`
	MappingPath string `long:"mapping-path" env:"SYSTEM_MAPPING_PATH" default:"/opt/rgsx/system_mapping.json" description:"Path to the JSON mapping of RGSX system name to platform type"`

	// Feed output configuration
	OutputPath      string `long:"output-path" env:"FEED_OUTPUT_PATH" default:"/var/www/html/content/feeds/rgsx_feed.json" description:"Output path for the generated feed"`
	FeedTitle       string `long:"feed-title" env:"FEED_TITLE" default:"RGSX Library" description:"Feed title"`
	FeedDescription string `long:"feed-description" env:"FEED_DESCRIPTION" description:"Feed description (defaults to a generated-from note)"`
	CategoryPrefix  string `long:"category-prefix" env:"FEED_CATEGORY_PREFIX" description:"Optional string prefixed to each category title"`
	ProfilePath     string `long:"profile-path" env:"FEED_PROFILE_PATH" description:"Optional YAML feed profile with title and per-system overrides"`

	// URL resolution configuration
	RomPrefixURL     string `long:"rom-prefix-url" env:"ROM_PREFIX_URL" description:"Base URL used when game metadata lacks a fully-qualified URL"`
	PlatformImageURL string `long:"platform-image-url" env:"PLATFORM_IMAGE_URL" description:"URL prefix for platform artwork hosted from the cache images directory"`
	BiosURLPrefix    string `long:"bios-url-prefix" env:"BIOS_URL_PREFIX" description:"URL prefix for locally hosted BIOS files"`
	BiosLocalPath    string `long:"bios-local-path" env:"BIOS_LOCAL_PATH" description:"Directory checked for locally hosted BIOS files"`
	NeoGeoBiosURL    string `long:"neogeo-bios-url" env:"NEOGEO_BIOS_URL" default:"https://archive.org/download/neogeoaesmvscomplete/BIOS/neogeo.zip" description:"Remote fallback URL for the Neo Geo BIOS (neogeo.zip)"`
	PsxBiosURLs      string `long:"psx-bios-urls" env:"PSX_BIOS_URLS" default:"https://psx.arthus.net/roms/bios/scph5500.bin,https://psx.arthus.net/roms/bios/scph5501.bin,https://psx.arthus.net/roms/bios/scph5502.bin" description:"Comma-separated remote fallback URLs for PlayStation BIOS files"`

	// Run mode
	DryRun bool `long:"dry-run" description:"Emit the feed to stdout instead of writing it"`
	Once   bool `long:"once" description:"Accepted for compatibility with scheduling entrypoints (no functional change)"`
	Debug  bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	generatedAt := time.Now().UTC().Format(time.RFC3339)

	cfg := &Cfg{
		DataPath:         raw.DataPath,
		SystemsFile:      raw.SystemsFile,
		GamesDir:         filepath.Join(raw.DataPath, "games"),
		ImagesDir:        filepath.Join(raw.DataPath, "images"),
		MappingPath:      raw.MappingPath,
		OutputPath:       raw.OutputPath,
		FeedTitle:        raw.FeedTitle,
		FeedDescription:  raw.FeedDescription,
		CategoryPrefix:   raw.CategoryPrefix,
		ProfilePath:      raw.ProfilePath,
		RomPrefixURL:     strings.TrimRight(raw.RomPrefixURL, "/"),
		PlatformImageURL: raw.PlatformImageURL,
		BiosURLPrefix:    raw.BiosURLPrefix,
		BiosLocalPath:    raw.BiosLocalPath,
		NeoGeoBiosURL:    raw.NeoGeoBiosURL,
		PsxBiosURLs:      splitURLList(raw.PsxBiosURLs),
		DryRun:           raw.DryRun,
		Once:             raw.Once,
		Debug:            raw.Debug,
		GeneratedAt:      generatedAt,
		Version:          GetVersion(),
	}

	if cfg.SystemsFile == "" {
		cfg.SystemsFile = filepath.Join(raw.DataPath, "systems_list.json")
	}

	if cfg.FeedDescription == "" {
		cfg.FeedDescription = fmt.Sprintf("Generated from RGSX caches on %s", generatedAt)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func splitURLList(value string) []string {
	if value == "" {
		return nil
	}

	var urls []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			urls = append(urls, trimmed)
		}
	}
	return urls
}
