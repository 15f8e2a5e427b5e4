package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/lysyi3m/rgsx-comb/app/cache"
	"github.com/lysyi3m/rgsx-comb/app/cfg"
	"github.com/lysyi3m/rgsx-comb/app/config"
	"github.com/lysyi3m/rgsx-comb/app/feed"
	"github.com/lysyi3m/rgsx-comb/app/mapping"
)

func main() {
	os.Exit(run())
}

func run() int {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Load configuration from environment variables and command-line flags
	appCfg, err := cfg.Load()
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return 1
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return 0
	}

	if appCfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	log.Printf("Starting RGSX feed build (version %s)...", appCfg.Version)

	table, err := mapping.Load(appCfg.MappingPath)
	if err != nil {
		log.Printf("Unable to load system mapping: %v", err)
		return 1
	}
	log.Printf("Loaded %d mapping entries from %s", table.Len(), appCfg.MappingPath)

	if appCfg.ProfilePath != "" {
		profile, err := config.NewLoader(appCfg.ProfilePath).Load()
		if err != nil {
			log.Printf("Unable to load feed profile: %v", err)
			return 1
		}

		if profile.Feed.Title != "" {
			appCfg.FeedTitle = profile.Feed.Title
		}
		if profile.Feed.Description != "" {
			appCfg.FeedDescription = profile.Feed.Description
		}
		if profile.Feed.CategoryPrefix != "" {
			appCfg.CategoryPrefix = profile.Feed.CategoryPrefix
		}
		for name, override := range profile.Systems {
			table.Merge(name, override.Title, override.Icon, override.Hide)
		}
		log.Printf("Applied feed profile from %s", appCfg.ProfilePath)
	}

	loader := cache.NewLoader(appCfg.SystemsFile, appCfg.GamesDir)
	resolver := feed.NewResolver(feed.ResolverOptions{
		RomPrefixURL:     appCfg.RomPrefixURL,
		PlatformImageURL: appCfg.PlatformImageURL,
		ImagesDir:        appCfg.ImagesDir,
		BiosURLPrefix:    appCfg.BiosURLPrefix,
		BiosLocalPath:    appCfg.BiosLocalPath,
		NeoGeoBiosURL:    appCfg.NeoGeoBiosURL,
		PsxBiosURLs:      appCfg.PsxBiosURLs,
	})
	generator := feed.NewGenerator(feed.GeneratorOptions{
		Title:          appCfg.FeedTitle,
		Description:    appCfg.FeedDescription,
		Generated:      appCfg.GeneratedAt,
		CategoryPrefix: appCfg.CategoryPrefix,
	})
	builder := feed.NewBuilder(loader, table, resolver, generator)

	doc, err := builder.Run()
	if err != nil {
		log.Printf("Feed build failed: %v", err)
		return 1
	}

	if appCfg.DryRun {
		data, err := feed.Encode(doc)
		if err != nil {
			log.Printf("Failed to encode feed: %v", err)
			return 1
		}
		os.Stdout.Write(data)
		return 0
	}

	if err := feed.NewWriter(appCfg.OutputPath).Run(doc); err != nil {
		log.Printf("Failed to write feed: %v", err)
		return 1
	}

	log.Printf("Feed written to %s (%d categories)", appCfg.OutputPath, len(doc.Categories))
	return 0
}
