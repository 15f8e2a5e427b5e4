package feed

import (
	"log/slog"

	"github.com/lysyi3m/rgsx-comb/app/cache"
	"github.com/lysyi3m/rgsx-comb/app/mapping"
)

// Builder runs the loader -> resolver -> emitter pipeline for one
// invocation. Recoverable problems degrade to warnings; only an
// unusable systems manifest aborts the build.
type Builder struct {
	loader    *cache.Loader
	table     *mapping.Table
	resolver  *Resolver
	generator *Generator
	biosCache map[string][]string
}

func NewBuilder(loader *cache.Loader, table *mapping.Table, resolver *Resolver, generator *Generator) *Builder {
	return &Builder{
		loader:    loader,
		table:     table,
		resolver:  resolver,
		generator: generator,
		biosCache: make(map[string][]string),
	}
}

func (b *Builder) Run() (*Document, error) {
	systems, err := b.loader.LoadSystems()
	if err != nil {
		return nil, err
	}

	categories := make([]Category, 0, len(systems))
	for _, system := range systems {
		category, ok := b.buildCategory(system)
		if !ok {
			continue
		}
		categories = append(categories, category)
	}

	props := &Props{PsxBios: b.bios("psx")}
	if urls := b.bios("neogeo"); len(urls) > 0 {
		props.NeoGeoBios = urls[0]
	}

	return b.generator.Run(categories, props), nil
}

func (b *Builder) buildCategory(system cache.System) (Category, bool) {
	identifier := system.Identifier()
	if identifier == "" {
		slog.Warn("Skipping system without a name or platform name")
		return Category{}, false
	}

	entry, ok := b.table.Lookup(identifier, system.Folder)
	if entry.Hide {
		slog.Debug("System hidden by profile override", "system", identifier)
		return Category{}, false
	}
	if !ok || entry.Type == "" {
		slog.Warn("System not present in mapping table, using unknown platform type", "system", identifier)
		entry.Type = UnknownPlatformType
	}

	games, err := b.loader.LoadGames(system)
	if err != nil {
		slog.Warn("Game list missing or invalid, emitting empty category", "system", identifier, "error", err)
		games = nil
	}

	items := b.resolver.BuildItems(games, entry.Type, b.bios(entry.Type))

	title := entry.Title
	if title == "" {
		title = system.DisplayName()
	}

	category := Category{
		Title: title,
		Type:  entry.Type,
		Items: items,
	}

	if entry.Icon != "" {
		category.Thumbnail = entry.Icon
	} else if artwork := b.resolver.Artwork(identifier); artwork.Source != AssetAbsent {
		category.Thumbnail = artwork.URL
	}

	return category, true
}

// bios memoizes per-platform BIOS resolution so the same warnings are
// not repeated for every category and the feed-level props.
func (b *Builder) bios(platformType string) []string {
	if urls, ok := b.biosCache[platformType]; ok {
		return urls
	}
	urls := b.resolver.Bios(platformType)
	b.biosCache[platformType] = urls
	return urls
}
