package feed

// webЯcade feed document schema. Struct field order fixes the JSON
// serialization order, which keeps repeated runs byte-identical.

type Document struct {
	Title       string     `json:"title"`
	LongTitle   string     `json:"longTitle"`
	Description string     `json:"description"`
	Generated   string     `json:"generated"`
	Props       *Props     `json:"props,omitempty"`
	Categories  []Category `json:"categories"`
}

// Props carries feed-level BIOS references for BIOS-dependent systems.
type Props struct {
	NeoGeoBios string   `json:"neogeo_bios,omitempty"`
	PsxBios    []string `json:"psx_bios,omitempty"`
}

type Category struct {
	Title      string `json:"title"`
	Type       string `json:"type"`
	Thumbnail  string `json:"thumbnail,omitempty"`
	Background string `json:"background,omitempty"`
	Items      []Item `json:"items"`
}

type Item struct {
	Title      string    `json:"title"`
	Type       string    `json:"type"`
	Thumbnail  string    `json:"thumbnail,omitempty"`
	Background string    `json:"background,omitempty"`
	Props      ItemProps `json:"props"`
}

type ItemProps struct {
	Rom  string   `json:"rom"`
	Bios []string `json:"bios,omitempty"`
}

// Asset resolution types

type AssetSource string

const (
	AssetLocal  AssetSource = "local"
	AssetRemote AssetSource = "remote-fallback"
	AssetAbsent AssetSource = "absent"
)

// ResolvedAsset is the outcome of a local-first URL lookup. It is never
// persisted, only used to populate output fields.
type ResolvedAsset struct {
	URL    string
	Source AssetSource
}
