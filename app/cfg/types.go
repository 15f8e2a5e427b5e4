package cfg

type Cfg struct {
	// Cache input configuration
	DataPath    string
	SystemsFile string
	GamesDir    string
	ImagesDir   string
	MappingPath string

	// Feed output configuration
	OutputPath      string
	FeedTitle       string
	FeedDescription string
	CategoryPrefix  string
	ProfilePath     string

	// URL resolution configuration
	RomPrefixURL     string
	PlatformImageURL string
	BiosURLPrefix    string
	BiosLocalPath    string
	NeoGeoBiosURL    string
	PsxBiosURLs      []string

	// Run mode
	DryRun bool
	Once   bool
	Debug  bool

	// Application metadata
	GeneratedAt string
	Version     string
}
