package config

// Profile is an optional YAML file overriding feed presentation
// settings supplied through the environment.
type Profile struct {
	Feed    FeedInfo                  `yaml:"feed"`
	Systems map[string]SystemOverride `yaml:"systems"`
}

// FeedInfo contains feed-level presentation overrides.
type FeedInfo struct {
	Title          string `yaml:"title"`
	Description    string `yaml:"description"`
	CategoryPrefix string `yaml:"category_prefix"`
}

// SystemOverride adjusts how one source system is presented.
type SystemOverride struct {
	Title string `yaml:"title"`
	Icon  string `yaml:"icon"`
	Hide  bool   `yaml:"hide"`
}
