package config

// File represents the structure of the nixcrate.yaml configuration file.
// Zero values leave the defaults in place.
type File struct {
	Request         string      `yaml:"request"`
	Output          string      `yaml:"output"`
	Format          string      `yaml:"format"`
	RootFeaturesVar string      `yaml:"rootFeaturesVar"`
	LogLevel        string      `yaml:"logLevel"`
	Manifest        string      `yaml:"manifest"`
	Prefetch        PrefetchDTO `yaml:"prefetch"`
}

// PrefetchDTO represents the prefetch section of the configuration.
type PrefetchDTO struct {
	Concurrency int    `yaml:"concurrency"`
	CacheFile   string `yaml:"cacheFile"`
}
