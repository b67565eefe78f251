package domain

// Format is the serialization of the generated plan.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DefaultConfigFile is the configuration file looked up when none is given.
const DefaultConfigFile = "nixcrate.yaml"

// Config is the nixcrate.yaml configuration.
type Config struct {
	// Request is the path of the resolve request document.
	Request string `validate:"required"`
	// Output is the path the plan is written to.
	Output string `validate:"required"`
	Format Format `validate:"oneof=json yaml"`
	// RootFeaturesVar is the nix variable conditions test membership against.
	RootFeaturesVar string `validate:"required"`
	LogLevel        string `validate:"omitempty,oneof=debug info warn warning error"`
	Manifest        string
	Prefetch        PrefetchConfig
}

// PrefetchConfig controls checksum computation for git sources.
type PrefetchConfig struct {
	Concurrency int    `validate:"min=1,max=64"`
	CacheFile   string `validate:"required"`
}

// DefaultConfig returns the configuration used when nixcrate.yaml is absent.
func DefaultConfig() *Config {
	return &Config{
		Request:         "nixcrate.request.json",
		Output:          "nixcrate.plan.json",
		Format:          FormatJSON,
		RootFeaturesVar: "rootFeatures'",
		LogLevel:        "info",
		Prefetch: PrefetchConfig{
			Concurrency: 4,
			CacheFile:   ".nixcrate/checksums.json",
		},
	}
}
