package ports

// ManifestReader reads build profiles from a workspace manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_reader.go -destination=mocks/mock_manifest_reader.go -package=mocks
type ManifestReader interface {
	// ReadProfiles returns the [profile] table keyed by profile name.
	ReadProfiles(path string) (map[string]any, error)
}
