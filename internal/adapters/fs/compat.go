package fs

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/nixcrate/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// versionHeader is the attribute every generated plan carries. JSON plans
// decode through the YAML parser as well.
type versionHeader struct {
	Version string `yaml:"nixcrateVersion"`
}

// CheckCompatible reports whether a plan produced by a previous run may be
// replaced by the running version. The plan's version must be satisfied by
// ">= major.minor" of the running version. Development builds accept any plan.
func CheckCompatible(existing []byte, running string) error {
	current, err := semver.NewVersion(running)
	if err != nil {
		return nil
	}

	var header versionHeader
	if err := yaml.Unmarshal(existing, &header); err != nil || header.Version == "" {
		return zerr.Wrap(domain.ErrVersionIncompatible, "existing file was not generated by nixcrate")
	}

	previous, err := semver.NewVersion(header.Version)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrVersionIncompatible, "existing plan has an invalid version"),
			"version", header.Version)
	}

	constraint, err := semver.NewConstraint(fmt.Sprintf(">= %d.%d", previous.Major(), previous.Minor()))
	if err != nil {
		return zerr.Wrap(err, "failed to build version constraint")
	}
	release, err := current.SetPrerelease("")
	if err != nil {
		return zerr.Wrap(err, "failed to strip prerelease")
	}
	if !constraint.Check(&release) {
		incompatible := zerr.Wrap(domain.ErrVersionIncompatible, "existing plan was generated by a newer nixcrate")
		incompatible = zerr.With(incompatible, "existing", previous.String())
		return zerr.With(incompatible, "running", current.String())
	}
	return nil
}
