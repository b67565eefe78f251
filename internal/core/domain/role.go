package domain

// Role is the machine a resolved package runs on.
type Role uint8

const (
	// RoleHost packages are linked into the final artifact.
	RoleHost Role = iota
	// RoleBuild packages run on the build machine: build scripts and code generators.
	RoleBuild
)

// ToBuild returns the role a dependency takes when needed at build time.
// Build stays Build.
func (r Role) ToBuild() Role {
	return RoleBuild
}

// String returns "host" or "build".
func (r Role) String() string {
	if r == RoleBuild {
		return "build"
	}
	return "host"
}
