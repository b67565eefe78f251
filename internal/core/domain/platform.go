package domain

// OS is a set of operating system flags. Specific systems carry the bits of
// the families they belong to, so Android implies Linux and Linux implies Unix.
type OS uint16

const (
	osLinuxBit OS = 1 << iota
	osWindowsBit
	osAndroidBit
	osIOSBit
	osFreeBSDBit
	osNetBSDBit
	osOpenBSDBit
	osMacOSBit
	osUnixBit
	osOtherBit
)

const (
	OSUnix    = osUnixBit
	OSLinux   = osLinuxBit | OSUnix
	OSWindows = osWindowsBit
	OSAndroid = osAndroidBit | OSLinux
	OSIOS     = osIOSBit | OSUnix
	OSFreeBSD = osFreeBSDBit | OSUnix
	OSNetBSD  = osNetBSDBit | OSUnix
	OSOpenBSD = osOpenBSDBit | OSUnix
	OSMacOS   = osMacOSBit | OSUnix
	OSOther   = osOtherBit
)

// osNames lists the specific systems from most to least specific. String
// returns the first entry the set contains.
var osNames = []struct {
	os   OS
	name string
}{
	{OSAndroid, "android"},
	{OSWindows, "windows"},
	{OSLinux, "linux"},
	{OSIOS, "ios"},
	{OSMacOS, "macos"},
	{OSFreeBSD, "freebsd"},
	{OSNetBSD, "netbsd"},
	{OSOpenBSD, "openbsd"},
}

// ParseOS maps a target_os value to its flag set. Unknown names map to OSOther.
func ParseOS(s string) OS {
	for _, n := range osNames {
		if n.name == s {
			return n.os
		}
	}
	return OSOther
}

// Has reports whether every bit of other is set in o.
func (o OS) Has(other OS) bool {
	return other != 0 && o&other == other
}

// IsUnix reports whether o belongs to the unix family.
func (o OS) IsUnix() bool {
	return o.Has(OSUnix)
}

// String returns the cfg name of the most specific system set in o.
func (o OS) String() string {
	for _, n := range osNames {
		if o.Has(n.os) {
			return n.name
		}
	}
	return ""
}

// Endianness is "little", "big", or any other escaped name.
type Endianness struct {
	name  string
	other bool
}

// Known endiannesses.
var (
	// EndianLittle is little-endian byte order.
	EndianLittle = Endianness{name: "little"}
	// EndianBig is big-endian byte order.
	EndianBig = Endianness{name: "big"}
)

// ParseEndianness maps a target_endian value to an Endianness.
func ParseEndianness(s string) Endianness {
	switch s {
	case "little":
		return EndianLittle
	case "big":
		return EndianBig
	default:
		return Endianness{name: Unescape(s), other: true}
	}
}

// IsZero reports whether the endianness is unknown.
func (e Endianness) IsZero() bool { return e == Endianness{} }

// String returns the cfg value of e.
func (e Endianness) String() string { return displayName(e.name, e.other) }

// Env is the target ABI environment.
type Env struct {
	name  string
	other bool
}

// Known environments.
var (
	// EnvGNU is the GNU libc environment, also used when none is given.
	EnvGNU = Env{name: "gnu"}
	// EnvMusl is the musl libc environment.
	EnvMusl = Env{name: "musl"}
	// EnvMSVC is the Microsoft Visual C++ environment.
	EnvMSVC = Env{name: "msvc"}
)

// ParseEnv maps a target_env value to an Env. The empty string means gnu.
func ParseEnv(s string) Env {
	switch s {
	case "", "gnu":
		return EnvGNU
	case "musl":
		return EnvMusl
	case "msvc":
		return EnvMSVC
	default:
		return Env{name: Unescape(s), other: true}
	}
}

// OtherEnv returns an unrecognized environment holding name as given.
func OtherEnv(name string) Env { return Env{name: name, other: true} }

// IsZero reports whether the environment is unknown.
func (e Env) IsZero() bool { return e == Env{} }

// String returns the cfg value of e.
func (e Env) String() string { return displayName(e.name, e.other) }

// PointerWidth is the target pointer size.
type PointerWidth struct {
	name  string
	other bool
}

// Known pointer widths.
var (
	// PointerWidth32 is a 32-bit target.
	PointerWidth32 = PointerWidth{name: "32"}
	// PointerWidth64 is a 64-bit target.
	PointerWidth64 = PointerWidth{name: "64"}
)

// ParsePointerWidth maps a target_pointer_width value to a PointerWidth.
func ParsePointerWidth(s string) PointerWidth {
	switch s {
	case "32":
		return PointerWidth32
	case "64":
		return PointerWidth64
	default:
		return PointerWidth{name: Unescape(s), other: true}
	}
}

// IsZero reports whether the pointer width is unknown.
func (w PointerWidth) IsZero() bool { return w == PointerWidth{} }

// String returns the cfg value of w.
func (w PointerWidth) String() string { return displayName(w.name, w.other) }

// Family is a target_family value.
type Family struct {
	name  string
	other bool
}

// Known families.
var (
	// FamilyUnix covers unix-like targets.
	FamilyUnix = Family{name: "unix"}
	// FamilyWindows covers windows targets.
	FamilyWindows = Family{name: "windows"}
)

// ParseFamily maps a target_family value to a Family.
func ParseFamily(s string) Family {
	switch s {
	case "unix":
		return FamilyUnix
	case "windows":
		return FamilyWindows
	default:
		return Family{name: Unescape(s), other: true}
	}
}

// String returns the cfg value of f.
func (f Family) String() string { return displayName(f.name, f.other) }

func displayName(name string, other bool) string {
	if other {
		return EscapeDefault(name)
	}
	return name
}

// Platform is the parsed description of a build or host machine.
type Platform struct {
	// Config is the platform's literal configuration name, e.g. "x86_64-unknown-linux-gnu".
	Config string
	OS     OS
	// Arch and Vendor are empty when the descriptor omits them.
	Arch         string
	Vendor       string
	Endianness   Endianness
	Env          Env
	PointerWidth PointerWidth
}

// RawPlatform is the platform descriptor as emitted by the nix evaluator.
type RawPlatform struct {
	Config         string `json:"config" validate:"required"`
	Is32Bit        bool   `json:"is32bit"`
	Is64Bit        bool   `json:"is64bit"`
	IsAndroid      bool   `json:"isAndroid"`
	IsBigEndian    bool   `json:"isBigEndian"`
	IsFreeBSD      bool   `json:"isFreeBSD"`
	IsIOS          bool   `json:"isiOS"`
	IsLinux        bool   `json:"isLinux"`
	IsLittleEndian bool   `json:"isLittleEndian"`
	IsMacOS        bool   `json:"isMacOS"`
	IsNetBSD       bool   `json:"isNetBSD"`
	IsOpenBSD      bool   `json:"isOpenBSD"`
	IsUnix         bool   `json:"isUnix"`
	IsWindows      bool   `json:"isWindows"`
	Libc           string `json:"libc"`
	Parsed         struct {
		CPU    NamedPart `json:"cpu"`
		Vendor NamedPart `json:"vendor"`
	} `json:"parsed"`
}

// NamedPart is a component of a parsed system triple.
type NamedPart struct {
	Name string `json:"name"`
}

// NewPlatform converts a raw descriptor. Little endian wins over big and
// 32-bit wins over 64-bit when a descriptor sets both.
func NewPlatform(raw RawPlatform) *Platform {
	p := &Platform{
		Config: raw.Config,
		Arch:   raw.Parsed.CPU.Name,
		Vendor: raw.Parsed.Vendor.Name,
	}

	flags := []struct {
		set bool
		os  OS
	}{
		{raw.IsAndroid, OSAndroid},
		{raw.IsFreeBSD, OSFreeBSD},
		{raw.IsIOS, OSIOS},
		{raw.IsLinux, OSLinux},
		{raw.IsMacOS, OSMacOS},
		{raw.IsNetBSD, OSNetBSD},
		{raw.IsOpenBSD, OSOpenBSD},
		{raw.IsUnix, OSUnix},
		{raw.IsWindows, OSWindows},
	}
	for _, f := range flags {
		if f.set {
			p.OS |= f.os
		}
	}

	switch {
	case raw.IsLittleEndian:
		p.Endianness = EndianLittle
	case raw.IsBigEndian:
		p.Endianness = EndianBig
	}

	switch raw.Libc {
	case "glibc":
		p.Env = EnvGNU
	case "musl":
		p.Env = EnvMusl
	case "msvcrt":
		p.Env = EnvMSVC
	default:
		p.Env = OtherEnv(raw.Libc)
	}

	switch {
	case raw.Is32Bit:
		p.PointerWidth = PointerWidth32
	case raw.Is64Bit:
		p.PointerWidth = PointerWidth64
	}

	return p
}
