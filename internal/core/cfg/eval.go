package cfg

import (
	"go.trai.ch/nixcrate/internal/core/domain"
)

// Target is the context a predicate is evaluated against.
type Target struct {
	Platform *domain.Platform
	// Features are the enabled features of the package declaring the predicate.
	Features domain.Set[string]
}

// Eval reports whether expr holds for target. Unknown atoms evaluate to false.
func Eval(expr Expr, target Target) bool {
	switch e := expr.(type) {
	case Name:
		return evalName(e.Name, target.Platform)
	case KeyValue:
		return evalKeyValue(e.Key, e.Value, target)
	case All:
		for _, sub := range e.Exprs {
			if !Eval(sub, target) {
				return false
			}
		}
		return true
	case Any:
		for _, sub := range e.Exprs {
			if Eval(sub, target) {
				return true
			}
		}
		return false
	case Not:
		return !Eval(e.Expr, target)
	default:
		return false
	}
}

func evalName(name string, p *domain.Platform) bool {
	if p == nil {
		return false
	}
	switch name {
	case "unix":
		return p.OS.IsUnix()
	case "windows":
		return p.OS.Has(domain.OSWindows)
	default:
		return false
	}
}

func evalKeyValue(key, value string, target Target) bool {
	if key == "feature" {
		return target.Features.Has(domain.Unescape(value))
	}

	p := target.Platform
	if p == nil {
		return false
	}

	switch key {
	case "target_os":
		return p.OS.Has(domain.ParseOS(domain.Unescape(value)))
	case "target_family":
		switch domain.ParseFamily(value) {
		case domain.FamilyUnix:
			return p.OS.IsUnix()
		case domain.FamilyWindows:
			return p.OS.Has(domain.OSWindows)
		default:
			return false
		}
	case "target_arch":
		return p.Arch != "" && p.Arch == domain.Unescape(value)
	case "target_vendor":
		return p.Vendor != "" && p.Vendor == domain.Unescape(value)
	case "target_endian":
		return !p.Endianness.IsZero() && p.Endianness == domain.ParseEndianness(value)
	case "target_env":
		return !p.Env.IsZero() && p.Env == domain.ParseEnv(value)
	case "target_pointer_width":
		return !p.PointerWidth.IsZero() && p.PointerWidth == domain.ParsePointerWidth(value)
	default:
		return false
	}
}
