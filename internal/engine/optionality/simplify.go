package optionality

import "go.trai.ch/nixcrate/internal/core/domain"

// simplify promotes items of one package to Required: items every root needs,
// every dev dependency, and all remaining items when they share one condition.
func simplify(p *domain.PackageOptionality, roots int) {
	for key, o := range p.Dependencies {
		switch {
		case key.Kind == domain.DepKindDev:
			p.Dependencies[key] = domain.Required{}
		case requiredByAll(o, roots):
			p.Dependencies[key] = domain.Required{}
		}
	}
	for name, o := range p.Features {
		if requiredByAll(o, roots) {
			p.Features[name] = domain.Required{}
		}
	}

	if !allEqual(p) {
		return
	}
	for key := range p.Dependencies {
		p.Dependencies[key] = domain.Required{}
	}
	for name := range p.Features {
		p.Features[name] = domain.Required{}
	}
}

func requiredByAll(o domain.Optionality, roots int) bool {
	opt, ok := o.(*domain.Optional)
	return ok && opt.RequiredBy.Len() == roots
}

// allEqual reports whether every non-dev item of p carries the same reasons.
func allEqual(p *domain.PackageOptionality) bool {
	var first domain.Optionality
	for key, o := range p.Dependencies {
		if key.Kind == domain.DepKindDev {
			continue
		}
		if first == nil {
			first = o
		} else if !first.Equal(o) {
			return false
		}
	}
	for _, o := range p.Features {
		if first == nil {
			first = o
		} else if !first.Equal(o) {
			return false
		}
	}
	return first != nil
}
