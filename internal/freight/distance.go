package freight

// Resolution is a resolved travel distance plus the provenance of the
// fallback tier that produced it, so callers can tell a confident quote
// from an estimated one.
type Resolution struct {
	Km     int
	Source string
}

// Provenance tags, in resolution priority order.
const (
	SourceParam    = "param"
	SourceRule     = "municipio"
	SourceRange    = "faixa_cep"
	SourceGeodesic = "geodesico"
	SourceUFPrefix = "fallback_uf_"
	SourceDefault  = "cep_nao_encontrado"
)

// rangeKm scans a center's range table in declared order and returns
// the first containing match.
func rangeKm(c Center, cep string) (int, bool) {
	n, ok := cepNum(cep)
	if !ok {
		return 0, false
	}
	for _, r := range c.Ranges {
		if n >= r.Start && n <= r.End {
			return r.Km, true
		}
	}
	return 0, false
}

// resolveDistance walks the fallback chain for an already-selected
// origin: forced param, regional rule, range table, geodesic measure,
// UF estimate, hardcoded default. No tier ever fails hard and the
// result is always positive.
func (e *Engine) resolveDistance(c Center, cep string, forcedKm, geoKm int, rule *Rule) Resolution {
	if forcedKm > 0 {
		return Resolution{forcedKm, SourceParam}
	}
	if rule != nil && rule.Km != nil && *rule.Km > 0 {
		return Resolution{*rule.Km, SourceRule}
	}
	if km, ok := rangeKm(c, cep); ok && km > 0 {
		return Resolution{km, SourceRange}
	}
	if geoKm > 0 {
		return Resolution{geoKm, SourceGeodesic}
	}
	if uf := RegionFor(cep); uf != "" {
		if km, ok := ufKm[uf]; ok {
			return Resolution{km, SourceUFPrefix + uf}
		}
	}
	return Resolution{e.opts.DefaultKm, SourceDefault}
}
