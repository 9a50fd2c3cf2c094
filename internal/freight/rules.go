package freight

import "log"

// Rule is a municipality-level override. Any subset of the optional
// fields may be set; nil fields leave the engine defaults untouched.
// Rules are matched by first containing CEP range, so narrower ranges
// must be declared before broader ones.
type Rule struct {
	UF        string
	Municipio string
	Start     int
	End       int

	Km           *int
	ValorKm      *float64
	TruckSize    *float64
	Factor       *float64
	SurchargePct *float64
	Toll         *float64
	MinFee       *float64
}

// MatchRule returns the first rule whose range contains the destination
// CEP, or nil.
func MatchRule(rules []Rule, cep string) *Rule {
	n, ok := cepNum(cep)
	if !ok {
		return nil
	}
	for i := range rules {
		if n >= rules[i].Start && n <= rules[i].End {
			return &rules[i]
		}
	}
	return nil
}

// ValidateRanges warns about overlapping intervals in a range list.
// Overlap resolution depends entirely on declaration order, so genuine
// overlaps beyond the intended narrow-before-broad layering are flagged
// at load time instead of failing silently at request time.
func ValidateRanges(owner string, ranges []Range) {
	for i := range ranges {
		if ranges[i].Start > ranges[i].End {
			log.Printf("[WARN] %s: faixa invertida %d-%d (%s)", owner, ranges[i].Start, ranges[i].End, ranges[i].Label)
		}
		for j := i + 1; j < len(ranges); j++ {
			a, b := ranges[i], ranges[j]
			if a.Start > b.End || b.Start > a.End || a.Km == b.Km {
				continue
			}
			switch {
			case a.Start <= b.Start && b.End <= a.End:
				// First match wins, so a later range fully contained in an
				// earlier one can never be selected.
				log.Printf("[WARN] %s: faixa morta %s (%d km) contida em %s (%d km)",
					owner, b.Label, b.Km, a.Label, a.Km)
			case (a.End - a.Start) == (b.End - b.Start):
				// Narrow-before-broad layering is expected; equal-width
				// overlaps with diverging distances are not.
				log.Printf("[WARN] %s: faixas sobrepostas com km divergente: %s (%d km) e %s (%d km)",
					owner, a.Label, a.Km, b.Label, b.Km)
			}
		}
	}
}

// ValidateRuleRanges applies the same overlap check to regional rules.
func ValidateRuleRanges(rules []Rule) {
	for i := range rules {
		if rules[i].Start > rules[i].End {
			log.Printf("[WARN] regra regional %s: faixa invertida %d-%d", rules[i].Municipio, rules[i].Start, rules[i].End)
		}
		for j := i + 1; j < len(rules); j++ {
			if rules[i].Start <= rules[j].End && rules[j].Start <= rules[i].End {
				log.Printf("[WARN] regras regionais sobrepostas: %s e %s", rules[i].Municipio, rules[j].Municipio)
			}
		}
	}
}
