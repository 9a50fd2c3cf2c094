package freight

import (
	"strconv"
	"strings"
)

// UnknownCEP is returned when no digits can be extracted from the input.
const UnknownCEP = "00000000"

// NormalizeCEP canonicalizes free-form postal codes to 8 numeric digits:
// non-digits are stripped, longer inputs are truncated to the first 8
// digits, shorter ones are left-padded with zeros. Empty input yields
// UnknownCEP. Normalization never fails.
func NormalizeCEP(cep string) string {
	var b strings.Builder
	for _, r := range cep {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" {
		return UnknownCEP
	}
	if len(s) >= 8 {
		return s[:8]
	}
	return strings.Repeat("0", 8-len(s)) + s
}

// cepNum parses a normalized CEP as an integer. ok is false when the
// string contains anything but digits.
func cepNum(cep string) (int, bool) {
	n, err := strconv.Atoi(NormalizeCEP(cep))
	if err != nil {
		return 0, false
	}
	return n, true
}

// ufRange maps an inclusive CEP interval to a federative unit. The table
// is scanned in declared order and the first containing range wins.
type ufRange struct {
	UF         string
	Start, End int
}

// RegionFor resolves the federative unit (UF) for a postal code, or ""
// when the code falls outside every configured range.
func RegionFor(cep string) string {
	n, ok := cepNum(cep)
	if !ok {
		return ""
	}
	for _, r := range ufRanges {
		if n >= r.Start && n <= r.End {
			return r.UF
		}
	}
	return ""
}
