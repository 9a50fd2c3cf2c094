package freight

import (
	"log"
	"strconv"
	"strings"
)

// Item is one parsed product block. Dimensions are in meters after unit
// normalization; Cubagem (m³), Peso (kg) and Valor (declared value) are
// carried for the response but do not enter the fee formula.
type Item struct {
	Comp    float64
	Larg    float64
	Alt     float64
	Cubagem float64
	Qty     int
	Peso    float64
	Codigo  string
	Valor   float64
}

// ParseStats reports how many blocks were seen and how many were
// dropped for having fewer than 8 fields.
type ParseStats struct {
	Blocks  int
	Dropped int
}

const itemFields = 8

// cmThreshold separates meter-scaled from centimeter-scaled dimension
// values: anything above 20 is assumed to be centimeters.
const cmThreshold = 20.0

// ParseItems splits a storefront product string into line items. Blocks
// are separated by "/" or "|"; each block carries exactly 8
// semicolon-delimited fields: comp;larg;alt;cubagem;qtd;peso;codigo;valor.
// Malformed blocks are dropped with a warning, never an error; the
// caller distinguishes "nothing parsed" via ParseStats.
func ParseItems(prods string) ([]Item, ParseStats) {
	var stats ParseStats

	blocks := splitBlocks(prods)
	items := make([]Item, 0, len(blocks))
	for _, block := range blocks {
		stats.Blocks++
		parts := strings.Split(block, ";")
		if len(parts) < itemFields {
			log.Printf("[WARN] produto com menos de %d campos, ignorado: %q", itemFields, block)
			stats.Dropped++
			continue
		}

		it := Item{
			Comp:    toMeters(parseNum(parts[0])),
			Larg:    toMeters(parseNum(parts[1])),
			Alt:     toMeters(parseNum(parts[2])),
			Cubagem: parseNum(parts[3]),
			Peso:    parseNum(parts[5]),
			Codigo:  strings.TrimSpace(parts[6]),
			Valor:   parseNum(parts[7]),
		}
		it.Qty = int(parseNum(parts[4]))
		if it.Qty < 1 {
			it.Qty = 1
		}
		if it.Codigo == "" {
			it.Codigo = "Item"
		}
		items = append(items, it)
	}
	return items, stats
}

// splitBlocks separates product blocks on the first delimiter found,
// trying "/" before "|". Input with neither delimiter is a single block.
func splitBlocks(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, sep := range []string{"/", "|"} {
		if strings.Contains(s, sep) {
			raw := strings.Split(s, sep)
			blocks := make([]string, 0, len(raw))
			for _, b := range raw {
				if b = strings.TrimSpace(b); b != "" {
					blocks = append(blocks, b)
				}
			}
			return blocks
		}
	}
	return []string{s}
}

// parseNum reads a numeric field accepting comma or period decimal
// separators. Unparsable or empty values normalize to 0.
func parseNum(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// toMeters applies the per-dimension unit heuristic: values above the
// threshold are centimeters and divided by 100.
func toMeters(v float64) float64 {
	if v > cmThreshold {
		return v / 100
	}
	return v
}

// MaxDimension returns the largest linear dimension of the item.
func (it Item) MaxDimension() float64 {
	m := it.Comp
	if it.Larg > m {
		m = it.Larg
	}
	if it.Alt > m {
		m = it.Alt
	}
	return m
}
