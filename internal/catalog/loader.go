// Package catalog ingests the freight spreadsheet exports: the pricing
// constants and the product-size table. Both are plain CSV produced by
// a one-time conversion of the legacy workbook; ambiguous column
// guessing stays in that conversion tool, not here.
package catalog

import (
	"encoding/csv"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
)

// Constants are the two startup-loaded pricing tunables.
type Constants struct {
	ValorKm   float64
	TruckSize float64
}

// Plausibility bounds for loaded constants; values outside are treated
// as spreadsheet noise and ignored.
const (
	minValorKm   = 3
	maxValorKm   = 50
	minTruckSize = 3
	maxTruckSize = 20
)

// LoadConstants reads a chave,valor CSV and overlays recognized keys on
// the provided defaults. Any failure keeps the defaults; the caller
// decides whether to log.
func LoadConstants(path string, defaults Constants) (Constants, error) {
	records, err := readCSV(path, 2)
	if err != nil {
		return defaults, err
	}
	out := defaults
	for _, rec := range records {
		key := strings.ToUpper(strings.TrimSpace(rec[0]))
		v, ok := parseNumber(rec[1])
		if !ok {
			continue
		}
		switch key {
		case "VALOR_KM":
			if v >= minValorKm && v <= maxValorKm {
				out.ValorKm = v
			}
		case "TAMANHO_CAMINHAO", "TAM_CAMINHAO":
			if v >= minTruckSize && v <= maxTruckSize {
				out.TruckSize = v
			}
		}
	}
	return out, nil
}

// LoadProducts reads a nome,dim1,dim2 CSV into the billable-size
// catalog. The product family decides which dimension is billable:
// vertical models (and fossas) ship standing so their first dimension
// rules; horizontal models and tanques lay down so the second rules;
// anything else takes the larger of the two. Rows resolving to a
// non-positive size are dropped.
func LoadProducts(path string) (map[string]float64, error) {
	records, err := readCSV(path, 3)
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(records))
	for i, rec := range records {
		name := cleanText(rec[0])
		if name == "" {
			continue
		}
		dim1, _ := parseNumber(rec[1])
		dim2, _ := parseNumber(rec[2])
		size := billableFor(name, dim1, dim2)
		if size <= 0 {
			log.Printf("[WARN] produto %q (linha %d) sem dimensão utilizável, ignorado", name, i+2)
			continue
		}
		out[name] = size
	}
	return out, nil
}

func billableFor(name string, dim1, dim2 float64) float64 {
	upper := strings.ToUpper(name)
	switch {
	case strings.Contains(upper, "FOSSA") || strings.Contains(upper, "VERTICAL"):
		return dim1
	case strings.Contains(upper, "HORIZONTAL") || strings.Contains(upper, "TANQUE"):
		return dim2
	case dim1 > dim2:
		return dim1
	default:
		return dim2
	}
}

// readCSV loads all data rows of a headered CSV, enforcing a minimum
// column count per row.
func readCSV(path string, minCols int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ler %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s: esperado cabeçalho e ao menos uma linha", path)
	}
	rows := make([][]string, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) < minCols {
			log.Printf("[WARN] %s linha %d: %d colunas, esperado %d", path, i+2, len(rec), minCols)
			continue
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

// cleanText collapses internal whitespace and trims, matching how the
// legacy workbook names were normalized.
func cleanText(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "\n", " ")), " ")
}

// parseNumber extracts a positive finite number from a cell, accepting
// comma decimal separators and stray unit suffixes.
func parseNumber(s string) (float64, bool) {
	s = strings.ToUpper(strings.TrimSpace(strings.ReplaceAll(s, ",", ".")))
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, false
	}
	return f, true
}
