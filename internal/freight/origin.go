package freight

import (
	"context"
	"log"
	"math"
	"sort"
)

// selection is the outcome of origin selection: the chosen center, the
// road-adjusted geodesic distance when coordinates were available, and
// whether stock was confirmed for every coded item.
type selection struct {
	Center         Center
	GeoKm          int
	StockConfirmed bool
}

// selectOrigin picks the distribution center for a destination. An
// explicit origin CEP pins the matching center, though stock is still
// consulted for the confirmation flag. In geodesic mode the
// centers are ranked by road-adjusted great-circle distance and the
// nearest one stocking every coded item wins; when none qualifies the
// globally nearest center is used and the quote is flagged as stock
// unconfirmed. Otherwise selection falls back to the range tables:
// the center with the smallest matching distance wins, and a
// destination outside every table lands on the primary center.
func (e *Engine) selectOrigin(ctx context.Context, cep string, items []Item, originCEP string) selection {
	if originCEP != "" {
		want := NormalizeCEP(originCEP)
		for _, c := range e.centers {
			if c.CEP == want {
				return selection{Center: c, StockConfirmed: e.hasAllInStock(ctx, c, items)}
			}
		}
		log.Printf("[WARN] cep_origem %s não corresponde a nenhum CD, seleção automática", want)
	}

	if e.opts.Geodesic && e.geo != nil {
		if sel, ok := e.selectByGeodesic(ctx, cep, items); ok {
			return sel
		}
	}
	return e.selectByTables(cep)
}

func (e *Engine) selectByTables(cep string) selection {
	best := selection{Center: e.centers[0], StockConfirmed: true}
	bestKm := -1
	for _, c := range e.centers {
		if km, ok := rangeKm(c, cep); ok && (bestKm < 0 || km < bestKm) {
			best.Center = c
			bestKm = km
		}
	}
	return best
}

func (e *Engine) selectByGeodesic(ctx context.Context, cep string, items []Item) (selection, bool) {
	loc, err := e.geo.Locate(ctx, cep)
	if err != nil || !loc.HasCoords {
		if err != nil {
			log.Printf("[WARN] geocodificação falhou para %s: %v", cep, err)
		}
		return selection{}, false
	}

	type ranked struct {
		c  Center
		km int
	}
	rankedCenters := make([]ranked, 0, len(e.centers))
	for _, c := range e.centers {
		km := haversineKm(loc.Lat, loc.Lon, c.Lat, c.Lon)
		rankedCenters = append(rankedCenters, ranked{c, int(math.Round(km * e.opts.RoadFactor))})
	}
	sort.Slice(rankedCenters, func(i, j int) bool { return rankedCenters[i].km < rankedCenters[j].km })

	for _, rc := range rankedCenters {
		if e.hasAllInStock(ctx, rc.c, items) {
			return selection{Center: rc.c, GeoKm: rc.km, StockConfirmed: true}, true
		}
	}
	// Stock is advisory: quote from the nearest center anyway.
	nearest := rankedCenters[0]
	return selection{Center: nearest.c, GeoKm: nearest.km, StockConfirmed: false}, true
}

// hasAllInStock checks every coded line item against the stock
// provider. Lookup errors count as in stock so a flaky provider never
// blocks a quote.
func (e *Engine) hasAllInStock(ctx context.Context, c Center, items []Item) bool {
	if e.stock == nil {
		return true
	}
	for _, it := range items {
		if it.Codigo == "" || it.Codigo == "Item" {
			continue
		}
		ok, err := e.stock.InStock(ctx, c.Code, it.Codigo)
		if err != nil {
			log.Printf("[WARN] consulta de estoque %s/%s falhou: %v", c.Code, it.Codigo, err)
			continue
		}
		if !ok {
			return false
		}
	}
	return true
}

const earthRadiusKm = 6371.0

// haversineKm returns the great-circle distance between two points.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rad := func(d float64) float64 { return d * math.Pi / 180 }
	dlat := rad(lat2 - lat1)
	dlon := rad(lon2 - lon1)
	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dlon/2)*math.Sin(dlon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
