package freight

import (
	"context"

	"github.com/shopspring/decimal"
)

// Geocoder resolves a postal code to a municipality, UF and, when
// available, coordinates. Implementations must degrade internally (a
// state-capital centroid is an acceptable coordinate fallback).
type Geocoder interface {
	Locate(ctx context.Context, cep string) (Location, error)
}

// Location is a geocoded destination.
type Location struct {
	Municipio string
	UF        string
	Lat       float64
	Lon       float64
	HasCoords bool
}

// StockChecker answers whether a distribution center has a product in
// stock. Failures are advisory and never block a quote.
type StockChecker interface {
	InStock(ctx context.Context, centerCode, productCode string) (bool, error)
}

// EmptyProdsMode selects the response policy for a request carrying a
// destination but no product list.
type EmptyProdsMode int

const (
	// EmptyProdsFixed answers with the configured fixed fee.
	EmptyProdsFixed EmptyProdsMode = iota
	// EmptyProdsEstimate prices a minimum-occupancy fraction of the
	// truck over the resolved distance.
	EmptyProdsEstimate
)

// Options are the tunables that parameterize the engine. Zero values
// are replaced by the historical defaults in NewEngine.
type Options struct {
	ValorKm      float64
	TruckSize    float64
	Geodesic     bool
	RoadFactor   float64
	DefaultKm    int
	EmptyMode    EmptyProdsMode
	EmptyFee     float64
	MinOccupancy float64
	PrazoMin     int
	PrazoMax     int
}

// Engine is the consolidated distance-resolution and fee-computation
// core. All tables are fixed at construction; Quote is safe for
// concurrent use.
type Engine struct {
	centers []Center
	rules   []Rule
	catalog map[string]float64
	opts    Options
	geo     Geocoder
	stock   StockChecker
}

// NewEngine builds an engine over the given tables. centers must be
// non-empty; the first entry is the primary (terminal-fallback) origin.
// Range tables and rules are overlap-validated on construction.
func NewEngine(centers []Center, rules []Rule, catalog map[string]float64, opts Options, geo Geocoder, stock StockChecker) *Engine {
	if len(centers) == 0 {
		centers = DefaultCenters()
	}
	if catalog == nil {
		catalog = map[string]float64{}
	}
	if opts.ValorKm <= 0 {
		opts.ValorKm = 7.0
	}
	if opts.TruckSize <= 0 {
		opts.TruckSize = 8.5
	}
	if opts.RoadFactor <= 0 {
		opts.RoadFactor = 1.15
	}
	if opts.DefaultKm <= 0 {
		opts.DefaultKm = DefaultKm
	}
	if opts.EmptyFee <= 0 {
		opts.EmptyFee = 150.0
	}
	if opts.MinOccupancy <= 0 {
		opts.MinOccupancy = 0.25
	}
	if opts.PrazoMin <= 0 {
		opts.PrazoMin = 4
	}
	if opts.PrazoMax <= 0 {
		opts.PrazoMax = 7
	}
	for _, c := range centers {
		ValidateRanges(c.Code, c.Ranges)
	}
	ValidateRuleRanges(rules)
	return &Engine{centers: centers, rules: rules, catalog: catalog, opts: opts, geo: geo, stock: stock}
}

// Request carries one quote computation's inputs. Zero-valued override
// fields mean "use the configured default".
type Request struct {
	CEP       string
	Items     []Item
	ValorKm   float64
	TruckSize float64
	ForcedKm  int
	OriginCEP string
}

// QuoteItem is the per-item breakdown of a quote.
type QuoteItem struct {
	Codigo     string
	Qty        int
	SizeM      float64
	SizeSource string
	Unit       decimal.Decimal
	Total      decimal.Decimal
}

// Quote is a computed freight quote. Source tags which fallback tier
// produced the distance.
type Quote struct {
	CEP            string
	UF             string
	Center         Center
	Km             int
	Source         string
	ValorKm        float64
	TruckSize      float64
	StockConfirmed bool
	Estimated      bool
	Items          []QuoteItem
	Total          decimal.Decimal
	PrazoMin       int
	PrazoMax       int
}

// Quote resolves origin and distance for the destination and prices
// every item. It never fails: unresolvable destinations fall through
// the distance chain to the default tier and an empty item list follows
// the configured no-products policy.
func (e *Engine) Quote(ctx context.Context, req Request) Quote {
	cep := NormalizeCEP(req.CEP)
	rule := MatchRule(e.rules, cep)

	sel := e.selectOrigin(ctx, cep, req.Items, req.OriginCEP)
	res := e.resolveDistance(sel.Center, cep, req.ForcedKm, sel.GeoKm, rule)

	valorKm := e.opts.ValorKm
	truck := e.opts.TruckSize
	if rule != nil {
		if rule.ValorKm != nil && *rule.ValorKm > 0 {
			valorKm = *rule.ValorKm
		}
		if rule.TruckSize != nil && *rule.TruckSize > 0 {
			truck = *rule.TruckSize
		}
	}
	if req.ValorKm > 0 {
		valorKm = req.ValorKm
	}
	if req.TruckSize > 0 {
		truck = req.TruckSize
	}

	q := Quote{
		CEP:            cep,
		UF:             RegionFor(cep),
		Center:         sel.Center,
		Km:             res.Km,
		Source:         res.Source,
		ValorKm:        valorKm,
		TruckSize:      truck,
		StockConfirmed: sel.StockConfirmed,
		PrazoMin:       e.opts.PrazoMin,
		PrazoMax:       e.opts.PrazoMax,
	}

	if len(req.Items) == 0 {
		q.Estimated = true
		q.Total = e.emptyProdsTotal(res.Km, valorKm)
		q.Total = ApplyAdjustments(q.Total, rule)
		return q
	}

	total := decimal.Zero
	for _, it := range req.Items {
		size, src := BillableSize(it, e.catalog)
		unit := Fee(size, res.Km, valorKm, truck)
		line := unit.Mul(decimal.NewFromInt(int64(it.Qty)))
		total = total.Add(line)
		q.Items = append(q.Items, QuoteItem{
			Codigo:     it.Codigo,
			Qty:        it.Qty,
			SizeM:      size,
			SizeSource: src,
			Unit:       unit,
			Total:      line,
		})
	}
	q.Total = ApplyAdjustments(total.Round(2), rule)
	return q
}

// emptyProdsTotal prices a quote with no product list, per the
// configured policy.
func (e *Engine) emptyProdsTotal(km int, valorKm float64) decimal.Decimal {
	if e.opts.EmptyMode == EmptyProdsEstimate {
		return decimal.NewFromFloat(valorKm).
			Mul(decimal.NewFromInt(int64(km))).
			Mul(decimal.NewFromFloat(e.opts.MinOccupancy)).
			Round(2)
	}
	return decimal.NewFromFloat(e.opts.EmptyFee).Round(2)
}

// Consult resolves origin and distance only, for the lookup endpoint.
func (e *Engine) Consult(ctx context.Context, cep string) Quote {
	return e.Quote(ctx, Request{CEP: cep})
}

// Centers exposes the configured distribution centers (for status
// endpoints).
func (e *Engine) Centers() []Center { return e.centers }

// CatalogSize reports how many products the catalog resolves.
func (e *Engine) CatalogSize() int { return len(e.catalog) }

// Defaults reports the configured pricing constants.
func (e *Engine) Defaults() (valorKm, truckSize float64) {
	return e.opts.ValorKm, e.opts.TruckSize
}
