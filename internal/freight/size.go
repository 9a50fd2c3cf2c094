package freight

// DefaultBillableSize is used when neither the catalog nor the item's
// own dimensions yield a usable size, so a quote always prices above
// zero.
const DefaultBillableSize = 2.0

// BillableSize determines the linear meters an item occupies in the
// truck: catalog entry by product code first, then the item's largest
// dimension, then the fixed default. source is "catalogo", "dimensao"
// or "padrao".
func BillableSize(it Item, catalog map[string]float64) (size float64, source string) {
	if s, ok := catalog[it.Codigo]; ok && s > 0 {
		return s, "catalogo"
	}
	if m := it.MaxDimension(); m > 0 {
		return m, "dimensao"
	}
	return DefaultBillableSize, "padrao"
}
