package freight

import "github.com/shopspring/decimal"

// Fee computes the per-unit freight value for one item:
//
//	fee = valorKm × km × (size / truckSize)
//
// rounded to 2 decimal places. The occupancy ratio size/truckSize is
// the fraction of the truck one unit consumes. A non-positive size or
// truck length yields exactly zero.
func Fee(sizeM float64, km int, valorKm, truckSize float64) decimal.Decimal {
	if sizeM <= 0 || truckSize <= 0 {
		return decimal.Zero
	}
	occupancy := decimal.NewFromFloat(sizeM).Div(decimal.NewFromFloat(truckSize))
	v := decimal.NewFromFloat(valorKm).Mul(decimal.NewFromInt(int64(km))).Mul(occupancy)
	return v.Round(2)
}

// ApplyAdjustments applies a regional rule's post-hoc adjustments to an
// order total, in fixed order: multiplicative factor, percentage
// surcharge, flat toll, minimum-fee floor. Absent fields are no-ops.
func ApplyAdjustments(total decimal.Decimal, r *Rule) decimal.Decimal {
	if r == nil {
		return total
	}
	if r.Factor != nil {
		total = total.Mul(decimal.NewFromFloat(*r.Factor))
	}
	if r.SurchargePct != nil {
		pct := decimal.NewFromFloat(*r.SurchargePct).Div(decimal.NewFromInt(100))
		total = total.Add(total.Mul(pct))
	}
	if r.Toll != nil {
		total = total.Add(decimal.NewFromFloat(*r.Toll))
	}
	if r.MinFee != nil {
		if floor := decimal.NewFromFloat(*r.MinFee); total.LessThan(floor) {
			total = floor
		}
	}
	return total.Round(2)
}
