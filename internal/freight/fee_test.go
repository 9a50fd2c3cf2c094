package freight

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFee_Formula(t *testing.T) {
	// 7.0 × 500 × (2.0 / 8.5) = 823.5294... -> 823.53
	got := Fee(2.0, 500, 7.0, 8.5)
	if got.StringFixed(2) != "823.53" {
		t.Fatalf("unexpected fee: %s", got)
	}
}

func TestFee_Linearity(t *testing.T) {
	base := Fee(2.0, 100, 10.0, 10.0)
	if doubledKm := Fee(2.0, 200, 10.0, 10.0); !doubledKm.Equal(base.Mul(decimal.NewFromInt(2))) {
		t.Fatalf("fee not linear in distance: %s vs %s", doubledKm, base)
	}
	if doubledSize := Fee(4.0, 100, 10.0, 10.0); !doubledSize.Equal(base.Mul(decimal.NewFromInt(2))) {
		t.Fatalf("fee not linear in size: %s vs %s", doubledSize, base)
	}
	if doubledRate := Fee(2.0, 100, 20.0, 10.0); !doubledRate.Equal(base.Mul(decimal.NewFromInt(2))) {
		t.Fatalf("fee not linear in rate: %s vs %s", doubledRate, base)
	}
}

func TestFee_ZeroGuards(t *testing.T) {
	if !Fee(0, 500, 7.0, 8.5).IsZero() {
		t.Fatalf("size 0 must yield exactly 0")
	}
	if !Fee(-1, 500, 7.0, 8.5).IsZero() {
		t.Fatalf("negative size must yield exactly 0")
	}
	if !Fee(2.0, 500, 7.0, 0).IsZero() {
		t.Fatalf("truck 0 must yield exactly 0")
	}
}

func TestApplyAdjustments_Order(t *testing.T) {
	factor := 2.0
	pct := 10.0
	toll := 5.0
	rule := &Rule{Factor: &factor, SurchargePct: &pct, Toll: &toll}
	// 100 × 2 = 200; +10% = 220; +5 = 225
	got := ApplyAdjustments(decimal.NewFromInt(100), rule)
	if got.StringFixed(2) != "225.00" {
		t.Fatalf("unexpected adjusted total: %s", got)
	}
}

func TestApplyAdjustments_Floor(t *testing.T) {
	floor := 80.0
	rule := &Rule{MinFee: &floor}
	if got := ApplyAdjustments(decimal.NewFromInt(50), rule); got.StringFixed(2) != "80.00" {
		t.Fatalf("floor not applied: %s", got)
	}
	if got := ApplyAdjustments(decimal.NewFromInt(90), rule); got.StringFixed(2) != "90.00" {
		t.Fatalf("floor must not lower totals: %s", got)
	}
}

func TestApplyAdjustments_NilRule(t *testing.T) {
	in := decimal.NewFromFloat(123.45)
	if got := ApplyAdjustments(in, nil); !got.Equal(in) {
		t.Fatalf("nil rule must be a no-op: %s", got)
	}
}

func TestBillableSize(t *testing.T) {
	catalog := map[string]float64{"FOSSA 5000L": 2.4}
	if s, src := BillableSize(Item{Codigo: "FOSSA 5000L", Comp: 9.9}, catalog); s != 2.4 || src != "catalogo" {
		t.Fatalf("catalog hit expected: %v %s", s, src)
	}
	if s, src := BillableSize(Item{Codigo: "X", Comp: 1.0, Larg: 3.0}, catalog); s != 3.0 || src != "dimensao" {
		t.Fatalf("dimension fallback expected: %v %s", s, src)
	}
	if s, src := BillableSize(Item{Codigo: "X"}, catalog); s != DefaultBillableSize || src != "padrao" {
		t.Fatalf("default fallback expected: %v %s", s, src)
	}
}
