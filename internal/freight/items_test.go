package freight

import "testing"

func TestParseItems_SingleBlock(t *testing.T) {
	items, stats := ParseItems("200;50;50;1.0;1;20;COD1;100")
	if stats.Blocks != 1 || stats.Dropped != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	it := items[0]
	// 200 cm -> 2.0 m; 50 cm -> 0.5 m
	if it.Comp != 2.0 || it.Larg != 0.5 || it.Alt != 0.5 {
		t.Fatalf("unexpected dimensions: %+v", it)
	}
	if it.Qty != 1 || it.Codigo != "COD1" || it.Peso != 20 || it.Valor != 100 {
		t.Fatalf("unexpected fields: %+v", it)
	}
}

func TestParseItems_UnitHeuristicBoundary(t *testing.T) {
	// 20 stays in meters, 20.01 is centimeters.
	items, _ := ParseItems("20;20,01;0;0;1;0;X;0")
	if len(items) != 1 {
		t.Fatalf("expected 1 item")
	}
	if items[0].Comp != 20.0 {
		t.Fatalf("value of exactly 20 must stay in meters, got %v", items[0].Comp)
	}
	if diff := items[0].Larg - 0.2001; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("20,01 must convert to 0.2001 m, got %v", items[0].Larg)
	}
}

func TestParseItems_ShortBlockDropped(t *testing.T) {
	items, stats := ParseItems("1;2;3;4;5/200;50;50;1.0;2;20;COD2;100")
	if stats.Blocks != 2 || stats.Dropped != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if len(items) != 1 || items[0].Codigo != "COD2" || items[0].Qty != 2 {
		t.Fatalf("surviving item wrong: %+v", items)
	}
}

func TestParseItems_PipeDelimiterAndDefaults(t *testing.T) {
	items, _ := ParseItems("1;1;1;0;0;0;;0|2;2;2;0;abc;0;COD;0")
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Codigo != "Item" {
		t.Fatalf("empty code should default to placeholder, got %q", items[0].Codigo)
	}
	// Zero and unparsable quantities floor to 1.
	if items[0].Qty != 1 || items[1].Qty != 1 {
		t.Fatalf("quantities should floor to 1: %d, %d", items[0].Qty, items[1].Qty)
	}
}

func TestParseItems_Empty(t *testing.T) {
	items, stats := ParseItems("")
	if len(items) != 0 || stats.Blocks != 0 {
		t.Fatalf("empty input should yield no blocks: %+v", stats)
	}
}

func TestMaxDimension(t *testing.T) {
	it := Item{Comp: 1.2, Larg: 3.4, Alt: 0.5}
	if m := it.MaxDimension(); m != 3.4 {
		t.Fatalf("expected 3.4, got %v", m)
	}
}
