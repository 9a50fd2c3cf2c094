package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConstants(t *testing.T) {
	path := writeTemp(t, "constantes.csv", "chave,valor\nVALOR_KM,\"9,5\"\nTAMANHO_CAMINHAO,12\n")
	got, err := LoadConstants(path, Constants{ValorKm: 7.0, TruckSize: 8.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ValorKm != 9.5 || got.TruckSize != 12 {
		t.Fatalf("unexpected constants: %+v", got)
	}
}

func TestLoadConstants_OutOfBoundsIgnored(t *testing.T) {
	path := writeTemp(t, "constantes.csv", "chave,valor\nVALOR_KM,999\nTAMANHO_CAMINHAO,1\n")
	got, err := LoadConstants(path, Constants{ValorKm: 7.0, TruckSize: 8.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ValorKm != 7.0 || got.TruckSize != 8.5 {
		t.Fatalf("implausible values must keep defaults: %+v", got)
	}
}

func TestLoadConstants_MissingFileKeepsDefaults(t *testing.T) {
	defaults := Constants{ValorKm: 7.0, TruckSize: 8.5}
	got, err := LoadConstants(filepath.Join(t.TempDir(), "nao_existe.csv"), defaults)
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if got != defaults {
		t.Fatalf("defaults must survive a failed load: %+v", got)
	}
}

func TestLoadProducts_FamilyClassifier(t *testing.T) {
	csv := "nome,dim1,dim2\n" +
		"FOSSA SEPTICA 3000L,1.9,2.5\n" +
		"TANQUE HORIZONTAL 5000L,1.8,3.2\n" +
		"CAIXA DAGUA 1000L,1.1,1.4\n" +
		"SEM DIMENSAO,0,0\n"
	path := writeTemp(t, "produtos.csv", csv)
	got, err := LoadProducts(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 products, got %d: %v", len(got), got)
	}
	if got["FOSSA SEPTICA 3000L"] != 1.9 {
		t.Fatalf("fossa must bill by dim1: %v", got["FOSSA SEPTICA 3000L"])
	}
	if got["TANQUE HORIZONTAL 5000L"] != 3.2 {
		t.Fatalf("horizontal must bill by dim2: %v", got["TANQUE HORIZONTAL 5000L"])
	}
	if got["CAIXA DAGUA 1000L"] != 1.4 {
		t.Fatalf("default family must bill by larger dimension: %v", got["CAIXA DAGUA 1000L"])
	}
}

func TestLoadProducts_NormalizesNames(t *testing.T) {
	path := writeTemp(t, "produtos.csv", "nome,dim1,dim2\n\"  FOSSA   VERTICAL\n2000L \",2.1,1.0\n")
	got, err := LoadProducts(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["FOSSA VERTICAL 2000L"] != 2.1 {
		t.Fatalf("name not normalized: %v", got)
	}
}
