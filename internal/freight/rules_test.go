package freight

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)
	fn()
	return buf.String()
}

func TestValidateRangesDeadContainedRange(t *testing.T) {
	out := captureLog(t, func() {
		ValidateRanges("CD-TESTE", []Range{
			{Start: 90000000, End: 99999999, Km: 500, Label: "estado"},
			{Start: 90000000, End: 90999999, Km: 10, Label: "capital"},
		})
	})
	if !strings.Contains(out, "faixa morta") || !strings.Contains(out, "capital") {
		t.Fatalf("expected dead range warning, got: %q", out)
	}
}

func TestValidateRangesNarrowBeforeBroadSilent(t *testing.T) {
	out := captureLog(t, func() {
		ValidateRanges("CD-TESTE", []Range{
			{Start: 90000000, End: 90999999, Km: 10, Label: "capital"},
			{Start: 90000000, End: 99999999, Km: 500, Label: "estado"},
		})
	})
	if out != "" {
		t.Fatalf("narrow-before-broad layering should not warn, got: %q", out)
	}
}

func TestValidateRangesEqualWidthOverlapWarns(t *testing.T) {
	out := captureLog(t, func() {
		ValidateRanges("CD-TESTE", []Range{
			{Start: 90000000, End: 90999999, Km: 10, Label: "norte"},
			{Start: 90500000, End: 91499999, Km: 80, Label: "sul"},
		})
	})
	if !strings.Contains(out, "faixas sobrepostas") {
		t.Fatalf("expected overlap warning, got: %q", out)
	}
}

func TestValidateRangesSameKmOverlapSilent(t *testing.T) {
	out := captureLog(t, func() {
		ValidateRanges("CD-TESTE", []Range{
			{Start: 90000000, End: 99999999, Km: 500, Label: "estado"},
			{Start: 90000000, End: 90999999, Km: 500, Label: "capital"},
		})
	})
	if out != "" {
		t.Fatalf("overlap with matching distance should not warn, got: %q", out)
	}
}
