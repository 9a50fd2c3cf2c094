package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLocate_Resolved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ws/90000000/json/" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"localidade":"Porto Alegre","uf":"RS"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	loc, err := c.Locate(context.Background(), "90000-000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.Municipio != "Porto Alegre" || loc.UF != "RS" {
		t.Fatalf("unexpected location: %+v", loc)
	}
	if !loc.HasCoords {
		t.Fatalf("capital centroid coordinates expected")
	}
}

func TestLocate_UnknownCEPFallsBackToRegionTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"erro": true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	loc, err := c.Locate(context.Background(), "63660000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.UF != "CE" || !loc.HasCoords {
		t.Fatalf("expected CE with capital coords, got %+v", loc)
	}
	if loc.Municipio != "" {
		t.Fatalf("municipality should be empty on fallback, got %q", loc.Municipio)
	}
}

func TestLocate_ServiceDownDegrades(t *testing.T) {
	c := New("http://127.0.0.1:1", &http.Client{Timeout: 200 * time.Millisecond})
	loc, err := c.Locate(context.Background(), "90000000")
	if err != nil {
		t.Fatalf("lookup failure must not propagate: %v", err)
	}
	if loc.UF != "RS" || !loc.HasCoords {
		t.Fatalf("expected local fallback for RS, got %+v", loc)
	}
}

func TestLocate_NoRegionNoCoords(t *testing.T) {
	c := New("http://127.0.0.1:1", &http.Client{Timeout: 200 * time.Millisecond})
	loc, err := c.Locate(context.Background(), "00000001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.HasCoords || loc.UF != "" {
		t.Fatalf("unresolvable CEP must carry no coordinates: %+v", loc)
	}
}
