// Package geo resolves postal codes to municipality, UF and
// coordinates against a ViaCEP-shaped lookup service, degrading to the
// destination state's capital centroid when the service cannot help.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"freteapi/internal/freight"
)

// Client implements freight.Geocoder over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a geocoding client. httpClient should carry a short
// timeout; external lookups must never block a quote for long.
func New(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: baseURL, http: httpClient}
}

type viaCEPResponse struct {
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       bool   `json:"erro"`
}

// Locate queries the lookup service for the CEP. On any failure, or
// when the service does not know the code, the UF is derived from the
// local postal-range table. Coordinates always come from the capital
// centroid of the resolved UF, so HasCoords holds whenever the UF could
// be determined at all.
func (c *Client) Locate(ctx context.Context, cep string) (freight.Location, error) {
	loc := freight.Location{}
	cep = freight.NormalizeCEP(cep)

	if body, err := c.fetch(ctx, cep); err == nil {
		var res viaCEPResponse
		if jerr := json.Unmarshal(body, &res); jerr == nil && !res.Erro && res.UF != "" {
			loc.Municipio = res.Localidade
			loc.UF = res.UF
		}
	}
	if loc.UF == "" {
		loc.UF = freight.RegionFor(cep)
	}
	if ctr, ok := capitals[loc.UF]; ok {
		loc.Lat = ctr.lat
		loc.Lon = ctr.lon
		loc.HasCoords = true
	}
	return loc, nil
}

func (c *Client) fetch(ctx context.Context, cep string) ([]byte, error) {
	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, cep)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("cep lookup %d: %s", resp.StatusCode, string(b))
	}
	return io.ReadAll(io.LimitReader(resp.Body, 64<<10))
}

// capitals holds one representative coordinate per UF (the state
// capital), the terminal coordinate fallback for geodesic selection.
var capitals = map[string]struct{ lat, lon float64 }{
	"AC": {-9.9747, -67.8100},
	"AL": {-9.6658, -35.7353},
	"AM": {-3.1190, -60.0217},
	"AP": {0.0349, -51.0694},
	"BA": {-12.9718, -38.5011},
	"CE": {-3.7172, -38.5433},
	"DF": {-15.7939, -47.8828},
	"ES": {-20.3155, -40.3128},
	"GO": {-16.6869, -49.2648},
	"MA": {-2.5297, -44.3028},
	"MG": {-19.9167, -43.9345},
	"MS": {-20.4697, -54.6201},
	"MT": {-15.6014, -56.0979},
	"PA": {-1.4558, -48.4902},
	"PB": {-7.1195, -34.8450},
	"PE": {-8.0476, -34.8770},
	"PI": {-5.0892, -42.8019},
	"PR": {-25.4284, -49.2733},
	"RJ": {-22.9068, -43.1729},
	"RN": {-5.7945, -35.2110},
	"RO": {-8.7612, -63.9004},
	"RR": {2.8235, -60.6758},
	"RS": {-30.0346, -51.2177},
	"SC": {-27.5954, -48.5480},
	"SE": {-10.9472, -37.0731},
	"SP": {-23.5505, -46.6333},
	"TO": {-10.1844, -48.3336},
}
