package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// maxBodyBytes bounds how much of a request body is read for parameter
// extraction.
const maxBodyBytes = 1 << 20

// Params gives uniform access to request parameters regardless of how
// the storefront sent them: query string, form body or JSON body, in
// that precedence order. Each accessor takes alias keys because
// storefront integrations disagree on parameter names.
type Params struct {
	query url.Values
	form  url.Values
	body  map[string]any
}

// ReadParams extracts parameters from the request. Malformed bodies are
// ignored rather than rejected; the query string alone may carry a
// complete request.
func ReadParams(r *http.Request) *Params {
	p := &Params{query: r.URL.Query()}
	if r.Method != http.MethodPost && r.Method != http.MethodPut {
		return p
	}
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err == nil {
			var m map[string]any
			if json.Unmarshal(raw, &m) == nil {
				p.body = m
			}
		}
		return p
	}
	if err := r.ParseForm(); err == nil {
		p.form = r.PostForm
	}
	return p
}

// Get returns the first non-empty value for any of the alias keys,
// scanning query string, then form, then JSON body. JSON keys support
// dot-path navigation into nested objects.
func (p *Params) Get(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(p.query.Get(k)); v != "" {
			return v
		}
	}
	for _, k := range keys {
		if p.form != nil {
			if v := strings.TrimSpace(p.form.Get(k)); v != "" {
				return v
			}
		}
	}
	for _, k := range keys {
		if v := strings.TrimSpace(bodyString(p.body, k)); v != "" {
			return v
		}
	}
	return ""
}

// Float parses a numeric parameter accepting comma decimals; 0 when
// absent or unparsable.
func (p *Params) Float(keys ...string) float64 {
	s := strings.ReplaceAll(p.Get(keys...), ",", ".")
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// Int parses an integer parameter; 0 when absent or unparsable.
func (p *Params) Int(keys ...string) int {
	f := p.Float(keys...)
	return int(f)
}

// bodyString resolves a dot-separated path inside the JSON body and
// renders scalars as strings.
func bodyString(m map[string]any, path string) string {
	if m == nil {
		return ""
	}
	var cur any = m
	for _, part := range strings.Split(path, ".") {
		mm, ok := cur.(map[string]any)
		if !ok {
			return ""
		}
		cur, ok = mm[part]
		if !ok {
			return ""
		}
	}
	switch v := cur.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}
