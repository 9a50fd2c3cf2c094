package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"freteapi/internal/freight"
)

const apiVersion = "5.0"

// quoteTimeout bounds one quote computation, including any external
// geocoding and stock calls.
const quoteTimeout = 5 * time.Second

// EmptyProds selects what a request without a product list gets.
type EmptyProds string

const (
	// EmptyProdsOff rejects the request with a client error.
	EmptyProdsOff EmptyProds = "off"
	// EmptyProdsAllowed quotes via the engine's no-products policy.
	EmptyProdsAllowed EmptyProds = "allowed"
)

// Options are the HTTP-surface policies, distinct from the engine's
// pricing options.
type Options struct {
	TokenSecret string
	EmptyProds  EmptyProds
	StrictItems bool
}

type Server struct {
	engine *freight.Engine
	opts   Options
}

// New builds the router. The engine must be non-nil.
func New(engine *freight.Engine, opts Options) http.Handler {
	if opts.EmptyProds == "" {
		opts.EmptyProds = EmptyProdsOff
	}
	s := &Server{engine: engine, opts: opts}
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(middleware.Logger)
	r.Get("/health", s.handleHealth)
	r.Get("/consultar", s.handleConsultar)
	r.Get("/frete", s.handleFrete)
	r.Post("/frete", s.handleFrete)
	r.Get("/", s.handleIndex)
	r.Post("/", s.handleIndex)
	return r
}

// handleIndex answers a status document, except when the storefront
// sends quote parameters to the root path, which some integrations do.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	p := ReadParams(r)
	if p.Get("cep_destino", "cep", "zip") != "" {
		s.quote(w, r, p)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":               "online",
		"api":                  "Bakof Frete v" + apiVersion,
		"centros_distribuicao": len(s.engine.Centers()),
		"endpoints": map[string]string{
			"/":          "Calcular frete (Tray)",
			"/frete":     "Calcular frete",
			"/health":    "Status da API",
			"/consultar": "Consultar KM para um CEP",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	valorKm, truck := s.engine.Defaults()
	centros := make([]string, 0, len(s.engine.Centers()))
	for _, c := range s.engine.Centers() {
		centros = append(centros, c.Code+" - "+c.Name)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":                   true,
		"versao":               apiVersion,
		"centros":              centros,
		"produtos_cadastrados": s.engine.CatalogSize(),
		"valor_km":             valorKm,
		"tamanho_caminhao":     truck,
	})
}

// handleConsultar reports the resolved distance for a CEP without
// pricing anything.
func (s *Server) handleConsultar(w http.ResponseWriter, r *http.Request) {
	cep := strings.TrimSpace(r.URL.Query().Get("cep"))
	if cep == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"erro": "Informe o parâmetro 'cep'"})
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), quoteTimeout)
	defer cancel()
	q := s.engine.Consult(ctx, cep)
	writeJSON(w, http.StatusOK, map[string]any{
		"cep_destino":         q.CEP,
		"uf":                  q.UF,
		"centro_distribuicao": q.Center.Code + " - " + q.Center.Name,
		"sigla_cd":            q.Center.Code,
		"nome_cd":             q.Center.Name,
		"cep_origem":          q.Center.CEP,
		"distancia_km":        q.Km,
		"fonte":               q.Source,
	})
}

func (s *Server) handleFrete(w http.ResponseWriter, r *http.Request) {
	s.quote(w, r, ReadParams(r))
}

// quote is the webhook entrypoint. Client errors are reserved for
// missing, unauthenticated or unparseable requests; every identifiable
// destination gets a renderable document, estimated if need be.
func (s *Server) quote(w http.ResponseWriter, r *http.Request, p *Params) {
	if token := p.Get("token"); token != "" && s.opts.TokenSecret != "" {
		if subtle.ConstantTimeCompare([]byte(token), []byte(s.opts.TokenSecret)) != 1 {
			http.Error(w, "Token inválido", http.StatusForbidden)
			return
		}
	}

	cep := p.Get("cep_destino", "cep", "zip")
	if cep == "" {
		http.Error(w, "Parâmetro 'cep_destino' obrigatório", http.StatusBadRequest)
		return
	}
	prods := p.Get("prods", "produtos", "products")
	if prods == "" && s.opts.EmptyProds == EmptyProdsOff {
		http.Error(w, "Parâmetro 'prods' obrigatório", http.StatusBadRequest)
		return
	}

	items, stats := freight.ParseItems(prods)
	var note string
	if stats.Blocks > 0 && len(items) == 0 {
		if s.opts.StrictItems {
			http.Error(w, "Nenhum produto válido", http.StatusBadRequest)
			return
		}
		note = "nenhum produto válido, valor estimado"
	} else if stats.Dropped > 0 {
		note = fmt.Sprintf("%d produto(s) inválido(s) ignorado(s)", stats.Dropped)
	}

	req := freight.Request{
		CEP:       cep,
		Items:     items,
		ValorKm:   p.Float("valor_km"),
		TruckSize: p.Float("tam_caminhao"),
		ForcedKm:  p.Int("km"),
		OriginCEP: p.Get("cep_origem"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), quoteTimeout)
	defer cancel()
	q := s.engine.Quote(ctx, req)

	log.Printf("[QUOTE] cep=%s cd=%s km=%d fonte=%s itens=%d total=%s",
		q.CEP, q.Center.Code, q.Km, q.Source, len(q.Items), q.Total.StringFixed(2))
	writeXML(w, http.StatusOK, renderQuote(q, note))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// requestIDMiddleware ensures X-Request-ID is set on the response.
// If provided in the request header, it is propagated; otherwise a UUID
// is generated.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := strings.TrimSpace(r.Header.Get("X-Request-ID"))
		if rid == "" {
			rid = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", rid)
		next.ServeHTTP(w, r)
	})
}
