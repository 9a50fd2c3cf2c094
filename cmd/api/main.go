package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"freteapi/internal/catalog"
	"freteapi/internal/config"
	"freteapi/internal/db"
	"freteapi/internal/freight"
	"freteapi/internal/geo"
	"freteapi/internal/server"
	"freteapi/internal/stock"
)

func main() {
	cfg := config.Load()

	// Startup-loaded tables. Loader failures downgrade to the built-in
	// defaults, never abort the process.
	consts := catalog.Constants{ValorKm: cfg.DefaultValorKm, TruckSize: cfg.DefaultTruckSize}
	if loaded, err := catalog.LoadConstants(cfg.ConstantsCSV, consts); err != nil {
		log.Printf("[INFO] constantes padrão em uso (%v)", err)
	} else {
		consts = loaded
	}
	products, err := catalog.LoadProducts(cfg.ProductsCSV)
	if err != nil {
		log.Printf("[INFO] catálogo vazio em uso (%v)", err)
		products = map[string]float64{}
	}

	// Optional stock database. Absent or unreachable means every item
	// is assumed in stock.
	var checker freight.StockChecker = stock.Assume{}
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		cancel()
		if err != nil {
			log.Printf("[WARN] banco de estoque indisponível, assumindo estoque: %v", err)
		} else {
			defer pool.Close()
			checker = stock.NewPG(pool)
		}
	}

	geocoder := geo.New(cfg.ViaCEPBase, &http.Client{Timeout: 4 * time.Second})

	engine := freight.NewEngine(
		freight.DefaultCenters(),
		nil,
		products,
		freight.Options{
			ValorKm:      consts.ValorKm,
			TruckSize:    consts.TruckSize,
			Geodesic:     cfg.Geodesic,
			EmptyMode:    emptyMode(cfg.EmptyMode),
			EmptyFee:     cfg.EmptyFee,
			MinOccupancy: cfg.MinOccupancy,
			PrazoMin:     cfg.PrazoMin,
			PrazoMax:     cfg.PrazoMax,
		},
		geocoder,
		checker,
	)

	handler := server.New(engine, server.Options{
		TokenSecret: cfg.TokenSecret,
		EmptyProds:  emptyProds(cfg.EmptyMode),
		StrictItems: cfg.StrictItems,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("api de frete ouvindo em :%s (produtos=%d, valor_km=%.2f, caminhao=%.1fm, geodesico=%v)",
		cfg.Port, len(products), consts.ValorKm, consts.TruckSize, cfg.Geodesic)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Println("server error:", err)
		os.Exit(1)
	}
}

// emptyMode maps the EMPTY_PRODS_MODE config value onto the engine's
// no-products pricing policy.
func emptyMode(mode string) freight.EmptyProdsMode {
	if mode == "estimate" {
		return freight.EmptyProdsEstimate
	}
	return freight.EmptyProdsFixed
}

// emptyProds maps the same config value onto the HTTP policy: any mode
// other than "off" accepts requests without a product list.
func emptyProds(mode string) server.EmptyProds {
	if mode == "off" || mode == "" {
		return server.EmptyProdsOff
	}
	return server.EmptyProdsAllowed
}
