package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds everything loaded from the environment at startup. All
// keys have working defaults; a bare process serves quotes with the
// built-in tables.
type Config struct {
	Port        string
	TokenSecret string
	DatabaseURL string
	ViaCEPBase  string

	ProductsCSV  string
	ConstantsCSV string

	DefaultValorKm   float64
	DefaultTruckSize float64

	Geodesic     bool
	EmptyMode    string // "off", "default" (fixed fee) or "estimate"
	EmptyFee     float64
	MinOccupancy float64
	StrictItems  bool

	PrazoMin int
	PrazoMax int
}

func Load() Config {
	return Config{
		Port:             envOr("PORT", "8000"),
		TokenSecret:      envOr("TOKEN_SECRETO", "teste123"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		ViaCEPBase:       envOr("VIACEP_BASE", "https://viacep.com.br"),
		ProductsCSV:      envOr("TABELA_PRODUTOS", "tabela_produtos.csv"),
		ConstantsCSV:     envOr("TABELA_CONSTANTES", "tabela_constantes.csv"),
		DefaultValorKm:   envFloat("DEFAULT_VALOR_KM", 7.0),
		DefaultTruckSize: envFloat("DEFAULT_TAM_CAMINHAO", 8.5),
		Geodesic:         envBool("GEODESIC", false),
		EmptyMode:        envOr("EMPTY_PRODS_MODE", "off"),
		EmptyFee:         envFloat("EMPTY_PRODS_FEE", 150.0),
		MinOccupancy:     envFloat("MIN_OCCUPANCY", 0.25),
		StrictItems:      envBool("STRICT_ITEMS", false),
		PrazoMin:         envInt("PRAZO_MIN", 4),
		PrazoMax:         envInt("PRAZO_MAX", 7),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envFloat(key string, def float64) float64 {
	v := strings.ReplaceAll(os.Getenv(key), ",", ".")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return def
	}
	return f
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "sim":
		return true
	case "0", "false", "no", "nao", "não":
		return false
	default:
		return def
	}
}
