package freight

// Static tables for the default deployment: four distribution centers,
// their per-center CEP range tables, the UF range map and the UF-level
// distance estimates. Range lists are order-sensitive: the narrowest,
// most local ranges come first because matching is first-match, not
// best-match.

// Range maps an inclusive CEP interval to a road distance in km.
type Range struct {
	Start, End int
	Km         int
	Label      string
}

// Center is a configured shipping origin.
type Center struct {
	Name   string
	Code   string
	CEP    string
	UF     string
	Lat    float64
	Lon    float64
	Ranges []Range
}

// DefaultCenters returns the built-in distribution centers with their
// distance tables. Callers get fresh slices and may reorder or trim
// them without affecting later calls.
func DefaultCenters() []Center {
	return []Center{
		{
			Name: "Frederico Westphalen-RS", Code: "CD-RS", CEP: "98400000", UF: "RS",
			Lat: -27.3586, Lon: -53.3944,
			Ranges: []Range{
				{98400000, 98419999, 10, "Local"},
				{98300000, 98499999, 50, "Região"},
				{99700000, 99799999, 100, "Erechim"},
				{99000000, 99199999, 200, "Passo Fundo"},
				{95000000, 95999999, 300, "Caxias do Sul"},
				{97000000, 97999999, 300, "Santa Maria"},
				{93000000, 93999999, 400, "Novo Hamburgo"},
				{92000000, 92999999, 450, "Canoas"},
				{90000000, 91999999, 500, "Porto Alegre"},
				{96000000, 96999999, 600, "Pelotas"},
				{89800000, 89899999, 200, "Chapecó"},
				{89000000, 89299999, 500, "Blumenau/Joinville"},
				{88000000, 88099999, 600, "Florianópolis"},
				{85800000, 85899999, 300, "Cascavel"},
				{87000000, 87199999, 600, "Maringá"},
				{86000000, 86199999, 700, "Londrina"},
				{80000000, 82999999, 850, "Curitiba"},
				{1000000, 19999999, 1400, "São Paulo"},
				{20000000, 28999999, 1800, "RJ"},
				{29000000, 29999999, 1900, "ES"},
				{30000000, 39999999, 1700, "MG"},
				{40000000, 48999999, 2600, "BA"},
				{79000000, 79999999, 1600, "MS"},
				{78000000, 78999999, 2200, "MT"},
			},
		},
		{
			Name: "Campo Grande-MS", Code: "CD-MS", CEP: "79108630", UF: "MS",
			Lat: -20.4697, Lon: -54.6201,
			Ranges: []Range{
				{79100000, 79199999, 10, "Local"},
				{79000000, 79999999, 50, "MS"},
				{78000000, 78999999, 300, "Cuiabá-MT"},
				{76800000, 76999999, 400, "Rondônia"},
				{85800000, 85899999, 500, "Cascavel-PR"},
				{80000000, 82999999, 900, "Curitiba-PR"},
				{87000000, 87199999, 800, "Maringá-PR"},
				{1000000, 19999999, 1000, "São Paulo"},
				{30000000, 39999999, 1200, "MG"},
				{70000000, 72999999, 800, "Brasília"},
				{40000000, 48999999, 2000, "BA"},
				{90000000, 99999999, 1500, "RS"},
			},
		},
		{
			Name: "Tauá-CE", Code: "CD-CE", CEP: "63660000", UF: "CE",
			Lat: -6.0033, Lon: -40.2928,
			Ranges: []Range{
				{63660000, 63669999, 10, "Local"},
				{63600000, 63699999, 50, "Região"},
				{60000000, 63999999, 200, "Ceará"},
				{64000000, 64999999, 250, "Piauí"},
				{59000000, 59999999, 300, "RN"},
				{58000000, 58999999, 350, "PB"},
				{50000000, 56999999, 400, "PE"},
				{57000000, 57999999, 450, "AL"},
				{49000000, 49999999, 500, "SE"},
				{65000000, 65999999, 300, "MA"},
				{40000000, 48999999, 800, "BA"},
				{30000000, 39999999, 1500, "MG"},
				{1000000, 19999999, 2800, "SP"},
			},
		},
		{
			Name: "Montes Claros-MG", Code: "CD-MG", CEP: "39404627", UF: "MG",
			Lat: -16.7370, Lon: -43.8647,
			Ranges: []Range{
				{39400000, 39419999, 10, "Local"},
				{39000000, 39999999, 100, "Norte MG"},
				{30000000, 38999999, 300, "BH e região"},
				{40000000, 48999999, 400, "BA"},
				{29000000, 29999999, 500, "ES"},
				{70000000, 76999999, 600, "DF/GO"},
				{20000000, 28999999, 800, "RJ"},
				{1000000, 19999999, 900, "SP"},
				{79000000, 79999999, 1200, "MS"},
				{60000000, 63999999, 1400, "CE"},
				{90000000, 99999999, 2000, "RS"},
			},
		},
	}
}

// ufRanges maps CEP intervals to federative units. Order matters: AP,
// AC and RR are carved out of the broader PA/AM bands that precede them
// in the postal plan, so the broad bands must be scanned first to keep
// the historical resolution behavior.
var ufRanges = []ufRange{
	{"RS", 90000000, 99999999},
	{"SC", 88000000, 89999999},
	{"PR", 80000000, 87999999},
	{"SP", 1000000, 19999999},
	{"RJ", 20000000, 28999999},
	{"ES", 29000000, 29999999},
	{"MG", 30000000, 39999999},
	{"BA", 40000000, 48999999},
	{"SE", 49000000, 49999999},
	{"PE", 50000000, 56999999},
	{"AL", 57000000, 57999999},
	{"PB", 58000000, 58999999},
	{"RN", 59000000, 59999999},
	{"CE", 60000000, 63999999},
	{"PI", 64000000, 64999999},
	{"MA", 65000000, 65999999},
	{"PA", 66000000, 68999999},
	{"AP", 68900000, 68999999},
	{"AM", 69000000, 69899999},
	{"AC", 69900000, 69999999},
	{"RR", 69300000, 69399999},
	{"DF", 70000000, 72999999},
	{"GO", 72800000, 76999999},
	{"TO", 77000000, 77999999},
	{"MT", 78000000, 78999999},
	{"MS", 79000000, 79999999},
}

// ufKm estimates the distance from the primary center when no range
// table matched the destination.
var ufKm = map[string]int{
	"RS": 150, "SC": 450, "PR": 700, "SP": 1100, "RJ": 1500,
	"MG": 1600, "ES": 1800, "MS": 1600, "MT": 2200, "DF": 2000,
	"GO": 2100, "TO": 2500, "BA": 2600, "SE": 2700, "AL": 2800,
	"PE": 3000, "PB": 3100, "RN": 3200, "CE": 3400, "PI": 3300,
	"MA": 3500, "PA": 3800, "AP": 4100, "AM": 4200, "RO": 4000,
	"AC": 4300, "RR": 4500,
}

// DefaultKm is the terminal fallback distance when neither a range nor
// a UF estimate resolves the destination.
const DefaultKm = 450
