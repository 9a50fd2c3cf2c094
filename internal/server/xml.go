package server

import (
	"encoding/xml"
	"log"
	"net/http"
	"strconv"

	"freteapi/internal/freight"
)

// Tray-compatible quote document. Tag names and shape are part of the
// storefront webhook contract and must not change.
type cotacaoXML struct {
	XMLName   xml.Name     `xml:"cotacao"`
	Resultado resultadoXML `xml:"resultado"`
}

type resultadoXML struct {
	Codigo            string      `xml:"codigo"`
	Transportadora    string      `xml:"transportadora"`
	Servico           string      `xml:"servico"`
	Transporte        string      `xml:"transporte"`
	Valor             string      `xml:"valor"`
	PrazoMin          int         `xml:"prazo_min"`
	PrazoMax          int         `xml:"prazo_max"`
	EntregaDomiciliar int         `xml:"entrega_domiciliar"`
	Erro              string      `xml:"erro,omitempty"`
	Detalhes          detalhesXML `xml:"detalhes"`
}

type detalhesXML struct {
	CentroDistribuicao string    `xml:"centro_distribuicao"`
	Origem             string    `xml:"origem"`
	CepOrigem          string    `xml:"cep_origem"`
	DistanciaKm        int       `xml:"distancia_km"`
	UFDestino          string    `xml:"uf_destino"`
	Fonte              string    `xml:"fonte"`
	ValorPorKm         string    `xml:"valor_por_km"`
	EstoqueConfirmado  int       `xml:"estoque_confirmado"`
	Itens              []itemXML `xml:"itens>item"`
}

type itemXML struct {
	Codigo     string `xml:"codigo"`
	Quantidade int    `xml:"quantidade"`
	TamanhoM   string `xml:"tamanho_m"`
	ValorUnit  string `xml:"valor_unit"`
	ValorTotal string `xml:"valor_total"`
}

const carrierCode = "BAKOF"

// renderQuote maps an engine quote into the webhook document. note, if
// non-empty, rides in the erro element without changing the HTTP
// status: the storefront renders the quote either way.
func renderQuote(q freight.Quote, note string) cotacaoXML {
	det := detalhesXML{
		CentroDistribuicao: q.Center.Code,
		Origem:             q.Center.Name,
		CepOrigem:          q.Center.CEP,
		DistanciaKm:        q.Km,
		UFDestino:          orNA(q.UF),
		Fonte:              q.Source,
		ValorPorKm:         formatMoney(q.ValorKm),
		EstoqueConfirmado:  boolFlag(q.StockConfirmed),
	}
	for _, it := range q.Items {
		det.Itens = append(det.Itens, itemXML{
			Codigo:     it.Codigo,
			Quantidade: it.Qty,
			TamanhoM:   formatSize(it.SizeM),
			ValorUnit:  it.Unit.StringFixed(2),
			ValorTotal: it.Total.StringFixed(2),
		})
	}
	return cotacaoXML{
		Resultado: resultadoXML{
			Codigo:            carrierCode,
			Transportadora:    "Bakof Logistica - " + q.Center.Code,
			Servico:           "Transporte Rodoviario",
			Transporte:        "TERRESTRE",
			Valor:             q.Total.StringFixed(2),
			PrazoMin:          q.PrazoMin,
			PrazoMax:          q.PrazoMax,
			EntregaDomiciliar: 1,
			Erro:              note,
			Detalhes:          det,
		},
	}
}

func writeXML(w http.ResponseWriter, status int, doc cotacaoXML) {
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		log.Printf("[ERROR] encode xml: %v", err)
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func boolFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}

func formatMoney(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }

func formatSize(f float64) string { return strconv.FormatFloat(f, 'f', 3, 64) }

