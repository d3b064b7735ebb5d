package domain

// PlatformBreakdown agrupa os fees de um usuário por plataforma.
type PlatformBreakdown struct {
	Platform string   `json:"platform"`
	Label    string   `json:"label"`
	Count    int      `json:"count"`
	AvgFee   *float64 `json:"avg_fee"`
}

// DealTypeBreakdown agrupa os fees de um usuário por tipo de deal.
type DealTypeBreakdown struct {
	DealType string   `json:"deal_type"`
	Label    string   `json:"label"`
	Count    int      `json:"count"`
	AvgFee   *float64 `json:"avg_fee"`
}

// MonthlyRevenue é um ponto da série mensal de receita de deals.
type MonthlyRevenue struct {
	Year         int      `json:"year"`
	Month        int      `json:"month"`
	DealCount    int      `json:"deal_count"`
	TotalRevenue *float64 `json:"total_revenue"`
	AvgDeal      *float64 `json:"avg_deal"`
}

// DealsSummary resume o histórico completo de deals de um usuário, sem
// aparar extremos (amostras pequenas tornam o corte contraproducente).
type DealsSummary struct {
	DealsCount         int      `json:"deals_count"`
	TotalRevenue       *float64 `json:"total_revenue"`
	AvgDeal            *float64 `json:"avg_deal"`
	MedianDeal         *float64 `json:"median_deal"`
	AvgQuotedFee       *float64 `json:"avg_quoted_fee"`
	AvgClosedFee       *float64 `json:"avg_closed_fee"`
	AvgCloseVsQuotePct *float64 `json:"avg_close_vs_quote_pct"`
	QuotedCount        int      `json:"quoted_count"`
}

// NegotiationSummary resume os desfechos de negociação de um usuário.
// Uplift é o ganho percentual do fee final sobre a oferta inicial da
// marca, calculado apenas para negociações vinculadas com oferta > 0.
type NegotiationSummary struct {
	NegotiationCount int            `json:"negotiation_count"`
	AvgUpliftPct     *float64       `json:"avg_uplift_pct"`
	MedianUpliftPct  *float64       `json:"median_uplift_pct"`
	Outcomes         map[string]int `json:"outcomes"`
}

// AnalyticsFlags indica quais seções da análise têm dados.
type AnalyticsFlags struct {
	HasDeals             bool `json:"has_deals"`
	HasQuotedVsClosed    bool `json:"has_quoted_vs_closed"`
	HasNegotiationUplift bool `json:"has_negotiation_uplift"`
}

// UserAnalytics agrega o histórico completo de um usuário para o
// dashboard de analytics.
type UserAnalytics struct {
	DealsSummary       DealsSummary        `json:"deals_summary"`
	PlatformBreakdown  []PlatformBreakdown `json:"platform_breakdown"`
	DealTypeBreakdown  []DealTypeBreakdown `json:"deal_type_breakdown"`
	NegotiationSummary NegotiationSummary  `json:"negotiation_summary"`
	MonthlyTrend       []MonthlyRevenue    `json:"monthly_trend"`
	Flags              AnalyticsFlags      `json:"flags"`
}

// TypicalCalcRange é a faixa média calculada para a combinação
// plataforma+nicho mais frequente do usuário.
type TypicalCalcRange struct {
	Platform string   `json:"platform"`
	Niche    string   `json:"niche"`
	AvgMin   *float64 `json:"avg_min"`
	AvgMax   *float64 `json:"avg_max"`
}

// DataRichness mede quantos sinais (deals + negociações + cálculos) o
// usuário acumulou; a narração de insights exige pelo menos
// MinSignalsForInsights sinais combinados.
type DataRichness struct {
	HasAnyDeals        bool `json:"has_any_deals"`
	HasAnyNegotiations bool `json:"has_any_negotiations"`
	HasAnyCalculations bool `json:"has_any_calculations"`
	TotalSignals       int  `json:"total_signals"`
}

// CreatorStats é o payload numérico enviado ao narrador de insights.
type CreatorStats struct {
	Profile     *ProfileSummary `json:"profile"`
	DealSummary struct {
		TotalDeals        int                 `json:"total_deals"`
		AvgFee            *float64            `json:"avg_fee"`
		MedianFee         *float64            `json:"median_fee"`
		AvgCPM            *float64            `json:"avg_cpm"`
		PlatformBreakdown []PlatformBreakdown `json:"platform_breakdown"`
	} `json:"deal_summary"`
	NegotiationSummary struct {
		TotalNegotiations    int      `json:"total_negotiations"`
		AvgOfferVsMarketPct  *float64 `json:"avg_offer_vs_market_pct"`
		CounterAboveOfferQty int      `json:"counter_above_offer_count"`
	} `json:"negotiation_summary"`
	CalculatorSummary struct {
		TotalCalculations int               `json:"total_calculations"`
		TypicalRange      *TypicalCalcRange `json:"typical_range"`
	} `json:"calculator_summary"`
	DataRichness DataRichness `json:"data_richness"`
}

// Estados da narração de insights retornados ao cliente. "no_data" e
// "unavailable" são distintos de propósito: o primeiro significa que o
// usuário ainda não tem sinais suficientes, o segundo que o serviço
// externo falhou ou a cota diária foi atingida.
const (
	InsightStatusOK          = "ok"
	InsightStatusNoData      = "no_data"
	InsightStatusUnavailable = "unavailable"
)

// CreatorInsights é a resposta do endpoint de insights narrados.
type CreatorInsights struct {
	Status       string       `json:"status"`
	Message      string       `json:"message,omitempty"`
	InsightsText *string      `json:"insights_text"`
	Stats        CreatorStats `json:"stats"`
}
