package domain

// RateInput reúne as entradas já normalizadas de uma invocação do modelo
// de tarifas. Campos opcionais ausentes degradam para estimativas (views
// a partir de seguidores) ou multiplicadores neutros.
type RateInput struct {
	Platform       string   `json:"platform"`
	Niche          string   `json:"niche"`
	DealType       string   `json:"deal_type"`
	GeoRegion      string   `json:"geo_region"`
	Followers      *int64   `json:"followers"`
	AvgViews       *int64   `json:"avg_views"`
	EngagementRate *float64 `json:"engagement_rate"`
}

// RateResult é a saída pura do modelo de tarifas: banda recomendada fixa
// de ±20% em torno da estimativa pontual, mais os fatores usados.
type RateResult struct {
	RecommendedMin       float64 `json:"recommended_min"`
	RecommendedMax       float64 `json:"recommended_max"`
	BaseCPM              float64 `json:"base_cpm"`
	NicheMultiplier      float64 `json:"niche_multiplier"`
	EngagementMultiplier float64 `json:"engagement_multiplier"`
	GeoMultiplier        float64 `json:"geo_multiplier"`
	EffectiveCPM         float64 `json:"effective_cpm"`
	ViewsUsed            int64   `json:"views_used"`
}

// MarketMid retorna o ponto médio da banda recomendada.
func (r RateResult) MarketMid() float64 {
	return (r.RecommendedMin + r.RecommendedMax) / 2
}

// PricingRecommendation é a resposta completa da calculadora: a banda do
// modelo, o resumo comunitário do cohort (quando há sinal) e a banda
// final após o blend, com a nota explicando se o blend foi aplicado.
type PricingRecommendation struct {
	Rate          RateResult     `json:"rate"`
	Community     *CohortPricing `json:"community"`
	FinalMin      float64        `json:"final_min"`
	FinalMax      float64        `json:"final_max"`
	BlendApplied  bool           `json:"blend_applied"`
	BlendNote     string         `json:"blend_note,omitempty"`
	Explanation   *string        `json:"explanation,omitempty"`
	LimitReached  bool           `json:"limit_reached"`
	CalculationID string         `json:"calculation_id,omitempty"`
}
