package domain

// FeeSummary descreve a tendência central de uma amostra de fees.
// Count, Min e Max cobrem a amostra completa; Avg e Median são
// calculados sobre a amostra aparada (sem os extremos). Campos nulos
// sinalizam "sem dados", nunca zero.
type FeeSummary struct {
	Count  int      `json:"count"`
	Avg    *float64 `json:"avg"`
	Median *float64 `json:"median"`
	Min    *float64 `json:"min"`
	Max    *float64 `json:"max"`
}

// CpmSummary tem a mesma forma de FeeSummary, calculada sobre as razões
// fee/views * 1000 dos deals com views reportadas.
type CpmSummary struct {
	Count  int      `json:"count"`
	Avg    *float64 `json:"avg"`
	Median *float64 `json:"median"`
	Min    *float64 `json:"min"`
	Max    *float64 `json:"max"`
}

// CohortPricing é o resumo de preços do pool comunitário para um cohort,
// produzido apenas quando a amostra atinge o mínimo de deals.
type CohortPricing struct {
	DealCount int      `json:"deal_count"`
	AvgFee    *float64 `json:"avg_fee"`
	MedianFee *float64 `json:"median_fee"`
	MinFee    *float64 `json:"min_fee"`
	MaxFee    *float64 `json:"max_fee"`
}
