package domain

import "time"

// QuarterWindow delimita um trimestre-calendário, com fim inclusivo no
// último segundo do último dia.
type QuarterWindow struct {
	Year    int       `json:"year"`
	Quarter int       `json:"quarter"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}

// QuarterStats resume os deals compartilhados de um nicho em uma janela
// trimestral. Avg/Median ficam nulos quando a janela não atinge o mínimo
// de deals; Min/Max e DealCount são reportados mesmo assim.
type QuarterStats struct {
	Year      int      `json:"year"`
	Quarter   int      `json:"quarter"`
	DealCount int      `json:"deal_count"`
	AvgFee    *float64 `json:"avg_fee"`
	MedianFee *float64 `json:"median_fee"`
	MinFee    *float64 `json:"min_fee"`
	MaxFee    *float64 `json:"max_fee"`
	AvgCPM    *float64 `json:"avg_cpm"`
	MedianCPM *float64 `json:"median_cpm"`
}

// QuarterlyNicheReport compara o trimestre solicitado com o trimestre
// imediatamente anterior para um nicho (e opcionalmente uma plataforma).
// EnoughDataForReport diz respeito apenas à janela atual e controla se o
// narrador deve gerar um relatório em prosa; o trimestre anterior é
// informativo independentemente do próprio threshold.
type QuarterlyNicheReport struct {
	Niche               string        `json:"niche"`
	Platform            string        `json:"platform"`
	Current             QuarterStats  `json:"current"`
	Previous            *QuarterStats `json:"previous"`
	EnoughDataForReport bool          `json:"enough_data_for_report"`
	MinDealsForReport   int           `json:"min_deals_for_report"`
	Narrative           *string       `json:"narrative,omitempty"`
	NarrativeStatus     string        `json:"narrative_status,omitempty"`
}

// CohortPricingSnapshot é a linha materializada pelo agendador com o
// resumo de preços de um cohort, para leitura rápida no dashboard.
type CohortPricingSnapshot struct {
	Cohort    Cohort        `json:"cohort"`
	Pricing   CohortPricing `json:"pricing"`
	UpdatedAt time.Time     `json:"updated_at"`
}
