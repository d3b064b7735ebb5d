package domain

import "time"

// Resultados possíveis de uma sessão de negociação.
const (
	NegotiationInProgress = "in_progress"
	NegotiationAccepted   = "accepted"
	NegotiationDeclined   = "declined"
	NegotiationExpired    = "expired"
)

// NegotiationSession registra uma avaliação de oferta de marca e seu
// desfecho. Criada uma vez por tentativa de negociação; vinculada a no
// máximo um DealContribution quando o deal é fechado.
type NegotiationSession struct {
	ID                string     `json:"id"`
	UserID            int        `json:"user_id"`
	Platform          string     `json:"platform"`
	Niche             string     `json:"niche"`
	DealType          string     `json:"deal_type"`
	GeoRegion         string     `json:"geo_region"`
	BrandName         string     `json:"brand_name"`
	BrandOffer        float64    `json:"brand_offer"`
	MarketMin         float64    `json:"market_min"`
	MarketMax         float64    `json:"market_max"`
	OfferVsMarketPct  *float64   `json:"offer_vs_market_pct"`
	CounterMin        *float64   `json:"counter_min"`
	CounterMax        *float64   `json:"counter_max"`
	Assessment        string     `json:"assessment"`
	EmailDraft        string     `json:"email_draft"`
	Outcome           string     `json:"outcome"`
	FinalAgreedFeeUSD *float64   `json:"final_agreed_fee_usd"`
	CreatedAt         time.Time  `json:"created_at"`
	ClosedAt          *time.Time `json:"closed_at"`
}

// OfferAssessment é o resultado puro da avaliação de uma oferta contra a
// banda de mercado, antes de qualquer persistência.
type OfferAssessment struct {
	MarketMin        float64  `json:"market_min"`
	MarketMax        float64  `json:"market_max"`
	MarketMid        float64  `json:"market_mid"`
	OfferVsMarketPct *float64 `json:"offer_vs_market_pct"`
	Assessment       string   `json:"assessment"`
	CounterMin       *float64 `json:"counter_min"`
	CounterMax       *float64 `json:"counter_max"`
}
