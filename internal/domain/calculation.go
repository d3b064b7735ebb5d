package domain

import "time"

// Calculation é a trilha de auditoria de uma invocação do modelo de
// tarifas: entradas informadas e saídas recomendadas. Imutável.
type Calculation struct {
	ID                   string    `json:"id"`
	UserID               int       `json:"user_id"`
	Platform             string    `json:"platform"`
	Niche                string    `json:"niche"`
	DealType             string    `json:"deal_type"`
	GeoRegion            string    `json:"geo_region"`
	Followers            *int64    `json:"followers"`
	AvgViews             *int64    `json:"avg_views"`
	EngagementRate       *float64  `json:"engagement_rate"`
	RecommendedMin       float64   `json:"recommended_min"`
	RecommendedMax       float64   `json:"recommended_max"`
	BaseCPM              float64   `json:"base_cpm"`
	NicheMultiplier      float64   `json:"niche_multiplier"`
	EngagementMultiplier float64   `json:"engagement_multiplier"`
	GeoMultiplier        float64   `json:"geo_multiplier"`
	CreatedAt            time.Time `json:"created_at"`
}
