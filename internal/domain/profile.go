package domain

import "time"

// CreatorProfile guarda os atributos de exibição e as métricas típicas de
// um criador, usadas como padrão quando o criador não informa valores
// explícitos na calculadora.
type CreatorProfile struct {
	ID              int       `json:"id"`
	UserID          int       `json:"user_id"`
	DisplayName     string    `json:"display_name"`
	PrimaryPlatform string    `json:"primary_platform"`
	Niche           string    `json:"niche"`
	GeoRegion       string    `json:"geo_region"`
	Followers       *int64    `json:"followers"`
	AvgViews        *int64    `json:"avg_views"`
	EngagementRate  *float64  `json:"engagement_rate"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ProfileSummary é a projeção do perfil enviada ao narrador de insights.
type ProfileSummary struct {
	DisplayName     string   `json:"display_name"`
	PrimaryPlatform string   `json:"primary_platform"`
	Niche           string   `json:"niche"`
	Followers       *int64   `json:"followers"`
	AvgViews        *int64   `json:"avg_views"`
	EngagementRate  *float64 `json:"engagement_rate"`
}
