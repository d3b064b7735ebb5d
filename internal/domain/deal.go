package domain

import "time"

// DealContribution representa um deal fechado registrado por um criador.
// Imutável após a criação, exceto pelo vínculo com uma sessão de
// negociação, definido uma única vez quando a negociação é encerrada.
type DealContribution struct {
	ID            string     `json:"id"`
	UserID        int        `json:"user_id"`
	Platform      string     `json:"platform"`
	Niche         string     `json:"niche"`
	DealType      string     `json:"deal_type"`
	ContentFormat string     `json:"content_format"`
	GeoRegion     string     `json:"geo_region"`
	FollowerTier  string     `json:"follower_tier"`
	TotalFeeUSD   float64    `json:"total_fee_usd"`
	QuotedFeeUSD  *float64   `json:"quoted_fee_usd"`
	ReportedViews *int64     `json:"reported_views"`
	NegotiationID *string    `json:"negotiation_id"`
	ShareInPool   bool       `json:"share_in_pool"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// DealFilters define os critérios de busca de deals compartilhados no pool.
type DealFilters struct {
	SharedOnly   bool
	UserID       *int
	Platform     *string
	Niche        *string
	DealType     *string
	FollowerTier *string
	GeoRegion    *string
	MinFee       *float64
	CreatedFrom  *time.Time
	CreatedTo    *time.Time
}

// Cohort identifica o bucket (plataforma, nicho, faixa de seguidores,
// região) usado para agrupar deals compartilhados no pricing comunitário.
type Cohort struct {
	Platform     string `json:"platform"`
	Niche        string `json:"niche"`
	FollowerTier string `json:"follower_tier"`
	GeoRegion    string `json:"geo_region"`
}
