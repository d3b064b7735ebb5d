package pricing

import (
	"strings"

	"github.com/vfg2006/creator-pricing-api/internal/domain"
)

// nicheRule é uma regra ordenada de multiplicador por palavra-chave.
// A ordem importa: a primeira regra cujo termo aparece no nicho vence.
type nicheRule struct {
	keywords   []string
	multiplier float64
}

// RateTables são as tabelas imutáveis do modelo de tarifas, injetadas na
// construção.
type RateTables struct {
	platformCPM      map[string]float64
	defaultCPM       float64
	nicheRules       []nicheRule
	geoMultipliers   map[string]float64
	viewsPerFollower float64
}

// DefaultRateTables retorna as tabelas do modelo em produção.
func DefaultRateTables() RateTables {
	return RateTables{
		platformCPM: map[string]float64{
			"youtube":    15,
			"instagram":  12,
			"tiktok":     10,
			"linkedin":   18,
			"twitter":    11,
			"twitch":     14,
			"podcast":    20,
			"newsletter": 16,
			"other":      8,
		},
		defaultCPM: 8,
		nicheRules: []nicheRule{
			{keywords: []string{"finance", "investing", "business"}, multiplier: 1.4},
			{keywords: []string{"beauty", "fashion"}, multiplier: 1.2},
			{keywords: []string{"tech", "gaming"}, multiplier: 1.3},
			{keywords: []string{"fitness", "health"}, multiplier: 1.15},
		},
		geoMultipliers: map[string]float64{
			"us":     1.1,
			"canada": 1.1,
			"uk":     1.05,
			"eu":     1.05,
		},
		viewsPerFollower: 0.1,
	}
}

// RateModel calcula a banda de tarifa recomendada a partir de CPM por
// plataforma e multiplicadores de nicho, engajamento e região. Puro e
// determinístico: mesmas entradas, mesma banda.
type RateModel struct {
	tables RateTables
}

func NewRateModel(tables RateTables) *RateModel {
	return &RateModel{tables: tables}
}

func (m *RateModel) Calculate(input domain.RateInput) domain.RateResult {
	baseCPM, ok := m.tables.platformCPM[input.Platform]
	if !ok {
		baseCPM = m.tables.defaultCPM
	}

	nicheMult := m.nicheMultiplier(input.Niche)
	engMult := m.engagementMultiplier(input.EngagementRate)
	geoMult := m.geoMultiplier(input.GeoRegion)

	views := m.estimatedViews(input)

	effectiveCPM := baseCPM * nicheMult * engMult * geoMult
	baseRate := float64(views) / 1000 * effectiveCPM

	return domain.RateResult{
		RecommendedMin:       baseRate * 0.8,
		RecommendedMax:       baseRate * 1.2,
		BaseCPM:              baseCPM,
		NicheMultiplier:      nicheMult,
		EngagementMultiplier: engMult,
		GeoMultiplier:        geoMult,
		EffectiveCPM:         effectiveCPM,
		ViewsUsed:            views,
	}
}

func (m *RateModel) nicheMultiplier(niche string) float64 {
	for _, rule := range m.tables.nicheRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(niche, keyword) {
				return rule.multiplier
			}
		}
	}
	return 1.0
}

func (m *RateModel) engagementMultiplier(rate *float64) float64 {
	if rate == nil {
		return 1.0
	}

	switch {
	case *rate < 1:
		return 0.8
	case *rate < 3:
		return 1.0
	case *rate < 5:
		return 1.15
	default:
		return 1.3
	}
}

func (m *RateModel) geoMultiplier(geo string) float64 {
	if mult, ok := m.tables.geoMultipliers[geo]; ok {
		return mult
	}
	return 1.0
}

// estimatedViews usa as views médias informadas; na ausência delas,
// estima a partir dos seguidores.
func (m *RateModel) estimatedViews(input domain.RateInput) int64 {
	if input.AvgViews != nil && *input.AvgViews > 0 {
		return *input.AvgViews
	}

	if input.Followers != nil && *input.Followers > 0 {
		return int64(float64(*input.Followers) * m.tables.viewsPerFollower)
	}

	return 0
}
