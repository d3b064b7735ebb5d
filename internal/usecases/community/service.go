// Package community calcula o resumo de preços do pool compartilhado por
// cohort (plataforma, nicho, faixa de seguidores, região).
package community

import (
	"github.com/vfg2006/creator-pricing-api/infrastructure/repository"
	"github.com/vfg2006/creator-pricing-api/internal/catalog"
	"github.com/vfg2006/creator-pricing-api/internal/config"
	"github.com/vfg2006/creator-pricing-api/internal/domain"
	"github.com/vfg2006/creator-pricing-api/internal/stats"
)

const defaultMinCohortDeals = 5

type CommunityPricer interface {
	CohortPricing(cohort domain.Cohort) (*domain.CohortPricing, error)
	MinCohortDeals() int

	SubmitDeal(userID int, request SubmitDealRequest) (*domain.DealContribution, error)
	GetDeal(dealID string, userID int) (*domain.DealContribution, error)
	ListDeals(userID int, filters DealListFilters) ([]*domain.DealContribution, error)
	DeleteDeal(dealID string, userID int) error
}

type Service struct {
	dealRepo repository.DealRepository
	minDeals int
}

func NewService(dealRepo repository.DealRepository, cfg *config.Config) CommunityPricer {
	minDeals := cfg.Pricing.MinCohortDeals
	if minDeals <= 0 {
		minDeals = defaultMinCohortDeals
	}

	return &Service{
		dealRepo: dealRepo,
		minDeals: minDeals,
	}
}

func (s *Service) MinCohortDeals() int {
	return s.minDeals
}

// CohortPricing resume os fees compartilhados do cohort. Retorna nil sem
// erro quando o cohort não atinge o mínimo de deals: ausência de sinal
// não é falha.
func (s *Service) CohortPricing(cohort domain.Cohort) (*domain.CohortPricing, error) {
	minFee := 0.0

	filters := domain.DealFilters{
		SharedOnly:   true,
		Platform:     &cohort.Platform,
		Niche:        &cohort.Niche,
		FollowerTier: &cohort.FollowerTier,
		MinFee:       &minFee,
	}

	// Região "other" agrega criadores de todo lugar, filtrar por ela só
	// esvaziaria o cohort.
	if geo := catalog.NormalizeGeoRegion(cohort.GeoRegion); geo != "other" {
		filters.GeoRegion = &geo
	}

	deals, err := s.dealRepo.ListByFilters(filters)
	if err != nil {
		return nil, err
	}

	fees := make([]float64, 0, len(deals))
	for _, deal := range deals {
		if deal.TotalFeeUSD > 0 {
			fees = append(fees, deal.TotalFeeUSD)
		}
	}

	if len(fees) < s.minDeals {
		return nil, nil
	}

	summary := stats.Summarize(fees)

	return &domain.CohortPricing{
		DealCount: summary.Count,
		AvgFee:    summary.Avg,
		MedianFee: summary.Median,
		MinFee:    summary.Min,
		MaxFee:    summary.Max,
	}, nil
}
