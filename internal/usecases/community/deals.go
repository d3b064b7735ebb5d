package community

import (
	"errors"
	"time"

	"github.com/vfg2006/creator-pricing-api/internal/catalog"
	"github.com/vfg2006/creator-pricing-api/internal/domain"
)

var (
	ErrDealNotFound = errors.New("deal não encontrado")
	ErrInvalidFee   = errors.New("o valor do deal deve ser maior que zero")
	ErrMissingNiche = errors.New("nicho é obrigatório")
)

// DealListFilters são os filtros opcionais da listagem de deals do
// próprio usuário.
type DealListFilters struct {
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	MinFee      *float64
}

type SubmitDealRequest struct {
	Platform      string   `json:"platform"`
	Niche         string   `json:"niche"`
	DealType      string   `json:"deal_type"`
	ContentFormat string   `json:"content_format"`
	GeoRegion     string   `json:"geo_region"`
	Followers     int64    `json:"followers"`
	TotalFeeUSD   float64  `json:"total_fee_usd"`
	QuotedFeeUSD  *float64 `json:"quoted_fee_usd"`
	ReportedViews *int64   `json:"reported_views"`
	ShareInPool   bool     `json:"share_in_pool"`
}

// SubmitDeal registra um deal fechado. A faixa de seguidores é sempre
// derivada da contagem, nunca informada livremente; os códigos passam
// pela normalização do catálogo.
func (s *Service) SubmitDeal(userID int, request SubmitDealRequest) (*domain.DealContribution, error) {
	if request.TotalFeeUSD <= 0 {
		return nil, ErrInvalidFee
	}

	if request.Niche == "" {
		return nil, ErrMissingNiche
	}

	deal := &domain.DealContribution{
		UserID:        userID,
		Platform:      catalog.NormalizePlatform(request.Platform),
		Niche:         catalog.NormalizeNiche(request.Niche),
		DealType:      catalog.NormalizeDealType(request.DealType),
		ContentFormat: catalog.NormalizeContentFormat(request.ContentFormat),
		GeoRegion:     catalog.NormalizeGeoRegion(request.GeoRegion),
		FollowerTier:  catalog.FollowerTierFromCount(request.Followers),
		TotalFeeUSD:   request.TotalFeeUSD,
		QuotedFeeUSD:  request.QuotedFeeUSD,
		ReportedViews: request.ReportedViews,
		ShareInPool:   request.ShareInPool,
	}

	return s.dealRepo.Save(deal)
}

func (s *Service) GetDeal(dealID string, userID int) (*domain.DealContribution, error) {
	deal, err := s.dealRepo.GetByID(dealID, userID)
	if err != nil {
		return nil, err
	}

	if deal == nil {
		return nil, ErrDealNotFound
	}

	return deal, nil
}

// ListDeals lista os deals do usuário, com filtros opcionais de período
// e valor mínimo.
func (s *Service) ListDeals(userID int, filters DealListFilters) ([]*domain.DealContribution, error) {
	if filters.CreatedFrom == nil && filters.CreatedTo == nil && filters.MinFee == nil {
		return s.dealRepo.ListByUser(userID)
	}

	return s.dealRepo.ListByFilters(domain.DealFilters{
		UserID:      &userID,
		CreatedFrom: filters.CreatedFrom,
		CreatedTo:   filters.CreatedTo,
		MinFee:      filters.MinFee,
	})
}

func (s *Service) DeleteDeal(dealID string, userID int) error {
	deal, err := s.dealRepo.GetByID(dealID, userID)
	if err != nil {
		return err
	}

	if deal == nil {
		return ErrDealNotFound
	}

	return s.dealRepo.Delete(dealID, userID)
}
