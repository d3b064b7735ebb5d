// Package pricing orquestra a calculadora de tarifas: modelo CPM, blend
// comunitário, trilha de auditoria e limite mensal do plano gratuito.
package pricing

import (
	"time"

	"github.com/vfg2006/creator-pricing-api/infrastructure/integrator/narrator"
	"github.com/vfg2006/creator-pricing-api/infrastructure/repository"
	"github.com/vfg2006/creator-pricing-api/internal/catalog"
	"github.com/vfg2006/creator-pricing-api/internal/config"
	"github.com/vfg2006/creator-pricing-api/internal/domain"
	"github.com/vfg2006/creator-pricing-api/internal/usecases/community"
	"github.com/vfg2006/creator-pricing-api/pkg/log"
	"github.com/vfg2006/creator-pricing-api/pkg/utils"
)

const defaultMonthlyLimit = 3

// Limites do blend comunitário: fora desta razão entre a mediana da
// comunidade e o ponto médio do modelo, o sinal é tratado como ruído.
const (
	blendRatioFloor      = 0.5
	blendRatioCeiling    = 2.0
	blendModelWeight     = 0.6
	blendCommunityWeight = 0.4
)

type RecommendRequest struct {
	Platform       string   `json:"platform"`
	Niche          string   `json:"niche"`
	DealType       string   `json:"deal_type"`
	GeoRegion      string   `json:"geo_region"`
	Followers      *int64   `json:"followers"`
	AvgViews       *int64   `json:"avg_views"`
	EngagementRate *float64 `json:"engagement_rate"`
}

type Pricer interface {
	Recommend(userID int, request RecommendRequest) (*domain.PricingRecommendation, error)
	ListCalculations(userID int, limit uint64) ([]*domain.Calculation, error)
	RemainingCalculations(userID int) (int, error)
}

type Service struct {
	model        *RateModel
	communitySvc community.CommunityPricer
	calcRepo     repository.CalculationRepository
	profileRepo  repository.ProfileRepository
	narratorSvc  narrator.NarratorIntegrator
	usageRepo    repository.AIUsageRepository
	cfg          *config.Config
}

func NewService(
	model *RateModel,
	communitySvc community.CommunityPricer,
	calcRepo repository.CalculationRepository,
	profileRepo repository.ProfileRepository,
	narratorSvc narrator.NarratorIntegrator,
	usageRepo repository.AIUsageRepository,
	cfg *config.Config,
) Pricer {
	return &Service{
		model:        model,
		communitySvc: communitySvc,
		calcRepo:     calcRepo,
		profileRepo:  profileRepo,
		narratorSvc:  narratorSvc,
		usageRepo:    usageRepo,
		cfg:          cfg,
	}
}

func (s *Service) monthlyLimit() int {
	if s.cfg.Pricing.MonthlyCalculationLimit > 0 {
		return s.cfg.Pricing.MonthlyCalculationLimit
	}
	return defaultMonthlyLimit
}

// RemainingCalculations retorna quantos cálculos o usuário ainda tem no
// mês corrente.
func (s *Service) RemainingCalculations(userID int) (int, error) {
	from, to := utils.MonthWindow(time.Now().UTC())

	used, err := s.calcRepo.CountByUserBetween(userID, from, to)
	if err != nil {
		return 0, err
	}

	remaining := s.monthlyLimit() - used
	if remaining < 0 {
		remaining = 0
	}

	return remaining, nil
}

func (s *Service) ListCalculations(userID int, limit uint64) ([]*domain.Calculation, error) {
	return s.calcRepo.ListByUser(userID, limit)
}

// Recommend executa a calculadora completa. Limite mensal atingido não é
// erro: a resposta volta com LimitReached e sem números.
func (s *Service) Recommend(userID int, request RecommendRequest) (*domain.PricingRecommendation, error) {
	remaining, err := s.RemainingCalculations(userID)
	if err != nil {
		return nil, err
	}

	if remaining <= 0 {
		return &domain.PricingRecommendation{LimitReached: true}, nil
	}

	input := s.buildInput(userID, request)

	rate := s.model.Calculate(input)

	recommendation := &domain.PricingRecommendation{
		Rate:     rate,
		FinalMin: rate.RecommendedMin,
		FinalMax: rate.RecommendedMax,
	}

	cohort := domain.Cohort{
		Platform:     input.Platform,
		Niche:        input.Niche,
		FollowerTier: followerTierFor(input),
		GeoRegion:    input.GeoRegion,
	}

	communityPricing, err := s.communitySvc.CohortPricing(cohort)
	if err != nil {
		// O blend é um refinamento, a falha na consulta comunitária não
		// derruba a recomendação do modelo.
		log.L.WithError(err).Warn("Erro ao consultar pricing comunitário, usando apenas o modelo")
	} else if communityPricing != nil {
		recommendation.Community = communityPricing
		s.applyBlend(recommendation, communityPricing)
	}

	calc := &domain.Calculation{
		UserID:               userID,
		Platform:             input.Platform,
		Niche:                input.Niche,
		DealType:             input.DealType,
		GeoRegion:            input.GeoRegion,
		Followers:            input.Followers,
		AvgViews:             input.AvgViews,
		EngagementRate:       input.EngagementRate,
		RecommendedMin:       utils.RoundWithTwoDecimalPlace(recommendation.FinalMin),
		RecommendedMax:       utils.RoundWithTwoDecimalPlace(recommendation.FinalMax),
		BaseCPM:              rate.BaseCPM,
		NicheMultiplier:      rate.NicheMultiplier,
		EngagementMultiplier: rate.EngagementMultiplier,
		GeoMultiplier:        rate.GeoMultiplier,
	}

	calc, err = s.calcRepo.Save(calc)
	if err != nil {
		return nil, err
	}

	recommendation.CalculationID = calc.ID

	s.attachExplanation(userID, calc, recommendation)

	return recommendation, nil
}

// buildInput normaliza a requisição e preenche ausências com o perfil do
// criador.
func (s *Service) buildInput(userID int, request RecommendRequest) domain.RateInput {
	input := domain.RateInput{
		Platform:       catalog.NormalizePlatform(request.Platform),
		Niche:          catalog.NormalizeNiche(request.Niche),
		DealType:       catalog.NormalizeDealType(request.DealType),
		GeoRegion:      catalog.NormalizeGeoRegion(request.GeoRegion),
		Followers:      request.Followers,
		AvgViews:       request.AvgViews,
		EngagementRate: request.EngagementRate,
	}

	if input.Followers != nil && input.AvgViews != nil && input.EngagementRate != nil {
		return input
	}

	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil || profile == nil {
		return input
	}

	if input.Followers == nil {
		input.Followers = profile.Followers
	}

	if input.AvgViews == nil {
		input.AvgViews = profile.AvgViews
	}

	if input.EngagementRate == nil {
		input.EngagementRate = profile.EngagementRate
	}

	return input
}

func followerTierFor(input domain.RateInput) string {
	if input.Followers != nil {
		return catalog.FollowerTierFromCount(*input.Followers)
	}
	return catalog.NormalizeFollowerTier("")
}

// applyBlend mistura a mediana comunitária com o ponto médio do modelo
// quando a razão entre os dois está dentro dos limites de sanidade.
func (s *Service) applyBlend(recommendation *domain.PricingRecommendation, communityPricing *domain.CohortPricing) {
	if communityPricing.MedianFee == nil {
		return
	}

	baseMid := recommendation.Rate.MarketMid()
	if baseMid <= 0 {
		return
	}

	ratio := *communityPricing.MedianFee / baseMid
	if ratio < blendRatioFloor || ratio > blendRatioCeiling {
		return
	}

	finalMid := blendModelWeight*baseMid + blendCommunityWeight**communityPricing.MedianFee

	recommendation.FinalMin = finalMid * 0.8
	recommendation.FinalMax = finalMid * 1.2
	recommendation.BlendApplied = true
	recommendation.BlendNote = "Adjusted with real deals from creators like you"
}

// attachExplanation pede ao narrador um parágrafo explicando a faixa.
// Melhor-esforço: qualquer recusa (cota, serviço desligado, erro HTTP)
// deixa a recomendação sem explicação.
func (s *Service) attachExplanation(userID int, calc *domain.Calculation, recommendation *domain.PricingRecommendation) {
	if s.narratorSvc == nil || !s.narratorSvc.Enabled() {
		return
	}

	today := time.Now().UTC()

	used, err := s.usageRepo.CountForDay(userID, today)
	if err != nil || used >= s.cfg.Narrator.DailyCap {
		return
	}

	if err := s.usageRepo.Increment(userID, today); err != nil {
		return
	}

	explanation, err := s.narratorSvc.ExplainRecommendation(calc)
	if err != nil {
		log.L.WithError(err).Warn("Erro ao gerar explicação da recomendação")
		return
	}

	recommendation.Explanation = &explanation
}
