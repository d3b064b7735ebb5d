// Package negotiating avalia ofertas de marca contra a banda de mercado
// do modelo e acompanha a sessão de negociação até o desfecho.
package negotiating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/creator-pricing-api/infrastructure/repository"
	"github.com/vfg2006/creator-pricing-api/internal/catalog"
	"github.com/vfg2006/creator-pricing-api/internal/domain"
	"github.com/vfg2006/creator-pricing-api/internal/usecases/pricing"
	"github.com/vfg2006/creator-pricing-api/pkg/utils"
)

// Avaliações possíveis de uma oferta contra o ponto médio de mercado.
const (
	AssessmentInsufficientData = "insufficient data"
	AssessmentFarBelow         = "far below market"
	AssessmentBelow            = "below market, room to negotiate"
	AssessmentInLine           = "in line with market"
	AssessmentAbove            = "above market"
)

var ErrSessionNotFound = errors.New("sessão de negociação não encontrada")
var ErrDealNotFound = errors.New("deal não encontrado")

type AssessRequest struct {
	Platform       string   `json:"platform"`
	Niche          string   `json:"niche"`
	DealType       string   `json:"deal_type"`
	GeoRegion      string   `json:"geo_region"`
	BrandName      string   `json:"brand_name"`
	BrandOffer     float64  `json:"brand_offer"`
	Followers      *int64   `json:"followers"`
	AvgViews       *int64   `json:"avg_views"`
	EngagementRate *float64 `json:"engagement_rate"`
}

type CloseRequest struct {
	SessionID         string   `json:"session_id"`
	Outcome           string   `json:"outcome"`
	FinalAgreedFeeUSD *float64 `json:"final_agreed_fee_usd"`
	DealID            *string  `json:"deal_id"`
}

type Negotiator interface {
	AssessOffer(userID int, request AssessRequest) (*domain.NegotiationSession, error)
	CloseSession(userID int, request CloseRequest) (*domain.NegotiationSession, error)
	GetSession(sessionID string, userID int) (*domain.NegotiationSession, error)
	ListSessions(userID int) ([]*domain.NegotiationSession, error)
}

type Service struct {
	model           *pricing.RateModel
	negotiationRepo repository.NegotiationRepository
	dealRepo        repository.DealRepository
}

func NewService(
	model *pricing.RateModel,
	negotiationRepo repository.NegotiationRepository,
	dealRepo repository.DealRepository,
) Negotiator {
	return &Service{
		model:           model,
		negotiationRepo: negotiationRepo,
		dealRepo:        dealRepo,
	}
}

// Assess é a avaliação pura da oferta contra a banda de mercado, sem
// persistência.
func Assess(offer float64, rate domain.RateResult) domain.OfferAssessment {
	assessment := domain.OfferAssessment{
		MarketMin: rate.RecommendedMin,
		MarketMax: rate.RecommendedMax,
		MarketMid: rate.MarketMid(),
	}

	if assessment.MarketMid <= 0 {
		assessment.Assessment = AssessmentInsufficientData
		return assessment
	}

	pct := (offer - assessment.MarketMid) / assessment.MarketMid * 100
	assessment.OfferVsMarketPct = &pct

	switch {
	case pct <= -30:
		assessment.Assessment = AssessmentFarBelow
	case pct <= -10:
		assessment.Assessment = AssessmentBelow
	case pct <= 10:
		assessment.Assessment = AssessmentInLine
	default:
		assessment.Assessment = AssessmentAbove
	}

	var counterMin, counterMax float64
	if pct <= -10 {
		counterMin = assessment.MarketMid
		counterMax = assessment.MarketMax * 1.1
	} else {
		counterMin = assessment.MarketMid * 0.9
		counterMax = assessment.MarketMax * 1.05
	}

	assessment.CounterMin = &counterMin
	assessment.CounterMax = &counterMax

	return assessment
}

func (s *Service) AssessOffer(userID int, request AssessRequest) (*domain.NegotiationSession, error) {
	input := domain.RateInput{
		Platform:       catalog.NormalizePlatform(request.Platform),
		Niche:          catalog.NormalizeNiche(request.Niche),
		DealType:       catalog.NormalizeDealType(request.DealType),
		GeoRegion:      catalog.NormalizeGeoRegion(request.GeoRegion),
		Followers:      request.Followers,
		AvgViews:       request.AvgViews,
		EngagementRate: request.EngagementRate,
	}

	rate := s.model.Calculate(input)
	assessment := Assess(request.BrandOffer, rate)

	session := &domain.NegotiationSession{
		UserID:           userID,
		Platform:         input.Platform,
		Niche:            input.Niche,
		DealType:         input.DealType,
		GeoRegion:        input.GeoRegion,
		BrandName:        request.BrandName,
		BrandOffer:       request.BrandOffer,
		MarketMin:        assessment.MarketMin,
		MarketMax:        assessment.MarketMax,
		OfferVsMarketPct: assessment.OfferVsMarketPct,
		CounterMin:       assessment.CounterMin,
		CounterMax:       assessment.CounterMax,
		Assessment:       assessment.Assessment,
		EmailDraft:       buildEmailDraft(request, assessment),
		Outcome:          domain.NegotiationInProgress,
	}

	return s.negotiationRepo.Save(session)
}

func (s *Service) GetSession(sessionID string, userID int) (*domain.NegotiationSession, error) {
	session, err := s.negotiationRepo.GetByID(sessionID, userID)
	if err != nil {
		return nil, err
	}

	if session == nil {
		return nil, ErrSessionNotFound
	}

	return session, nil
}

func (s *Service) ListSessions(userID int) ([]*domain.NegotiationSession, error) {
	return s.negotiationRepo.ListByUser(userID)
}

// CloseSession encerra a sessão com o desfecho informado e, quando um
// deal é informado, grava o vínculo único entre os dois.
func (s *Service) CloseSession(userID int, request CloseRequest) (*domain.NegotiationSession, error) {
	switch request.Outcome {
	case domain.NegotiationAccepted, domain.NegotiationDeclined, domain.NegotiationExpired:
	default:
		return nil, fmt.Errorf("desfecho inválido: %q", request.Outcome)
	}

	session, err := s.GetSession(request.SessionID, userID)
	if err != nil {
		return nil, err
	}

	if request.DealID != nil {
		deal, err := s.dealRepo.GetByID(*request.DealID, userID)
		if err != nil {
			return nil, err
		}
		if deal == nil {
			return nil, ErrDealNotFound
		}

		if err := s.dealRepo.LinkNegotiation(deal.ID, userID, session.ID); err != nil {
			return nil, err
		}
	}

	if err := s.negotiationRepo.Close(session.ID, userID, request.Outcome, request.FinalAgreedFeeUSD); err != nil {
		return nil, err
	}

	return s.GetSession(request.SessionID, userID)
}

// buildEmailDraft monta o rascunho de e-mail de contraproposta. Apenas
// formatação, nenhuma chamada externa.
func buildEmailDraft(request AssessRequest, assessment domain.OfferAssessment) string {
	brand := request.BrandName
	if brand == "" {
		brand = "there"
	}

	if assessment.CounterMin == nil || assessment.CounterMax == nil {
		return fmt.Sprintf(
			"Hi %s,\n\nThank you for reaching out about a potential partnership. "+
				"Could you share more details about the scope and deliverables? "+
				"That will help me put together a fair quote.\n\nBest regards",
			brand,
		)
	}

	return fmt.Sprintf(
		"Hi %s,\n\nThank you for the offer of $%.2f. Based on current market rates "+
			"for similar %s collaborations in my niche, comparable partnerships are "+
			"closing between $%.2f and $%.2f.\n\nI'd love to make this work - would "+
			"you have flexibility to land somewhere in that range?\n\nBest regards",
		brand,
		request.BrandOffer,
		catalog.PlatformLabel(request.Platform),
		utils.RoundWithTwoDecimalPlace(*assessment.CounterMin),
		utils.RoundWithTwoDecimalPlace(*assessment.CounterMax),
	)
}
