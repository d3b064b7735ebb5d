package negotiating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creator-pricing-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creator-pricing-api/internal/domain"
	"github.com/vfg2006/creator-pricing-api/internal/usecases/pricing"
	"go.uber.org/mock/gomock"
)

func int64Ptr(v int64) *int64     { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestAssess(t *testing.T) {
	// Banda de mercado 800..1200, mid 1000
	rate := domain.RateResult{RecommendedMin: 800, RecommendedMax: 1200}

	tests := []struct {
		name           string
		offer          float64
		wantAssessment string
		wantPct        float64
		wantCounterMin float64
		wantCounterMax float64
	}{
		{
			name:           "Oferta muito abaixo do mercado",
			offer:          650,
			wantAssessment: AssessmentFarBelow,
			wantPct:        -35,
			wantCounterMin: 1000,
			wantCounterMax: 1320,
		},
		{
			name:           "Exatamente 30% abaixo ainda é muito abaixo",
			offer:          700,
			wantAssessment: AssessmentFarBelow,
			wantPct:        -30,
			wantCounterMin: 1000,
			wantCounterMax: 1320,
		},
		{
			name:           "Abaixo do mercado com espaço para negociar",
			offer:          850,
			wantAssessment: AssessmentBelow,
			wantPct:        -15,
			wantCounterMin: 1000,
			wantCounterMax: 1320,
		},
		{
			name:           "Oferta no ponto médio",
			offer:          1000,
			wantAssessment: AssessmentInLine,
			wantPct:        0,
			wantCounterMin: 900,
			wantCounterMax: 1260,
		},
		{
			name:           "Exatamente 10% acima ainda está na linha",
			offer:          1100,
			wantAssessment: AssessmentInLine,
			wantPct:        10,
			wantCounterMin: 900,
			wantCounterMax: 1260,
		},
		{
			name:           "Acima do mercado",
			offer:          1150,
			wantAssessment: AssessmentAbove,
			wantPct:        15,
			wantCounterMin: 900,
			wantCounterMax: 1260,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assessment := Assess(tt.offer, rate)

			assert.Equal(t, tt.wantAssessment, assessment.Assessment)
			require.NotNil(t, assessment.OfferVsMarketPct)
			assert.InDelta(t, tt.wantPct, *assessment.OfferVsMarketPct, 0.0001)
			require.NotNil(t, assessment.CounterMin)
			assert.InDelta(t, tt.wantCounterMin, *assessment.CounterMin, 0.0001)
			require.NotNil(t, assessment.CounterMax)
			assert.InDelta(t, tt.wantCounterMax, *assessment.CounterMax, 0.0001)
		})
	}
}

func TestAssess_SemDadosSuficientes(t *testing.T) {
	// Sem views nem seguidores a banda do modelo é zero
	assessment := Assess(500, domain.RateResult{})

	assert.Equal(t, AssessmentInsufficientData, assessment.Assessment)
	assert.Nil(t, assessment.OfferVsMarketPct)
	assert.Nil(t, assessment.CounterMin)
	assert.Nil(t, assessment.CounterMax)
}

func newNegotiatorWithMocks(t *testing.T) (Negotiator, *mocks.MockNegotiationRepository, *mocks.MockDealRepository) {
	ctrl := gomock.NewController(t)
	negotiationRepo := mocks.NewMockNegotiationRepository(ctrl)
	dealRepo := mocks.NewMockDealRepository(ctrl)

	service := NewService(pricing.NewRateModel(pricing.DefaultRateTables()), negotiationRepo, dealRepo)

	return service, negotiationRepo, dealRepo
}

func TestService_AssessOffer(t *testing.T) {
	service, negotiationRepo, _ := newNegotiatorWithMocks(t)

	negotiationRepo.EXPECT().
		Save(gomock.Any()).
		DoAndReturn(func(session *domain.NegotiationSession) (*domain.NegotiationSession, error) {
			saved := *session
			saved.ID = "neg_123"
			return &saved, nil
		})

	session, err := service.AssessOffer(42, AssessRequest{
		Platform:       "youtube",
		Niche:          "finance",
		DealType:       "integration",
		GeoRegion:      "us",
		BrandName:      "Acme Fintech",
		BrandOffer:     100,
		AvgViews:       int64Ptr(5000),
		EngagementRate: floatPtr(4.2),
	})

	assert.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "neg_123", session.ID)
	assert.Equal(t, domain.NegotiationInProgress, session.Outcome)

	// Banda 106.26..159.39, mid 132.825; oferta de 100 fica ~24.7% abaixo
	assert.Equal(t, AssessmentBelow, session.Assessment)
	require.NotNil(t, session.OfferVsMarketPct)
	assert.InDelta(t, -24.7131, *session.OfferVsMarketPct, 0.001)
	require.NotNil(t, session.CounterMin)
	assert.InDelta(t, 132.825, *session.CounterMin, 0.0001)

	assert.Contains(t, session.EmailDraft, "Hi Acme Fintech,")
	assert.Contains(t, session.EmailDraft, "Thank you for the offer of $100.00")
}

func TestService_AssessOffer_SemDadosNaoSugereContraproposta(t *testing.T) {
	service, negotiationRepo, _ := newNegotiatorWithMocks(t)

	negotiationRepo.EXPECT().
		Save(gomock.Any()).
		DoAndReturn(func(session *domain.NegotiationSession) (*domain.NegotiationSession, error) {
			return session, nil
		})

	session, err := service.AssessOffer(42, AssessRequest{
		Platform:   "youtube",
		Niche:      "finance",
		BrandOffer: 500,
	})

	assert.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, AssessmentInsufficientData, session.Assessment)
	assert.Nil(t, session.OfferVsMarketPct)
	assert.Nil(t, session.CounterMin)
	assert.Nil(t, session.CounterMax)
	assert.Contains(t, session.EmailDraft, "Could you share more details")
}

func TestService_CloseSession(t *testing.T) {
	inProgress := &domain.NegotiationSession{ID: "neg_123", UserID: 42, Outcome: domain.NegotiationInProgress}
	accepted := &domain.NegotiationSession{ID: "neg_123", UserID: 42, Outcome: domain.NegotiationAccepted, FinalAgreedFeeUSD: floatPtr(950)}

	tests := []struct {
		name        string
		request     CloseRequest
		setup       func(negotiationRepo *mocks.MockNegotiationRepository, dealRepo *mocks.MockDealRepository)
		wantErr     string
		wantOutcome string
	}{
		{
			name:    "Aceita com valor final e vincula o deal",
			request: CloseRequest{SessionID: "neg_123", Outcome: domain.NegotiationAccepted, FinalAgreedFeeUSD: floatPtr(950), DealID: strPtr("deal_1")},
			setup: func(negotiationRepo *mocks.MockNegotiationRepository, dealRepo *mocks.MockDealRepository) {
				negotiationRepo.EXPECT().GetByID("neg_123", 42).Return(inProgress, nil)
				dealRepo.EXPECT().GetByID("deal_1", 42).Return(&domain.DealContribution{ID: "deal_1", UserID: 42}, nil)
				dealRepo.EXPECT().LinkNegotiation("deal_1", 42, "neg_123").Return(nil)
				negotiationRepo.EXPECT().Close("neg_123", 42, domain.NegotiationAccepted, floatPtr(950)).Return(nil)
				negotiationRepo.EXPECT().GetByID("neg_123", 42).Return(accepted, nil)
			},
			wantOutcome: domain.NegotiationAccepted,
		},
		{
			name:    "Recusada sem deal",
			request: CloseRequest{SessionID: "neg_123", Outcome: domain.NegotiationDeclined},
			setup: func(negotiationRepo *mocks.MockNegotiationRepository, dealRepo *mocks.MockDealRepository) {
				negotiationRepo.EXPECT().GetByID("neg_123", 42).Return(inProgress, nil)
				negotiationRepo.EXPECT().Close("neg_123", 42, domain.NegotiationDeclined, nil).Return(nil)
				declined := *inProgress
				declined.Outcome = domain.NegotiationDeclined
				negotiationRepo.EXPECT().GetByID("neg_123", 42).Return(&declined, nil)
			},
			wantOutcome: domain.NegotiationDeclined,
		},
		{
			name:    "Desfecho desconhecido é rejeitado",
			request: CloseRequest{SessionID: "neg_123", Outcome: "ghosted"},
			setup:   func(negotiationRepo *mocks.MockNegotiationRepository, dealRepo *mocks.MockDealRepository) {},
			wantErr: "desfecho inválido",
		},
		{
			name:    "Sessão inexistente",
			request: CloseRequest{SessionID: "neg_999", Outcome: domain.NegotiationExpired},
			setup: func(negotiationRepo *mocks.MockNegotiationRepository, dealRepo *mocks.MockDealRepository) {
				negotiationRepo.EXPECT().GetByID("neg_999", 42).Return(nil, nil)
			},
			wantErr: ErrSessionNotFound.Error(),
		},
		{
			name:    "Deal inexistente impede o vínculo",
			request: CloseRequest{SessionID: "neg_123", Outcome: domain.NegotiationAccepted, DealID: strPtr("deal_999")},
			setup: func(negotiationRepo *mocks.MockNegotiationRepository, dealRepo *mocks.MockDealRepository) {
				negotiationRepo.EXPECT().GetByID("neg_123", 42).Return(inProgress, nil)
				dealRepo.EXPECT().GetByID("deal_999", 42).Return(nil, nil)
			},
			wantErr: ErrDealNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, negotiationRepo, dealRepo := newNegotiatorWithMocks(t)
			tt.setup(negotiationRepo, dealRepo)

			session, err := service.CloseSession(42, tt.request)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, session)
				return
			}

			assert.NoError(t, err)
			require.NotNil(t, session)
			assert.Equal(t, tt.wantOutcome, session.Outcome)
		})
	}
}

func strPtr(v string) *string { return &v }
