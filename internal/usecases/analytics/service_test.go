package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	narratormocks "github.com/vfg2006/creator-pricing-api/infrastructure/integrator/narrator/mocks"
	"github.com/vfg2006/creator-pricing-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creator-pricing-api/internal/config"
	"github.com/vfg2006/creator-pricing-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func int64Ptr(v int64) *int64     { return &v }
func floatPtr(v float64) *float64 { return &v }

type analyticsMocks struct {
	dealRepo        *mocks.MockDealRepository
	negotiationRepo *mocks.MockNegotiationRepository
	calcRepo        *mocks.MockCalculationRepository
	profileRepo     *mocks.MockProfileRepository
	narrator        *narratormocks.MockNarratorIntegrator
	usageRepo       *mocks.MockAIUsageRepository
}

func newAnalyzerWithMocks(t *testing.T) (Analyzer, *analyticsMocks) {
	ctrl := gomock.NewController(t)

	m := &analyticsMocks{
		dealRepo:        mocks.NewMockDealRepository(ctrl),
		negotiationRepo: mocks.NewMockNegotiationRepository(ctrl),
		calcRepo:        mocks.NewMockCalculationRepository(ctrl),
		profileRepo:     mocks.NewMockProfileRepository(ctrl),
		narrator:        narratormocks.NewMockNarratorIntegrator(ctrl),
		usageRepo:       mocks.NewMockAIUsageRepository(ctrl),
	}

	cfg := &config.Config{Narrator: config.Narrator{DailyCap: 20}}

	service := NewService(
		m.dealRepo,
		m.negotiationRepo,
		m.calcRepo,
		m.profileRepo,
		m.narrator,
		m.usageRepo,
		cfg,
	)

	return service, m
}

func strPtr(v string) *string { return &v }

func TestService_BuildUserAnalytics(t *testing.T) {
	service, m := newAnalyzerWithMocks(t)

	january := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	march := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)

	m.dealRepo.EXPECT().
		ListByUser(42).
		Return([]*domain.DealContribution{
			{Platform: "youtube", DealType: "integration", TotalFeeUSD: 1000, QuotedFeeUSD: floatPtr(800), NegotiationID: strPtr("neg_1"), CreatedAt: january},
			{Platform: "youtube", DealType: "dedicated_video", TotalFeeUSD: 2000, NegotiationID: strPtr("neg_3"), CreatedAt: march},
			{Platform: "tiktok", DealType: "integration", TotalFeeUSD: 600, QuotedFeeUSD: floatPtr(750), CreatedAt: march},
		}, nil)

	m.negotiationRepo.EXPECT().
		ListByUser(42).
		Return([]*domain.NegotiationSession{
			{ID: "neg_1", Outcome: domain.NegotiationAccepted, BrandOffer: 500, FinalAgreedFeeUSD: floatPtr(600)},
			{ID: "neg_2", Outcome: domain.NegotiationDeclined, BrandOffer: 400},
			{ID: "neg_3", Outcome: domain.NegotiationAccepted, BrandOffer: 1000, FinalAgreedFeeUSD: floatPtr(1100)},
		}, nil)

	analytics, err := service.BuildUserAnalytics(42)

	assert.NoError(t, err)
	require.NotNil(t, analytics)

	assert.Equal(t, 3, analytics.DealsSummary.DealsCount)
	require.NotNil(t, analytics.DealsSummary.TotalRevenue)
	assert.InDelta(t, 3600, *analytics.DealsSummary.TotalRevenue, 0.0001)
	require.NotNil(t, analytics.DealsSummary.AvgDeal)
	assert.InDelta(t, 1200, *analytics.DealsSummary.AvgDeal, 0.0001)
	require.NotNil(t, analytics.DealsSummary.MedianDeal)
	assert.InDelta(t, 1000, *analytics.DealsSummary.MedianDeal, 0.0001)

	// Só dois deals têm orçamento inicial: +25% e -20%
	assert.Equal(t, 2, analytics.DealsSummary.QuotedCount)
	require.NotNil(t, analytics.DealsSummary.AvgCloseVsQuotePct)
	assert.InDelta(t, 2.5, *analytics.DealsSummary.AvgCloseVsQuotePct, 0.0001)

	// Ordenado por contagem, desempate alfabético
	require.Len(t, analytics.PlatformBreakdown, 2)
	assert.Equal(t, "youtube", analytics.PlatformBreakdown[0].Platform)
	assert.Equal(t, 2, analytics.PlatformBreakdown[0].Count)
	require.NotNil(t, analytics.PlatformBreakdown[0].AvgFee)
	assert.InDelta(t, 1500, *analytics.PlatformBreakdown[0].AvgFee, 0.0001)
	assert.Equal(t, "tiktok", analytics.PlatformBreakdown[1].Platform)

	require.Len(t, analytics.DealTypeBreakdown, 2)
	assert.Equal(t, "integration", analytics.DealTypeBreakdown[0].DealType)
	assert.Equal(t, 2, analytics.DealTypeBreakdown[0].Count)

	// Uplift só nas sessões vinculadas a um deal: +20% e +10%
	assert.Equal(t, 3, analytics.NegotiationSummary.NegotiationCount)
	assert.Equal(t, 2, analytics.NegotiationSummary.Outcomes[domain.NegotiationAccepted])
	assert.Equal(t, 1, analytics.NegotiationSummary.Outcomes[domain.NegotiationDeclined])
	require.NotNil(t, analytics.NegotiationSummary.AvgUpliftPct)
	assert.InDelta(t, 15, *analytics.NegotiationSummary.AvgUpliftPct, 0.0001)

	require.Len(t, analytics.MonthlyTrend, 2)
	assert.Equal(t, 1, analytics.MonthlyTrend[0].Month)
	assert.Equal(t, 1, analytics.MonthlyTrend[0].DealCount)
	assert.Equal(t, 3, analytics.MonthlyTrend[1].Month)
	assert.Equal(t, 2, analytics.MonthlyTrend[1].DealCount)
	require.NotNil(t, analytics.MonthlyTrend[1].TotalRevenue)
	assert.InDelta(t, 2600, *analytics.MonthlyTrend[1].TotalRevenue, 0.0001)

	assert.True(t, analytics.Flags.HasDeals)
	assert.True(t, analytics.Flags.HasQuotedVsClosed)
	assert.True(t, analytics.Flags.HasNegotiationUplift)
}

func TestService_BuildUserAnalytics_SessaoFechadaSemDealNaoContaUplift(t *testing.T) {
	service, m := newAnalyzerWithMocks(t)

	// O deal existe mas não carrega vínculo com a negociação
	m.dealRepo.EXPECT().
		ListByUser(42).
		Return([]*domain.DealContribution{
			{Platform: "youtube", DealType: "integration", TotalFeeUSD: 1200},
		}, nil)

	m.negotiationRepo.EXPECT().
		ListByUser(42).
		Return([]*domain.NegotiationSession{
			{ID: "neg_1", Outcome: domain.NegotiationAccepted, BrandOffer: 1000, FinalAgreedFeeUSD: floatPtr(1200)},
		}, nil)

	analytics, err := service.BuildUserAnalytics(42)

	assert.NoError(t, err)
	require.NotNil(t, analytics)
	assert.Equal(t, 1, analytics.NegotiationSummary.NegotiationCount)
	assert.Equal(t, 1, analytics.NegotiationSummary.Outcomes[domain.NegotiationAccepted])
	assert.Nil(t, analytics.NegotiationSummary.AvgUpliftPct)
	assert.Nil(t, analytics.NegotiationSummary.MedianUpliftPct)
	assert.False(t, analytics.Flags.HasNegotiationUplift)
}

func TestService_BuildUserAnalytics_SemHistorico(t *testing.T) {
	service, m := newAnalyzerWithMocks(t)

	m.dealRepo.EXPECT().ListByUser(42).Return(nil, nil)
	m.negotiationRepo.EXPECT().ListByUser(42).Return(nil, nil)

	analytics, err := service.BuildUserAnalytics(42)

	assert.NoError(t, err)
	require.NotNil(t, analytics)
	assert.Equal(t, 0, analytics.DealsSummary.DealsCount)
	assert.Nil(t, analytics.DealsSummary.TotalRevenue)
	assert.Empty(t, analytics.PlatformBreakdown)
	assert.Empty(t, analytics.MonthlyTrend)
	assert.False(t, analytics.Flags.HasDeals)
	assert.False(t, analytics.Flags.HasQuotedVsClosed)
	assert.False(t, analytics.Flags.HasNegotiationUplift)
}

func expectStatsSources(m *analyticsMocks, deals []*domain.DealContribution, negotiations []*domain.NegotiationSession, calcs []*domain.Calculation) {
	m.dealRepo.EXPECT().ListByUser(42).Return(deals, nil)
	m.negotiationRepo.EXPECT().ListByUser(42).Return(negotiations, nil)
	m.calcRepo.EXPECT().ListByUser(42, uint64(0)).Return(calcs, nil)
	m.profileRepo.EXPECT().GetByUserID(42).Return(&domain.CreatorProfile{
		UserID:          42,
		DisplayName:     "Ana",
		PrimaryPlatform: "youtube",
		Niche:           "finance",
		Followers:       int64Ptr(60000),
	}, nil)
}

func TestService_BuildCreatorInsights(t *testing.T) {
	service, m := newAnalyzerWithMocks(t)

	deals := []*domain.DealContribution{
		{Platform: "youtube", TotalFeeUSD: 1000, ReportedViews: int64Ptr(50000)},
		{Platform: "youtube", TotalFeeUSD: 1500},
	}
	negotiations := []*domain.NegotiationSession{
		{BrandOffer: 500, OfferVsMarketPct: floatPtr(-20), CounterMin: floatPtr(700)},
	}
	calcs := []*domain.Calculation{
		{Platform: "youtube", Niche: "finance", RecommendedMin: 800, RecommendedMax: 1200},
		{Platform: "youtube", Niche: "finance", RecommendedMin: 1000, RecommendedMax: 1400},
		{Platform: "tiktok", Niche: "beauty", RecommendedMin: 300, RecommendedMax: 500},
	}

	expectStatsSources(m, deals, negotiations, calcs)

	m.narrator.EXPECT().Enabled().Return(true)
	m.usageRepo.EXPECT().CountForDay(42, gomock.Any()).Return(1, nil)
	m.usageRepo.EXPECT().Increment(42, gomock.Any()).Return(nil)
	m.narrator.EXPECT().
		NarrateCreatorInsights(gomock.Any()).
		DoAndReturn(func(creatorStats domain.CreatorStats) (string, error) {
			require.NotNil(t, creatorStats.Profile)
			assert.Equal(t, "Ana", creatorStats.Profile.DisplayName)

			assert.Equal(t, 2, creatorStats.DealSummary.TotalDeals)
			require.NotNil(t, creatorStats.DealSummary.AvgCPM)
			// Só o deal com views entra no CPM: 1000/50000*1000
			assert.InDelta(t, 20, *creatorStats.DealSummary.AvgCPM, 0.0001)

			assert.Equal(t, 1, creatorStats.NegotiationSummary.TotalNegotiations)
			assert.Equal(t, 1, creatorStats.NegotiationSummary.CounterAboveOfferQty)

			assert.Equal(t, 3, creatorStats.CalculatorSummary.TotalCalculations)
			typical := creatorStats.CalculatorSummary.TypicalRange
			require.NotNil(t, typical)
			assert.Equal(t, "youtube", typical.Platform)
			assert.Equal(t, "finance", typical.Niche)
			require.NotNil(t, typical.AvgMin)
			assert.InDelta(t, 900, *typical.AvgMin, 0.0001)
			require.NotNil(t, typical.AvgMax)
			assert.InDelta(t, 1300, *typical.AvgMax, 0.0001)

			assert.Equal(t, 6, creatorStats.DataRichness.TotalSignals)

			return "You close deals above your counter floor.", nil
		})

	insights, err := service.BuildCreatorInsights(42)

	assert.NoError(t, err)
	require.NotNil(t, insights)
	assert.Equal(t, domain.InsightStatusOK, insights.Status)
	require.NotNil(t, insights.InsightsText)
	assert.Equal(t, "You close deals above your counter floor.", *insights.InsightsText)
}

func TestService_BuildCreatorInsights_PoucosSinais(t *testing.T) {
	service, m := newAnalyzerWithMocks(t)

	expectStatsSources(m,
		[]*domain.DealContribution{{Platform: "youtube", TotalFeeUSD: 1000}},
		nil,
		[]*domain.Calculation{{Platform: "youtube", Niche: "finance"}},
	)

	insights, err := service.BuildCreatorInsights(42)

	assert.NoError(t, err)
	require.NotNil(t, insights)
	assert.Equal(t, domain.InsightStatusNoData, insights.Status)
	assert.Equal(t, "Add a few deals, negotiations or calculations to unlock insights", insights.Message)
	assert.Nil(t, insights.InsightsText)

	// Os números crus saem mesmo sem narração
	assert.Equal(t, 2, insights.Stats.DataRichness.TotalSignals)
	assert.True(t, insights.Stats.DataRichness.HasAnyDeals)
	assert.False(t, insights.Stats.DataRichness.HasAnyNegotiations)
}

func TestService_BuildCreatorInsights_NarradorIndisponivel(t *testing.T) {
	deals := []*domain.DealContribution{
		{Platform: "youtube", TotalFeeUSD: 1000},
		{Platform: "youtube", TotalFeeUSD: 1200},
		{Platform: "tiktok", TotalFeeUSD: 300},
	}

	tests := []struct {
		name  string
		setup func(m *analyticsMocks)
	}{
		{
			name: "Narrador desabilitado",
			setup: func(m *analyticsMocks) {
				m.narrator.EXPECT().Enabled().Return(false)
			},
		},
		{
			name: "Teto diário atingido",
			setup: func(m *analyticsMocks) {
				m.narrator.EXPECT().Enabled().Return(true)
				m.usageRepo.EXPECT().CountForDay(42, gomock.Any()).Return(20, nil)
			},
		},
		{
			name: "Falha ao registrar o uso",
			setup: func(m *analyticsMocks) {
				m.narrator.EXPECT().Enabled().Return(true)
				m.usageRepo.EXPECT().CountForDay(42, gomock.Any()).Return(0, nil)
				m.usageRepo.EXPECT().Increment(42, gomock.Any()).Return(assert.AnError)
			},
		},
		{
			name: "Narrador responde com erro",
			setup: func(m *analyticsMocks) {
				m.narrator.EXPECT().Enabled().Return(true)
				m.usageRepo.EXPECT().CountForDay(42, gomock.Any()).Return(0, nil)
				m.usageRepo.EXPECT().Increment(42, gomock.Any()).Return(nil)
				m.narrator.EXPECT().NarrateCreatorInsights(gomock.Any()).Return("", assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newAnalyzerWithMocks(t)
			expectStatsSources(m, deals, nil, nil)
			tt.setup(m)

			insights, err := service.BuildCreatorInsights(42)

			assert.NoError(t, err)
			require.NotNil(t, insights)
			assert.Equal(t, domain.InsightStatusUnavailable, insights.Status)
			assert.Equal(t, "Insights are temporarily unavailable, try again later", insights.Message)
			assert.Nil(t, insights.InsightsText)
		})
	}
}
