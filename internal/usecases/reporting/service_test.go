package reporting

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

func int64Ptr(v int64) *int64 { return &v }

func TestQuarterWindowFor(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		quarter   int
		wantStart time.Time
		wantEnd   time.Time
		wantErr   string
	}{
		{
			name:      "Q1 cobre janeiro a março",
			year:      2025,
			quarter:   1,
			wantStart: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "Q4 cobre outubro a dezembro",
			year:      2024,
			quarter:   4,
			wantStart: time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "Q1 em ano bissexto inclui 29 de fevereiro",
			year:      2024,
			quarter:   1,
			wantStart: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:    "Trimestre zero é rejeitado",
			year:    2025,
			quarter: 0,
			wantErr: "trimestre inválido: 0 (esperado 1 a 4)",
		},
		{
			name:    "Trimestre cinco é rejeitado",
			year:    2025,
			quarter: 5,
			wantErr: "trimestre inválido: 5 (esperado 1 a 4)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, err := QuarterWindowFor(tt.year, tt.quarter)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidQuarter)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStart, window.Start)
			assert.Equal(t, tt.wantEnd, window.End)
		})
	}
}

func TestPreviousQuarter(t *testing.T) {
	tests := []struct {
		name        string
		year        int
		quarter     int
		wantYear    int
		wantQuarter int
	}{
		{name: "Q1 retrocede para Q4 do ano anterior", year: 2025, quarter: 1, wantYear: 2024, wantQuarter: 4},
		{name: "Q2 retrocede para Q1", year: 2025, quarter: 2, wantYear: 2025, wantQuarter: 1},
		{name: "Q4 retrocede para Q3", year: 2025, quarter: 4, wantYear: 2025, wantQuarter: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, quarter := PreviousQuarter(tt.year, tt.quarter)

			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantQuarter, quarter)
		})
	}
}

type reporterMocks struct {
	dealRepo  *mocks.MockDealRepository
	narrator  *narratormocks.MockNarratorIntegrator
	usageRepo *mocks.MockAIUsageRepository
}

func newReporterWithMocks(t *testing.T) (Reporter, *reporterMocks) {
	ctrl := gomock.NewController(t)

	m := &reporterMocks{
		dealRepo:  mocks.NewMockDealRepository(ctrl),
		narrator:  narratormocks.NewMockNarratorIntegrator(ctrl),
		usageRepo: mocks.NewMockAIUsageRepository(ctrl),
	}

	cfg := &config.Config{
		Pricing:  config.Pricing{MinDealsForReport: 5},
		Narrator: config.Narrator{DailyCap: 20},
	}

	return NewService(m.dealRepo, m.narrator, m.usageRepo, cfg), m
}

func sharedDeals(fees ...float64) []*domain.DealContribution {
	deals := make([]*domain.DealContribution, 0, len(fees))
	for _, fee := range fees {
		deals = append(deals, &domain.DealContribution{
			TotalFeeUSD:   fee,
			ReportedViews: int64Ptr(10000),
		})
	}
	return deals
}

func TestService_BuildReport(t *testing.T) {
	service, m := newReporterWithMocks(t)

	// Trimestre pedido com sinal, anterior vazio
	m.dealRepo.EXPECT().
		ListByFilters(gomock.Any()).
		DoAndReturn(func(filters domain.DealFilters) ([]*domain.DealContribution, error) {
			assert.True(t, filters.SharedOnly)
			require.NotNil(t, filters.Niche)
			assert.Equal(t, "finance", *filters.Niche)
			require.NotNil(t, filters.Platform)
			assert.Equal(t, "youtube", *filters.Platform)
			require.NotNil(t, filters.CreatedFrom)
			assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), *filters.CreatedFrom)

			return sharedDeals(500, 700, 900, 1100, 1300), nil
		})

	m.dealRepo.EXPECT().
		ListByFilters(gomock.Any()).
		DoAndReturn(func(filters domain.DealFilters) ([]*domain.DealContribution, error) {
			require.NotNil(t, filters.CreatedFrom)
			assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), *filters.CreatedFrom)

			return nil, nil
		})

	m.narrator.EXPECT().Enabled().Return(true)
	m.usageRepo.EXPECT().CountForDay(42, gomock.Any()).Return(0, nil)
	m.usageRepo.EXPECT().Increment(42, gomock.Any()).Return(nil)
	m.narrator.EXPECT().
		NarrateNicheReport(gomock.Any()).
		Return("Fees in finance held steady this quarter.", nil)

	report, err := service.BuildReport(42, "finance", "youtube", 2025, 2)

	assert.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, "finance", report.Niche)
	assert.Equal(t, "youtube", report.Platform)
	assert.True(t, report.EnoughDataForReport)

	// n=5 apara por índice para [500,700,900,1100]
	assert.Equal(t, 5, report.Current.DealCount)
	require.NotNil(t, report.Current.AvgFee)
	assert.InDelta(t, 800, *report.Current.AvgFee, 0.0001)
	require.NotNil(t, report.Current.MedianFee)
	assert.InDelta(t, 800, *report.Current.MedianFee, 0.0001)

	require.NotNil(t, report.Previous)
	assert.Equal(t, 0, report.Previous.DealCount)
	assert.Nil(t, report.Previous.AvgFee)

	assert.Equal(t, domain.InsightStatusOK, report.NarrativeStatus)
	require.NotNil(t, report.Narrative)
	assert.Equal(t, "Fees in finance held steady this quarter.", *report.Narrative)
}

func TestService_BuildReport_PoucosDealsNaoExpoeMedias(t *testing.T) {
	service, m := newReporterWithMocks(t)

	m.dealRepo.EXPECT().
		ListByFilters(gomock.Any()).
		DoAndReturn(func(filters domain.DealFilters) ([]*domain.DealContribution, error) {
			// Sem filtro de plataforma quando o relatório é de todas
			assert.Nil(t, filters.Platform)
			return sharedDeals(500, 900, 1300), nil
		})

	m.dealRepo.EXPECT().
		ListByFilters(gomock.Any()).
		Return(nil, nil)

	report, err := service.BuildReport(42, "finance", "all", 2025, 3)

	assert.NoError(t, err)
	require.NotNil(t, report)
	assert.False(t, report.EnoughDataForReport)
	assert.Equal(t, domain.InsightStatusNoData, report.NarrativeStatus)
	assert.Nil(t, report.Narrative)

	// Count e extremos brutos saem mesmo abaixo do mínimo
	assert.Equal(t, 3, report.Current.DealCount)
	require.NotNil(t, report.Current.MinFee)
	assert.Equal(t, 500.0, *report.Current.MinFee)
	require.NotNil(t, report.Current.MaxFee)
	assert.Equal(t, 1300.0, *report.Current.MaxFee)
	assert.Nil(t, report.Current.AvgFee)
	assert.Nil(t, report.Current.MedianFee)
	assert.Nil(t, report.Current.AvgCPM)
}

func TestService_BuildReport_TrimestreInvalido(t *testing.T) {
	service, _ := newReporterWithMocks(t)

	report, err := service.BuildReport(42, "finance", "all", 2025, 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidQuarter)
	assert.Nil(t, report)
}

func TestService_BuildReport_NarradorIndisponivel(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *reporterMocks)
	}{
		{
			name: "Narrador desabilitado",
			setup: func(m *reporterMocks) {
				m.narrator.EXPECT().Enabled().Return(false)
			},
		},
		{
			name: "Teto diário de uso atingido",
			setup: func(m *reporterMocks) {
				m.narrator.EXPECT().Enabled().Return(true)
				m.usageRepo.EXPECT().CountForDay(42, gomock.Any()).Return(20, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newReporterWithMocks(t)

			m.dealRepo.EXPECT().
				ListByFilters(gomock.Any()).
				Return(sharedDeals(500, 700, 900, 1100, 1300), nil).
				Times(2)

			tt.setup(m)

			report, err := service.BuildReport(42, "finance", "all", 2025, 2)

			assert.NoError(t, err)
			require.NotNil(t, report)
			assert.Equal(t, domain.InsightStatusUnavailable, report.NarrativeStatus)
			assert.Nil(t, report.Narrative)
		})
	}
}
