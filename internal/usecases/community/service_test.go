package community

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creator-pricing-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creator-pricing-api/internal/config"
	"github.com/vfg2006/creator-pricing-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func int64Ptr(v int64) *int64     { return &v }
func floatPtr(v float64) *float64 { return &v }

func newServiceWithMocks(t *testing.T) (CommunityPricer, *mocks.MockDealRepository) {
	ctrl := gomock.NewController(t)
	dealRepo := mocks.NewMockDealRepository(ctrl)

	cfg := &config.Config{Pricing: config.Pricing{MinCohortDeals: 5}}

	return NewService(dealRepo, cfg), dealRepo
}

func pooledDeals(fees ...float64) []*domain.DealContribution {
	deals := make([]*domain.DealContribution, 0, len(fees))
	for _, fee := range fees {
		deals = append(deals, &domain.DealContribution{TotalFeeUSD: fee, ShareInPool: true})
	}
	return deals
}

func TestService_CohortPricing(t *testing.T) {
	cohort := domain.Cohort{
		Platform:     "youtube",
		Niche:        "finance",
		FollowerTier: "10k_25k",
		GeoRegion:    "us",
	}

	tests := []struct {
		name    string
		setup   func(dealRepo *mocks.MockDealRepository)
		want    *domain.CohortPricing
		wantErr bool
	}{
		{
			name: "Cohort com sinal suficiente resume os fees",
			setup: func(dealRepo *mocks.MockDealRepository) {
				dealRepo.EXPECT().
					ListByFilters(gomock.Any()).
					DoAndReturn(func(filters domain.DealFilters) ([]*domain.DealContribution, error) {
						assert.True(t, filters.SharedOnly)
						require.NotNil(t, filters.Platform)
						assert.Equal(t, "youtube", *filters.Platform)
						require.NotNil(t, filters.GeoRegion)
						assert.Equal(t, "us", *filters.GeoRegion)

						return pooledDeals(400, 600, 800, 1000, 1200, 1400), nil
					})
			},
			want: &domain.CohortPricing{
				DealCount: 6,
				AvgFee:    floatPtr(800),
				MedianFee: floatPtr(800),
				MinFee:    floatPtr(400),
				MaxFee:    floatPtr(1400),
			},
		},
		{
			name: "Abaixo do mínimo de deals retorna nil sem erro",
			setup: func(dealRepo *mocks.MockDealRepository) {
				dealRepo.EXPECT().
					ListByFilters(gomock.Any()).
					Return(pooledDeals(400, 600, 800, 1000), nil)
			},
			want: nil,
		},
		{
			name: "Fees não positivos não contam para o mínimo",
			setup: func(dealRepo *mocks.MockDealRepository) {
				dealRepo.EXPECT().
					ListByFilters(gomock.Any()).
					Return(pooledDeals(0, 0, 400, 600, 800, 1000), nil)
			},
			want: nil,
		},
		{
			name: "Erro do repositório é propagado",
			setup: func(dealRepo *mocks.MockDealRepository) {
				dealRepo.EXPECT().
					ListByFilters(gomock.Any()).
					Return(nil, errors.New("conexão recusada"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, dealRepo := newServiceWithMocks(t)
			tt.setup(dealRepo)

			pricing, err := service.CohortPricing(cohort)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, pricing)
		})
	}
}

func TestService_CohortPricing_RegiaoOtherNaoFiltraGeo(t *testing.T) {
	service, dealRepo := newServiceWithMocks(t)

	dealRepo.EXPECT().
		ListByFilters(gomock.Any()).
		DoAndReturn(func(filters domain.DealFilters) ([]*domain.DealContribution, error) {
			assert.Nil(t, filters.GeoRegion)
			return nil, nil
		})

	pricing, err := service.CohortPricing(domain.Cohort{
		Platform:     "tiktok",
		Niche:        "beauty",
		FollowerTier: "under_5k",
		GeoRegion:    "other",
	})

	assert.NoError(t, err)
	assert.Nil(t, pricing)
}

func TestService_SubmitDeal(t *testing.T) {
	tests := []struct {
		name    string
		request SubmitDealRequest
		setup   func(dealRepo *mocks.MockDealRepository)
		wantErr error
	}{
		{
			name: "Deal válido é normalizado e salvo",
			request: SubmitDealRequest{
				Platform:      "YouTube",
				Niche:         "Finance",
				DealType:      "integration",
				ContentFormat: "video",
				GeoRegion:     "US",
				Followers:     30000,
				TotalFeeUSD:   1200,
				QuotedFeeUSD:  floatPtr(1500),
				ReportedViews: int64Ptr(25000),
				ShareInPool:   true,
			},
			setup: func(dealRepo *mocks.MockDealRepository) {
				dealRepo.EXPECT().
					Save(gomock.Any()).
					DoAndReturn(func(deal *domain.DealContribution) (*domain.DealContribution, error) {
						assert.Equal(t, 42, deal.UserID)
						assert.Equal(t, "youtube", deal.Platform)
						assert.Equal(t, "finance", deal.Niche)
						assert.Equal(t, "us", deal.GeoRegion)
						assert.Equal(t, "25k_50k", deal.FollowerTier)
						assert.True(t, deal.ShareInPool)

						saved := *deal
						saved.ID = "deal_1"
						return &saved, nil
					})
			},
		},
		{
			name:    "Fee zero é rejeitado",
			request: SubmitDealRequest{Niche: "finance", TotalFeeUSD: 0},
			setup:   func(dealRepo *mocks.MockDealRepository) {},
			wantErr: ErrInvalidFee,
		},
		{
			name:    "Nicho ausente é rejeitado",
			request: SubmitDealRequest{TotalFeeUSD: 500},
			setup:   func(dealRepo *mocks.MockDealRepository) {},
			wantErr: ErrMissingNiche,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, dealRepo := newServiceWithMocks(t)
			tt.setup(dealRepo)

			deal, err := service.SubmitDeal(42, tt.request)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, deal)
				return
			}

			assert.NoError(t, err)
			require.NotNil(t, deal)
			assert.Equal(t, "deal_1", deal.ID)
		})
	}
}

func TestService_ListDeals(t *testing.T) {
	from := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Sem filtros usa a listagem direta por usuário", func(t *testing.T) {
		service, dealRepo := newServiceWithMocks(t)

		dealRepo.EXPECT().
			ListByUser(42).
			Return(pooledDeals(500), nil)

		deals, err := service.ListDeals(42, DealListFilters{})

		assert.NoError(t, err)
		assert.Len(t, deals, 1)
	})

	t.Run("Com filtros consulta por critérios", func(t *testing.T) {
		service, dealRepo := newServiceWithMocks(t)

		dealRepo.EXPECT().
			ListByFilters(gomock.Any()).
			DoAndReturn(func(filters domain.DealFilters) ([]*domain.DealContribution, error) {
				require.NotNil(t, filters.UserID)
				assert.Equal(t, 42, *filters.UserID)
				require.NotNil(t, filters.CreatedFrom)
				assert.Equal(t, from, *filters.CreatedFrom)
				require.NotNil(t, filters.MinFee)
				assert.Equal(t, 100.0, *filters.MinFee)
				assert.False(t, filters.SharedOnly)

				return pooledDeals(500, 800), nil
			})

		deals, err := service.ListDeals(42, DealListFilters{CreatedFrom: &from, MinFee: floatPtr(100)})

		assert.NoError(t, err)
		assert.Len(t, deals, 2)
	})
}

func TestService_DeleteDeal(t *testing.T) {
	t.Run("Deal do usuário é removido", func(t *testing.T) {
		service, dealRepo := newServiceWithMocks(t)

		dealRepo.EXPECT().GetByID("deal_1", 42).Return(&domain.DealContribution{ID: "deal_1", UserID: 42}, nil)
		dealRepo.EXPECT().Delete("deal_1", 42).Return(nil)

		assert.NoError(t, service.DeleteDeal("deal_1", 42))
	})

	t.Run("Deal inexistente ou de outro usuário", func(t *testing.T) {
		service, dealRepo := newServiceWithMocks(t)

		dealRepo.EXPECT().GetByID("deal_9", 42).Return(nil, nil)

		assert.ErrorIs(t, service.DeleteDeal("deal_9", 42), ErrDealNotFound)
	})
}
