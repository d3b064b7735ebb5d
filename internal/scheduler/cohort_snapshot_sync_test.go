package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creator-pricing-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creator-pricing-api/internal/domain"
	communitymocks "github.com/vfg2006/creator-pricing-api/internal/usecases/community/mocks"
	"go.uber.org/mock/gomock"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestCohortSnapshotSyncService_UpdateCohortSnapshots(t *testing.T) {
	cohortA := domain.Cohort{Platform: "youtube", Niche: "finance", FollowerTier: "mid", GeoRegion: "us"}
	cohortB := domain.Cohort{Platform: "tiktok", Niche: "beauty", FollowerTier: "micro", GeoRegion: "other"}

	pricingA := &domain.CohortPricing{
		DealCount: 8,
		AvgFee:    floatPtr(1200),
		MedianFee: floatPtr(1100),
		MinFee:    floatPtr(600),
		MaxFee:    floatPtr(2000),
	}

	tests := []struct {
		name    string
		setup   func(communityService *communitymocks.MockCommunityPricer, snapshotRepo *mocks.MockCohortSnapshotRepository)
		wantErr bool
	}{
		{
			name: "Materializa apenas cohorts com resumo disponível",
			setup: func(communityService *communitymocks.MockCommunityPricer, snapshotRepo *mocks.MockCohortSnapshotRepository) {
				snapshotRepo.EXPECT().
					ListDistinctCohorts().
					Return([]domain.Cohort{cohortA, cohortB}, nil)

				communityService.EXPECT().
					CohortPricing(cohortA).
					Return(pricingA, nil)

				// Cohort abaixo do mínimo de deals: resumo nulo, fica fora do lote
				communityService.EXPECT().
					CohortPricing(cohortB).
					Return(nil, nil)

				snapshotRepo.EXPECT().
					SaveOrUpdate(gomock.Len(1)).
					DoAndReturn(func(snapshots []*domain.CohortPricingSnapshot) error {
						assert.Equal(t, cohortA, snapshots[0].Cohort)
						assert.Equal(t, 8, snapshots[0].Pricing.DealCount)
						return nil
					})
			},
		},
		{
			name: "Nenhum cohort com deals compartilhados",
			setup: func(communityService *communitymocks.MockCommunityPricer, snapshotRepo *mocks.MockCohortSnapshotRepository) {
				snapshotRepo.EXPECT().
					ListDistinctCohorts().
					Return([]domain.Cohort{}, nil)
			},
		},
		{
			name: "Erro em um cohort não interrompe os demais",
			setup: func(communityService *communitymocks.MockCommunityPricer, snapshotRepo *mocks.MockCohortSnapshotRepository) {
				snapshotRepo.EXPECT().
					ListDistinctCohorts().
					Return([]domain.Cohort{cohortA, cohortB}, nil)

				communityService.EXPECT().
					CohortPricing(cohortA).
					Return(nil, errors.New("erro de banco"))

				communityService.EXPECT().
					CohortPricing(cohortB).
					Return(pricingA, nil)

				snapshotRepo.EXPECT().
					SaveOrUpdate(gomock.Len(1)).
					Return(nil)
			},
		},
		{
			name: "Erro ao listar cohorts interrompe a sincronização",
			setup: func(communityService *communitymocks.MockCommunityPricer, snapshotRepo *mocks.MockCohortSnapshotRepository) {
				snapshotRepo.EXPECT().
					ListDistinctCohorts().
					Return(nil, errors.New("erro de banco"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCommunityService := communitymocks.NewMockCommunityPricer(ctrl)
			mockSnapshotRepo := mocks.NewMockCohortSnapshotRepository(ctrl)

			service := &CohortSnapshotSyncService{
				communityService: mockCommunityService,
				snapshotRepo:     mockSnapshotRepo,
			}

			tt.setup(mockCommunityService, mockSnapshotRepo)

			err := service.UpdateCohortSnapshots()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCohortSnapshotSyncService_SyncAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCommunityService := communitymocks.NewMockCommunityPricer(ctrl)
	mockSnapshotRepo := mocks.NewMockCohortSnapshotRepository(ctrl)

	service := &CohortSnapshotSyncService{
		communityService: mockCommunityService,
		snapshotRepo:     mockSnapshotRepo,
		syncRunning:      true,
	}

	// Nenhuma chamada aos mocks é esperada quando a sincronização já roda
	err := service.UpdateCohortSnapshots()
	assert.NoError(t, err)
}
