// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-pricing-api/infrastructure/repository"
	"github.com/vfg2006/creator-pricing-api/internal/config"
	"github.com/vfg2006/creator-pricing-api/internal/domain"
	"github.com/vfg2006/creator-pricing-api/internal/usecases/community"
)

type CohortSnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// CohortSnapshotSyncService materializa os resumos de preço por cohort
// do pool comunitário em uma tabela de snapshots, para leitura rápida
// no dashboard sem recalcular sobre os deals a cada request.
type CohortSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	communityService    community.CommunityPricer
	snapshotRepo        repository.CohortSnapshotRepository
	config              CohortSnapshotSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewCohortSnapshotSyncService(
	communityService community.CommunityPricer,
	snapshotRepo repository.CohortSnapshotRepository,
	cfg *config.Config,
) *CohortSnapshotSyncService {
	syncConfig := CohortSnapshotSyncConfig{
		CronSchedule: cfg.CohortSnapshotSync.CronSchedule, // Default: 6h da manhã todos os dias
		SyncEnabled:  cfg.CohortSnapshotSync.SyncEnabled,  // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador de snapshots de cohort carregada")

	return &CohortSnapshotSyncService{
		scheduler:        scheduler,
		communityService: communityService,
		snapshotRepo:     snapshotRepo,
		config:           syncConfig,
	}
}

func (s *CohortSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de snapshots de cohort desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshots de cohort")

	// Agendar a materialização dos snapshots de cohort
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateCohortSnapshots(); err != nil {
			logrus.WithError(err).Error("Erro na atualização dos snapshots de cohort")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots de cohort: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshots de cohort")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *CohortSnapshotSyncService) UpdateCohortSnapshots() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Sincronização de snapshots de cohort já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando atualização dos snapshots de cohort")

	cohorts, err := s.snapshotRepo.ListDistinctCohorts()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar cohorts com deals compartilhados")
		return err
	}

	if len(cohorts) == 0 {
		logrus.Info("Nenhum cohort com deals compartilhados para materializar")
		return nil
	}

	snapshots := s.buildSnapshots(cohorts)

	if len(snapshots) == 0 {
		logrus.Info("Nenhum cohort atingiu o mínimo de deals para snapshot")
		return nil
	}

	if err := s.snapshotRepo.SaveOrUpdate(snapshots); err != nil {
		logrus.WithError(err).Error("Erro ao salvar snapshots de cohort")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"cohorts":   len(cohorts),
		"snapshots": len(snapshots),
	}).Info("Atualização dos snapshots de cohort concluída")

	return nil
}

// buildSnapshots calcula o resumo de cada cohort; cohorts abaixo do
// mínimo de deals retornam resumo nulo e ficam fora do lote.
func (s *CohortSnapshotSyncService) buildSnapshots(cohorts []domain.Cohort) []*domain.CohortPricingSnapshot {
	snapshots := make([]*domain.CohortPricingSnapshot, 0, len(cohorts))

	for _, cohort := range cohorts {
		pricing, err := s.communityService.CohortPricing(cohort)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"platform": cohort.Platform,
				"niche":    cohort.Niche,
			}).Error("Erro ao calcular preços do cohort")
			continue
		}

		if pricing == nil {
			continue
		}

		snapshots = append(snapshots, &domain.CohortPricingSnapshot{
			Cohort:  cohort,
			Pricing: *pricing,
		})
	}

	return snapshots
}

// TriggerManualSync inicia manualmente uma sincronização de snapshots de cohort
func (s *CohortSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots de cohort já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de snapshots de cohort")
	go s.UpdateCohortSnapshots()
}

// GetStatus retorna o status atual do agendador
func (s *CohortSnapshotSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
