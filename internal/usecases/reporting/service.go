// Package reporting monta os relatórios trimestrais de nicho a partir do
// pool compartilhado, comparando o trimestre pedido com o anterior.
package reporting

import (
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/creator-pricing-api/infrastructure/integrator/narrator"
	"github.com/vfg2006/creator-pricing-api/infrastructure/repository"
	"github.com/vfg2006/creator-pricing-api/internal/catalog"
	"github.com/vfg2006/creator-pricing-api/internal/config"
	"github.com/vfg2006/creator-pricing-api/internal/domain"
	"github.com/vfg2006/creator-pricing-api/internal/stats"
	"github.com/vfg2006/creator-pricing-api/pkg/log"
)

const defaultMinDealsForReport = 5

// PlatformAll desativa o filtro de plataforma no relatório.
const PlatformAll = "all"

var ErrInvalidQuarter = errors.New("trimestre inválido")

type Reporter interface {
	BuildReport(userID int, niche, platform string, year, quarter int) (*domain.QuarterlyNicheReport, error)
}

type Service struct {
	dealRepo    repository.DealRepository
	narratorSvc narrator.NarratorIntegrator
	usageRepo   repository.AIUsageRepository
	cfg         *config.Config
	minDeals    int
}

func NewService(
	dealRepo repository.DealRepository,
	narratorSvc narrator.NarratorIntegrator,
	usageRepo repository.AIUsageRepository,
	cfg *config.Config,
) Reporter {
	minDeals := cfg.Pricing.MinDealsForReport
	if minDeals <= 0 {
		minDeals = defaultMinDealsForReport
	}

	return &Service{
		dealRepo:    dealRepo,
		narratorSvc: narratorSvc,
		usageRepo:   usageRepo,
		cfg:         cfg,
		minDeals:    minDeals,
	}
}

// QuarterWindowFor delimita o trimestre-calendário. O fim é inclusivo no
// último segundo do último dia do trimestre.
func QuarterWindowFor(year, quarter int) (domain.QuarterWindow, error) {
	if quarter < 1 || quarter > 4 {
		return domain.QuarterWindow{}, fmt.Errorf("%w: %d (esperado 1 a 4)", ErrInvalidQuarter, quarter)
	}

	startMonth := time.Month((quarter-1)*3 + 1)
	start := time.Date(year, startMonth, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, 0).Add(-time.Second)

	return domain.QuarterWindow{
		Year:    year,
		Quarter: quarter,
		Start:   start,
		End:     end,
	}, nil
}

// PreviousQuarter retorna o trimestre imediatamente anterior, com
// retrocesso de ano em Q1.
func PreviousQuarter(year, quarter int) (int, int) {
	if quarter == 1 {
		return year - 1, 4
	}
	return year, quarter - 1
}

func (s *Service) BuildReport(userID int, niche, platform string, year, quarter int) (*domain.QuarterlyNicheReport, error) {
	window, err := QuarterWindowFor(year, quarter)
	if err != nil {
		return nil, err
	}

	normalizedNiche := catalog.NormalizeNiche(niche)

	normalizedPlatform := PlatformAll
	if platform != "" && platform != PlatformAll {
		normalizedPlatform = catalog.NormalizePlatform(platform)
	}

	current, err := s.quarterStats(normalizedNiche, normalizedPlatform, window)
	if err != nil {
		return nil, err
	}

	prevYear, prevQuarter := PreviousQuarter(year, quarter)
	prevWindow, err := QuarterWindowFor(prevYear, prevQuarter)
	if err != nil {
		return nil, err
	}

	previous, err := s.quarterStats(normalizedNiche, normalizedPlatform, prevWindow)
	if err != nil {
		return nil, err
	}

	report := &domain.QuarterlyNicheReport{
		Niche:               normalizedNiche,
		Platform:            normalizedPlatform,
		Current:             *current,
		Previous:            previous,
		EnoughDataForReport: current.DealCount >= s.minDeals,
		MinDealsForReport:   s.minDeals,
	}

	s.attachNarrative(userID, report)

	return report, nil
}

// quarterStats resume os deals compartilhados do nicho na janela. Abaixo
// do mínimo de deals, avg/median (fee e CPM) ficam nulos, mas count e os
// extremos brutos são reportados mesmo assim.
func (s *Service) quarterStats(niche, platform string, window domain.QuarterWindow) (*domain.QuarterStats, error) {
	filters := domain.DealFilters{
		SharedOnly:  true,
		Niche:       &niche,
		CreatedFrom: &window.Start,
		CreatedTo:   &window.End,
	}

	if platform != PlatformAll {
		filters.Platform = &platform
	}

	deals, err := s.dealRepo.ListByFilters(filters)
	if err != nil {
		return nil, err
	}

	result := &domain.QuarterStats{
		Year:      window.Year,
		Quarter:   window.Quarter,
		DealCount: len(deals),
	}

	if len(deals) == 0 {
		return result, nil
	}

	fees := make([]float64, 0, len(deals))
	feePtrs := make([]*float64, 0, len(deals))
	views := make([]*int64, 0, len(deals))

	for _, deal := range deals {
		fees = append(fees, deal.TotalFeeUSD)

		fee := deal.TotalFeeUSD
		feePtrs = append(feePtrs, &fee)
		views = append(views, deal.ReportedViews)
	}

	feeSummary := stats.Summarize(fees)
	result.MinFee = feeSummary.Min
	result.MaxFee = feeSummary.Max

	if result.DealCount < s.minDeals {
		return result, nil
	}

	result.AvgFee = feeSummary.Avg
	result.MedianFee = feeSummary.Median

	cpmSummary := stats.SummarizeCPM(feePtrs, views)
	result.AvgCPM = cpmSummary.Avg
	result.MedianCPM = cpmSummary.Median

	return result, nil
}

// attachNarrative pede a prosa do relatório ao narrador quando a janela
// atual tem sinal suficiente. Melhor-esforço, nunca derruba o relatório.
func (s *Service) attachNarrative(userID int, report *domain.QuarterlyNicheReport) {
	if !report.EnoughDataForReport {
		report.NarrativeStatus = domain.InsightStatusNoData
		return
	}

	if s.narratorSvc == nil || !s.narratorSvc.Enabled() {
		report.NarrativeStatus = domain.InsightStatusUnavailable
		return
	}

	today := time.Now().UTC()

	used, err := s.usageRepo.CountForDay(userID, today)
	if err != nil || used >= s.cfg.Narrator.DailyCap {
		report.NarrativeStatus = domain.InsightStatusUnavailable
		return
	}

	if err := s.usageRepo.Increment(userID, today); err != nil {
		report.NarrativeStatus = domain.InsightStatusUnavailable
		return
	}

	narrative, err := s.narratorSvc.NarrateNicheReport(report)
	if err != nil {
		log.L.WithField("niche", report.Niche).WithError(err).Warn("Erro ao narrar relatório trimestral")
		report.NarrativeStatus = domain.InsightStatusUnavailable
		return
	}

	report.Narrative = &narrative
	report.NarrativeStatus = domain.InsightStatusOK
}
