// Package analytics agrega o histórico completo do usuário (deals,
// negociações, cálculos) para o dashboard e para os insights narrados.
// Aqui nada é aparado: o histórico pessoal é pequeno demais para cortes.
package analytics

import (
	"sort"
	"time"

	"github.com/vfg2006/creator-pricing-api/infrastructure/integrator/narrator"
	"github.com/vfg2006/creator-pricing-api/infrastructure/repository"
	"github.com/vfg2006/creator-pricing-api/internal/catalog"
	"github.com/vfg2006/creator-pricing-api/internal/config"
	"github.com/vfg2006/creator-pricing-api/internal/domain"
	"github.com/vfg2006/creator-pricing-api/internal/stats"
	"github.com/vfg2006/creator-pricing-api/pkg/log"
)

// MinSignalsForInsights é o mínimo de sinais combinados (deals +
// negociações + cálculos) para narrar insights.
const MinSignalsForInsights = 3

type Analyzer interface {
	BuildUserAnalytics(userID int) (*domain.UserAnalytics, error)
	BuildCreatorInsights(userID int) (*domain.CreatorInsights, error)
}

type Service struct {
	dealRepo        repository.DealRepository
	negotiationRepo repository.NegotiationRepository
	calcRepo        repository.CalculationRepository
	profileRepo     repository.ProfileRepository
	narratorSvc     narrator.NarratorIntegrator
	usageRepo       repository.AIUsageRepository
	cfg             *config.Config
}

func NewService(
	dealRepo repository.DealRepository,
	negotiationRepo repository.NegotiationRepository,
	calcRepo repository.CalculationRepository,
	profileRepo repository.ProfileRepository,
	narratorSvc narrator.NarratorIntegrator,
	usageRepo repository.AIUsageRepository,
	cfg *config.Config,
) Analyzer {
	return &Service{
		dealRepo:        dealRepo,
		negotiationRepo: negotiationRepo,
		calcRepo:        calcRepo,
		profileRepo:     profileRepo,
		narratorSvc:     narratorSvc,
		usageRepo:       usageRepo,
		cfg:             cfg,
	}
}

func (s *Service) BuildUserAnalytics(userID int) (*domain.UserAnalytics, error) {
	deals, err := s.dealRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	negotiations, err := s.negotiationRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	analytics := &domain.UserAnalytics{
		DealsSummary:       buildDealsSummary(deals),
		PlatformBreakdown:  buildPlatformBreakdown(deals),
		DealTypeBreakdown:  buildDealTypeBreakdown(deals),
		NegotiationSummary: buildNegotiationSummary(deals, negotiations),
		MonthlyTrend:       buildMonthlyTrend(deals),
	}

	analytics.Flags = domain.AnalyticsFlags{
		HasDeals:             len(deals) > 0,
		HasQuotedVsClosed:    analytics.DealsSummary.AvgCloseVsQuotePct != nil,
		HasNegotiationUplift: analytics.NegotiationSummary.AvgUpliftPct != nil,
	}

	return analytics, nil
}

func buildDealsSummary(deals []*domain.DealContribution) domain.DealsSummary {
	summary := domain.DealsSummary{DealsCount: len(deals)}

	if len(deals) == 0 {
		return summary
	}

	fees := make([]float64, 0, len(deals))
	quoted := make([]float64, 0)
	closedWithQuote := make([]float64, 0)
	closeVsQuotePcts := make([]float64, 0)

	total := 0.0
	for _, deal := range deals {
		fees = append(fees, deal.TotalFeeUSD)
		total += deal.TotalFeeUSD

		// Quote vs fechamento só entra quando o orçamento inicial existe
		// e é positivo; os demais deals ficam fora apenas desta métrica.
		if deal.QuotedFeeUSD != nil && *deal.QuotedFeeUSD > 0 {
			quoted = append(quoted, *deal.QuotedFeeUSD)
			closedWithQuote = append(closedWithQuote, deal.TotalFeeUSD)
			closeVsQuotePcts = append(closeVsQuotePcts, (deal.TotalFeeUSD-*deal.QuotedFeeUSD) / *deal.QuotedFeeUSD*100)
		}
	}

	summary.TotalRevenue = &total
	summary.AvgDeal = stats.Avg(fees)
	summary.MedianDeal = stats.Median(fees)
	summary.QuotedCount = len(quoted)
	summary.AvgQuotedFee = stats.Avg(quoted)
	summary.AvgClosedFee = stats.Avg(closedWithQuote)
	summary.AvgCloseVsQuotePct = stats.Avg(closeVsQuotePcts)

	return summary
}

func buildPlatformBreakdown(deals []*domain.DealContribution) []domain.PlatformBreakdown {
	grouped := make(map[string][]float64)
	for _, deal := range deals {
		grouped[deal.Platform] = append(grouped[deal.Platform], deal.TotalFeeUSD)
	}

	breakdown := make([]domain.PlatformBreakdown, 0, len(grouped))
	for platform, fees := range grouped {
		breakdown = append(breakdown, domain.PlatformBreakdown{
			Platform: platform,
			Label:    catalog.PlatformLabel(platform),
			Count:    len(fees),
			AvgFee:   stats.Avg(fees),
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Count != breakdown[j].Count {
			return breakdown[i].Count > breakdown[j].Count
		}
		return breakdown[i].Platform < breakdown[j].Platform
	})

	return breakdown
}

func buildDealTypeBreakdown(deals []*domain.DealContribution) []domain.DealTypeBreakdown {
	grouped := make(map[string][]float64)
	for _, deal := range deals {
		grouped[deal.DealType] = append(grouped[deal.DealType], deal.TotalFeeUSD)
	}

	breakdown := make([]domain.DealTypeBreakdown, 0, len(grouped))
	for dealType, fees := range grouped {
		breakdown = append(breakdown, domain.DealTypeBreakdown{
			DealType: dealType,
			Label:    catalog.DealTypeLabel(dealType),
			Count:    len(fees),
			AvgFee:   stats.Avg(fees),
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Count != breakdown[j].Count {
			return breakdown[i].Count > breakdown[j].Count
		}
		return breakdown[i].DealType < breakdown[j].DealType
	})

	return breakdown
}

func buildNegotiationSummary(deals []*domain.DealContribution, negotiations []*domain.NegotiationSession) domain.NegotiationSummary {
	summary := domain.NegotiationSummary{
		NegotiationCount: len(negotiations),
		Outcomes:         make(map[string]int),
	}

	sessionsByID := make(map[string]*domain.NegotiationSession, len(negotiations))
	for _, session := range negotiations {
		summary.Outcomes[session.Outcome]++
		sessionsByID[session.ID] = session
	}

	// Uplift só conta negociações vinculadas a um deal registrado, com
	// oferta inicial positiva e fee final gravado. Sessão encerrada sem
	// deal vinculado fica de fora.
	uplifts := make([]float64, 0)
	for _, deal := range deals {
		if deal.NegotiationID == nil {
			continue
		}

		session, ok := sessionsByID[*deal.NegotiationID]
		if !ok || session.FinalAgreedFeeUSD == nil || session.BrandOffer <= 0 {
			continue
		}

		uplifts = append(uplifts, (*session.FinalAgreedFeeUSD-session.BrandOffer)/session.BrandOffer*100)
	}

	summary.AvgUpliftPct = stats.Avg(uplifts)
	summary.MedianUpliftPct = stats.Median(uplifts)

	return summary
}

func buildMonthlyTrend(deals []*domain.DealContribution) []domain.MonthlyRevenue {
	type bucket struct {
		year  int
		month int
	}

	grouped := make(map[bucket][]float64)
	for _, deal := range deals {
		key := bucket{year: deal.CreatedAt.Year(), month: int(deal.CreatedAt.Month())}
		grouped[key] = append(grouped[key], deal.TotalFeeUSD)
	}

	trend := make([]domain.MonthlyRevenue, 0, len(grouped))
	for key, fees := range grouped {
		total := 0.0
		for _, fee := range fees {
			total += fee
		}

		monthTotal := total
		trend = append(trend, domain.MonthlyRevenue{
			Year:         key.year,
			Month:        key.month,
			DealCount:    len(fees),
			TotalRevenue: &monthTotal,
			AvgDeal:      stats.Avg(fees),
		})
	}

	sort.Slice(trend, func(i, j int) bool {
		if trend[i].Year != trend[j].Year {
			return trend[i].Year < trend[j].Year
		}
		return trend[i].Month < trend[j].Month
	})

	return trend
}

// BuildCreatorInsights monta o payload numérico e, havendo pelo menos
// MinSignalsForInsights sinais, pede a narração ao serviço externo.
func (s *Service) BuildCreatorInsights(userID int) (*domain.CreatorInsights, error) {
	creatorStats, err := s.buildCreatorStats(userID)
	if err != nil {
		return nil, err
	}

	insights := &domain.CreatorInsights{Stats: *creatorStats}

	if creatorStats.DataRichness.TotalSignals < MinSignalsForInsights {
		insights.Status = domain.InsightStatusNoData
		insights.Message = "Add a few deals, negotiations or calculations to unlock insights"
		return insights, nil
	}

	if s.narratorSvc == nil || !s.narratorSvc.Enabled() {
		insights.Status = domain.InsightStatusUnavailable
		insights.Message = "Insights are temporarily unavailable, try again later"
		return insights, nil
	}

	today := time.Now().UTC()

	used, err := s.usageRepo.CountForDay(userID, today)
	if err != nil || used >= s.cfg.Narrator.DailyCap {
		insights.Status = domain.InsightStatusUnavailable
		insights.Message = "Insights are temporarily unavailable, try again later"
		return insights, nil
	}

	if err := s.usageRepo.Increment(userID, today); err != nil {
		insights.Status = domain.InsightStatusUnavailable
		insights.Message = "Insights are temporarily unavailable, try again later"
		return insights, nil
	}

	text, err := s.narratorSvc.NarrateCreatorInsights(*creatorStats)
	if err != nil {
		log.L.WithField("user_id", userID).WithError(err).Warn("Erro ao narrar insights do criador")
		insights.Status = domain.InsightStatusUnavailable
		insights.Message = "Insights are temporarily unavailable, try again later"
		return insights, nil
	}

	insights.Status = domain.InsightStatusOK
	insights.InsightsText = &text

	return insights, nil
}

func (s *Service) buildCreatorStats(userID int) (*domain.CreatorStats, error) {
	deals, err := s.dealRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	negotiations, err := s.negotiationRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	calcs, err := s.calcRepo.ListByUser(userID, 0)
	if err != nil {
		return nil, err
	}

	creatorStats := &domain.CreatorStats{}

	if profile, err := s.profileRepo.GetByUserID(userID); err == nil && profile != nil {
		creatorStats.Profile = &domain.ProfileSummary{
			DisplayName:     profile.DisplayName,
			PrimaryPlatform: profile.PrimaryPlatform,
			Niche:           profile.Niche,
			Followers:       profile.Followers,
			AvgViews:        profile.AvgViews,
			EngagementRate:  profile.EngagementRate,
		}
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

	creatorStats.DealSummary.TotalDeals = len(deals)
	creatorStats.DealSummary.AvgFee = stats.Avg(fees)
	creatorStats.DealSummary.MedianFee = stats.Median(fees)
	creatorStats.DealSummary.AvgCPM = stats.SummarizeCPM(feePtrs, views).Avg
	creatorStats.DealSummary.PlatformBreakdown = buildPlatformBreakdown(deals)

	offerPcts := make([]float64, 0)
	counterAbove := 0
	for _, session := range negotiations {
		if session.OfferVsMarketPct != nil {
			offerPcts = append(offerPcts, *session.OfferVsMarketPct)
		}
		if session.CounterMin != nil && *session.CounterMin > session.BrandOffer {
			counterAbove++
		}
	}

	creatorStats.NegotiationSummary.TotalNegotiations = len(negotiations)
	creatorStats.NegotiationSummary.AvgOfferVsMarketPct = stats.Avg(offerPcts)
	creatorStats.NegotiationSummary.CounterAboveOfferQty = counterAbove

	creatorStats.CalculatorSummary.TotalCalculations = len(calcs)
	creatorStats.CalculatorSummary.TypicalRange = buildTypicalRange(calcs)

	creatorStats.DataRichness = domain.DataRichness{
		HasAnyDeals:        len(deals) > 0,
		HasAnyNegotiations: len(negotiations) > 0,
		HasAnyCalculations: len(calcs) > 0,
		TotalSignals:       len(deals) + len(negotiations) + len(calcs),
	}

	return creatorStats, nil
}

// buildTypicalRange acha a combinação plataforma+nicho mais frequente
// nos cálculos do usuário e tira a média das bandas recomendadas dela.
func buildTypicalRange(calcs []*domain.Calculation) *domain.TypicalCalcRange {
	if len(calcs) == 0 {
		return nil
	}

	type pair struct {
		platform string
		niche    string
	}

	grouped := make(map[pair][]*domain.Calculation)
	for _, calc := range calcs {
		key := pair{platform: calc.Platform, niche: calc.Niche}
		grouped[key] = append(grouped[key], calc)
	}

	var topKey pair
	topCount := 0
	for key, group := range grouped {
		if len(group) > topCount ||
			(len(group) == topCount && (key.platform < topKey.platform ||
				(key.platform == topKey.platform && key.niche < topKey.niche))) {
			topKey = key
			topCount = len(group)
		}
	}

	mins := make([]float64, 0, topCount)
	maxs := make([]float64, 0, topCount)
	for _, calc := range grouped[topKey] {
		mins = append(mins, calc.RecommendedMin)
		maxs = append(maxs, calc.RecommendedMax)
	}

	return &domain.TypicalCalcRange{
		Platform: topKey.platform,
		Niche:    topKey.niche,
		AvgMin:   stats.Avg(mins),
		AvgMax:   stats.Avg(maxs),
	}
}
