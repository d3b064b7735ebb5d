package narrator

import (
	"encoding/json"
	"fmt"

	narratordomain "github.com/vfg2006/creator-pricing-api/infrastructure/integrator/narrator/domain"
	"github.com/vfg2006/creator-pricing-api/infrastructure/integrator/narrator/narratorclient"
	"github.com/vfg2006/creator-pricing-api/internal/config"
	"github.com/vfg2006/creator-pricing-api/internal/domain"
)

// NarratorIntegrator transforma os agregados numéricos do motor em
// narrativas em prosa, via API de chat externa.
type NarratorIntegrator interface {
	NarrateCreatorInsights(stats domain.CreatorStats) (string, error)
	NarrateNicheReport(report *domain.QuarterlyNicheReport) (string, error)
	ExplainRecommendation(calc *domain.Calculation) (string, error)
	Enabled() bool
}

type NarratorService struct {
	cfg    *config.Config
	Client narratorclient.Client
}

func New(cfg *config.Config, client narratorclient.Client) NarratorIntegrator {
	return &NarratorService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *NarratorService) Enabled() bool {
	return s.cfg.Narrator.Enabled && s.cfg.Narrator.APIKey != ""
}

func (s *NarratorService) NarrateCreatorInsights(stats domain.CreatorStats) (string, error) {
	payload, err := json.Marshal(stats)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar estatísticas do criador: %w", err)
	}

	request := narratordomain.NarrationRequest{
		Kind: narratordomain.KindCreatorInsights,
		SystemPrompt: "You are a pricing analyst for content creators. " +
			"Given aggregate statistics about a creator's brand deals, negotiations and rate calculations, " +
			"write 3 to 5 short, actionable insights about their pricing. " +
			"Be concrete, reference the numbers, and never invent data that is not in the payload.",
		UserPrompt: string(payload),
		MaxTokens:  600,
	}

	return s.Client.Complete(request)
}

func (s *NarratorService) NarrateNicheReport(report *domain.QuarterlyNicheReport) (string, error) {
	payload, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar relatório trimestral: %w", err)
	}

	request := narratordomain.NarrationRequest{
		Kind: narratordomain.KindNicheReport,
		SystemPrompt: "You are a market analyst writing a quarterly pricing report for a content-creator niche. " +
			"Given this quarter's deal statistics and the previous quarter's, write a short report in plain prose: " +
			"overall level, movement versus last quarter, and what creators in this niche should expect. " +
			"Use only the numbers provided.",
		UserPrompt: string(payload),
		MaxTokens:  700,
	}

	return s.Client.Complete(request)
}

func (s *NarratorService) ExplainRecommendation(calc *domain.Calculation) (string, error) {
	payload, err := json.Marshal(calc)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar cálculo: %w", err)
	}

	request := narratordomain.NarrationRequest{
		Kind: narratordomain.KindRateExplanation,
		SystemPrompt: "You are a pricing assistant for content creators. " +
			"Given the inputs and multipliers of a CPM-based rate calculation, explain the recommended range " +
			"in 2 or 3 sentences a creator without a finance background can follow.",
		UserPrompt: string(payload),
		MaxTokens:  300,
	}

	return s.Client.Complete(request)
}
