package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creator-pricing-api/internal/domain"
)

func int64Ptr(v int64) *int64     { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestRateModel_Calculate(t *testing.T) {
	model := NewRateModel(DefaultRateTables())

	tests := []struct {
		name             string
		input            domain.RateInput
		wantBaseCPM      float64
		wantEffectiveCPM float64
		wantMin          float64
		wantMax          float64
		wantViews        int64
	}{
		{
			name: "YouTube de finanças nos EUA com engajamento alto",
			input: domain.RateInput{
				Platform:       "youtube",
				Niche:          "finance",
				GeoRegion:      "us",
				AvgViews:       int64Ptr(5000),
				EngagementRate: floatPtr(4.2),
			},
			wantBaseCPM:      15,
			wantEffectiveCPM: 26.565,
			wantMin:          106.26,
			wantMax:          159.39,
			wantViews:        5000,
		},
		{
			name: "Plataforma desconhecida usa o CPM padrão",
			input: domain.RateInput{
				Platform: "myspace",
				Niche:    "travel",
				AvgViews: int64Ptr(1000),
			},
			wantBaseCPM:      8,
			wantEffectiveCPM: 8,
			wantMin:          6.4,
			wantMax:          9.6,
			wantViews:        1000,
		},
		{
			name: "Sem views médias estima a partir dos seguidores",
			input: domain.RateInput{
				Platform:  "instagram",
				Niche:     "travel",
				Followers: int64Ptr(20000),
			},
			wantBaseCPM:      12,
			wantEffectiveCPM: 12,
			wantMin:          19.2,
			wantMax:          28.8,
			wantViews:        2000,
		},
		{
			name: "Sem views nem seguidores a banda é zero",
			input: domain.RateInput{
				Platform: "tiktok",
				Niche:    "gaming",
			},
			wantBaseCPM:      10,
			wantEffectiveCPM: 13,
			wantMin:          0,
			wantMax:          0,
			wantViews:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := model.Calculate(tt.input)

			assert.Equal(t, tt.wantBaseCPM, result.BaseCPM)
			assert.InDelta(t, tt.wantEffectiveCPM, result.EffectiveCPM, 0.0001)
			assert.InDelta(t, tt.wantMin, result.RecommendedMin, 0.0001)
			assert.InDelta(t, tt.wantMax, result.RecommendedMax, 0.0001)
			assert.Equal(t, tt.wantViews, result.ViewsUsed)
		})
	}
}

func TestRateModel_Calculate_Deterministico(t *testing.T) {
	model := NewRateModel(DefaultRateTables())

	input := domain.RateInput{
		Platform:       "podcast",
		Niche:          "business",
		GeoRegion:      "uk",
		AvgViews:       int64Ptr(12000),
		EngagementRate: floatPtr(2.4),
	}

	first := model.Calculate(input)
	second := model.Calculate(input)

	assert.Equal(t, first, second)
}

func TestRateModel_Calculate_RazaoFixaEntreMinEMax(t *testing.T) {
	model := NewRateModel(DefaultRateTables())

	result := model.Calculate(domain.RateInput{
		Platform: "linkedin",
		Niche:    "tech",
		AvgViews: int64Ptr(8000),
	})

	// A banda é sempre mid +/-20%, então max/min = 1.2/0.8
	assert.InDelta(t, 1.5, result.RecommendedMax/result.RecommendedMin, 0.0001)
}

func TestRateModel_NicheMultiplier_PrimeiraRegraVence(t *testing.T) {
	model := NewRateModel(DefaultRateTables())

	tests := []struct {
		name  string
		niche string
		want  float64
	}{
		{name: "Nicho sem regra", niche: "travel", want: 1.0},
		{name: "Palavra-chave dentro de nicho composto", niche: "personal-finance", want: 1.4},
		{name: "Duas regras aplicáveis usa a primeira da lista", niche: "business tech", want: 1.4},
		{name: "Beleza", niche: "beauty", want: 1.2},
		{name: "Fitness", niche: "fitness", want: 1.15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.nicheMultiplier(tt.niche))
		})
	}
}

func TestRateModel_EngagementMultiplier_Faixas(t *testing.T) {
	model := NewRateModel(DefaultRateTables())

	tests := []struct {
		name string
		rate *float64
		want float64
	}{
		{name: "Engajamento desconhecido é neutro", rate: nil, want: 1.0},
		{name: "Abaixo de 1% penaliza", rate: floatPtr(0.5), want: 0.8},
		{name: "Limite inferior da faixa neutra", rate: floatPtr(1), want: 1.0},
		{name: "Entre 3% e 5%", rate: floatPtr(3), want: 1.15},
		{name: "Acima de 5%", rate: floatPtr(5), want: 1.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.engagementMultiplier(tt.rate))
		})
	}
}
