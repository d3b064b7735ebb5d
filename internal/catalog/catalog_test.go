package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePlatform(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"código canônico passa direto", "youtube", "youtube"},
		{"maiúsculas e espaços são tolerados", "  YouTube ", "youtube"},
		{"alias X resolve para twitter", "X", "twitter"},
		{"rótulo composto resolve pelo slug", "X/Twitter", "twitter"},
		{"alias ig resolve para instagram", "ig", "instagram"},
		{"desconhecido cai em other", "myspace", "other"},
		{"vazio cai em other", "", "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePlatform(tt.input))
		})
	}
}

func TestNormalizeGeoRegion(t *testing.T) {
	assert.Equal(t, "us", NormalizeGeoRegion("USA"))
	assert.Equal(t, "us", NormalizeGeoRegion("United States"))
	assert.Equal(t, "uk", NormalizeGeoRegion("Great Britain"))
	assert.Equal(t, "eu", NormalizeGeoRegion("Europe"))
	assert.Equal(t, "latam", NormalizeGeoRegion("South America"))
	assert.Equal(t, "other", NormalizeGeoRegion("mars"))
}

func TestNormalizeNiche(t *testing.T) {
	assert.Equal(t, "finance", NormalizeNiche("Finance"))
	assert.Equal(t, "self_improvement", NormalizeNiche("Self-Improvement"))
	assert.Equal(t, "other", NormalizeNiche("underwater basket weaving"))
}

func TestNormalizeFollowerTier_DefaultEhMenorFaixa(t *testing.T) {
	// Diferente dos demais, o fallback da faixa de seguidores é a menor
	// faixa, não "other"
	assert.Equal(t, "under_5k", NormalizeFollowerTier(""))
	assert.Equal(t, "100k_plus", NormalizeFollowerTier("100k"))
	assert.Equal(t, "5k_10k", NormalizeFollowerTier("5k10k"))
}

func TestFollowerTierFromCount(t *testing.T) {
	tests := []struct {
		followers int64
		expected  string
	}{
		{0, "under_5k"},
		{4_999, "under_5k"},
		{5_000, "5k_10k"},
		{9_999, "5k_10k"},
		{10_000, "10k_25k"},
		{25_000, "25k_50k"},
		{50_000, "50k_100k"},
		{99_999, "50k_100k"},
		{100_000, "100k_plus"},
		{2_000_000, "100k_plus"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FollowerTierFromCount(tt.followers), "followers=%d", tt.followers)
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "YouTube", PlatformLabel("yt"))
	assert.Equal(t, "Other", PlatformLabel("friendster"))
	assert.Equal(t, "Finance", NicheLabel("finance"))
	assert.Equal(t, "Under 5K", FollowerTierLabel(""))
	assert.Equal(t, "Dedicated Video", DealTypeLabel("dedicated_video"))
}
