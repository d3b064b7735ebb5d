// Package catalog centraliza os códigos canônicos de plataforma, nicho,
// região, tipo de deal, formato de conteúdo e faixa de seguidores, com
// tabelas de aliases e fallback determinístico para "other". A
// normalização nunca falha: qualquer entrada do usuário vira um código
// válido.
package catalog

import (
	"regexp"
	"strings"
)

// Option é um par código canônico + rótulo de exibição. A ordem das
// listas é a ordem de exibição nos formulários.
type Option struct {
	Code  string
	Label string
}

var Platforms = []Option{
	{"youtube", "YouTube"},
	{"instagram", "Instagram"},
	{"tiktok", "TikTok"},
	{"linkedin", "LinkedIn"},
	{"twitter", "X/Twitter"},
	{"twitch", "Twitch"},
	{"podcast", "Podcast"},
	{"newsletter", "Newsletter"},
	{"other", "Other"},
}

var Niches = []Option{
	{"finance", "Finance"},
	{"beauty", "Beauty"},
	{"fashion", "Fashion"},
	{"gaming", "Gaming"},
	{"tech", "Tech"},
	{"fitness", "Fitness"},
	{"health", "Health"},
	{"lifestyle", "Lifestyle"},
	{"travel", "Travel"},
	{"food", "Food"},
	{"parenting", "Parenting"},
	{"education", "Education"},
	{"business", "Business"},
	{"self_improvement", "Self-Improvement"},
	{"music", "Music"},
	{"sports", "Sports"},
	{"comedy", "Comedy"},
	{"other", "Other"},
}

var GeoRegions = []Option{
	{"us", "US"},
	{"canada", "Canada"},
	{"uk", "UK"},
	{"eu", "Europe (EU)"},
	{"latam", "Latin America (LATAM)"},
	{"apac", "Asia-Pacific (APAC)"},
	{"other", "Other"},
}

var FollowerTiers = []Option{
	{"under_5k", "Under 5K"},
	{"5k_10k", "5K-10K"},
	{"10k_25k", "10K-25K"},
	{"25k_50k", "25K-50K"},
	{"50k_100k", "50K-100K"},
	{"100k_plus", "100K+"},
}

var DealTypes = []Option{
	{"dedicated_video", "Dedicated Video"},
	{"integration", "Integration"},
	{"ugc_only", "UGC Only"},
	{"story_bundle", "Story Bundle"},
	{"feed_post", "Feed Post"},
	{"reel_short", "Reel/Short"},
	{"long_form", "Long Form"},
	{"newsletter_mention", "Newsletter Mention"},
	{"podcast_read", "Podcast Read"},
	{"other", "Other"},
}

var ContentFormats = []Option{
	{"short_video", "Short Video"},
	{"long_video", "Long Video"},
	{"static_post", "Static Post"},
	{"story", "Story"},
	{"carousel", "Carousel"},
	{"newsletter", "Newsletter"},
	{"podcast", "Podcast"},
	{"other", "Other"},
}

var platformAliases = map[string]string{
	"x":         "twitter",
	"x_twitter": "twitter",
	"yt":        "youtube",
	"insta":     "instagram",
	"ig":        "instagram",
}

var geoAliases = map[string]string{
	"usa":                          "us",
	"u_s":                          "us",
	"u_s_a":                        "us",
	"united_states":                "us",
	"united_states_of_america":     "us",
	"united_kingdom":               "uk",
	"great_britain":                "uk",
	"england":                      "uk",
	"europe":                       "eu",
	"european_union":               "eu",
	"latin_america":                "latam",
	"south_america":                "latam",
	"asia_pacific":                 "apac",
}

var followerTierAliases = map[string]string{
	"under5k":  "under_5k",
	"5k10k":    "5k_10k",
	"10k25k":   "10k_25k",
	"25k50k":   "25k_50k",
	"50k100k":  "50k_100k",
	"100k":     "100k_plus",
	"100kplus": "100k_plus",
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = nonAlphanumeric.ReplaceAllString(value, "_")
	return strings.Trim(value, "_")
}

type lookup struct {
	codes   map[string]bool
	byLabel map[string]string
	aliases map[string]string
	def     string
}

func newLookup(options []Option, aliases map[string]string, def string) lookup {
	l := lookup{
		codes:   make(map[string]bool, len(options)),
		byLabel: make(map[string]string, len(options)*2),
		aliases: aliases,
		def:     def,
	}
	for _, opt := range options {
		l.codes[opt.Code] = true
		l.byLabel[slugify(opt.Label)] = opt.Code
		l.byLabel[slugify(opt.Code)] = opt.Code
	}
	return l
}

// normalize resolve um valor digitado para um código canônico: tenta o
// valor cru, os aliases, o slug e o rótulo, nessa ordem, e cai no
// default quando nada casa.
func (l lookup) normalize(value string) string {
	raw := strings.ToLower(strings.TrimSpace(value))
	if raw == "" {
		return l.def
	}
	if l.codes[raw] {
		return raw
	}
	if code, ok := l.aliases[raw]; ok {
		return code
	}
	slug := slugify(raw)
	if l.codes[slug] {
		return slug
	}
	if code, ok := l.aliases[slug]; ok {
		return code
	}
	if code, ok := l.byLabel[slug]; ok {
		return code
	}
	return l.def
}

var (
	platformLookup      = newLookup(Platforms, platformAliases, "other")
	nicheLookup         = newLookup(Niches, nil, "other")
	geoLookup           = newLookup(GeoRegions, geoAliases, "other")
	dealTypeLookup      = newLookup(DealTypes, nil, "other")
	contentFormatLookup = newLookup(ContentFormats, nil, "other")
	followerTierLookup  = newLookup(FollowerTiers, followerTierAliases, "under_5k")
)

func NormalizePlatform(value string) string      { return platformLookup.normalize(value) }
func NormalizeNiche(value string) string         { return nicheLookup.normalize(value) }
func NormalizeGeoRegion(value string) string     { return geoLookup.normalize(value) }
func NormalizeDealType(value string) string      { return dealTypeLookup.normalize(value) }
func NormalizeContentFormat(value string) string { return contentFormatLookup.normalize(value) }
func NormalizeFollowerTier(value string) string  { return followerTierLookup.normalize(value) }

// FollowerTierFromCount deriva a faixa de seguidores a partir da
// contagem. A faixa nunca é informada livremente pelo usuário.
func FollowerTierFromCount(followers int64) string {
	switch {
	case followers >= 100_000:
		return "100k_plus"
	case followers >= 50_000:
		return "50k_100k"
	case followers >= 25_000:
		return "25k_50k"
	case followers >= 10_000:
		return "10k_25k"
	case followers >= 5_000:
		return "5k_10k"
	default:
		return "under_5k"
	}
}

func labelFor(options []Option, code, fallback string) string {
	for _, opt := range options {
		if opt.Code == code {
			return opt.Label
		}
	}
	return fallback
}

func PlatformLabel(value string) string {
	return labelFor(Platforms, NormalizePlatform(value), "Other")
}

func NicheLabel(value string) string {
	return labelFor(Niches, NormalizeNiche(value), "Other")
}

func GeoRegionLabel(value string) string {
	return labelFor(GeoRegions, NormalizeGeoRegion(value), "Other")
}

func DealTypeLabel(value string) string {
	return labelFor(DealTypes, NormalizeDealType(value), "Other")
}

func FollowerTierLabel(value string) string {
	return labelFor(FollowerTiers, NormalizeFollowerTier(value), "Under 5K")
}
