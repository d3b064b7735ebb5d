package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-pricing-api/internal/catalog"
	"github.com/vfg2006/creator-pricing-api/pkg/apiErrors"
)

type catalogOption struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

type CatalogResponse struct {
	Platforms      []catalogOption `json:"platforms"`
	Niches         []catalogOption `json:"niches"`
	GeoRegions     []catalogOption `json:"geo_regions"`
	DealTypes      []catalogOption `json:"deal_types"`
	ContentFormats []catalogOption `json:"content_formats"`
	FollowerTiers  []catalogOption `json:"follower_tiers"`
}

// GetCatalogOptions retorna as tabelas de códigos canônicos usadas nos
// formulários (plataformas, nichos, regiões, tipos de deal etc.)
func GetCatalogOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := CatalogResponse{
			Platforms:      toCatalogOptions(catalog.Platforms),
			Niches:         toCatalogOptions(catalog.Niches),
			GeoRegions:     toCatalogOptions(catalog.GeoRegions),
			DealTypes:      toCatalogOptions(catalog.DealTypes),
			ContentFormats: toCatalogOptions(catalog.ContentFormats),
			FollowerTiers:  toCatalogOptions(catalog.FollowerTiers),
		}

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(response)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

func toCatalogOptions(options []catalog.Option) []catalogOption {
	result := make([]catalogOption, 0, len(options))
	for _, option := range options {
		result = append(result, catalogOption{Code: option.Code, Label: option.Label})
	}

	return result
}
