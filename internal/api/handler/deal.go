package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-pricing-api/internal/catalog"
	"github.com/vfg2006/creator-pricing-api/internal/domain"
	"github.com/vfg2006/creator-pricing-api/internal/usecases/community"
	"github.com/vfg2006/creator-pricing-api/pkg/apiErrors"
	"github.com/vfg2006/creator-pricing-api/pkg/middleware"
	"github.com/vfg2006/creator-pricing-api/pkg/utils"
)

// SubmitDeal registra um deal fechado do usuário logado
func SubmitDeal(service community.CommunityPricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SubmitDeal")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req community.SubmitDealRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		deal, err := service.SubmitDeal(userClaims.UserID, req)
		if err != nil {
			logrus.Error(err)

			switch {
			case errors.Is(err, community.ErrInvalidFee):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "O valor do deal deve ser maior que zero", nil)

			case errors.Is(err, community.ErrMissingNiche):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nicho é obrigatório", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar deal", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		err = json.NewEncoder(w).Encode(deal)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListDeals lista os deals do usuário logado, com filtros opcionais de
// período (created_from/created_to) e valor mínimo (min_fee)
func ListDeals(service community.CommunityPricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		query := r.URL.Query()

		var filters community.DealListFilters

		if fromStr := query.Get("created_from"); fromStr != "" {
			from, err := utils.ParseDate(fromStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida (esperado YYYY-MM-DD)", nil)
				return
			}
			filters.CreatedFrom = from
		}

		if toStr := query.Get("created_to"); toStr != "" {
			to, err := utils.ParseDate(toStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida (esperado YYYY-MM-DD)", nil)
				return
			}
			filters.CreatedTo = to
		}

		filters.MinFee = utils.ParseOptionalFloat(query.Get("min_fee"))

		deals, err := service.ListDeals(userClaims.UserID, filters)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar deals", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(deals)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetDeal retorna um deal do usuário logado por ID
func GetDeal(service community.CommunityPricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		dealID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if dealID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do deal não fornecido", nil)
			return
		}

		deal, err := service.GetDeal(dealID, userClaims.UserID)
		if err != nil {
			if errors.Is(err, community.ErrDealNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Deal não encontrado", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar deal", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(deal)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// DeleteDeal remove um deal do usuário logado
func DeleteDeal(service community.CommunityPricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteDeal")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		dealID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if dealID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do deal não fornecido", nil)
			return
		}

		err := service.DeleteDeal(dealID, userClaims.UserID)
		if err != nil {
			if errors.Is(err, community.ErrDealNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Deal não encontrado", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover deal", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetCohortPricing retorna o resumo de preços do pool comunitário para um
// cohort informado via query string
func GetCohortPricing(service community.CommunityPricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		niche := query.Get("niche")
		if niche == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nicho é obrigatório", nil)
			return
		}

		// A faixa de seguidores pode vir pronta ou ser derivada da
		// contagem informada em "followers".
		followerTier := query.Get("follower_tier")
		if followerTier == "" {
			if followers := utils.ParseOptionalInt(query.Get("followers")); followers != nil {
				followerTier = catalog.FollowerTierFromCount(*followers)
			}
		}

		cohort := domain.Cohort{
			Platform:     catalog.NormalizePlatform(query.Get("platform")),
			Niche:        catalog.NormalizeNiche(niche),
			FollowerTier: catalog.NormalizeFollowerTier(followerTier),
			GeoRegion:    catalog.NormalizeGeoRegion(query.Get("geo_region")),
		}

		pricing, err := service.CohortPricing(cohort)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar preços do cohort", nil)
			return
		}

		// Sem sinal suficiente o resumo volta nulo; o cliente decide como
		// apresentar a ausência de dados.
		response := map[string]any{
			"cohort":    cohort,
			"pricing":   pricing,
			"min_deals": service.MinCohortDeals(),
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(response)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
