package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-pricing-api/internal/domain"
	"github.com/vfg2006/creator-pricing-api/internal/usecases/reporting"
	"github.com/vfg2006/creator-pricing-api/pkg/apiErrors"
	"github.com/vfg2006/creator-pricing-api/pkg/middleware"
)

// GetQuarterlyNicheReport monta o relatório trimestral de um nicho a
// partir dos deals compartilhados no pool
func GetQuarterlyNicheReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetQuarterlyNicheReport")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		query := r.URL.Query()

		niche := query.Get("niche")
		if niche == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nicho é obrigatório", nil)
			return
		}

		year, err := strconv.Atoi(query.Get("year"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
			return
		}

		quarter, err := strconv.Atoi(query.Get("quarter"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidQuarter, "Trimestre inválido (esperado 1 a 4)", nil)
			return
		}

		report, err := service.BuildReport(userClaims.UserID, niche, query.Get("platform"), year, quarter)
		if err != nil {
			if errors.Is(err, reporting.ErrInvalidQuarter) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidQuarter, err.Error(), nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar relatório trimestral", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(report)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
