package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-pricing-api/internal/domain"
	"github.com/vfg2006/creator-pricing-api/internal/usecases/negotiating"
	"github.com/vfg2006/creator-pricing-api/pkg/apiErrors"
	"github.com/vfg2006/creator-pricing-api/pkg/middleware"
)

// AssessOffer avalia a oferta de uma marca contra a banda de mercado e
// abre uma sessão de negociação
func AssessOffer(service negotiating.Negotiator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AssessOffer")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req negotiating.AssessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.BrandOffer <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "A oferta da marca deve ser maior que zero", nil)
			return
		}

		session, err := service.AssessOffer(userClaims.UserID, req)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao avaliar oferta", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		err = json.NewEncoder(w).Encode(session)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListNegotiations lista as sessões de negociação do usuário logado
func ListNegotiations(service negotiating.Negotiator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		sessions, err := service.ListSessions(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar negociações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(sessions)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetNegotiation retorna uma sessão de negociação do usuário logado
func GetNegotiation(service negotiating.Negotiator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if sessionID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da sessão não fornecido", nil)
			return
		}

		session, err := service.GetSession(sessionID, userClaims.UserID)
		if err != nil {
			if errors.Is(err, negotiating.ErrSessionNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Sessão de negociação não encontrada", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar negociação", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(session)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CloseNegotiation fecha uma sessão com o desfecho informado, podendo
// vincular o deal fechado correspondente
func CloseNegotiation(service negotiating.Negotiator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CloseNegotiation")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if sessionID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da sessão não fornecido", nil)
			return
		}

		var req negotiating.CloseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		// O ID da URL prevalece sobre o corpo
		req.SessionID = sessionID

		session, err := service.CloseSession(userClaims.UserID, req)
		if err != nil {
			switch {
			case errors.Is(err, negotiating.ErrSessionNotFound):
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Sessão de negociação não encontrada", nil)

			case errors.Is(err, negotiating.ErrDealNotFound):
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Deal não encontrado", nil)

			case strings.Contains(err.Error(), "desfecho inválido"):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

			default:
				logrus.Error(err)
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao fechar negociação", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(session)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
