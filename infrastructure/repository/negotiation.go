package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/creator-pricing-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-pricing-api/internal/domain"
	"github.com/vfg2006/creator-pricing-api/pkg/utils"
)

const (
	negotiationsTable = "negotiations n"
)

type NegotiationRepository interface {
	Save(session *domain.NegotiationSession) (*domain.NegotiationSession, error)
	GetByID(sessionID string, userID int) (*domain.NegotiationSession, error)
	ListByUser(userID int) ([]*domain.NegotiationSession, error)
	Close(sessionID string, userID int, outcome string, finalFee *float64) error
}

type negotiationRepository struct {
	conn *postgres.Connection
}

func NewNegotiationRepository(conn *postgres.Connection) NegotiationRepository {
	return &negotiationRepository{
		conn: conn,
	}
}

func (r *negotiationRepository) Save(session *domain.NegotiationSession) (*domain.NegotiationSession, error) {
	if session.ID == "" {
		id, err := utils.GenerateID("neg")
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID da negociação: %w", err)
		}
		session.ID = id
	}

	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}

	if session.Outcome == "" {
		session.Outcome = domain.NegotiationInProgress
	}

	queryBuilder := squirrel.
		Insert("negotiations").
		Columns(
			"id",
			"user_id",
			"platform",
			"niche",
			"deal_type",
			"geo_region",
			"brand_name",
			"brand_offer",
			"market_min",
			"market_max",
			"offer_vs_market_pct",
			"counter_min",
			"counter_max",
			"assessment",
			"email_draft",
			"outcome",
			"created_at",
		).
		Values(
			session.ID,
			session.UserID,
			session.Platform,
			session.Niche,
			session.DealType,
			session.GeoRegion,
			session.BrandName,
			session.BrandOffer,
			session.MarketMin,
			session.MarketMax,
			session.OfferVsMarketPct,
			session.CounterMin,
			session.CounterMax,
			session.Assessment,
			session.EmailDraft,
			session.Outcome,
			session.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	negotiationsSQL, negotiationsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(negotiationsSQL, negotiationsArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao salvar negociação: %w", err)
	}

	return session, nil
}

func (r *negotiationRepository) GetByID(sessionID string, userID int) (*domain.NegotiationSession, error) {
	queryBuilder := r.selectNegotiations().
		Where(squirrel.Eq{"n.id": sessionID, "n.user_id": userID})

	negotiationsSQL, negotiationsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(negotiationsSQL, negotiationsArgs...)

	session := &domain.NegotiationSession{}
	if err := scanNegotiation(row, session); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return session, nil
}

func (r *negotiationRepository) ListByUser(userID int) ([]*domain.NegotiationSession, error) {
	queryBuilder := r.selectNegotiations().
		Where(squirrel.Eq{"n.user_id": userID}).
		OrderBy("n.created_at DESC")

	negotiationsSQL, negotiationsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(negotiationsSQL, negotiationsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sessions := make([]*domain.NegotiationSession, 0)

	for rows.Next() {
		session := &domain.NegotiationSession{}
		if err := scanNegotiation(rows, session); err != nil {
			return nil, fmt.Errorf("erro ao escanear negociação: %w", err)
		}

		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sessions, nil
}

// Close encerra a sessão com o desfecho informado. Sessões já encerradas
// não são alteradas.
func (r *negotiationRepository) Close(sessionID string, userID int, outcome string, finalFee *float64) error {
	queryBuilder := squirrel.
		Update("negotiations").
		Set("outcome", outcome).
		Set("closed_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": sessionID, "user_id": userID}).
		Where(squirrel.Eq{"outcome": domain.NegotiationInProgress}).
		PlaceholderFormat(squirrel.Dollar)

	if finalFee != nil {
		queryBuilder = queryBuilder.Set("final_agreed_fee_usd", *finalFee)
	}

	negotiationsSQL, negotiationsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(negotiationsSQL, negotiationsArgs...)
	if err != nil {
		return fmt.Errorf("erro ao encerrar negociação: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *negotiationRepository) selectNegotiations() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"n.id",
			"n.user_id",
			"n.platform",
			"n.niche",
			"n.deal_type",
			"n.geo_region",
			"n.brand_name",
			"n.brand_offer",
			"n.market_min",
			"n.market_max",
			"n.offer_vs_market_pct",
			"n.counter_min",
			"n.counter_max",
			"n.assessment",
			"n.email_draft",
			"n.outcome",
			"n.final_agreed_fee_usd",
			"n.created_at",
			"n.closed_at",
		).
		From(negotiationsTable).
		PlaceholderFormat(squirrel.Dollar)
}

func scanNegotiation(row rowScanner, session *domain.NegotiationSession) error {
	return row.Scan(
		&session.ID,
		&session.UserID,
		&session.Platform,
		&session.Niche,
		&session.DealType,
		&session.GeoRegion,
		&session.BrandName,
		&session.BrandOffer,
		&session.MarketMin,
		&session.MarketMax,
		&session.OfferVsMarketPct,
		&session.CounterMin,
		&session.CounterMax,
		&session.Assessment,
		&session.EmailDraft,
		&session.Outcome,
		&session.FinalAgreedFeeUSD,
		&session.CreatedAt,
		&session.ClosedAt,
	)
}
