// Package repository contém as implementações dos repositórios para acesso aos dados
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
	dealsTable = "deals d"
)

type DealRepository interface {
	Save(deal *domain.DealContribution) (*domain.DealContribution, error)
	GetByID(dealID string, userID int) (*domain.DealContribution, error)
	ListByUser(userID int) ([]*domain.DealContribution, error)
	ListByFilters(filters domain.DealFilters) ([]*domain.DealContribution, error)
	LinkNegotiation(dealID string, userID int, negotiationID string) error
	Delete(dealID string, userID int) error
}

type dealRepository struct {
	conn *postgres.Connection
}

func NewDealRepository(conn *postgres.Connection) DealRepository {
	return &dealRepository{
		conn: conn,
	}
}

func (r *dealRepository) Save(deal *domain.DealContribution) (*domain.DealContribution, error) {
	if deal.ID == "" {
		id, err := utils.GenerateID("deal")
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID do deal: %w", err)
		}
		deal.ID = id
	}

	if deal.CreatedAt.IsZero() {
		deal.CreatedAt = time.Now().UTC()
	}

	queryBuilder := squirrel.
		Insert("deals").
		Columns(
			"id",
			"user_id",
			"platform",
			"niche",
			"deal_type",
			"content_format",
			"geo_region",
			"follower_tier",
			"total_fee_usd",
			"quoted_fee_usd",
			"reported_views",
			"negotiation_id",
			"share_in_pool",
			"created_at",
		).
		Values(
			deal.ID,
			deal.UserID,
			deal.Platform,
			deal.Niche,
			deal.DealType,
			deal.ContentFormat,
			deal.GeoRegion,
			deal.FollowerTier,
			deal.TotalFeeUSD,
			deal.QuotedFeeUSD,
			deal.ReportedViews,
			deal.NegotiationID,
			deal.ShareInPool,
			deal.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	dealsSQL, dealsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(dealsSQL, dealsArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao salvar deal: %w", err)
	}

	return deal, nil
}

func (r *dealRepository) GetByID(dealID string, userID int) (*domain.DealContribution, error) {
	queryBuilder := r.selectDeals().
		Where(squirrel.Eq{"d.id": dealID, "d.user_id": userID})

	dealsSQL, dealsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(dealsSQL, dealsArgs...)

	deal := &domain.DealContribution{}
	if err := scanDeal(row, deal); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return deal, nil
}

func (r *dealRepository) ListByUser(userID int) ([]*domain.DealContribution, error) {
	return r.ListByFilters(domain.DealFilters{UserID: &userID})
}

func (r *dealRepository) ListByFilters(filters domain.DealFilters) ([]*domain.DealContribution, error) {
	queryBuilder := r.selectDeals().
		OrderBy("d.created_at DESC")

	if filters.SharedOnly {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"d.share_in_pool": true})
	}

	if filters.UserID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"d.user_id": *filters.UserID})
	}

	if filters.Platform != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"d.platform": *filters.Platform})
	}

	if filters.Niche != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"d.niche": *filters.Niche})
	}

	if filters.DealType != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"d.deal_type": *filters.DealType})
	}

	if filters.FollowerTier != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"d.follower_tier": *filters.FollowerTier})
	}

	if filters.GeoRegion != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"d.geo_region": *filters.GeoRegion})
	}

	if filters.MinFee != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"d.total_fee_usd": *filters.MinFee})
	}

	if filters.CreatedFrom != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"d.created_at": *filters.CreatedFrom})
	}

	if filters.CreatedTo != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"d.created_at": *filters.CreatedTo})
	}

	dealsSQL, dealsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(dealsSQL, dealsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	deals := make([]*domain.DealContribution, 0)

	for rows.Next() {
		deal := &domain.DealContribution{}
		if err := scanDeal(rows, deal); err != nil {
			return nil, fmt.Errorf("erro ao escanear deal: %w", err)
		}

		deals = append(deals, deal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return deals, nil
}

// LinkNegotiation vincula o deal à sessão de negociação que o originou.
// O vínculo só é gravado uma vez, deals já vinculados não são alterados.
func (r *dealRepository) LinkNegotiation(dealID string, userID int, negotiationID string) error {
	queryBuilder := squirrel.
		Update("deals").
		Set("negotiation_id", negotiationID).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": dealID, "user_id": userID}).
		Where(squirrel.Eq{"negotiation_id": nil}).
		PlaceholderFormat(squirrel.Dollar)

	dealsSQL, dealsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(dealsSQL, dealsArgs...)
	if err != nil {
		return fmt.Errorf("erro ao vincular negociação: %w", err)
	}

	return nil
}

func (r *dealRepository) Delete(dealID string, userID int) error {
	queryBuilder := squirrel.
		Delete("deals").
		Where(squirrel.Eq{"id": dealID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	dealsSQL, dealsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(dealsSQL, dealsArgs...)
	if err != nil {
		return fmt.Errorf("erro ao remover deal: %w", err)
	}

	return nil
}

func (r *dealRepository) selectDeals() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"d.id",
			"d.user_id",
			"d.platform",
			"d.niche",
			"d.deal_type",
			"d.content_format",
			"d.geo_region",
			"d.follower_tier",
			"d.total_fee_usd",
			"d.quoted_fee_usd",
			"d.reported_views",
			"d.negotiation_id",
			"d.share_in_pool",
			"d.created_at",
			"d.updated_at",
		).
		From(dealsTable).
		PlaceholderFormat(squirrel.Dollar)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDeal(row rowScanner, deal *domain.DealContribution) error {
	return row.Scan(
		&deal.ID,
		&deal.UserID,
		&deal.Platform,
		&deal.Niche,
		&deal.DealType,
		&deal.ContentFormat,
		&deal.GeoRegion,
		&deal.FollowerTier,
		&deal.TotalFeeUSD,
		&deal.QuotedFeeUSD,
		&deal.ReportedViews,
		&deal.NegotiationID,
		&deal.ShareInPool,
		&deal.CreatedAt,
		&deal.UpdatedAt,
	)
}
