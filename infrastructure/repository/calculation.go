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
	calculationsTable = "calculations c"
)

type CalculationRepository interface {
	Save(calc *domain.Calculation) (*domain.Calculation, error)
	ListByUser(userID int, limit uint64) ([]*domain.Calculation, error)
	CountByUserBetween(userID int, from, to time.Time) (int, error)
}

type calculationRepository struct {
	conn *postgres.Connection
}

func NewCalculationRepository(conn *postgres.Connection) CalculationRepository {
	return &calculationRepository{
		conn: conn,
	}
}

func (r *calculationRepository) Save(calc *domain.Calculation) (*domain.Calculation, error) {
	if calc.ID == "" {
		id, err := utils.GenerateID("calc")
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID do cálculo: %w", err)
		}
		calc.ID = id
	}

	if calc.CreatedAt.IsZero() {
		calc.CreatedAt = time.Now().UTC()
	}

	queryBuilder := squirrel.
		Insert("calculations").
		Columns(
			"id",
			"user_id",
			"platform",
			"niche",
			"deal_type",
			"geo_region",
			"followers",
			"avg_views",
			"engagement_rate",
			"recommended_min",
			"recommended_max",
			"base_cpm",
			"niche_multiplier",
			"engagement_multiplier",
			"geo_multiplier",
			"created_at",
		).
		Values(
			calc.ID,
			calc.UserID,
			calc.Platform,
			calc.Niche,
			calc.DealType,
			calc.GeoRegion,
			calc.Followers,
			calc.AvgViews,
			calc.EngagementRate,
			calc.RecommendedMin,
			calc.RecommendedMax,
			calc.BaseCPM,
			calc.NicheMultiplier,
			calc.EngagementMultiplier,
			calc.GeoMultiplier,
			calc.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	calcSQL, calcArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(calcSQL, calcArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao salvar cálculo: %w", err)
	}

	return calc, nil
}

func (r *calculationRepository) ListByUser(userID int, limit uint64) ([]*domain.Calculation, error) {
	queryBuilder := squirrel.
		Select(
			"c.id",
			"c.user_id",
			"c.platform",
			"c.niche",
			"c.deal_type",
			"c.geo_region",
			"c.followers",
			"c.avg_views",
			"c.engagement_rate",
			"c.recommended_min",
			"c.recommended_max",
			"c.base_cpm",
			"c.niche_multiplier",
			"c.engagement_multiplier",
			"c.geo_multiplier",
			"c.created_at",
		).
		From(calculationsTable).
		Where(squirrel.Eq{"c.user_id": userID}).
		OrderBy("c.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(limit)
	}

	calcSQL, calcArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(calcSQL, calcArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	calcs := make([]*domain.Calculation, 0)

	for rows.Next() {
		calc := &domain.Calculation{}
		if err := rows.Scan(
			&calc.ID,
			&calc.UserID,
			&calc.Platform,
			&calc.Niche,
			&calc.DealType,
			&calc.GeoRegion,
			&calc.Followers,
			&calc.AvgViews,
			&calc.EngagementRate,
			&calc.RecommendedMin,
			&calc.RecommendedMax,
			&calc.BaseCPM,
			&calc.NicheMultiplier,
			&calc.EngagementMultiplier,
			&calc.GeoMultiplier,
			&calc.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear cálculo: %w", err)
		}

		calcs = append(calcs, calc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return calcs, nil
}

// CountByUserBetween conta os cálculos do usuário na janela informada,
// usada para aplicar o limite mensal do plano gratuito.
func (r *calculationRepository) CountByUserBetween(userID int, from, to time.Time) (int, error) {
	queryBuilder := squirrel.
		Select("COUNT(*)").
		From(calculationsTable).
		Where(squirrel.Eq{"c.user_id": userID}).
		Where(squirrel.GtOrEq{"c.created_at": from}).
		Where(squirrel.Lt{"c.created_at": to}).
		PlaceholderFormat(squirrel.Dollar)

	calcSQL, calcArgs, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(calcSQL, calcArgs...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar cálculos: %w", err)
	}

	return count, nil
}
