package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/creator-pricing-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-pricing-api/internal/domain"
)

const (
	cohortSnapshotsTable = "cohort_pricing_snapshots cs"
)

// CohortSnapshotRepository persiste os resumos de preço por cohort
// materializados pelo agendador.
type CohortSnapshotRepository interface {
	SaveOrUpdate(snapshots []*domain.CohortPricingSnapshot) error
	GetByCohort(cohort domain.Cohort) (*domain.CohortPricingSnapshot, error)
	ListDistinctCohorts() ([]domain.Cohort, error)
}

type cohortSnapshotRepository struct {
	conn *postgres.Connection
}

func NewCohortSnapshotRepository(conn *postgres.Connection) CohortSnapshotRepository {
	return &cohortSnapshotRepository{
		conn: conn,
	}
}

func (r *cohortSnapshotRepository) SaveOrUpdate(snapshots []*domain.CohortPricingSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("cohort_pricing_snapshots").
		Columns(
			"platform",
			"niche",
			"follower_tier",
			"geo_region",
			"deal_count",
			"avg_fee",
			"median_fee",
			"min_fee",
			"max_fee",
			"updated_at",
		).
		PlaceholderFormat(squirrel.Dollar)

	now := time.Now().UTC()

	for _, snapshot := range snapshots {
		query = query.Values(
			snapshot.Cohort.Platform,
			snapshot.Cohort.Niche,
			snapshot.Cohort.FollowerTier,
			snapshot.Cohort.GeoRegion,
			snapshot.Pricing.DealCount,
			snapshot.Pricing.AvgFee,
			snapshot.Pricing.MedianFee,
			snapshot.Pricing.MinFee,
			snapshot.Pricing.MaxFee,
			now,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (platform, niche, follower_tier, geo_region) DO UPDATE SET
			deal_count = EXCLUDED.deal_count,
			avg_fee = EXCLUDED.avg_fee,
			median_fee = EXCLUDED.median_fee,
			min_fee = EXCLUDED.min_fee,
			max_fee = EXCLUDED.max_fee,
			updated_at = EXCLUDED.updated_at
	`)

	snapshotSQL, snapshotArgs, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(snapshotSQL, snapshotArgs...)
	if err != nil {
		return fmt.Errorf("erro ao salvar snapshots de cohort: %w", err)
	}

	return nil
}

func (r *cohortSnapshotRepository) GetByCohort(cohort domain.Cohort) (*domain.CohortPricingSnapshot, error) {
	queryBuilder := squirrel.
		Select(
			"cs.platform",
			"cs.niche",
			"cs.follower_tier",
			"cs.geo_region",
			"cs.deal_count",
			"cs.avg_fee",
			"cs.median_fee",
			"cs.min_fee",
			"cs.max_fee",
			"cs.updated_at",
		).
		From(cohortSnapshotsTable).
		Where(squirrel.Eq{
			"cs.platform":      cohort.Platform,
			"cs.niche":         cohort.Niche,
			"cs.follower_tier": cohort.FollowerTier,
			"cs.geo_region":    cohort.GeoRegion,
		}).
		PlaceholderFormat(squirrel.Dollar)

	snapshotSQL, snapshotArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot := &domain.CohortPricingSnapshot{}
	err = r.conn.QueryRow(snapshotSQL, snapshotArgs...).Scan(
		&snapshot.Cohort.Platform,
		&snapshot.Cohort.Niche,
		&snapshot.Cohort.FollowerTier,
		&snapshot.Cohort.GeoRegion,
		&snapshot.Pricing.DealCount,
		&snapshot.Pricing.AvgFee,
		&snapshot.Pricing.MedianFee,
		&snapshot.Pricing.MinFee,
		&snapshot.Pricing.MaxFee,
		&snapshot.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

// ListDistinctCohorts lista os cohorts com pelo menos um deal compartilhado,
// fonte da materialização diária.
func (r *cohortSnapshotRepository) ListDistinctCohorts() ([]domain.Cohort, error) {
	queryBuilder := squirrel.
		Select("DISTINCT d.platform", "d.niche", "d.follower_tier", "d.geo_region").
		From(dealsTable).
		Where(squirrel.Eq{"d.share_in_pool": true}).
		PlaceholderFormat(squirrel.Dollar)

	cohortSQL, cohortArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(cohortSQL, cohortArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	cohorts := make([]domain.Cohort, 0)

	for rows.Next() {
		var cohort domain.Cohort
		if err := rows.Scan(
			&cohort.Platform,
			&cohort.Niche,
			&cohort.FollowerTier,
			&cohort.GeoRegion,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear cohort: %w", err)
		}

		cohorts = append(cohorts, cohort)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return cohorts, nil
}
