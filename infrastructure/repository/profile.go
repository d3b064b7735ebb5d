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
	profilesTable = "creator_profiles p"
)

type ProfileRepository interface {
	GetByUserID(userID int) (*domain.CreatorProfile, error)
	SaveOrUpdate(profile *domain.CreatorProfile) (*domain.CreatorProfile, error)
}

type profileRepository struct {
	conn *postgres.Connection
}

func NewProfileRepository(conn *postgres.Connection) ProfileRepository {
	return &profileRepository{
		conn: conn,
	}
}

func (r *profileRepository) GetByUserID(userID int) (*domain.CreatorProfile, error) {
	queryBuilder := squirrel.
		Select(
			"p.id",
			"p.user_id",
			"p.display_name",
			"p.primary_platform",
			"p.niche",
			"p.geo_region",
			"p.followers",
			"p.avg_views",
			"p.engagement_rate",
			"p.created_at",
			"p.updated_at",
		).
		From(profilesTable).
		Where(squirrel.Eq{"p.user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	profileSQL, profileArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	profile := &domain.CreatorProfile{}
	err = r.conn.QueryRow(profileSQL, profileArgs...).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.DisplayName,
		&profile.PrimaryPlatform,
		&profile.Niche,
		&profile.GeoRegion,
		&profile.Followers,
		&profile.AvgViews,
		&profile.EngagementRate,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return profile, nil
}

func (r *profileRepository) SaveOrUpdate(profile *domain.CreatorProfile) (*domain.CreatorProfile, error) {
	now := time.Now().UTC()

	queryBuilder := squirrel.
		Insert("creator_profiles").
		Columns(
			"user_id",
			"display_name",
			"primary_platform",
			"niche",
			"geo_region",
			"followers",
			"avg_views",
			"engagement_rate",
			"created_at",
			"updated_at",
		).
		Values(
			profile.UserID,
			profile.DisplayName,
			profile.PrimaryPlatform,
			profile.Niche,
			profile.GeoRegion,
			profile.Followers,
			profile.AvgViews,
			profile.EngagementRate,
			now,
			now,
		).
		Suffix(`
			ON CONFLICT (user_id) DO UPDATE SET
				display_name = EXCLUDED.display_name,
				primary_platform = EXCLUDED.primary_platform,
				niche = EXCLUDED.niche,
				geo_region = EXCLUDED.geo_region,
				followers = EXCLUDED.followers,
				avg_views = EXCLUDED.avg_views,
				engagement_rate = EXCLUDED.engagement_rate,
				updated_at = EXCLUDED.updated_at
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar)

	profileSQL, profileArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(profileSQL, profileArgs...).Scan(&profile.ID); err != nil {
		return nil, fmt.Errorf("erro ao salvar perfil: %w", err)
	}

	profile.UpdatedAt = now

	return profile, nil
}
