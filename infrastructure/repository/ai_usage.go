package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/creator-pricing-api/infrastructure/database/postgres"
)

const (
	aiUsageTable = "ai_usage au"
)

// AIUsageRepository controla a cota diária de chamadas ao narrador por usuário.
type AIUsageRepository interface {
	CountForDay(userID int, day time.Time) (int, error)
	Increment(userID int, day time.Time) error
}

type aiUsageRepository struct {
	conn *postgres.Connection
}

func NewAIUsageRepository(conn *postgres.Connection) AIUsageRepository {
	return &aiUsageRepository{
		conn: conn,
	}
}

func (r *aiUsageRepository) CountForDay(userID int, day time.Time) (int, error) {
	queryBuilder := squirrel.
		Select("COALESCE(SUM(au.calls), 0)").
		From(aiUsageTable).
		Where(squirrel.Eq{"au.user_id": userID, "au.usage_date": day.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar)

	usageSQL, usageArgs, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(usageSQL, usageArgs...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao consultar uso do narrador: %w", err)
	}

	return count, nil
}

func (r *aiUsageRepository) Increment(userID int, day time.Time) error {
	queryBuilder := squirrel.
		Insert("ai_usage").
		Columns("user_id", "usage_date", "calls").
		Values(userID, day.Format("2006-01-02"), 1).
		Suffix(`
			ON CONFLICT (user_id, usage_date) DO UPDATE SET
				calls = ai_usage.calls + 1
		`).
		PlaceholderFormat(squirrel.Dollar)

	usageSQL, usageArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(usageSQL, usageArgs...)
	if err != nil {
		return fmt.Errorf("erro ao registrar uso do narrador: %w", err)
	}

	return nil
}
