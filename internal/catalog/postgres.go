package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"unibridge.app/compass/internal/model"
)

// Column defaults applied when the backing row carries nulls. These
// match the upstream portal's schema defaults.
const (
	defaultCurrency = "NGN"
	defaultLocation = "Nigeria"
)

const activeQuery = `
SELECT id, type, title, organization,
       COALESCE(description, ''), amount, currency,
       deadline, requirements, skills, location, is_remote,
       COALESCE(application_url, ''), tags, created_at
FROM opportunities
WHERE deadline >= CURRENT_DATE
ORDER BY deadline
LIMIT $1`

// PostgresSource reads the active opportunity catalog from Postgres.
type PostgresSource struct {
	pool  *pgxpool.Pool
	limit int
}

func NewPostgresSource(pool *pgxpool.Pool, limit int) *PostgresSource {
	if limit <= 0 {
		limit = 200
	}
	return &PostgresSource{pool: pool, limit: limit}
}

func (s *PostgresSource) Active(ctx context.Context) ([]model.Opportunity, error) {
	rows, err := s.pool.Query(ctx, activeQuery, s.limit)
	if err != nil {
		return nil, fmt.Errorf("querying opportunities: %w", err)
	}
	defer rows.Close()

	var opportunities []model.Opportunity
	for rows.Next() {
		var (
			opp          model.Opportunity
			currency     *string
			location     *string
			requirements []string
			skills       []string
			tags         []string
			deadline     time.Time
		)
		if err := rows.Scan(
			&opp.ID, &opp.Type, &opp.Title, &opp.Organization,
			&opp.Description, &opp.Amount, &currency,
			&deadline, &requirements, &skills, &location, &opp.IsRemote,
			&opp.ApplicationURL, &tags, &opp.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning opportunity: %w", err)
		}
		opp.Deadline = deadline
		opp.Currency = stringOr(currency, defaultCurrency)
		opp.Location = stringOr(location, defaultLocation)
		opp.Requirements = sliceOrEmpty(requirements)
		opp.Skills = sliceOrEmpty(skills)
		opp.Tags = sliceOrEmpty(tags)
		opportunities = append(opportunities, opp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading opportunities: %w", err)
	}

	return opportunities, nil
}

func stringOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}

func sliceOrEmpty(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
