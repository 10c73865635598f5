package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/passgen/passgen-go/internal/model"
)

var schemas = map[string]string{
	DriverMySQL: `CREATE TABLE IF NOT EXISTS generation_events (
		id           BIGINT AUTO_INCREMENT PRIMARY KEY,
		kind         VARCHAR(16) NOT NULL,
		length       INT NOT NULL,
		score        INT NOT NULL,
		label        VARCHAR(16) NOT NULL,
		entropy_bits INT NOT NULL,
		created_at   TIMESTAMP NOT NULL
	)`,
	DriverSQLite: `CREATE TABLE IF NOT EXISTS generation_events (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		kind         TEXT NOT NULL,
		length       INTEGER NOT NULL,
		score        INTEGER NOT NULL,
		label        TEXT NOT NULL,
		entropy_bits INTEGER NOT NULL,
		created_at   TIMESTAMP NOT NULL
	)`,
}

// StatsRepository persists anonymous generation events. Passwords are never stored.
type StatsRepository struct {
	db     *sql.DB
	driver string
}

// NewStatsRepository creates a new StatsRepository.
func NewStatsRepository(db *sql.DB, driver string) *StatsRepository {
	return &StatsRepository{db: db, driver: driver}
}

// EnsureSchema creates the events table when it does not exist.
func (r *StatsRepository) EnsureSchema(ctx context.Context) error {
	schema, ok := schemas[r.driver]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, r.driver)
	}
	_, err := r.db.ExecContext(ctx, schema)
	return err
}

// Record inserts a generation event and sets its ID.
func (r *StatsRepository) Record(ctx context.Context, event *model.GenerationEvent) error {
	query := `INSERT INTO generation_events (kind, length, score, label, entropy_bits, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		event.Type,
		event.Length,
		event.Score,
		event.Label,
		event.EntropyBits,
		event.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	event.ID = id
	return nil
}

// CountByType returns the number of events per generator type.
func (r *StatsRepository) CountByType(ctx context.Context) (map[string]int64, error) {
	return r.countBy(ctx, `SELECT kind, COUNT(*) FROM generation_events GROUP BY kind`)
}

// CountByLabel returns the number of events per strength label.
func (r *StatsRepository) CountByLabel(ctx context.Context) (map[string]int64, error) {
	return r.countBy(ctx, `SELECT label, COUNT(*) FROM generation_events GROUP BY label`)
}

// Totals returns the event count and the mean entropy over all events.
func (r *StatsRepository) Totals(ctx context.Context) (int64, float64, error) {
	query := `SELECT COUNT(*), COALESCE(AVG(entropy_bits), 0) FROM generation_events`

	var (
		total int64
		avg   float64
	)
	if err := r.db.QueryRowContext(ctx, query).Scan(&total, &avg); err != nil {
		return 0, 0, err
	}
	return total, avg, nil
}

func (r *StatsRepository) countBy(ctx context.Context, query string) (map[string]int64, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var (
			key string
			n   int64
		)
		if err := rows.Scan(&key, &n); err != nil {
			return nil, err
		}
		counts[key] = n
	}

	return counts, rows.Err()
}
