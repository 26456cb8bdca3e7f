package repositories

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/investflow/investflow/internal/logger"
	"github.com/jmoiron/sqlx"
)

// SettingsReaderRepository reads key/value configuration owned by the
// admin surface. Missing keys fall back to the provided default.
type SettingsReaderRepository struct {
	db *sqlx.DB
}

func NewSettingsReaderRepository(db *sqlx.DB) *SettingsReaderRepository {
	return &SettingsReaderRepository{db: db}
}

func (r *SettingsReaderRepository) get(ctx context.Context, key string) (string, error) {
	const query = `
		SELECT value
		FROM settings
		WHERE key = $1
	`

	var value string
	err := r.db.GetContext(ctx, &value, query, key)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{key},
		"result", value,
		"error", err,
	)

	return value, err
}

// GetFloat returns the setting parsed as float64, or the default when
// the key is absent or malformed.
func (r *SettingsReaderRepository) GetFloat(ctx context.Context, key string, def float64) (float64, error) {
	value, err := r.get(ctx, key)
	if err == sql.ErrNoRows {
		return def, nil
	}
	if err != nil {
		return def, err
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logger.Log.Warnw("malformed setting value, using default", "key", key, "value", value, "default", def)
		return def, nil
	}
	return parsed, nil
}

// GetInt returns the setting parsed as int, or the default when the key
// is absent or malformed.
func (r *SettingsReaderRepository) GetInt(ctx context.Context, key string, def int) (int, error) {
	value, err := r.get(ctx, key)
	if err == sql.ErrNoRows {
		return def, nil
	}
	if err != nil {
		return def, err
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		logger.Log.Warnw("malformed setting value, using default", "key", key, "value", value, "default", def)
		return def, nil
	}
	return parsed, nil
}
