package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AnalyticsArchive - архив аналитики в PostgreSQL. Внешний коллаборатор:
// ядро пишет в него best-effort и никогда не читает при генерации.
type AnalyticsArchive struct {
	db *pgxpool.Pool
}

func NewAnalyticsArchive(db *pgxpool.Pool) *AnalyticsArchive {
	return &AnalyticsArchive{db: db}
}

// SaveRecommendationRun сохраняет итог прохода генерации
func (r *AnalyticsArchive) SaveRecommendationRun(ctx context.Context, userID string, count int, radiusMeters float64, degraded bool) error {
	query := `
		INSERT INTO recommendation_runs (user_id, result_count, radius_meters, degraded_accuracy)
		VALUES ($1, $2, $3, $4);
	`
	if _, err := r.db.Exec(ctx, query, userID, count, radiusMeters, degraded); err != nil {
		return fmt.Errorf("failed to save recommendation run: %w", err)
	}
	return nil
}

// SaveFeedbackEvent сохраняет событие обратной связи по категории
func (r *AnalyticsArchive) SaveFeedbackEvent(ctx context.Context, userID, category string, positive bool) error {
	query := `
		INSERT INTO feedback_events (user_id, category, positive)
		VALUES ($1, $2, $3);
	`
	if _, err := r.db.Exec(ctx, query, userID, category, positive); err != nil {
		return fmt.Errorf("failed to save feedback event: %w", err)
	}
	return nil
}

// SaveLocationFix сохраняет позицию, использованную при генерации
func (r *AnalyticsArchive) SaveLocationFix(ctx context.Context, userID string, lat, lon float64, degraded bool) error {
	query := `
		INSERT INTO location_fixes (user_id, latitude, longitude, degraded_accuracy)
		VALUES ($1, $2, $3, $4);
	`
	if _, err := r.db.Exec(ctx, query, userID, lat, lon, degraded); err != nil {
		return fmt.Errorf("failed to save location fix: %w", err)
	}
	return nil
}

// CountActiveUsers возвращает количество уникальных пользователей,
// запускавших генерацию за последние minutes минут
func (r *AnalyticsArchive) CountActiveUsers(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT user_id)
		FROM recommendation_runs
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count active users: %w", err)
	}
	return count, nil
}
