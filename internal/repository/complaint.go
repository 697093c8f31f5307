package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/waste_complaint_system/internal/models"
	"github.com/shenikar/waste_complaint_system/internal/service"
)

const statsCacheKey = "complaints:stats"

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type ComplaintRepository struct {
	db            *pgxpool.Pool
	redisClient   *redis.Client
	statsCacheTTL time.Duration
}

func NewComplaintRepository(db *pgxpool.Pool, redisClient *redis.Client, statsCacheTTL time.Duration) service.ComplaintRepository {
	return &ComplaintRepository{
		db:            db,
		redisClient:   redisClient,
		statsCacheTTL: statsCacheTTL,
	}
}

// Create создает новую запись о жалобе в бд.
// Статус и created_at присваивает база, id возвращается вызывающему.
// Пустые name и area уходят в базу как NULL: обязательность этих полей
// проверяется ограничением NOT NULL, а не кодом приложения.
func (r *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	query := `
		INSERT INTO complaints (name, area, description, latitude, longitude, image_path, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, status, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		nullIfEmpty(complaint.Name),
		nullIfEmpty(complaint.Area),
		complaint.Description,
		complaint.Latitude,
		complaint.Longitude,
		complaint.ImagePath,
		complaint.Status,
	).Scan(&complaint.ID, &complaint.Status, &complaint.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create complaint: %w", err)
	}
	return nil
}

// GetByID возвращает жалобу по её id.
// Используется внутренне при удалении, чтобы восстановить ссылку на изображение.
func (r *ComplaintRepository) GetByID(ctx context.Context, id int64) (*models.Complaint, error) {
	complaint := &models.Complaint{}
	query := `
		SELECT
			id,
			name,
			area,
			description,
			latitude,
			longitude,
			image_path,
			status,
			created_at
		FROM complaints
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&complaint.ID,
		&complaint.Name,
		&complaint.Area,
		&complaint.Description,
		&complaint.Latitude,
		&complaint.Longitude,
		&complaint.ImagePath,
		&complaint.Status,
		&complaint.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("complaint with id %d: %w", id, service.ErrComplaintNotFound)
		}
		return nil, fmt.Errorf("failed to get complaint by id: %w", err)
	}
	return complaint, nil
}

// ListAll возвращает все жалобы от новых к старым, без пагинации
func (r *ComplaintRepository) ListAll(ctx context.Context) ([]*models.Complaint, error) {
	query := `
		SELECT
			id,
			name,
			area,
			description,
			latitude,
			longitude,
			image_path,
			status,
			created_at
		FROM complaints
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	defer rows.Close()

	complaints := make([]*models.Complaint, 0)
	for rows.Next() {
		complaint := &models.Complaint{}
		err := rows.Scan(
			&complaint.ID,
			&complaint.Name,
			&complaint.Area,
			&complaint.Description,
			&complaint.Latitude,
			&complaint.Longitude,
			&complaint.ImagePath,
			&complaint.Status,
			&complaint.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan complaint row: %w", err)
		}
		complaints = append(complaints, complaint)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return complaints, nil
}

// UpdateStatus безусловно перезаписывает статус жалобы.
// RowsAffected() == 0 для несуществующего id - не ошибка, а false.
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id int64, status string) (bool, error) {
	query := `
		UPDATE complaints SET status = $1 WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return false, fmt.Errorf("failed to update complaint status: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// Delete удаляет строку жалобы.
// Удаление файла изображения координирует вызывающий до этого вызова.
func (r *ComplaintRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `
		DELETE FROM complaints WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete complaint: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// CountAll возвращает общее количество жалоб
func (r *ComplaintRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM complaints;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count complaints: %w", err)
	}
	return count, nil
}

// CountByStatus возвращает количество жалоб с данным статусом
func (r *ComplaintRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM complaints WHERE status = $1;`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count complaints by status: %w", err)
	}
	return count, nil
}

// GetStatsFromCache пытается получить сводные счётчики из Redis
func (r *ComplaintRepository) GetStatsFromCache(ctx context.Context) (*models.Stats, error) {
	val, err := r.redisClient.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get stats from cache: %w", err)
	}

	stats := &models.Stats{}
	if err := json.Unmarshal(val, stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stats from cache: %w", err)
	}
	return stats, nil
}

// SetStatsCache сохраняет сводные счётчики в Redis
func (r *ComplaintRepository) SetStatsCache(ctx context.Context, stats *models.Stats) error {
	val, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, statsCacheKey, val, r.statsCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set stats in cache: %w", err)
	}
	return nil
}

// InvalidateStatsCache удаляет сводные счётчики из Redis кэша
func (r *ComplaintRepository) InvalidateStatsCache(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, statsCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate stats cache: %w", err)
	}
	return nil
}
