package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/waste_complaint_system/internal/models"
	"github.com/shenikar/waste_complaint_system/internal/notify"
	"github.com/sirupsen/logrus"
)

// ErrComplaintNotFound возвращается репозиторием, когда жалоба с указанным id отсутствует
var ErrComplaintNotFound = errors.New("complaint not found")

// ComplaintRepository определяет контракт для работы с бд жалоб
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	GetByID(ctx context.Context, id int64) (*models.Complaint, error)
	ListAll(ctx context.Context) ([]*models.Complaint, error)
	UpdateStatus(ctx context.Context, id int64, status string) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	CountAll(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
	GetStatsFromCache(ctx context.Context) (*models.Stats, error)
	SetStatsCache(ctx context.Context, stats *models.Stats) error
	InvalidateStatsCache(ctx context.Context) error
}

// ImageStore определяет контракт для удаления файлов изображений жалоб
type ImageStore interface {
	Remove(ref string) error
}

// ComplaintService определяет контракт для бизнес-логики обработки жалоб
type ComplaintService interface {
	SubmitComplaint(ctx context.Context, complaint *models.Complaint) error
	ListComplaints(ctx context.Context) ([]*models.Complaint, error)
	UpdateStatus(ctx context.Context, id int64, status string) (bool, error)
	DeleteComplaint(ctx context.Context, id int64) (bool, error)
	GetStats(ctx context.Context) (*models.Stats, error)
}

type complaintService struct {
	repo      ComplaintRepository
	images    ImageStore
	logger    *logrus.Logger
	publisher notify.EventPublisher
}

func NewComplaintService(repo ComplaintRepository, images ImageStore, logger *logrus.Logger, publisher notify.EventPublisher) ComplaintService {
	return &complaintService{
		repo:      repo,
		images:    images,
		logger:    logger,
		publisher: publisher,
	}
}

// SubmitComplaint регистрирует новую жалобу.
// Статус всегда принудительно Pending, что бы ни прислал клиент.
func (s *complaintService) SubmitComplaint(ctx context.Context, complaint *models.Complaint) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "complaint",
		"method":  "SubmitComplaint",
		"area":    complaint.Area,
	})
	log.Info("Attempting to submit a new complaint")

	complaint.Status = models.StatusPending
	if err := s.repo.Create(ctx, complaint); err != nil {
		log.WithError(err).Error("Failed to create complaint in repository")
		return fmt.Errorf("service: could not submit complaint: %w", err)
	}

	if err := s.repo.InvalidateStatsCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate stats cache")
	}

	s.publish(ctx, notify.Event{
		Type:        notify.EventComplaintCreated,
		ComplaintID: complaint.ID,
		Area:        complaint.Area,
		Status:      complaint.Status,
		Timestamp:   time.Now(),
	})

	log.WithField("complaint_id", complaint.ID).Info("Complaint submitted successfully")
	return nil
}

// ListComplaints возвращает все жалобы, отсортированные от новых к старым.
// Пагинации нет, таблица материализуется целиком на каждый вызов.
func (s *complaintService) ListComplaints(ctx context.Context) ([]*models.Complaint, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "complaint",
		"method":  "ListComplaints",
	})

	complaints, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list complaints from repository")
		return nil, fmt.Errorf("service: could not list complaints: %w", err)
	}

	log.WithField("count", len(complaints)).Info("Complaints listed successfully")
	return complaints, nil
}

// UpdateStatus безусловно перезаписывает статус жалобы.
// Значение статуса не проверяется по перечислению Pending/Cleaned - сохраняем
// разрешительное поведение исходного контракта. Для несуществующего id
// возвращается false без ошибки.
func (s *complaintService) UpdateStatus(ctx context.Context, id int64, status string) (bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "complaint",
		"method":       "UpdateStatus",
		"complaint_id": id,
		"status":       status,
	})
	log.Info("Attempting to update complaint status")

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		log.WithError(err).Error("Failed to update complaint status in repository")
		return false, fmt.Errorf("service: could not update complaint status: %w", err)
	}

	if !updated {
		log.Warn("No complaint affected by status update")
		return false, nil
	}

	if err := s.repo.InvalidateStatsCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate stats cache")
	}

	s.publish(ctx, notify.Event{
		Type:        notify.EventStatusUpdated,
		ComplaintID: id,
		Status:      status,
		Timestamp:   time.Now(),
	})

	log.Info("Complaint status updated successfully")
	return true, nil
}

// DeleteComplaint удаляет жалобу и по возможности связанный файл изображения.
// Файл удаляется до строки; неудачное удаление файла не блокирует удаление записи.
func (s *complaintService) DeleteComplaint(ctx context.Context, id int64) (bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "complaint",
		"method":       "DeleteComplaint",
		"complaint_id": id,
	})
	log.Info("Attempting to delete complaint")

	complaint, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrComplaintNotFound) {
			log.Warn("Attempted to delete a non-existent complaint")
			return false, nil
		}
		log.WithError(err).Error("Failed to get complaint before delete")
		return false, fmt.Errorf("service: could not delete complaint: %w", err)
	}

	if complaint.ImagePath != nil && *complaint.ImagePath != "" {
		if err := s.images.Remove(*complaint.ImagePath); err != nil {
			log.WithError(err).Warn("Failed to remove complaint image file")
		}
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to delete complaint in repository")
		return false, fmt.Errorf("service: could not delete complaint: %w", err)
	}

	if deleted {
		if err := s.repo.InvalidateStatsCache(ctx); err != nil {
			log.WithError(err).Warn("Failed to invalidate stats cache")
		}

		s.publish(ctx, notify.Event{
			Type:        notify.EventComplaintDeleted,
			ComplaintID: id,
			Timestamp:   time.Now(),
		})
	}

	log.Info("Complaint deleted successfully")
	return deleted, nil
}

// GetStats возвращает сводные счётчики для панели муниципалитета с кэшированием в Redis
func (s *complaintService) GetStats(ctx context.Context) (*models.Stats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "complaint",
		"method":  "GetStats",
	})

	cached, err := s.repo.GetStatsFromCache(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read stats from cache")
	}
	if cached != nil {
		return cached, nil
	}

	total, err := s.repo.CountAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to count complaints")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}
	pending, err := s.repo.CountByStatus(ctx, models.StatusPending)
	if err != nil {
		log.WithError(err).Error("Failed to count pending complaints")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}
	cleaned, err := s.repo.CountByStatus(ctx, models.StatusCleaned)
	if err != nil {
		log.WithError(err).Error("Failed to count cleaned complaints")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}

	stats := &models.Stats{
		Total:   total,
		Pending: pending,
		Cleaned: cleaned,
	}

	if err := s.repo.SetStatsCache(ctx, stats); err != nil {
		log.WithError(err).Warn("Failed to write stats to cache")
	}

	return stats, nil
}

// publish отправляет событие в очередь уведомлений.
// Ошибка публикации не влияет на результат запроса.
func (s *complaintService) publish(ctx context.Context, event notify.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).Warn("Failed to publish complaint event")
	}
}
