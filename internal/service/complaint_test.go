package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/shenikar/waste_complaint_system/internal/models"
	"github.com/shenikar/waste_complaint_system/internal/notify"
	notify_mocks "github.com/shenikar/waste_complaint_system/internal/notify/mocks"
	"github.com/shenikar/waste_complaint_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestComplaintService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestComplaintService(t *testing.T) (*complaintService, *mocks.MockComplaintRepository, *mocks.MockImageStore, *notify_mocks.MockEventPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockComplaintRepository(ctrl)
	imagesMock := mocks.NewMockImageStore(ctrl)
	publisherMock := notify_mocks.NewMockEventPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewComplaintService(repoMock, imagesMock, logger, publisherMock)
	return service.(*complaintService), repoMock, imagesMock, publisherMock
}

func strPtr(s string) *string { return &s }

func TestSubmitComplaint_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, publisherMock := newTestComplaintService(t)
	ctx := context.Background()
	complaintToCreate := &models.Complaint{
		Name: "Равшан",
		Area: "Сектор 12",
	}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		// Статус должен быть принудительно Pending до вызова репозитория.
		DoAndReturn(func(ctx context.Context, c *models.Complaint) error {
			assert.Equal(t, models.StatusPending, c.Status)
			// Симулируем, что БД присвоила ID
			c.ID = 7
			return nil
		}).Times(1)

	repoMock.EXPECT().
		InvalidateStatsCache(ctx).
		Return(nil).
		Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event notify.Event) {
			assert.Equal(t, notify.EventComplaintCreated, event.Type)
			assert.Equal(t, int64(7), event.ComplaintID)
			assert.Equal(t, "Сектор 12", event.Area)
		}).Return(nil).Times(1)

	// Действие
	err := service.SubmitComplaint(ctx, complaintToCreate)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, complaintToCreate.Status)
	assert.Equal(t, int64(7), complaintToCreate.ID)
}

func TestSubmitComplaint_ForcesPendingStatus(t *testing.T) {
	// Подготовка
	service, repoMock, _, publisherMock := newTestComplaintService(t)
	ctx := context.Background()
	// Клиент пытается сразу создать "убранную" жалобу
	complaintToCreate := &models.Complaint{
		Name:   "Хитрый клиент",
		Area:   "Сектор 1",
		Status: models.StatusCleaned,
	}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		Do(func(ctx context.Context, c *models.Complaint) {
			assert.Equal(t, models.StatusPending, c.Status)
		}).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateStatsCache(ctx).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	err := service.SubmitComplaint(ctx, complaintToCreate)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, complaintToCreate.Status)
}

func TestSubmitComplaint_RepositoryError(t *testing.T) {
	// Подготовка
	service, repoMock, _, publisherMock := newTestComplaintService(t)
	ctx := context.Background()
	complaintToCreate := &models.Complaint{Area: "Сектор 3"}
	dbError := fmt.Errorf("нарушение ограничения NOT NULL")

	// Ожидания
	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(dbError).Times(1)
	// Кэш и события не трогаем при ошибке вставки
	repoMock.EXPECT().InvalidateStatsCache(gomock.Any()).Times(0)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.SubmitComplaint(ctx, complaintToCreate)

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not submit complaint")
}

func TestSubmitComplaint_CacheAndPublishErrorsIgnored(t *testing.T) {
	// Подготовка
	service, repoMock, _, publisherMock := newTestComplaintService(t)
	ctx := context.Background()
	complaintToCreate := &models.Complaint{Name: "Анна", Area: "Сектор 5"}

	// Ожидания
	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateStatsCache(ctx).Return(fmt.Errorf("redis недоступен")).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(fmt.Errorf("очередь недоступна")).Times(1)

	// Действие
	err := service.SubmitComplaint(ctx, complaintToCreate)

	// Проверки: сбои кэша и очереди не влияют на результат
	require.NoError(t, err)
}

func TestListComplaints_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestComplaintService(t)
	ctx := context.Background()
	expectedComplaints := []*models.Complaint{
		{ID: 2, Name: "Жалоба 2"},
		{ID: 1, Name: "Жалоба 1"},
	}

	// Ожидания
	repoMock.EXPECT().ListAll(ctx).Return(expectedComplaints, nil).Times(1)

	// Действие
	complaints, err := service.ListComplaints(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedComplaints, complaints)
}

func TestListComplaints_RepositoryError(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestComplaintService(t)
	ctx := context.Background()
	dbError := fmt.Errorf("соединение разорвано")

	// Ожидания
	repoMock.EXPECT().ListAll(ctx).Return(nil, dbError).Times(1)

	// Действие
	complaints, err := service.ListComplaints(ctx)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, complaints)
	assert.ErrorContains(t, err, "could not list complaints")
}

func TestUpdateStatus_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, publisherMock := newTestComplaintService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().UpdateStatus(ctx, int64(3), models.StatusCleaned).Return(true, nil).Times(1)
	repoMock.EXPECT().InvalidateStatsCache(ctx).Return(nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event notify.Event) {
			assert.Equal(t, notify.EventStatusUpdated, event.Type)
			assert.Equal(t, int64(3), event.ComplaintID)
			assert.Equal(t, models.StatusCleaned, event.Status)
		}).Return(nil).Times(1)

	// Действие
	updated, err := service.UpdateStatus(ctx, 3, models.StatusCleaned)

	// Проверки
	require.NoError(t, err)
	assert.True(t, updated)
}

func TestUpdateStatus_ArbitraryValueAccepted(t *testing.T) {
	// Подготовка
	// Статус не проверяется по перечислению - произвольная строка проходит как есть.
	service, repoMock, _, publisherMock := newTestComplaintService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().UpdateStatus(ctx, int64(3), "In Progress").Return(true, nil).Times(1)
	repoMock.EXPECT().InvalidateStatsCache(ctx).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	updated, err := service.UpdateStatus(ctx, 3, "In Progress")

	// Проверки
	require.NoError(t, err)
	assert.True(t, updated)
}

func TestUpdateStatus_UnknownID(t *testing.T) {
	// Подготовка
	service, repoMock, _, publisherMock := newTestComplaintService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().UpdateStatus(ctx, int64(999), models.StatusCleaned).Return(false, nil).Times(1)
	// Для несуществующего id кэш не сбрасывается и событие не публикуется
	repoMock.EXPECT().InvalidateStatsCache(gomock.Any()).Times(0)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	updated, err := service.UpdateStatus(ctx, 999, models.StatusCleaned)

	// Проверки: несуществующий id не считается ошибкой
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestUpdateStatus_RepositoryError(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestComplaintService(t)
	ctx := context.Background()
	dbError := fmt.Errorf("соединение разорвано")

	// Ожидания
	repoMock.EXPECT().UpdateStatus(ctx, int64(3), models.StatusCleaned).Return(false, dbError).Times(1)

	// Действие
	updated, err := service.UpdateStatus(ctx, 3, models.StatusCleaned)

	// Проверки
	require.Error(t, err)
	assert.False(t, updated)
	assert.ErrorContains(t, err, "could not update complaint status")
}

func TestDeleteComplaint_Success_WithImage(t *testing.T) {
	// Подготовка
	service, repoMock, imagesMock, publisherMock := newTestComplaintService(t)
	ctx := context.Background()
	existing := &models.Complaint{
		ID:        5,
		Name:      "Равшан",
		ImagePath: strPtr("1700000000_trash.jpg"),
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, int64(5)).Return(existing, nil).Times(1)
	// Файл удаляется до строки в БД
	imagesMock.EXPECT().Remove("1700000000_trash.jpg").Return(nil).Times(1)
	repoMock.EXPECT().Delete(ctx, int64(5)).Return(true, nil).Times(1)
	repoMock.EXPECT().InvalidateStatsCache(ctx).Return(nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event notify.Event) {
			assert.Equal(t, notify.EventComplaintDeleted, event.Type)
			assert.Equal(t, int64(5), event.ComplaintID)
		}).Return(nil).Times(1)

	// Действие
	deleted, err := service.DeleteComplaint(ctx, 5)

	// Проверки
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDeleteComplaint_Success_WithoutImage(t *testing.T) {
	// Подготовка
	service, repoMock, imagesMock, publisherMock := newTestComplaintService(t)
	ctx := context.Background()
	existing := &models.Complaint{ID: 6, Name: "Анна"}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, int64(6)).Return(existing, nil).Times(1)
	imagesMock.EXPECT().Remove(gomock.Any()).Times(0)
	repoMock.EXPECT().Delete(ctx, int64(6)).Return(true, nil).Times(1)
	repoMock.EXPECT().InvalidateStatsCache(ctx).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	deleted, err := service.DeleteComplaint(ctx, 6)

	// Проверки
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDeleteComplaint_ImageRemoveFailureIgnored(t *testing.T) {
	// Подготовка
	service, repoMock, imagesMock, publisherMock := newTestComplaintService(t)
	ctx := context.Background()
	existing := &models.Complaint{
		ID:        7,
		ImagePath: strPtr("1700000000_trash.jpg"),
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, int64(7)).Return(existing, nil).Times(1)
	imagesMock.EXPECT().Remove("1700000000_trash.jpg").Return(fmt.Errorf("доступ запрещён")).Times(1)
	// Строка в БД удаляется несмотря на проблему с файлом
	repoMock.EXPECT().Delete(ctx, int64(7)).Return(true, nil).Times(1)
	repoMock.EXPECT().InvalidateStatsCache(ctx).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	deleted, err := service.DeleteComplaint(ctx, 7)

	// Проверки
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDeleteComplaint_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, imagesMock, publisherMock := newTestComplaintService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, int64(404)).
		Return(nil, fmt.Errorf("complaint with id 404: %w", ErrComplaintNotFound)).
		Times(1)
	imagesMock.EXPECT().Remove(gomock.Any()).Times(0)
	repoMock.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	deleted, err := service.DeleteComplaint(ctx, 404)

	// Проверки: несуществующий id не считается ошибкой
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeleteComplaint_RepositoryError(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestComplaintService(t)
	ctx := context.Background()
	dbError := fmt.Errorf("соединение разорвано")

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, int64(8)).Return(nil, dbError).Times(1)

	// Действие
	deleted, err := service.DeleteComplaint(ctx, 8)

	// Проверки
	require.Error(t, err)
	assert.False(t, deleted)
	assert.ErrorContains(t, err, "could not delete complaint")
}

func TestGetStats_Success_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestComplaintService(t)
	ctx := context.Background()
	expectedStats := &models.Stats{Total: 10, Pending: 7, Cleaned: 3}

	// Ожидания
	repoMock.EXPECT().GetStatsFromCache(ctx).Return(expectedStats, nil).Times(1)

	// Действие
	stats, err := service.GetStats(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedStats, stats)
}

func TestGetStats_Success_FromDB(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestComplaintService(t)
	ctx := context.Background()

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().GetStatsFromCache(ctx).Return(nil, nil).Times(1)

	// 2. Подсчёт из БД
	repoMock.EXPECT().CountAll(ctx).Return(10, nil).Times(1)
	repoMock.EXPECT().CountByStatus(ctx, models.StatusPending).Return(7, nil).Times(1)
	repoMock.EXPECT().CountByStatus(ctx, models.StatusCleaned).Return(3, nil).Times(1)

	// 3. Запись в кеш
	repoMock.EXPECT().
		SetStatsCache(ctx, &models.Stats{Total: 10, Pending: 7, Cleaned: 3}).
		Return(nil).
		Times(1)

	// Действие
	stats, err := service.GetStats(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, &models.Stats{Total: 10, Pending: 7, Cleaned: 3}, stats)
}

func TestGetStats_CacheErrorFallsThroughToDB(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestComplaintService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().GetStatsFromCache(ctx).Return(nil, fmt.Errorf("redis недоступен")).Times(1)
	repoMock.EXPECT().CountAll(ctx).Return(1, nil).Times(1)
	repoMock.EXPECT().CountByStatus(ctx, models.StatusPending).Return(1, nil).Times(1)
	repoMock.EXPECT().CountByStatus(ctx, models.StatusCleaned).Return(0, nil).Times(1)
	repoMock.EXPECT().SetStatsCache(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	stats, err := service.GetStats(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
}

func TestGetStats_CountError(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestComplaintService(t)
	ctx := context.Background()
	dbError := fmt.Errorf("соединение разорвано")

	// Ожидания
	repoMock.EXPECT().GetStatsFromCache(ctx).Return(nil, nil).Times(1)
	repoMock.EXPECT().CountAll(ctx).Return(0, dbError).Times(1)

	// Действие
	stats, err := service.GetStats(ctx)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, stats)
	assert.ErrorContains(t, err, "could not get stats")
}
