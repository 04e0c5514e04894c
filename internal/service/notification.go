package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/relief_recommendation_system/internal/models"
	"github.com/shenikar/relief_recommendation_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// NotificationRepository определяет контракт хранилища уведомлений
type NotificationRepository interface {
	Push(ctx context.Context, notification *models.Notification) error
	MarkRead(ctx context.Context, id uuid.UUID) error
	UnreadCount(ctx context.Context) int
	List(ctx context.Context) []*models.Notification
}

// NotificationService определяет контракт бизнес-логики уведомлений
type NotificationService interface {
	Push(ctx context.Context, notification *models.Notification) error
	MarkRead(ctx context.Context, id uuid.UUID) error
	UnreadCount(ctx context.Context) int
	List(ctx context.Context) []*models.Notification
}

type notificationService struct {
	repo      NotificationRepository
	logger    *logrus.Logger
	publisher webhook.AlertPublisher
}

func NewNotificationService(repo NotificationRepository, logger *logrus.Logger, publisher webhook.AlertPublisher) NotificationService {
	return &notificationService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

// Push сохраняет уведомление и передает его внешнему диспетчеру.
// Ошибка доставки логируется и не считается ошибкой сохранения.
func (s *notificationService) Push(ctx context.Context, notification *models.Notification) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "notification",
		"method":  "Push",
		"channel": notification.Channel,
	})
	log.Info("Attempting to push notification")

	if err := s.repo.Push(ctx, notification); err != nil {
		log.WithError(err).Error("Failed to push notification to store")
		return fmt.Errorf("service: could not push notification: %w", err)
	}

	if s.publisher != nil {
		event := webhook.AlertEvent{
			NotificationID: notification.ID,
			Title:          notification.Title,
			Body:           notification.Body,
			Channel:        notification.Channel,
			Urgency:        notification.Channel.Urgency(),
			CreatedAt:      notification.CreatedAt,
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			// Доставка best-effort: стор уже обновлен, наружу не отдаем
			log.WithError(err).Warn("Failed to publish alert event for delivery")
		}
	}

	log.WithField("notification_id", notification.ID).Info("Notification pushed successfully")
	return nil
}

// MarkRead помечает уведомление прочитанным
func (s *notificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":         "notification",
		"method":          "MarkRead",
		"notification_id": id,
	})

	if err := s.repo.MarkRead(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to mark notification as read")
		return fmt.Errorf("service: could not mark notification as read: %w", err)
	}
	return nil
}

// UnreadCount возвращает число непрочитанных уведомлений
func (s *notificationService) UnreadCount(ctx context.Context) int {
	return s.repo.UnreadCount(ctx)
}

// List возвращает уведомления, новые первыми
func (s *notificationService) List(ctx context.Context) []*models.Notification {
	return s.repo.List(ctx)
}
