package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/relief_recommendation_system/internal/models"
)

// NotificationStore - in-memory хранилище уведомлений.
// Счетчик непрочитанных поддерживается инкрементально, выдача
// всегда в обратном хронологическом порядке.
type NotificationStore struct {
	mu            sync.RWMutex
	notifications map[uuid.UUID]*models.Notification
	order         []uuid.UUID // порядок добавления, старые в начале
	unread        int
	subs          map[int]chan NotificationEvent
	nextSub       int
}

// NewNotificationStore создает пустое хранилище уведомлений
func NewNotificationStore() *NotificationStore {
	return &NotificationStore{
		notifications: make(map[uuid.UUID]*models.Notification),
		subs:          make(map[int]chan NotificationEvent),
	}
}

// Subscribe возвращает канал событий и функцию отписки.
// Семантика та же, что у ReliefPointStore.Subscribe.
func (s *NotificationStore) Subscribe() (<-chan NotificationEvent, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan NotificationEvent, 64)
	s.subs[id] = ch

	unsubscribe := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return ch, unsubscribe
}

func (s *NotificationStore) publish(event NotificationEvent) {
	for _, ch := range s.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

// Push добавляет уведомление. Нераспознанный канал - ошибка ErrInvalidChannel.
func (s *NotificationStore) Push(ctx context.Context, notification *models.Notification) error {
	if !notification.Channel.IsValid() {
		return fmt.Errorf("channel %q: %w", notification.Channel, ErrInvalidChannel)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	if _, ok := s.notifications[notification.ID]; ok {
		return fmt.Errorf("notification %s: %w", notification.ID, ErrAlreadyExists)
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}
	notification.Read = false

	stored := *notification
	s.notifications[notification.ID] = &stored
	s.order = append(s.order, notification.ID)
	s.unread++

	published := stored
	s.publish(NotificationEvent{Kind: ChangeAdded, Notification: &published})
	return nil
}

// MarkRead помечает уведомление прочитанным. Повторный вызов - no-op,
// неизвестный ID - ErrNotFound. Счетчик уменьшается ровно один раз.
func (s *NotificationStore) MarkRead(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notification, ok := s.notifications[id]
	if !ok {
		return fmt.Errorf("notification %s: %w", id, ErrNotFound)
	}
	if notification.Read {
		return nil
	}

	notification.Read = true
	s.unread--

	published := *notification
	s.publish(NotificationEvent{Kind: ChangeUpdated, Notification: &published})
	return nil
}

// UnreadCount возвращает число непрочитанных уведомлений за O(1)
func (s *NotificationStore) UnreadCount(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unread
}

// List возвращает уведомления, новые первыми. Порядок определяется
// CreatedAt, а не порядком добавления: продюсер может передать
// уведомление задним числом. При равенстве времени - позже добавленные первыми.
func (s *NotificationStore) List(ctx context.Context) []*models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Notification, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		notification := *s.notifications[s.order[i]]
		result = append(result, &notification)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}
