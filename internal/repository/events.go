package repository

import (
	"errors"

	"github.com/shenikar/relief_recommendation_system/internal/models"
)

// Ошибки уровня хранилища. Сервисы оборачивают их через %w,
// хендлеры проверяют через errors.Is.
var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrInvalidChannel = errors.New("invalid notification channel")
)

// ChangeKind - вид изменения в сторе
type ChangeKind string

const (
	ChangeAdded   ChangeKind = "added"
	ChangeUpdated ChangeKind = "updated"
	ChangeRemoved ChangeKind = "removed"
)

// ReliefPointEvent публикуется подписчикам стора пунктов помощи
// при каждой мутации. Point - копия состояния после мутации
// (для removed - последнее состояние перед удалением).
type ReliefPointEvent struct {
	Kind  ChangeKind
	Point *models.ReliefPoint
}

// NotificationEvent публикуется подписчикам стора уведомлений
type NotificationEvent struct {
	Kind         ChangeKind
	Notification *models.Notification
}
