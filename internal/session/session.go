package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/relief_recommendation_system/internal/models"
	"github.com/shenikar/relief_recommendation_system/internal/repository"
)

type contextKey struct{}

// userIDKey - ключ контекста, под которым middleware кладет ID пользователя
var userIDKey = contextKey{}

// WithUserID возвращает контекст с привязанным ID пользователя
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// Registry - in-memory реестр пользователей сессионного слоя.
// Ядро читает пользователя через CurrentUser и не мутирует его,
// кроме обновления позиции через RefreshLocation.
type Registry struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

// NewRegistry создает пустой реестр пользователей
func NewRegistry() *Registry {
	return &Registry{
		users: make(map[string]*models.User),
	}
}

// Upsert регистрирует пользователя при входе или обновляет его профиль
func (r *Registry) Upsert(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		return fmt.Errorf("session: user id must not be empty")
	}
	if !user.Role.IsValid() {
		return fmt.Errorf("session: unknown role %q", user.Role)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneUser(user)
	r.users[user.ID] = stored
	return nil
}

// RefreshLocation обновляет последнюю известную позицию пользователя
func (r *Registry) RefreshLocation(ctx context.Context, userID string, lat, lon float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("session: user %s: %w", userID, repository.ErrNotFound)
	}
	user.Location = &models.Location{
		Latitude:  lat,
		Longitude: lon,
		FixedAt:   time.Now(),
	}
	return nil
}

// CurrentUser возвращает пользователя, привязанного к контексту запроса.
// (nil, nil) означает неавторизованный запрос - это не ошибка.
func (r *Registry) CurrentUser(ctx context.Context) (*models.User, error) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return nil, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	return cloneUser(user), nil
}

func cloneUser(user *models.User) *models.User {
	clone := *user
	if user.Location != nil {
		location := *user.Location
		clone.Location = &location
	}
	if user.Tags != nil {
		clone.Tags = append([]string(nil), user.Tags...)
	}
	return &clone
}
