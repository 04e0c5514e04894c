package session

import (
	"context"
	"testing"

	"github.com/shenikar/relief_recommendation_system/internal/models"
	"github.com/shenikar/relief_recommendation_system/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Upsert_Validation(t *testing.T) {
	// Подготовка
	registry := NewRegistry()
	ctx := context.Background()

	// Действие и проверки: пустой ID и неизвестная роль отклоняются
	err := registry.Upsert(ctx, &models.User{ID: "", Role: models.RoleVictim})
	require.Error(t, err)

	err = registry.Upsert(ctx, &models.User{ID: "user-1", Role: models.Role("admin")})
	require.Error(t, err)

	err = registry.Upsert(ctx, &models.User{ID: "user-1", Role: models.RoleVolunteer})
	require.NoError(t, err)
}

func TestRegistry_CurrentUser_Anonymous(t *testing.T) {
	// Подготовка
	registry := NewRegistry()

	// Действие: контекст без привязанного пользователя
	user, err := registry.CurrentUser(context.Background())

	// Проверки: неавторизованный запрос - не ошибка
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestRegistry_CurrentUser_UnknownID(t *testing.T) {
	// Подготовка
	registry := NewRegistry()
	ctx := WithUserID(context.Background(), "ghost")

	// Действие
	user, err := registry.CurrentUser(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestRegistry_CurrentUser_ReturnsClone(t *testing.T) {
	// Подготовка
	registry := NewRegistry()
	ctx := context.Background()
	require.NoError(t, registry.Upsert(ctx, &models.User{
		ID:   "user-1",
		Name: "Anna",
		Role: models.RoleVictim,
		Tags: []string{"medical"},
	}))

	first, err := registry.CurrentUser(WithUserID(ctx, "user-1"))
	require.NoError(t, err)
	require.NotNil(t, first)

	// Действие: мутация полученной копии
	first.Name = "Changed"
	first.Tags[0] = "changed"

	// Проверки: реестр не затронут
	second, err := registry.CurrentUser(WithUserID(ctx, "user-1"))
	require.NoError(t, err)
	assert.Equal(t, "Anna", second.Name)
	assert.Equal(t, "medical", second.Tags[0])
}

func TestRegistry_RefreshLocation(t *testing.T) {
	// Подготовка
	registry := NewRegistry()
	ctx := context.Background()
	require.NoError(t, registry.Upsert(ctx, &models.User{ID: "user-1", Role: models.RoleVictim}))

	// Действие
	err := registry.RefreshLocation(ctx, "user-1", 55.75, 37.61)

	// Проверки
	require.NoError(t, err)
	user, err := registry.CurrentUser(WithUserID(ctx, "user-1"))
	require.NoError(t, err)
	require.NotNil(t, user.Location)
	assert.Equal(t, 55.75, user.Location.Latitude)
	assert.Equal(t, 37.61, user.Location.Longitude)
	assert.False(t, user.Location.FixedAt.IsZero())
}

func TestRegistry_RefreshLocation_UnknownUser(t *testing.T) {
	// Подготовка
	registry := NewRegistry()

	// Действие
	err := registry.RefreshLocation(context.Background(), "ghost", 55.75, 37.61)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
