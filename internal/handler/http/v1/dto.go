package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateReliefPointRequest DTO для создания пункта помощи
// @Description DTO для создания пункта помощи
type CreateReliefPointRequest struct {
	Title       string  `json:"title" validate:"required,min=2,max=255"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category" validate:"required,oneof=food medical shelter supplies"`
	Latitude    float64 `json:"latitude" validate:"required,latitude"`
	Longitude   float64 `json:"longitude" validate:"required,longitude"`
	Address     string  `json:"address,omitempty"`
	OpenHours   string  `json:"open_hours,omitempty"`
	Capacity    *int    `json:"capacity,omitempty" validate:"omitempty,gte=0"`
}

// UpdateReliefPointRequest DTO для частичного обновления пункта помощи.
// Отсутствующее поле не меняется.
// @Description DTO для частичного обновления пункта помощи
type UpdateReliefPointRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=2,max=255"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,oneof=food medical shelter supplies"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Address     *string  `json:"address,omitempty"`
	OpenHours   *string  `json:"open_hours,omitempty"`
	Capacity    *int     `json:"capacity,omitempty" validate:"omitempty,gte=0"`
}

// ReliefPointResponse DTO для ответа с информацией о пункте помощи
// @Description DTO для ответа с информацией о пункте помощи
type ReliefPointResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Address     string    `json:"address,omitempty"`
	OpenHours   string    `json:"open_hours,omitempty"`
	Capacity    *int      `json:"capacity,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NearbyReliefPointResponse DTO для ответа запроса ближайших пунктов
// @Description DTO для ответа запроса ближайших пунктов
type NearbyReliefPointResponse struct {
	ReliefPointResponse
	DistanceMeters float64 `json:"distance_meters"`
}

// SignInRequest DTO для регистрации/входа пользователя
// @Description DTO для регистрации/входа пользователя
type SignInRequest struct {
	ID        string   `json:"id" validate:"required"`
	Name      string   `json:"name" validate:"required,min=1,max=255"`
	Email     string   `json:"email,omitempty" validate:"omitempty,email"`
	Role      string   `json:"role" validate:"required,oneof=victim volunteer ngo"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Tags      []string `json:"tags,omitempty"`
}

// UpdateLocationRequest DTO для обновления позиции пользователя
// @Description DTO для обновления позиции пользователя
type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// FeedbackRequest DTO для обратной связи по рекомендациям
// @Description DTO для обратной связи по рекомендациям
type FeedbackRequest struct {
	Category string `json:"category" validate:"required"`
	Positive *bool  `json:"positive" validate:"required"`
}

// ActionResponse DTO действия внутри рекомендации
// @Description DTO действия внутри рекомендации
type ActionResponse struct {
	ID    string            `json:"id"`
	Label string            `json:"label"`
	Type  string            `json:"type"`
	Data  map[string]string `json:"data,omitempty"`
}

// RecommendationResponse DTO для ответа с рекомендацией
// @Description DTO для ответа с рекомендацией
type RecommendationResponse struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Priority    string            `json:"priority"`
	Confidence  float64           `json:"confidence"`
	Icon        string            `json:"icon,omitempty"`
	Actions     []ActionResponse  `json:"actions"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// PushNotificationRequest DTO для добавления уведомления
// @Description DTO для добавления уведомления
type PushNotificationRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=255"`
	Body    string `json:"body,omitempty"`
	Channel string `json:"channel" validate:"required"`
}

// NotificationResponse DTO для ответа с уведомлением
// @Description DTO для ответа с уведомлением
type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Channel   string    `json:"channel"`
	Urgency   string    `json:"urgency"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// UnreadCountResponse DTO для счетчика непрочитанных
// @Description DTO для счетчика непрочитанных
type UnreadCountResponse struct {
	UnreadCount int `json:"unread_count"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	UserCount int `json:"user_count"`
}
