package models

import "github.com/google/uuid"

// Priority - приоритет рекомендации. Порядок: critical > high > medium > low.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Rank возвращает числовой ранг приоритета для сортировки
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 3
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	}
	return 0
}

// ActionType - тип действия, которое диспетчеризует внешний UI
type ActionType string

const (
	ActionNavigate  ActionType = "navigate"
	ActionCall      ActionType = "call"
	ActionVolunteer ActionType = "volunteer"
	ActionView      ActionType = "view"
	ActionSOS       ActionType = "sos"
)

// Action - действие внутри рекомендации
type Action struct {
	ID    string            `json:"id"`
	Label string            `json:"label"`
	Type  ActionType        `json:"type"`
	Data  map[string]string `json:"data,omitempty"`
}

// Recommendation - ранжированная рекомендация для конкретного пользователя.
// Confidence всегда в диапазоне [0,1].
type Recommendation struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Priority    Priority          `json:"priority"`
	Confidence  float64           `json:"confidence"`
	Icon        string            `json:"icon,omitempty"`
	Actions     []Action          `json:"actions"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}
