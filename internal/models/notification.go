package models

import (
	"time"

	"github.com/google/uuid"
)

// Channel - канал уведомления, определяет срочность доставки и оформление
type Channel string

const (
	ChannelEmergency        Channel = "emergency"
	ChannelReliefUpdate     Channel = "relief_update"
	ChannelVolunteerRequest Channel = "volunteer_request"
	ChannelAchievement      Channel = "achievement"
)

// IsValid проверяет, что канал входит в список известных
func (c Channel) IsValid() bool {
	switch c {
	case ChannelEmergency, ChannelReliefUpdate, ChannelVolunteerRequest, ChannelAchievement:
		return true
	}
	return false
}

// Urgency возвращает подсказку срочности доставки для внешнего диспетчера.
// На порядок хранения в сторе не влияет.
func (c Channel) Urgency() string {
	switch c {
	case ChannelEmergency:
		return "max"
	case ChannelVolunteerRequest:
		return "high"
	case ChannelReliefUpdate:
		return "default"
	}
	return "low"
}

// Notification - уведомление в сторе. Read меняется только через markRead.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Channel   Channel   `json:"channel"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
