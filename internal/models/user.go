package models

import "time"

// Role - роль пользователя в системе
type Role string

const (
	RoleVictim    Role = "victim"
	RoleVolunteer Role = "volunteer"
	RoleNGO       Role = "ngo"
)

// IsValid проверяет, что роль входит в список известных
func (r Role) IsValid() bool {
	switch r {
	case RoleVictim, RoleVolunteer, RoleNGO:
		return true
	}
	return false
}

// Location - координаты последней известной позиции
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	FixedAt   time.Time `json:"fixed_at"`
}

// User представляет пользователя сессии. Ядро читает пользователя из
// сессионного слоя и не изменяет его, кроме обновления позиции.
type User struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     Role      `json:"role"`
	Location *Location `json:"location,omitempty"`
	Tags     []string  `json:"tags,omitempty"`
}
