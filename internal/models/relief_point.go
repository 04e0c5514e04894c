package models

import (
	"time"

	"github.com/google/uuid"
)

// Category - категория пункта помощи
type Category string

const (
	CategoryFood     Category = "food"
	CategoryMedical  Category = "medical"
	CategoryShelter  Category = "shelter"
	CategorySupplies Category = "supplies"
)

// IsValid проверяет, что категория входит в список известных
func (c Category) IsValid() bool {
	switch c {
	case CategoryFood, CategoryMedical, CategoryShelter, CategorySupplies:
		return true
	}
	return false
}

// ReliefPoint представляет геопривязанный пункт помощи (еда, медицина, убежище, снабжение)
type ReliefPoint struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Address     string    `json:"address,omitempty"`
	OpenHours   string    `json:"open_hours,omitempty"`
	Capacity    *int      `json:"capacity,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ReliefPointPatch - частичное обновление пункта помощи.
// nil-поле означает "не менять".
type ReliefPointPatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *Category `json:"category,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Address     *string   `json:"address,omitempty"`
	OpenHours   *string   `json:"open_hours,omitempty"`
	Capacity    *int      `json:"capacity,omitempty"`
}

// NearbyReliefPoint - пункт помощи с расстоянием от точки запроса
type NearbyReliefPoint struct {
	Point          *ReliefPoint `json:"point"`
	DistanceMeters float64      `json:"distance_meters"`
}
