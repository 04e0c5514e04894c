package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/relief_recommendation_system/internal/models"
	"github.com/shenikar/relief_recommendation_system/pkg/geo"
)

// ReliefPointStore - in-memory хранилище пунктов помощи.
// Каждая мутация публикует событие подписчикам, порядок вставки сохраняется.
type ReliefPointStore struct {
	mu      sync.RWMutex
	points  map[uuid.UUID]*models.ReliefPoint
	order   []uuid.UUID
	subs    map[int]chan ReliefPointEvent
	nextSub int
}

// NewReliefPointStore создает пустое хранилище пунктов помощи
func NewReliefPointStore() *ReliefPointStore {
	return &ReliefPointStore{
		points: make(map[uuid.UUID]*models.ReliefPoint),
		subs:   make(map[int]chan ReliefPointEvent),
	}
}

// Subscribe возвращает канал событий изменения и функцию отписки.
// Медленный подписчик теряет события, мутации никогда не блокируются.
func (s *ReliefPointStore) Subscribe() (<-chan ReliefPointEvent, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan ReliefPointEvent, 64)
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

// publish рассылает событие без блокировки; вызывается под s.mu
func (s *ReliefPointStore) publish(event ReliefPointEvent) {
	for _, ch := range s.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

// Add добавляет пункт помощи. Пустой ID генерируется, занятый ID - ошибка.
func (s *ReliefPointStore) Add(ctx context.Context, point *models.ReliefPoint) error {
	if err := geo.ValidateCoordinate(point.Latitude, point.Longitude); err != nil {
		return fmt.Errorf("relief point coordinates: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if point.ID == uuid.Nil {
		point.ID = uuid.New()
	}
	if _, ok := s.points[point.ID]; ok {
		return fmt.Errorf("relief point %s: %w", point.ID, ErrAlreadyExists)
	}

	now := time.Now()
	if point.CreatedAt.IsZero() {
		point.CreatedAt = now
	}
	point.UpdatedAt = now

	stored := clonePoint(point)
	s.points[point.ID] = stored
	s.order = append(s.order, point.ID)

	s.publish(ReliefPointEvent{Kind: ChangeAdded, Point: clonePoint(stored)})
	return nil
}

// Update применяет частичное обновление и возвращает новое состояние
func (s *ReliefPointStore) Update(ctx context.Context, id uuid.UUID, patch models.ReliefPointPatch) (*models.ReliefPoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	point, ok := s.points[id]
	if !ok {
		return nil, fmt.Errorf("relief point %s: %w", id, ErrNotFound)
	}

	// Проверяем координаты до применения, чтобы не оставить частичную мутацию
	lat, lon := point.Latitude, point.Longitude
	if patch.Latitude != nil {
		lat = *patch.Latitude
	}
	if patch.Longitude != nil {
		lon = *patch.Longitude
	}
	if err := geo.ValidateCoordinate(lat, lon); err != nil {
		return nil, fmt.Errorf("relief point coordinates: %w", err)
	}

	if patch.Title != nil {
		point.Title = *patch.Title
	}
	if patch.Description != nil {
		point.Description = *patch.Description
	}
	if patch.Category != nil {
		point.Category = *patch.Category
	}
	point.Latitude = lat
	point.Longitude = lon
	if patch.Address != nil {
		point.Address = *patch.Address
	}
	if patch.OpenHours != nil {
		point.OpenHours = *patch.OpenHours
	}
	if patch.Capacity != nil {
		capacity := *patch.Capacity
		point.Capacity = &capacity
	}
	point.UpdatedAt = time.Now()

	updated := clonePoint(point)
	s.publish(ReliefPointEvent{Kind: ChangeUpdated, Point: clonePoint(point)})
	return updated, nil
}

// Remove удаляет пункт помощи. ID никогда не переиспользуется.
func (s *ReliefPointStore) Remove(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	point, ok := s.points[id]
	if !ok {
		return fmt.Errorf("relief point %s: %w", id, ErrNotFound)
	}

	delete(s.points, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	s.publish(ReliefPointEvent{Kind: ChangeRemoved, Point: clonePoint(point)})
	return nil
}

// GetByID возвращает копию пункта помощи по ID
func (s *ReliefPointStore) GetByID(ctx context.Context, id uuid.UUID) (*models.ReliefPoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	point, ok := s.points[id]
	if !ok {
		return nil, fmt.Errorf("relief point %s: %w", id, ErrNotFound)
	}
	return clonePoint(point), nil
}

// FilterByCategory возвращает пункты указанной категории в порядке вставки.
// Пустая категория означает весь каталог.
func (s *ReliefPointStore) FilterByCategory(ctx context.Context, category models.Category) ([]*models.ReliefPoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.ReliefPoint, 0, len(s.order))
	for _, id := range s.order {
		point := s.points[id]
		if category != "" && point.Category != category {
			continue
		}
		result = append(result, clonePoint(point))
	}
	return result, nil
}

// Search ищет подстроку без учета регистра в названии, описании и адресе.
// Пустой запрос возвращает весь набор (с учетом фильтра категории).
func (s *ReliefPointStore) Search(ctx context.Context, query string, category models.Category) ([]*models.ReliefPoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(query))
	result := make([]*models.ReliefPoint, 0)
	for _, id := range s.order {
		point := s.points[id]
		if category != "" && point.Category != category {
			continue
		}
		if needle != "" && !matchesQuery(point, needle) {
			continue
		}
		result = append(result, clonePoint(point))
	}
	return result, nil
}

func matchesQuery(point *models.ReliefPoint, needle string) bool {
	return strings.Contains(strings.ToLower(point.Title), needle) ||
		strings.Contains(strings.ToLower(point.Description), needle) ||
		strings.Contains(strings.ToLower(point.Address), needle)
}

// Nearby возвращает пункты в радиусе radiusMeters от точки,
// отсортированные по возрастанию расстояния
func (s *ReliefPointStore) Nearby(ctx context.Context, lat, lon, radiusMeters float64) ([]models.NearbyReliefPoint, error) {
	if err := geo.ValidateCoordinate(lat, lon); err != nil {
		return nil, fmt.Errorf("nearby origin: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.NearbyReliefPoint, 0)
	for _, id := range s.order {
		point := s.points[id]
		distance, err := geo.Distance(lat, lon, point.Latitude, point.Longitude)
		if err != nil {
			return nil, fmt.Errorf("distance to relief point %s: %w", point.ID, err)
		}
		if distance <= radiusMeters {
			result = append(result, models.NearbyReliefPoint{
				Point:          clonePoint(point),
				DistanceMeters: distance,
			})
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DistanceMeters < result[j].DistanceMeters
	})
	return result, nil
}

// clonePoint возвращает независимую копию, чтобы снапшоты читателей
// не видели последующих мутаций стора
func clonePoint(point *models.ReliefPoint) *models.ReliefPoint {
	clone := *point
	if point.Capacity != nil {
		capacity := *point.Capacity
		clone.Capacity = &capacity
	}
	return &clone
}
