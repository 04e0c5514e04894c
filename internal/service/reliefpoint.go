package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/relief_recommendation_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ReliefPointRepository определяет контракт хранилища пунктов помощи
type ReliefPointRepository interface {
	Add(ctx context.Context, point *models.ReliefPoint) error
	Update(ctx context.Context, id uuid.UUID, patch models.ReliefPointPatch) (*models.ReliefPoint, error)
	Remove(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ReliefPoint, error)
	FilterByCategory(ctx context.Context, category models.Category) ([]*models.ReliefPoint, error)
	Search(ctx context.Context, query string, category models.Category) ([]*models.ReliefPoint, error)
	Nearby(ctx context.Context, lat, lon, radiusMeters float64) ([]models.NearbyReliefPoint, error)
}

// ReliefPointService определяет контракт бизнес-логики каталога пунктов помощи
type ReliefPointService interface {
	CreatePoint(ctx context.Context, point *models.ReliefPoint) error
	GetPoint(ctx context.Context, id uuid.UUID) (*models.ReliefPoint, error)
	UpdatePoint(ctx context.Context, id uuid.UUID, patch models.ReliefPointPatch) (*models.ReliefPoint, error)
	RemovePoint(ctx context.Context, id uuid.UUID) error
	ListPoints(ctx context.Context, query string, category models.Category) ([]*models.ReliefPoint, error)
	NearbyPoints(ctx context.Context, lat, lon, radiusMeters float64) ([]models.NearbyReliefPoint, error)
}

type reliefPointService struct {
	repo   ReliefPointRepository
	logger *logrus.Logger
}

func NewReliefPointService(repo ReliefPointRepository, logger *logrus.Logger) ReliefPointService {
	return &reliefPointService{
		repo:   repo,
		logger: logger,
	}
}

// CreatePoint добавляет пункт помощи в каталог
func (s *reliefPointService) CreatePoint(ctx context.Context, point *models.ReliefPoint) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "relief_point",
		"method":  "CreatePoint",
		"title":   point.Title,
	})
	log.Info("Attempting to create a new relief point")

	if err := s.repo.Add(ctx, point); err != nil {
		log.WithError(err).Error("Failed to add relief point to store")
		return fmt.Errorf("service: could not create relief point: %w", err)
	}

	log.WithField("point_id", point.ID).Info("Relief point created successfully")
	return nil
}

// GetPoint возвращает пункт помощи по ID
func (s *reliefPointService) GetPoint(ctx context.Context, id uuid.UUID) (*models.ReliefPoint, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "relief_point",
		"method":   "GetPoint",
		"point_id": id,
	})

	point, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get relief point from store")
		return nil, fmt.Errorf("service: could not get relief point: %w", err)
	}
	return point, nil
}

// UpdatePoint применяет частичное обновление пункта помощи
func (s *reliefPointService) UpdatePoint(ctx context.Context, id uuid.UUID, patch models.ReliefPointPatch) (*models.ReliefPoint, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "relief_point",
		"method":   "UpdatePoint",
		"point_id": id,
	})
	log.Info("Attempting to update relief point")

	point, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		log.WithError(err).Warn("Failed to update relief point in store")
		return nil, fmt.Errorf("service: could not update relief point: %w", err)
	}

	log.Info("Relief point updated successfully")
	return point, nil
}

// RemovePoint удаляет пункт помощи из каталога
func (s *reliefPointService) RemovePoint(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "relief_point",
		"method":   "RemovePoint",
		"point_id": id,
	})
	log.Info("Attempting to remove relief point")

	if err := s.repo.Remove(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to remove relief point from store")
		return fmt.Errorf("service: could not remove relief point: %w", err)
	}

	log.Info("Relief point removed successfully")
	return nil
}

// ListPoints возвращает каталог с фильтром по категории и текстовым поиском.
// Пустой запрос и пустая категория означают весь каталог.
func (s *reliefPointService) ListPoints(ctx context.Context, query string, category models.Category) ([]*models.ReliefPoint, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "relief_point",
		"method":   "ListPoints",
		"query":    query,
		"category": category,
	})

	points, err := s.repo.Search(ctx, query, category)
	if err != nil {
		log.WithError(err).Error("Failed to list relief points from store")
		return nil, fmt.Errorf("service: could not list relief points: %w", err)
	}

	log.WithField("count", len(points)).Info("Relief points listed successfully")
	return points, nil
}

// NearbyPoints возвращает пункты в радиусе от точки, ближние первыми
func (s *reliefPointService) NearbyPoints(ctx context.Context, lat, lon, radiusMeters float64) ([]models.NearbyReliefPoint, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "relief_point",
		"method":  "NearbyPoints",
		"radius":  radiusMeters,
	})

	points, err := s.repo.Nearby(ctx, lat, lon, radiusMeters)
	if err != nil {
		log.WithError(err).Warn("Failed to query nearby relief points")
		return nil, fmt.Errorf("service: could not query nearby relief points: %w", err)
	}

	log.WithField("count", len(points)).Info("Nearby relief points queried successfully")
	return points, nil
}
