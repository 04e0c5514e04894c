package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/relief_recommendation_system/internal/config"
	"github.com/shenikar/relief_recommendation_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Ошибки источника геопозиции. Реализации LocationSource оборачивают их,
// ядро само эти ошибки не порождает.
var (
	ErrServiceDisabled             = errors.New("location service disabled")
	ErrPermissionDenied            = errors.New("location permission denied")
	ErrPermissionDeniedPermanently = errors.New("location permission denied permanently")
)

// ErrNoCurrentUser возвращается из операций, требующих авторизованного пользователя
var ErrNoCurrentUser = errors.New("no authenticated user")

// LocationSource - внешний источник текущей геопозиции пользователя
type LocationSource interface {
	CurrentPosition(ctx context.Context) (lat, lon float64, err error)
}

// SessionContext - внешний сессионный слой. CurrentUser возвращает (nil, nil),
// если пользователь не авторизован.
type SessionContext interface {
	CurrentUser(ctx context.Context) (*models.User, error)
}

// AnalyticsArchive - внешний архив аналитики. Все записи best-effort,
// ядро никогда не читает из архива при построении рекомендаций.
type AnalyticsArchive interface {
	SaveRecommendationRun(ctx context.Context, userID string, count int, radiusMeters float64, degraded bool) error
	SaveFeedbackEvent(ctx context.Context, userID, category string, positive bool) error
	SaveLocationFix(ctx context.Context, userID string, lat, lon float64, degraded bool) error
	CountActiveUsers(ctx context.Context, minutes int) (int, error)
}

// RecommendationService определяет контракт движка рекомендаций
type RecommendationService interface {
	Generate(ctx context.Context) ([]*models.Recommendation, error)
	ProvideFeedback(ctx context.Context, categoryOrTag string, positive bool) error
	Dismiss(ctx context.Context, id uuid.UUID) error
	ActiveUsers(ctx context.Context) (int, error)
}

// Веса слагаемых формулы скоринга и границы обучаемого веса категории
const (
	roleMatchWeight = 0.35
	distanceWeight  = 0.30
	categoryWeight  = 0.20
	recencyWeight   = 0.15

	minLearnedWeight = 0.5
	maxLearnedWeight = 1.5

	criticalThreshold = 0.85
	highThreshold     = 0.75
	mediumThreshold   = 0.5
)

// Базовые уверенности синтетических подсказок (до веса категории)
const (
	sosBaseConfidence      = 0.95
	needsBaseConfidence    = 0.65
	coverageBaseConfidence = 0.60
)

// recommendationNamespace - фиксированное пространство имен для детерминированных
// ID рекомендаций: одна и та же возможность дает один и тот же ID между запусками,
// поэтому подавление после dismiss держится всю сессию.
var recommendationNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("relief_recommendation_system"))

// generateCall - один проход генерации; повторные вызовы для того же
// пользователя ждут его завершения вместо запуска второго прохода
type generateCall struct {
	done chan struct{}
	recs []*models.Recommendation
	err  error
}

type recommendationEngine struct {
	points   ReliefPointRepository
	session  SessionContext
	location LocationSource
	archive  AnalyticsArchive // nil, если архив не сконфигурирован
	logger   *logrus.Logger
	cfg      *config.Config

	mu        sync.Mutex
	weights   map[string]map[string]float64     // userID -> категория/тег -> вес
	dismissed map[string]map[uuid.UUID]struct{} // userID -> подавленные ID
	lastFix   map[string]models.Location        // userID -> последняя известная позиция
	inflight  map[string]*generateCall
}

func NewRecommendationService(points ReliefPointRepository, session SessionContext, location LocationSource, archive AnalyticsArchive, logger *logrus.Logger, cfg *config.Config) RecommendationService {
	return &recommendationEngine{
		points:    points,
		session:   session,
		location:  location,
		archive:   archive,
		logger:    logger,
		cfg:       cfg,
		weights:   make(map[string]map[string]float64),
		dismissed: make(map[string]map[uuid.UUID]struct{}),
		lastFix:   make(map[string]models.Location),
		inflight:  make(map[string]*generateCall),
	}
}

// Generate строит ранжированный список рекомендаций для текущего пользователя.
// Отсутствие пользователя - нормальное состояние: пустой список без ошибки.
func (s *recommendationEngine) Generate(ctx context.Context) ([]*models.Recommendation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "recommendation",
		"method":  "Generate",
	})

	user, err := s.session.CurrentUser(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to read current user from session")
		return nil, fmt.Errorf("service: could not read current user: %w", err)
	}
	if user == nil {
		log.Info("No authenticated user, returning empty recommendation list")
		return []*models.Recommendation{}, nil
	}

	// Совмещение перекрывающихся вызовов: второй Generate для того же
	// пользователя возвращает результат уже идущего прохода
	s.mu.Lock()
	if call, ok := s.inflight[user.ID]; ok {
		s.mu.Unlock()
		select {
		case <-call.done:
			return call.recs, call.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	call := &generateCall{done: make(chan struct{})}
	s.inflight[user.ID] = call
	s.mu.Unlock()

	call.recs, call.err = s.runGeneration(ctx, user)

	s.mu.Lock()
	delete(s.inflight, user.ID)
	s.mu.Unlock()
	close(call.done)

	return call.recs, call.err
}

func (s *recommendationEngine) runGeneration(ctx context.Context, user *models.User) ([]*models.Recommendation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "recommendation",
		"method":  "Generate",
		"user_id": user.ID,
		"role":    user.Role,
	})

	lat, lon, degraded, err := s.resolveLocation(ctx, user)
	if err != nil {
		log.WithError(err).Warn("Failed to resolve user location")
		return nil, err
	}

	// Снапшот состояния кандидатов берется один раз в начале прохода;
	// последующие мутации стора на этот проход не влияют
	radius := s.cfg.DefaultRadiusMeters
	var candidates []models.NearbyReliefPoint
	for {
		candidates, err = s.points.Nearby(ctx, lat, lon, radius)
		if err != nil {
			log.WithError(err).Error("Failed to query nearby relief points")
			return nil, fmt.Errorf("service: could not query candidates: %w", err)
		}
		if len(candidates) > 0 || radius >= s.cfg.MaxRadiusMeters {
			break
		}
		// Прогрессивное удвоение радиуса до жесткого потолка
		radius = min(radius*2, s.cfg.MaxRadiusMeters)
	}

	weights := s.weightsSnapshot(user.ID)
	suppressed := s.dismissedSnapshot(user.ID)
	now := time.Now()

	recommendations := make([]*models.Recommendation, 0, len(candidates)+1)
	for _, candidate := range candidates {
		recommendations = append(recommendations, s.scorePoint(user, candidate, weights, now))
	}
	recommendations = append(recommendations, s.syntheticSuggestions(user, len(candidates), weights)...)

	// Подавленные пользователем рекомендации не возвращаются до конца сессии
	filtered := recommendations[:0]
	for _, rec := range recommendations {
		if _, ok := suppressed[rec.ID]; ok {
			continue
		}
		if degraded {
			if rec.Metadata == nil {
				rec.Metadata = make(map[string]string)
			}
			rec.Metadata["degraded_accuracy"] = "true"
		}
		filtered = append(filtered, rec)
	}
	recommendations = filtered

	// Приоритет по убыванию, затем уверенность по убыванию,
	// при равенстве - порядок вставки
	sort.SliceStable(recommendations, func(i, j int) bool {
		if recommendations[i].Priority.Rank() != recommendations[j].Priority.Rank() {
			return recommendations[i].Priority.Rank() > recommendations[j].Priority.Rank()
		}
		return recommendations[i].Confidence > recommendations[j].Confidence
	})
	if len(recommendations) > s.cfg.MaxRecommendations {
		recommendations = recommendations[:s.cfg.MaxRecommendations]
	}

	// Отмена не должна фиксировать частичный результат
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.archive != nil {
		if err := s.archive.SaveLocationFix(ctx, user.ID, lat, lon, degraded); err != nil {
			log.WithError(err).Warn("Failed to archive location fix")
		}
		if err := s.archive.SaveRecommendationRun(ctx, user.ID, len(recommendations), radius, degraded); err != nil {
			log.WithError(err).Warn("Failed to archive recommendation run")
		}
	}

	log.WithFields(logrus.Fields{
		"count":    len(recommendations),
		"radius":   radius,
		"degraded": degraded,
	}).Info("Recommendations generated successfully")
	return recommendations, nil
}

// resolveLocation возвращает позицию пользователя: профиль, затем LocationSource,
// затем последний известный фикс (с флагом degraded). Ошибка источника
// отдается наружу только когда кэшированного фикса нет.
func (s *recommendationEngine) resolveLocation(ctx context.Context, user *models.User) (float64, float64, bool, error) {
	if user.Location != nil {
		s.storeLastFix(user.ID, *user.Location)
		return user.Location.Latitude, user.Location.Longitude, false, nil
	}

	if s.location != nil {
		lat, lon, err := s.location.CurrentPosition(ctx)
		if err == nil {
			s.storeLastFix(user.ID, models.Location{Latitude: lat, Longitude: lon, FixedAt: time.Now()})
			return lat, lon, false, nil
		}
		if fix, ok := s.loadLastFix(user.ID); ok {
			return fix.Latitude, fix.Longitude, true, nil
		}
		return 0, 0, false, fmt.Errorf("service: could not resolve location: %w", err)
	}

	if fix, ok := s.loadLastFix(user.ID); ok {
		return fix.Latitude, fix.Longitude, true, nil
	}
	return 0, 0, false, fmt.Errorf("service: could not resolve location: %w", ErrServiceDisabled)
}

// scorePoint считает уверенность по детерминированной формуле:
// clamp01(0.35*roleMatch + 0.30*distanceDecay + 0.20*categoryWeight + 0.15*recency)
func (s *recommendationEngine) scorePoint(user *models.User, candidate models.NearbyReliefPoint, weights map[string]float64, now time.Time) *models.Recommendation {
	point := candidate.Point

	roleMatch := roleMatchScore(user, point.Category)

	distanceDecay := 1 - candidate.DistanceMeters/s.cfg.MaxRadiusMeters
	if distanceDecay < 0 {
		distanceDecay = 0
	}

	learned := learnedWeight(weights, string(point.Category))

	recency := 0.0
	if age := now.Sub(point.UpdatedAt); age >= 0 && age < s.cfg.RecencyWindow {
		recency = 1 - float64(age)/float64(s.cfg.RecencyWindow)
	}

	confidence := clamp01(roleMatchWeight*roleMatch +
		distanceWeight*distanceDecay +
		categoryWeight*learned +
		recencyWeight*recency)

	// Медицинские пункты считаются экстренными: для них доступен critical
	emergency := point.Category == models.CategoryMedical
	priority := priorityFor(confidence, emergency)

	actions := []models.Action{
		{
			ID:    "navigate:" + point.ID.String(),
			Label: "Navigate",
			Type:  models.ActionNavigate,
			Data: map[string]string{
				"latitude":  fmt.Sprintf("%f", point.Latitude),
				"longitude": fmt.Sprintf("%f", point.Longitude),
			},
		},
		{
			ID:    "view:" + point.ID.String(),
			Label: "View details",
			Type:  models.ActionView,
			Data:  map[string]string{"point_id": point.ID.String()},
		},
	}
	if emergency {
		actions = append(actions, models.Action{
			ID:    "call:" + point.ID.String(),
			Label: "Call",
			Type:  models.ActionCall,
			Data:  map[string]string{"point_id": point.ID.String()},
		})
	}

	metadata := map[string]string{
		"point_id": point.ID.String(),
		"category": string(point.Category),
		"distance": fmt.Sprintf("%.0f m", candidate.DistanceMeters),
		"location": fmt.Sprintf("%f,%f", point.Latitude, point.Longitude),
	}
	if point.OpenHours != "" {
		metadata["open_hours"] = point.OpenHours
	}

	return &models.Recommendation{
		ID:          uuid.NewSHA1(recommendationNamespace, []byte("point:"+point.ID.String())),
		Title:       point.Title,
		Description: point.Description,
		Priority:    priority,
		Confidence:  confidence,
		Icon:        string(point.Category),
		Actions:     actions,
		Metadata:    metadata,
	}
}

// syntheticSuggestions возвращает всегда доступные подсказки для роли.
// Их ID детерминированы от роли и вида подсказки.
func (s *recommendationEngine) syntheticSuggestions(user *models.User, nearbyCount int, weights map[string]float64) []*models.Recommendation {
	switch user.Role {
	case models.RoleVictim:
		confidence := clamp01(sosBaseConfidence * learnedWeight(weights, "sos"))
		return []*models.Recommendation{{
			ID:          syntheticID(user.Role, "sos"),
			Title:       "Send SOS",
			Description: "Broadcast an emergency signal with your location to nearby responders",
			Priority:    priorityFor(confidence, true),
			Confidence:  confidence,
			Icon:        "sos",
			Actions: []models.Action{{
				ID:    "sos:" + string(user.Role),
				Label: "Send SOS",
				Type:  models.ActionSOS,
			}},
			Metadata: map[string]string{"kind": "sos"},
		}}
	case models.RoleVolunteer:
		confidence := clamp01(needsBaseConfidence * learnedWeight(weights, "volunteer"))
		return []*models.Recommendation{{
			ID:          syntheticID(user.Role, "nearby_needs"),
			Title:       fmt.Sprintf("%d relief points near you need volunteers", nearbyCount),
			Description: "Review nearby relief points and offer your help",
			Priority:    priorityFor(confidence, false),
			Confidence:  confidence,
			Icon:        "volunteer",
			Actions: []models.Action{{
				ID:    "volunteer:nearby",
				Label: "Volunteer",
				Type:  models.ActionVolunteer,
				Data:  map[string]string{"nearby_count": fmt.Sprintf("%d", nearbyCount)},
			}},
			Metadata: map[string]string{"kind": "nearby_needs"},
		}}
	case models.RoleNGO:
		confidence := clamp01(coverageBaseConfidence * learnedWeight(weights, "coverage"))
		return []*models.Recommendation{{
			ID:          syntheticID(user.Role, "coverage_overview"),
			Title:       "Review resource coverage",
			Description: "Check which categories are under-served in the affected area",
			Priority:    priorityFor(confidence, false),
			Confidence:  confidence,
			Icon:        "overview",
			Actions: []models.Action{{
				ID:    "view:coverage",
				Label: "Open overview",
				Type:  models.ActionView,
			}},
			Metadata: map[string]string{"kind": "coverage_overview"},
		}}
	}
	return nil
}

// ProvideFeedback сдвигает обучаемый вес категории (или тега) на фиксированный
// шаг. Веса живут столько же, сколько движок, и не текут между пользователями.
func (s *recommendationEngine) ProvideFeedback(ctx context.Context, categoryOrTag string, positive bool) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "recommendation",
		"method":   "ProvideFeedback",
		"category": categoryOrTag,
		"positive": positive,
	})

	user, err := s.session.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("service: could not read current user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("service: could not apply feedback: %w", ErrNoCurrentUser)
	}

	key := strings.ToLower(strings.TrimSpace(categoryOrTag))
	if key == "" {
		return fmt.Errorf("service: feedback category must not be empty")
	}

	step := s.cfg.FeedbackStep
	if !positive {
		step = -step
	}

	s.mu.Lock()
	userWeights, ok := s.weights[user.ID]
	if !ok {
		userWeights = make(map[string]float64)
		s.weights[user.ID] = userWeights
	}
	current, ok := userWeights[key]
	if !ok {
		current = 1.0
	}
	userWeights[key] = clamp(current+step, minLearnedWeight, maxLearnedWeight)
	updated := userWeights[key]
	s.mu.Unlock()

	if s.archive != nil {
		if err := s.archive.SaveFeedbackEvent(ctx, user.ID, key, positive); err != nil {
			log.WithError(err).Warn("Failed to archive feedback event")
		}
	}

	log.WithField("weight", updated).Info("Feedback applied")
	return nil
}

// Dismiss добавляет ID в набор подавления пользователя. Идемпотентен.
func (s *recommendationEngine) Dismiss(ctx context.Context, id uuid.UUID) error {
	user, err := s.session.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("service: could not read current user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("service: could not dismiss recommendation: %w", ErrNoCurrentUser)
	}

	s.mu.Lock()
	suppressed, ok := s.dismissed[user.ID]
	if !ok {
		suppressed = make(map[uuid.UUID]struct{})
		s.dismissed[user.ID] = suppressed
	}
	suppressed[id] = struct{}{}
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"service":           "recommendation",
		"method":            "Dismiss",
		"user_id":           user.ID,
		"recommendation_id": id,
	}).Info("Recommendation dismissed")
	return nil
}

// ActiveUsers возвращает число уникальных пользователей за окно статистики
func (s *recommendationEngine) ActiveUsers(ctx context.Context) (int, error) {
	if s.archive == nil {
		return 0, nil
	}
	count, err := s.archive.CountActiveUsers(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		return 0, fmt.Errorf("service: could not count active users: %w", err)
	}
	return count, nil
}

func (s *recommendationEngine) weightsSnapshot(userID string) map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[string]float64, len(s.weights[userID]))
	for key, weight := range s.weights[userID] {
		snapshot[key] = weight
	}
	return snapshot
}

func (s *recommendationEngine) dismissedSnapshot(userID string) map[uuid.UUID]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[uuid.UUID]struct{}, len(s.dismissed[userID]))
	for id := range s.dismissed[userID] {
		snapshot[id] = struct{}{}
	}
	return snapshot
}

func (s *recommendationEngine) storeLastFix(userID string, fix models.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastFix[userID] = fix
}

func (s *recommendationEngine) loadLastFix(userID string) (models.Location, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fix, ok := s.lastFix[userID]
	return fix, ok
}

// roleMatchScore - релевантность категории роли: 1 - сильная, 0.5 - слабая.
// Тег пользователя с именем категории всегда поднимает до сильной.
func roleMatchScore(user *models.User, category models.Category) float64 {
	if hasTag(user.Tags, string(category)) {
		return 1
	}
	switch user.Role {
	case models.RoleVictim:
		if category == models.CategorySupplies {
			return 0.5
		}
		return 1
	case models.RoleVolunteer, models.RoleNGO:
		return 0.5
	}
	return 0
}

func hasTag(tags []string, want string) bool {
	for _, tag := range tags {
		if strings.EqualFold(tag, want) {
			return true
		}
	}
	return false
}

func learnedWeight(weights map[string]float64, key string) float64 {
	if weight, ok := weights[key]; ok {
		return weight
	}
	return 1.0
}

func priorityFor(confidence float64, emergency bool) models.Priority {
	if emergency && confidence >= criticalThreshold {
		return models.PriorityCritical
	}
	switch {
	case confidence >= highThreshold:
		return models.PriorityHigh
	case confidence >= mediumThreshold:
		return models.PriorityMedium
	}
	return models.PriorityLow
}

func syntheticID(role models.Role, kind string) uuid.UUID {
	return uuid.NewSHA1(recommendationNamespace, []byte("synthetic:"+string(role)+":"+kind))
}

func clamp01(value float64) float64 {
	return clamp(value, 0, 1)
}

func clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
