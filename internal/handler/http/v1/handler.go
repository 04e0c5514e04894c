package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/relief_recommendation_system/internal/config"
	"github.com/shenikar/relief_recommendation_system/internal/models"
	"github.com/shenikar/relief_recommendation_system/internal/repository"
	"github.com/shenikar/relief_recommendation_system/internal/service"
	"github.com/shenikar/relief_recommendation_system/internal/session"
	"github.com/shenikar/relief_recommendation_system/pkg/geo"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	reliefService       service.ReliefPointService
	recommendService    service.RecommendationService
	notificationService service.NotificationService
	registry            *session.Registry
	logger              *logrus.Logger
	validate            *validator.Validate
	cfg                 *config.Config
}

func NewHandler(reliefService service.ReliefPointService, recommendService service.RecommendationService, notificationService service.NotificationService, registry *session.Registry, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		reliefService:       reliefService,
		recommendService:    recommendService,
		notificationService: notificationService,
		registry:            registry,
		logger:              logger,
		validate:            validator.New(),
		cfg:                 cfg,
	}
}

// respondError переводит ошибки ядра в HTTP-статусы
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, repository.ErrInvalidChannel):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification channel"})
	case errors.Is(err, geo.ErrInvalidCoordinate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
	case errors.Is(err, service.ErrNoCurrentUser):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case errors.Is(err, service.ErrServiceDisabled),
		errors.Is(err, service.ErrPermissionDenied),
		errors.Is(err, service.ErrPermissionDeniedPermanently):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "location unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// @Summary Create a new relief point
// @Description Create a new relief point in the catalog. Requires API key.
// @Tags ReliefPoints
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param point body CreateReliefPointRequest true "Relief point creation request"
// @Success 201 {object} ReliefPointResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /relief-points [post]
func (h *Handler) createReliefPoint(c *gin.Context) {
	var input CreateReliefPointRequest
	log := h.logger.WithField("method", "createReliefPoint")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := CreateDTOToReliefPointModel(input)
	if err := h.reliefService.CreatePoint(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create relief point in service")
		respondError(c, err, "internal server error")
		return
	}
	c.JSON(http.StatusCreated, ModelToReliefPointResponse(model))
}

// @Summary List relief points
// @Description List relief points with optional category filter and case-insensitive text search.
// @Tags ReliefPoints
// @Accept json
// @Produce json
// @Param category query string false "Category filter" Enums(food, medical, shelter, supplies)
// @Param q query string false "Search query over title, description and address"
// @Success 200 {array} ReliefPointResponse
// @Failure 400 {object} map[string]string "Unknown category"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /relief-points [get]
func (h *Handler) listReliefPoints(c *gin.Context) {
	log := h.logger.WithField("method", "listReliefPoints")

	category := models.Category(c.Query("category"))
	if category != "" && !category.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}

	points, err := h.reliefService.ListPoints(c.Request.Context(), c.Query("q"), category)
	if err != nil {
		log.WithError(err).Error("Failed to list relief points from service")
		respondError(c, err, "internal server error")
		return
	}

	c.JSON(http.StatusOK, ModelsToReliefPointResponses(points))
}

// @Summary Get nearby relief points
// @Description Get relief points within a radius of a coordinate, closest first.
// @Tags ReliefPoints
// @Accept json
// @Produce json
// @Param latitude query number true "Origin latitude"
// @Param longitude query number true "Origin longitude"
// @Param radius query number false "Radius in meters" default(5000)
// @Success 200 {array} NearbyReliefPointResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /relief-points/nearby [get]
func (h *Handler) nearbyReliefPoints(c *gin.Context) {
	log := h.logger.WithField("method", "nearbyReliefPoints")

	lat, latErr := strconv.ParseFloat(c.Query("latitude"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("longitude"), 64)
	if latErr != nil || lonErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude are required"})
		return
	}
	radius, err := strconv.ParseFloat(c.DefaultQuery("radius", "5000"), 64)
	if err != nil || radius < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius"})
		return
	}

	points, err := h.reliefService.NearbyPoints(c.Request.Context(), lat, lon, radius)
	if err != nil {
		log.WithError(err).Warn("Failed to query nearby relief points from service")
		respondError(c, err, "internal server error")
		return
	}

	c.JSON(http.StatusOK, NearbyToResponses(points))
}

// @Summary Get relief point by ID
// @Description Get a single relief point by its ID.
// @Tags ReliefPoints
// @Accept json
// @Produce json
// @Param id path string true "Relief point ID"
// @Success 200 {object} ReliefPointResponse
// @Failure 400 {object} map[string]string "Invalid relief point ID"
// @Failure 404 {object} map[string]string "Relief point not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /relief-points/{id} [get]
func (h *Handler) getReliefPoint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid relief point ID"})
		return
	}
	log := h.logger.WithField("method", "getReliefPoint").WithField("id", id)

	point, err := h.reliefService.GetPoint(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get relief point from service")
		respondError(c, err, "internal server error")
		return
	}
	c.JSON(http.StatusOK, ModelToReliefPointResponse(point))
}

// @Summary Update a relief point
// @Description Partially update a relief point by ID. Requires API key.
// @Tags ReliefPoints
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Relief point ID"
// @Param point body UpdateReliefPointRequest true "Relief point patch"
// @Success 200 {object} ReliefPointResponse
// @Failure 400 {object} map[string]string "Invalid relief point ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Relief point not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /relief-points/{id} [patch]
func (h *Handler) updateReliefPoint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid relief point ID"})
		return
	}
	log := h.logger.WithField("method", "updateReliefPoint").WithField("id", id)

	var input UpdateReliefPointRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	point, err := h.reliefService.UpdatePoint(c.Request.Context(), id, UpdateDTOToReliefPointPatch(input))
	if err != nil {
		log.WithError(err).Warn("Failed to update relief point in service")
		respondError(c, err, "failed to update relief point")
		return
	}
	c.JSON(http.StatusOK, ModelToReliefPointResponse(point))
}

// @Summary Remove a relief point
// @Description Remove a relief point from the catalog by its ID. Requires API key.
// @Tags ReliefPoints
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Relief point ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid relief point ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Relief point not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /relief-points/{id} [delete]
func (h *Handler) deleteReliefPoint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid relief point ID"})
		return
	}
	log := h.logger.WithField("method", "deleteReliefPoint").WithField("id", id)

	if err := h.reliefService.RemovePoint(c.Request.Context(), id); err != nil {
		log.WithError(err).Warn("Failed to remove relief point in service")
		respondError(c, err, "failed to remove relief point")
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Sign in a user
// @Description Register a user or refresh an existing profile in the session layer.
// @Tags Users
// @Accept json
// @Produce json
// @Param user body SignInRequest true "Sign-in request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /users [post]
func (h *Handler) signIn(c *gin.Context) {
	var input SignInRequest
	log := h.logger.WithField("method", "signIn")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.registry.Upsert(c.Request.Context(), SignInDTOToUserModel(input)); err != nil {
		log.WithError(err).Warn("Failed to upsert user in session registry")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Refresh user location
// @Description Update the last known location of a signed-in user.
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param location body UpdateLocationRequest true "Location refresh request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{id}/location [put]
func (h *Handler) refreshLocation(c *gin.Context) {
	userID := c.Param("id")
	log := h.logger.WithField("method", "refreshLocation").WithField("user_id", userID)

	var input UpdateLocationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.registry.RefreshLocation(c.Request.Context(), userID, input.Latitude, input.Longitude); err != nil {
		log.WithError(err).Warn("Failed to refresh user location")
		respondError(c, err, "failed to refresh location")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Generate recommendations
// @Description Generate a ranked recommendation list for the current user (X-User-ID header). An unknown or missing user yields an empty list.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param X-User-ID header string false "Current user ID"
// @Success 200 {array} RecommendationResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Failure 503 {object} map[string]string "Location unavailable"
// @Router /recommendations/generate [post]
func (h *Handler) generateRecommendations(c *gin.Context) {
	log := h.logger.WithField("method", "generateRecommendations")

	recommendations, err := h.recommendService.Generate(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to generate recommendations in service")
		respondError(c, err, "internal server error")
		return
	}

	c.JSON(http.StatusOK, ModelsToRecommendationResponses(recommendations))
}

// @Summary Provide recommendation feedback
// @Description Nudge the learned category weight for the current user up or down.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Current user ID"
// @Param feedback body FeedbackRequest true "Feedback request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Authentication required"
// @Router /recommendations/feedback [post]
func (h *Handler) provideFeedback(c *gin.Context) {
	var input FeedbackRequest
	log := h.logger.WithField("method", "provideFeedback")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.recommendService.ProvideFeedback(c.Request.Context(), input.Category, *input.Positive); err != nil {
		log.WithError(err).Warn("Failed to apply feedback in service")
		respondError(c, err, "failed to apply feedback")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Dismiss a recommendation
// @Description Suppress a recommendation ID for the current user for the rest of the session.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Current user ID"
// @Param id path string true "Recommendation ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid recommendation ID"
// @Failure 401 {object} map[string]string "Authentication required"
// @Router /recommendations/{id}/dismiss [post]
func (h *Handler) dismissRecommendation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recommendation ID"})
		return
	}
	log := h.logger.WithField("method", "dismissRecommendation").WithField("id", id)

	if err := h.recommendService.Dismiss(c.Request.Context(), id); err != nil {
		log.WithError(err).Warn("Failed to dismiss recommendation in service")
		respondError(c, err, "failed to dismiss recommendation")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List notifications
// @Description List notifications, newest first.
// @Tags Notifications
// @Accept json
// @Produce json
// @Success 200 {array} NotificationResponse
// @Router /notifications [get]
func (h *Handler) listNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, ModelsToNotificationResponses(h.notificationService.List(c.Request.Context())))
}

// @Summary Push a notification
// @Description Push a notification into the store and hand it to the delivery dispatcher. Requires API key.
// @Tags Notifications
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param notification body PushNotificationRequest true "Notification push request"
// @Success 201 {object} NotificationResponse
// @Failure 400 {object} map[string]string "Invalid request body or unknown channel"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notifications [post]
func (h *Handler) pushNotification(c *gin.Context) {
	var input PushNotificationRequest
	log := h.logger.WithField("method", "pushNotification")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := PushDTOToNotificationModel(input)
	if err := h.notificationService.Push(c.Request.Context(), model); err != nil {
		log.WithError(err).Warn("Failed to push notification in service")
		respondError(c, err, "internal server error")
		return
	}
	c.JSON(http.StatusCreated, ModelToNotificationResponse(model))
}

// @Summary Mark a notification as read
// @Description Mark a notification as read. Repeated calls are a no-op.
// @Tags Notifications
// @Accept json
// @Produce json
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid notification ID"
// @Failure 404 {object} map[string]string "Notification not found"
// @Router /notifications/{id}/read [post]
func (h *Handler) markNotificationRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification ID"})
		return
	}
	log := h.logger.WithField("method", "markNotificationRead").WithField("id", id)

	if err := h.notificationService.MarkRead(c.Request.Context(), id); err != nil {
		log.WithError(err).Warn("Failed to mark notification as read in service")
		respondError(c, err, "failed to mark notification as read")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get unread notification count
// @Description Get the number of unread notifications for the badge.
// @Tags Notifications
// @Accept json
// @Produce json
// @Success 200 {object} UnreadCountResponse
// @Router /notifications/unread-count [get]
func (h *Handler) unreadCount(c *gin.Context) {
	c.JSON(http.StatusOK, UnreadCountResponse{UnreadCount: h.notificationService.UnreadCount(c.Request.Context())})
}

// @Summary Get user statistics
// @Description Get the count of users active within the configured stats window. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	userCount, err := h.recommendService.ActiveUsers(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{UserCount: userCount})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
