package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/relief_recommendation_system/internal/config"
	"github.com/shenikar/relief_recommendation_system/internal/models"
	"github.com/shenikar/relief_recommendation_system/internal/repository"
	"github.com/shenikar/relief_recommendation_system/internal/service"
	"github.com/shenikar/relief_recommendation_system/internal/service/mocks"
	"github.com/shenikar/relief_recommendation_system/internal/session"
	"github.com/shenikar/relief_recommendation_system/pkg/geo"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testMocks собирает все мокированные сервисы хэндлера
type testMocks struct {
	relief       *mocks.MockReliefPointService
	recommend    *mocks.MockRecommendationService
	notification *mocks.MockNotificationService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := testMocks{
		relief:       mocks.NewMockReliefPointService(ctrl),
		recommend:    mocks.NewMockRecommendationService(ctrl),
		notification: mocks.NewMockNotificationService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:                []string{"test-api-key"},
		StatsTimeWindowMinutes: 60,
	}

	handler := NewHandler(m.relief, m.recommend, m.notification, session.NewRegistry(), logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateReliefPoint_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	pointID := uuid.New()
	reqBody := CreateReliefPointRequest{
		Title:     "Field Kitchen",
		Category:  "food",
		Latitude:  55.75,
		Longitude: 37.61,
	}

	m.relief.EXPECT().
		CreatePoint(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, point *models.ReliefPoint) error {
			// Симулируем, что стор присвоил ID
			point.ID = pointID
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/relief-points", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp ReliefPointResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, pointID, resp.ID)
	assert.Equal(t, reqBody.Title, resp.Title)
}

func TestCreateReliefPoint_Unauthorized(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.relief.EXPECT().CreatePoint(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	reqBody := CreateReliefPointRequest{
		Title:     "Field Kitchen",
		Category:  "food",
		Latitude:  55.75,
		Longitude: 37.61,
	}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/relief-points", bytes.NewBuffer(bodyBytes)) // Нет API ключа

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateReliefPoint_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := CreateReliefPointRequest{ // Неизвестная категория
		Title:     "Field Kitchen",
		Category:  "fuel",
		Latitude:  55.75,
		Longitude: 37.61,
	}

	m.relief.EXPECT().CreatePoint(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/relief-points", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Category' failed on the 'oneof' tag")
}

func TestCreateReliefPoint_InvalidJSON(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.relief.EXPECT().CreatePoint(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/relief-points", bytes.NewBufferString(`{"title": "test"`), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestListReliefPoints_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	expectedPoints := []*models.ReliefPoint{
		{ID: uuid.New(), Title: "Kitchen", Category: models.CategoryFood},
		{ID: uuid.New(), Title: "Shelter", Category: models.CategoryShelter},
	}

	m.relief.EXPECT().ListPoints(gomock.Any(), "", models.Category("")).Return(expectedPoints, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/relief-points", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []ReliefPointResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, expectedPoints[0].Title, resp[0].Title)
}

func TestListReliefPoints_WithQueryAndCategory(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.relief.EXPECT().
		ListPoints(gomock.Any(), "kitchen", models.CategoryFood).
		Return([]*models.ReliefPoint{}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/relief-points?category=food&q=kitchen", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListReliefPoints_UnknownCategory(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.relief.EXPECT().ListPoints(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/relief-points?category=fuel", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown category")
}

func TestNearbyReliefPoints_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	expected := []models.NearbyReliefPoint{
		{
			Point:          &models.ReliefPoint{ID: uuid.New(), Title: "Near", Category: models.CategoryFood},
			DistanceMeters: 120,
		},
	}

	m.relief.EXPECT().NearbyPoints(gomock.Any(), 55.75, 37.61, 5000.0).Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/relief-points/nearby?latitude=55.75&longitude=37.61", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []NearbyReliefPointResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Near", resp[0].Title)
	assert.Equal(t, 120.0, resp[0].DistanceMeters)
}

func TestNearbyReliefPoints_MissingCoordinates(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.relief.EXPECT().NearbyPoints(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/relief-points/nearby?latitude=55.75", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "latitude and longitude are required")
}

func TestNearbyReliefPoints_InvalidCoordinates(t *testing.T) {
	_, m, router := newTestHandler(t)
	serviceError := fmt.Errorf("service: could not query nearby relief points: %w",
		fmt.Errorf("nearby origin: %w", geo.ErrInvalidCoordinate))

	m.relief.EXPECT().NearbyPoints(gomock.Any(), 95.0, 37.61, 5000.0).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/relief-points/nearby?latitude=95&longitude=37.61", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid coordinates")
}

func TestGetReliefPoint_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	pointID := uuid.New()
	expected := &models.ReliefPoint{ID: pointID, Title: "Medical Tent", Category: models.CategoryMedical}

	m.relief.EXPECT().GetPoint(gomock.Any(), pointID).Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/relief-points/%s", pointID.String()), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ReliefPointResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, pointID, resp.ID)
}

func TestGetReliefPoint_InvalidID(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.relief.EXPECT().GetPoint(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/relief-points/invalid-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid relief point ID")
}

func TestGetReliefPoint_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	pointID := uuid.New()
	serviceError := fmt.Errorf("service: could not get relief point: %w", repository.ErrNotFound)

	m.relief.EXPECT().GetPoint(gomock.Any(), pointID).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/relief-points/%s", pointID.String()), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestUpdateReliefPoint_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	pointID := uuid.New()
	newTitle := "Updated Title"
	reqBody := UpdateReliefPointRequest{Title: &newTitle}
	updated := &models.ReliefPoint{ID: pointID, Title: newTitle, Category: models.CategoryFood}

	m.relief.EXPECT().
		UpdatePoint(gomock.Any(), pointID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, patch models.ReliefPointPatch) (*models.ReliefPoint, error) {
			require.NotNil(t, patch.Title)
			assert.Equal(t, newTitle, *patch.Title)
			assert.Nil(t, patch.Category)
			return updated, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/relief-points/%s", pointID.String()), bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ReliefPointResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, newTitle, resp.Title)
}

func TestUpdateReliefPoint_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	pointID := uuid.New()
	newTitle := "Updated Title"
	reqBody := UpdateReliefPointRequest{Title: &newTitle}
	serviceError := fmt.Errorf("service: could not update relief point: %w", repository.ErrNotFound)

	m.relief.EXPECT().UpdatePoint(gomock.Any(), pointID, gomock.Any()).Return(nil, serviceError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/relief-points/%s", pointID.String()), bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteReliefPoint_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	pointID := uuid.New()

	m.relief.EXPECT().RemovePoint(gomock.Any(), pointID).Return(nil).Times(1)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/relief-points/%s", pointID.String()), nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteReliefPoint_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	pointID := uuid.New()
	serviceError := fmt.Errorf("service: could not remove relief point: %w", repository.ErrNotFound)

	m.relief.EXPECT().RemovePoint(gomock.Any(), pointID).Return(serviceError).Times(1)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/relief-points/%s", pointID.String()), nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSignIn_Success(t *testing.T) {
	handler, _, router := newTestHandler(t)
	lat, lon := 55.75, 37.61
	reqBody := SignInRequest{
		ID:        "user-1",
		Name:      "Anna",
		Role:      "victim",
		Latitude:  &lat,
		Longitude: &lon,
	}

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/users", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNoContent, w.Code)

	// Пользователь виден сессионному слою
	user, err := handler.registry.CurrentUser(session.WithUserID(context.Background(), "user-1"))
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, models.RoleVictim, user.Role)
	require.NotNil(t, user.Location)
	assert.Equal(t, 55.75, user.Location.Latitude)
}

func TestSignIn_UnknownRole(t *testing.T) {
	_, _, router := newTestHandler(t)
	reqBody := SignInRequest{
		ID:   "user-1",
		Name: "Anna",
		Role: "admin",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/users", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Role' failed on the 'oneof' tag")
}

func TestRefreshLocation_Success(t *testing.T) {
	handler, _, router := newTestHandler(t)
	require.NoError(t, handler.registry.Upsert(context.Background(), &models.User{ID: "user-1", Role: models.RoleVictim}))

	reqBody := UpdateLocationRequest{Latitude: 55.75, Longitude: 37.61}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/users/user-1/location", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRefreshLocation_UnknownUser(t *testing.T) {
	_, _, router := newTestHandler(t)

	reqBody := UpdateLocationRequest{Latitude: 55.75, Longitude: 37.61}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/users/ghost/location", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenerateRecommendations_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	expected := []*models.Recommendation{
		{
			ID:         uuid.New(),
			Title:      "Medical Tent",
			Priority:   models.PriorityCritical,
			Confidence: 0.92,
			Actions: []models.Action{
				{ID: "navigate:1", Label: "Navigate", Type: models.ActionNavigate},
			},
		},
	}

	m.recommend.EXPECT().Generate(gomock.Any()).Return(expected, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/recommendations/generate", nil, map[string]string{"X-User-ID": "user-1"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []RecommendationResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Medical Tent", resp[0].Title)
	assert.Equal(t, "critical", resp[0].Priority)
}

func TestGenerateRecommendations_EmptyWithoutUser(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.recommend.EXPECT().Generate(gomock.Any()).Return([]*models.Recommendation{}, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/recommendations/generate", nil) // Нет X-User-ID

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []RecommendationResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Empty(t, resp)
}

func TestGenerateRecommendations_LocationUnavailable(t *testing.T) {
	_, m, router := newTestHandler(t)
	serviceError := fmt.Errorf("service: could not resolve location: %w", service.ErrPermissionDenied)

	m.recommend.EXPECT().Generate(gomock.Any()).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "POST", "/api/v1/recommendations/generate", nil, map[string]string{"X-User-ID": "user-1"})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "location unavailable")
}

func TestProvideFeedback_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	positive := true
	reqBody := FeedbackRequest{Category: "food", Positive: &positive}

	m.recommend.EXPECT().ProvideFeedback(gomock.Any(), "food", true).Return(nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/recommendations/feedback", bytes.NewBuffer(bodyBytes), map[string]string{"X-User-ID": "user-1"})

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestProvideFeedback_MissingPositive(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := FeedbackRequest{Category: "food"} // Отсутствует Positive

	m.recommend.EXPECT().ProvideFeedback(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/recommendations/feedback", bytes.NewBuffer(bodyBytes), map[string]string{"X-User-ID": "user-1"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Positive' failed on the 'required' tag")
}

func TestProvideFeedback_NoUser(t *testing.T) {
	_, m, router := newTestHandler(t)
	positive := false
	reqBody := FeedbackRequest{Category: "food", Positive: &positive}
	serviceError := fmt.Errorf("service: could not apply feedback: %w", service.ErrNoCurrentUser)

	m.recommend.EXPECT().ProvideFeedback(gomock.Any(), "food", false).Return(serviceError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/recommendations/feedback", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication required")
}

func TestDismissRecommendation_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	recID := uuid.New()

	m.recommend.EXPECT().Dismiss(gomock.Any(), recID).Return(nil).Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/recommendations/%s/dismiss", recID.String()), nil, map[string]string{"X-User-ID": "user-1"})

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDismissRecommendation_InvalidID(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.recommend.EXPECT().Dismiss(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/recommendations/invalid-uuid/dismiss", nil, map[string]string{"X-User-ID": "user-1"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid recommendation ID")
}

func TestListNotifications_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	expected := []*models.Notification{
		{ID: uuid.New(), Title: "Newest", Channel: models.ChannelEmergency},
		{ID: uuid.New(), Title: "Oldest", Channel: models.ChannelReliefUpdate},
	}

	m.notification.EXPECT().List(gomock.Any()).Return(expected).Times(1)

	w := makeRequest(router, "GET", "/api/v1/notifications", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []NotificationResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "Newest", resp[0].Title)
	assert.Equal(t, "max", resp[0].Urgency)
}

func TestPushNotification_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	notificationID := uuid.New()
	reqBody := PushNotificationRequest{
		Title:   "Evacuation notice",
		Body:    "Leave the area immediately",
		Channel: "emergency",
	}

	m.notification.EXPECT().
		Push(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.Notification) error {
			n.ID = notificationID
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/notifications", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp NotificationResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, notificationID, resp.ID)
}

func TestPushNotification_UnknownChannel(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := PushNotificationRequest{
		Title:   "Broken",
		Channel: "carrier-pigeon",
	}
	serviceError := fmt.Errorf("service: could not push notification: %w", repository.ErrInvalidChannel)

	m.notification.EXPECT().Push(gomock.Any(), gomock.Any()).Return(serviceError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/notifications", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid notification channel")
}

func TestMarkNotificationRead_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	notificationID := uuid.New()

	m.notification.EXPECT().MarkRead(gomock.Any(), notificationID).Return(nil).Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/notifications/%s/read", notificationID.String()), nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestMarkNotificationRead_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	notificationID := uuid.New()
	serviceError := fmt.Errorf("service: could not mark notification as read: %w", repository.ErrNotFound)

	m.notification.EXPECT().MarkRead(gomock.Any(), notificationID).Return(serviceError).Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/notifications/%s/read", notificationID.String()), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnreadCount_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.notification.EXPECT().UnreadCount(gomock.Any()).Return(5).Times(1)

	w := makeRequest(router, "GET", "/api/v1/notifications/unread-count", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp UnreadCountResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 5, resp.UnreadCount)
}

func TestGetStats_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	expectedCount := 123

	m.recommend.EXPECT().ActiveUsers(gomock.Any()).Return(expectedCount, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/stats", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, expectedCount, resp.UserCount)
}

func TestGetStats_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)
	serviceError := errors.New("failed to get stats")

	m.recommend.EXPECT().ActiveUsers(gomock.Any()).Return(0, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/stats", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	// Создаем Gin-роутер и добавляем middleware
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestUserContextMiddleware_PropagatesUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	registry := session.NewRegistry()
	require.NoError(t, registry.Upsert(context.Background(), &models.User{ID: "user-1", Role: models.RoleVictim}))

	router.Use(UserContextMiddleware())
	router.GET("/test", func(c *gin.Context) {
		user, err := registry.CurrentUser(c.Request.Context())
		require.NoError(t, err)
		if user == nil {
			c.Status(http.StatusUnauthorized)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": user.ID})
	})

	// С заголовком пользователь виден
	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-User-ID": "user-1"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")

	// Без заголовка запрос анонимный
	w = makeRequest(router, "GET", "/test", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
