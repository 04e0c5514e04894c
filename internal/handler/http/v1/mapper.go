package v1

import "github.com/shenikar/relief_recommendation_system/internal/models"

// CreateDTOToReliefPointModel преобразует DTO создания в доменную модель
func CreateDTOToReliefPointModel(dto CreateReliefPointRequest) *models.ReliefPoint {
	return &models.ReliefPoint{
		Title:       dto.Title,
		Description: dto.Description,
		Category:    models.Category(dto.Category),
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		Address:     dto.Address,
		OpenHours:   dto.OpenHours,
		Capacity:    dto.Capacity,
	}
}

// UpdateDTOToReliefPointPatch преобразует DTO обновления в патч доменной модели
func UpdateDTOToReliefPointPatch(dto UpdateReliefPointRequest) models.ReliefPointPatch {
	patch := models.ReliefPointPatch{
		Title:       dto.Title,
		Description: dto.Description,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		Address:     dto.Address,
		OpenHours:   dto.OpenHours,
		Capacity:    dto.Capacity,
	}
	if dto.Category != nil {
		category := models.Category(*dto.Category)
		patch.Category = &category
	}
	return patch
}

// ModelToReliefPointResponse преобразует доменную модель в DTO для ответа
func ModelToReliefPointResponse(model *models.ReliefPoint) *ReliefPointResponse {
	return &ReliefPointResponse{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Category:    string(model.Category),
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		Address:     model.Address,
		OpenHours:   model.OpenHours,
		Capacity:    model.Capacity,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// ModelsToReliefPointResponses преобразует слайс моделей в слайс DTO
func ModelsToReliefPointResponses(points []*models.ReliefPoint) []*ReliefPointResponse {
	responses := make([]*ReliefPointResponse, len(points))
	for i, point := range points {
		responses[i] = ModelToReliefPointResponse(point)
	}
	return responses
}

// NearbyToResponses преобразует результаты запроса ближайших пунктов в DTO
func NearbyToResponses(nearby []models.NearbyReliefPoint) []*NearbyReliefPointResponse {
	responses := make([]*NearbyReliefPointResponse, len(nearby))
	for i, candidate := range nearby {
		responses[i] = &NearbyReliefPointResponse{
			ReliefPointResponse: *ModelToReliefPointResponse(candidate.Point),
			DistanceMeters:      candidate.DistanceMeters,
		}
	}
	return responses
}

// SignInDTOToUserModel преобразует DTO входа в доменную модель пользователя
func SignInDTOToUserModel(dto SignInRequest) *models.User {
	user := &models.User{
		ID:    dto.ID,
		Name:  dto.Name,
		Email: dto.Email,
		Role:  models.Role(dto.Role),
		Tags:  dto.Tags,
	}
	if dto.Latitude != nil && dto.Longitude != nil {
		user.Location = &models.Location{
			Latitude:  *dto.Latitude,
			Longitude: *dto.Longitude,
		}
	}
	return user
}

// ModelToRecommendationResponse преобразует рекомендацию в DTO для ответа
func ModelToRecommendationResponse(model *models.Recommendation) *RecommendationResponse {
	actions := make([]ActionResponse, len(model.Actions))
	for i, action := range model.Actions {
		actions[i] = ActionResponse{
			ID:    action.ID,
			Label: action.Label,
			Type:  string(action.Type),
			Data:  action.Data,
		}
	}
	return &RecommendationResponse{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Priority:    string(model.Priority),
		Confidence:  model.Confidence,
		Icon:        model.Icon,
		Actions:     actions,
		Metadata:    model.Metadata,
	}
}

// ModelsToRecommendationResponses преобразует слайс рекомендаций в слайс DTO
func ModelsToRecommendationResponses(recommendations []*models.Recommendation) []*RecommendationResponse {
	responses := make([]*RecommendationResponse, len(recommendations))
	for i, recommendation := range recommendations {
		responses[i] = ModelToRecommendationResponse(recommendation)
	}
	return responses
}

// PushDTOToNotificationModel преобразует DTO уведомления в доменную модель
func PushDTOToNotificationModel(dto PushNotificationRequest) *models.Notification {
	return &models.Notification{
		Title:   dto.Title,
		Body:    dto.Body,
		Channel: models.Channel(dto.Channel),
	}
}

// ModelToNotificationResponse преобразует уведомление в DTO для ответа
func ModelToNotificationResponse(model *models.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        model.ID,
		Title:     model.Title,
		Body:      model.Body,
		Channel:   string(model.Channel),
		Urgency:   model.Channel.Urgency(),
		Read:      model.Read,
		CreatedAt: model.CreatedAt,
	}
}

// ModelsToNotificationResponses преобразует слайс уведомлений в слайс DTO
func ModelsToNotificationResponses(notifications []*models.Notification) []*NotificationResponse {
	responses := make([]*NotificationResponse, len(notifications))
	for i, notification := range notifications {
		responses[i] = ModelToNotificationResponse(notification)
	}
	return responses
}
