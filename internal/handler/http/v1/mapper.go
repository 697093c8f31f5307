package v1

import "github.com/shenikar/waste_complaint_system/internal/models"

// Формат времени, который ожидает мобильный клиент
const createdAtLayout = "2006-01-02 15:04:05"

// DTOToComplaintModel преобразует DTO подачи жалобы в доменную модель
func DTOToComplaintModel(dto SubmitComplaintRequest) *models.Complaint {
	return &models.Complaint{
		Name:        dto.Name,
		Area:        dto.Area,
		Description: dto.Description,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		ImagePath:   dto.ImagePath,
	}
}

// ModelToComplaintResponse преобразует доменную модель в DTO для ответа
func ModelToComplaintResponse(model *models.Complaint) *ComplaintResponse {
	return &ComplaintResponse{
		ID:          model.ID,
		Name:        model.Name,
		Area:        model.Area,
		Description: model.Description,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		ImagePath:   model.ImagePath,
		Status:      model.Status,
		CreatedAt:   model.CreatedAt.Format(createdAtLayout),
	}
}

// ModelsToComplaintResponses преобразует слайс моделей в слайс DTO
func ModelsToComplaintResponses(models []*models.Complaint) []*ComplaintResponse {
	responses := make([]*ComplaintResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToComplaintResponse(model)
	}
	return responses
}
